package complaint

import (
	"context"
	"net/http"
	"strconv"

	"github.com/frahmantamala/complaint-redressal/internal"
	"github.com/frahmantamala/complaint-redressal/internal/transport"
	"github.com/frahmantamala/complaint-redressal/pkg/logger"
)

type ServiceAPI interface {
	CreateComplaint(ctx context.Context, dto CreateComplaintDTO, userID int64) (*Complaint, error)
	GetComplaintsByUser(ctx context.Context, userID int64) ([]*Complaint, error)
	GetAllComplaints(ctx context.Context, filter ListFilter) ([]*Complaint, error)
	GetComplaintByID(ctx context.Context, id int64) (*Complaint, error)
	UpdateStatus(ctx context.Context, complaintID int64, newStatus, remarks string, adminID int64) (*Complaint, error)
	GetStatusHistory(ctx context.Context, complaintID int64) ([]*StatusHistory, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(svc ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: transport.NewBaseHandler(logger.LoggerWrapper()),
		Service:     svc,
	}
}

func (h *Handler) CreateComplaint(w http.ResponseWriter, r *http.Request) {
	p, ok := h.RequirePrincipal(w, r)
	if !ok {
		return
	}

	var dto CreateComplaintDTO
	if !h.DecodeJSON(w, r, &dto) {
		return
	}

	c, err := h.Service.CreateComplaint(r.Context(), dto, p.ID)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, c)
}

func (h *Handler) GetMyComplaints(w http.ResponseWriter, r *http.Request) {
	p, ok := h.RequirePrincipal(w, r)
	if !ok {
		return
	}

	complaints, err := h.Service.GetComplaintsByUser(r.Context(), p.ID)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, complaints)
}

func (h *Handler) GetComplaint(w http.ResponseWriter, r *http.Request) {
	id, err := h.ParseIDParam(r, "id")
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	c, err := h.Service.GetComplaintByID(r.Context(), id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	if c == nil {
		h.HandleServiceError(w, internal.ErrComplaintNotFound)
		return
	}

	h.WriteJSON(w, http.StatusOK, c)
}

func (h *Handler) GetComplaintHistory(w http.ResponseWriter, r *http.Request) {
	id, err := h.ParseIDParam(r, "id")
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	history, err := h.Service.GetStatusHistory(r.Context(), id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, history)
}

// ListAllComplaints serves the admin listing with optional status and
// department_id query filters.
func (h *Handler) ListAllComplaints(w http.ResponseWriter, r *http.Request) {
	var filter ListFilter

	if raw := r.URL.Query().Get("status"); raw != "" {
		status, err := ParseStatus(raw)
		if err != nil {
			h.HandleServiceError(w, err)
			return
		}
		filter.Status = &status
	}

	if raw := r.URL.Query().Get("department_id"); raw != "" {
		deptID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || deptID <= 0 {
			h.HandleServiceError(w, internal.NewValidationError("invalid department_id", internal.ErrCodeValidationFailed))
			return
		}
		filter.DepartmentID = &deptID
	}

	complaints, err := h.Service.GetAllComplaints(r.Context(), filter)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, complaints)
}

func (h *Handler) UpdateComplaintStatus(w http.ResponseWriter, r *http.Request) {
	p, ok := h.RequirePrincipal(w, r)
	if !ok {
		return
	}

	id, err := h.ParseIDParam(r, "id")
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	var dto UpdateStatusDTO
	if !h.DecodeJSON(w, r, &dto) {
		return
	}

	c, err := h.Service.UpdateStatus(r.Context(), id, dto.Status, dto.Remarks, p.ID)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, c)
}
