package complaint_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/go-chi/chi"
	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	"github.com/frahmantamala/complaint-redressal/internal"
	"github.com/frahmantamala/complaint-redressal/internal/complaint"
)

type stubComplaintService struct {
	created     *complaint.CreateComplaintDTO
	lastFilter  complaint.ListFilter
	lastAdminID int64
	byID        map[int64]*complaint.Complaint
	updateErr   error
	historyByID map[int64][]*complaint.StatusHistory
}

func (s *stubComplaintService) CreateComplaint(_ context.Context, dto complaint.CreateComplaintDTO, userID int64) (*complaint.Complaint, error) {
	s.created = &dto
	return &complaint.Complaint{ID: 1, Title: dto.Title, Category: complaint.Category(dto.Category), Status: complaint.StatusPending, UserID: userID, CreatedAt: time.Now(), UpdatedAt: time.Now()}, nil
}

func (s *stubComplaintService) GetComplaintsByUser(_ context.Context, userID int64) ([]*complaint.Complaint, error) {
	return []*complaint.Complaint{{ID: 1, UserID: userID, Status: complaint.StatusPending}}, nil
}

func (s *stubComplaintService) GetAllComplaints(_ context.Context, filter complaint.ListFilter) ([]*complaint.Complaint, error) {
	s.lastFilter = filter
	return []*complaint.Complaint{}, nil
}

func (s *stubComplaintService) GetComplaintByID(_ context.Context, id int64) (*complaint.Complaint, error) {
	return s.byID[id], nil
}

func (s *stubComplaintService) UpdateStatus(_ context.Context, complaintID int64, newStatus, _ string, adminID int64) (*complaint.Complaint, error) {
	s.lastAdminID = adminID
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	if _, err := complaint.ParseStatus(newStatus); err != nil {
		return nil, err
	}
	return &complaint.Complaint{ID: complaintID, Status: complaint.Status(newStatus)}, nil
}

func (s *stubComplaintService) GetStatusHistory(_ context.Context, complaintID int64) ([]*complaint.StatusHistory, error) {
	h, ok := s.historyByID[complaintID]
	if !ok {
		return nil, internal.ErrComplaintNotFound
	}
	return h, nil
}

func withPrincipal(p *internal.Principal) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if p != nil {
				r = r.WithContext(internal.ContextWithPrincipal(r.Context(), p))
			}
			next.ServeHTTP(w, r)
		})
	}
}

func decodeErrorCode(rec *httptest.ResponseRecorder) string {
	var body struct {
		Error struct {
			Code string `json:"code"`
			Type string `json:"type"`
		} `json:"error"`
	}
	gomega.Expect(json.Unmarshal(rec.Body.Bytes(), &body)).To(gomega.Succeed())
	return body.Error.Code
}

var _ = ginkgo.Describe("ComplaintHandler", func() {
	var (
		svc       *stubComplaintService
		principal *internal.Principal
		router    *chi.Mux
	)

	ginkgo.BeforeEach(func() {
		svc = &stubComplaintService{
			byID: map[int64]*complaint.Complaint{
				5: {ID: 5, Title: "Leak", Category: complaint.CategoryWater, Status: complaint.StatusPending},
			},
			historyByID: map[int64][]*complaint.StatusHistory{5: {}},
		}
		principal = &internal.Principal{ID: 11, Username: "citizen", Role: internal.RoleUser}
	})

	ginkgo.JustBeforeEach(func() {
		h := complaint.NewHandler(svc)
		router = chi.NewRouter()
		router.Use(withPrincipal(principal))
		router.Post("/api/complaints", h.CreateComplaint)
		router.Get("/api/complaints/my", h.GetMyComplaints)
		router.Get("/api/complaints/{id}", h.GetComplaint)
		router.Get("/api/complaints/{id}/history", h.GetComplaintHistory)
		router.Get("/api/admin/complaints", h.ListAllComplaints)
		router.Put("/api/admin/complaints/{id}/status", h.UpdateComplaintStatus)
	})

	serve := func(method, path string, body interface{}) *httptest.ResponseRecorder {
		var buf bytes.Buffer
		if body != nil {
			gomega.Expect(json.NewEncoder(&buf).Encode(body)).To(gomega.Succeed())
		}
		req := httptest.NewRequest(method, path, &buf)
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	ginkgo.It("creates a complaint for the caller", func() {
		rec := serve(http.MethodPost, "/api/complaints", map[string]string{"title": "Leak", "category": "WATER"})

		gomega.Expect(rec.Code).To(gomega.Equal(http.StatusCreated))
		var got map[string]interface{}
		gomega.Expect(json.Unmarshal(rec.Body.Bytes(), &got)).To(gomega.Succeed())
		gomega.Expect(got["status"]).To(gomega.Equal("PENDING"))
		gomega.Expect(got["user_id"]).To(gomega.BeNumerically("==", 11))
	})

	ginkgo.It("rejects a malformed body", func() {
		req := httptest.NewRequest(http.MethodPost, "/api/complaints", bytes.NewBufferString("{"))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		gomega.Expect(rec.Code).To(gomega.Equal(http.StatusBadRequest))
	})

	ginkgo.It("returns 404 with the not found code for an unknown complaint", func() {
		rec := serve(http.MethodGet, "/api/complaints/77", nil)

		gomega.Expect(rec.Code).To(gomega.Equal(http.StatusNotFound))
		gomega.Expect(decodeErrorCode(rec)).To(gomega.Equal(string(internal.ErrCodeComplaintNotFound)))
	})

	ginkgo.It("returns a known complaint", func() {
		rec := serve(http.MethodGet, "/api/complaints/5", nil)
		gomega.Expect(rec.Code).To(gomega.Equal(http.StatusOK))
	})

	ginkgo.It("rejects a non numeric id", func() {
		rec := serve(http.MethodGet, "/api/complaints/abc", nil)
		gomega.Expect(rec.Code).To(gomega.Equal(http.StatusBadRequest))
	})

	ginkgo.It("returns 404 for history of an unknown complaint", func() {
		rec := serve(http.MethodGet, "/api/complaints/8/history", nil)
		gomega.Expect(rec.Code).To(gomega.Equal(http.StatusNotFound))
	})

	ginkgo.It("passes list filters through", func() {
		rec := serve(http.MethodGet, "/api/admin/complaints?status=IN_PROGRESS&department_id=3", nil)

		gomega.Expect(rec.Code).To(gomega.Equal(http.StatusOK))
		gomega.Expect(*svc.lastFilter.Status).To(gomega.Equal(complaint.StatusInProgress))
		gomega.Expect(*svc.lastFilter.DepartmentID).To(gomega.Equal(int64(3)))
	})

	ginkgo.It("rejects an unknown status filter", func() {
		rec := serve(http.MethodGet, "/api/admin/complaints?status=DONE", nil)

		gomega.Expect(rec.Code).To(gomega.Equal(http.StatusBadRequest))
		gomega.Expect(decodeErrorCode(rec)).To(gomega.Equal(string(internal.ErrCodeInvalidStatus)))
	})

	ginkgo.Context("as an admin", func() {
		ginkgo.BeforeEach(func() {
			principal = &internal.Principal{ID: 3, Username: "root", Role: internal.RoleAdmin}
		})

		ginkgo.It("updates the status on behalf of the admin", func() {
			rec := serve(http.MethodPut, "/api/admin/complaints/5/status", map[string]string{"status": "COMPLETED", "remarks": "fixed"})

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusOK))
			gomega.Expect(svc.lastAdminID).To(gomega.Equal(int64(3)))
		})

		ginkgo.It("answers 400 with Invalid status for an unrecognised status", func() {
			rec := serve(http.MethodPut, "/api/admin/complaints/5/status", map[string]string{"status": "BOGUS"})

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusBadRequest))
			gomega.Expect(rec.Body.String()).To(gomega.ContainSubstring("Invalid status"))
		})

		ginkgo.It("answers 404 for an unknown complaint", func() {
			svc.updateErr = internal.ErrComplaintNotFound

			rec := serve(http.MethodPut, "/api/admin/complaints/999/status", map[string]string{"status": "COMPLETED"})

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusNotFound))
		})
	})

	ginkgo.Context("without a principal", func() {
		ginkgo.BeforeEach(func() {
			principal = nil
		})

		ginkgo.It("answers 401 on create", func() {
			rec := serve(http.MethodPost, "/api/complaints", map[string]string{"title": "Leak", "category": "WATER"})
			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusUnauthorized))
		})
	})
})
