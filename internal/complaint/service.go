package complaint

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/frahmantamala/complaint-redressal/internal"
	complaintDatamodel "github.com/frahmantamala/complaint-redressal/internal/core/datamodel/complaint"
	"github.com/frahmantamala/complaint-redressal/internal/core/events"
	"github.com/frahmantamala/complaint-redressal/internal/department"
)

// Repository is the persistence contract for complaints and their status history.
type Repository interface {
	Create(ctx context.Context, c *complaintDatamodel.Complaint) error
	GetByID(ctx context.Context, id int64) (*complaintDatamodel.Complaint, error)
	ListByUser(ctx context.Context, userID int64) ([]*complaintDatamodel.Complaint, error)
	List(ctx context.Context, filter ListFilter) ([]*complaintDatamodel.Complaint, error)
	// UpdateStatus sets the status and appends history in one transaction.
	// It returns internal.ErrComplaintNotFound when no row matches id.
	UpdateStatus(ctx context.Context, id int64, status string, updatedAt time.Time, history *complaintDatamodel.StatusHistory) error
	ListHistory(ctx context.Context, complaintID int64) ([]*complaintDatamodel.StatusHistory, error)
}

// DepartmentLookup resolves a department by name. A missing department is
// reported as nil with no error.
type DepartmentLookup interface {
	GetByName(ctx context.Context, name string) (*department.Department, error)
}

type Service struct {
	repo        Repository
	departments DepartmentLookup
	publisher   events.Publisher
	logger      *slog.Logger
	now         func() time.Time
}

func NewService(repo Repository, departments DepartmentLookup, publisher events.Publisher, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		repo:        repo,
		departments: departments,
		publisher:   publisher,
		logger:      logger,
		now:         time.Now,
	}
}

func (s *Service) CreateComplaint(ctx context.Context, dto CreateComplaintDTO, userID int64) (*Complaint, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Warn("complaint validation failed", "error", err, "user_id", userID)
		return nil, err
	}

	category, err := ParseCategory(dto.Category)
	if err != nil {
		return nil, err
	}

	now := s.now()
	c := &Complaint{
		Title:       dto.Title,
		Description: dto.Description,
		Category:    category,
		Status:      StatusPending,
		Latitude:    dto.Latitude,
		Longitude:   dto.Longitude,
		Address:     dto.Address,
		ImageURL:    dto.ImageURL,
		UserID:      userID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	deptName := DepartmentFor(category)
	dept, err := s.departments.GetByName(ctx, deptName)
	if err != nil {
		s.logger.Error("failed to resolve department", "error", err, "department", deptName)
		return nil, internal.NewInternalError("failed to resolve department", err)
	}
	if dept == nil {
		s.logger.Warn("department not found, complaint left unassigned",
			"department", deptName,
			"category", category,
			"user_id", userID)
	}
	c.AssignedDepartment = dept

	record := ToDataModel(c)
	if err := s.repo.Create(ctx, record); err != nil {
		s.logger.Error("failed to create complaint", "error", err, "user_id", userID)
		return nil, internal.NewInternalError("failed to create complaint", err)
	}
	c.ID = record.ID

	s.logger.Info("complaint created successfully",
		"complaint_id", c.ID,
		"user_id", userID,
		"category", category,
		"department", deptName)

	var deptID *int64
	if dept != nil {
		deptID = &dept.ID
	}
	s.publish(ctx, events.NewComplaintFiledEvent(c.ID, userID, string(category), deptID))

	return c, nil
}

func (s *Service) GetComplaintsByUser(ctx context.Context, userID int64) ([]*Complaint, error) {
	records, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("failed to list user complaints", "error", err, "user_id", userID)
		return nil, internal.NewInternalError("failed to list complaints", err)
	}
	return FromDataModelSlice(records), nil
}

func (s *Service) GetAllComplaints(ctx context.Context, filter ListFilter) ([]*Complaint, error) {
	records, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error("failed to list complaints", "error", err)
		return nil, internal.NewInternalError("failed to list complaints", err)
	}
	return FromDataModelSlice(records), nil
}

// GetComplaintByID returns nil with no error when the complaint does not exist.
func (s *Service) GetComplaintByID(ctx context.Context, id int64) (*Complaint, error) {
	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, internal.ErrComplaintNotFound) {
			return nil, nil
		}
		s.logger.Error("failed to get complaint", "error", err, "complaint_id", id)
		return nil, internal.NewInternalError("failed to get complaint", err)
	}
	return FromDataModel(record), nil
}

// UpdateStatus moves a complaint to any of the four statuses and records who
// did it. Empty remarks are stored as null.
func (s *Service) UpdateStatus(ctx context.Context, complaintID int64, newStatus, remarks string, adminID int64) (*Complaint, error) {
	status, err := ParseStatus(newStatus)
	if err != nil {
		s.logger.Warn("rejected status update", "complaint_id", complaintID, "status", newStatus, "admin_id", adminID)
		return nil, err
	}

	now := s.now()
	history := &complaintDatamodel.StatusHistory{
		ComplaintID:      complaintID,
		Status:           string(status),
		UpdatedByAdminID: &adminID,
		ChangedAt:        now,
	}
	if remarks != "" {
		history.Remarks = &remarks
	}

	if err := s.repo.UpdateStatus(ctx, complaintID, string(status), now, history); err != nil {
		if errors.Is(err, internal.ErrComplaintNotFound) {
			s.logger.Warn("status update for unknown complaint", "complaint_id", complaintID, "admin_id", adminID)
			return nil, internal.ErrComplaintNotFound
		}
		s.logger.Error("failed to update complaint status", "error", err, "complaint_id", complaintID)
		return nil, internal.NewInternalError("failed to update complaint status", err)
	}

	record, err := s.repo.GetByID(ctx, complaintID)
	if err != nil {
		s.logger.Error("failed to reload complaint", "error", err, "complaint_id", complaintID)
		return nil, internal.NewInternalError("failed to reload complaint", err)
	}

	s.logger.Info("complaint status updated",
		"complaint_id", complaintID,
		"status", status,
		"admin_id", adminID)

	s.publish(ctx, events.NewComplaintStatusChangedEvent(complaintID, string(status), adminID, remarks))

	return FromDataModel(record), nil
}

func (s *Service) GetStatusHistory(ctx context.Context, complaintID int64) ([]*StatusHistory, error) {
	if _, err := s.repo.GetByID(ctx, complaintID); err != nil {
		if errors.Is(err, internal.ErrComplaintNotFound) {
			return nil, internal.ErrComplaintNotFound
		}
		return nil, internal.NewInternalError("failed to get complaint", err)
	}

	entries, err := s.repo.ListHistory(ctx, complaintID)
	if err != nil {
		s.logger.Error("failed to list status history", "error", err, "complaint_id", complaintID)
		return nil, internal.NewInternalError("failed to list status history", err)
	}
	return HistoryFromDataModelSlice(entries), nil
}

func (s *Service) publish(ctx context.Context, event events.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("failed to publish event", "event_type", event.EventType(), "error", err)
	}
}
