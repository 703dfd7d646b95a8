package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/frahmantamala/complaint-redressal/internal"
	"github.com/frahmantamala/complaint-redressal/internal/complaint"
	complaintDatamodel "github.com/frahmantamala/complaint-redressal/internal/core/datamodel/complaint"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ComplaintRepository implements complaint.Repository using GORM
type ComplaintRepository struct {
	db *gorm.DB
}

func NewComplaintRepository(db *gorm.DB) *ComplaintRepository {
	return &ComplaintRepository{db: db}
}

func (r *ComplaintRepository) Create(ctx context.Context, c *complaintDatamodel.Complaint) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(c).Error; err != nil {
		return fmt.Errorf("create complaint: %w", err)
	}
	return nil
}

func (r *ComplaintRepository) GetByID(ctx context.Context, id int64) (*complaintDatamodel.Complaint, error) {
	var c complaintDatamodel.Complaint
	err := r.db.WithContext(ctx).Preload("AssignedDepartment").Where("id = ?", id).First(&c).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrComplaintNotFound
		}
		return nil, fmt.Errorf("get complaint: %w", err)
	}
	return &c, nil
}

func (r *ComplaintRepository) ListByUser(ctx context.Context, userID int64) ([]*complaintDatamodel.Complaint, error) {
	var complaints []*complaintDatamodel.Complaint
	err := r.db.WithContext(ctx).
		Preload("AssignedDepartment").
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&complaints).Error
	if err != nil {
		return nil, fmt.Errorf("list complaints by user: %w", err)
	}
	return complaints, nil
}

func (r *ComplaintRepository) List(ctx context.Context, filter complaint.ListFilter) ([]*complaintDatamodel.Complaint, error) {
	q := r.db.WithContext(ctx).Preload("AssignedDepartment")
	if filter.Status != nil {
		q = q.Where("status = ?", string(*filter.Status))
	}
	if filter.DepartmentID != nil {
		q = q.Where("assigned_department_id = ?", *filter.DepartmentID)
	}

	var complaints []*complaintDatamodel.Complaint
	if err := q.Order("id ASC").Find(&complaints).Error; err != nil {
		return nil, fmt.Errorf("list complaints: %w", err)
	}
	return complaints, nil
}

// UpdateStatus writes the new status and the history row in one transaction.
// The UPDATE runs first so concurrent updates of the same complaint queue on
// its row lock.
func (r *ComplaintRepository) UpdateStatus(ctx context.Context, id int64, status string, updatedAt time.Time, history *complaintDatamodel.StatusHistory) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&complaintDatamodel.Complaint{}).
			Where("id = ?", id).
			Updates(map[string]interface{}{
				"status":     status,
				"updated_at": updatedAt,
			})
		if res.Error != nil {
			return fmt.Errorf("update complaint status: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return internal.ErrComplaintNotFound
		}

		history.ComplaintID = id
		if err := tx.Create(history).Error; err != nil {
			return fmt.Errorf("append status history: %w", err)
		}
		return nil
	})
}

func (r *ComplaintRepository) ListHistory(ctx context.Context, complaintID int64) ([]*complaintDatamodel.StatusHistory, error) {
	var entries []*complaintDatamodel.StatusHistory
	err := r.db.WithContext(ctx).
		Where("complaint_id = ?", complaintID).
		Order("changed_at ASC").
		Order("id ASC").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("list status history: %w", err)
	}
	return entries, nil
}
