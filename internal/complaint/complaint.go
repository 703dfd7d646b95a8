package complaint

import (
	"time"

	"github.com/frahmantamala/complaint-redressal/internal"
	complaintDatamodel "github.com/frahmantamala/complaint-redressal/internal/core/datamodel/complaint"
	"github.com/frahmantamala/complaint-redressal/internal/department"
)

type Category string

const (
	CategoryRoad        Category = "ROAD"
	CategoryGarbage     Category = "GARBAGE"
	CategoryWater       Category = "WATER"
	CategoryElectricity Category = "ELECTRICITY"
)

// Categories lists every recognised category in declaration order.
var Categories = []Category{CategoryRoad, CategoryGarbage, CategoryWater, CategoryElectricity}

// ParseCategory matches the exact upper-case name.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if string(c) == s {
			return c, nil
		}
	}
	return "", internal.ErrInvalidCategory
}

type Status string

const (
	StatusPending    Status = "PENDING"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
	StatusRejected   Status = "REJECTED"
)

var Statuses = []Status{StatusPending, StatusInProgress, StatusCompleted, StatusRejected}

func ParseStatus(s string) (Status, error) {
	for _, st := range Statuses {
		if string(st) == s {
			return st, nil
		}
	}
	return "", internal.ErrInvalidStatus
}

func categoryNames() []string {
	names := make([]string, len(Categories))
	for i, c := range Categories {
		names[i] = string(c)
	}
	return names
}

type Complaint struct {
	ID                 int64                  `json:"id"`
	Title              string                 `json:"title"`
	Description        string                 `json:"description"`
	Category           Category               `json:"category"`
	Status             Status                 `json:"status"`
	Latitude           *float64               `json:"latitude"`
	Longitude          *float64               `json:"longitude"`
	Address            *string                `json:"address"`
	ImageURL           *string                `json:"image_url"`
	UserID             int64                  `json:"user_id"`
	AssignedDepartment *department.Department `json:"assigned_department"`
	CreatedAt          time.Time              `json:"created_at"`
	UpdatedAt          time.Time              `json:"updated_at"`
}

// StatusHistory is one append-only audit record of a status change.
type StatusHistory struct {
	ID               int64     `json:"id"`
	ComplaintID      int64     `json:"complaint_id"`
	Status           Status    `json:"status"`
	Remarks          *string   `json:"remarks"`
	UpdatedByAdminID *int64    `json:"updated_by_admin_id"`
	Timestamp        time.Time `json:"timestamp"`
}

// ListFilter narrows GetAllComplaints. Nil fields do not filter.
type ListFilter struct {
	Status       *Status
	DepartmentID *int64
}

func ToDataModel(c *Complaint) *complaintDatamodel.Complaint {
	dm := &complaintDatamodel.Complaint{
		ID:          c.ID,
		Title:       c.Title,
		Description: c.Description,
		Category:    string(c.Category),
		Status:      string(c.Status),
		Latitude:    c.Latitude,
		Longitude:   c.Longitude,
		Address:     c.Address,
		ImageURL:    c.ImageURL,
		UserID:      c.UserID,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
	if c.AssignedDepartment != nil {
		id := c.AssignedDepartment.ID
		dm.AssignedDepartmentID = &id
	}
	return dm
}

func FromDataModel(c *complaintDatamodel.Complaint) *Complaint {
	result := &Complaint{
		ID:          c.ID,
		Title:       c.Title,
		Description: c.Description,
		Category:    Category(c.Category),
		Status:      Status(c.Status),
		Latitude:    c.Latitude,
		Longitude:   c.Longitude,
		Address:     c.Address,
		ImageURL:    c.ImageURL,
		UserID:      c.UserID,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
	if c.AssignedDepartment != nil {
		result.AssignedDepartment = department.FromDataModel(c.AssignedDepartment)
	} else if c.AssignedDepartmentID != nil {
		result.AssignedDepartment = &department.Department{ID: *c.AssignedDepartmentID}
	}
	return result
}

func FromDataModelSlice(complaints []*complaintDatamodel.Complaint) []*Complaint {
	result := make([]*Complaint, len(complaints))
	for i, c := range complaints {
		result[i] = FromDataModel(c)
	}
	return result
}

func HistoryFromDataModel(h *complaintDatamodel.StatusHistory) *StatusHistory {
	return &StatusHistory{
		ID:               h.ID,
		ComplaintID:      h.ComplaintID,
		Status:           Status(h.Status),
		Remarks:          h.Remarks,
		UpdatedByAdminID: h.UpdatedByAdminID,
		Timestamp:        h.ChangedAt,
	}
}

func HistoryFromDataModelSlice(entries []*complaintDatamodel.StatusHistory) []*StatusHistory {
	result := make([]*StatusHistory, len(entries))
	for i, h := range entries {
		result[i] = HistoryFromDataModel(h)
	}
	return result
}
