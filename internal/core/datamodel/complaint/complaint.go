package complaint

import (
	"time"

	"github.com/frahmantamala/complaint-redressal/internal/core/datamodel/department"
)

type Complaint struct {
	ID                   int64                  `gorm:"primaryKey"`
	Title                string                 `gorm:"column:title;size:200;not null"`
	Description          string                 `gorm:"column:description;type:text"`
	Category             string                 `gorm:"column:category;size:20;not null"`
	Status               string                 `gorm:"column:status;size:20;not null;default:PENDING;index"`
	Latitude             *float64               `gorm:"column:latitude"`
	Longitude            *float64               `gorm:"column:longitude"`
	Address              *string                `gorm:"column:address"`
	ImageURL             *string                `gorm:"column:image_url"`
	UserID               int64                  `gorm:"column:user_id;not null;index"`
	AssignedDepartmentID *int64                 `gorm:"column:assigned_department_id;index"`
	AssignedDepartment   *department.Department `gorm:"foreignKey:AssignedDepartmentID"`
	CreatedAt            time.Time              `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt            time.Time              `gorm:"column:updated_at;autoUpdateTime"`
}

type StatusHistory struct {
	ID               int64     `gorm:"primaryKey"`
	ComplaintID      int64     `gorm:"column:complaint_id;not null;index"`
	Status           string    `gorm:"column:status;size:20;not null"`
	Remarks          *string   `gorm:"column:remarks;type:text"`
	UpdatedByAdminID *int64    `gorm:"column:updated_by_admin_id"`
	ChangedAt        time.Time `gorm:"column:changed_at;not null"`
}

func (StatusHistory) TableName() string {
	return "status_history"
}
