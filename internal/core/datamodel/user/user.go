package user

import (
	"time"

	"github.com/frahmantamala/complaint-redressal/internal/core/datamodel/department"
)

type User struct {
	ID           int64     `gorm:"primaryKey"`
	Username     string    `gorm:"column:username;uniqueIndex;size:50;not null"`
	PasswordHash string    `gorm:"column:password_hash;not null"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

type Admin struct {
	ID           int64                  `gorm:"primaryKey"`
	Username     string                 `gorm:"column:username;uniqueIndex;size:50;not null"`
	PasswordHash string                 `gorm:"column:password_hash;not null"`
	DepartmentID *int64                 `gorm:"column:department_id"`
	Department   *department.Department `gorm:"foreignKey:DepartmentID"`
	CreatedAt    time.Time              `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time              `gorm:"column:updated_at;autoUpdateTime"`
}
