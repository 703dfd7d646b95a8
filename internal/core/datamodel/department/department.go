package department

import "time"

type Department struct {
	ID        int64     `gorm:"primaryKey"`
	Name      string    `gorm:"column:name;uniqueIndex;size:100;not null;check:chk_departments_name_reserved,name <> 'Unassigned'"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}
