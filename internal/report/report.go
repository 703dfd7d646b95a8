package report

import "context"

// UnassignedDepartment labels complaints with no department. The departments
// table refuses it as a name so the bucket cannot merge with a real one.
const UnassignedDepartment = "Unassigned"

// Summary is the admin dashboard view of the complaint backlog.
type Summary struct {
	Total        int64            `json:"total"`
	ByStatus     map[string]int64 `json:"by_status"`
	ByDepartment map[string]int64 `json:"by_department"`
}

// Count is one grouped row of an aggregate query. DepartmentID is only set by
// the per-department count and is nil for the unassigned bucket.
type Count struct {
	DepartmentID *int64 `db:"department_id"`
	Label        string `db:"label"`
	Total        int64  `db:"total"`
}

type Repository interface {
	CountByStatus(ctx context.Context) ([]Count, error)
	CountByDepartment(ctx context.Context) ([]Count, error)
}
