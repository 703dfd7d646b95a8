package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/frahmantamala/complaint-redressal/internal/report"
)

const (
	countByStatusQuery = `
		SELECT status AS label, COUNT(*) AS total
		FROM complaints
		GROUP BY status
		ORDER BY status`

	countByDepartmentQuery = `
		SELECT d.id AS department_id, COALESCE(d.name, '') AS label, COUNT(*) AS total
		FROM complaints c
		LEFT JOIN departments d ON d.id = c.assigned_department_id
		GROUP BY d.id, d.name
		ORDER BY d.id`
)

type ReportRepository struct {
	db *sqlx.DB
}

func NewReportRepository(db *sqlx.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

func (r *ReportRepository) CountByStatus(ctx context.Context) ([]report.Count, error) {
	var rows []report.Count
	if err := r.db.SelectContext(ctx, &rows, countByStatusQuery); err != nil {
		return nil, fmt.Errorf("count complaints by status: %w", err)
	}
	return rows, nil
}

func (r *ReportRepository) CountByDepartment(ctx context.Context) ([]report.Count, error) {
	var rows []report.Count
	if err := r.db.SelectContext(ctx, &rows, countByDepartmentQuery); err != nil {
		return nil, fmt.Errorf("count complaints by department: %w", err)
	}
	return rows, nil
}
