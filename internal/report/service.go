package report

import (
	"context"
	"log/slog"

	"github.com/frahmantamala/complaint-redressal/internal"
	"github.com/frahmantamala/complaint-redressal/internal/complaint"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, logger: logger}
}

// Summary counts complaints per status and per department. Every status is
// present in the result even when nothing is filed under it.
func (s *Service) Summary(ctx context.Context) (*Summary, error) {
	byStatus, err := s.repo.CountByStatus(ctx)
	if err != nil {
		s.logger.Error("failed to count complaints by status", "error", err)
		return nil, internal.NewInternalError("failed to build summary", err)
	}
	byDepartment, err := s.repo.CountByDepartment(ctx)
	if err != nil {
		s.logger.Error("failed to count complaints by department", "error", err)
		return nil, internal.NewInternalError("failed to build summary", err)
	}

	summary := &Summary{
		ByStatus:     make(map[string]int64, len(complaint.Statuses)),
		ByDepartment: make(map[string]int64, len(byDepartment)),
	}
	for _, st := range complaint.Statuses {
		summary.ByStatus[string(st)] = 0
	}
	for _, c := range byStatus {
		summary.ByStatus[c.Label] += c.Total
		summary.Total += c.Total
	}
	for _, c := range byDepartment {
		label := c.Label
		if c.DepartmentID == nil {
			label = UnassignedDepartment
		}
		summary.ByDepartment[label] += c.Total
	}

	return summary, nil
}
