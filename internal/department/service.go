package department

import (
	"context"
	"errors"
	"log/slog"

	"github.com/frahmantamala/complaint-redressal/internal"
	departmentDatamodel "github.com/frahmantamala/complaint-redressal/internal/core/datamodel/department"
)

var ErrDepartmentNotFound = internal.NewNotFoundError("Department not found", internal.ErrCodeDepartmentNotFound)

type Repository interface {
	GetByName(ctx context.Context, name string) (*departmentDatamodel.Department, error)
	List(ctx context.Context) ([]*departmentDatamodel.Department, error)
	Create(ctx context.Context, d *departmentDatamodel.Department) error
}

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// GetByName returns nil, nil when no department carries the name.
func (s *Service) GetByName(ctx context.Context, name string) (*Department, error) {
	d, err := s.repo.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, ErrDepartmentNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return FromDataModel(d), nil
}

func (s *Service) List(ctx context.Context) ([]*Department, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("failed to list departments", "error", err)
		return nil, internal.NewInternalError("failed to list departments", err)
	}
	return FromDataModelSlice(records), nil
}

// EnsureDefaults creates any of DefaultNames that do not exist yet and
// returns how many were created.
func (s *Service) EnsureDefaults(ctx context.Context) (int, error) {
	created := 0
	for _, name := range DefaultNames {
		existing, err := s.GetByName(ctx, name)
		if err != nil {
			return created, err
		}
		if existing != nil {
			continue
		}
		if err := s.repo.Create(ctx, &departmentDatamodel.Department{Name: name}); err != nil {
			s.logger.Error("failed to create department", "error", err, "department", name)
			return created, err
		}
		created++
		s.logger.Info("department created", "department", name)
	}
	return created, nil
}
