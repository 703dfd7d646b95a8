package user

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/frahmantamala/complaint-redressal/internal"
	userDatamodel "github.com/frahmantamala/complaint-redressal/internal/core/datamodel/user"
)

type Repository interface {
	// Create returns internal.ErrUsernameTaken on a unique violation.
	Create(ctx context.Context, u *userDatamodel.User) error
	GetByID(ctx context.Context, id int64) (*userDatamodel.User, error)
	// UsernameTaken checks both the users and the admins table.
	UsernameTaken(ctx context.Context, username string) (bool, error)
	CreateAdmin(ctx context.Context, a *userDatamodel.Admin) error
	GetAdminByUsername(ctx context.Context, username string) (*userDatamodel.Admin, error)
}

type PasswordHasher interface {
	HashPassword(password string) (string, error)
}

type Service struct {
	repo   Repository
	hasher PasswordHasher
	logger *slog.Logger
}

func NewService(repo Repository, hasher PasswordHasher, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		repo:   repo,
		hasher: hasher,
		logger: logger,
	}
}

func (s *Service) Register(ctx context.Context, dto RegisterDTO) (*User, error) {
	dto.Username = strings.TrimSpace(dto.Username)
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	taken, err := s.repo.UsernameTaken(ctx, dto.Username)
	if err != nil {
		s.logger.Error("failed to check username", "error", err)
		return nil, internal.NewInternalError("failed to register user", err)
	}
	if taken {
		s.logger.Warn("registration with taken username", "username", dto.Username)
		return nil, internal.ErrUsernameTaken
	}

	hash, err := s.hasher.HashPassword(dto.Password)
	if err != nil {
		return nil, internal.NewInternalError("failed to hash password", err)
	}

	record := &userDatamodel.User{
		Username:     dto.Username,
		PasswordHash: hash,
	}
	if err := s.repo.Create(ctx, record); err != nil {
		if errors.Is(err, internal.ErrUsernameTaken) {
			return nil, internal.ErrUsernameTaken
		}
		s.logger.Error("failed to create user", "error", err, "username", dto.Username)
		return nil, internal.NewInternalError("failed to register user", err)
	}

	s.logger.Info("user registered", "user_id", record.ID, "username", record.Username)
	return FromDataModel(record), nil
}

func (s *Service) GetByID(ctx context.Context, userID int64) (*User, error) {
	u, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, internal.ErrUserNotFound) {
			return nil, internal.ErrUserNotFound
		}
		return nil, internal.NewInternalError("failed to get user", err)
	}
	return FromDataModel(u), nil
}

// EnsureAdmin creates the admin account unless it already exists. The boolean
// reports whether a new account was created.
func (s *Service) EnsureAdmin(ctx context.Context, dto CreateAdminDTO) (*Admin, bool, error) {
	dto.Username = strings.TrimSpace(dto.Username)
	if err := dto.Validate(); err != nil {
		return nil, false, err
	}

	existing, err := s.repo.GetAdminByUsername(ctx, dto.Username)
	if err == nil {
		return AdminFromDataModel(existing), false, nil
	}
	if !errors.Is(err, internal.ErrAdminNotFound) {
		return nil, false, internal.NewInternalError("failed to look up admin", err)
	}

	taken, err := s.repo.UsernameTaken(ctx, dto.Username)
	if err != nil {
		return nil, false, internal.NewInternalError("failed to check username", err)
	}
	if taken {
		return nil, false, internal.ErrUsernameTaken
	}

	hash, err := s.hasher.HashPassword(dto.Password)
	if err != nil {
		return nil, false, internal.NewInternalError("failed to hash password", err)
	}

	record := &userDatamodel.Admin{
		Username:     dto.Username,
		PasswordHash: hash,
		DepartmentID: dto.DepartmentID,
	}
	if err := s.repo.CreateAdmin(ctx, record); err != nil {
		if errors.Is(err, internal.ErrUsernameTaken) {
			return nil, false, internal.ErrUsernameTaken
		}
		return nil, false, internal.NewInternalError("failed to create admin", err)
	}

	s.logger.Info("admin created", "admin_id", record.ID, "username", record.Username)
	return AdminFromDataModel(record), true, nil
}
