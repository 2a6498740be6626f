package user

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/gradinita/leave-management/internal"
	"github.com/gradinita/leave-management/internal/core/datamodel/user"
)

type Service struct {
	repo   RepositoryAPI
	hasher PasswordHasher
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, hasher PasswordHasher, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		hasher: hasher,
		logger: logger,
	}
}

func (s *Service) GetAll() ([]*user.User, error) {
	users, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to load users", "error", err)
		return nil, err
	}
	SortRoster(users)
	return users, nil
}

func (s *Service) GetByID(id string) (*user.User, error) {
	u, err := s.repo.GetByID(id)
	if err != nil {
		return nil, internal.ErrUserNotFound
	}
	return u, nil
}

// CreateUser registers a staff member with the default quota and a password
// that must be changed at first login.
func (s *Service) CreateUser(ctx context.Context, dto CreateUserDTO) (*user.User, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Warn("user validation failed", "error", err)
		return nil, err
	}

	if existing, err := s.repo.GetByUsername(dto.Username); err == nil && existing != nil {
		return nil, internal.ErrUsernameTaken
	}

	now := time.Now()
	u := &user.User{
		ID:                 fmt.Sprintf("%s-%d", strings.ToLower(string(dto.Role)), now.UnixMilli()),
		Name:               dto.Name,
		Role:               dto.Role,
		Username:           dto.Username,
		PasswordHash:       s.hasher.Hash(dto.Password),
		MustChangePassword: true,
		MaxVacationDays:    user.DefaultVacationDays,
		LastYearReset:      now.Year(),
		Active:             true,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := s.repo.Create(u); err != nil {
		s.logger.Error("failed to persist user", "error", err, "username", dto.Username)
		return nil, internal.NewInternalError("Eroare la crearea utilizatorului", err)
	}

	s.logger.Info("user created", "user_id", u.ID, "role", u.Role, "username", u.Username)
	return u, nil
}

func (s *Service) SetMaxVacationDays(ctx context.Context, userID string, dto SetVacationDaysDTO) error {
	if err := dto.Validate(); err != nil {
		return err
	}

	u, err := s.repo.GetByID(userID)
	if err != nil {
		return internal.ErrUserNotFound
	}

	u.MaxVacationDays = dto.Days
	u.UpdatedAt = time.Now()

	if err := s.repo.Update(u); err != nil {
		s.logger.Error("failed to update vacation days", "error", err, "user_id", userID)
		return internal.NewInternalError("A apărut o eroare la actualizarea zilelor.", err)
	}

	s.logger.Info("vacation quota updated", "user_id", userID, "max_vacation_days", dto.Days)
	return nil
}

// ToggleActive flips the account's active flag. Staff are never hard-deleted;
// leaving records must stay attributable.
func (s *Service) ToggleActive(ctx context.Context, userID string) (*user.User, error) {
	u, err := s.repo.GetByID(userID)
	if err != nil {
		return nil, internal.ErrUserNotFound
	}

	u.Active = !u.Active
	u.UpdatedAt = time.Now()

	if err := s.repo.Update(u); err != nil {
		s.logger.Error("failed to toggle user active flag", "error", err, "user_id", userID)
		return nil, internal.NewInternalError("Eroare la actualizarea statusului", err)
	}

	s.logger.Info("user active flag toggled", "user_id", userID, "active", u.Active)
	return u, nil
}

// ResetPassword sets the account back to the default password and forces a
// change at next login.
func (s *Service) ResetPassword(ctx context.Context, userID string) error {
	u, err := s.repo.GetByID(userID)
	if err != nil {
		return internal.ErrUserNotFound
	}

	u.PasswordHash = s.hasher.Hash(DefaultPassword)
	u.MustChangePassword = true
	u.UpdatedAt = time.Now()

	if err := s.repo.Update(u); err != nil {
		s.logger.Error("failed to reset password", "error", err, "user_id", userID)
		return internal.NewInternalError("A apărut o eroare la resetarea parolei.", err)
	}

	s.logger.Info("password reset to default", "user_id", userID)
	return nil
}
