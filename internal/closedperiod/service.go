package closedperiod

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/gradinita/leave-management/internal"
	"github.com/gradinita/leave-management/internal/core/datamodel/leave"
)

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// CreateClosedPeriod records an organization-wide shutdown. Quota consumption
// happens at evaluation time in the balance engine; nothing is precomputed
// here.
func (s *Service) CreateClosedPeriod(ctx context.Context, dto CreateClosedPeriodDTO) (*leave.ClosedPeriod, error) {
	start, end, err := dto.Validate()
	if err != nil {
		s.logger.Warn("closed period validation failed", "error", err)
		return nil, err
	}

	cp := &leave.ClosedPeriod{
		ID:          uuid.NewString(),
		StartDate:   start,
		EndDate:     end,
		Description: dto.Description,
		CreatedAt:   time.Now(),
	}

	if err := s.repo.Create(cp); err != nil {
		s.logger.Error("failed to persist closed period", "error", err)
		return nil, internal.NewInternalError("A apărut o eroare la salvarea perioadei.", err)
	}

	s.logger.Info("closed period created",
		"closed_period_id", cp.ID,
		"start", dto.StartDate,
		"end", dto.EndDate)

	return cp, nil
}

func (s *Service) GetAll() ([]*leave.ClosedPeriod, error) {
	periods, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to load closed periods", "error", err)
		return nil, err
	}
	return periods, nil
}

func (s *Service) RemoveClosedPeriod(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return internal.ErrClosedPeriodNotFound
	}

	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete closed period", "error", err, "closed_period_id", id)
		return internal.NewInternalError("A apărut o eroare la ștergerea perioadei.", err)
	}

	s.logger.Info("closed period removed", "closed_period_id", id)
	return nil
}
