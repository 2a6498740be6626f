package medicalleave

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/gradinita/leave-management/internal"
	"github.com/gradinita/leave-management/internal/core/datamodel/leave"
	"github.com/gradinita/leave-management/internal/workcalendar"
)

type Service struct {
	repo    RepositoryAPI
	counter *workcalendar.Counter
	logger  *slog.Logger
}

func NewService(repo RepositoryAPI, counter *workcalendar.Counter, logger *slog.Logger) *Service {
	return &Service{
		repo:    repo,
		counter: counter,
		logger:  logger,
	}
}

// CreateMedicalLeave computes the record's working days once, through the
// resolver-backed counter, and freezes the value on the row. Historical
// reports must not move when the holiday calendar is refreshed later.
func (s *Service) CreateMedicalLeave(ctx context.Context, dto CreateMedicalLeaveDTO) (*leave.MedicalLeave, error) {
	start, end, err := dto.Validate()
	if err != nil {
		s.logger.Warn("medical leave validation failed", "error", err, "user_id", dto.UserID)
		return nil, err
	}

	workingDays := s.counter.WorkingDays(ctx, start, end)

	ml := &leave.MedicalLeave{
		ID:          uuid.NewString(),
		UserID:      dto.UserID,
		StartDate:   start,
		EndDate:     end,
		DiseaseCode: dto.DiseaseCode,
		WorkingDays: workingDays,
		Year:        start.Year(),
		CreatedAt:   time.Now(),
	}

	if err := s.repo.Create(ml); err != nil {
		s.logger.Error("failed to persist medical leave", "error", err, "user_id", dto.UserID)
		return nil, internal.NewInternalError("A apărut o eroare la salvarea concediului medical.", err)
	}

	s.logger.Info("medical leave created",
		"medical_leave_id", ml.ID,
		"user_id", ml.UserID,
		"disease_code", ml.DiseaseCode,
		"working_days", ml.WorkingDays,
		"year", ml.Year)

	return ml, nil
}

func (s *Service) GetAll() ([]*leave.MedicalLeave, error) {
	leaves, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to load medical leaves", "error", err)
		return nil, err
	}
	return leaves, nil
}

func (s *Service) GetByUser(userID string) ([]*leave.MedicalLeave, error) {
	leaves, err := s.repo.GetByUser(userID)
	if err != nil {
		s.logger.Error("failed to load user medical leaves", "error", err, "user_id", userID)
		return nil, err
	}
	return leaves, nil
}

// TotalDaysForUserInYear sums the frozen working-day snapshots attributed to
// a year, for the annual report.
func (s *Service) TotalDaysForUserInYear(userID string, year int) (int, error) {
	leaves, err := s.repo.GetByUserAndYear(userID, year)
	if err != nil {
		s.logger.Error("failed to load medical leaves for year", "error", err, "user_id", userID, "year", year)
		return 0, err
	}

	total := 0
	for _, ml := range leaves {
		total += ml.WorkingDays
	}
	return total, nil
}

func (s *Service) RemoveMedicalLeave(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return internal.ErrMedicalLeaveNotFound
	}

	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete medical leave", "error", err, "medical_leave_id", id)
		return internal.NewInternalError("A apărut o eroare la ștergerea concediului medical.", err)
	}

	s.logger.Info("medical leave removed", "medical_leave_id", id)
	return nil
}
