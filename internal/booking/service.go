package booking

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/gradinita/leave-management/internal"
	"github.com/gradinita/leave-management/internal/core/datamodel/leave"
	"github.com/gradinita/leave-management/internal/core/datamodel/user"
)

// Service handles booking business logic: eligibility checking, creation and
// the two-phase optimistic removal.
type Service struct {
	repo   RepositoryAPI
	users  UserStore
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, users UserStore, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		users:  users,
		logger: logger,
	}
}

// CreateBooking reserves a range for the requester after the full eligibility
// check. State becomes visible to later availability computations only after
// the store confirms the write.
func (s *Service) CreateBooking(ctx context.Context, requester *user.User, dto CreateBookingDTO) (*leave.Booking, error) {
	start, end, err := dto.Validate()
	if err != nil {
		s.logger.Warn("booking validation failed", "error", err, "user_id", requester.ID)
		return nil, err
	}

	allBookings, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to load bookings for eligibility check", "error", err, "user_id", requester.ID)
		return nil, internal.NewInternalError("A apărut o eroare la salvarea rezervării.", err)
	}

	allUsers, err := s.users.GetAll()
	if err != nil {
		s.logger.Error("failed to load users for eligibility check", "error", err, "user_id", requester.ID)
		return nil, internal.NewInternalError("A apărut o eroare la salvarea rezervării.", err)
	}

	if err := CanBook(requester, start, end, allBookings, allUsers); err != nil {
		s.logger.Info("booking rejected",
			"user_id", requester.ID,
			"start", dto.StartDate,
			"end", dto.EndDate,
			"reason", err)
		return nil, err
	}

	return s.persist(requester.ID, start, end)
}

// CreateBookingForUser is the admin override: the self-overlap and
// role-concurrency rules are skipped deliberately so admins can correct
// records, including creating overlapping bookings.
func (s *Service) CreateBookingForUser(ctx context.Context, targetUserID string, dto CreateBookingDTO) (*leave.Booking, error) {
	start, end, err := dto.Validate()
	if err != nil {
		s.logger.Warn("admin booking validation failed", "error", err, "target_user_id", targetUserID)
		return nil, err
	}

	if _, err := s.users.GetByID(targetUserID); err != nil {
		s.logger.Warn("admin booking for unknown user", "target_user_id", targetUserID)
		return nil, internal.ErrUserNotFound
	}

	return s.persist(targetUserID, start, end)
}

func (s *Service) persist(userID string, start, end time.Time) (*leave.Booking, error) {
	b := &leave.Booking{
		ID:        uuid.NewString(),
		UserID:    userID,
		StartDate: start,
		EndDate:   end,
		CreatedAt: time.Now(),
	}

	if err := s.repo.Create(b); err != nil {
		s.logger.Error("failed to persist booking", "error", err, "user_id", userID)
		return nil, internal.NewInternalError("A apărut o eroare la salvarea rezervării.", err)
	}

	s.logger.Info("booking created",
		"booking_id", b.ID,
		"user_id", userID,
		"start", start.Format("2006-01-02"),
		"end", end.Format("2006-01-02"))

	return b, nil
}

func (s *Service) GetAll() ([]*leave.Booking, error) {
	bookings, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to load bookings", "error", err)
		return nil, err
	}
	return bookings, nil
}

func (s *Service) GetByUser(userID string) ([]*leave.Booking, error) {
	bookings, err := s.repo.GetByUser(userID)
	if err != nil {
		s.logger.Error("failed to load user bookings", "error", err, "user_id", userID)
		return nil, err
	}
	return bookings, nil
}

// RemoveBooking is optimistic: the record is reported removed either way, and
// the result says whether the store confirmed the delete so the caller can
// reconcile instead of getting stuck on a transient failure.
func (s *Service) RemoveBooking(ctx context.Context, id string) (RemoveResult, error) {
	if _, err := s.repo.GetByID(id); err != nil {
		return RemoveResult{}, internal.ErrBookingNotFound
	}

	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("booking delete not persisted", "error", err, "booking_id", id)
		return RemoveResult{Persisted: false, Error: err.Error()}, nil
	}

	s.logger.Info("booking removed", "booking_id", id)
	return RemoveResult{Persisted: true}, nil
}
