package booking

import (
	"time"

	"github.com/gradinita/leave-management/internal/core/datamodel/leave"
	"github.com/gradinita/leave-management/internal/core/datamodel/user"
	"github.com/gradinita/leave-management/internal/holiday"
)

// RepositoryAPI defines the data access methods for bookings.
type RepositoryAPI interface {
	GetAll() ([]*leave.Booking, error)
	GetByUser(userID string) ([]*leave.Booking, error)
	GetByID(id string) (*leave.Booking, error)
	Create(b *leave.Booking) error
	Delete(id string) error
}

// UserStore is the slice of the user collaborator the checker needs: booking
// owners must be resolved to roles for the per-day concurrency rule.
type UserStore interface {
	GetAll() ([]*user.User, error)
	GetByID(id string) (*user.User, error)
}

type BookingResponse struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	CreatedAt int64  `json:"created_at"`
}

func ToResponse(b *leave.Booking) BookingResponse {
	return BookingResponse{
		ID:        b.ID,
		UserID:    b.UserID,
		StartDate: b.StartDate.Format(holiday.DateLayout),
		EndDate:   b.EndDate.Format(holiday.DateLayout),
		CreatedAt: b.CreatedAt.UnixMilli(),
	}
}

func ToResponseList(bookings []*leave.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, ToResponse(b))
	}
	return out
}

// RemoveResult reports the two phases of a booking removal. The record is
// always treated as gone by the caller; Persisted says whether the backing
// store confirmed the delete, so the caller may reconcile later instead of
// leaving the failure hidden.
type RemoveResult struct {
	Persisted bool   `json:"persisted"`
	Error     string `json:"error,omitempty"`
}

func overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !(aEnd.Before(bStart) || aStart.After(bEnd))
}

func covers(b *leave.Booking, day time.Time) bool {
	return !day.Before(b.StartDate) && !day.After(b.EndDate)
}
