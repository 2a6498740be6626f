// Package balance computes vacation-day availability and performs the yearly
// carryover roll.
package balance

import (
	"context"
	"log/slog"
	"time"

	"github.com/gradinita/leave-management/internal/core/datamodel/leave"
	"github.com/gradinita/leave-management/internal/core/datamodel/user"
	"github.com/gradinita/leave-management/internal/holiday"
	"github.com/gradinita/leave-management/internal/workcalendar"
)

type UserStore interface {
	GetAll() ([]*user.User, error)
	UpdateCarryover(userID string, remainingDays, lastYearReset int) error
}

type BookingStore interface {
	GetByUser(userID string) ([]*leave.Booking, error)
	GetAll() ([]*leave.Booking, error)
}

type ClosedPeriodStore interface {
	GetAll() ([]*leave.ClosedPeriod, error)
}

type Engine struct {
	users         UserStore
	bookings      BookingStore
	closedPeriods ClosedPeriodStore
	resolver      *holiday.Resolver
	logger        *slog.Logger

	// Now is the evaluation clock; overridable in tests.
	Now func() time.Time
}

func NewEngine(users UserStore, bookings BookingStore, closedPeriods ClosedPeriodStore, resolver *holiday.Resolver, logger *slog.Logger) *Engine {
	return &Engine{
		users:         users,
		bookings:      bookings,
		closedPeriods: closedPeriods,
		resolver:      resolver,
		logger:        logger,
		Now:           time.Now,
	}
}

// AvailableDays returns how many vacation days the user still has in the
// evaluation year. The result may be negative, signaling over-use.
//
// Used days are the working days of the user's own bookings starting in the
// evaluation year plus the working days of closed periods starting in that
// year; both are clipped to the year's boundaries and exclude weekends and
// legal holidays. If the yearly roll has not run yet for this user, the stored
// carryover is used as-is; refreshing it is the reset's job, not the engine's.
func (e *Engine) AvailableDays(ctx context.Context, u *user.User, bookings []*leave.Booking, closedPeriods []*leave.ClosedPeriod) int {
	year := e.Now().Year()
	holidays := e.resolver.HolidayDates(ctx, year)
	return AvailableDays(u, bookings, holidays, closedPeriods, year)
}

// AvailableDays is the pure variant, for callers that already hold the
// evaluation year's holiday set.
func AvailableDays(u *user.User, bookings []*leave.Booking, holidays holiday.Set, closedPeriods []*leave.ClosedPeriod, year int) int {
	used := usedDays(u.ID, bookings, holidays, closedPeriods, year)

	total := u.MaxVacationDays + u.RemainingDaysFromPreviousYear
	return total - used
}

func usedDays(userID string, bookings []*leave.Booking, holidays holiday.Set, closedPeriods []*leave.ClosedPeriod, year int) int {
	used := 0

	for _, b := range bookings {
		if b.UserID != userID || b.StartDate.Year() != year {
			continue
		}
		start, end, ok := workcalendar.ClipToYear(b.StartDate, b.EndDate, year)
		if !ok {
			continue
		}
		used += workcalendar.WorkingDays(start, end, holidays)
	}

	// Closed periods consume quota for everyone, bookings or not.
	for _, cp := range closedPeriods {
		if cp.StartDate.Year() != year {
			continue
		}
		start, end, ok := workcalendar.ClipToYear(cp.StartDate, cp.EndDate, year)
		if !ok {
			continue
		}
		used += workcalendar.WorkingDays(start, end, holidays)
	}

	return used
}

// AvailableDaysForUser loads the user's bookings and the closed periods and
// evaluates availability for the current year.
func (e *Engine) AvailableDaysForUser(ctx context.Context, u *user.User) (int, error) {
	bookings, err := e.bookings.GetByUser(u.ID)
	if err != nil {
		e.logger.Error("failed to load bookings for availability", "error", err, "user_id", u.ID)
		return 0, err
	}

	closedPeriods, err := e.closedPeriods.GetAll()
	if err != nil {
		e.logger.Error("failed to load closed periods for availability", "error", err, "user_id", u.ID)
		return 0, err
	}

	return e.AvailableDays(ctx, u, bookings, closedPeriods), nil
}
