package balance

import (
	"context"

	"github.com/gradinita/leave-management/internal/workcalendar"
)

// ResetYearlyVacationDays performs the carryover roll for every user whose
// last reset year is behind the current year. Idempotent per user per year via
// the lastYearReset guard. Individual persistence failures are logged and
// skipped so one bad row cannot abort the whole batch.
//
// Unused days clamp at zero: a negative previous-year balance is not carried
// forward as debt.
func (e *Engine) ResetYearlyVacationDays(ctx context.Context) error {
	currentYear := e.Now().Year()

	users, err := e.users.GetAll()
	if err != nil {
		e.logger.Error("yearly reset: failed to load users", "error", err)
		return err
	}

	allBookings, err := e.bookings.GetAll()
	if err != nil {
		e.logger.Error("yearly reset: failed to load bookings", "error", err)
		return err
	}

	closedPeriods, err := e.closedPeriods.GetAll()
	if err != nil {
		e.logger.Error("yearly reset: failed to load closed periods", "error", err)
		return err
	}

	for _, u := range users {
		if u.LastYearReset >= currentYear {
			continue
		}

		previousYear := u.LastYearReset
		holidays := e.resolver.HolidayDates(ctx, previousYear)

		usedPreviousYear := 0
		for _, b := range allBookings {
			if b.UserID != u.ID || b.StartDate.Year() != previousYear {
				continue
			}
			start, end, ok := workcalendar.ClipToYear(b.StartDate, b.EndDate, previousYear)
			if !ok {
				continue
			}
			usedPreviousYear += workcalendar.WorkingDays(start, end, holidays)
		}

		for _, cp := range closedPeriods {
			start, end, ok := workcalendar.ClipToYear(cp.StartDate, cp.EndDate, previousYear)
			if !ok {
				continue
			}
			usedPreviousYear += workcalendar.WorkingDays(start, end, holidays)
		}

		totalPreviousYear := u.MaxVacationDays + u.RemainingDaysFromPreviousYear
		newRemaining := totalPreviousYear - usedPreviousYear
		if newRemaining < 0 {
			newRemaining = 0
		}

		if err := e.users.UpdateCarryover(u.ID, newRemaining, currentYear); err != nil {
			e.logger.Error("yearly reset: failed to persist carryover",
				"error", err,
				"user_id", u.ID,
				"previous_year", previousYear)
			continue
		}

		e.logger.Info("yearly reset: carryover rolled",
			"user_id", u.ID,
			"previous_year", previousYear,
			"used_days", usedPreviousYear,
			"remaining_days", newRemaining)
	}

	return nil
}
