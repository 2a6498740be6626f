package booking

import (
	"fmt"
	"time"

	"github.com/gradinita/leave-management/internal"
	"github.com/gradinita/leave-management/internal/core/datamodel/leave"
	"github.com/gradinita/leave-management/internal/core/datamodel/user"
)

// conflictDateLayout matches the day-month-year form shown to staff.
const conflictDateLayout = "02.01.2006"

// CanBook decides whether the requester may reserve [start, end]. Rules are
// checked in order and the first failure wins:
//
//  1. start must not be after end.
//  2. The requester must not already have an overlapping booking.
//  3. On every calendar day of the range, at most one EDUCATOR and one
//     AUXILIARY may be on leave; the requester's own bookings do not count
//     against them. Admins are unconstrained.
//
// Admin-initiated bookings on behalf of another staff member skip rules 2-3
// entirely; see Service.CreateBookingForUser.
func CanBook(requester *user.User, start, end time.Time, allBookings []*leave.Booking, allUsers []*user.User) error {
	if start.After(end) {
		return internal.ErrStartAfterEnd
	}

	for _, b := range allBookings {
		if b.UserID == requester.ID && overlaps(start, end, b.StartDate, b.EndDate) {
			return internal.ErrBookingOverlap
		}
	}

	limit, constrained := requester.Role.MaxConcurrent()
	if !constrained {
		return nil
	}

	rolesByID := make(map[string]user.Role, len(allUsers))
	for _, u := range allUsers {
		rolesByID[u.ID] = u.Role
	}

	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		sameRole := 0
		for _, b := range allBookings {
			if b.UserID == requester.ID {
				continue
			}
			if !covers(b, day) {
				continue
			}
			if rolesByID[b.UserID] == requester.Role {
				sameRole++
			}
		}

		if sameRole >= limit {
			return conflictError(requester.Role, day)
		}
	}

	return nil
}

func conflictError(role user.Role, day time.Time) error {
	var who string
	if role == user.RoleEducator {
		who = "o educatoare"
	} else {
		who = "o persoană auxiliară"
	}
	msg := fmt.Sprintf("Există deja %s în concediu pe data %s.", who, day.Format(conflictDateLayout))
	return internal.NewConflictError(msg, internal.ErrCodeRoleDayTaken)
}
