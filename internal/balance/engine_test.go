package balance_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/gradinita/leave-management/internal/balance"
	"github.com/gradinita/leave-management/internal/core/datamodel/leave"
	"github.com/gradinita/leave-management/internal/core/datamodel/user"
	"github.com/gradinita/leave-management/internal/holiday"
)

func TestBalance(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Balance Suite")
}

type mockUserStore struct {
	users     []*user.User
	getErr    error
	updateErr map[string]error
}

func (m *mockUserStore) GetAll() ([]*user.User, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.users, nil
}

func (m *mockUserStore) UpdateCarryover(userID string, remainingDays, lastYearReset int) error {
	if err := m.updateErr[userID]; err != nil {
		return err
	}
	for _, u := range m.users {
		if u.ID == userID {
			u.RemainingDaysFromPreviousYear = remainingDays
			u.LastYearReset = lastYearReset
			return nil
		}
	}
	return errors.New("user not found")
}

type mockBookingStore struct {
	bookings []*leave.Booking
}

func (m *mockBookingStore) GetAll() ([]*leave.Booking, error) {
	return m.bookings, nil
}

func (m *mockBookingStore) GetByUser(userID string) ([]*leave.Booking, error) {
	var out []*leave.Booking
	for _, b := range m.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

type mockClosedPeriodStore struct {
	periods []*leave.ClosedPeriod
}

func (m *mockClosedPeriodStore) GetAll() ([]*leave.ClosedPeriod, error) {
	return m.periods, nil
}

type unreachableSource struct{}

func (unreachableSource) FetchHolidays(ctx context.Context, year int) (holiday.Set, error) {
	return nil, errors.New("unreachable")
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func booking(userID string, start, end time.Time) *leave.Booking {
	return &leave.Booking{ID: "b-" + userID + start.Format("20060102"), UserID: userID, StartDate: start, EndDate: end}
}

var _ = Describe("Engine", func() {
	var (
		users    *mockUserStore
		bookings *mockBookingStore
		closed   *mockClosedPeriodStore
		engine   *balance.Engine
		ctx      context.Context
		ana      *user.User
	)

	BeforeEach(func() {
		ctx = context.Background()
		ana = &user.User{
			ID:              "1",
			Name:            "Popa Ana-Maria",
			Role:            user.RoleEducator,
			MaxVacationDays: 28,
			LastYearReset:   2025,
			Active:          true,
		}
		users = &mockUserStore{users: []*user.User{ana}, updateErr: map[string]error{}}
		bookings = &mockBookingStore{}
		closed = &mockClosedPeriodStore{}

		lg := slog.New(slog.NewTextHandler(io.Discard, nil))
		resolver := holiday.NewResolver(unreachableSource{}, holiday.NewMemoryCache(), lg)
		engine = balance.NewEngine(users, bookings, closed, resolver, lg)
		engine.Now = func() time.Time { return date(2025, time.July, 15) }
	})

	Describe("AvailableDays", func() {
		It("returns the full quota when nothing was used", func() {
			days, err := engine.AvailableDaysForUser(ctx, ana)
			Expect(err).NotTo(HaveOccurred())
			Expect(days).To(Equal(28))
		})

		It("adds the carryover from the previous year", func() {
			ana.RemainingDaysFromPreviousYear = 2

			days, err := engine.AvailableDaysForUser(ctx, ana)
			Expect(err).NotTo(HaveOccurred())
			Expect(days).To(Equal(30))
		})

		It("subtracts the working days of the user's bookings", func() {
			bookings.bookings = []*leave.Booking{
				booking("1", date(2025, time.March, 3), date(2025, time.March, 7)),
			}

			days, err := engine.AvailableDaysForUser(ctx, ana)
			Expect(err).NotTo(HaveOccurred())
			Expect(days).To(Equal(23))
		})

		It("ignores weekends and holidays inside a booking", func() {
			// Mon Dec 22 .. Fri Dec 26: Dec 25 and 26 are holidays.
			bookings.bookings = []*leave.Booking{
				booking("1", date(2025, time.December, 22), date(2025, time.December, 26)),
			}

			days, err := engine.AvailableDaysForUser(ctx, ana)
			Expect(err).NotTo(HaveOccurred())
			Expect(days).To(Equal(25))
		})

		It("does not count other users' bookings", func() {
			bookings.bookings = []*leave.Booking{
				booking("2", date(2025, time.March, 3), date(2025, time.March, 7)),
			}

			days, err := engine.AvailableDaysForUser(ctx, ana)
			Expect(err).NotTo(HaveOccurred())
			Expect(days).To(Equal(28))
		})

		It("ignores bookings that started in another year", func() {
			bookings.bookings = []*leave.Booking{
				booking("1", date(2024, time.August, 5), date(2024, time.August, 9)),
			}

			days, err := engine.AvailableDaysForUser(ctx, ana)
			Expect(err).NotTo(HaveOccurred())
			Expect(days).To(Equal(28))
		})

		It("clips a booking that spills into the next year", func() {
			// Mon Dec 29 .. Mon Jan 5: only Dec 29-31 count for 2025.
			bookings.bookings = []*leave.Booking{
				booking("1", date(2025, time.December, 29), date(2026, time.January, 5)),
			}

			days, err := engine.AvailableDaysForUser(ctx, ana)
			Expect(err).NotTo(HaveOccurred())
			Expect(days).To(Equal(25))
		})

		It("charges closed periods to every user", func() {
			closed.periods = []*leave.ClosedPeriod{
				{ID: "cp1", StartDate: date(2025, time.August, 11), EndDate: date(2025, time.August, 13)},
			}

			days, err := engine.AvailableDaysForUser(ctx, ana)
			Expect(err).NotTo(HaveOccurred())
			Expect(days).To(Equal(25))
		})

		It("goes negative when usage exceeds the quota", func() {
			ana.MaxVacationDays = 2
			bookings.bookings = []*leave.Booking{
				booking("1", date(2025, time.March, 3), date(2025, time.March, 7)),
			}

			days, err := engine.AvailableDaysForUser(ctx, ana)
			Expect(err).NotTo(HaveOccurred())
			Expect(days).To(Equal(-3))
		})
	})

	Describe("ResetYearlyVacationDays", func() {
		BeforeEach(func() {
			ana.LastYearReset = 2024
		})

		It("rolls unused days into the carryover and advances the reset year", func() {
			bookings.bookings = []*leave.Booking{
				booking("1", date(2024, time.March, 4), date(2024, time.March, 8)),
			}

			Expect(engine.ResetYearlyVacationDays(ctx)).To(Succeed())

			Expect(ana.RemainingDaysFromPreviousYear).To(Equal(23))
			Expect(ana.LastYearReset).To(Equal(2025))
		})

		It("is idempotent within a year", func() {
			Expect(engine.ResetYearlyVacationDays(ctx)).To(Succeed())
			first := ana.RemainingDaysFromPreviousYear

			Expect(engine.ResetYearlyVacationDays(ctx)).To(Succeed())
			Expect(ana.RemainingDaysFromPreviousYear).To(Equal(first))
			Expect(ana.LastYearReset).To(Equal(2025))
		})

		It("skips users already reset this year", func() {
			ana.LastYearReset = 2025
			ana.RemainingDaysFromPreviousYear = 7

			Expect(engine.ResetYearlyVacationDays(ctx)).To(Succeed())
			Expect(ana.RemainingDaysFromPreviousYear).To(Equal(7))
		})

		It("clamps the carryover at zero instead of carrying debt", func() {
			ana.MaxVacationDays = 2
			bookings.bookings = []*leave.Booking{
				booking("1", date(2024, time.June, 3), date(2024, time.June, 14)),
			}

			Expect(engine.ResetYearlyVacationDays(ctx)).To(Succeed())
			Expect(ana.RemainingDaysFromPreviousYear).To(Equal(0))
		})

		It("counts closed periods overlapping the previous year, clipped", func() {
			// Tue Dec 30 + Wed Dec 31 belong to 2024; the January tail does not.
			closed.periods = []*leave.ClosedPeriod{
				{ID: "cp1", StartDate: date(2024, time.December, 30), EndDate: date(2025, time.January, 3)},
			}

			Expect(engine.ResetYearlyVacationDays(ctx)).To(Succeed())
			Expect(ana.RemainingDaysFromPreviousYear).To(Equal(26))
		})

		It("continues past users whose persist fails", func() {
			maria := &user.User{
				ID:              "2",
				Name:            "Marin Elena",
				Role:            user.RoleEducator,
				MaxVacationDays: 28,
				LastYearReset:   2024,
				Active:          true,
			}
			users.users = append(users.users, maria)
			users.updateErr["1"] = errors.New("write failed")

			Expect(engine.ResetYearlyVacationDays(ctx)).To(Succeed())

			Expect(ana.LastYearReset).To(Equal(2024), "failed user stays unrolled")
			Expect(maria.LastYearReset).To(Equal(2025))
			Expect(maria.RemainingDaysFromPreviousYear).To(Equal(28))
		})

		It("fails when the roster cannot be loaded", func() {
			users.getErr = errors.New("db down")
			Expect(engine.ResetYearlyVacationDays(ctx)).NotTo(Succeed())
		})
	})
})
