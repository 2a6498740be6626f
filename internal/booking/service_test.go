package booking_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/gradinita/leave-management/internal"
	"github.com/gradinita/leave-management/internal/booking"
	"github.com/gradinita/leave-management/internal/core/datamodel/leave"
	"github.com/gradinita/leave-management/internal/core/datamodel/user"
)

func TestBooking(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Booking Suite")
}

type mockBookingRepository struct {
	bookings  map[string]*leave.Booking
	createErr error
	deleteErr error
	getAllErr error
}

func newMockBookingRepository() *mockBookingRepository {
	return &mockBookingRepository{bookings: make(map[string]*leave.Booking)}
}

func (m *mockBookingRepository) GetAll() ([]*leave.Booking, error) {
	if m.getAllErr != nil {
		return nil, m.getAllErr
	}
	out := make([]*leave.Booking, 0, len(m.bookings))
	for _, b := range m.bookings {
		out = append(out, b)
	}
	return out, nil
}

func (m *mockBookingRepository) GetByUser(userID string) ([]*leave.Booking, error) {
	var out []*leave.Booking
	for _, b := range m.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *mockBookingRepository) GetByID(id string) (*leave.Booking, error) {
	b, ok := m.bookings[id]
	if !ok {
		return nil, internal.ErrBookingNotFound
	}
	return b, nil
}

func (m *mockBookingRepository) Create(b *leave.Booking) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.bookings[b.ID] = b
	return nil
}

func (m *mockBookingRepository) Delete(id string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	delete(m.bookings, id)
	return nil
}

type mockUserStore struct {
	users map[string]*user.User
}

func (m *mockUserStore) GetAll() ([]*user.User, error) {
	out := make([]*user.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, u)
	}
	return out, nil
}

func (m *mockUserStore) GetByID(id string) (*user.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, internal.ErrUserNotFound
	}
	return u, nil
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

var _ = Describe("BookingService", func() {
	var (
		repo    *mockBookingRepository
		users   *mockUserStore
		service *booking.Service
		ctx     context.Context

		educator1 *user.User
		educator2 *user.User
		auxiliary *user.User
		admin1    *user.User
		admin2    *user.User
	)

	seedBooking := func(id, userID string, start, end time.Time) {
		repo.bookings[id] = &leave.Booking{
			ID:        id,
			UserID:    userID,
			StartDate: start,
			EndDate:   end,
		}
	}

	BeforeEach(func() {
		ctx = context.Background()

		educator1 = &user.User{ID: "e1", Name: "Popa Ana-Maria", Role: user.RoleEducator, Active: true}
		educator2 = &user.User{ID: "e2", Name: "Marin Elena", Role: user.RoleEducator, Active: true}
		auxiliary = &user.User{ID: "a1", Name: "Ghiciu Marinela", Role: user.RoleAuxiliary, Active: true}
		admin1 = &user.User{ID: "adm1", Name: "Rusănescu Irina Petruța", Role: user.RoleAdmin, Active: true}
		admin2 = &user.User{ID: "adm2", Name: "Tarșițu Roxana", Role: user.RoleAdmin, Active: true}

		repo = newMockBookingRepository()
		users = &mockUserStore{users: map[string]*user.User{
			"e1": educator1, "e2": educator2, "a1": auxiliary, "adm1": admin1, "adm2": admin2,
		}}

		lg := slog.New(slog.NewTextHandler(io.Discard, nil))
		service = booking.NewService(repo, users, lg)
	})

	Describe("CreateBooking", func() {
		It("persists a conflict-free booking", func() {
			b, err := service.CreateBooking(ctx, educator1, booking.CreateBookingDTO{
				StartDate: "2025-03-03",
				EndDate:   "2025-03-07",
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(b.ID).NotTo(BeEmpty())
			Expect(b.UserID).To(Equal("e1"))
			Expect(repo.bookings).To(HaveKey(b.ID))
		})

		It("rejects a range with start after end", func() {
			_, err := service.CreateBooking(ctx, educator1, booking.CreateBookingDTO{
				StartDate: "2025-03-07",
				EndDate:   "2025-03-03",
			})

			Expect(err).To(MatchError(internal.ErrStartAfterEnd))
		})

		It("rejects unparseable dates", func() {
			_, err := service.CreateBooking(ctx, educator1, booking.CreateBookingDTO{
				StartDate: "03.03.2025",
				EndDate:   "2025-03-07",
			})

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Code).To(Equal(internal.ErrCodeInvalidDateRange))
		})

		It("rejects a booking overlapping the requester's own", func() {
			seedBooking("b1", "e1", date(2025, time.March, 5), date(2025, time.March, 10))

			_, err := service.CreateBooking(ctx, educator1, booking.CreateBookingDTO{
				StartDate: "2025-03-03",
				EndDate:   "2025-03-07",
			})

			Expect(err).To(MatchError(internal.ErrBookingOverlap))
		})

		It("rejects a day already taken by another educator", func() {
			seedBooking("b1", "e2", date(2025, time.March, 5), date(2025, time.March, 5))

			_, err := service.CreateBooking(ctx, educator1, booking.CreateBookingDTO{
				StartDate: "2025-03-03",
				EndDate:   "2025-03-07",
			})

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Code).To(Equal(internal.ErrCodeRoleDayTaken))
			Expect(appErr.Message).To(ContainSubstring("05.03.2025"))
		})

		It("allows an educator and an auxiliary on the same day", func() {
			seedBooking("b1", "a1", date(2025, time.March, 3), date(2025, time.March, 7))

			_, err := service.CreateBooking(ctx, educator1, booking.CreateBookingDTO{
				StartDate: "2025-03-03",
				EndDate:   "2025-03-07",
			})

			Expect(err).NotTo(HaveOccurred())
		})

		It("rejects an auxiliary when another auxiliary is already off", func() {
			seedBooking("b1", "a1", date(2025, time.March, 3), date(2025, time.March, 7))

			aux2 := &user.User{ID: "a2", Name: "Burduje Elena", Role: user.RoleAuxiliary, Active: true}
			users.users["a2"] = aux2

			_, err := service.CreateBooking(ctx, aux2, booking.CreateBookingDTO{
				StartDate: "2025-03-07",
				EndDate:   "2025-03-11",
			})

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Code).To(Equal(internal.ErrCodeRoleDayTaken))
		})

		It("leaves admins unconstrained by role concurrency", func() {
			seedBooking("b1", "adm2", date(2025, time.March, 3), date(2025, time.March, 7))

			_, err := service.CreateBooking(ctx, admin1, booking.CreateBookingDTO{
				StartDate: "2025-03-03",
				EndDate:   "2025-03-07",
			})

			Expect(err).NotTo(HaveOccurred())
		})

		It("wraps repository failures as internal errors", func() {
			repo.getAllErr = errors.New("db down")

			_, err := service.CreateBooking(ctx, educator1, booking.CreateBookingDTO{
				StartDate: "2025-03-03",
				EndDate:   "2025-03-07",
			})

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Type).To(Equal(internal.ErrorTypeInternal))
		})
	})

	Describe("CreateBookingForUser", func() {
		It("bypasses overlap and concurrency rules", func() {
			seedBooking("b1", "e1", date(2025, time.March, 3), date(2025, time.March, 7))
			seedBooking("b2", "e2", date(2025, time.March, 3), date(2025, time.March, 7))

			b, err := service.CreateBookingForUser(ctx, "e1", booking.CreateBookingDTO{
				StartDate: "2025-03-03",
				EndDate:   "2025-03-07",
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(b.UserID).To(Equal("e1"))
		})

		It("still validates the date range", func() {
			_, err := service.CreateBookingForUser(ctx, "e1", booking.CreateBookingDTO{
				StartDate: "2025-03-07",
				EndDate:   "2025-03-03",
			})

			Expect(err).To(MatchError(internal.ErrStartAfterEnd))
		})

		It("rejects an unknown target user", func() {
			_, err := service.CreateBookingForUser(ctx, "ghost", booking.CreateBookingDTO{
				StartDate: "2025-03-03",
				EndDate:   "2025-03-07",
			})

			Expect(err).To(MatchError(internal.ErrUserNotFound))
		})
	})

	Describe("RemoveBooking", func() {
		It("reports a persisted removal", func() {
			seedBooking("b1", "e1", date(2025, time.March, 3), date(2025, time.March, 7))

			result, err := service.RemoveBooking(ctx, "b1")

			Expect(err).NotTo(HaveOccurred())
			Expect(result.Persisted).To(BeTrue())
			Expect(repo.bookings).NotTo(HaveKey("b1"))
		})

		It("returns not found for an unknown booking", func() {
			_, err := service.RemoveBooking(ctx, "ghost")
			Expect(err).To(MatchError(internal.ErrBookingNotFound))
		})

		It("reports an unpersisted removal instead of failing", func() {
			seedBooking("b1", "e1", date(2025, time.March, 3), date(2025, time.March, 7))
			repo.deleteErr = errors.New("write failed")

			result, err := service.RemoveBooking(ctx, "b1")

			Expect(err).NotTo(HaveOccurred())
			Expect(result.Persisted).To(BeFalse())
			Expect(result.Error).To(ContainSubstring("write failed"))
		})
	})
})
