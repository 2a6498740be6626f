package user_test

import (
	"context"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"io"
	"log/slog"

	"github.com/gradinita/leave-management/internal"
	datamodel "github.com/gradinita/leave-management/internal/core/datamodel/user"
	userdomain "github.com/gradinita/leave-management/internal/user"
)

func TestUser(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "User Suite")
}

type mockUserRepository struct {
	users map[string]*datamodel.User
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{users: make(map[string]*datamodel.User)}
}

func (m *mockUserRepository) GetAll() ([]*datamodel.User, error) {
	out := make([]*datamodel.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, u)
	}
	return out, nil
}

func (m *mockUserRepository) GetByID(id string) (*datamodel.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, internal.ErrUserNotFound
	}
	return u, nil
}

func (m *mockUserRepository) GetByUsername(username string) (*datamodel.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, internal.ErrUserNotFound
}

func (m *mockUserRepository) Create(u *datamodel.User) error {
	m.users[u.ID] = u
	return nil
}

func (m *mockUserRepository) Update(u *datamodel.User) error {
	m.users[u.ID] = u
	return nil
}

func (m *mockUserRepository) UpdateCarryover(userID string, remainingDays, lastYearReset int) error {
	u, ok := m.users[userID]
	if !ok {
		return internal.ErrUserNotFound
	}
	u.RemainingDaysFromPreviousYear = remainingDays
	u.LastYearReset = lastYearReset
	return nil
}

type fixedHasher struct{}

func (fixedHasher) Hash(plain string) string { return "hash(" + plain + ")" }

var _ = Describe("UserService", func() {
	var (
		repo    *mockUserRepository
		service *userdomain.Service
		ctx     context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		repo = newMockUserRepository()
		lg := slog.New(slog.NewTextHandler(io.Discard, nil))
		service = userdomain.NewService(repo, fixedHasher{}, lg)
	})

	Describe("CreateUser", func() {
		It("registers a staff member with the default quota and a forced password change", func() {
			u, err := service.CreateUser(ctx, userdomain.CreateUserDTO{
				Name:     "Marin Elena",
				Role:     datamodel.RoleEducator,
				Username: "Marin.Elena",
				Password: "secret",
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(u.Username).To(Equal("marin.elena"), "usernames are normalized to lowercase")
			Expect(u.MaxVacationDays).To(Equal(datamodel.DefaultVacationDays))
			Expect(u.MustChangePassword).To(BeTrue())
			Expect(u.Active).To(BeTrue())
			Expect(u.PasswordHash).To(Equal("hash(secret)"))
			Expect(u.ID).To(HavePrefix("educator-"))
		})

		It("rejects a taken username", func() {
			repo.users["x"] = &datamodel.User{ID: "x", Username: "marin.elena"}

			_, err := service.CreateUser(ctx, userdomain.CreateUserDTO{
				Name:     "Marin Elena",
				Role:     datamodel.RoleEducator,
				Username: "marin.elena",
				Password: "secret",
			})

			Expect(err).To(MatchError(internal.ErrUsernameTaken))
		})

		It("rejects an invalid role", func() {
			_, err := service.CreateUser(ctx, userdomain.CreateUserDTO{
				Name:     "Marin Elena",
				Role:     "JANITOR",
				Username: "marin.elena",
				Password: "secret",
			})

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Code).To(Equal(internal.ErrCodeInvalidRole))
		})
	})

	Describe("SetMaxVacationDays", func() {
		It("updates the quota", func() {
			repo.users["1"] = &datamodel.User{ID: "1", MaxVacationDays: 28}

			Expect(service.SetMaxVacationDays(ctx, "1", userdomain.SetVacationDaysDTO{Days: 30})).To(Succeed())
			Expect(repo.users["1"].MaxVacationDays).To(Equal(30))
		})

		It("rejects an out-of-range quota", func() {
			repo.users["1"] = &datamodel.User{ID: "1"}

			err := service.SetMaxVacationDays(ctx, "1", userdomain.SetVacationDaysDTO{Days: 400})

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Code).To(Equal(internal.ErrCodeInvalidQuota))
		})
	})

	Describe("ToggleActive", func() {
		It("flips the flag instead of deleting the account", func() {
			repo.users["1"] = &datamodel.User{ID: "1", Active: true}

			u, err := service.ToggleActive(ctx, "1")
			Expect(err).NotTo(HaveOccurred())
			Expect(u.Active).To(BeFalse())
			Expect(repo.users).To(HaveKey("1"))

			u, err = service.ToggleActive(ctx, "1")
			Expect(err).NotTo(HaveOccurred())
			Expect(u.Active).To(BeTrue())
		})
	})

	Describe("ResetPassword", func() {
		It("restores the default password and forces a change", func() {
			repo.users["1"] = &datamodel.User{ID: "1", PasswordHash: "hash(old)", MustChangePassword: false}

			Expect(service.ResetPassword(ctx, "1")).To(Succeed())
			Expect(repo.users["1"].PasswordHash).To(Equal("hash(" + userdomain.DefaultPassword + ")"))
			Expect(repo.users["1"].MustChangePassword).To(BeTrue())
		})

		It("returns not found for an unknown user", func() {
			Expect(service.ResetPassword(ctx, "ghost")).To(MatchError(internal.ErrUserNotFound))
		})
	})

	Describe("GetAll", func() {
		It("orders the roster admins first, then by name", func() {
			repo.users["1"] = &datamodel.User{ID: "1", Name: "Popa Ana-Maria", Role: datamodel.RoleEducator}
			repo.users["2"] = &datamodel.User{ID: "2", Name: "Alecu Mihaela", Role: datamodel.RoleAuxiliary}
			repo.users["adm"] = &datamodel.User{ID: "adm", Name: "Tarșițu Roxana", Role: datamodel.RoleAdmin}

			users, err := service.GetAll()
			Expect(err).NotTo(HaveOccurred())
			Expect(users).To(HaveLen(3))
			Expect(users[0].Role).To(Equal(datamodel.RoleAdmin))
			Expect(users[1].Name).To(Equal("Alecu Mihaela"))
			Expect(users[2].Name).To(Equal("Popa Ana-Maria"))
		})
	})
})
