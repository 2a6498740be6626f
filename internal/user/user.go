package user

import (
	"sort"

	"github.com/gradinita/leave-management/internal/core/datamodel/user"
)

// DefaultPassword is assigned on account creation and password reset; the
// owner must change it at first login.
const DefaultPassword = "12345"

type RepositoryAPI interface {
	GetAll() ([]*user.User, error)
	GetByID(id string) (*user.User, error)
	GetByUsername(username string) (*user.User, error)
	Create(u *user.User) error
	Update(u *user.User) error
	UpdateCarryover(userID string, remainingDays, lastYearReset int) error
}

// PasswordHasher is the slice of the auth collaborator the roster needs for
// account creation and password resets.
type PasswordHasher interface {
	Hash(plain string) string
}

type UserResponse struct {
	ID                            string    `json:"id"`
	Name                          string    `json:"name"`
	Role                          user.Role `json:"role"`
	Username                      string    `json:"username"`
	MustChangePassword            bool      `json:"must_change_password"`
	MaxVacationDays               int       `json:"max_vacation_days"`
	RemainingDaysFromPreviousYear int       `json:"remaining_days_from_previous_year"`
	LastYearReset                 int       `json:"last_year_reset"`
	Active                        bool      `json:"active"`
}

func ToResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:                            u.ID,
		Name:                          u.Name,
		Role:                          u.Role,
		Username:                      u.Username,
		MustChangePassword:            u.MustChangePassword,
		MaxVacationDays:               u.MaxVacationDays,
		RemainingDaysFromPreviousYear: u.RemainingDaysFromPreviousYear,
		LastYearReset:                 u.LastYearReset,
		Active:                        u.Active,
	}
}

// SortRoster orders users the way the roster is displayed: admins first, then
// alphabetically by name.
func SortRoster(users []*user.User) {
	sort.SliceStable(users, func(i, j int) bool {
		iAdmin := users[i].Role == user.RoleAdmin
		jAdmin := users[j].Role == user.RoleAdmin
		if iAdmin != jAdmin {
			return iAdmin
		}
		return users[i].Name < users[j].Name
	})
}
