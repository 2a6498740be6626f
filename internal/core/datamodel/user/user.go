package user

import "time"

type Role string

const (
	RoleEducator  Role = "EDUCATOR"
	RoleAuxiliary Role = "AUXILIARY"
	RoleAdmin     Role = "ADMIN"
)

func (r Role) Valid() bool {
	switch r {
	case RoleEducator, RoleAuxiliary, RoleAdmin:
		return true
	}
	return false
}

// MaxConcurrent returns how many staff members of this role may be on leave
// on the same working day. The second return value is false when the role is
// unconstrained (admins).
func (r Role) MaxConcurrent() (int, bool) {
	switch r {
	case RoleEducator, RoleAuxiliary:
		return 1, true
	default:
		return 0, false
	}
}

const DefaultVacationDays = 28

type User struct {
	ID                   string    `gorm:"primaryKey"`
	Name                 string    `gorm:"column:name;not null"`
	Role                 Role      `gorm:"column:role;not null"`
	Username             string    `gorm:"column:username;uniqueIndex;not null"`
	PasswordHash         string    `gorm:"column:password_hash;not null"`
	MustChangePassword   bool      `gorm:"column:must_change_password;default:true"`
	MaxVacationDays      int       `gorm:"column:max_vacation_days;default:28"`
	RemainingDaysFromPreviousYear int `gorm:"column:remaining_days_from_previous_year;default:0"`
	LastYearReset        int       `gorm:"column:last_year_reset"`
	Active               bool      `gorm:"column:active;default:true"`
	CreatedAt            time.Time `gorm:"column:created_at;default:now()"`
	UpdatedAt            time.Time `gorm:"column:updated_at;default:now()"`
}

func (User) TableName() string {
	return "users"
}
