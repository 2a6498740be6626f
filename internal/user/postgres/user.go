package postgres

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/gradinita/leave-management/internal"
	"github.com/gradinita/leave-management/internal/core/datamodel/user"
	userdomain "github.com/gradinita/leave-management/internal/user"
)

// UserRepository implements user.RepositoryAPI using GORM. It also backs the
// balance engine's carryover writes.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) userdomain.RepositoryAPI {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetAll() ([]*user.User, error) {
	var users []*user.User
	err := r.db.Order("role DESC").Order("name ASC").Find(&users).Error
	return users, err
}

func (r *UserRepository) GetByID(id string) (*user.User, error) {
	var u user.User
	err := r.db.Where("id = ?", id).First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetByUsername(username string) (*user.User, error) {
	var u user.User
	err := r.db.Where("username = ?", username).First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) Create(u *user.User) error {
	return r.db.Create(u).Error
}

func (r *UserRepository) Update(u *user.User) error {
	u.UpdatedAt = time.Now()
	return r.db.Save(u).Error
}

func (r *UserRepository) UpdateCarryover(userID string, remainingDays, lastYearReset int) error {
	return r.db.Model(&user.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"remaining_days_from_previous_year": remainingDays,
			"last_year_reset":                   lastYearReset,
			"updated_at":                        time.Now(),
		}).Error
}
