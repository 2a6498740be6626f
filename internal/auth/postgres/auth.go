package postgres

import (
	"database/sql"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/gradinita/leave-management/internal"
	"github.com/gradinita/leave-management/internal/auth"
	"github.com/gradinita/leave-management/internal/core/datamodel/user"
)

// Repository implements auth.UserStore using GORM.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) auth.UserStore {
	return &Repository{db: db}
}

func (r *Repository) GetByUsername(username string) (*user.User, error) {
	var u user.User
	err := r.db.Where("username = ?", username).First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, sql.ErrNoRows) {
			return nil, internal.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *Repository) GetByID(id string) (*user.User, error) {
	var u user.User
	err := r.db.Where("id = ?", id).First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, sql.ErrNoRows) {
			return nil, internal.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *Repository) UpdatePassword(userID, passwordHash string, mustChange bool) error {
	return r.db.Model(&user.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"password_hash":        passwordHash,
			"must_change_password": mustChange,
			"updated_at":           time.Now(),
		}).Error
}
