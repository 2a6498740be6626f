package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/gradinita/leave-management/internal"
	"github.com/gradinita/leave-management/internal/booking"
	"github.com/gradinita/leave-management/internal/core/datamodel/leave"
)

// BookingRepository implements booking.RepositoryAPI using GORM.
type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) booking.RepositoryAPI {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) GetAll() ([]*leave.Booking, error) {
	var bookings []*leave.Booking
	err := r.db.Order("start_date ASC").Find(&bookings).Error
	return bookings, err
}

func (r *BookingRepository) GetByUser(userID string) ([]*leave.Booking, error) {
	var bookings []*leave.Booking
	err := r.db.Where("user_id = ?", userID).
		Order("start_date ASC").
		Find(&bookings).Error
	return bookings, err
}

func (r *BookingRepository) GetByID(id string) (*leave.Booking, error) {
	var b leave.Booking
	err := r.db.Where("id = ?", id).First(&b).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrBookingNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *BookingRepository) Create(b *leave.Booking) error {
	return r.db.Create(b).Error
}

func (r *BookingRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&leave.Booking{}).Error
}
