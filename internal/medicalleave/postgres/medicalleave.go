package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/gradinita/leave-management/internal"
	"github.com/gradinita/leave-management/internal/core/datamodel/leave"
	"github.com/gradinita/leave-management/internal/medicalleave"
)

// MedicalLeaveRepository implements medicalleave.RepositoryAPI using GORM.
type MedicalLeaveRepository struct {
	db *gorm.DB
}

func NewMedicalLeaveRepository(db *gorm.DB) medicalleave.RepositoryAPI {
	return &MedicalLeaveRepository{db: db}
}

func (r *MedicalLeaveRepository) GetAll() ([]*leave.MedicalLeave, error) {
	var leaves []*leave.MedicalLeave
	err := r.db.Order("start_date ASC").Find(&leaves).Error
	return leaves, err
}

func (r *MedicalLeaveRepository) GetByUser(userID string) ([]*leave.MedicalLeave, error) {
	var leaves []*leave.MedicalLeave
	err := r.db.Where("user_id = ?", userID).
		Order("start_date ASC").
		Find(&leaves).Error
	return leaves, err
}

func (r *MedicalLeaveRepository) GetByUserAndYear(userID string, year int) ([]*leave.MedicalLeave, error) {
	var leaves []*leave.MedicalLeave
	err := r.db.Where("user_id = ? AND year = ?", userID, year).
		Order("start_date ASC").
		Find(&leaves).Error
	return leaves, err
}

func (r *MedicalLeaveRepository) GetByID(id string) (*leave.MedicalLeave, error) {
	var ml leave.MedicalLeave
	err := r.db.Where("id = ?", id).First(&ml).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrMedicalLeaveNotFound
		}
		return nil, err
	}
	return &ml, nil
}

func (r *MedicalLeaveRepository) Create(ml *leave.MedicalLeave) error {
	return r.db.Create(ml).Error
}

func (r *MedicalLeaveRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&leave.MedicalLeave{}).Error
}
