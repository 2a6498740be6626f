package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/gradinita/leave-management/internal"
	"github.com/gradinita/leave-management/internal/closedperiod"
	"github.com/gradinita/leave-management/internal/core/datamodel/leave"
)

// ClosedPeriodRepository implements closedperiod.RepositoryAPI using GORM.
type ClosedPeriodRepository struct {
	db *gorm.DB
}

func NewClosedPeriodRepository(db *gorm.DB) closedperiod.RepositoryAPI {
	return &ClosedPeriodRepository{db: db}
}

func (r *ClosedPeriodRepository) GetAll() ([]*leave.ClosedPeriod, error) {
	var periods []*leave.ClosedPeriod
	err := r.db.Order("start_date ASC").Find(&periods).Error
	return periods, err
}

func (r *ClosedPeriodRepository) GetByID(id string) (*leave.ClosedPeriod, error) {
	var cp leave.ClosedPeriod
	err := r.db.Where("id = ?", id).First(&cp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrClosedPeriodNotFound
		}
		return nil, err
	}
	return &cp, nil
}

func (r *ClosedPeriodRepository) Create(cp *leave.ClosedPeriod) error {
	return r.db.Create(cp).Error
}

func (r *ClosedPeriodRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&leave.ClosedPeriod{}).Error
}
