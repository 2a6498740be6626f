package medicalleave

import (
	"time"

	"github.com/gradinita/leave-management/internal"
	"github.com/gradinita/leave-management/internal/holiday"
)

type CreateMedicalLeaveDTO struct {
	UserID      string `json:"user_id" validate:"required"`
	StartDate   string `json:"start_date" validate:"required"`
	EndDate     string `json:"end_date" validate:"required"`
	DiseaseCode string `json:"disease_code" validate:"required"`
}

func (dto CreateMedicalLeaveDTO) Validate() (start, end time.Time, err error) {
	if dto.UserID == "" {
		return start, end, internal.NewValidationError("Selectează un angajat.", internal.ErrCodeValidationFailed)
	}

	start, err = time.Parse(holiday.DateLayout, dto.StartDate)
	if err != nil {
		return start, end, internal.NewValidationError("Data de început este invalidă.", internal.ErrCodeInvalidDateRange)
	}

	end, err = time.Parse(holiday.DateLayout, dto.EndDate)
	if err != nil {
		return start, end, internal.NewValidationError("Data de sfârșit este invalidă.", internal.ErrCodeInvalidDateRange)
	}

	if start.After(end) {
		return start, end, internal.ErrStartAfterEnd
	}

	if !ValidDiseaseCode(dto.DiseaseCode) {
		return start, end, internal.NewValidationError("Codul de indemnizație este invalid.", internal.ErrCodeInvalidDisease)
	}

	return start, end, nil
}
