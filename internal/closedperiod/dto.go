package closedperiod

import (
	"time"

	"github.com/gradinita/leave-management/internal"
	"github.com/gradinita/leave-management/internal/holiday"
)

type CreateClosedPeriodDTO struct {
	StartDate   string  `json:"start_date" validate:"required"`
	EndDate     string  `json:"end_date" validate:"required"`
	Description *string `json:"description,omitempty"`
}

func (dto CreateClosedPeriodDTO) Validate() (start, end time.Time, err error) {
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

	return start, end, nil
}
