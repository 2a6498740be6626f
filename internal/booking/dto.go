package booking

import (
	"time"

	"github.com/gradinita/leave-management/internal"
	"github.com/gradinita/leave-management/internal/holiday"
)

// CreateBookingDTO carries a requested vacation range as normalized date
// strings, both ends inclusive.
type CreateBookingDTO struct {
	StartDate string `json:"start_date" validate:"required"`
	EndDate   string `json:"end_date" validate:"required"`
}

func (dto CreateBookingDTO) Validate() (start, end time.Time, err error) {
	if dto.StartDate == "" || dto.EndDate == "" {
		return start, end, internal.NewValidationError("Selectează perioada de concediu.", internal.ErrCodeValidationFailed)
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

	return start, end, nil
}
