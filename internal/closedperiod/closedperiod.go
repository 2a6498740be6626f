package closedperiod

import (
	"github.com/gradinita/leave-management/internal/core/datamodel/leave"
	"github.com/gradinita/leave-management/internal/holiday"
)

type RepositoryAPI interface {
	GetAll() ([]*leave.ClosedPeriod, error)
	GetByID(id string) (*leave.ClosedPeriod, error)
	Create(cp *leave.ClosedPeriod) error
	Delete(id string) error
}

type ClosedPeriodResponse struct {
	ID          string  `json:"id"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	Description *string `json:"description,omitempty"`
	CreatedAt   int64   `json:"created_at"`
}

func ToResponse(cp *leave.ClosedPeriod) ClosedPeriodResponse {
	return ClosedPeriodResponse{
		ID:          cp.ID,
		StartDate:   cp.StartDate.Format(holiday.DateLayout),
		EndDate:     cp.EndDate.Format(holiday.DateLayout),
		Description: cp.Description,
		CreatedAt:   cp.CreatedAt.UnixMilli(),
	}
}

func ToResponseList(periods []*leave.ClosedPeriod) []ClosedPeriodResponse {
	out := make([]ClosedPeriodResponse, 0, len(periods))
	for _, cp := range periods {
		out = append(out, ToResponse(cp))
	}
	return out
}
