package medicalleave

import (
	"github.com/gradinita/leave-management/internal/core/datamodel/leave"
	"github.com/gradinita/leave-management/internal/holiday"
)

type RepositoryAPI interface {
	GetAll() ([]*leave.MedicalLeave, error)
	GetByUser(userID string) ([]*leave.MedicalLeave, error)
	GetByUserAndYear(userID string, year int) ([]*leave.MedicalLeave, error)
	GetByID(id string) (*leave.MedicalLeave, error)
	Create(ml *leave.MedicalLeave) error
	Delete(id string) error
}

type MedicalLeaveResponse struct {
	ID          string `json:"id"`
	UserID      string `json:"user_id"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	DiseaseCode string `json:"disease_code"`
	WorkingDays int    `json:"working_days"`
	Year        int    `json:"year"`
	CreatedAt   int64  `json:"created_at"`
}

func ToResponse(ml *leave.MedicalLeave) MedicalLeaveResponse {
	return MedicalLeaveResponse{
		ID:          ml.ID,
		UserID:      ml.UserID,
		StartDate:   ml.StartDate.Format(holiday.DateLayout),
		EndDate:     ml.EndDate.Format(holiday.DateLayout),
		DiseaseCode: ml.DiseaseCode,
		WorkingDays: ml.WorkingDays,
		Year:        ml.Year,
		CreatedAt:   ml.CreatedAt.UnixMilli(),
	}
}

func ToResponseList(leaves []*leave.MedicalLeave) []MedicalLeaveResponse {
	out := make([]MedicalLeaveResponse, 0, len(leaves))
	for _, ml := range leaves {
		out = append(out, ToResponse(ml))
	}
	return out
}
