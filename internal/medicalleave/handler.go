package medicalleave

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi"

	"github.com/gradinita/leave-management/internal/core/datamodel/leave"
	"github.com/gradinita/leave-management/internal/transport"
	"github.com/gradinita/leave-management/pkg/logger"
)

type ServiceAPI interface {
	CreateMedicalLeave(ctx context.Context, dto CreateMedicalLeaveDTO) (*leave.MedicalLeave, error)
	GetAll() ([]*leave.MedicalLeave, error)
	GetByUser(userID string) ([]*leave.MedicalLeave, error)
	TotalDaysForUserInYear(userID string, year int) (int, error)
	RemoveMedicalLeave(ctx context.Context, id string) error
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(service ServiceAPI) *Handler {
	lg := logger.L()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     service,
	}
}

func (h *Handler) CreateMedicalLeave(w http.ResponseWriter, r *http.Request) {
	var dto CreateMedicalLeaveDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("CreateMedicalLeave: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ml, err := h.Service.CreateMedicalLeave(r.Context(), dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, ToResponse(ml))
}

func (h *Handler) GetAllMedicalLeaves(w http.ResponseWriter, r *http.Request) {
	leaves, err := h.Service.GetAll()
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, ToResponseList(leaves))
}

func (h *Handler) GetUserMedicalLeaves(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")

	leaves, err := h.Service.GetByUser(userID)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, ToResponseList(leaves))
}

func (h *Handler) GetUserYearlyTotal(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")

	year := time.Now().Year()
	if yearStr := r.URL.Query().Get("year"); yearStr != "" {
		if y, err := strconv.Atoi(yearStr); err == nil {
			year = y
		}
	}

	total, err := h.Service.TotalDaysForUserInYear(userID, year)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"user_id":      userID,
		"year":         year,
		"working_days": total,
	})
}

func (h *Handler) GetDiseaseCodes(w http.ResponseWriter, r *http.Request) {
	h.WriteJSON(w, http.StatusOK, DiseaseCodes)
}

func (h *Handler) RemoveMedicalLeave(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.Service.RemoveMedicalLeave(r.Context(), id); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
