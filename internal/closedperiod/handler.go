package closedperiod

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/gradinita/leave-management/internal/core/datamodel/leave"
	"github.com/gradinita/leave-management/internal/transport"
	"github.com/gradinita/leave-management/pkg/logger"
)

type ServiceAPI interface {
	CreateClosedPeriod(ctx context.Context, dto CreateClosedPeriodDTO) (*leave.ClosedPeriod, error)
	GetAll() ([]*leave.ClosedPeriod, error)
	RemoveClosedPeriod(ctx context.Context, id string) error
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

func (h *Handler) CreateClosedPeriod(w http.ResponseWriter, r *http.Request) {
	var dto CreateClosedPeriodDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("CreateClosedPeriod: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cp, err := h.Service.CreateClosedPeriod(r.Context(), dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, ToResponse(cp))
}

func (h *Handler) GetAllClosedPeriods(w http.ResponseWriter, r *http.Request) {
	periods, err := h.Service.GetAll()
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, ToResponseList(periods))
}

func (h *Handler) RemoveClosedPeriod(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.Service.RemoveClosedPeriod(r.Context(), id); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
