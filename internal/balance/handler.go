package balance

import (
	"log/slog"
	"net/http"

	"github.com/gradinita/leave-management/internal/transport"
	"github.com/gradinita/leave-management/pkg/logger"
)

// Handler exposes the yearly carryover roll as an admin endpoint.
type Handler struct {
	*transport.BaseHandler
	Engine *Engine
}

func NewHandler(engine *Engine) *Handler {
	lg := logger.L()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Engine:      engine,
	}
}

func (h *Handler) ResetYear(w http.ResponseWriter, r *http.Request) {
	if err := h.Engine.ResetYearlyVacationDays(r.Context()); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]string{"status": "reset complete"})
}
