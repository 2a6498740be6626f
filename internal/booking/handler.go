package booking

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/gradinita/leave-management/internal/auth"
	"github.com/gradinita/leave-management/internal/core/datamodel/leave"
	"github.com/gradinita/leave-management/internal/core/datamodel/user"
	"github.com/gradinita/leave-management/internal/transport"
	"github.com/gradinita/leave-management/pkg/logger"
)

type ServiceAPI interface {
	CreateBooking(ctx context.Context, requester *user.User, dto CreateBookingDTO) (*leave.Booking, error)
	CreateBookingForUser(ctx context.Context, targetUserID string, dto CreateBookingDTO) (*leave.Booking, error)
	GetAll() ([]*leave.Booking, error)
	GetByUser(userID string) ([]*leave.Booking, error)
	RemoveBooking(ctx context.Context, id string) (RemoveResult, error)
}

// AvailabilityAPI is the balance engine as seen from the booking endpoints.
type AvailabilityAPI interface {
	AvailableDaysForUser(ctx context.Context, u *user.User) (int, error)
}

type Handler struct {
	*transport.BaseHandler
	Service      ServiceAPI
	Availability AvailabilityAPI
	Users        UserStore
}

func NewHandler(service ServiceAPI, availability AvailabilityAPI, users UserStore) *Handler {
	lg := logger.L()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler:  transport.NewBaseHandler(lg),
		Service:      service,
		Availability: availability,
		Users:        users,
	}
}

func (h *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	requester, ok := auth.UserFromContext(r.Context())
	if !ok || requester == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var dto CreateBookingDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("CreateBooking: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	b, err := h.Service.CreateBooking(r.Context(), requester, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, ToResponse(b))
}

func (h *Handler) CreateBookingForUser(w http.ResponseWriter, r *http.Request) {
	targetUserID := chi.URLParam(r, "id")

	var dto CreateBookingDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("CreateBookingForUser: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	b, err := h.Service.CreateBookingForUser(r.Context(), targetUserID, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, ToResponse(b))
}

func (h *Handler) GetAllBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.Service.GetAll()
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, ToResponseList(bookings))
}

func (h *Handler) GetUserBookings(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")

	bookings, err := h.Service.GetByUser(userID)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, ToResponseList(bookings))
}

func (h *Handler) RemoveBooking(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.Service.RemoveBooking(r.Context(), id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, result)
}

func (h *Handler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")

	u, err := h.Users.GetByID(userID)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	days, err := h.Availability.AvailableDaysForUser(r.Context(), u)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"user_id":        userID,
		"available_days": days,
	})
}
