package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"

	"github.com/gradinita/leave-management/internal/auth"
	"github.com/gradinita/leave-management/internal/balance"
	"github.com/gradinita/leave-management/internal/booking"
	"github.com/gradinita/leave-management/internal/closedperiod"
	"github.com/gradinita/leave-management/internal/medicalleave"
	"github.com/gradinita/leave-management/internal/transport/middleware"
	"github.com/gradinita/leave-management/internal/transport/swagger"
	"github.com/gradinita/leave-management/internal/user"
)

func RegisterAllRoutes(
	router *chi.Mux,
	db *sql.DB,
	authHandler *auth.Handler,
	userHandler *user.Handler,
	bookingHandler *booking.Handler,
	medicalLeaveHandler *medicalleave.Handler,
	closedPeriodHandler *closedperiod.Handler,
	balanceHandler *balance.Handler,
	logger *slog.Logger,
) {
	healthHandler := NewHealthHandler(db)

	// Apply global middleware
	router.Use(middleware.CORS)
	router.Use(chiMiddleware.RequestID)
	router.Use(middleware.RecoveryMiddleware(logger))
	router.Use(middleware.LoggingMiddleware(logger))

	// Serve OpenAPI spec at root (outside API prefix)
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	// Swagger UI route at root
	router.Handle("/swagger/*", swagger.Handler())

	// Mount API under /api/v1 to match OpenAPI basePath
	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		// Auth routes
		r.Route("/auth", func(sr chi.Router) {
			sr.Post("/login", authHandler.Login)
			sr.Post("/refresh", authHandler.RefreshToken)

			sr.Group(func(pr chi.Router) {
				pr.Use(authHandler.AuthMiddleware)
				pr.Post("/change-password", authHandler.ChangePassword)
			})
		})

		// Disease codes are a fixed table; no auth needed to read them.
		r.Get("/medical-leaves/disease-codes", medicalLeaveHandler.GetDiseaseCodes)

		// Protected routes that require authentication
		r.Group(func(pr chi.Router) {
			pr.Use(authHandler.AuthMiddleware)

			pr.Route("/users", func(ur chi.Router) {
				ur.Get("/", userHandler.GetAllUsers)
				ur.Get("/me", userHandler.GetCurrentUser)
				ur.Get("/{id}/bookings", bookingHandler.GetUserBookings)
				ur.Get("/{id}/availability", bookingHandler.GetAvailability)
				ur.Get("/{id}/medical-leaves", medicalLeaveHandler.GetUserMedicalLeaves)
				ur.Get("/{id}/medical-leaves/total", medicalLeaveHandler.GetUserYearlyTotal)

				// Roster administration
				ur.Group(func(ar chi.Router) {
					ar.Use(authHandler.AdminOnly)
					ar.Post("/", userHandler.CreateUser)
					ar.Patch("/{id}/vacation-days", userHandler.SetVacationDays)
					ar.Patch("/{id}/toggle-active", userHandler.ToggleActive)
					ar.Post("/{id}/reset-password", userHandler.ResetPassword)
					ar.Post("/{id}/bookings", bookingHandler.CreateBookingForUser)
				})
			})

			pr.Route("/bookings", func(br chi.Router) {
				br.Get("/", bookingHandler.GetAllBookings)
				br.Post("/", bookingHandler.CreateBooking)
				br.Delete("/{id}", bookingHandler.RemoveBooking)
			})

			pr.Route("/medical-leaves", func(mr chi.Router) {
				mr.Get("/", medicalLeaveHandler.GetAllMedicalLeaves)

				mr.Group(func(ar chi.Router) {
					ar.Use(authHandler.AdminOnly)
					ar.Post("/", medicalLeaveHandler.CreateMedicalLeave)
					ar.Delete("/{id}", medicalLeaveHandler.RemoveMedicalLeave)
				})
			})

			pr.Route("/closed-periods", func(cr chi.Router) {
				cr.Get("/", closedPeriodHandler.GetAllClosedPeriods)

				cr.Group(func(ar chi.Router) {
					ar.Use(authHandler.AdminOnly)
					ar.Post("/", closedPeriodHandler.CreateClosedPeriod)
					ar.Delete("/{id}", closedPeriodHandler.RemoveClosedPeriod)
				})
			})

			// Yearly carryover roll
			pr.Group(func(ar chi.Router) {
				ar.Use(authHandler.AdminOnly)
				ar.Post("/admin/reset-year", balanceHandler.ResetYear)
			})
		})
	})
}
