// Package httpapi exposes the booking core over JSON/HTTP.
package httpapi

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"slotbook/internal/domain"
	"slotbook/internal/service/booking"
)

type ledgerService interface {
	DeclareSlots(ctx context.Context, providerID int64, slots []domain.SlotIndex) ([]domain.ScheduleSlot, error)
	RevokeSlot(ctx context.Context, providerID int64, slot domain.SlotIndex) error
	ListSlots(ctx context.Context, providerID int64) ([]domain.ScheduleSlot, error)
	IsBookable(ctx context.Context, providerID, locationID int64, slot domain.SlotIndex) (bool, error)
	ListLocations(ctx context.Context, providerID int64) ([]domain.Location, error)
}

type bookingService interface {
	Reserve(ctx context.Context, in booking.ReserveInput) (string, error)
	Cancel(ctx context.Context, appointmentID string) error
	ListAppointments(ctx context.Context, providerID int64) (map[string]domain.AppointmentView, error)
	GetAppointment(ctx context.Context, appointmentID string) (domain.AppointmentView, error)
}

// Config holds router dependencies. MetricsHandler and Ready are optional.
type Config struct {
	Logger         *slog.Logger
	Ledger         ledgerService
	Bookings       bookingService
	MetricsHandler http.Handler
	Ready          func(ctx context.Context) error
}

// New creates a chi router with every route configured.
func New(cfg Config) http.Handler {
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}
	h := &handler{
		ledger:   cfg.Ledger,
		bookings: cfg.Bookings,
		log:      log.With(slog.String("component", "http")),
	}

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(log))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", healthz(cfg.Ready))
	if cfg.MetricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", cfg.MetricsHandler)
	}

	r.Route("/providers/{providerID}", func(r chi.Router) {
		r.Get("/locations", h.listLocations)
		r.Get("/schedule", h.listSchedule)
		r.Post("/schedule", h.declareSchedule)
		r.Delete("/schedule/day/{day}/time/{segment}", h.revokeSlot)
		r.Get("/schedule/day/{day}/time/{segment}/locations/{locationID}", h.isBookable)
		r.Get("/appointments", h.listAppointments)
	})

	r.Route("/appointments", func(r chi.Router) {
		r.Post("/", h.reserve)
		r.Delete("/", h.cancelFromBody)
		r.Get("/{appointmentID}", h.getAppointment)
		r.Delete("/{appointmentID}", h.cancel)
	})

	return r
}

func healthz(ready func(ctx context.Context) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if ready != nil {
			if err := ready(r.Context()); err != nil {
				writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
				return
			}
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
