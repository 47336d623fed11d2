package booking

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"slotbook/internal/domain"
	"slotbook/internal/observability/metrics"
	"slotbook/internal/observability/requestid"
	"slotbook/internal/service"
	"slotbook/internal/store"
)

// viewCache stores views per provider generation; Invalidate advances the
// generation.
type viewCache interface {
	Generation(ctx context.Context, providerID int64) (int64, error)
	Get(ctx context.Context, providerID, gen int64) (map[string]domain.AppointmentView, bool, error)
	Set(ctx context.Context, providerID, gen int64, views map[string]domain.AppointmentView) error
	Invalidate(ctx context.Context, providerID int64) error
}

type Service struct {
	repo    store.BookingRepository
	cache   viewCache
	metrics *metrics.BookingMetrics
	log     *slog.Logger
}

type Option func(*Service)

func WithViewCache(c viewCache) Option {
	return func(s *Service) { s.cache = c }
}

func WithMetrics(m *metrics.BookingMetrics) Option {
	return func(s *Service) { s.metrics = m }
}

func WithLogger(log *slog.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

func NewService(repo store.BookingRepository, opts ...Option) *Service {
	s := &Service{repo: repo, log: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With(slog.String("component", "booking"))
	return s
}

type ReserveInput struct {
	ProviderID int64
	LocationID int64
	Slots      []domain.SlotIndex
}

// Reserve books every requested slot as one appointment and returns its
// identifier. Either all slots are reserved or none are.
func (s *Service) Reserve(ctx context.Context, in ReserveInput) (string, error) {
	start := time.Now()
	id, err := s.reserve(ctx, in)
	s.metrics.ObserveReserve(service.Outcome(err), time.Since(start))
	return id, err
}

func (s *Service) reserve(ctx context.Context, in ReserveInput) (string, error) {
	if len(in.Slots) == 0 {
		return "", service.Invalid("at least one time slot is required")
	}
	if err := service.ValidateSlots(in.Slots); err != nil {
		return "", err
	}
	day := in.Slots[0].Day
	for _, slot := range in.Slots[1:] {
		if slot.Day != day {
			return "", service.Invalid("time slots must fall on a single day")
		}
	}

	id := domain.NewAppointmentID(in.ProviderID, in.LocationID, in.Slots)
	if err := s.repo.Reserve(ctx, id, in.ProviderID, in.LocationID, in.Slots); err != nil {
		return "", err
	}

	s.invalidate(ctx, in.ProviderID)
	return id, nil
}

// Cancel removes every reservation of the appointment. Unknown and malformed
// identifiers both report store.ErrNotFound.
func (s *Service) Cancel(ctx context.Context, appointmentID string) error {
	start := time.Now()
	err := s.cancel(ctx, appointmentID)
	s.metrics.ObserveCancel(service.Outcome(err), time.Since(start))
	return err
}

func (s *Service) cancel(ctx context.Context, appointmentID string) error {
	id := strings.TrimSpace(appointmentID)
	if id == "" {
		return service.Invalid("appointment_id is required")
	}
	key, err := domain.ParseAppointmentID(id)
	if err != nil {
		return store.ErrNotFound
	}

	if err := s.repo.Cancel(ctx, id); err != nil {
		return err
	}

	s.invalidate(ctx, key.ProviderID)
	return nil
}

// ListAppointments returns the provider's appointments keyed by identifier.
// The cache generation is read before the store so that a result loaded
// ahead of a concurrent write is never served after that write returns.
func (s *Service) ListAppointments(ctx context.Context, providerID int64) (map[string]domain.AppointmentView, error) {
	log := requestid.Logger(ctx, s.log)

	cached := false
	var gen int64
	if s.cache != nil {
		var err error
		gen, err = s.cache.Generation(ctx, providerID)
		if err != nil {
			log.Warn("appointment view cache generation read failed", slog.Any("err", err), slog.Int64("provider_id", providerID))
		} else {
			cached = true
			views, ok, err := s.cache.Get(ctx, providerID, gen)
			if err != nil {
				log.Warn("appointment view cache read failed", slog.Any("err", err), slog.Int64("provider_id", providerID))
			}
			s.metrics.ObserveViewCache(ok)
			if ok {
				return views, nil
			}
		}
	}

	rows, err := s.repo.ListReservedSlots(ctx, providerID)
	if err != nil {
		return nil, err
	}
	views := domain.BuildAppointmentViews(rows)

	if cached {
		if err := s.cache.Set(ctx, providerID, gen, views); err != nil {
			log.Warn("appointment view cache write failed", slog.Any("err", err), slog.Int64("provider_id", providerID))
		}
	}
	return views, nil
}

func (s *Service) GetAppointment(ctx context.Context, appointmentID string) (domain.AppointmentView, error) {
	id := strings.TrimSpace(appointmentID)
	if id == "" {
		return domain.AppointmentView{}, service.Invalid("appointment_id is required")
	}
	key, err := domain.ParseAppointmentID(id)
	if err != nil {
		return domain.AppointmentView{}, store.ErrNotFound
	}

	views, err := s.ListAppointments(ctx, key.ProviderID)
	if err != nil {
		return domain.AppointmentView{}, err
	}
	view, ok := views[id]
	if !ok {
		return domain.AppointmentView{}, store.ErrNotFound
	}
	return view, nil
}

func (s *Service) invalidate(ctx context.Context, providerID int64) {
	if s.cache == nil {
		return
	}
	// The write is committed; a failed invalidation only leaves a stale view
	// until the TTL expires.
	if err := s.cache.Invalidate(context.WithoutCancel(ctx), providerID); err != nil {
		requestid.Logger(ctx, s.log).Warn("appointment view cache invalidation failed", slog.Any("err", err), slog.Int64("provider_id", providerID))
	}
}
