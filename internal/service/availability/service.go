package availability

import (
	"context"

	"slotbook/internal/domain"
	"slotbook/internal/observability/metrics"
	"slotbook/internal/service"
	"slotbook/internal/store"
)

type Service struct {
	repo    store.LedgerRepository
	metrics *metrics.BookingMetrics
}

func NewService(repo store.LedgerRepository, m *metrics.BookingMetrics) *Service {
	return &Service{repo: repo, metrics: m}
}

// DeclareSlots opens new slots for a provider. Re-declaring an existing slot
// fails the whole request with store.ErrDuplicateSlot.
func (s *Service) DeclareSlots(ctx context.Context, providerID int64, slots []domain.SlotIndex) ([]domain.ScheduleSlot, error) {
	out, err := s.declareSlots(ctx, providerID, slots)
	s.metrics.ObserveLedger("declare", service.Outcome(err))
	return out, err
}

func (s *Service) declareSlots(ctx context.Context, providerID int64, slots []domain.SlotIndex) ([]domain.ScheduleSlot, error) {
	if len(slots) == 0 {
		return nil, service.Invalid("week_schedule must contain at least one slot")
	}
	if err := service.ValidateSlots(slots); err != nil {
		return nil, err
	}
	return s.repo.DeclareSlots(ctx, providerID, slots)
}

// RevokeSlot removes a declared slot. A slot held by an appointment is not
// removed; the caller gets store.ErrSlotInUse and must cancel first.
func (s *Service) RevokeSlot(ctx context.Context, providerID int64, slot domain.SlotIndex) error {
	err := s.revokeSlot(ctx, providerID, slot)
	s.metrics.ObserveLedger("revoke", service.Outcome(err))
	return err
}

func (s *Service) revokeSlot(ctx context.Context, providerID int64, slot domain.SlotIndex) error {
	if err := service.ValidateSlots([]domain.SlotIndex{slot}); err != nil {
		return err
	}
	return s.repo.RevokeSlot(ctx, providerID, slot)
}

func (s *Service) ListSlots(ctx context.Context, providerID int64) ([]domain.ScheduleSlot, error) {
	return s.repo.ListSlots(ctx, providerID)
}

func (s *Service) IsBookable(ctx context.Context, providerID, locationID int64, slot domain.SlotIndex) (bool, error) {
	if !slot.Valid() {
		return false, nil
	}
	return s.repo.IsBookable(ctx, providerID, locationID, slot)
}

func (s *Service) ListLocations(ctx context.Context, providerID int64) ([]domain.Location, error) {
	return s.repo.ListLocations(ctx, providerID)
}
