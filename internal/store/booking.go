package store

import (
	"context"

	"slotbook/internal/domain"
)

type BookingRepository interface {
	// Reserve writes one reservation row per slot or none at all.
	Reserve(ctx context.Context, appointmentID string, providerID, locationID int64, slots []domain.SlotIndex) error
	Cancel(ctx context.Context, appointmentID string) error
	ListReservedSlots(ctx context.Context, providerID int64) ([]domain.ReservedSlot, error)
}

// BookingTx is the set of statements a reservation runs inside one
// transaction.
type BookingTx interface {
	ReserveSlot(ctx context.Context, appointmentID string, providerID, locationID int64, slot domain.SlotIndex) (int64, error)
	DeleteReservations(ctx context.Context, appointmentID string) (int64, error)
}
