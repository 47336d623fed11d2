package store

import (
	"context"

	"slotbook/internal/domain"
)

type LedgerRepository interface {
	DeclareSlots(ctx context.Context, providerID int64, slots []domain.SlotIndex) ([]domain.ScheduleSlot, error)
	RevokeSlot(ctx context.Context, providerID int64, slot domain.SlotIndex) error
	ListSlots(ctx context.Context, providerID int64) ([]domain.ScheduleSlot, error)
	IsBookable(ctx context.Context, providerID, locationID int64, slot domain.SlotIndex) (bool, error)
	ListLocations(ctx context.Context, providerID int64) ([]domain.Location, error)
}
