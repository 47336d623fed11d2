package postgres

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	"slotbook/internal/domain"
	"slotbook/internal/store"
)

type LedgerRepo struct {
	db *bun.DB
}

func NewLedgerRepo(db *bun.DB) *LedgerRepo {
	return &LedgerRepo{db: db}
}

func (r *LedgerRepo) DeclareSlots(ctx context.Context, providerID int64, slots []domain.SlotIndex) ([]domain.ScheduleSlot, error) {
	rows := make([]domain.ScheduleSlot, 0, len(slots))
	for _, s := range slots {
		rows = append(rows, domain.ScheduleSlot{
			ProviderID: providerID,
			Day:        int16(s.Day),
			Segment:    int16(s.Segment),
		})
	}

	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewInsert().Model(&rows).Returning("id").Exec(ctx)
		if err != nil {
			if _, ok := pgError(err, codeUniqueViolation); ok {
				return store.ErrDuplicateSlot
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *LedgerRepo) RevokeSlot(ctx context.Context, providerID int64, slot domain.SlotIndex) error {
	res, err := r.db.NewDelete().
		Model((*domain.ScheduleSlot)(nil)).
		Where("provider_id = ?", providerID).
		Where("day = ?", slot.Day).
		Where("segment = ?", slot.Segment).
		Exec(ctx)
	if err != nil {
		if _, ok := pgError(err, codeForeignKeyViolation); ok {
			return store.ErrSlotInUse
		}
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *LedgerRepo) ListSlots(ctx context.Context, providerID int64) ([]domain.ScheduleSlot, error) {
	var rows []domain.ScheduleSlot
	err := r.db.NewSelect().
		Model(&rows).
		Where("provider_id = ?", providerID).
		OrderExpr("day ASC, segment ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("list slots: %w", err)
	}
	return rows, nil
}

func (r *LedgerRepo) IsBookable(ctx context.Context, providerID, locationID int64, slot domain.SlotIndex) (bool, error) {
	return r.db.NewSelect().
		TableExpr("schedule_slots AS ss").
		Join("INNER JOIN provider_locations AS pl ON pl.provider_id = ss.provider_id").
		Where("ss.provider_id = ?", providerID).
		Where("ss.day = ?", slot.Day).
		Where("ss.segment = ?", slot.Segment).
		Where("pl.location_id = ?", locationID).
		Exists(ctx)
}

func (r *LedgerRepo) ListLocations(ctx context.Context, providerID int64) ([]domain.Location, error) {
	var rows []domain.Location
	err := r.db.NewSelect().
		Model(&rows).
		ModelTableExpr("locations AS l").
		ColumnExpr("l.id, l.address").
		Join("INNER JOIN provider_locations AS pl ON pl.location_id = l.id").
		Where("pl.provider_id = ?", providerID).
		OrderExpr("l.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	if len(rows) == 0 {
		return nil, store.ErrNotFound
	}
	return rows, nil
}
