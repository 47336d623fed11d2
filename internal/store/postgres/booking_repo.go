package postgres

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	"slotbook/internal/domain"
	"slotbook/internal/store"
)

const reservationSlotKey = "appointment_reservations_schedule_slot_id_key"

type BookingRepo struct {
	db *bun.DB
}

func NewBookingRepo(db *bun.DB) *BookingRepo {
	return &BookingRepo{db: db}
}

type bookingTx struct {
	db bun.IDB
}

// Reserve inserts every requested slot inside one transaction. A slot that is
// not declared, not served at the location, or already taken yields no row,
// and any shortfall rolls the whole appointment back.
func (r *BookingRepo) Reserve(ctx context.Context, appointmentID string, providerID, locationID int64, slots []domain.SlotIndex) error {
	return r.InTransaction(ctx, func(ctx context.Context, tx store.BookingTx) error {
		var reserved int64
		for _, s := range slots {
			n, err := tx.ReserveSlot(ctx, appointmentID, providerID, locationID, s)
			if err != nil {
				return err
			}
			reserved += n
		}
		if reserved != int64(len(slots)) {
			return store.ErrConflict
		}
		return nil
	})
}

func (r *BookingRepo) Cancel(ctx context.Context, appointmentID string) error {
	affected, err := bookingTx{db: r.db}.DeleteReservations(ctx, appointmentID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *BookingRepo) ListReservedSlots(ctx context.Context, providerID int64) ([]domain.ReservedSlot, error) {
	var rows []domain.ReservedSlot
	err := r.db.NewRaw(
		"SELECT r.appointment_id, ss.day, ss.segment, l.address "+
			"FROM appointment_reservations AS r "+
			"INNER JOIN schedule_slots AS ss ON ss.id = r.schedule_slot_id "+
			"INNER JOIN locations AS l ON l.id = r.location_id "+
			"WHERE ss.provider_id = ? "+
			"ORDER BY r.appointment_id, ss.day, ss.segment",
		providerID,
	).Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("list reserved slots: %w", err)
	}
	return rows, nil
}

func (r *BookingRepo) InTransaction(ctx context.Context, fn func(ctx context.Context, tx store.BookingTx) error) error {
	return r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		return fn(ctx, bookingTx{db: tx})
	})
}

// ReserveSlot resolves the slot through the ledger join and inserts at most
// one reservation row. It reports how many rows were written.
func (t bookingTx) ReserveSlot(ctx context.Context, appointmentID string, providerID, locationID int64, slot domain.SlotIndex) (int64, error) {
	res, err := t.db.NewRaw(
		"INSERT INTO appointment_reservations (appointment_id, schedule_slot_id, location_id, created_at) "+
			"SELECT ?, ss.id, pl.location_id, now() "+
			"FROM schedule_slots AS ss "+
			"INNER JOIN provider_locations AS pl ON pl.provider_id = ss.provider_id "+
			"WHERE ss.provider_id = ? AND ss.day = ? AND ss.segment = ? AND pl.location_id = ?",
		appointmentID, providerID, slot.Day, slot.Segment, locationID,
	).Exec(ctx)
	if err != nil {
		if pgErr, ok := pgError(err, codeUniqueViolation); ok {
			if pgErr.ConstraintName == "" || pgErr.ConstraintName == reservationSlotKey {
				return 0, store.ErrConflict
			}
		}
		return 0, err
	}
	return res.RowsAffected()
}

func (t bookingTx) DeleteReservations(ctx context.Context, appointmentID string) (int64, error) {
	res, err := t.db.NewDelete().
		Model((*domain.Reservation)(nil)).
		Where("appointment_id = ?", appointmentID).
		Exec(ctx)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
