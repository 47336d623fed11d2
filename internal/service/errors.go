package service

import (
	"errors"
	"fmt"

	"slotbook/internal/domain"
	"slotbook/internal/store"
)

type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func Invalid(msg string) error {
	return &ValidationError{msg: msg}
}

func IsValidation(err error) bool {
	var vErr *ValidationError
	return errors.As(err, &vErr)
}

// ValidateSlots rejects out-of-range and repeated slots.
func ValidateSlots(slots []domain.SlotIndex) error {
	seen := make(map[domain.SlotIndex]struct{}, len(slots))
	for _, s := range slots {
		if s.Day < 0 || s.Day >= domain.DaysPerWeek {
			return Invalid(fmt.Sprintf("day must be between 0 and %d", domain.DaysPerWeek-1))
		}
		if s.Segment < 0 || s.Segment >= domain.SegmentsPerDay {
			return Invalid(fmt.Sprintf("time must be between 0 and %d", domain.SegmentsPerDay-1))
		}
		if _, ok := seen[s]; ok {
			return Invalid("duplicate time slot " + s.String())
		}
		seen[s] = struct{}{}
	}
	return nil
}

// Outcome is the metrics label for an operation result.
func Outcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case IsValidation(err):
		return "invalid"
	case errors.Is(err, store.ErrConflict):
		return "conflict"
	case errors.Is(err, store.ErrDuplicateSlot):
		return "duplicate"
	case errors.Is(err, store.ErrSlotInUse):
		return "in_use"
	case errors.Is(err, store.ErrNotFound):
		return "not_found"
	default:
		return "error"
	}
}
