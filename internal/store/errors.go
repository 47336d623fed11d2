package store

import "errors"

var (
	ErrConflict      = errors.New("conflict")
	ErrNotFound      = errors.New("not found")
	ErrDuplicateSlot = errors.New("slot already declared")
	ErrSlotInUse     = errors.New("slot is reserved")
)
