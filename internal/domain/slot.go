package domain

import (
	"context"
	"fmt"
	"time"

	"github.com/uptrace/bun"
)

const (
	DaysPerWeek    = 7
	SegmentsPerDay = 48
)

// SlotIndex identifies one 30-minute window of the week.
// Day 0 is Sunday; segment 0 covers 00:00-00:30.
type SlotIndex struct {
	Day     int `json:"day"`
	Segment int `json:"time"`
}

func (s SlotIndex) Valid() bool {
	return s.Day >= 0 && s.Day < DaysPerWeek && s.Segment >= 0 && s.Segment < SegmentsPerDay
}

func (s SlotIndex) String() string {
	return fmt.Sprintf("%d.%d", s.Day, s.Segment)
}

type ScheduleSlot struct {
	bun.BaseModel `bun:"table:schedule_slots"`

	ID         int64     `bun:"id,pk,autoincrement" json:"id"`
	ProviderID int64     `bun:"provider_id,notnull" json:"provider_id"`
	Day        int16     `bun:"day,notnull" json:"day"`
	Segment    int16     `bun:"segment,notnull" json:"time"`
	CreatedAt  time.Time `bun:"created_at,notnull" json:"created_at"`
}

func (s *ScheduleSlot) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	if _, ok := query.(*bun.InsertQuery); ok && s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}
	return nil
}

func (s ScheduleSlot) Index() SlotIndex {
	return SlotIndex{Day: int(s.Day), Segment: int(s.Segment)}
}

// Location and ProviderLocation are owned by the provider directory; the
// booking core only reads them.
type Location struct {
	bun.BaseModel `bun:"table:locations"`

	ID      int64  `bun:"id,pk,autoincrement" json:"id"`
	Address string `bun:"address,notnull" json:"address"`
}

type ProviderLocation struct {
	bun.BaseModel `bun:"table:provider_locations"`

	ID         int64 `bun:"id,pk,autoincrement"`
	ProviderID int64 `bun:"provider_id,notnull"`
	LocationID int64 `bun:"location_id,notnull"`
}
