package domain

import (
	"errors"
	"reflect"
	"testing"
)

func TestNewAppointmentID_Deterministic(t *testing.T) {
	slots := []SlotIndex{{Day: 1, Segment: 19}, {Day: 1, Segment: 20}}

	a := NewAppointmentID(0, 0, slots)
	b := NewAppointmentID(0, 0, slots)
	if a != b {
		t.Fatalf("ids differ: %q vs %q", a, b)
	}
	if a != "0.0_1.19_1.20" {
		t.Fatalf("id = %q, want %q", a, "0.0_1.19_1.20")
	}
}

func TestNewAppointmentID_OrderMatters(t *testing.T) {
	a := NewAppointmentID(3, 4, []SlotIndex{{Day: 2, Segment: 1}, {Day: 2, Segment: 2}})
	b := NewAppointmentID(3, 4, []SlotIndex{{Day: 2, Segment: 2}, {Day: 2, Segment: 1}})
	if a == b {
		t.Fatalf("expected different ids for different slot order, got %q", a)
	}
}

func TestNewAppointmentID_NoAmbiguousConcatenation(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
	}{
		{
			name: "provider and location digits",
			a:    NewAppointmentID(1, 23, []SlotIndex{{Day: 1, Segment: 1}}),
			b:    NewAppointmentID(12, 3, []SlotIndex{{Day: 1, Segment: 1}}),
		},
		{
			name: "day and segment digits",
			a:    NewAppointmentID(0, 0, []SlotIndex{{Day: 1, Segment: 12}}),
			b:    NewAppointmentID(0, 0, []SlotIndex{{Day: 11, Segment: 2}}),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.a == tt.b {
				t.Fatalf("ids collide: %q", tt.a)
			}
		})
	}
}

func TestParseAppointmentID_RoundTrip(t *testing.T) {
	slots := []SlotIndex{{Day: 6, Segment: 47}, {Day: 6, Segment: 0}}
	id := NewAppointmentID(42, 7, slots)

	key, err := ParseAppointmentID(id)
	if err != nil {
		t.Fatalf("ParseAppointmentID error: %v", err)
	}
	if key.ProviderID != 42 || key.LocationID != 7 {
		t.Fatalf("provider/location = %d/%d, want 42/7", key.ProviderID, key.LocationID)
	}
	if !reflect.DeepEqual(key.Slots, slots) {
		t.Fatalf("slots = %v, want %v", key.Slots, slots)
	}
}

func TestParseAppointmentID_Malformed(t *testing.T) {
	for _, id := range []string{
		"",
		"0.0",
		"00_119_120",
		"a.b_1.2",
		"0.0_1",
		"0.0_7.1",
		"0.0_1.48",
	} {
		t.Run(id, func(t *testing.T) {
			_, err := ParseAppointmentID(id)
			if !errors.Is(err, ErrMalformedAppointmentID) {
				t.Fatalf("err = %v, want %v", err, ErrMalformedAppointmentID)
			}
		})
	}
}

func TestSlotIndex_Valid(t *testing.T) {
	tests := []struct {
		slot SlotIndex
		want bool
	}{
		{SlotIndex{Day: 0, Segment: 0}, true},
		{SlotIndex{Day: 6, Segment: 47}, true},
		{SlotIndex{Day: 7, Segment: 0}, false},
		{SlotIndex{Day: -1, Segment: 0}, false},
		{SlotIndex{Day: 0, Segment: 48}, false},
		{SlotIndex{Day: 0, Segment: -1}, false},
	}
	for _, tt := range tests {
		if got := tt.slot.Valid(); got != tt.want {
			t.Fatalf("%v.Valid() = %v, want %v", tt.slot, got, tt.want)
		}
	}
}
