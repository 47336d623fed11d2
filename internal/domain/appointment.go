package domain

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/uptrace/bun"
)

// Reservation binds one schedule slot to one appointment. The unique index on
// schedule_slot_id is what keeps two appointments off the same slot.
type Reservation struct {
	bun.BaseModel `bun:"table:appointment_reservations"`

	ID             int64     `bun:"id,pk,autoincrement"`
	AppointmentID  string    `bun:"appointment_id,notnull"`
	ScheduleSlotID int64     `bun:"schedule_slot_id,notnull"`
	LocationID     int64     `bun:"location_id,notnull"`
	CreatedAt      time.Time `bun:"created_at,notnull"`
}

// AppointmentView is the grouped, display-ready form of an appointment.
type AppointmentView struct {
	Address    string `json:"address"`
	Day        int    `json:"day"`
	TimeChunks string `json:"time_chunks"`
}

// AppointmentKey is the decoded content of an appointment identifier.
type AppointmentKey struct {
	ProviderID int64
	LocationID int64
	Slots      []SlotIndex
}

var ErrMalformedAppointmentID = errors.New("malformed appointment id")

// NewAppointmentID derives the identifier for a booking request. The same
// provider, location and ordered slot list always produce the same value:
// "<provider>.<location>_<day>.<segment>_<day>.<segment>...".
func NewAppointmentID(providerID, locationID int64, slots []SlotIndex) string {
	var b strings.Builder
	b.WriteString(strconv.FormatInt(providerID, 10))
	b.WriteByte('.')
	b.WriteString(strconv.FormatInt(locationID, 10))
	for _, s := range slots {
		b.WriteByte('_')
		b.WriteString(strconv.Itoa(s.Day))
		b.WriteByte('.')
		b.WriteString(strconv.Itoa(s.Segment))
	}
	return b.String()
}

func ParseAppointmentID(id string) (AppointmentKey, error) {
	parts := strings.Split(strings.TrimSpace(id), "_")
	if len(parts) < 2 {
		return AppointmentKey{}, ErrMalformedAppointmentID
	}

	providerID, locationID, err := splitPair(parts[0])
	if err != nil {
		return AppointmentKey{}, err
	}

	key := AppointmentKey{
		ProviderID: providerID,
		LocationID: locationID,
		Slots:      make([]SlotIndex, 0, len(parts)-1),
	}
	for _, p := range parts[1:] {
		day, segment, err := splitPair(p)
		if err != nil {
			return AppointmentKey{}, err
		}
		slot := SlotIndex{Day: int(day), Segment: int(segment)}
		if !slot.Valid() {
			return AppointmentKey{}, ErrMalformedAppointmentID
		}
		key.Slots = append(key.Slots, slot)
	}
	return key, nil
}

func splitPair(s string) (int64, int64, error) {
	left, right, ok := strings.Cut(s, ".")
	if !ok {
		return 0, 0, ErrMalformedAppointmentID
	}
	a, err := strconv.ParseInt(left, 10, 64)
	if err != nil {
		return 0, 0, ErrMalformedAppointmentID
	}
	b, err := strconv.ParseInt(right, 10, 64)
	if err != nil {
		return 0, 0, ErrMalformedAppointmentID
	}
	return a, b, nil
}
