package domain

import (
	"sort"
	"strconv"
	"strings"
)

// ReservedSlot is one reservation row joined with its slot and location.
type ReservedSlot struct {
	AppointmentID string `bun:"appointment_id"`
	Day           int    `bun:"day"`
	Segment       int    `bun:"segment"`
	Address       string `bun:"address"`
}

// BuildAppointmentViews groups reservation rows by appointment id. Segments
// are de-duplicated and listed in ascending order.
func BuildAppointmentViews(rows []ReservedSlot) map[string]AppointmentView {
	type group struct {
		address  string
		day      int
		segments map[int]struct{}
	}

	groups := make(map[string]*group)
	for _, r := range rows {
		g, ok := groups[r.AppointmentID]
		if !ok {
			g = &group{address: r.Address, day: r.Day, segments: make(map[int]struct{})}
			groups[r.AppointmentID] = g
		}
		g.segments[r.Segment] = struct{}{}
	}

	out := make(map[string]AppointmentView, len(groups))
	for id, g := range groups {
		segments := make([]int, 0, len(g.segments))
		for s := range g.segments {
			segments = append(segments, s)
		}
		sort.Ints(segments)

		chunks := make([]string, 0, len(segments))
		for _, s := range segments {
			chunks = append(chunks, strconv.Itoa(s))
		}
		out[id] = AppointmentView{
			Address:    g.address,
			Day:        g.day,
			TimeChunks: strings.Join(chunks, ","),
		}
	}
	return out
}
