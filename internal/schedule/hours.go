package schedule

import (
	"time"

	"github.com/pointbreak-gaming/PB-BookingService/pkg/types"
)

// Segment is one contiguous open range within a day. Close is exclusive:
// the last bookable unit starts SlotLengthMinutes before Close.
type Segment struct {
	Open  types.TimeString
	Close types.TimeString
}

// Contains returns true if t lies within [Open, Close).
func (s Segment) Contains(t types.TimeString) bool {
	return !t.IsBefore(s.Open) && t.IsBefore(s.Close)
}

// Fits returns true if a booking of durationMinutes starting at t ends at or
// before the segment close. A duration may not span a break between segments.
func (s Segment) Fits(t types.TimeString, durationMinutes int) bool {
	if !s.Contains(t) {
		return false
	}
	end, err := t.AddMinutes(durationMinutes)
	if err != nil {
		return false
	}
	return !end.IsAfter(s.Close)
}

// BusinessHours describes the lounge opening times. Weekdays may be split by
// a midday break into two segments; weekends run a single longer range.
type BusinessHours struct {
	Weekday []Segment
	Weekend []Segment
}

// SegmentsFor returns the open segments for the given calendar date.
func (h BusinessHours) SegmentsFor(date time.Time) []Segment {
	switch date.Weekday() {
	case time.Saturday, time.Sunday:
		return h.Weekend
	default:
		return h.Weekday
	}
}
