package domain

import "strconv"

// Slot grid constants
const (
	// SlotLengthMinutes is the atomic scheduling grain. All occupancy
	// bookkeeping happens on this grid.
	SlotLengthMinutes = 15

	// DefaultDurationMinutes is used when a channel does not let the
	// customer pick a duration (WhatsApp flow).
	DefaultDurationMinutes = 60
)

// DurationOptions закрытый набор допустимых длительностей бронирования (в минутах)
var DurationOptions = []int{30, 60, 90, 120, 150, 180}

// DurationLabels человекочитаемые подписи длительностей для админки и WhatsApp
var DurationLabels = map[int]string{
	30:  "30 mins",
	60:  "1 hour",
	90:  "1.5 hours",
	120: "2 hours",
	150: "2.5 hours",
	180: "3 hours",
}

// Player rules
const (
	MinPlayers = 1
	MaxPlayers = 6
)

// Booking window: дата должна попадать в [today, today+BookingWindowDays-1]
const BookingWindowDays = 3

// Customer field limits
const (
	MinCustomerNameLength = 2
	MaxCustomerNameLength = 60
	MinPhoneLength        = 7
	MaxPhoneLength        = 20
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// IsAllowedDuration returns true if d is one of the bookable durations.
func IsAllowedDuration(d int) bool {
	for _, opt := range DurationOptions {
		if opt == d {
			return true
		}
	}
	return false
}

// DurationLabel returns the display label for a duration, falling back to
// "<n> min" for values outside the closed set (legacy records).
func DurationLabel(d int) string {
	if label, ok := DurationLabels[d]; ok {
		return label
	}
	return strconv.Itoa(d) + " min"
}
