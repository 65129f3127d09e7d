package schedule

import (
	"fmt"
	"time"

	"github.com/pointbreak-gaming/PB-BookingService/internal/domain"
	"github.com/pointbreak-gaming/PB-BookingService/pkg/types"
)

// Clock provides the current moment. All "now" reads in the engine go
// through this interface so tests can pin time and production always uses
// the venue timezone, never the host clock.
type Clock interface {
	Now() time.Time
}

// FixedZoneClock reports wall time in a fixed IANA timezone.
type FixedZoneClock struct {
	loc *time.Location
}

// NewFixedZoneClock создает часы, привязанные к таймзоне зала (например "Asia/Kolkata")
func NewFixedZoneClock(tz string) (*FixedZoneClock, error) {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("schedule: failed to load timezone %q: %w", tz, err)
	}
	return &FixedZoneClock{loc: loc}, nil
}

// Now returns the current time in the fixed timezone.
func (c *FixedZoneClock) Now() time.Time {
	return time.Now().In(c.loc)
}

// Calendar answers date and time-of-day questions for the booking window:
// which dates are bookable, which start times are valid for a duration and
// whether a slot already lies in the past.
type Calendar struct {
	hours      BusinessHours
	clock      Clock
	windowDays int
}

// NewCalendar создает календарь с указанными рабочими часами и окном бронирования
func NewCalendar(hours BusinessHours, clock Clock, windowDays int) *Calendar {
	if windowDays <= 0 {
		windowDays = domain.BookingWindowDays
	}
	return &Calendar{
		hours:      hours,
		clock:      clock,
		windowDays: windowDays,
	}
}

// Today returns the current date (midnight) in the venue timezone.
func (c *Calendar) Today() time.Time {
	return dateOnly(c.clock.Now())
}

// WindowDates returns the bookable dates, today first.
func (c *Calendar) WindowDates() []time.Time {
	today := c.Today()
	dates := make([]time.Time, c.windowDays)
	for i := 0; i < c.windowDays; i++ {
		dates[i] = today.AddDate(0, 0, i)
	}
	return dates
}

// IsDateAllowed reports whether date falls inside [today, today+windowDays-1].
// Сравниваются только компоненты даты: date может приходить распарсенной в UTC,
// а "сегодня" живет в таймзоне зала.
func (c *Calendar) IsDateAllowed(date time.Time) bool {
	diff := daysBetween(c.Today(), date)
	return diff >= 0 && diff < c.windowDays
}

// Units returns every atomic time unit of the date's open segments, in order.
// This is the full occupancy grid for the date.
func (c *Calendar) Units(date time.Time) []types.TimeString {
	var units []types.TimeString
	for _, seg := range c.hours.SegmentsFor(date) {
		for m := seg.Open.Minutes(); m < seg.Close.Minutes(); m += domain.SlotLengthMinutes {
			u, err := types.FromMinutes(m)
			if err != nil {
				break
			}
			units = append(units, u)
		}
	}
	return units
}

// ValidStartTimes returns every unit-aligned start time at which a booking of
// durationMinutes fits entirely within a single open segment of the date.
func (c *Calendar) ValidStartTimes(date time.Time, durationMinutes int) []types.TimeString {
	var starts []types.TimeString
	for _, seg := range c.hours.SegmentsFor(date) {
		for m := seg.Open.Minutes(); m < seg.Close.Minutes(); m += domain.SlotLengthMinutes {
			t, err := types.FromMinutes(m)
			if err != nil {
				break
			}
			if seg.Fits(t, durationMinutes) {
				starts = append(starts, t)
			}
		}
	}
	return starts
}

// IsPast reports whether the given slot on the given date has already passed.
// Only today's slots can be past: a slot is past once the current time
// reaches it, and any future date is never past.
func (c *Calendar) IsPast(date time.Time, t types.TimeString) bool {
	now := c.clock.Now()
	if !isSameDay(date, now) {
		return false
	}
	return !types.NewTimeString(now).IsBefore(t)
}

// dateOnly обнуляет время, оставляя только календарный день
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// daysBetween возвращает количество календарных дней от a до b,
// игнорируя время и таймзону обеих дат
func daysBetween(a, b time.Time) int {
	ua := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	ub := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(ub.Sub(ua).Hours() / 24)
}
