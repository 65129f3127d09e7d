package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pointbreak-gaming/PB-BookingService/pkg/types"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

// Рабочие часы для тестов: будни с обеденным перерывом, выходные без него.
func testHours() BusinessHours {
	return BusinessHours{
		Weekday: []Segment{
			{Open: "11:00", Close: "17:30"},
			{Open: "19:00", Close: "21:00"},
		},
		Weekend: []Segment{
			{Open: "10:00", Close: "22:00"},
		},
	}
}

var kolkata = time.FixedZone("IST", 5*3600+1800)

// 2026-09-02 - среда, 2026-09-05 - суббота
func wednesday(hour, min int) time.Time {
	return time.Date(2026, time.September, 2, hour, min, 0, 0, kolkata)
}

func testCalendar(now time.Time) *Calendar {
	return NewCalendar(testHours(), &fakeClock{now: now}, 3)
}

func TestCalendar_IsDateAllowed(t *testing.T) {
	cal := testCalendar(wednesday(12, 0))

	tests := []struct {
		name    string
		date    time.Time
		allowed bool
	}{
		{"yesterday", time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC), false},
		{"today", time.Date(2026, time.September, 2, 0, 0, 0, 0, time.UTC), true},
		{"tomorrow", time.Date(2026, time.September, 3, 0, 0, 0, 0, time.UTC), true},
		{"day after tomorrow", time.Date(2026, time.September, 4, 0, 0, 0, 0, time.UTC), true},
		{"three days out", time.Date(2026, time.September, 5, 0, 0, 0, 0, time.UTC), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, cal.IsDateAllowed(tt.date))
		})
	}
}

func TestCalendar_IsDateAllowed_UTCDateVsVenueToday(t *testing.T) {
	// Поздний вечер в зале: в UTC еще предыдущий день, но "сегодня"
	// определяется таймзоной зала.
	cal := testCalendar(wednesday(23, 30))

	assert.True(t, cal.IsDateAllowed(time.Date(2026, time.September, 2, 0, 0, 0, 0, time.UTC)))
	assert.False(t, cal.IsDateAllowed(time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)))
}

func TestCalendar_WindowDates(t *testing.T) {
	cal := testCalendar(wednesday(9, 0))

	dates := cal.WindowDates()
	require.Len(t, dates, 3)
	assert.Equal(t, 2, dates[0].Day())
	assert.Equal(t, 3, dates[1].Day())
	assert.Equal(t, 4, dates[2].Day())
}

func TestCalendar_Units_WeekdaySegments(t *testing.T) {
	cal := testCalendar(wednesday(9, 0))

	units := cal.Units(wednesday(0, 0))

	// 11:00-17:30 это 26 юнитов, 19:00-21:00 еще 8
	require.Len(t, units, 34)
	assert.Equal(t, types.TimeString("11:00"), units[0])
	assert.Equal(t, types.TimeString("17:15"), units[25])
	assert.Equal(t, types.TimeString("19:00"), units[26])
	assert.Equal(t, types.TimeString("20:45"), units[33])

	// перерыв не попадает в сетку
	for _, u := range units {
		assert.NotEqual(t, types.TimeString("18:00"), u)
	}
}

func TestCalendar_Units_Weekend(t *testing.T) {
	cal := testCalendar(wednesday(9, 0))
	saturday := time.Date(2026, time.September, 5, 0, 0, 0, 0, time.UTC)

	units := cal.Units(saturday)

	// 10:00-22:00 = 12 часов = 48 юнитов
	require.Len(t, units, 48)
	assert.Equal(t, types.TimeString("10:00"), units[0])
	assert.Equal(t, types.TimeString("21:45"), units[47])
}

func TestCalendar_ValidStartTimes(t *testing.T) {
	cal := testCalendar(wednesday(9, 0))
	date := wednesday(0, 0)

	t.Run("90 min fits only where the segment allows", func(t *testing.T) {
		starts := cal.ValidStartTimes(date, 90)

		// первый сегмент: старты до 16:00 включительно
		assert.Contains(t, starts, types.TimeString("11:00"))
		assert.Contains(t, starts, types.TimeString("16:00"))
		assert.NotContains(t, starts, types.TimeString("16:15"))
		assert.NotContains(t, starts, types.TimeString("17:00"))

		// второй сегмент: последний старт 19:30
		assert.Contains(t, starts, types.TimeString("19:00"))
		assert.Contains(t, starts, types.TimeString("19:30"))
		assert.NotContains(t, starts, types.TimeString("19:45"))
	})

	t.Run("180 min does not fit the evening segment at all", func(t *testing.T) {
		starts := cal.ValidStartTimes(date, 180)

		assert.Contains(t, starts, types.TimeString("11:00"))
		assert.Contains(t, starts, types.TimeString("14:30"))
		assert.NotContains(t, starts, types.TimeString("14:45"))
		assert.NotContains(t, starts, types.TimeString("19:00"))
	})

	t.Run("every start is unit aligned", func(t *testing.T) {
		for _, s := range cal.ValidStartTimes(date, 30) {
			assert.Zero(t, s.Minutes()%15, "start %s not aligned", s)
		}
	})
}

func TestCalendar_IsPast(t *testing.T) {
	cal := testCalendar(wednesday(15, 40))
	today := wednesday(0, 0)
	tomorrow := today.AddDate(0, 0, 1)

	// слот прошел, как только текущее время его достигло
	assert.True(t, cal.IsPast(today, "15:30"))
	assert.True(t, cal.IsPast(today, "15:40"))
	assert.False(t, cal.IsPast(today, "15:45"))

	// будущие даты никогда не бывают прошедшими
	assert.False(t, cal.IsPast(tomorrow, "11:00"))
}

func TestFixedZoneClock(t *testing.T) {
	clock, err := NewFixedZoneClock("Asia/Kolkata")
	require.NoError(t, err)
	assert.Equal(t, "Asia/Kolkata", clock.Now().Location().String())

	_, err = NewFixedZoneClock("Not/AZone")
	assert.Error(t, err)
}
