package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pointbreak-gaming/PB-BookingService/internal/domain"
	"github.com/pointbreak-gaming/PB-BookingService/pkg/types"
)

func TestValidator_Validate(t *testing.T) {
	cal := testCalendar(wednesday(9, 0))
	v := NewValidator(cal, 3)
	date := wednesday(0, 0)
	grid := cal.Units(date)
	empty := BuildIndex(grid, nil)

	t.Run("accepts a clean request", func(t *testing.T) {
		violation := v.Validate(date, "11:00", []domain.Selection{
			sel(domain.StationPS5, 60),
		}, empty, false)
		assert.Nil(t, violation)
	})

	t.Run("date outside the window", func(t *testing.T) {
		far := date.AddDate(0, 0, 5)
		violation := v.Validate(far, "11:00", []domain.Selection{
			sel(domain.StationPS5, 60),
		}, empty, false)
		require.NotNil(t, violation)
		assert.Equal(t, ReasonDateNotAllowed, violation.Code)
	})

	t.Run("empty selection list", func(t *testing.T) {
		violation := v.Validate(date, "11:00", nil, empty, false)
		require.NotNil(t, violation)
		assert.Equal(t, ReasonUnknownResource, violation.Code)
	})

	t.Run("unknown station", func(t *testing.T) {
		violation := v.Validate(date, "11:00", []domain.Selection{
			sel("sega-dreamcast", 60),
		}, empty, false)
		require.NotNil(t, violation)
		assert.Equal(t, ReasonUnknownResource, violation.Code)
		assert.Equal(t, domain.StationID("sega-dreamcast"), violation.StationID)
	})

	t.Run("same station twice in one request", func(t *testing.T) {
		violation := v.Validate(date, "11:00", []domain.Selection{
			sel(domain.StationPS5, 60),
			sel(domain.StationPS5, 30),
		}, empty, false)
		require.NotNil(t, violation)
		assert.Equal(t, ReasonDuplicateResource, violation.Code)
	})

	t.Run("duration runs into the midday break", func(t *testing.T) {
		violation := v.Validate(date, "17:00", []domain.Selection{
			sel(domain.StationPS5, 90),
		}, empty, false)
		require.NotNil(t, violation)
		assert.Equal(t, ReasonDurationExceedsHours, violation.Code)
	})

	t.Run("duration runs past closing", func(t *testing.T) {
		violation := v.Validate(date, "20:30", []domain.Selection{
			sel(domain.StationPS5, 60),
		}, empty, false)
		require.NotNil(t, violation)
		assert.Equal(t, ReasonDurationExceedsHours, violation.Code)
	})

	t.Run("station already booked", func(t *testing.T) {
		idx := BuildIndex(grid, []*domain.Reservation{
			reservation(1, "11:00", true, sel(domain.StationPS5, 60)),
		})

		violation := v.Validate(date, "11:30", []domain.Selection{
			sel(domain.StationPS5, 60),
		}, idx, false)
		require.NotNil(t, violation)
		assert.Equal(t, ReasonResourceAlreadyBooked, violation.Code)
		assert.Equal(t, domain.StationPS5, violation.StationID)
		assert.Equal(t, types.TimeString("11:30"), violation.Unit)
	})

	t.Run("different station in an overlapping window is fine", func(t *testing.T) {
		idx := BuildIndex(grid, []*domain.Reservation{
			reservation(1, "11:00", true, sel(domain.StationPS5, 60)),
		})

		violation := v.Validate(date, "11:30", []domain.Selection{
			sel(domain.StationXbox360, 60),
		}, idx, false)
		assert.Nil(t, violation)
	})

	t.Run("soft-cancelled booking does not block", func(t *testing.T) {
		idx := BuildIndex(grid, []*domain.Reservation{
			reservation(1, "11:00", false, sel(domain.StationPS5, 60)),
		})

		violation := v.Validate(date, "11:00", []domain.Selection{
			sel(domain.StationPS5, 60),
		}, idx, false)
		assert.Nil(t, violation)
	})

	t.Run("tv capacity exceeded by existing bookings", func(t *testing.T) {
		idx := BuildIndex(grid, []*domain.Reservation{
			reservation(1, "12:00", true,
				sel(domain.StationPS5, 60),
				sel(domain.StationXboxSeriesX, 60),
				sel(domain.StationXboxOneS, 60),
			),
		})

		violation := v.Validate(date, "12:00", []domain.Selection{
			sel(domain.StationXbox360, 60),
		}, idx, false)
		require.NotNil(t, violation)
		assert.Equal(t, ReasonCapacityExceeded, violation.Code)
	})

	t.Run("tv capacity exceeded within a single request", func(t *testing.T) {
		violation := v.Validate(date, "12:00", []domain.Selection{
			sel(domain.StationPS5, 60),
			sel(domain.StationXboxSeriesX, 60),
			sel(domain.StationXboxOneS, 60),
			sel(domain.StationXbox360, 60),
		}, empty, false)
		require.NotNil(t, violation)
		assert.Equal(t, ReasonCapacityExceeded, violation.Code)
	})

	t.Run("capacity at the limit is accepted", func(t *testing.T) {
		idx := BuildIndex(grid, []*domain.Reservation{
			reservation(1, "12:00", true,
				sel(domain.StationPS5, 60),
				sel(domain.StationXboxSeriesX, 60),
			),
		})

		violation := v.Validate(date, "12:00", []domain.Selection{
			sel(domain.StationXbox360, 60),
		}, idx, false)
		assert.Nil(t, violation)
	})

	t.Run("capacity counts partial overlap of mixed durations", func(t *testing.T) {
		// до 12:30 заняты три ТВ, после - только два
		idx := BuildIndex(grid, []*domain.Reservation{
			reservation(1, "12:00", true,
				sel(domain.StationPS5, 30),
				sel(domain.StationXboxSeriesX, 90),
				sel(domain.StationXboxOneS, 90),
			),
		})

		blocked := v.Validate(date, "12:15", []domain.Selection{
			sel(domain.StationXbox360, 30),
		}, idx, false)
		require.NotNil(t, blocked)
		assert.Equal(t, ReasonCapacityExceeded, blocked.Code)

		ok := v.Validate(date, "12:30", []domain.Selection{
			sel(domain.StationXbox360, 30),
		}, idx, false)
		assert.Nil(t, ok)
	})
}

func TestValidator_Validate_PastSlots(t *testing.T) {
	// сейчас среда 15:40
	cal := testCalendar(wednesday(15, 40))
	v := NewValidator(cal, 3)
	date := wednesday(0, 0)
	empty := Index{}

	t.Run("past start is rejected for regular origins", func(t *testing.T) {
		violation := v.Validate(date, "15:30", []domain.Selection{
			sel(domain.StationPS5, 60),
		}, empty, false)
		require.NotNil(t, violation)
		assert.Equal(t, ReasonSlotInPast, violation.Code)
		assert.Equal(t, types.TimeString("15:30"), violation.Unit)
	})

	t.Run("admin override lets a past start through", func(t *testing.T) {
		violation := v.Validate(date, "15:30", []domain.Selection{
			sel(domain.StationPS5, 60),
		}, empty, true)
		assert.Nil(t, violation)
	})

	t.Run("admin override still enforces exclusivity", func(t *testing.T) {
		grid := cal.Units(date)
		idx := BuildIndex(grid, []*domain.Reservation{
			reservation(1, "15:30", true, sel(domain.StationPS5, 60)),
		})

		violation := v.Validate(date, "15:30", []domain.Selection{
			sel(domain.StationPS5, 60),
		}, idx, true)
		require.NotNil(t, violation)
		assert.Equal(t, ReasonResourceAlreadyBooked, violation.Code)
	})

	t.Run("future slots on today are fine", func(t *testing.T) {
		violation := v.Validate(date, "16:00", []domain.Selection{
			sel(domain.StationPS5, 60),
		}, empty, false)
		assert.Nil(t, violation)
	})

	t.Run("tomorrow is never past", func(t *testing.T) {
		tomorrow := date.AddDate(0, 0, 1)
		violation := v.Validate(tomorrow, "11:00", []domain.Selection{
			sel(domain.StationPS5, 60),
		}, empty, false)
		assert.Nil(t, violation)
	})
}

func TestViolation_Error(t *testing.T) {
	v := &Violation{Code: ReasonCapacityExceeded, Detail: "no TV left"}
	assert.Equal(t, "CAPACITY_EXCEEDED: no TV left", v.Error())
}
