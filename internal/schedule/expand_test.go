package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pointbreak-gaming/PB-BookingService/pkg/types"
)

func TestExpectedUnitCount(t *testing.T) {
	assert.Equal(t, 2, ExpectedUnitCount(30))
	assert.Equal(t, 4, ExpectedUnitCount(60))
	assert.Equal(t, 6, ExpectedUnitCount(90))
	assert.Equal(t, 12, ExpectedUnitCount(180))
	assert.Equal(t, 1, ExpectedUnitCount(10))
}

func TestCoveredUnits(t *testing.T) {
	cal := testCalendar(wednesday(9, 0))
	grid := cal.Units(wednesday(0, 0))

	t.Run("full hour inside a segment", func(t *testing.T) {
		units := CoveredUnits(grid, "11:00", 60)
		require.Len(t, units, 4)
		assert.Equal(t, []types.TimeString{"11:00", "11:15", "11:30", "11:45"}, units)
	})

	t.Run("truncated at segment close", func(t *testing.T) {
		// 17:00 + 90 минут уперлось бы в перерыв 17:30-19:00
		units := CoveredUnits(grid, "17:00", 90)
		require.Len(t, units, 2)
		assert.Equal(t, []types.TimeString{"17:00", "17:15"}, units)
		assert.Less(t, len(units), ExpectedUnitCount(90))
	})

	t.Run("does not jump across the midday break", func(t *testing.T) {
		units := CoveredUnits(grid, "17:15", 30)
		require.Len(t, units, 1)
		assert.Equal(t, types.TimeString("17:15"), units[0])
	})

	t.Run("evening segment up to closing", func(t *testing.T) {
		units := CoveredUnits(grid, "20:00", 60)
		assert.Equal(t, []types.TimeString{"20:00", "20:15", "20:30", "20:45"}, units)
	})

	t.Run("non-aligned start floors to the grid", func(t *testing.T) {
		units := CoveredUnits(grid, "11:10", 30)
		// пол до 11:00, расширяемся пока юнит < 11:10+30 = 11:40
		assert.Equal(t, []types.TimeString{"11:00", "11:15", "11:30"}, units)
	})

	t.Run("start outside any segment", func(t *testing.T) {
		assert.Empty(t, CoveredUnits(grid, "18:00", 30))
		assert.Empty(t, CoveredUnits(grid, "09:00", 30))
	})

	t.Run("degenerate inputs", func(t *testing.T) {
		assert.Empty(t, CoveredUnits(grid, "", 30))
		assert.Empty(t, CoveredUnits(grid, "11:00", 0))
		assert.Empty(t, CoveredUnits(nil, "11:00", 30))
	})
}
