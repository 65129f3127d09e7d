package schedule

import (
	"github.com/pointbreak-gaming/PB-BookingService/internal/domain"
	"github.com/pointbreak-gaming/PB-BookingService/pkg/types"
)

// ExpectedUnitCount returns how many atomic units a duration must cover.
func ExpectedUnitCount(durationMinutes int) int {
	return (durationMinutes + domain.SlotLengthMinutes - 1) / domain.SlotLengthMinutes
}

// CoveredUnits expands (start, duration) into the ordered atomic units the
// booking occupies, bounded by the date's unit grid.
//
// The first unit is start floored to the grid (non-aligned starts only occur
// via back-office overrides). Expansion walks forward one unit at a time
// while unit < start+duration and stops at the first unit missing from the
// grid, so a booking that would run past a segment close (or into the midday
// break) comes back short. No clamping happens here: callers compare
// len(result) against ExpectedUnitCount to detect truncation.
func CoveredUnits(grid []types.TimeString, start types.TimeString, durationMinutes int) []types.TimeString {
	if start.IsZero() || durationMinutes <= 0 || len(grid) == 0 {
		return nil
	}

	inGrid := make(map[types.TimeString]struct{}, len(grid))
	for _, u := range grid {
		inGrid[u] = struct{}{}
	}

	first := start.FloorTo(domain.SlotLengthMinutes)
	end := start.Minutes() + durationMinutes

	var units []types.TimeString
	for m := first.Minutes(); m < end; m += domain.SlotLengthMinutes {
		u, err := types.FromMinutes(m)
		if err != nil {
			break // за полночь не расширяемся
		}
		if _, ok := inGrid[u]; !ok {
			break
		}
		units = append(units, u)
	}
	return units
}
