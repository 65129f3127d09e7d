package schedule

import (
	"time"

	"github.com/pointbreak-gaming/PB-BookingService/internal/domain"
	"github.com/pointbreak-gaming/PB-BookingService/pkg/types"
)

// StartAvailability describes one candidate start time at the query duration.
type StartAvailability struct {
	StartTime         types.TimeString
	OccupiedStations  []domain.StationID
	AvailableStations []domain.StationID
	TVRemaining       int
	IsPast            bool
}

// HasCapacity returns true if at least one TV and one station are free.
func (a StartAvailability) HasCapacity() bool {
	return a.TVRemaining > 0 && len(a.AvailableStations) > 0
}

// HasStation returns true if the given station is free for this start.
func (a StartAvailability) HasStation(id domain.StationID) bool {
	for _, s := range a.AvailableStations {
		if s == id {
			return true
		}
	}
	return false
}

// ComputeAvailability computes, for every valid start time of the date at the
// query duration: the stations occupied anywhere in the covered window, the
// free stations and the remaining TV capacity. Past starts report zero
// capacity and no stations regardless of occupancy.
//
// The result is recomputed from the index on every call - occupancy changes
// with every confirmed write, so staleness is bounded by request latency only.
func ComputeAvailability(cal *Calendar, idx Index, date time.Time, durationMinutes, tvCapacity int) []StartAvailability {
	grid := cal.Units(date)
	starts := cal.ValidStartTimes(date, durationMinutes)

	out := make([]StartAvailability, 0, len(starts))
	for _, start := range starts {
		covered := CoveredUnits(grid, start, durationMinutes)
		occupied := idx.OccupiedAcross(covered)
		isPast := cal.IsPast(date, start)

		remaining := tvCapacity - len(occupied)
		if remaining < 0 {
			remaining = 0
		}

		var available []domain.StationID
		if isPast {
			remaining = 0
		} else if remaining > 0 {
			occupiedSet := make(map[domain.StationID]struct{}, len(occupied))
			for _, id := range occupied {
				occupiedSet[id] = struct{}{}
			}
			for _, id := range domain.StationIDs() {
				if _, ok := occupiedSet[id]; !ok {
					available = append(available, id)
				}
			}
		}

		out = append(out, StartAvailability{
			StartTime:         start,
			OccupiedStations:  occupied,
			AvailableStations: available,
			TVRemaining:       remaining,
			IsPast:            isPast,
		})
	}
	return out
}
