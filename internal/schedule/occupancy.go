package schedule

import (
	"github.com/pointbreak-gaming/PB-BookingService/internal/domain"
	"github.com/pointbreak-gaming/PB-BookingService/pkg/types"
)

// Index maps each atomic time unit of a date to the set of stations already
// occupied in it. It is derived data: built fresh from the confirmed
// reservations of one date, never cached across requests.
type Index map[types.TimeString]map[domain.StationID]struct{}

// BuildIndex builds the occupancy index for one date.
// Only confirmed reservations contribute; each selection is expanded through
// CoveredUnits over the date grid. Building is pure: the same reservation set
// yields the same index regardless of input order.
func BuildIndex(grid []types.TimeString, reservations []*domain.Reservation) Index {
	return BuildIndexExcluding(grid, reservations, 0)
}

// BuildIndexExcluding builds the index while skipping the reservation with
// the given id. The edit path uses this so a reservation is never rejected
// for conflicting with its own previous slots.
func BuildIndexExcluding(grid []types.TimeString, reservations []*domain.Reservation, excludeID int64) Index {
	idx := make(Index, len(grid))

	for _, r := range reservations {
		if !r.Confirmed {
			continue
		}
		if excludeID != 0 && r.ID == excludeID {
			continue
		}
		for _, sel := range r.Selections {
			for _, unit := range CoveredUnits(grid, r.StartTime, sel.DurationMinutes) {
				set, ok := idx[unit]
				if !ok {
					set = make(map[domain.StationID]struct{})
					idx[unit] = set
				}
				set[sel.StationID] = struct{}{}
			}
		}
	}
	return idx
}

// IsOccupied reports whether station is already booked in the given unit.
func (idx Index) IsOccupied(unit types.TimeString, station domain.StationID) bool {
	_, ok := idx[unit][station]
	return ok
}

// Count returns how many distinct stations are occupied in the given unit.
func (idx Index) Count(unit types.TimeString) int {
	return len(idx[unit])
}

// Occupied returns the stations occupied in the given unit, in catalog order.
func (idx Index) Occupied(unit types.TimeString) []domain.StationID {
	set := idx[unit]
	if len(set) == 0 {
		return nil
	}
	out := make([]domain.StationID, 0, len(set))
	for _, id := range domain.StationIDs() {
		if _, ok := set[id]; ok {
			out = append(out, id)
		}
	}
	return out
}

// OccupiedAcross returns the union of occupied stations over the given
// units, in catalog order.
func (idx Index) OccupiedAcross(units []types.TimeString) []domain.StationID {
	union := make(map[domain.StationID]struct{})
	for _, unit := range units {
		for id := range idx[unit] {
			union[id] = struct{}{}
		}
	}
	if len(union) == 0 {
		return nil
	}
	out := make([]domain.StationID, 0, len(union))
	for _, id := range domain.StationIDs() {
		if _, ok := union[id]; ok {
			out = append(out, id)
		}
	}
	return out
}
