package schedule

import (
	"fmt"
	"time"

	"github.com/pointbreak-gaming/PB-BookingService/internal/domain"
	"github.com/pointbreak-gaming/PB-BookingService/pkg/types"
)

// ReasonCode identifies why a reservation request was rejected.
type ReasonCode string

const (
	ReasonDateNotAllowed        ReasonCode = "DATE_NOT_ALLOWED"
	ReasonSlotInPast            ReasonCode = "SLOT_IN_PAST"
	ReasonDuplicateResource     ReasonCode = "DUPLICATE_RESOURCE"
	ReasonUnknownResource       ReasonCode = "UNKNOWN_RESOURCE"
	ReasonDurationExceedsHours  ReasonCode = "DURATION_EXCEEDS_HOURS"
	ReasonResourceAlreadyBooked ReasonCode = "RESOURCE_ALREADY_BOOKED"
	ReasonCapacityExceeded      ReasonCode = "CAPACITY_EXCEEDED"
)

// Violation is the first rule a request breaks, with enough detail for a
// user-facing message: which station and which atomic unit (when relevant).
type Violation struct {
	Code      ReasonCode
	Detail    string
	StationID domain.StationID
	Unit      types.TimeString
}

// Error implements the error interface.
func (v *Violation) Error() string {
	return fmt.Sprintf("%s: %s", v.Code, v.Detail)
}

// Validator runs the ordered conflict checks for a reservation request
// against an occupancy index. Check order is fixed so the same bad request
// always produces the same first-violation reason.
type Validator struct {
	cal        *Calendar
	tvCapacity int
}

// NewValidator создает валидатор с указанным лимитом одновременно занятых ТВ
func NewValidator(cal *Calendar, tvCapacity int) *Validator {
	return &Validator{cal: cal, tvCapacity: tvCapacity}
}

// Validate checks a reservation request against the occupancy index and
// returns nil on acceptance or the first violation.
//
// adminOverride relaxes only the past-slot check: back-office staff may
// record walk-ins for slots that have already begun. Exclusivity and TV
// capacity are enforced for every origin.
func (v *Validator) Validate(
	date time.Time,
	start types.TimeString,
	selections []domain.Selection,
	idx Index,
	adminOverride bool,
) *Violation {
	// 1. Окно бронирования
	if !v.cal.IsDateAllowed(date) {
		return &Violation{
			Code:   ReasonDateNotAllowed,
			Detail: fmt.Sprintf("date %s is outside the booking window", date.Format(domain.DateFormat)),
		}
	}

	// 2. Структурные проверки: непустой список, уникальные станции, станции из каталога
	if len(selections) == 0 {
		return &Violation{
			Code:   ReasonUnknownResource,
			Detail: "at least one station must be selected",
		}
	}
	seen := make(map[domain.StationID]struct{}, len(selections))
	for _, sel := range selections {
		if !domain.IsKnownStation(sel.StationID) {
			return &Violation{
				Code:      ReasonUnknownResource,
				Detail:    fmt.Sprintf("unknown station %q", sel.StationID),
				StationID: sel.StationID,
			}
		}
		if _, dup := seen[sel.StationID]; dup {
			return &Violation{
				Code:      ReasonDuplicateResource,
				Detail:    fmt.Sprintf("station %q selected twice", sel.StationID),
				StationID: sel.StationID,
			}
		}
		seen[sel.StationID] = struct{}{}
	}

	grid := v.cal.Units(date)
	covered := make(map[domain.StationID][]types.TimeString, len(selections))

	// 3. Длительность должна целиком умещаться в один рабочий сегмент
	for _, sel := range selections {
		units := CoveredUnits(grid, start, sel.DurationMinutes)
		if len(units) < ExpectedUnitCount(sel.DurationMinutes) {
			return &Violation{
				Code:      ReasonDurationExceedsHours,
				Detail:    fmt.Sprintf("%d min from %s extends beyond closing for %s", sel.DurationMinutes, start, sel.StationID),
				StationID: sel.StationID,
			}
		}
		covered[sel.StationID] = units
	}

	// 4. Прошедшие слоты (пропускается для админского оформления walk-in)
	if !adminOverride {
		for _, sel := range selections {
			for _, unit := range covered[sel.StationID] {
				if v.cal.IsPast(date, unit) {
					return &Violation{
						Code:      ReasonSlotInPast,
						Detail:    fmt.Sprintf("slot %s has already passed", unit),
						StationID: sel.StationID,
						Unit:      unit,
					}
				}
			}
		}
	}

	// 5. Эксклюзивность станции: консоль нельзя забронировать дважды на один юнит
	for _, sel := range selections {
		for _, unit := range covered[sel.StationID] {
			if idx.IsOccupied(unit, sel.StationID) {
				return &Violation{
					Code:      ReasonResourceAlreadyBooked,
					Detail:    fmt.Sprintf("%s is already booked for %s", sel.StationID, unit),
					StationID: sel.StationID,
					Unit:      unit,
				}
			}
		}
	}

	// 6. Общий лимит ТВ: занятые станции + новые выборы запроса в каждом юните
	for _, sel := range selections {
		for _, unit := range covered[sel.StationID] {
			existing := idx.Count(unit)
			var requested int
			for _, other := range selections {
				for _, u := range covered[other.StationID] {
					if u == unit {
						requested++
						break
					}
				}
			}
			if existing+requested > v.tvCapacity {
				return &Violation{
					Code:   ReasonCapacityExceeded,
					Detail: fmt.Sprintf("no TV capacity left for %s (%d of %d taken)", unit, existing, v.tvCapacity),
					Unit:   unit,
				}
			}
		}
	}

	return nil
}
