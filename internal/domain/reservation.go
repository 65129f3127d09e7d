package domain

import (
	"time"

	"github.com/pointbreak-gaming/PB-BookingService/pkg/types"
)

// Origin tags which channel created a reservation.
type Origin string

const (
	OriginWebsite  Origin = "website"
	OriginWhatsApp Origin = "whatsapp"
	OriginAdmin    Origin = "admin"
)

// IsValidOrigin returns true for a known origin tag.
func IsValidOrigin(o Origin) bool {
	return o == OriginWebsite || o == OriginWhatsApp || o == OriginAdmin
}

// Selection is one station booked within a reservation: which console, for
// how many players and for how long. End time is derived, never stored.
type Selection struct {
	StationID       StationID `json:"stationId"`
	Players         int       `json:"players"`
	DurationMinutes int       `json:"durationMinutes"`
}

// EndTime returns the selection's end time for the given reservation start.
func (s Selection) EndTime(start types.TimeString) (types.TimeString, error) {
	return start.AddMinutes(s.DurationMinutes)
}

// Payment is a recorded payment against a reservation.
type Payment struct {
	Method string  `json:"method"` // cash / upi / card
	Amount float64 `json:"amount"`
}

// Reservation represents a booking record.
// Confirmed=false is a soft cancel: the record stays for history but is
// excluded from occupancy.
type Reservation struct {
	ID            int64
	Date          time.Time // календарный день, время игнорируется
	StartTime     types.TimeString
	Selections    []Selection
	CustomerName  string
	CustomerPhone string
	Confirmed     bool
	Origin        Origin
	Payments      []Payment
	TotalPrice    float64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// PaidAmount returns the sum of recorded payments.
func (r *Reservation) PaidAmount() float64 {
	var paid float64
	for _, p := range r.Payments {
		paid += p.Amount
	}
	return paid
}

// DueAmount returns the unpaid part of the quoted price, never negative.
func (r *Reservation) DueAmount() float64 {
	due := r.TotalPrice - r.PaidAmount()
	if due < 0 {
		return 0
	}
	return due
}

// TotalPlayers returns the number of players across all selections.
func (r *Reservation) TotalPlayers() int {
	var n int
	for _, s := range r.Selections {
		n += s.Players
	}
	return n
}

// LastEndTime returns the latest selection end time, or the zero value when
// the reservation has no selections.
func (r *Reservation) LastEndTime() types.TimeString {
	var last types.TimeString
	for _, s := range r.Selections {
		end, err := s.EndTime(r.StartTime)
		if err != nil {
			continue
		}
		if last.IsZero() || end.IsAfter(last) {
			last = end
		}
	}
	return last
}

// SearchFilter фильтр архивного поиска бронирований (админка).
// Либо точная дата (Date), либо период (StartDate+EndDate); NameQuery -
// подстрока имени клиента без учета регистра.
type SearchFilter struct {
	Date      *time.Time
	StartDate *time.Time
	EndDate   *time.Time
	NameQuery *string
	Page      int
	Limit     int
}
