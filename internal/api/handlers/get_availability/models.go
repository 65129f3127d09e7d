package get_availability

import (
	"github.com/pointbreak-gaming/PB-BookingService/internal/domain"
	getAvailability "github.com/pointbreak-gaming/PB-BookingService/internal/usecase/get_availability"
)

// SlotResponse доступность одного времени старта
type SlotResponse struct {
	StartTime         string   `json:"startTime"` // "14:00"
	AvailableStations []string `json:"availableStations"`
	OccupiedStations  []string `json:"occupiedStations"`
	TVRemaining       int      `json:"tvRemaining"`
	IsPast            bool     `json:"isPast,omitempty"`
}

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Date            string         `json:"date"` // "2026-09-02"
	DurationMinutes int            `json:"durationMinutes"`
	TVCapacity      int            `json:"tvCapacity"`
	Slots           []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	slots := make([]SlotResponse, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = SlotResponse{
			StartTime:         slot.StartTime.String(),
			AvailableStations: stationIDs(slot.AvailableStations),
			OccupiedStations:  stationIDs(slot.OccupiedStations),
			TVRemaining:       slot.TVRemaining,
			IsPast:            slot.IsPast,
		}
	}

	return &AvailabilityResponse{
		Date:            resp.Date.Format(domain.DateFormat),
		DurationMinutes: resp.DurationMinutes,
		TVCapacity:      resp.TVCapacity,
		Slots:           slots,
	}
}

func stationIDs(ids []domain.StationID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = string(id)
	}
	return out
}
