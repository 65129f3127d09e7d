package create_reservation

import (
	"time"

	"github.com/pointbreak-gaming/PB-BookingService/internal/domain"
	createReservation "github.com/pointbreak-gaming/PB-BookingService/internal/usecase/create_reservation"
	"github.com/pointbreak-gaming/PB-BookingService/pkg/types"
)

// SelectionRequest одна станция в HTTP запросе
type SelectionRequest struct {
	StationID       string `json:"stationId"`
	Players         int    `json:"players"`
	DurationMinutes int    `json:"durationMinutes"`
}

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	Date          string             `json:"date"`      // "2026-09-02"
	StartTime     string             `json:"startTime"` // "14:00"
	Selections    []SelectionRequest `json:"selections"`
	CustomerName  string             `json:"customerName"`
	CustomerPhone string             `json:"customerPhone,omitempty"`
	Origin        string             `json:"origin,omitempty"`
	TotalPrice    float64            `json:"totalPrice,omitempty"`
	AdminOverride bool               `json:"adminOverride,omitempty"`
}

// SelectionResponse одна станция в ответе
type SelectionResponse struct {
	StationID       string `json:"stationId"`
	StationName     string `json:"stationName"`
	Players         int    `json:"players"`
	DurationMinutes int    `json:"durationMinutes"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID            int64               `json:"id"`
	Date          string              `json:"date"`
	StartTime     string              `json:"startTime"`
	Selections    []SelectionResponse `json:"selections"`
	CustomerName  string              `json:"customerName"`
	CustomerPhone string              `json:"customerPhone,omitempty"`
	Confirmed     bool                `json:"confirmed"`
	Origin        string              `json:"origin"`
	TotalPrice    float64             `json:"totalPrice"`
	CreatedAt     string              `json:"createdAt"`
	UpdatedAt     string              `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest() (*createReservation.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	selections := make([]createReservation.SelectionInput, len(r.Selections))
	for i, sel := range r.Selections {
		selections[i] = createReservation.SelectionInput{
			StationID:       domain.StationID(sel.StationID),
			Players:         sel.Players,
			DurationMinutes: sel.DurationMinutes,
		}
	}

	origin := domain.Origin(r.Origin)
	if r.Origin == "" {
		origin = domain.OriginWebsite
	}

	return &createReservation.Request{
		Date:          date,
		StartTime:     startTime,
		Selections:    selections,
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
		Origin:        origin,
		TotalPrice:    r.TotalPrice,
		AdminOverride: r.AdminOverride,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	selections := make([]SelectionResponse, len(resp.Selections))
	for i, sel := range resp.Selections {
		selections[i] = SelectionResponse{
			StationID:       string(sel.StationID),
			StationName:     domain.StationName(sel.StationID),
			Players:         sel.Players,
			DurationMinutes: sel.DurationMinutes,
		}
	}

	return &ReservationResponse{
		ID:            resp.ID,
		Date:          resp.Date.Format(domain.DateFormat),
		StartTime:     resp.StartTime.String(),
		Selections:    selections,
		CustomerName:  resp.CustomerName,
		CustomerPhone: resp.CustomerPhone,
		Confirmed:     resp.Confirmed,
		Origin:        string(resp.Origin),
		TotalPrice:    resp.TotalPrice,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     resp.UpdatedAt.Format(time.RFC3339),
	}
}
