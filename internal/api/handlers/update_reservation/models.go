package update_reservation

import (
	"time"

	"github.com/pointbreak-gaming/PB-BookingService/internal/domain"
	updateReservation "github.com/pointbreak-gaming/PB-BookingService/internal/usecase/update_reservation"
	"github.com/pointbreak-gaming/PB-BookingService/pkg/types"
)

// SelectionRequest одна станция в обновленном составе
type SelectionRequest struct {
	StationID       string `json:"stationId"`
	Players         int    `json:"players"`
	DurationMinutes int    `json:"durationMinutes"`
}

// PaymentRequest один платеж по брони
type PaymentRequest struct {
	Method string  `json:"method"`
	Amount float64 `json:"amount"`
}

// UpdateReservationRequest HTTP request model.
// Отсутствующие поля не меняются.
type UpdateReservationRequest struct {
	Date          *string            `json:"date,omitempty"`
	StartTime     *string            `json:"startTime,omitempty"`
	Selections    []SelectionRequest `json:"selections,omitempty"`
	CustomerName  *string            `json:"customerName,omitempty"`
	CustomerPhone *string            `json:"customerPhone,omitempty"`
	Payments      []PaymentRequest   `json:"payments,omitempty"`
	TotalPrice    *float64           `json:"totalPrice,omitempty"`
}

// SelectionResponse одна станция в ответе
type SelectionResponse struct {
	StationID       string `json:"stationId"`
	StationName     string `json:"stationName"`
	Players         int    `json:"players"`
	DurationMinutes int    `json:"durationMinutes"`
}

// PaymentResponse один платеж в ответе
type PaymentResponse struct {
	Method string  `json:"method"`
	Amount float64 `json:"amount"`
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
	Payments      []PaymentResponse   `json:"payments"`
	TotalPrice    float64             `json:"totalPrice"`
	PaidAmount    float64             `json:"paidAmount"`
	DueAmount     float64             `json:"dueAmount"`
	CreatedAt     string              `json:"createdAt"`
	UpdatedAt     string              `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateReservationRequest) ToUseCaseRequest(id int64) (*updateReservation.Request, error) {
	req := &updateReservation.Request{
		ID:            id,
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
		TotalPrice:    r.TotalPrice,
	}

	if r.Date != nil {
		date, err := time.Parse(domain.DateFormat, *r.Date)
		if err != nil {
			return nil, err
		}
		req.Date = &date
	}

	if r.StartTime != nil {
		startTime, err := types.NewTimeStringFromString(*r.StartTime)
		if err != nil {
			return nil, err
		}
		req.StartTime = &startTime
	}

	if r.Selections != nil {
		selections := make([]updateReservation.SelectionInput, len(r.Selections))
		for i, sel := range r.Selections {
			selections[i] = updateReservation.SelectionInput{
				StationID:       domain.StationID(sel.StationID),
				Players:         sel.Players,
				DurationMinutes: sel.DurationMinutes,
			}
		}
		req.Selections = selections
	}

	if r.Payments != nil {
		payments := make([]domain.Payment, len(r.Payments))
		for i, p := range r.Payments {
			payments[i] = domain.Payment{Method: p.Method, Amount: p.Amount}
		}
		req.Payments = payments
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateReservation.Response) *ReservationResponse {
	selections := make([]SelectionResponse, len(resp.Selections))
	for i, sel := range resp.Selections {
		selections[i] = SelectionResponse{
			StationID:       string(sel.StationID),
			StationName:     domain.StationName(sel.StationID),
			Players:         sel.Players,
			DurationMinutes: sel.DurationMinutes,
		}
	}

	payments := make([]PaymentResponse, len(resp.Payments))
	for i, p := range resp.Payments {
		payments[i] = PaymentResponse{Method: p.Method, Amount: p.Amount}
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
		Payments:      payments,
		TotalPrice:    resp.TotalPrice,
		PaidAmount:    resp.PaidAmount,
		DueAmount:     resp.DueAmount,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     resp.UpdatedAt.Format(time.RFC3339),
	}
}
