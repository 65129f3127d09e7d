package models

import (
	"time"

	"github.com/pointbreak-gaming/PB-BookingService/internal/domain"
)

// Request модели

// ListReservationsRequest запрос списка бронирований для админки.
// Либо конкретная дата, либо период; NameQuery - поиск по имени клиента.
type ListReservationsRequest struct {
	Date      *time.Time `json:"date,omitempty"`
	StartDate *time.Time `json:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"`
	NameQuery *string    `json:"q,omitempty"`
	Page      int        `json:"page,omitempty"`
	Limit     int        `json:"limit,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListReservationsRequest) ToDomainFilter() domain.SearchFilter {
	return domain.SearchFilter{
		Date:      r.Date,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
		NameQuery: r.NameQuery,
		Page:      r.Page,
		Limit:     r.Limit,
	}
}

// Response модели

// SelectionResponse одна станция внутри бронирования
type SelectionResponse struct {
	StationID       string `json:"stationId"`
	StationName     string `json:"stationName"`
	Players         int    `json:"players"`
	DurationMinutes int    `json:"durationMinutes"`
	EndTime         string `json:"endTime,omitempty"` // "15:30"
}

// PaymentResponse один платеж по бронированию
type PaymentResponse struct {
	Method string  `json:"method"`
	Amount float64 `json:"amount"`
}

// ReservationResponse ответ с данными бронирования
type ReservationResponse struct {
	ID            int64               `json:"id"`
	Date          string              `json:"date"`      // "2026-09-02"
	StartTime     string              `json:"startTime"` // "14:00"
	Selections    []SelectionResponse `json:"selections"`
	CustomerName  string              `json:"customerName"`
	CustomerPhone string              `json:"customerPhone,omitempty"`
	Confirmed     bool                `json:"confirmed"`
	Origin        string              `json:"origin"`
	Payments      []PaymentResponse   `json:"payments"`
	TotalPrice    float64             `json:"totalPrice"`
	PaidAmount    float64             `json:"paidAmount"`
	DueAmount     float64             `json:"dueAmount"`
	TotalPlayers  int                 `json:"totalPlayers"`
	CreatedAt     time.Time           `json:"createdAt"`
	UpdatedAt     time.Time           `json:"updatedAt"`
}

// DayStats сводка по выборке бронирований (лист дня в админке)
type DayStats struct {
	TotalReservations   int     `json:"totalReservations"`
	TotalStationsBooked int     `json:"totalStationsBooked"`
	TotalPlayers        int     `json:"totalPlayers"`
	GrandTotalPaid      float64 `json:"grandTotalPaid"`
	GrandTotalDue       float64 `json:"grandTotalDue"`
	LastSlotEnding      string  `json:"lastSlotEnding,omitempty"` // "21:00"
}

// ReservationListResponse ответ со списком бронирований и сводкой
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	Stats        DayStats              `json:"stats"`
	Total        int64                 `json:"total"`
	Page         int                   `json:"page"`
	Limit        int                   `json:"limit"`
}

// FromDomainReservation конвертирует domain модель в response
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	selections := make([]SelectionResponse, len(r.Selections))
	for i, sel := range r.Selections {
		resp := SelectionResponse{
			StationID:       string(sel.StationID),
			StationName:     domain.StationName(sel.StationID),
			Players:         sel.Players,
			DurationMinutes: sel.DurationMinutes,
		}
		if end, err := sel.EndTime(r.StartTime); err == nil {
			resp.EndTime = end.String()
		}
		selections[i] = resp
	}

	payments := make([]PaymentResponse, len(r.Payments))
	for i, p := range r.Payments {
		payments[i] = PaymentResponse{Method: p.Method, Amount: p.Amount}
	}

	return &ReservationResponse{
		ID:            r.ID,
		Date:          r.Date.Format(domain.DateFormat),
		StartTime:     r.StartTime.String(),
		Selections:    selections,
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
		Confirmed:     r.Confirmed,
		Origin:        string(r.Origin),
		Payments:      payments,
		TotalPrice:    r.TotalPrice,
		PaidAmount:    r.PaidAmount(),
		DueAmount:     r.DueAmount(),
		TotalPlayers:  r.TotalPlayers(),
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

// FromDomainReservationList конвертирует список бронирований со сводкой.
// В сводку входят только действующие брони: отмененные видны в списке,
// но не искажают кассу и счетчики.
func FromDomainReservationList(reservations []*domain.Reservation, total int64, page, limit int) *ReservationListResponse {
	items := make([]ReservationResponse, 0, len(reservations))
	var stats DayStats

	for _, r := range reservations {
		items = append(items, *FromDomainReservation(r))

		if !r.Confirmed {
			continue
		}
		stats.TotalReservations++
		stats.TotalStationsBooked += len(r.Selections)
		stats.TotalPlayers += r.TotalPlayers()
		stats.GrandTotalPaid += r.PaidAmount()
		stats.GrandTotalDue += r.DueAmount()

		if end := r.LastEndTime(); !end.IsZero() {
			if stats.LastSlotEnding == "" || stats.LastSlotEnding < end.String() {
				stats.LastSlotEnding = end.String()
			}
		}
	}

	return &ReservationListResponse{
		Reservations: items,
		Stats:        stats,
		Total:        total,
		Page:         page,
		Limit:        limit,
	}
}
