package update_reservation

import (
	"time"

	"github.com/pointbreak-gaming/PB-BookingService/internal/domain"
	"github.com/pointbreak-gaming/PB-BookingService/pkg/types"
)

// SelectionInput одна станция в обновленном составе брони
type SelectionInput struct {
	StationID       domain.StationID
	Players         int
	DurationMinutes int
}

// Request модель запроса на редактирование бронирования (админка).
// nil-поля не меняются; Selections == nil оставляет прежний состав.
type Request struct {
	ID            int64
	Date          *time.Time
	StartTime     *types.TimeString
	Selections    []SelectionInput
	CustomerName  *string
	CustomerPhone *string
	Payments      []domain.Payment
	TotalPrice    *float64
}

// Response модель ответа с обновленным бронированием
type Response struct {
	ID            int64
	Date          time.Time
	StartTime     types.TimeString
	Selections    []domain.Selection
	CustomerName  string
	CustomerPhone string
	Confirmed     bool
	Origin        domain.Origin
	Payments      []domain.Payment
	TotalPrice    float64
	PaidAmount    float64
	DueAmount     float64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
