package create_reservation

import (
	"time"

	"github.com/pointbreak-gaming/PB-BookingService/internal/domain"
	"github.com/pointbreak-gaming/PB-BookingService/pkg/types"
)

// SelectionInput одна станция в запросе на бронирование
type SelectionInput struct {
	StationID       domain.StationID
	Players         int
	DurationMinutes int
}

// Request модель запроса на создание бронирования
type Request struct {
	Date          time.Time        // Дата бронирования (без времени)
	StartTime     types.TimeString // Время начала (например, "14:00")
	Selections    []SelectionInput // Выбранные станции
	CustomerName  string           // Имя клиента
	CustomerPhone string           // Телефон клиента (опционально для сайта)
	Origin        domain.Origin    // Канал: website / whatsapp / admin
	TotalPrice    float64          // Итоговая цена (админка может выставить позже)

	// AdminOverride позволяет админке оформить walk-in на уже начавшийся слот.
	// Эксклюзивность станций и лимит ТВ действуют для всех каналов.
	AdminOverride bool
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID            int64
	Date          time.Time
	StartTime     types.TimeString
	Selections    []domain.Selection
	CustomerName  string
	CustomerPhone string
	Confirmed     bool
	Origin        domain.Origin
	TotalPrice    float64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
