package get_availability

import (
	"time"

	"github.com/pointbreak-gaming/PB-BookingService/internal/domain"
	"github.com/pointbreak-gaming/PB-BookingService/pkg/types"
)

// Request модель запроса доступности
type Request struct {
	Date            time.Time // Дата (без времени)
	DurationMinutes int       // Запрошенная длительность игры
}

// Slot доступность одного времени старта
type Slot struct {
	StartTime         types.TimeString   // Время старта
	AvailableStations []domain.StationID // Свободные станции на всю длительность
	OccupiedStations  []domain.StationID // Занятые станции
	TVRemaining       int                // Сколько ТВ еще свободно
	IsPast            bool               // Старт уже прошел (только сегодня)
}

// Response модель ответа с доступностью на дату
type Response struct {
	Date            time.Time
	DurationMinutes int
	TVCapacity      int
	Slots           []Slot
}
