package create_reservation

import (
	"errors"
	"fmt"

	"github.com/pointbreak-gaming/PB-BookingService/internal/schedule"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrDateNotAllowed возвращается, когда дата вне окна бронирования
	ErrDateNotAllowed = errors.New("create_reservation: date is outside the booking window")

	// ErrSlotInPast возвращается, когда запрошенный слот уже прошел
	ErrSlotInPast = errors.New("create_reservation: slot is in the past")

	// ErrUnknownStation возвращается при неизвестной станции в запросе
	ErrUnknownStation = errors.New("create_reservation: unknown station")

	// ErrDuplicateStation возвращается, когда станция выбрана дважды в одном запросе
	ErrDuplicateStation = errors.New("create_reservation: station selected twice")

	// ErrDurationExceedsHours возвращается, когда длительность не умещается до закрытия
	ErrDurationExceedsHours = errors.New("create_reservation: duration extends beyond business hours")

	// ErrStationAlreadyBooked возвращается, когда станция уже занята в запрошенном окне
	ErrStationAlreadyBooked = errors.New("create_reservation: station is already booked")

	// ErrCapacityExceeded возвращается, когда в каком-то юните не осталось свободных ТВ
	ErrCapacityExceeded = errors.New("create_reservation: no tv capacity left")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)

// violationError переводит нарушение правил расписания в ошибку usecase.
// Само нарушение остается в цепочке ошибок: хендлер достает из него код
// причины и деталь для структурированного отказа
func violationError(v *schedule.Violation) error {
	var sentinel error
	switch v.Code {
	case schedule.ReasonDateNotAllowed:
		sentinel = ErrDateNotAllowed
	case schedule.ReasonSlotInPast:
		sentinel = ErrSlotInPast
	case schedule.ReasonUnknownResource:
		sentinel = ErrUnknownStation
	case schedule.ReasonDuplicateResource:
		sentinel = ErrDuplicateStation
	case schedule.ReasonDurationExceedsHours:
		sentinel = ErrDurationExceedsHours
	case schedule.ReasonResourceAlreadyBooked:
		sentinel = ErrStationAlreadyBooked
	case schedule.ReasonCapacityExceeded:
		sentinel = ErrCapacityExceeded
	default:
		sentinel = ErrInternal
	}
	return fmt.Errorf("%w: %w", sentinel, v)
}
