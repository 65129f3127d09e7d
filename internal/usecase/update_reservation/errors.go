package update_reservation

import (
	"errors"
	"fmt"

	"github.com/pointbreak-gaming/PB-BookingService/internal/schedule"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_reservation: invalid input data")

	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("update_reservation: reservation not found")

	// ErrDateNotAllowed возвращается, когда новая дата вне окна бронирования
	ErrDateNotAllowed = errors.New("update_reservation: date is outside the booking window")

	// ErrUnknownStation возвращается при неизвестной станции в запросе
	ErrUnknownStation = errors.New("update_reservation: unknown station")

	// ErrDuplicateStation возвращается, когда станция выбрана дважды
	ErrDuplicateStation = errors.New("update_reservation: station selected twice")

	// ErrDurationExceedsHours возвращается, когда длительность не умещается до закрытия
	ErrDurationExceedsHours = errors.New("update_reservation: duration extends beyond business hours")

	// ErrStationAlreadyBooked возвращается, когда станция занята другой бронью
	ErrStationAlreadyBooked = errors.New("update_reservation: station is already booked")

	// ErrCapacityExceeded возвращается, когда не осталось свободных ТВ
	ErrCapacityExceeded = errors.New("update_reservation: no tv capacity left")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_reservation: internal error")
)

func violationError(v *schedule.Violation) error {
	var sentinel error
	switch v.Code {
	case schedule.ReasonDateNotAllowed:
		sentinel = ErrDateNotAllowed
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
