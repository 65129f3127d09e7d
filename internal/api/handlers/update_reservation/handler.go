package update_reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/pointbreak-gaming/PB-BookingService/internal/api/handlers"
	"github.com/pointbreak-gaming/PB-BookingService/internal/schedule"
	updateReservation "github.com/pointbreak-gaming/PB-BookingService/internal/usecase/update_reservation"
)

const (
	msgInvalidReservationID = "invalid reservation ID"
	msgInvalidRequestBody   = "invalid request body"
	msgInvalidDateOrTime    = "invalid date or time format, expected YYYY-MM-DD and HH:MM"
	msgInvalidInput         = "invalid reservation data"
	msgNotFound             = "reservation not found"
	msgDateNotAllowed       = "date is outside the booking window"
	msgUnknownStation       = "unknown station in selections"
	msgDuplicateStation     = "station selected more than once"
	msgDurationExceedsHours = "session does not fit before closing time"
	msgStationAlreadyBooked = "station is already booked for the requested time"
	msgCapacityExceeded     = "no TV capacity left for the requested time"
)

type Handler struct {
	useCase UpdateReservationUseCase
	logger  Logger
}

func NewHandler(useCase UpdateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/admin/reservations/{reservationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	reservationIDStr := vars["reservationId"]

	reservationID, err := strconv.ParseInt(reservationIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /admin/reservations/{id} - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	var req UpdateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/reservations/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(reservationID)
	if err != nil {
		h.logger.Warn("PUT /admin/reservations/{id} - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, updateReservation.ErrReservationNotFound):
			h.logger.Warn("PUT /admin/reservations/{id} - Reservation not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, updateReservation.ErrStationAlreadyBooked):
			h.logger.Warn("PUT /admin/reservations/{id} - Station already booked: reservation_id=%d", reservationID)
			respondRejection(w, http.StatusConflict, msgStationAlreadyBooked, err)

		case errors.Is(err, updateReservation.ErrCapacityExceeded):
			h.logger.Warn("PUT /admin/reservations/{id} - Capacity exceeded: reservation_id=%d", reservationID)
			respondRejection(w, http.StatusConflict, msgCapacityExceeded, err)

		case errors.Is(err, updateReservation.ErrDateNotAllowed):
			h.logger.Warn("PUT /admin/reservations/{id} - Date not allowed: reservation_id=%d", reservationID)
			respondRejection(w, http.StatusBadRequest, msgDateNotAllowed, err)

		case errors.Is(err, updateReservation.ErrUnknownStation):
			h.logger.Warn("PUT /admin/reservations/{id} - Unknown station: reservation_id=%d", reservationID)
			respondRejection(w, http.StatusBadRequest, msgUnknownStation, err)

		case errors.Is(err, updateReservation.ErrDuplicateStation):
			h.logger.Warn("PUT /admin/reservations/{id} - Duplicate station: reservation_id=%d", reservationID)
			respondRejection(w, http.StatusBadRequest, msgDuplicateStation, err)

		case errors.Is(err, updateReservation.ErrDurationExceedsHours):
			h.logger.Warn("PUT /admin/reservations/{id} - Duration exceeds hours: reservation_id=%d", reservationID)
			respondRejection(w, http.StatusBadRequest, msgDurationExceedsHours, err)

		case errors.Is(err, updateReservation.ErrInvalidInput):
			h.logger.Warn("PUT /admin/reservations/{id} - Invalid input: reservation_id=%d, error=%v", reservationID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /admin/reservations/{id} - Failed to update reservation: reservation_id=%d, error=%v", reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/reservations/{id} - Reservation updated successfully: reservation_id=%d", reservationID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

// respondRejection пишет отказ с кодом причины и деталью нарушения из
// цепочки ошибок usecase
func respondRejection(w http.ResponseWriter, status int, message string, err error) {
	var violation *schedule.Violation
	if errors.As(err, &violation) {
		handlers.RespondRejection(w, status, message, string(violation.Code), violation.Detail)
		return
	}
	handlers.RespondError(w, status, message)
}
