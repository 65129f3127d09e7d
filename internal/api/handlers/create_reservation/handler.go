package create_reservation

import (
	"errors"
	"net/http"

	"github.com/pointbreak-gaming/PB-BookingService/internal/api/handlers"
	"github.com/pointbreak-gaming/PB-BookingService/internal/schedule"
	createReservation "github.com/pointbreak-gaming/PB-BookingService/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody   = "invalid request body"
	msgInvalidDateOrTime    = "invalid date or time format, expected YYYY-MM-DD and HH:MM"
	msgInvalidInput         = "invalid reservation data"
	msgDateNotAllowed       = "date is outside the booking window"
	msgSlotInPast           = "requested slot is already in the past"
	msgUnknownStation       = "unknown station in selections"
	msgDuplicateStation     = "station selected more than once"
	msgDurationExceedsHours = "session does not fit before closing time"
	msgStationAlreadyBooked = "station is already booked for the requested time"
	msgCapacityExceeded     = "no TV capacity left for the requested time"
	msgAdminOriginForbidden = "origin 'admin' requires the admin route"
)

type Handler struct {
	useCase CreateReservationUseCase
	// allowAdminOrigin выставляется только на защищенном маршруте админки:
	// walk-in с origin=admin и AdminOverride недоступны публичному API
	allowAdminOrigin bool
	logger           Logger
}

func NewHandler(useCase CreateReservationUseCase, allowAdminOrigin bool, logger Logger) *Handler {
	return &Handler{
		useCase:          useCase,
		allowAdminOrigin: allowAdminOrigin,
		logger:           logger,
	}
}

// Handle POST /api/v1/reservations, POST /api/v1/admin/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if !h.allowAdminOrigin && (req.Origin == "admin" || req.AdminOverride) {
		h.logger.Warn("POST /reservations - Admin origin on public route: date=%s", req.Date)
		handlers.RespondForbidden(w, msgAdminOriginForbidden)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrStationAlreadyBooked):
			h.logger.Warn("POST /reservations - Station already booked: date=%s, start=%s", req.Date, req.StartTime)
			respondRejection(w, http.StatusConflict, msgStationAlreadyBooked, err)

		case errors.Is(err, createReservation.ErrCapacityExceeded):
			h.logger.Warn("POST /reservations - Capacity exceeded: date=%s, start=%s", req.Date, req.StartTime)
			respondRejection(w, http.StatusConflict, msgCapacityExceeded, err)

		case errors.Is(err, createReservation.ErrDateNotAllowed):
			h.logger.Warn("POST /reservations - Date not allowed: date=%s", req.Date)
			respondRejection(w, http.StatusBadRequest, msgDateNotAllowed, err)

		case errors.Is(err, createReservation.ErrSlotInPast):
			h.logger.Warn("POST /reservations - Slot in past: date=%s, start=%s", req.Date, req.StartTime)
			respondRejection(w, http.StatusBadRequest, msgSlotInPast, err)

		case errors.Is(err, createReservation.ErrUnknownStation):
			h.logger.Warn("POST /reservations - Unknown station: date=%s", req.Date)
			respondRejection(w, http.StatusBadRequest, msgUnknownStation, err)

		case errors.Is(err, createReservation.ErrDuplicateStation):
			h.logger.Warn("POST /reservations - Duplicate station: date=%s", req.Date)
			respondRejection(w, http.StatusBadRequest, msgDuplicateStation, err)

		case errors.Is(err, createReservation.ErrDurationExceedsHours):
			h.logger.Warn("POST /reservations - Duration exceeds hours: date=%s, start=%s", req.Date, req.StartTime)
			respondRejection(w, http.StatusBadRequest, msgDurationExceedsHours, err)

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: date=%s, error=%v", req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created successfully: reservation_id=%d, date=%s, start=%s, stations=%d",
		result.ID, req.Date, req.StartTime, len(result.Selections))
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
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
