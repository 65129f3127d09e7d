package get_availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/pointbreak-gaming/PB-BookingService/internal/api/handlers"
	"github.com/pointbreak-gaming/PB-BookingService/internal/domain"
	getAvailability "github.com/pointbreak-gaming/PB-BookingService/internal/usecase/get_availability"
)

const (
	msgMissingDate     = "query parameter 'date' is required, expected YYYY-MM-DD"
	msgInvalidDate     = "invalid date format, expected YYYY-MM-DD"
	msgInvalidDuration = "invalid duration, expected one of: 30, 60, 90, 120, 150, 180"
	msgDateNotAllowed  = "date is outside the booking window"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability?date=2026-09-02&duration=60
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /availability - Missing date parameter")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /availability - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	duration := domain.DefaultDurationMinutes
	if durationStr := r.URL.Query().Get("duration"); durationStr != "" {
		duration, err = strconv.Atoi(durationStr)
		if err != nil {
			h.logger.Warn("GET /availability - Invalid duration: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDuration)
			return
		}
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailability.Request{
		Date:            date,
		DurationMinutes: duration,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrDateNotAllowed):
			h.logger.Warn("GET /availability - Date not allowed: date=%s", dateStr)
			handlers.RespondBadRequest(w, msgDateNotAllowed)

		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("GET /availability - Invalid input: date=%s, duration=%d", dateStr, duration)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		default:
			h.logger.Error("GET /availability - Failed to get availability: date=%s, error=%v", dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability - Availability retrieved: date=%s, duration=%d, slots=%d",
		dateStr, duration, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
