package list_reservations

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/pointbreak-gaming/PB-BookingService/internal/api/handlers"
	"github.com/pointbreak-gaming/PB-BookingService/internal/domain"
	"github.com/pointbreak-gaming/PB-BookingService/internal/service/reservations"
	"github.com/pointbreak-gaming/PB-BookingService/internal/service/reservations/models"
)

const (
	msgInvalidDate   = "invalid date format, expected YYYY-MM-DD"
	msgInvalidPaging = "invalid page or limit"
	msgInvalidFilter = "invalid search filter"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/reservations
//
// ?date=YYYY-MM-DD возвращает лист дня со сводкой;
// иначе поиск: ?startDate=...&endDate=...&q=...&page=1&limit=20
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	if dateStr := query.Get("date"); dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			h.logger.Warn("GET /admin/reservations - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}

		result, err := h.service.GetDaySheet(r.Context(), date)
		if err != nil {
			h.logger.Error("GET /admin/reservations - Failed to get day sheet: date=%s, error=%v", dateStr, err)
			handlers.RespondInternalError(w)
			return
		}

		h.logger.Info("GET /admin/reservations - Day sheet retrieved: date=%s, count=%d", dateStr, len(result.Reservations))
		handlers.RespondJSON(w, http.StatusOK, result)
		return
	}

	req, err := parseSearchRequest(query)
	if err != nil {
		h.logger.Warn("GET /admin/reservations - Invalid search request: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	result, err := h.service.Search(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("GET /admin/reservations - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /admin/reservations - Failed to search reservations: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/reservations - Search completed: total=%d, page=%d", result.Total, result.Page)
	handlers.RespondJSON(w, http.StatusOK, result)
}

func parseSearchRequest(query map[string][]string) (*models.ListReservationsRequest, error) {
	get := func(key string) string {
		if vals, ok := query[key]; ok && len(vals) > 0 {
			return vals[0]
		}
		return ""
	}

	req := &models.ListReservationsRequest{}

	if s := get("startDate"); s != "" {
		d, err := time.Parse(domain.DateFormat, s)
		if err != nil {
			return nil, errors.New(msgInvalidDate)
		}
		req.StartDate = &d
	}
	if s := get("endDate"); s != "" {
		d, err := time.Parse(domain.DateFormat, s)
		if err != nil {
			return nil, errors.New(msgInvalidDate)
		}
		req.EndDate = &d
	}
	if q := get("q"); q != "" {
		req.NameQuery = &q
	}
	if s := get("page"); s != "" {
		page, err := strconv.Atoi(s)
		if err != nil || page < 0 {
			return nil, errors.New(msgInvalidPaging)
		}
		req.Page = page
	}
	if s := get("limit"); s != "" {
		limit, err := strconv.Atoi(s)
		if err != nil || limit < 0 {
			return nil, errors.New(msgInvalidPaging)
		}
		req.Limit = limit
	}

	return req, nil
}
