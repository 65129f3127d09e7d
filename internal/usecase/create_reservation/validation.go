package create_reservation

import (
	"fmt"
	"strings"

	"github.com/pointbreak-gaming/PB-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса.
// Правила расписания (окно дат, занятость, лимит ТВ) проверяются отдельно.
func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if len(req.Selections) == 0 {
		return fmt.Errorf("%w: at least one station must be selected", ErrInvalidInput)
	}
	for _, sel := range req.Selections {
		if !domain.IsAllowedDuration(sel.DurationMinutes) {
			return fmt.Errorf("%w: duration %d is not offered", ErrInvalidInput, sel.DurationMinutes)
		}
		if sel.Players < domain.MinPlayers || sel.Players > domain.MaxPlayers {
			return fmt.Errorf("%w: players must be between %d and %d",
				ErrInvalidInput, domain.MinPlayers, domain.MaxPlayers)
		}
	}

	name := strings.TrimSpace(req.CustomerName)
	if len(name) < domain.MinCustomerNameLength {
		return fmt.Errorf("%w: customer name must be at least %d characters",
			ErrInvalidInput, domain.MinCustomerNameLength)
	}
	if len(name) > domain.MaxCustomerNameLength {
		return fmt.Errorf("%w: customer name exceeds %d characters", ErrInvalidInput, domain.MaxCustomerNameLength)
	}

	if len(req.CustomerPhone) > domain.MaxPhoneLength {
		return fmt.Errorf("%w: customer phone exceeds %d characters", ErrInvalidInput, domain.MaxPhoneLength)
	}

	if !domain.IsValidOrigin(req.Origin) {
		return fmt.Errorf("%w: unknown origin %q", ErrInvalidInput, req.Origin)
	}

	if req.TotalPrice < 0 {
		return fmt.Errorf("%w: totalPrice must not be negative", ErrInvalidInput)
	}

	return nil
}
