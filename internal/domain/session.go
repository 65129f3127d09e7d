package domain

import "time"

// ConversationState is the step a WhatsApp booking dialog is waiting on.
type ConversationState string

const (
	StateIdle            ConversationState = "idle"
	StateAwaitingDate    ConversationState = "awaiting_date"
	StateAwaitingSlot    ConversationState = "awaiting_slot"
	StateAwaitingConsole ConversationState = "awaiting_console"
	StateAwaitingName    ConversationState = "awaiting_name"
	StateAwaitingConfirm ConversationState = "awaiting_confirm"
)

// Session is the in-progress WhatsApp booking draft for one phone number.
// It lives in Redis with a sliding TTL; an expired session simply restarts
// the dialog from the greeting.
type Session struct {
	Phone           string            `json:"phone"`
	State           ConversationState `json:"state"`
	Date            string            `json:"date,omitempty"`      // YYYY-MM-DD
	StartTime       string            `json:"startTime,omitempty"` // HH:MM
	StationID       StationID         `json:"stationId,omitempty"`
	DurationMinutes int               `json:"durationMinutes,omitempty"`
	Players         int               `json:"players,omitempty"`
	CustomerName    string            `json:"customerName,omitempty"`
	UpdatedAt       time.Time         `json:"updatedAt"`
}

// NewSession returns a fresh idle session for the phone number.
func NewSession(phone string) *Session {
	return &Session{
		Phone: phone,
		State: StateIdle,
	}
}

// Reset drops the draft fields and returns the dialog to the greeting step.
func (s *Session) Reset() {
	s.State = StateIdle
	s.Date = ""
	s.StartTime = ""
	s.StationID = ""
	s.DurationMinutes = 0
	s.Players = 0
	s.CustomerName = ""
}
