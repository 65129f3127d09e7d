package conversation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pointbreak-gaming/PB-BookingService/internal/domain"
	"github.com/pointbreak-gaming/PB-BookingService/internal/integrations/whatsapp"
	"github.com/pointbreak-gaming/PB-BookingService/internal/schedule"
	createReservationUC "github.com/pointbreak-gaming/PB-BookingService/internal/usecase/create_reservation"
	getAvailabilityUC "github.com/pointbreak-gaming/PB-BookingService/internal/usecase/get_availability"
	"github.com/pointbreak-gaming/PB-BookingService/pkg/types"
)

// Cloud API позволяет максимум 10 строк в списке и 3 кнопки
const (
	maxListRows = 10
	maxButtons  = 3
)

// Префиксы reply id интерактивных ответов
const (
	replyPrefixDate    = "date_"
	replyPrefixSlot    = "slot_"
	replyPrefixConsole = "console_"
	replyConfirmYes    = "confirm_yes"
	replyConfirmNo     = "confirm_no"
)

// resetKeywords сбрасывают диалог в любом состоянии
var resetKeywords = map[string]struct{}{
	"cancel":     {},
	"reset":      {},
	"start over": {},
	"book":       {},
	"hi":         {},
	"hello":      {},
	"hey":        {},
	"start":      {},
}

// Service диалоговый сервис бронирования через WhatsApp.
// Ведет клиента по шагам: дата -> время -> консоль -> имя -> подтверждение.
// Длительность в этом канале фиксированная (час), состав - одна станция.
type Service struct {
	sessions     SessionStore
	messenger    Messenger
	availability AvailabilityProvider
	creator      ReservationCreator
	calendar     *schedule.Calendar
	logger       Logger
}

// NewService создает новый экземпляр диалогового сервиса
func NewService(
	sessions SessionStore,
	messenger Messenger,
	availability AvailabilityProvider,
	creator ReservationCreator,
	calendar *schedule.Calendar,
	logger Logger,
) *Service {
	return &Service{
		sessions:     sessions,
		messenger:    messenger,
		availability: availability,
		creator:      creator,
		calendar:     calendar,
		logger:       logger,
	}
}

// HandleMessage обрабатывает одно входящее сообщение.
// Ошибки здесь не доходят до Meta: вебхук всегда подтверждается, а клиенту
// при сбое уходит вежливый текст.
func (s *Service) HandleMessage(ctx context.Context, msg *whatsapp.IncomingMessage) error {
	text := strings.ToLower(strings.TrimSpace(msg.Text))

	session, err := s.sessions.Get(ctx, msg.From)
	if err != nil {
		s.logger.Error("Conversation: failed to load session for %s: %v", msg.From, err)
		session = domain.NewSession(msg.From)
	}

	s.logger.Info("Conversation: message from %s in state=%s", msg.From, session.State)

	// Сброс диалога работает из любого состояния
	if _, ok := resetKeywords[text]; ok {
		session.Reset()
		return s.handleIdle(ctx, session, text)
	}

	switch session.State {
	case domain.StateAwaitingDate:
		return s.handleDateSelection(ctx, session, msg.ReplyID)
	case domain.StateAwaitingSlot:
		return s.handleSlotSelection(ctx, session, msg.ReplyID)
	case domain.StateAwaitingConsole:
		return s.handleConsoleSelection(ctx, session, msg.ReplyID)
	case domain.StateAwaitingName:
		return s.handleNameInput(ctx, session, msg.Text)
	case domain.StateAwaitingConfirm:
		return s.handleConfirmation(ctx, session, msg.ReplyID)
	default:
		return s.handleIdle(ctx, session, text)
	}
}

// handleIdle приветствует и предлагает выбрать дату
func (s *Service) handleIdle(ctx context.Context, session *domain.Session, text string) error {
	isGreeting := len(text) < 20
	for k := range resetKeywords {
		if strings.Contains(text, k) {
			isGreeting = true
			break
		}
	}
	if !isGreeting && text != "" {
		return s.messenger.SendText(ctx, session.Phone, promptWelcome)
	}

	dates := s.calendar.WindowDates()
	rows := make([]whatsapp.Row, 0, len(dates))
	for i, d := range dates {
		rows = append(rows, whatsapp.Row{
			ID:          replyPrefixDate + d.Format(domain.DateFormat),
			Title:       dateLabel(i),
			Description: formatDateDisplay(d),
		})
	}

	session.State = domain.StateAwaitingDate
	if err := s.sessions.Set(ctx, session); err != nil {
		return err
	}

	return s.messenger.SendList(ctx, session.Phone,
		venueName+" Booking",
		promptPickDate,
		"Select Date",
		[]whatsapp.Section{{Title: "Available Dates", Rows: rows}},
	)
}

// handleDateSelection показывает свободные времена выбранной даты
func (s *Service) handleDateSelection(ctx context.Context, session *domain.Session, replyID string) error {
	if !strings.HasPrefix(replyID, replyPrefixDate) {
		return s.messenger.SendText(ctx, session.Phone, promptPickDateFromList)
	}

	dateStr := strings.TrimPrefix(replyID, replyPrefixDate)
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return s.messenger.SendText(ctx, session.Phone, promptPickDateFromList)
	}

	avail, err := s.availability.Execute(ctx, &getAvailabilityUC.Request{
		Date:            date,
		DurationMinutes: domain.DefaultDurationMinutes,
	})
	if err != nil {
		s.logger.Error("Conversation: availability failed for %s: %v", dateStr, err)
		return s.resetWithText(ctx, session, promptFailed)
	}

	rows := make([]whatsapp.Row, 0, maxListRows)
	for _, slot := range avail.Slots {
		if slot.IsPast || slot.TVRemaining <= 0 || len(slot.AvailableStations) == 0 {
			continue
		}
		plural := ""
		if slot.TVRemaining > 1 {
			plural = "s"
		}
		rows = append(rows, whatsapp.Row{
			ID:          replyPrefixSlot + slot.StartTime.String(),
			Title:       slot.StartTime.String(),
			Description: fmt.Sprintf("%d TV%s available", slot.TVRemaining, plural),
		})
		if len(rows) == maxListRows {
			break
		}
	}

	if len(rows) == 0 {
		return s.resetWithText(ctx, session, promptNoSlots(formatDateDisplay(date)))
	}

	session.State = domain.StateAwaitingSlot
	session.Date = dateStr
	if err := s.sessions.Set(ctx, session); err != nil {
		return err
	}

	return s.messenger.SendList(ctx, session.Phone,
		"Select Time Slot",
		fmt.Sprintf("📅 %s\n\nChoose your preferred time:\n\n(Send 'cancel' to start over)", formatDateDisplay(date)),
		"Select Time",
		[]whatsapp.Section{{Title: "Available Slots", Rows: rows}},
	)
}

// handleSlotSelection показывает свободные консоли на выбранное время
func (s *Service) handleSlotSelection(ctx context.Context, session *domain.Session, replyID string) error {
	if !strings.HasPrefix(replyID, replyPrefixSlot) {
		return s.messenger.SendText(ctx, session.Phone, promptPickSlotFromList)
	}

	slot := strings.TrimPrefix(replyID, replyPrefixSlot)

	stations, err := s.availableStations(ctx, session.Date, slot)
	if err != nil {
		s.logger.Error("Conversation: availability failed for %s %s: %v", session.Date, slot, err)
		return s.resetWithText(ctx, session, promptFailed)
	}
	if len(stations) == 0 {
		return s.resetWithText(ctx, session, promptSlotGone(slot))
	}

	buttons := make([]whatsapp.ButtonReply, 0, maxButtons)
	for _, id := range stations {
		buttons = append(buttons, whatsapp.ButtonReply{
			ID:    replyPrefixConsole + string(id),
			Title: domain.StationShort(id),
		})
		if len(buttons) == maxButtons {
			break
		}
	}

	session.State = domain.StateAwaitingConsole
	session.StartTime = slot
	session.DurationMinutes = domain.DefaultDurationMinutes
	if err := s.sessions.Set(ctx, session); err != nil {
		return err
	}

	date, _ := time.Parse(domain.DateFormat, session.Date)
	return s.messenger.SendButtons(ctx, session.Phone,
		fmt.Sprintf("📅 %s at %s\n\nSelect your console:\n\n(Send 'cancel' to start over)", formatDateDisplay(date), slot),
		buttons,
	)
}

// handleConsoleSelection запоминает консоль и просит имя
func (s *Service) handleConsoleSelection(ctx context.Context, session *domain.Session, replyID string) error {
	if !strings.HasPrefix(replyID, replyPrefixConsole) {
		return s.messenger.SendText(ctx, session.Phone, promptPickConsole)
	}

	stationID := domain.StationID(strings.TrimPrefix(replyID, replyPrefixConsole))
	if !domain.IsKnownStation(stationID) {
		return s.messenger.SendText(ctx, session.Phone, promptPickConsole)
	}

	session.State = domain.StateAwaitingName
	session.StationID = stationID
	session.Players = 1
	if err := s.sessions.Set(ctx, session); err != nil {
		return err
	}

	return s.messenger.SendText(ctx, session.Phone, promptEnterName(domain.StationName(stationID)))
}

// handleNameInput принимает имя и показывает сводку для подтверждения
func (s *Service) handleNameInput(ctx context.Context, session *domain.Session, name string) error {
	name = strings.TrimSpace(name)
	if len(name) < domain.MinCustomerNameLength {
		return s.messenger.SendText(ctx, session.Phone, promptInvalidName)
	}
	if len(name) > domain.MaxCustomerNameLength {
		name = name[:domain.MaxCustomerNameLength]
	}

	session.State = domain.StateAwaitingConfirm
	session.CustomerName = name
	if err := s.sessions.Set(ctx, session); err != nil {
		return err
	}

	date, _ := time.Parse(domain.DateFormat, session.Date)
	return s.messenger.SendButtons(ctx, session.Phone,
		promptSummary(formatDateDisplay(date), session.StartTime,
			domain.StationName(session.StationID), session.DurationMinutes, name),
		[]whatsapp.ButtonReply{
			{ID: replyConfirmYes, Title: "✅ Confirm"},
			{ID: replyConfirmNo, Title: "❌ Cancel"},
		},
	)
}

// handleConfirmation создает бронирование
func (s *Service) handleConfirmation(ctx context.Context, session *domain.Session, replyID string) error {
	switch replyID {
	case replyConfirmNo:
		return s.resetWithText(ctx, session, promptCancelled)
	case replyConfirmYes:
		// продолжаем
	default:
		return s.messenger.SendText(ctx, session.Phone, promptTapConfirm)
	}

	date, err := time.Parse(domain.DateFormat, session.Date)
	if err != nil {
		return s.resetWithText(ctx, session, promptFailed)
	}

	_, err = s.creator.Execute(ctx, &createReservationUC.Request{
		Date:      date,
		StartTime: types.TimeString(session.StartTime),
		Selections: []createReservationUC.SelectionInput{{
			StationID:       session.StationID,
			Players:         session.Players,
			DurationMinutes: session.DurationMinutes,
		}},
		CustomerName:  session.CustomerName,
		CustomerPhone: session.Phone,
		Origin:        domain.OriginWhatsApp,
	})
	if err != nil {
		s.logger.Warn("Conversation: booking failed for %s: %v", session.Phone, err)
		if isScheduleConflict(err) {
			return s.resetWithText(ctx, session, promptConsoleGone(session.StartTime))
		}
		return s.resetWithText(ctx, session, promptFailed)
	}

	summary := promptConfirmed(formatDateDisplay(date), session.StartTime,
		domain.StationName(session.StationID), session.DurationMinutes)

	if err := s.sessions.Delete(ctx, session.Phone); err != nil {
		s.logger.Error("Conversation: failed to delete session for %s: %v", session.Phone, err)
	}
	return s.messenger.SendText(ctx, session.Phone, summary)
}

// availableStations возвращает свободные станции на время старта
func (s *Service) availableStations(ctx context.Context, dateStr, slot string) ([]domain.StationID, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	avail, err := s.availability.Execute(ctx, &getAvailabilityUC.Request{
		Date:            date,
		DurationMinutes: domain.DefaultDurationMinutes,
	})
	if err != nil {
		return nil, err
	}

	for _, sl := range avail.Slots {
		if sl.StartTime.String() == slot {
			if sl.IsPast || sl.TVRemaining <= 0 {
				return nil, nil
			}
			return sl.AvailableStations, nil
		}
	}
	return nil, nil
}

// resetWithText сбрасывает сессию и отправляет заключительный текст
func (s *Service) resetWithText(ctx context.Context, session *domain.Session, text string) error {
	if err := s.sessions.Delete(ctx, session.Phone); err != nil {
		s.logger.Error("Conversation: failed to delete session for %s: %v", session.Phone, err)
	}
	return s.messenger.SendText(ctx, session.Phone, text)
}

// isScheduleConflict отличает гонку за слот от инфраструктурного сбоя
func isScheduleConflict(err error) bool {
	for _, sentinel := range []error{
		createReservationUC.ErrStationAlreadyBooked,
		createReservationUC.ErrCapacityExceeded,
		createReservationUC.ErrSlotInPast,
		createReservationUC.ErrDurationExceedsHours,
		createReservationUC.ErrDateNotAllowed,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
