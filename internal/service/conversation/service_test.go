package conversation

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pointbreak-gaming/PB-BookingService/internal/domain"
	"github.com/pointbreak-gaming/PB-BookingService/internal/integrations/whatsapp"
	"github.com/pointbreak-gaming/PB-BookingService/internal/schedule"
	createReservationUC "github.com/pointbreak-gaming/PB-BookingService/internal/usecase/create_reservation"
	getAvailabilityUC "github.com/pointbreak-gaming/PB-BookingService/internal/usecase/get_availability"
	"github.com/pointbreak-gaming/PB-BookingService/pkg/types"
)

const testPhone = "919900000001"

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

type memorySessions struct {
	sessions map[string]*domain.Session
}

func newMemorySessions() *memorySessions {
	return &memorySessions{sessions: make(map[string]*domain.Session)}
}

func (m *memorySessions) Get(ctx context.Context, phone string) (*domain.Session, error) {
	if s, ok := m.sessions[phone]; ok {
		copied := *s
		return &copied, nil
	}
	return domain.NewSession(phone), nil
}

func (m *memorySessions) Set(ctx context.Context, session *domain.Session) error {
	copied := *session
	m.sessions[session.Phone] = &copied
	return nil
}

func (m *memorySessions) Delete(ctx context.Context, phone string) error {
	delete(m.sessions, phone)
	return nil
}

type sentMessage struct {
	kind string // text / list / buttons
	body string
	rows []whatsapp.Row
	btns []whatsapp.ButtonReply
}

type fakeMessenger struct {
	sent []sentMessage
}

func (m *fakeMessenger) SendText(ctx context.Context, to, text string) error {
	m.sent = append(m.sent, sentMessage{kind: "text", body: text})
	return nil
}

func (m *fakeMessenger) SendList(ctx context.Context, to, header, body, buttonText string, sections []whatsapp.Section) error {
	msg := sentMessage{kind: "list", body: body}
	for _, sec := range sections {
		msg.rows = append(msg.rows, sec.Rows...)
	}
	m.sent = append(m.sent, msg)
	return nil
}

func (m *fakeMessenger) SendButtons(ctx context.Context, to, body string, buttons []whatsapp.ButtonReply) error {
	m.sent = append(m.sent, sentMessage{kind: "buttons", body: body, btns: buttons})
	return nil
}

func (m *fakeMessenger) last() sentMessage {
	return m.sent[len(m.sent)-1]
}

type fakeAvailability struct {
	slots []getAvailabilityUC.Slot
	err   error
}

func (f *fakeAvailability) Execute(ctx context.Context, req *getAvailabilityUC.Request) (*getAvailabilityUC.Response, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &getAvailabilityUC.Response{
		Date:            req.Date,
		DurationMinutes: req.DurationMinutes,
		TVCapacity:      3,
		Slots:           f.slots,
	}, nil
}

type fakeCreator struct {
	req *createReservationUC.Request
	err error
}

func (f *fakeCreator) Execute(ctx context.Context, req *createReservationUC.Request) (*createReservationUC.Response, error) {
	f.req = req
	if f.err != nil {
		return nil, f.err
	}
	return &createReservationUC.Response{ID: 1}, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func openSlots() []getAvailabilityUC.Slot {
	return []getAvailabilityUC.Slot{
		{
			StartTime:         "14:00",
			AvailableStations: domain.StationIDs(),
			TVRemaining:       3,
		},
		{
			StartTime:         "15:00",
			AvailableStations: []domain.StationID{domain.StationXbox360},
			OccupiedStations:  []domain.StationID{domain.StationPS5, domain.StationXboxSeriesX, domain.StationXboxOneS},
			TVRemaining:       0,
		},
	}
}

func newService(sessions SessionStore, messenger Messenger, avail AvailabilityProvider, creator ReservationCreator) *Service {
	hours := schedule.BusinessHours{
		Weekday: []schedule.Segment{{Open: "11:00", Close: "21:00"}},
		Weekend: []schedule.Segment{{Open: "10:00", Close: "22:00"}},
	}
	now := time.Date(2026, time.September, 2, 9, 0, 0, 0, time.UTC)
	cal := schedule.NewCalendar(hours, &fakeClock{now: now}, 3)
	return NewService(sessions, messenger, avail, creator, cal, nopLogger{})
}

func textMessage(text string) *whatsapp.IncomingMessage {
	return &whatsapp.IncomingMessage{From: testPhone, Text: text}
}

func replyMessage(id string) *whatsapp.IncomingMessage {
	return &whatsapp.IncomingMessage{From: testPhone, ReplyID: id}
}

func TestService_HappyPath(t *testing.T) {
	ctx := context.Background()
	sessions := newMemorySessions()
	messenger := &fakeMessenger{}
	creator := &fakeCreator{}
	svc := newService(sessions, messenger, &fakeAvailability{slots: openSlots()}, creator)

	// 1. Приветствие -> список дат
	require.NoError(t, svc.HandleMessage(ctx, textMessage("hi")))
	assert.Equal(t, "list", messenger.last().kind)
	require.Len(t, messenger.last().rows, 3)
	assert.Equal(t, "Today", messenger.last().rows[0].Title)
	assert.Equal(t, domain.StateAwaitingDate, sessions.sessions[testPhone].State)

	dateID := messenger.last().rows[0].ID // date_2026-09-02

	// 2. Выбор даты -> список времен
	require.NoError(t, svc.HandleMessage(ctx, replyMessage(dateID)))
	assert.Equal(t, "list", messenger.last().kind)
	require.Len(t, messenger.last().rows, 1) // слот без ТВ отфильтрован
	assert.Equal(t, "slot_14:00", messenger.last().rows[0].ID)
	assert.Equal(t, domain.StateAwaitingSlot, sessions.sessions[testPhone].State)

	// 3. Выбор времени -> кнопки консолей (максимум 3)
	require.NoError(t, svc.HandleMessage(ctx, replyMessage("slot_14:00")))
	assert.Equal(t, "buttons", messenger.last().kind)
	require.Len(t, messenger.last().btns, 3)
	assert.Equal(t, "console_xbox-series-x", messenger.last().btns[0].ID)
	assert.Equal(t, domain.StateAwaitingConsole, sessions.sessions[testPhone].State)

	// 4. Выбор консоли -> запрос имени
	require.NoError(t, svc.HandleMessage(ctx, replyMessage("console_ps5")))
	assert.Equal(t, "text", messenger.last().kind)
	assert.Contains(t, messenger.last().body, "PlayStation 5")
	assert.Equal(t, domain.StateAwaitingName, sessions.sessions[testPhone].State)

	// 5. Имя -> сводка с кнопками подтверждения
	require.NoError(t, svc.HandleMessage(ctx, textMessage("Arjun Mehta")))
	assert.Equal(t, "buttons", messenger.last().kind)
	assert.Contains(t, messenger.last().body, "Booking Summary")
	assert.Contains(t, messenger.last().body, "Arjun Mehta")
	assert.Contains(t, messenger.last().body, "1 hour")

	// 6. Подтверждение -> бронь создана, сессия удалена
	require.NoError(t, svc.HandleMessage(ctx, replyMessage("confirm_yes")))
	assert.Contains(t, messenger.last().body, "Booking Confirmed")

	require.NotNil(t, creator.req)
	assert.Equal(t, domain.OriginWhatsApp, creator.req.Origin)
	assert.Equal(t, types.TimeString("14:00"), creator.req.StartTime)
	assert.Equal(t, testPhone, creator.req.CustomerPhone)
	require.Len(t, creator.req.Selections, 1)
	assert.Equal(t, domain.StationPS5, creator.req.Selections[0].StationID)
	assert.Equal(t, domain.DefaultDurationMinutes, creator.req.Selections[0].DurationMinutes)
	assert.Equal(t, 1, creator.req.Selections[0].Players)

	assert.NotContains(t, sessions.sessions, testPhone)
}

func TestService_ResetKeywords(t *testing.T) {
	ctx := context.Background()
	sessions := newMemorySessions()
	messenger := &fakeMessenger{}
	svc := newService(sessions, messenger, &fakeAvailability{slots: openSlots()}, &fakeCreator{})

	// доводим до середины диалога
	require.NoError(t, svc.HandleMessage(ctx, textMessage("book")))
	dateID := messenger.last().rows[0].ID
	require.NoError(t, svc.HandleMessage(ctx, replyMessage(dateID)))
	assert.Equal(t, domain.StateAwaitingSlot, sessions.sessions[testPhone].State)

	// cancel откатывает на выбор даты
	require.NoError(t, svc.HandleMessage(ctx, textMessage("cancel")))
	assert.Equal(t, domain.StateAwaitingDate, sessions.sessions[testPhone].State)
	assert.Empty(t, sessions.sessions[testPhone].Date)
}

func TestService_DeclineAtConfirmation(t *testing.T) {
	ctx := context.Background()
	sessions := newMemorySessions()
	messenger := &fakeMessenger{}
	creator := &fakeCreator{}
	svc := newService(sessions, messenger, &fakeAvailability{slots: openSlots()}, creator)

	sessions.sessions[testPhone] = &domain.Session{
		Phone:           testPhone,
		State:           domain.StateAwaitingConfirm,
		Date:            "2026-09-02",
		StartTime:       "14:00",
		StationID:       domain.StationPS5,
		DurationMinutes: 60,
		Players:         1,
		CustomerName:    "Arjun",
	}

	require.NoError(t, svc.HandleMessage(ctx, replyMessage("confirm_no")))
	assert.Contains(t, messenger.last().body, "Booking cancelled")
	assert.Nil(t, creator.req)
	assert.NotContains(t, sessions.sessions, testPhone)
}

func TestService_SlotTakenDuringDialog(t *testing.T) {
	ctx := context.Background()
	sessions := newMemorySessions()
	messenger := &fakeMessenger{}
	creator := &fakeCreator{err: createReservationUC.ErrStationAlreadyBooked}
	svc := newService(sessions, messenger, &fakeAvailability{slots: openSlots()}, creator)

	sessions.sessions[testPhone] = &domain.Session{
		Phone:           testPhone,
		State:           domain.StateAwaitingConfirm,
		Date:            "2026-09-02",
		StartTime:       "14:00",
		StationID:       domain.StationPS5,
		DurationMinutes: 60,
		Players:         1,
		CustomerName:    "Arjun",
	}

	require.NoError(t, svc.HandleMessage(ctx, replyMessage("confirm_yes")))
	assert.Contains(t, messenger.last().body, "no longer available")
	assert.NotContains(t, sessions.sessions, testPhone)
}

func TestService_InvalidInputsStayInState(t *testing.T) {
	ctx := context.Background()
	sessions := newMemorySessions()
	messenger := &fakeMessenger{}
	svc := newService(sessions, messenger, &fakeAvailability{slots: openSlots()}, &fakeCreator{})

	t.Run("random text instead of date pick", func(t *testing.T) {
		sessions.sessions[testPhone] = &domain.Session{Phone: testPhone, State: domain.StateAwaitingDate}
		require.NoError(t, svc.HandleMessage(ctx, textMessage("what are your prices for weekends?")))
		assert.Equal(t, promptPickDateFromList, messenger.last().body)
		assert.Equal(t, domain.StateAwaitingDate, sessions.sessions[testPhone].State)
	})

	t.Run("too short name", func(t *testing.T) {
		sessions.sessions[testPhone] = &domain.Session{
			Phone: testPhone, State: domain.StateAwaitingName,
			Date: "2026-09-02", StartTime: "14:00", StationID: domain.StationPS5, DurationMinutes: 60,
		}
		require.NoError(t, svc.HandleMessage(ctx, textMessage("A")))
		assert.Equal(t, promptInvalidName, messenger.last().body)
		assert.Equal(t, domain.StateAwaitingName, sessions.sessions[testPhone].State)
	})
}

func TestService_NoSlotsOnDate(t *testing.T) {
	ctx := context.Background()
	sessions := newMemorySessions()
	messenger := &fakeMessenger{}
	svc := newService(sessions, messenger, &fakeAvailability{slots: nil}, &fakeCreator{})

	require.NoError(t, svc.HandleMessage(ctx, textMessage("book")))
	dateID := messenger.last().rows[0].ID
	require.NoError(t, svc.HandleMessage(ctx, replyMessage(dateID)))

	assert.True(t, strings.HasPrefix(messenger.last().body, "Sorry, no slots available"))
	assert.NotContains(t, sessions.sessions, testPhone)
}
