package update_reservation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pointbreak-gaming/PB-BookingService/internal/domain"
	storage "github.com/pointbreak-gaming/PB-BookingService/internal/infra/storage/reservation"
	"github.com/pointbreak-gaming/PB-BookingService/internal/schedule"
	"github.com/pointbreak-gaming/PB-BookingService/pkg/ptr"
	"github.com/pointbreak-gaming/PB-BookingService/pkg/types"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

type fakeRepo struct {
	byID      map[int64]*domain.Reservation
	confirmed []*domain.Reservation
	updated   *domain.Reservation
	updateErr error
}

func (r *fakeRepo) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	res, ok := r.byID[id]
	if !ok {
		return nil, storage.ErrReservationNotFound
	}
	copied := *res
	return &copied, nil
}

func (r *fakeRepo) GetConfirmedByDate(ctx context.Context, date time.Time) ([]*domain.Reservation, error) {
	return r.confirmed, nil
}

func (r *fakeRepo) Update(ctx context.Context, res *domain.Reservation) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	r.updated = res
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

var testDate = time.Date(2026, time.September, 2, 0, 0, 0, 0, time.UTC) // среда

func newUseCase(repo *fakeRepo) *UseCase {
	hours := schedule.BusinessHours{
		Weekday: []schedule.Segment{
			{Open: "11:00", Close: "17:30"},
			{Open: "19:00", Close: "21:00"},
		},
		Weekend: []schedule.Segment{
			{Open: "10:00", Close: "22:00"},
		},
	}
	now := time.Date(2026, time.September, 2, 9, 0, 0, 0, time.UTC)
	cal := schedule.NewCalendar(hours, &fakeClock{now: now}, 3)
	return NewUseCase(repo, cal, schedule.NewValidator(cal, 3), nopLogger{})
}

func existingReservation() *domain.Reservation {
	return &domain.Reservation{
		ID:        10,
		Date:      testDate,
		StartTime: "14:00",
		Selections: []domain.Selection{
			{StationID: domain.StationPS5, Players: 2, DurationMinutes: 60},
		},
		CustomerName:  "Arjun",
		CustomerPhone: "+919900000001",
		Confirmed:     true,
		Origin:        domain.OriginWebsite,
		TotalPrice:    300,
	}
}

func TestUseCase_Execute(t *testing.T) {
	t.Run("updates name and payments without schedule checks", func(t *testing.T) {
		res := existingReservation()
		repo := &fakeRepo{byID: map[int64]*domain.Reservation{10: res}}
		uc := newUseCase(repo)

		resp, err := uc.Execute(context.Background(), &Request{
			ID:           10,
			CustomerName: ptr.Ptr("Arjun K"),
			Payments:     []domain.Payment{{Method: "upi", Amount: 200}},
		})
		require.NoError(t, err)

		assert.Equal(t, "Arjun K", resp.CustomerName)
		assert.Equal(t, float64(200), resp.PaidAmount)
		assert.Equal(t, float64(100), resp.DueAmount)
		assert.Equal(t, types.TimeString("14:00"), resp.StartTime)
		require.NotNil(t, repo.updated)
	})

	t.Run("moves reservation to a free slot", func(t *testing.T) {
		res := existingReservation()
		repo := &fakeRepo{
			byID:      map[int64]*domain.Reservation{10: res},
			confirmed: []*domain.Reservation{res},
		}
		uc := newUseCase(repo)

		resp, err := uc.Execute(context.Background(), &Request{
			ID:        10,
			StartTime: ptr.Ptr(types.TimeString("15:00")),
		})
		require.NoError(t, err)
		assert.Equal(t, types.TimeString("15:00"), resp.StartTime)
	})

	t.Run("does not conflict with its own previous slots", func(t *testing.T) {
		res := existingReservation()
		repo := &fakeRepo{
			byID:      map[int64]*domain.Reservation{10: res},
			confirmed: []*domain.Reservation{res},
		}
		uc := newUseCase(repo)

		// сдвиг на 30 минут перекрывается со старым окном той же брони
		resp, err := uc.Execute(context.Background(), &Request{
			ID:        10,
			StartTime: ptr.Ptr(types.TimeString("14:30")),
		})
		require.NoError(t, err)
		assert.Equal(t, types.TimeString("14:30"), resp.StartTime)
	})

	t.Run("rejects a move onto another booking", func(t *testing.T) {
		res := existingReservation()
		other := &domain.Reservation{
			ID:        11,
			Date:      testDate,
			StartTime: "15:00",
			Confirmed: true,
			Selections: []domain.Selection{
				{StationID: domain.StationPS5, Players: 2, DurationMinutes: 60},
			},
		}
		repo := &fakeRepo{
			byID:      map[int64]*domain.Reservation{10: res},
			confirmed: []*domain.Reservation{res, other},
		}
		uc := newUseCase(repo)

		_, err := uc.Execute(context.Background(), &Request{
			ID:        10,
			StartTime: ptr.Ptr(types.TimeString("15:00")),
		})
		assert.ErrorIs(t, err, ErrStationAlreadyBooked)
		assert.Nil(t, repo.updated)
	})

	t.Run("swaps stations", func(t *testing.T) {
		res := existingReservation()
		repo := &fakeRepo{
			byID:      map[int64]*domain.Reservation{10: res},
			confirmed: []*domain.Reservation{res},
		}
		uc := newUseCase(repo)

		resp, err := uc.Execute(context.Background(), &Request{
			ID: 10,
			Selections: []SelectionInput{
				{StationID: domain.StationXbox360, Players: 3, DurationMinutes: 90},
			},
		})
		require.NoError(t, err)
		require.Len(t, resp.Selections, 1)
		assert.Equal(t, domain.StationXbox360, resp.Selections[0].StationID)
		assert.Equal(t, 90, resp.Selections[0].DurationMinutes)
	})

	t.Run("not found", func(t *testing.T) {
		uc := newUseCase(&fakeRepo{byID: map[int64]*domain.Reservation{}})

		_, err := uc.Execute(context.Background(), &Request{ID: 99, CustomerName: ptr.Ptr("New")})
		assert.ErrorIs(t, err, ErrReservationNotFound)
	})

	t.Run("input validation", func(t *testing.T) {
		uc := newUseCase(&fakeRepo{byID: map[int64]*domain.Reservation{}})

		_, err := uc.Execute(context.Background(), &Request{ID: 0})
		assert.ErrorIs(t, err, ErrInvalidInput)

		_, err = uc.Execute(context.Background(), &Request{ID: 10, Selections: []SelectionInput{}})
		assert.ErrorIs(t, err, ErrInvalidInput)

		_, err = uc.Execute(context.Background(), &Request{ID: 10, TotalPrice: ptr.Ptr(-5.0)})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
