package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/RSV-ReservationService/internal/domain"
	restaurantRepo "github.com/m04kA/RSV-ReservationService/internal/infra/storage/restaurant"
	"github.com/m04kA/RSV-ReservationService/pkg/ptr"
	"github.com/m04kA/RSV-ReservationService/pkg/types"
)

type fakeReservationRepo struct {
	reservations []*domain.Reservation
	err          error
}

func (f *fakeReservationRepo) GetWithFilter(_ context.Context, _ domain.ReservationsFilter) ([]*domain.Reservation, error) {
	return f.reservations, f.err
}

type fakeRestaurantRepo struct {
	restaurant *domain.Restaurant
	err        error
}

func (f *fakeRestaurantRepo) GetByID(_ context.Context, _ int64) (*domain.Restaurant, error) {
	return f.restaurant, f.err
}

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	return c.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func fridayRestaurant(capacity int) *domain.Restaurant {
	return &domain.Restaurant{
		ID:       1,
		Name:     "Trattoria",
		Capacity: capacity,
		OperatingHours: []domain.OperatingHours{
			{Day: domain.Friday, OpenTime: "10:00", CloseTime: "22:00", IsOpen: true},
			{Day: domain.Monday, OpenTime: "10:00", CloseTime: "22:00", IsOpen: false},
		},
	}
}

func newTestUseCase(resRepo *fakeReservationRepo, restRepo *fakeRestaurantRepo, now time.Time) *UseCase {
	return NewUseCase(resRepo, restRepo, domain.DefaultSchedulingConfig(), nopLogger{}).
		WithTimeProvider(&fixedClock{now: now})
}

func TestExecute_FullDay(t *testing.T) {
	// 2026-10-16 is a Friday
	date := time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

	uc := newTestUseCase(&fakeReservationRepo{}, &fakeRestaurantRepo{restaurant: fridayRestaurant(10)}, now)

	resp, err := uc.Execute(context.Background(), &Request{RestaurantID: 1, Date: date})
	require.NoError(t, err)

	assert.Equal(t, domain.Friday, resp.Day)
	assert.Equal(t, domain.CapacityPolicyBinary, resp.Policy)
	assert.Len(t, resp.Slots, 48)
}

func TestExecute_RestaurantNotFound(t *testing.T) {
	date := time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&fakeReservationRepo{},
		&fakeRestaurantRepo{err: restaurantRepo.ErrRestaurantNotFound},
		now,
	)

	_, err := uc.Execute(context.Background(), &Request{RestaurantID: 42, Date: date})
	assert.ErrorIs(t, err, ErrRestaurantNotFound)
}

func TestExecute_ClosedDay(t *testing.T) {
	// Monday is marked closed in the schedule
	date := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

	uc := newTestUseCase(&fakeReservationRepo{}, &fakeRestaurantRepo{restaurant: fridayRestaurant(10)}, now)

	_, err := uc.Execute(context.Background(), &Request{RestaurantID: 1, Date: date})
	assert.ErrorIs(t, err, ErrRestaurantClosed)
}

func TestExecute_MissingScheduleDayIsClosed(t *testing.T) {
	// Sunday has no schedule entry at all
	date := time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

	uc := newTestUseCase(&fakeReservationRepo{}, &fakeRestaurantRepo{restaurant: fridayRestaurant(10)}, now)

	_, err := uc.Execute(context.Background(), &Request{RestaurantID: 1, Date: date})
	assert.ErrorIs(t, err, ErrRestaurantClosed)
}

func TestExecute_PastDate(t *testing.T) {
	date := time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)

	uc := newTestUseCase(&fakeReservationRepo{}, &fakeRestaurantRepo{restaurant: fridayRestaurant(10)}, now)

	_, err := uc.Execute(context.Background(), &Request{RestaurantID: 1, Date: date})
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_SameDayIsNotPast(t *testing.T) {
	date := time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC)
	// Late in the evening of the same calendar day
	now := time.Date(2026, 10, 16, 23, 0, 0, 0, time.UTC)

	uc := newTestUseCase(&fakeReservationRepo{}, &fakeRestaurantRepo{restaurant: fridayRestaurant(10)}, now)

	_, err := uc.Execute(context.Background(), &Request{RestaurantID: 1, Date: date})
	assert.NoError(t, err)
}

func TestExecute_BinaryPolicyFiltersBookedWindow(t *testing.T) {
	date := time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

	resRepo := &fakeReservationRepo{
		reservations: []*domain.Reservation{
			{RestaurantID: 1, Date: date, StartTime: "12:00", Status: domain.StatusActive},
		},
	}

	uc := newTestUseCase(resRepo, &fakeRestaurantRepo{restaurant: fridayRestaurant(10)}, now)

	resp, err := uc.Execute(context.Background(), &Request{RestaurantID: 1, Date: date})
	require.NoError(t, err)

	for _, slot := range resp.Slots {
		min, err := slot.Time.Minutes()
		require.NoError(t, err)
		// The 12:00-14:00 sitting blocks every start in (10:00, 14:00)
		blocked := min > 10*60 && min < 14*60
		assert.False(t, blocked, "slot %s should have been filtered", slot.Time)
	}
}

func TestExecute_FallbackToFullDayWhenBiasedScanIsEmpty(t *testing.T) {
	date := time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

	uc := newTestUseCase(&fakeReservationRepo{}, &fakeRestaurantRepo{restaurant: fridayRestaurant(10)}, now)

	// A desired time after closing narrows the scan past the last slot,
	// so the engine re-runs over the whole day.
	desired := ptr.Ptr(types.TimeString("23:30"))
	resp, err := uc.Execute(context.Background(), &Request{RestaurantID: 1, Date: date, DesiredTime: desired})
	require.NoError(t, err)

	assert.Len(t, resp.Slots, 48)
	assert.Equal(t, types.TimeString("10:00"), resp.Slots[0].Time)
}

func TestExecute_InvalidInput(t *testing.T) {
	now := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	uc := newTestUseCase(&fakeReservationRepo{}, &fakeRestaurantRepo{restaurant: fridayRestaurant(10)}, now)

	_, err := uc.Execute(context.Background(), &Request{RestaurantID: 0, Date: time.Now()})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{RestaurantID: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
