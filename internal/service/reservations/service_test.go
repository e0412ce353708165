package reservations

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/RSV-ReservationService/internal/domain"
	reservationRepo "github.com/m04kA/RSV-ReservationService/internal/infra/storage/reservation"
	"github.com/m04kA/RSV-ReservationService/internal/service/reservations/models"
	"github.com/m04kA/RSV-ReservationService/pkg/ptr"
)

type fakeReservationRepo struct {
	byID      map[int64]*domain.Reservation
	day       []*domain.Reservation
	updated   *domain.Reservation
	cancelled map[int64]string
	deleted   []int64
}

func newFakeReservationRepo() *fakeReservationRepo {
	return &fakeReservationRepo{
		byID:      map[int64]*domain.Reservation{},
		cancelled: map[int64]string{},
	}
}

func (f *fakeReservationRepo) GetByID(_ context.Context, id int64) (*domain.Reservation, error) {
	res, ok := f.byID[id]
	if !ok {
		return nil, reservationRepo.ErrReservationNotFound
	}
	return res, nil
}

func (f *fakeReservationRepo) GetWithFilter(_ context.Context, _ domain.ReservationsFilter) ([]*domain.Reservation, error) {
	return f.day, nil
}

func (f *fakeReservationRepo) List(_ context.Context, _ domain.ReservationsFilter, _ domain.ListParams) ([]*domain.Reservation, int, error) {
	return f.day, len(f.day), nil
}

func (f *fakeReservationRepo) Update(_ context.Context, id int64, res *domain.Reservation) (*domain.Reservation, error) {
	if _, ok := f.byID[id]; !ok {
		return nil, reservationRepo.ErrReservationNotFound
	}
	next := *res
	next.ID = id
	f.updated = &next
	f.byID[id] = &next
	return &next, nil
}

func (f *fakeReservationRepo) Cancel(_ context.Context, id int64, reason string) error {
	if _, ok := f.byID[id]; !ok {
		return reservationRepo.ErrReservationNotFound
	}
	f.cancelled[id] = reason
	return nil
}

func (f *fakeReservationRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.byID[id]; !ok {
		return reservationRepo.ErrReservationNotFound
	}
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeRestaurantRepo struct {
	restaurant *domain.Restaurant
}

func (f *fakeRestaurantRepo) GetByID(_ context.Context, _ int64) (*domain.Restaurant, error) {
	return f.restaurant, nil
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func fridayRestaurant() *domain.Restaurant {
	return &domain.Restaurant{
		ID:       1,
		Name:     "Trattoria",
		Capacity: 10,
		OperatingHours: []domain.OperatingHours{
			{Day: domain.Friday, OpenTime: "10:00", CloseTime: "22:00", IsOpen: true},
		},
	}
}

func storedReservation(id int64, status domain.ReservationStatus) *domain.Reservation {
	return &domain.Reservation{
		ID:           id,
		RestaurantID: 1,
		Date:         time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC),
		StartTime:    "19:00",
		Persons:      4,
		Status:       status,
		FirstName:    "Ada",
		LastName:     "Lovelace",
		Phone:        "+15550100",
		Email:        "ada@example.com",
	}
}

func newTestService(repo *fakeReservationRepo) *Service {
	return NewService(
		repo,
		&fakeRestaurantRepo{restaurant: fridayRestaurant()},
		fakeTxManager{},
		domain.DefaultSchedulingConfig(),
		nopLogger{},
	)
}

func TestGetByID(t *testing.T) {
	repo := newFakeReservationRepo()
	repo.byID[7] = storedReservation(7, domain.StatusActive)
	svc := newTestService(repo)

	resp, err := svc.GetByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, "19:00", resp.Time)

	_, err = svc.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestUpdate_Reschedule(t *testing.T) {
	repo := newFakeReservationRepo()
	repo.byID[7] = storedReservation(7, domain.StatusActive)
	svc := newTestService(repo)

	resp, err := svc.Update(context.Background(), 7, &models.UpdateReservationRequest{
		Time:    ptr.Ptr("20:00"),
		Persons: ptr.Ptr(6),
	})
	require.NoError(t, err)

	assert.Equal(t, "20:00", resp.Time)
	assert.Equal(t, 6, resp.Persons)
	require.NotNil(t, repo.updated)
	assert.Equal(t, domain.StatusActive, repo.updated.Status)
}

func TestUpdate_CancelledReservationIsImmutable(t *testing.T) {
	repo := newFakeReservationRepo()
	repo.byID[7] = storedReservation(7, domain.StatusCancelled)
	svc := newTestService(repo)

	_, err := svc.Update(context.Background(), 7, &models.UpdateReservationRequest{Persons: ptr.Ptr(2)})
	assert.ErrorIs(t, err, ErrCannotModify)
}

func TestUpdate_ClosedDay(t *testing.T) {
	repo := newFakeReservationRepo()
	repo.byID[7] = storedReservation(7, domain.StatusActive)
	svc := newTestService(repo)

	// 2026-10-17 is a Saturday with no schedule entry
	_, err := svc.Update(context.Background(), 7, &models.UpdateReservationRequest{Date: ptr.Ptr("2026-10-17")})
	assert.ErrorIs(t, err, ErrRestaurantClosed)
}

func TestUpdate_OutsideHoursAndMisaligned(t *testing.T) {
	repo := newFakeReservationRepo()
	repo.byID[7] = storedReservation(7, domain.StatusActive)
	svc := newTestService(repo)

	_, err := svc.Update(context.Background(), 7, &models.UpdateReservationRequest{Time: ptr.Ptr("23:00")})
	assert.ErrorIs(t, err, ErrOutsideOperatingHours)

	_, err = svc.Update(context.Background(), 7, &models.UpdateReservationRequest{Time: ptr.Ptr("20:10")})
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
}

func TestUpdate_SlotTakenByOtherReservation(t *testing.T) {
	repo := newFakeReservationRepo()
	repo.byID[7] = storedReservation(7, domain.StatusActive)
	other := storedReservation(8, domain.StatusActive)
	other.StartTime = "20:00"
	repo.day = []*domain.Reservation{repo.byID[7], other}
	svc := newTestService(repo)

	_, err := svc.Update(context.Background(), 7, &models.UpdateReservationRequest{Time: ptr.Ptr("20:00")})
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestUpdate_OwnWindowDoesNotBlockTheMove(t *testing.T) {
	repo := newFakeReservationRepo()
	repo.byID[7] = storedReservation(7, domain.StatusActive)
	repo.day = []*domain.Reservation{repo.byID[7]}
	svc := newTestService(repo)

	// moving by 30 minutes overlaps the reservation's own old window,
	// which must be excluded from the capacity count
	resp, err := svc.Update(context.Background(), 7, &models.UpdateReservationRequest{Time: ptr.Ptr("19:30")})
	require.NoError(t, err)
	assert.Equal(t, "19:30", resp.Time)
}

func TestUpdate_UnchangedTimeSkipsCapacityCheck(t *testing.T) {
	repo := newFakeReservationRepo()
	repo.byID[7] = storedReservation(7, domain.StatusActive)
	other := storedReservation(8, domain.StatusActive)
	repo.day = []*domain.Reservation{repo.byID[7], other}
	svc := newTestService(repo)

	// only the party size changes, so the occupied slot stays valid
	resp, err := svc.Update(context.Background(), 7, &models.UpdateReservationRequest{Persons: ptr.Ptr(2)})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Persons)
}

func TestCancel(t *testing.T) {
	repo := newFakeReservationRepo()
	repo.byID[7] = storedReservation(7, domain.StatusActive)
	svc := newTestService(repo)

	err := svc.Cancel(context.Background(), 7, &models.CancelReservationRequest{CancellationReason: "guest called"})
	require.NoError(t, err)
	assert.Equal(t, "guest called", repo.cancelled[7])

	// already-cancelled reservations are rejected on the next attempt
	repo.byID[7].Status = domain.StatusCancelled
	err = svc.Cancel(context.Background(), 7, &models.CancelReservationRequest{})
	assert.ErrorIs(t, err, ErrCannotModify)
}

func TestDelete(t *testing.T) {
	repo := newFakeReservationRepo()
	repo.byID[7] = storedReservation(7, domain.StatusActive)
	svc := newTestService(repo)

	require.NoError(t, svc.Delete(context.Background(), 7))
	assert.Equal(t, []int64{7}, repo.deleted)

	assert.ErrorIs(t, svc.Delete(context.Background(), 99), ErrReservationNotFound)
}
