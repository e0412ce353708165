package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/RSV-ReservationService/internal/domain"
	"github.com/m04kA/RSV-ReservationService/pkg/ptr"
)

func sampleReservation() *domain.Reservation {
	return &domain.Reservation{
		ID:           7,
		RestaurantID: 1,
		Date:         time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC),
		StartTime:    "19:00",
		Persons:      4,
		Status:       domain.StatusActive,
		FirstName:    "Ada",
		LastName:     "Lovelace",
		Phone:        "+15550100",
		Email:        "ada@example.com",
	}
}

func TestAsFields_FullProjection(t *testing.T) {
	got := FromDomainReservation(sampleReservation()).AsFields(nil)

	assert.Equal(t, int64(7), got["id"])
	assert.Equal(t, "2026-10-16", got["date"])
	assert.Equal(t, "19:00", got["time"])
	assert.Equal(t, "active", got["status"])

	// nil optionals are omitted rather than rendered as null
	_, ok := got["additionalNotes"]
	assert.False(t, ok)
	_, ok = got["cancelledAt"]
	assert.False(t, ok)
}

func TestAsFields_Mask(t *testing.T) {
	got := FromDomainReservation(sampleReservation()).AsFields([]string{"id", "date", "time", "bogus"})

	assert.Len(t, got, 3)
	assert.Equal(t, int64(7), got["id"])
	assert.Equal(t, "2026-10-16", got["date"])
	assert.Equal(t, "19:00", got["time"])
}

func TestFromDomainReservation_CancelledAt(t *testing.T) {
	res := sampleReservation()
	res.Status = domain.StatusCancelled
	res.CancellationReason = ptr.Ptr("guest called")
	cancelled := time.Date(2026, 10, 10, 9, 30, 0, 0, time.UTC)
	res.CancelledAt = &cancelled

	dto := FromDomainReservation(res)
	require.NotNil(t, dto.CancelledAt)
	assert.Equal(t, "2026-10-10T09:30:00Z", *dto.CancelledAt)
	require.NotNil(t, dto.CancellationReason)
	assert.Equal(t, "guest called", *dto.CancellationReason)
}

func TestFromDomainReservationList_Pagination(t *testing.T) {
	list := []*domain.Reservation{sampleReservation(), sampleReservation()}
	params := domain.ListParams{Page: 2, Limit: 20}

	resp := FromDomainReservationList(list, params, 45)

	assert.Len(t, resp.Reservations, 2)
	assert.Equal(t, 2, resp.Pagination.Page)
	assert.Equal(t, 20, resp.Pagination.Limit)
	assert.Equal(t, 45, resp.Pagination.Total)
	assert.Equal(t, 3, resp.Pagination.TotalPages)
}

func TestToDomainReservationStatus(t *testing.T) {
	for _, valid := range []string{"active", "cancelled", "completed", "no_show"} {
		status, err := ToDomainReservationStatus(valid)
		require.NoError(t, err)
		assert.Equal(t, domain.ReservationStatus(valid), status)
	}

	_, err := ToDomainReservationStatus("pending")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestListReservationsRequest_Defaults(t *testing.T) {
	req := &ListReservationsRequest{}
	params := req.ToListParams()

	assert.Equal(t, 1, params.Page)
	assert.Equal(t, 20, params.Limit)
}
