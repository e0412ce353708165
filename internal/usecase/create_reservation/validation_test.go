package create_reservation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/RSV-ReservationService/internal/domain"
	"github.com/m04kA/RSV-ReservationService/pkg/types"
)

func validRequest() *Request {
	return &Request{
		RestaurantID: 1,
		Date:         time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC),
		StartTime:    types.TimeString("19:00"),
		Persons:      4,
		FirstName:    "Ada",
		LastName:     "Lovelace",
		Phone:        "+15550100",
		Email:        "ada@example.com",
	}
}

func TestValidateRequest(t *testing.T) {
	assert.NoError(t, validateRequest(validRequest()))

	req := validRequest()
	req.RestaurantID = 0
	assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)

	req = validRequest()
	req.Date = time.Time{}
	assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)

	req = validRequest()
	req.StartTime = ""
	assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)

	req = validRequest()
	req.StartTime = types.TimeString("25:00")
	assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)

	req = validRequest()
	req.Persons = 0
	assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)

	req = validRequest()
	req.Persons = domain.MaxPartySize + 1
	assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)

	req = validRequest()
	req.FirstName = ""
	assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)

	req = validRequest()
	req.Phone = ""
	assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)
}

func TestIsValidReservationDate(t *testing.T) {
	now := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)

	assert.True(t, isValidReservationDate(now.AddDate(0, 0, 1), now))
	assert.True(t, isValidReservationDate(now, now))
	assert.False(t, isValidReservationDate(now.AddDate(0, 0, -1), now))
	assert.False(t, isValidReservationDate(now.Add(-time.Minute), now))
}

func TestIsValidReservationTime(t *testing.T) {
	now := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
	const minAdvance = 60

	// 30 minutes ahead violates the one-hour advance rule
	assert.False(t, isValidReservationTime(now.Add(30*time.Minute), now, minAdvance))

	// exactly one hour ahead is allowed
	assert.True(t, isValidReservationTime(now.Add(60*time.Minute), now, minAdvance))

	assert.True(t, isValidReservationTime(now.Add(90*time.Minute), now, minAdvance))
}

func TestValidateWithinOperatingHours(t *testing.T) {
	hours := domain.OperatingHours{
		Day:       domain.Friday,
		OpenTime:  "10:00",
		CloseTime: "22:00",
		IsOpen:    true,
	}

	assert.NoError(t, validateWithinOperatingHours(hours, "10:00"))
	assert.NoError(t, validateWithinOperatingHours(hours, "15:30"))
	assert.NoError(t, validateWithinOperatingHours(hours, "22:00"))

	assert.ErrorIs(t, validateWithinOperatingHours(hours, "09:45"), ErrOutsideOperatingHours)
	assert.ErrorIs(t, validateWithinOperatingHours(hours, "22:15"), ErrOutsideOperatingHours)
}

func TestValidateSlotAlignment(t *testing.T) {
	hours := domain.OperatingHours{OpenTime: "10:00", CloseTime: "22:00", IsOpen: true}

	assert.NoError(t, validateSlotAlignment(hours, "10:00", 15))
	assert.NoError(t, validateSlotAlignment(hours, "19:45", 15))

	assert.ErrorIs(t, validateSlotAlignment(hours, "19:50", 15), ErrInvalidTimeSlot)
	assert.ErrorIs(t, validateSlotAlignment(hours, "09:45", 15), ErrInvalidTimeSlot)

	// a half-hour offset from a 10:30 opening stays aligned
	halfHours := domain.OperatingHours{OpenTime: "10:30", CloseTime: "22:00", IsOpen: true}
	assert.NoError(t, validateSlotAlignment(halfHours, "11:00", 15))
	assert.ErrorIs(t, validateSlotAlignment(halfHours, "11:10", 15), ErrInvalidTimeSlot)
}

func TestCountOverlappingReservations(t *testing.T) {
	date := time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC)
	const dining = 120

	reservations := []*domain.Reservation{
		{Date: date, StartTime: "12:00", Status: domain.StatusActive},
		{Date: date, StartTime: "12:30", Status: domain.StatusActive},
		{Date: date, StartTime: "12:00", Status: domain.StatusCancelled},
		{Date: date, StartTime: "18:00", Status: domain.StatusActive},
	}

	count, err := countOverlappingReservations(reservations, date, "13:00", dining)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	// 14:00 touches the 12:00-14:00 window but truly overlaps only 12:30-14:30
	count, err = countOverlappingReservations(reservations, date, "14:00", dining)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	count, err = countOverlappingReservations(reservations, date, "10:00", dining)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
