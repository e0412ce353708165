package create_reservation

import (
	"errors"
	"fmt"

	"github.com/m04kA/RSV-ReservationService/pkg/types"
)

var (
	// ErrRestaurantNotFound is returned when the restaurant id does not resolve
	ErrRestaurantNotFound = errors.New("create_reservation: restaurant not found")

	// ErrRestaurantClosed is returned when the restaurant is closed on the
	// requested day
	ErrRestaurantClosed = errors.New("create_reservation: restaurant is closed on this day")

	// ErrInvalidDate is returned when the requested instant lies in the past
	ErrInvalidDate = errors.New("create_reservation: reservation date cannot be in the past")

	// ErrTooLateToBook is returned when the reservation violates the
	// minimum advance time
	ErrTooLateToBook = errors.New("create_reservation: too late to book this slot")

	// ErrOutsideOperatingHours is returned when the requested time falls
	// outside the day's open/close bounds
	ErrOutsideOperatingHours = errors.New("create_reservation: time is outside operating hours")

	// ErrInvalidTimeSlot is returned when the requested time is not aligned
	// to the slot interval measured from opening time
	ErrInvalidTimeSlot = errors.New("create_reservation: invalid time slot")

	// ErrSlotNotAvailable is returned when the requested slot has no
	// remaining capacity
	ErrSlotNotAvailable = errors.New("create_reservation: slot is not available")

	// ErrInvalidInput is returned on malformed request data
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal is returned on unexpected internal failures
	ErrInternal = errors.New("create_reservation: internal error")
)

// OperatingHoursError carries the schedule details behind
// ErrOutsideOperatingHours so callers can show the open and close times.
type OperatingHoursError struct {
	RestaurantName string
	OpenTime       types.TimeString
	CloseTime      types.TimeString
}

func (e *OperatingHoursError) Error() string {
	return fmt.Sprintf("%s is open from %s to %s",
		e.RestaurantName, e.OpenTime.Format12Hour(), e.CloseTime.Format12Hour())
}

func (e *OperatingHoursError) Unwrap() error {
	return ErrOutsideOperatingHours
}
