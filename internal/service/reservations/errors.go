package reservations

import "errors"

var (
	// ErrReservationNotFound is returned when the reservation does not exist
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrRestaurantNotFound is returned when the reservation's restaurant does not exist
	ErrRestaurantNotFound = errors.New("restaurant not found")

	// ErrCannotModify is returned when the reservation is no longer active
	ErrCannotModify = errors.New("reservation can no longer be modified")

	// ErrOutsideOperatingHours is returned when the new time falls outside the schedule
	ErrOutsideOperatingHours = errors.New("time is outside operating hours")

	// ErrInvalidTimeSlot is returned when the new time is not aligned to the slot grid
	ErrInvalidTimeSlot = errors.New("time does not match a reservation slot")

	// ErrSlotNotAvailable is returned when the new slot has no remaining capacity
	ErrSlotNotAvailable = errors.New("slot is not available")

	// ErrRestaurantClosed is returned when the restaurant is closed on the new date
	ErrRestaurantClosed = errors.New("restaurant is closed on this day")

	// ErrInvalidInput is returned on malformed request data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on unexpected service failures
	ErrInternal = errors.New("reservations: internal error")
)
