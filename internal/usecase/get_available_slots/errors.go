package get_available_slots

import "errors"

var (
	// ErrRestaurantNotFound is returned when the restaurant id does not resolve
	ErrRestaurantNotFound = errors.New("get_available_slots: restaurant not found")

	// ErrRestaurantClosed is returned when the restaurant is closed on the
	// requested day
	ErrRestaurantClosed = errors.New("get_available_slots: restaurant is closed on this day")

	// ErrInvalidDate is returned when the requested date lies in the past
	ErrInvalidDate = errors.New("get_available_slots: invalid reservation date")

	// ErrInvalidInput is returned on malformed request data
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal is returned on unexpected internal failures
	ErrInternal = errors.New("get_available_slots: internal error")
)
