package restaurants

import "errors"

var (
	// ErrRestaurantNotFound is returned when the restaurant does not exist
	ErrRestaurantNotFound = errors.New("restaurant not found")

	// ErrTableNotFound is returned when the table does not exist
	ErrTableNotFound = errors.New("table not found")

	// ErrDuplicateEmail is returned when a restaurant with the email already exists
	ErrDuplicateEmail = errors.New("restaurant with this email already exists")

	// ErrAccessDenied is returned when the user may not manage the restaurant
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput is returned on malformed request data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on unexpected service failures
	ErrInternal = errors.New("restaurants: internal error")
)
