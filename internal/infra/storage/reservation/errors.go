package reservation

import "errors"

var (
	// ErrReservationNotFound is returned when the reservation does not exist
	ErrReservationNotFound = errors.New("reservation.repository: reservation not found")

	// ErrBuildQuery is returned when building the SQL query fails
	ErrBuildQuery = errors.New("reservation.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL query fails
	ErrExecQuery = errors.New("reservation.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("reservation.repository: failed to scan row")

	// ErrCannotCancel is returned when the reservation cannot be cancelled
	ErrCannotCancel = errors.New("reservation.repository: reservation cannot be cancelled")
)
