package restaurant

import "errors"

var (
	// ErrRestaurantNotFound is returned when the restaurant does not exist
	ErrRestaurantNotFound = errors.New("restaurant.repository: restaurant not found")

	// ErrTableNotFound is returned when the table does not exist
	ErrTableNotFound = errors.New("restaurant.repository: table not found")

	// ErrDuplicateEmail is returned when a restaurant with the same email
	// is already registered
	ErrDuplicateEmail = errors.New("restaurant.repository: restaurant with this email already exists")

	// ErrBuildQuery is returned when building the SQL query fails
	ErrBuildQuery = errors.New("restaurant.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL query fails
	ErrExecQuery = errors.New("restaurant.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("restaurant.repository: failed to scan row")
)
