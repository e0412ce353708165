package domain

// Scheduling defaults. Per-restaurant tuning is possible through the
// [scheduling] section of the service configuration.
const (
	// DefaultSlotIntervalMinutes is the granularity at which candidate
	// seating start times are enumerated.
	DefaultSlotIntervalMinutes = 15

	// DefaultDiningDurationMinutes is the assumed occupancy length of a
	// seated party, used to build reservation windows and test overlap.
	DefaultDiningDurationMinutes = 120

	// DefaultMinAdvanceMinutes is the minimum lead time before a
	// reservation may start.
	DefaultMinAdvanceMinutes = 60

	// DefaultSuggestedRangeMinutes is the total width of the search window
	// centred on a requested time.
	DefaultSuggestedRangeMinutes = 120
)

// Business validation constants
const (
	MinRestaurantCapacity = 1
	MinPartySize          = 1
	MaxPartySize          = 50
	MaxNotesLength        = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
