package get_available_slots

import (
	"fmt"
	"time"
)

// validateRequest validates the incoming request data
func validateRequest(req *Request) error {
	if req.RestaurantID <= 0 {
		return fmt.Errorf("%w: restaurantID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.DesiredTime != nil {
		if err := req.DesiredTime.Validate(); err != nil {
			return fmt.Errorf("%w: invalid desired time: %v", ErrInvalidInput, err)
		}
	}

	return nil
}

// isDateInPast reports whether date falls on a calendar day before now's day
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
