package create_reservation

import (
	"fmt"
	"time"

	"github.com/m04kA/RSV-ReservationService/internal/domain"
	"github.com/m04kA/RSV-ReservationService/pkg/types"
)

// validateRequest validates the incoming request data
func validateRequest(req *Request) error {
	if req.RestaurantID <= 0 {
		return fmt.Errorf("%w: restaurantID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.Persons < domain.MinPartySize || req.Persons > domain.MaxPartySize {
		return fmt.Errorf("%w: persons must be between %d and %d",
			ErrInvalidInput, domain.MinPartySize, domain.MaxPartySize)
	}

	if req.FirstName == "" || req.LastName == "" {
		return fmt.Errorf("%w: guest name is required", ErrInvalidInput)
	}
	if req.Phone == "" {
		return fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}

	if req.AdditionalNotes != nil && len(*req.AdditionalNotes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes longer than %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// isValidReservationDate reports whether the requested instant is not in the
// past. Instant comparison, not calendar-day comparison: callers pass the
// full reservation timestamp.
func isValidReservationDate(requestDateTime, now time.Time) bool {
	return !requestDateTime.Before(now)
}

// isValidReservationTime reports whether the requested instant honours the
// minimum advance time ("must book at least 1 hour ahead" with defaults).
func isValidReservationTime(requestDateTime, now time.Time, minAdvanceMinutes int) bool {
	minAllowed := now.Add(time.Duration(minAdvanceMinutes) * time.Minute)
	return !requestDateTime.Before(minAllowed)
}

// validateWithinOperatingHours checks open <= start and start <= close
func validateWithinOperatingHours(hours domain.OperatingHours, start types.TimeString) error {
	if start.IsBefore(hours.OpenTime) || start.IsAfter(hours.CloseTime) {
		return ErrOutsideOperatingHours
	}
	return nil
}

// validateSlotAlignment checks that the start offset from opening time is a
// multiple of the slot interval.
func validateSlotAlignment(hours domain.OperatingHours, start types.TimeString, intervalMinutes int) error {
	openMinutes, err := hours.OpenTime.Minutes()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
	startMinutes, err := start.Minutes()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}

	offset := startMinutes - openMinutes
	if offset < 0 || offset%intervalMinutes != 0 {
		return ErrInvalidTimeSlot
	}
	return nil
}

// reservationDateTime combines the calendar date with the HH:MM start time
func reservationDateTime(date time.Time, start types.TimeString) (time.Time, error) {
	minutes, err := start.Minutes()
	if err != nil {
		return time.Time{}, err
	}
	midnight := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return midnight.Add(time.Duration(minutes) * time.Minute), nil
}

// countOverlappingReservations counts active reservations whose occupancy
// window truly intersects [start, start+dining). Touching boundaries do not
// overlap.
func countOverlappingReservations(
	reservations []*domain.Reservation,
	date time.Time,
	start types.TimeString,
	diningDurationMinutes int,
) (int, error) {
	slotStart, err := reservationDateTime(date, start)
	if err != nil {
		return 0, err
	}
	slotEnd := slotStart.Add(time.Duration(diningDurationMinutes) * time.Minute)

	count := 0
	for _, res := range reservations {
		if !res.IsActive() {
			continue
		}

		resStart, err := reservationDateTime(res.Date, res.StartTime)
		if err != nil {
			continue
		}
		resEnd := resStart.Add(time.Duration(diningDurationMinutes) * time.Minute)

		window := domain.ReservationWindow{StartTime: resStart, EndTime: resEnd}
		if window.Overlaps(slotStart, slotEnd) {
			count++
		}
	}

	return count, nil
}
