package get_available_slots

import (
	"time"

	"github.com/m04kA/RSV-ReservationService/internal/domain"
	"github.com/m04kA/RSV-ReservationService/pkg/types"
)

// buildReservationWindows derives one occupancy window per reservation:
// [seating start, seating start + dining duration). Windows of a second
// reservation at the identical start time are kept as-is, each consuming one
// unit of capacity.
func buildReservationWindows(
	reservations []*domain.Reservation,
	diningDurationMinutes int,
) ([]domain.ReservationWindow, error) {
	windows := make([]domain.ReservationWindow, 0, len(reservations))

	for _, res := range reservations {
		if !res.IsActive() {
			continue
		}

		startMinutes, err := res.StartTime.Minutes()
		if err != nil {
			return nil, err
		}

		start := atMinutes(res.Date, startMinutes)
		windows = append(windows, domain.ReservationWindow{
			StartTime: start,
			EndTime:   start.Add(time.Duration(diningDurationMinutes) * time.Minute),
		})
	}

	return windows, nil
}

// generateTimeSlots walks the operating-hours window of one day in fixed
// increments and reports which candidate seating starts are bookable.
//
// When a desired time is given, only the scan's starting point is narrowed to
// half the suggested range before it (clamped to opening time); the
// terminating condition always compares against the day's closing time, so a
// request near closing still sees the trailing slots.
//
// Overnight schedules (open >= close) produce an empty list: the loop never
// runs. The source system behaves the same way and never defined semantics
// for them.
func generateTimeSlots(
	hours domain.OperatingHours,
	date time.Time,
	restaurantCapacity int,
	windows []domain.ReservationWindow,
	desiredTime *types.TimeString,
	cfg domain.SchedulingConfig,
) ([]domain.TimeSlot, error) {
	if !hours.IsOpen {
		return []domain.TimeSlot{}, nil
	}

	openMinutes, err := hours.OpenTime.Minutes()
	if err != nil {
		return nil, err
	}
	closeMinutes, err := hours.CloseTime.Minutes()
	if err != nil {
		return nil, err
	}

	startMinutes := openMinutes
	if desiredTime != nil {
		desiredMinutes, err := desiredTime.Minutes()
		if err != nil {
			return nil, err
		}
		narrowed := desiredMinutes - cfg.SuggestedRangeMinutes/2
		if narrowed > startMinutes {
			// Slots stay on the interval grid measured from opening
			// time; an off-grid desired time must not shift the grid.
			if rem := (narrowed - openMinutes) % cfg.SlotIntervalMinutes; rem != 0 {
				narrowed += cfg.SlotIntervalMinutes - rem
			}
			startMinutes = narrowed
		}
	}

	slots := make([]domain.TimeSlot, 0)

	for current := startMinutes; current+cfg.SlotIntervalMinutes <= closeMinutes; current += cfg.SlotIntervalMinutes {
		slotTime, err := types.NewTimeStringFromMinutes(current)
		if err != nil {
			return nil, err
		}

		slotStart := atMinutes(date, current)
		slotEnd := slotStart.Add(time.Duration(cfg.DiningDurationMinutes) * time.Minute)

		overlapping := countOverlappingWindows(windows, slotStart, slotEnd)

		remaining := restaurantCapacity - overlapping
		if remaining < 0 {
			remaining = 0
		}

		switch cfg.CapacityPolicy {
		case domain.CapacityPolicyCounted:
			slots = append(slots, domain.TimeSlot{
				Time:      slotTime,
				Available: remaining > 0,
				Capacity:  remaining,
			})
		default:
			// Binary policy: any overlap makes the slot fully
			// unavailable and unavailable slots are not emitted.
			if overlapping == 0 {
				slots = append(slots, domain.TimeSlot{
					Time:      slotTime,
					Available: true,
					Capacity:  restaurantCapacity,
				})
			}
		}
	}

	return slots, nil
}

// countOverlappingWindows counts windows truly intersecting [start, end).
// Windows that merely touch a boundary do not count.
func countOverlappingWindows(windows []domain.ReservationWindow, start, end time.Time) int {
	count := 0
	for _, w := range windows {
		if w.Overlaps(start, end) {
			count++
		}
	}
	return count
}

// atMinutes returns the instant of the given minute offset on date's day
func atMinutes(date time.Time, minutes int) time.Time {
	midnight := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return midnight.Add(time.Duration(minutes) * time.Minute)
}
