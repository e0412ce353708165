package domain

import (
	"time"

	"github.com/m04kA/RSV-ReservationService/pkg/types"
)

// CapacityPolicy selects how overlapping reservations affect a slot
type CapacityPolicy string

const (
	// CapacityPolicyBinary marks a slot unavailable as soon as any
	// reservation window overlaps it.
	CapacityPolicyBinary CapacityPolicy = "binary"

	// CapacityPolicyCounted subtracts each overlapping window from the
	// restaurant capacity and reports the remainder.
	CapacityPolicyCounted CapacityPolicy = "counted"
)

// Valid reports whether the policy is one of the known values
func (p CapacityPolicy) Valid() bool {
	return p == CapacityPolicyBinary || p == CapacityPolicyCounted
}

// ReservationWindow is the occupancy interval [StartTime, EndTime) derived
// from a reservation's seating start plus the dining duration. Windows are
// rebuilt for every availability query and never persisted.
type ReservationWindow struct {
	StartTime time.Time
	EndTime   time.Time
}

// Overlaps reports whether the window truly intersects [start, end).
// Touching boundaries do not overlap: a window ending exactly at start, or
// starting exactly at end, leaves the slot free.
func (w ReservationWindow) Overlaps(start, end time.Time) bool {
	return w.StartTime.Before(end) && w.EndTime.After(start)
}

// TimeSlot is one bookable candidate emitted by the slot generator
type TimeSlot struct {
	Time      types.TimeString
	Available bool
	Capacity  int // remaining capacity under the counted policy
}

// SchedulingConfig groups the tunable constants of the availability engine
type SchedulingConfig struct {
	SlotIntervalMinutes   int
	DiningDurationMinutes int
	MinAdvanceMinutes     int
	SuggestedRangeMinutes int
	CapacityPolicy        CapacityPolicy
}

// DefaultSchedulingConfig returns the engine defaults
func DefaultSchedulingConfig() SchedulingConfig {
	return SchedulingConfig{
		SlotIntervalMinutes:   DefaultSlotIntervalMinutes,
		DiningDurationMinutes: DefaultDiningDurationMinutes,
		MinAdvanceMinutes:     DefaultMinAdvanceMinutes,
		SuggestedRangeMinutes: DefaultSuggestedRangeMinutes,
		CapacityPolicy:        CapacityPolicyBinary,
	}
}
