package get_available_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/RSV-ReservationService/internal/domain"
	"github.com/m04kA/RSV-ReservationService/pkg/ptr"
	"github.com/m04kA/RSV-ReservationService/pkg/types"
)

func testSchedulingConfig() domain.SchedulingConfig {
	return domain.SchedulingConfig{
		SlotIntervalMinutes:   15,
		DiningDurationMinutes: 120,
		MinAdvanceMinutes:     60,
		SuggestedRangeMinutes: 120,
		CapacityPolicy:        domain.CapacityPolicyBinary,
	}
}

func testHours(open, close string) domain.OperatingHours {
	return domain.OperatingHours{
		Day:       domain.Friday,
		OpenTime:  types.TimeString(open),
		CloseTime: types.TimeString(close),
		IsOpen:    true,
	}
}

func testDate() time.Time {
	return time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC)
}

func windowAt(date time.Time, start, end string) domain.ReservationWindow {
	startMin, _ := types.TimeString(start).Minutes()
	endMin, _ := types.TimeString(end).Minutes()
	midnight := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return domain.ReservationWindow{
		StartTime: midnight.Add(time.Duration(startMin) * time.Minute),
		EndTime:   midnight.Add(time.Duration(endMin) * time.Minute),
	}
}

func slotTimes(slots []domain.TimeSlot) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, string(s.Time))
	}
	return out
}

func TestGenerateTimeSlots_DesiredTimeBias(t *testing.T) {
	hours := testHours("10:00", "22:00")
	desired := ptr.Ptr(types.TimeString("15:00"))

	slots, err := generateTimeSlots(hours, testDate(), 10, nil, desired, testSchedulingConfig())
	require.NoError(t, err)

	// Scan starts an hour before the desired time and runs to closing:
	// 14:00, 14:15, ..., 21:45.
	assert.Len(t, slots, 32)

	times := slotTimes(slots)
	assert.Contains(t, times, "14:00")
	assert.Contains(t, times, "15:00")
	assert.Contains(t, times, "16:00")
	assert.Equal(t, "14:00", times[0])
	assert.Equal(t, "21:45", times[len(times)-1])
}

func TestGenerateTimeSlots_DesiredTimeBeforeOpeningClampsToOpen(t *testing.T) {
	hours := testHours("10:00", "22:00")
	desired := ptr.Ptr(types.TimeString("09:00"))

	slots, err := generateTimeSlots(hours, testDate(), 10, nil, desired, testSchedulingConfig())
	require.NoError(t, err)

	require.NotEmpty(t, slots)
	assert.Equal(t, "10:00", string(slots[0].Time))
}

func TestGenerateTimeSlots_OffGridDesiredTimeStaysOnGrid(t *testing.T) {
	hours := testHours("10:00", "22:00")
	cfg := testSchedulingConfig()

	// 15:10 is a valid HH:MM value but lies between grid points; the
	// narrowed start (14:10) must round up to the next slot boundary.
	desired := ptr.Ptr(types.TimeString("15:10"))

	slots, err := generateTimeSlots(hours, testDate(), 10, nil, desired, cfg)
	require.NoError(t, err)

	require.NotEmpty(t, slots)
	assert.Equal(t, "14:15", string(slots[0].Time))

	openMin, err := hours.OpenTime.Minutes()
	require.NoError(t, err)
	for _, slot := range slots {
		slotMin, err := slot.Time.Minutes()
		require.NoError(t, err)
		assert.Zero(t, (slotMin-openMin)%cfg.SlotIntervalMinutes,
			"slot %s off the %d-minute grid from opening", slot.Time, cfg.SlotIntervalMinutes)
	}
}

func TestGenerateTimeSlots_FullDayWithoutDesiredTime(t *testing.T) {
	hours := testHours("10:00", "22:00")

	slots, err := generateTimeSlots(hours, testDate(), 10, nil, nil, testSchedulingConfig())
	require.NoError(t, err)

	// 10:00 through 21:45 in 15-minute steps.
	assert.Len(t, slots, 48)
	assert.Equal(t, "10:00", string(slots[0].Time))
	assert.Equal(t, "21:45", string(slots[len(slots)-1].Time))
}

func TestGenerateTimeSlots_SlotAlignment(t *testing.T) {
	hours := testHours("10:00", "22:00")
	cfg := testSchedulingConfig()

	slots, err := generateTimeSlots(hours, testDate(), 10, nil, nil, cfg)
	require.NoError(t, err)

	openMin, err := hours.OpenTime.Minutes()
	require.NoError(t, err)

	for _, slot := range slots {
		slotMin, err := slot.Time.Minutes()
		require.NoError(t, err)
		offset := slotMin - openMin
		assert.GreaterOrEqual(t, offset, 0)
		assert.Zero(t, offset%cfg.SlotIntervalMinutes, "slot %s misaligned", slot.Time)
	}
}

func TestGenerateTimeSlots_BinaryPolicySkipsOverlappedSlots(t *testing.T) {
	hours := testHours("10:00", "22:00")
	date := testDate()
	windows := []domain.ReservationWindow{windowAt(date, "10:00", "14:00")}

	slots, err := generateTimeSlots(hours, date, 10, windows, nil, testSchedulingConfig())
	require.NoError(t, err)

	require.NotEmpty(t, slots)

	// A 120-minute sitting starting anywhere before 14:00 intersects the
	// occupied window, so the first free start is exactly 14:00.
	assert.Equal(t, "14:00", string(slots[0].Time))
	for _, slot := range slots {
		slotMin, err := slot.Time.Minutes()
		require.NoError(t, err)
		assert.GreaterOrEqual(t, slotMin, 14*60, "slot %s overlaps the reservation", slot.Time)
	}
}

func TestGenerateTimeSlots_TouchingBoundariesDoNotOverlap(t *testing.T) {
	hours := testHours("10:00", "22:00")
	date := testDate()
	// Occupied 12:00-14:00. A sitting 10:00-12:00 ends exactly at the
	// window start and must stay bookable.
	windows := []domain.ReservationWindow{windowAt(date, "12:00", "14:00")}

	slots, err := generateTimeSlots(hours, date, 1, windows, nil, testSchedulingConfig())
	require.NoError(t, err)

	times := slotTimes(slots)
	assert.Contains(t, times, "10:00")
	assert.Contains(t, times, "14:00")
	assert.NotContains(t, times, "10:15")
	assert.NotContains(t, times, "13:45")
}

func TestGenerateTimeSlots_CountedPolicyReportsRemainingCapacity(t *testing.T) {
	hours := testHours("10:00", "14:00")
	date := testDate()
	cfg := testSchedulingConfig()
	cfg.CapacityPolicy = domain.CapacityPolicyCounted

	windows := []domain.ReservationWindow{
		windowAt(date, "10:00", "12:00"),
		windowAt(date, "10:00", "12:00"),
	}

	slots, err := generateTimeSlots(hours, date, 3, windows, nil, cfg)
	require.NoError(t, err)

	// Counted policy emits every slot, 10:00 through 13:45.
	require.Len(t, slots, 16)

	byTime := make(map[string]domain.TimeSlot, len(slots))
	for _, s := range slots {
		byTime[string(s.Time)] = s
	}

	assert.True(t, byTime["10:00"].Available)
	assert.Equal(t, 1, byTime["10:00"].Capacity)

	// From 12:00 both windows have ended.
	assert.True(t, byTime["12:00"].Available)
	assert.Equal(t, 3, byTime["12:00"].Capacity)
}

func TestGenerateTimeSlots_CountedPolicyExhaustedCapacity(t *testing.T) {
	hours := testHours("10:00", "14:00")
	date := testDate()
	cfg := testSchedulingConfig()
	cfg.CapacityPolicy = domain.CapacityPolicyCounted

	windows := []domain.ReservationWindow{
		windowAt(date, "10:00", "12:00"),
		windowAt(date, "10:00", "12:00"),
	}

	slots, err := generateTimeSlots(hours, date, 2, windows, nil, cfg)
	require.NoError(t, err)

	byTime := make(map[string]domain.TimeSlot, len(slots))
	for _, s := range slots {
		byTime[string(s.Time)] = s
	}

	assert.False(t, byTime["10:00"].Available)
	assert.Equal(t, 0, byTime["10:00"].Capacity)
	assert.True(t, byTime["12:00"].Available)
}

func TestGenerateTimeSlots_OvernightHoursProduceEmptyList(t *testing.T) {
	hours := testHours("22:00", "02:00")

	slots, err := generateTimeSlots(hours, testDate(), 10, nil, nil, testSchedulingConfig())
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGenerateTimeSlots_Idempotent(t *testing.T) {
	hours := testHours("10:00", "22:00")
	date := testDate()
	windows := []domain.ReservationWindow{windowAt(date, "12:00", "14:00")}
	desired := ptr.Ptr(types.TimeString("13:00"))
	cfg := testSchedulingConfig()

	first, err := generateTimeSlots(hours, date, 5, windows, desired, cfg)
	require.NoError(t, err)
	second, err := generateTimeSlots(hours, date, 5, windows, desired, cfg)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestBuildReservationWindows_SkipsInactiveReservations(t *testing.T) {
	date := testDate()
	reservations := []*domain.Reservation{
		{Date: date, StartTime: "12:00", Status: domain.StatusActive},
		{Date: date, StartTime: "13:00", Status: domain.StatusCancelled},
		{Date: date, StartTime: "14:00", Status: domain.StatusNoShow},
		{Date: date, StartTime: "18:00", Status: domain.StatusCompleted},
	}

	windows, err := buildReservationWindows(reservations, 120)
	require.NoError(t, err)

	// Cancelled and no-show drop out; completed still occupied its window.
	require.Len(t, windows, 2)
	assert.Equal(t, windowAt(date, "12:00", "14:00"), windows[0])
	assert.Equal(t, windowAt(date, "18:00", "20:00"), windows[1])
}
