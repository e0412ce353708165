package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/RSV-ReservationService/pkg/ptr"
)

func TestWeekdayFromTime(t *testing.T) {
	assert.Equal(t, Friday, WeekdayFromTime(time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, Saturday, WeekdayFromTime(time.Date(2026, 10, 17, 23, 59, 0, 0, time.UTC)))
	assert.Equal(t, Monday, WeekdayFromTime(time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)))
}

func TestHoursForDay(t *testing.T) {
	r := &Restaurant{
		OperatingHours: []OperatingHours{
			{Day: Friday, OpenTime: "10:00", CloseTime: "22:00", IsOpen: true},
		},
	}

	hours, found := r.HoursForDay(time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC))
	assert.True(t, found)
	assert.Equal(t, Friday, hours.Day)

	_, found = r.HoursForDay(time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC))
	assert.False(t, found)
}

func TestReservationWindowOverlaps(t *testing.T) {
	day := time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC)
	at := func(h, m int) time.Time { return day.Add(time.Duration(h*60+m) * time.Minute) }

	w := ReservationWindow{StartTime: at(12, 0), EndTime: at(14, 0)}

	assert.True(t, w.Overlaps(at(13, 0), at(15, 0)))
	assert.True(t, w.Overlaps(at(11, 0), at(12, 30)))
	assert.True(t, w.Overlaps(at(12, 30), at(13, 30)))

	// touching boundaries leave the slot free
	assert.False(t, w.Overlaps(at(14, 0), at(16, 0)))
	assert.False(t, w.Overlaps(at(10, 0), at(12, 0)))
}

func TestReservationStatusTransitions(t *testing.T) {
	active := &Reservation{Status: StatusActive}
	assert.True(t, active.IsActive())
	assert.True(t, active.CanBeCancelled())
	assert.True(t, active.CanBeUpdated())

	completed := &Reservation{Status: StatusCompleted}
	assert.True(t, completed.IsActive())
	assert.False(t, completed.CanBeCancelled())

	cancelled := &Reservation{Status: StatusCancelled}
	assert.False(t, cancelled.IsActive())
	assert.False(t, cancelled.CanBeUpdated())

	noShow := &Reservation{Status: StatusNoShow}
	assert.False(t, noShow.IsActive())
}

func TestCapacityPolicyValid(t *testing.T) {
	assert.True(t, CapacityPolicyBinary.Valid())
	assert.True(t, CapacityPolicyCounted.Valid())
	assert.False(t, CapacityPolicy("strict").Valid())
}

func TestUserCanManage(t *testing.T) {
	admin := &User{Role: RoleAdmin}
	assert.True(t, admin.CanManage(1))
	assert.True(t, admin.CanManage(42))

	owner := &User{Role: RoleOwner, RestaurantID: ptr.Ptr(int64(1))}
	assert.True(t, owner.CanManage(1))
	assert.False(t, owner.CanManage(2))

	orphan := &User{Role: RoleOwner}
	assert.False(t, orphan.CanManage(1))
}
