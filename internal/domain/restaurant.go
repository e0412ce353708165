package domain

import (
	"strings"
	"time"

	"github.com/m04kA/RSV-ReservationService/pkg/types"
)

// Weekday is the enumerated day used in operating-hours schedules
type Weekday string

const (
	Monday    Weekday = "MONDAY"
	Tuesday   Weekday = "TUESDAY"
	Wednesday Weekday = "WEDNESDAY"
	Thursday  Weekday = "THURSDAY"
	Friday    Weekday = "FRIDAY"
	Saturday  Weekday = "SATURDAY"
	Sunday    Weekday = "SUNDAY"
)

// WeekdayFromTime maps a calendar date to the schedule weekday
func WeekdayFromTime(t time.Time) Weekday {
	return Weekday(strings.ToUpper(t.Weekday().String()))
}

// OperatingHours is one weekday's schedule for a restaurant.
// When IsOpen is false the day has no bookable slots regardless of the
// open/close values.
type OperatingHours struct {
	Day       Weekday
	OpenTime  types.TimeString
	CloseTime types.TimeString
	IsOpen    bool
}

// Restaurant represents a registered restaurant
type Restaurant struct {
	ID             int64
	Name           string
	Address        string
	Email          string
	Capacity       int
	OwnerID        int64
	OperatingHours []OperatingHours
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// HoursForDay returns the operating hours for the weekday of date.
// The second result is false when no schedule entry exists for that day.
func (r *Restaurant) HoursForDay(date time.Time) (OperatingHours, bool) {
	day := WeekdayFromTime(date)
	for _, oh := range r.OperatingHours {
		if oh.Day == day {
			return oh, true
		}
	}
	return OperatingHours{}, false
}

// TableStatus represents the state of a single table
type TableStatus string

const (
	TableAvailable TableStatus = "available"
	TableReserved  TableStatus = "reserved"
	TableOccupied  TableStatus = "occupied"
)

// Table represents one physical table of a restaurant
type Table struct {
	ID             int64
	RestaurantID   int64
	TableNumber    string
	Capacity       int
	Location       *string
	Description    *string
	Status         TableStatus
	AdjacentTables []string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
