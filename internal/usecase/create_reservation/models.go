package create_reservation

import (
	"time"

	"github.com/m04kA/RSV-ReservationService/pkg/types"
)

// Request carries a new reservation
type Request struct {
	RestaurantID    int64
	Date            time.Time        // calendar date of the sitting
	StartTime       types.TimeString // seating start (HH:MM)
	Persons         int
	FirstName       string
	LastName        string
	Phone           string
	Email           string
	AdditionalNotes *string
}

// Response carries the created reservation
type Response struct {
	ID              int64
	RestaurantID    int64
	Date            time.Time
	StartTime       types.TimeString
	Persons         int
	Status          string
	FirstName       string
	LastName        string
	Phone           string
	Email           string
	AdditionalNotes *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
