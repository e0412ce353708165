package domain

import (
	"time"

	"github.com/m04kA/RSV-ReservationService/pkg/types"
)

// ReservationStatus represents the status of a reservation
type ReservationStatus string

const (
	StatusActive    ReservationStatus = "active"
	StatusCancelled ReservationStatus = "cancelled"
	StatusCompleted ReservationStatus = "completed"
	StatusNoShow    ReservationStatus = "no_show"
)

// InactiveStatuses are excluded when counting occupancy against capacity
var InactiveStatuses = []ReservationStatus{
	StatusCancelled,
	StatusNoShow,
}

// Reservation represents a booked table sitting
type Reservation struct {
	ID           int64
	RestaurantID int64
	Date         time.Time        // calendar date of the sitting
	StartTime    types.TimeString // seating start (HH:MM)
	Persons      int
	Status       ReservationStatus

	// Guest contact details, denormalized onto the reservation
	FirstName       string
	LastName        string
	Phone           string
	Email           string
	AdditionalNotes *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive reports whether the reservation still consumes capacity
func (r *Reservation) IsActive() bool {
	return r.Status != StatusCancelled && r.Status != StatusNoShow
}

// CanBeCancelled reports whether the reservation may be cancelled
func (r *Reservation) CanBeCancelled() bool {
	return r.Status == StatusActive
}

// CanBeUpdated reports whether the reservation may be rescheduled
func (r *Reservation) CanBeUpdated() bool {
	return r.Status == StatusActive
}

// ReservationsFilter narrows reservation list queries
type ReservationsFilter struct {
	RestaurantID    *int64             // optional restaurant filter
	StartDate       *time.Time         // inclusive lower date bound
	EndDate         *time.Time         // exclusive upper date bound
	Status          *ReservationStatus // optional status filter
	IncludeInactive bool               // include cancelled and no-show rows
}

// ListParams carries pagination, ordering and projection for list queries,
// mirroring the page/sort/limit/fields query surface of the HTTP API.
type ListParams struct {
	Page   int
	Limit  int
	SortBy []string // column names, "-" prefix for descending
	Fields []string // projected columns, empty means all
}

// Offset converts page/limit to a row offset
func (p ListParams) Offset() int {
	if p.Page <= 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit
}
