package models

import (
	"errors"
	"time"

	"github.com/m04kA/RSV-ReservationService/internal/domain"
	"github.com/m04kA/RSV-ReservationService/pkg/types"
)

var (
	// ErrInvalidStatus is returned when an unknown status value is supplied
	ErrInvalidStatus = errors.New("invalid reservation status")

	// ErrInvalidDate is returned when a date string is not YYYY-MM-DD
	ErrInvalidDate = errors.New("invalid date format")
)

// Request models

// ListReservationsRequest carries the query surface of the list endpoint
type ListReservationsRequest struct {
	RestaurantID *int64
	StartDate    *time.Time
	EndDate      *time.Time
	Status       *string
	Page         int
	Limit        int
	Sort         []string
	Fields       []string
}

// ToDomainFilter converts the request into a storage filter
func (r *ListReservationsRequest) ToDomainFilter() (domain.ReservationsFilter, error) {
	filter := domain.ReservationsFilter{
		RestaurantID: r.RestaurantID,
		StartDate:    r.StartDate,
		EndDate:      r.EndDate,
	}

	if r.Status != nil {
		status, err := ToDomainReservationStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
		filter.IncludeInactive = true
	}

	return filter, nil
}

// ToListParams converts the request into pagination parameters
func (r *ListReservationsRequest) ToListParams() domain.ListParams {
	params := domain.ListParams{
		Page:   r.Page,
		Limit:  r.Limit,
		SortBy: r.Sort,
		Fields: r.Fields,
	}
	if params.Page < 1 {
		params.Page = 1
	}
	if params.Limit < 1 {
		params.Limit = 20
	}
	return params
}

// UpdateReservationRequest reschedules an existing reservation.
// Nil fields keep their current values.
type UpdateReservationRequest struct {
	Date    *string `json:"date,omitempty"`
	Time    *string `json:"time,omitempty"`
	Persons *int    `json:"persons,omitempty"`
	Phone   *string `json:"phone,omitempty"`
}

// CancelReservationRequest carries the cancellation reason
type CancelReservationRequest struct {
	CancellationReason string `json:"cancellationReason"`
}

// Response models

// ReservationResponse is the wire representation of a reservation
type ReservationResponse struct {
	ID              int64   `json:"id"`
	RestaurantID    int64   `json:"restaurantId"`
	Date            string  `json:"date"` // "2025-10-15"
	Time            string  `json:"time"` // "18:30"
	Persons         int     `json:"persons"`
	Status          string  `json:"status"`
	FirstName       string  `json:"firstName"`
	LastName        string  `json:"lastName"`
	Phone           string  `json:"phone"`
	Email           string  `json:"email"`
	AdditionalNotes *string `json:"additionalNotes,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Pagination describes the page of a list response
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// ReservationListResponse is the paginated list payload.
// When a field mask was requested, Reservations holds the masked objects.
type ReservationListResponse struct {
	Reservations []map[string]interface{} `json:"reservations"`
	Pagination   Pagination               `json:"pagination"`
}

// Conversion helpers

// FromDomainReservation converts a domain model to a DTO
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	if r == nil {
		return nil
	}

	resp := &ReservationResponse{
		ID:              r.ID,
		RestaurantID:    r.RestaurantID,
		Date:            r.Date.Format(domain.DateFormat),
		Time:            string(r.StartTime),
		Persons:         r.Persons,
		Status:          string(r.Status),
		FirstName:       r.FirstName,
		LastName:        r.LastName,
		Phone:           r.Phone,
		Email:           r.Email,
		AdditionalNotes: r.AdditionalNotes,

		CancellationReason: r.CancellationReason,

		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}

	if r.CancelledAt != nil {
		cancelled := r.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelled
	}

	return resp
}

// AsFields projects the response onto the requested field names.
// An empty mask returns every field.
func (r *ReservationResponse) AsFields(fields []string) map[string]interface{} {
	all := map[string]interface{}{
		"id":           r.ID,
		"restaurantId": r.RestaurantID,
		"date":         r.Date,
		"time":         r.Time,
		"persons":      r.Persons,
		"status":       r.Status,
		"firstName":    r.FirstName,
		"lastName":     r.LastName,
		"phone":        r.Phone,
		"email":        r.Email,
		"createdAt":    r.CreatedAt,
		"updatedAt":    r.UpdatedAt,
	}
	if r.AdditionalNotes != nil {
		all["additionalNotes"] = *r.AdditionalNotes
	}
	if r.CancellationReason != nil {
		all["cancellationReason"] = *r.CancellationReason
	}
	if r.CancelledAt != nil {
		all["cancelledAt"] = *r.CancelledAt
	}

	if len(fields) == 0 {
		return all
	}

	masked := make(map[string]interface{}, len(fields))
	for _, f := range fields {
		if v, ok := all[f]; ok {
			masked[f] = v
		}
	}
	return masked
}

// FromDomainReservationList converts a page of reservations with its pagination
func FromDomainReservationList(list []*domain.Reservation, params domain.ListParams, total int) *ReservationListResponse {
	resp := &ReservationListResponse{
		Reservations: make([]map[string]interface{}, 0, len(list)),
		Pagination: Pagination{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
		},
	}
	if params.Limit > 0 {
		resp.Pagination.TotalPages = (total + params.Limit - 1) / params.Limit
	}

	for _, r := range list {
		resp.Reservations = append(resp.Reservations, FromDomainReservation(r).AsFields(params.Fields))
	}

	return resp
}

// ToDomainReservationStatus validates and converts a status string
func ToDomainReservationStatus(status string) (domain.ReservationStatus, error) {
	s := domain.ReservationStatus(status)

	validStatuses := []domain.ReservationStatus{
		domain.StatusActive,
		domain.StatusCancelled,
		domain.StatusCompleted,
		domain.StatusNoShow,
	}

	for _, valid := range validStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}

// ParseDate parses a YYYY-MM-DD date string
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(domain.DateFormat, value)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// ParseTime parses an HH:MM time string
func ParseTime(value string) (types.TimeString, error) {
	return types.NewTimeStringFromString(value)
}
