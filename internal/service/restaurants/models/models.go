package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/RSV-ReservationService/internal/domain"
	"github.com/m04kA/RSV-ReservationService/pkg/types"
)

var (
	// ErrInvalidWeekday is returned when a day name is not a known weekday
	ErrInvalidWeekday = errors.New("invalid weekday")

	// ErrInvalidTime is returned when a time string is not HH:MM
	ErrInvalidTime = errors.New("invalid time format")

	// ErrInvalidTableStatus is returned when a table status value is unknown
	ErrInvalidTableStatus = errors.New("invalid table status")
)

// Request models

// OperatingHoursInput is one weekday schedule entry
type OperatingHoursInput struct {
	Day       string `json:"day"`
	OpenTime  string `json:"openTime"`
	CloseTime string `json:"closeTime"`
	IsOpen    bool   `json:"isOpen"`
}

// RegisterRestaurantRequest registers a new restaurant
type RegisterRestaurantRequest struct {
	Name           string                `json:"name"`
	Address        string                `json:"address"`
	Email          string                `json:"email"`
	Capacity       int                   `json:"capacity"`
	OperatingHours []OperatingHoursInput `json:"operatingHours"`
}

// UpdateRestaurantRequest updates restaurant fields.
// Nil fields keep their current values.
type UpdateRestaurantRequest struct {
	Name           *string               `json:"name,omitempty"`
	Address        *string               `json:"address,omitempty"`
	Capacity       *int                  `json:"capacity,omitempty"`
	OperatingHours []OperatingHoursInput `json:"operatingHours,omitempty"`
}

// AddTableRequest adds a table to a restaurant
type AddTableRequest struct {
	TableNumber    string   `json:"tableNumber"`
	Capacity       int      `json:"capacity"`
	Location       *string  `json:"location,omitempty"`
	Description    *string  `json:"description,omitempty"`
	AdjacentTables []string `json:"adjacentTables,omitempty"`
}

// UpdateTableRequest updates table fields.
// Nil fields keep their current values.
type UpdateTableRequest struct {
	TableNumber    *string  `json:"tableNumber,omitempty"`
	Capacity       *int     `json:"capacity,omitempty"`
	Location       *string  `json:"location,omitempty"`
	Description    *string  `json:"description,omitempty"`
	Status         *string  `json:"status,omitempty"`
	AdjacentTables []string `json:"adjacentTables,omitempty"`
}

// Response models

// OperatingHoursResponse is one weekday schedule entry
type OperatingHoursResponse struct {
	Day       string `json:"day"`
	OpenTime  string `json:"openTime"`
	CloseTime string `json:"closeTime"`
	IsOpen    bool   `json:"isOpen"`
}

// RestaurantResponse is the wire representation of a restaurant
type RestaurantResponse struct {
	ID             int64                    `json:"id"`
	Name           string                   `json:"name"`
	Address        string                   `json:"address"`
	Email          string                   `json:"email"`
	Capacity       int                      `json:"capacity"`
	OwnerID        int64                    `json:"ownerId"`
	OperatingHours []OperatingHoursResponse `json:"operatingHours"`
	CreatedAt      time.Time                `json:"createdAt"`
	UpdatedAt      time.Time                `json:"updatedAt"`
}

// RestaurantListResponse is the list payload
type RestaurantListResponse struct {
	Restaurants []RestaurantResponse `json:"restaurants"`
}

// TableResponse is the wire representation of a table
type TableResponse struct {
	ID             int64     `json:"id"`
	RestaurantID   int64     `json:"restaurantId"`
	TableNumber    string    `json:"tableNumber"`
	Capacity       int       `json:"capacity"`
	Location       *string   `json:"location,omitempty"`
	Description    *string   `json:"description,omitempty"`
	Status         string    `json:"status"`
	AdjacentTables []string  `json:"adjacentTables"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// TableListResponse is the table list payload
type TableListResponse struct {
	Tables []TableResponse `json:"tables"`
}

// Conversion helpers

// ToDomainOperatingHours validates and converts schedule entries
func ToDomainOperatingHours(inputs []OperatingHoursInput) ([]domain.OperatingHours, error) {
	hours := make([]domain.OperatingHours, 0, len(inputs))
	for _, in := range inputs {
		day, err := ToDomainWeekday(in.Day)
		if err != nil {
			return nil, err
		}

		openTime, err := types.NewTimeStringFromString(in.OpenTime)
		if err != nil {
			return nil, fmt.Errorf("%w: open time %q", ErrInvalidTime, in.OpenTime)
		}
		closeTime, err := types.NewTimeStringFromString(in.CloseTime)
		if err != nil {
			return nil, fmt.Errorf("%w: close time %q", ErrInvalidTime, in.CloseTime)
		}

		hours = append(hours, domain.OperatingHours{
			Day:       day,
			OpenTime:  openTime,
			CloseTime: closeTime,
			IsOpen:    in.IsOpen,
		})
	}
	return hours, nil
}

// ToDomainWeekday validates and converts a weekday name
func ToDomainWeekday(day string) (domain.Weekday, error) {
	d := domain.Weekday(day)

	validDays := []domain.Weekday{
		domain.Monday,
		domain.Tuesday,
		domain.Wednesday,
		domain.Thursday,
		domain.Friday,
		domain.Saturday,
		domain.Sunday,
	}

	for _, valid := range validDays {
		if d == valid {
			return d, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrInvalidWeekday, day)
}

// ToDomainTableStatus validates and converts a table status
func ToDomainTableStatus(status string) (domain.TableStatus, error) {
	s := domain.TableStatus(status)

	validStatuses := []domain.TableStatus{
		domain.TableAvailable,
		domain.TableReserved,
		domain.TableOccupied,
	}

	for _, valid := range validStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrInvalidTableStatus, status)
}

// FromDomainRestaurant converts a domain model to a DTO
func FromDomainRestaurant(r *domain.Restaurant) *RestaurantResponse {
	if r == nil {
		return nil
	}

	resp := &RestaurantResponse{
		ID:             r.ID,
		Name:           r.Name,
		Address:        r.Address,
		Email:          r.Email,
		Capacity:       r.Capacity,
		OwnerID:        r.OwnerID,
		OperatingHours: make([]OperatingHoursResponse, 0, len(r.OperatingHours)),
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}

	for _, oh := range r.OperatingHours {
		resp.OperatingHours = append(resp.OperatingHours, OperatingHoursResponse{
			Day:       string(oh.Day),
			OpenTime:  string(oh.OpenTime),
			CloseTime: string(oh.CloseTime),
			IsOpen:    oh.IsOpen,
		})
	}

	return resp
}

// FromDomainRestaurantList converts a list of restaurants
func FromDomainRestaurantList(list []*domain.Restaurant) *RestaurantListResponse {
	resp := &RestaurantListResponse{
		Restaurants: make([]RestaurantResponse, 0, len(list)),
	}
	for _, r := range list {
		if dto := FromDomainRestaurant(r); dto != nil {
			resp.Restaurants = append(resp.Restaurants, *dto)
		}
	}
	return resp
}

// FromDomainTable converts a domain table to a DTO
func FromDomainTable(t *domain.Table) *TableResponse {
	if t == nil {
		return nil
	}

	adjacent := t.AdjacentTables
	if adjacent == nil {
		adjacent = []string{}
	}

	return &TableResponse{
		ID:             t.ID,
		RestaurantID:   t.RestaurantID,
		TableNumber:    t.TableNumber,
		Capacity:       t.Capacity,
		Location:       t.Location,
		Description:    t.Description,
		Status:         string(t.Status),
		AdjacentTables: adjacent,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}

// FromDomainTableList converts a list of tables
func FromDomainTableList(list []*domain.Table) *TableListResponse {
	resp := &TableListResponse{
		Tables: make([]TableResponse, 0, len(list)),
	}
	for _, t := range list {
		if dto := FromDomainTable(t); dto != nil {
			resp.Tables = append(resp.Tables, *dto)
		}
	}
	return resp
}
