package create_reservation

import (
	"time"

	"github.com/m04kA/RSV-ReservationService/internal/domain"
	createReservation "github.com/m04kA/RSV-ReservationService/internal/usecase/create_reservation"
	"github.com/m04kA/RSV-ReservationService/pkg/types"
)

// CreateReservationRequest is the HTTP request model
type CreateReservationRequest struct {
	Date            string  `json:"date" validate:"required"` // "2025-10-15"
	Time            string  `json:"time" validate:"required"` // "18:30"
	Persons         int     `json:"persons" validate:"required,min=1"`
	FirstName       string  `json:"firstName" validate:"required"`
	LastName        string  `json:"lastName" validate:"required"`
	Phone           string  `json:"phone" validate:"required"`
	Email           string  `json:"email" validate:"omitempty,email"`
	AdditionalNotes *string `json:"additionalNotes,omitempty"`
}

// ReservationResponse is the HTTP response model
type ReservationResponse struct {
	ID              int64   `json:"id"`
	RestaurantID    int64   `json:"restaurantId"`
	Date            string  `json:"date"`
	Time            string  `json:"time"`
	Persons         int     `json:"persons"`
	Status          string  `json:"status"`
	FirstName       string  `json:"firstName"`
	LastName        string  `json:"lastName"`
	Phone           string  `json:"phone"`
	Email           string  `json:"email"`
	AdditionalNotes *string `json:"additionalNotes,omitempty"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// ToUseCaseRequest converts the HTTP request into the use case model
func (r *CreateReservationRequest) ToUseCaseRequest(restaurantID int64) (*createReservation.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, err
	}

	return &createReservation.Request{
		RestaurantID:    restaurantID,
		Date:            date,
		StartTime:       startTime,
		Persons:         r.Persons,
		FirstName:       r.FirstName,
		LastName:        r.LastName,
		Phone:           r.Phone,
		Email:           r.Email,
		AdditionalNotes: r.AdditionalNotes,
	}, nil
}

// FromUseCaseResponse converts the use case result into the HTTP model
func FromUseCaseResponse(result *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:              result.ID,
		RestaurantID:    result.RestaurantID,
		Date:            result.Date.Format(domain.DateFormat),
		Time:            string(result.StartTime),
		Persons:         result.Persons,
		Status:          result.Status,
		FirstName:       result.FirstName,
		LastName:        result.LastName,
		Phone:           result.Phone,
		Email:           result.Email,
		AdditionalNotes: result.AdditionalNotes,
		CreatedAt:       result.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       result.UpdatedAt.Format(time.RFC3339),
	}
}
