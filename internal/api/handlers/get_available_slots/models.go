package get_available_slots

import (
	"time"

	"github.com/m04kA/RSV-ReservationService/internal/domain"
	getAvailableSlots "github.com/m04kA/RSV-ReservationService/internal/usecase/get_available_slots"
	"github.com/m04kA/RSV-ReservationService/pkg/types"
)

// ReserveDate is the requested date with an optional desired time
type ReserveDate struct {
	Date string  `json:"date" validate:"required"` // "2025-10-15"
	Time *string `json:"time,omitempty"`           // "18:30", biases the search
}

// CheckAvailabilityRequest is the HTTP request model
type CheckAvailabilityRequest struct {
	ReserveDate ReserveDate `json:"reserveDate" validate:"required"`
}

// SlotResponse is one bookable slot
type SlotResponse struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
	Capacity  *int   `json:"capacity,omitempty"` // counted policy only
}

// AvailabilityResponse is the HTTP response model
type AvailabilityResponse struct {
	RestaurantID int64          `json:"restaurantId"`
	Date         string         `json:"date"`
	Day          string         `json:"day"`
	Slots        []SlotResponse `json:"availableSlots"`
}

// ToUseCaseRequest converts the HTTP request into the use case model
func (r *CheckAvailabilityRequest) ToUseCaseRequest(restaurantID int64) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.ReserveDate.Date)
	if err != nil {
		return nil, err
	}

	req := &getAvailableSlots.Request{
		RestaurantID: restaurantID,
		Date:         date,
	}

	if r.ReserveDate.Time != nil {
		desired, err := types.NewTimeStringFromString(*r.ReserveDate.Time)
		if err != nil {
			return nil, err
		}
		req.DesiredTime = &desired
	}

	return req, nil
}

// FromUseCaseResponse converts the use case result into the HTTP model
func FromUseCaseResponse(result *getAvailableSlots.Response) *AvailabilityResponse {
	resp := &AvailabilityResponse{
		RestaurantID: result.RestaurantID,
		Date:         result.Date.Format(domain.DateFormat),
		Day:          string(result.Day),
		Slots:        make([]SlotResponse, 0, len(result.Slots)),
	}

	counted := result.Policy == domain.CapacityPolicyCounted
	for _, slot := range result.Slots {
		s := SlotResponse{
			Time:      string(slot.Time),
			Available: slot.Available,
		}
		if counted {
			capacity := slot.Capacity
			s.Capacity = &capacity
		}
		resp.Slots = append(resp.Slots, s)
	}

	return resp
}
