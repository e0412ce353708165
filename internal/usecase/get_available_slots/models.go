package get_available_slots

import (
	"time"

	"github.com/m04kA/RSV-ReservationService/internal/domain"
	"github.com/m04kA/RSV-ReservationService/pkg/types"
)

// Request asks for the bookable slots of one restaurant on one date
type Request struct {
	RestaurantID int64
	Date         time.Time         // calendar date, time part ignored
	DesiredTime  *types.TimeString // optional, biases the search window
}

// Response carries the generated slot list
type Response struct {
	RestaurantID int64
	Date         time.Time
	Day          domain.Weekday
	Policy       domain.CapacityPolicy
	Slots        []domain.TimeSlot
}
