package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/RSV-ReservationService/internal/domain"
	restaurantRepo "github.com/m04kA/RSV-ReservationService/internal/infra/storage/restaurant"
)

// UseCase computes the bookable time slots of a restaurant for one date.
// It is a pure function of (operating hours, capacity, existing reservations,
// optional desired time) plus a single storage read; it never writes.
type UseCase struct {
	reservationRepo ReservationRepository
	restaurantRepo  RestaurantRepository
	scheduling      domain.SchedulingConfig
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase creates the availability use case
func NewUseCase(
	reservationRepo ReservationRepository,
	restaurantRepo RestaurantRepository,
	scheduling domain.SchedulingConfig,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		restaurantRepo:  restaurantRepo,
		scheduling:      scheduling,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// WithTimeProvider overrides the clock, used by tests
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute runs the availability query
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: restaurant=%d, date=%s, desired=%v",
		req.RestaurantID, req.Date.Format(domain.DateFormat), req.DesiredTime)

	// 1. Validate input
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()
	if isDateInPast(req.Date, now) {
		uc.logger.Warn("GetAvailableSlots: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, ErrInvalidDate
	}

	// 2. Resolve the restaurant
	restaurant, err := uc.restaurantRepo.GetByID(ctx, req.RestaurantID)
	if err != nil {
		if errors.Is(err, restaurantRepo.ErrRestaurantNotFound) {
			uc.logger.Warn("GetAvailableSlots: restaurant id=%d not found", req.RestaurantID)
			return nil, ErrRestaurantNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get restaurant id=%d: %v", req.RestaurantID, err)
		return nil, fmt.Errorf("%w: failed to get restaurant: %v", ErrInternal, err)
	}

	// 3. Operating hours for the requested day
	day := domain.WeekdayFromTime(req.Date)
	hours, found := restaurant.HoursForDay(req.Date)
	if !found || !hours.IsOpen {
		uc.logger.Info("GetAvailableSlots: restaurant id=%d is closed on %s", req.RestaurantID, day)
		return nil, ErrRestaurantClosed
	}

	// 4. Read the day's reservations: [date, date+1d)
	nextDay := req.Date.AddDate(0, 0, 1)
	filter := domain.ReservationsFilter{
		RestaurantID:    &req.RestaurantID,
		StartDate:       &req.Date,
		EndDate:         &nextDay,
		IncludeInactive: false,
	}

	reservations, err := uc.reservationRepo.GetWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	// 5. Build occupancy windows
	windows, err := buildReservationWindows(reservations, uc.scheduling.DiningDurationMinutes)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to build reservation windows: %v", err)
		return nil, fmt.Errorf("%w: failed to build reservation windows: %v", ErrInternal, err)
	}

	// 6. Generate slots, biased around the desired time when given
	slots, err := generateTimeSlots(hours, req.Date, restaurant.Capacity, windows, req.DesiredTime, uc.scheduling)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate time slots: %v", ErrInternal, err)
	}

	// 7. Fallback: an empty biased scan falls back to the full day so a
	// narrow desired-time search never hides availability elsewhere.
	if len(slots) == 0 && req.DesiredTime != nil {
		uc.logger.Info("GetAvailableSlots: no slots around %s, falling back to full-day scan", *req.DesiredTime)
		slots, err = generateTimeSlots(hours, req.Date, restaurant.Capacity, windows, nil, uc.scheduling)
		if err != nil {
			uc.logger.Error("GetAvailableSlots: fallback scan failed: %v", err)
			return nil, fmt.Errorf("%w: failed to generate time slots: %v", ErrInternal, err)
		}
	}

	uc.logger.Info("GetAvailableSlots: restaurant=%d, date=%s, slots=%d",
		req.RestaurantID, req.Date.Format(domain.DateFormat), len(slots))

	return &Response{
		RestaurantID: req.RestaurantID,
		Date:         req.Date,
		Day:          day,
		Policy:       uc.scheduling.CapacityPolicy,
		Slots:        slots,
	}, nil
}
