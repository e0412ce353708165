package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/RSV-ReservationService/internal/domain"
	restaurantRepo "github.com/m04kA/RSV-ReservationService/internal/infra/storage/restaurant"
)

// UseCase creates a reservation. The availability check and the insert run
// in one serializable transaction, so two concurrent requests racing for the
// last seat cannot both succeed.
type UseCase struct {
	reservationRepo ReservationRepository
	restaurantRepo  RestaurantRepository
	txManager       TransactionManager
	scheduling      domain.SchedulingConfig
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase creates the reservation use case
func NewUseCase(
	reservationRepo ReservationRepository,
	restaurantRepo RestaurantRepository,
	txManager TransactionManager,
	scheduling domain.SchedulingConfig,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		restaurantRepo:  restaurantRepo,
		txManager:       txManager,
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

// Execute validates and creates the reservation
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: restaurant=%d, date=%s, time=%s, persons=%d",
		req.RestaurantID, req.Date.Format(domain.DateFormat), req.StartTime, req.Persons)

	// 1. Validate input
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 2. Resolve the restaurant
	restaurant, err := uc.restaurantRepo.GetByID(ctx, req.RestaurantID)
	if err != nil {
		if errors.Is(err, restaurantRepo.ErrRestaurantNotFound) {
			uc.logger.Warn("CreateReservation: restaurant id=%d not found", req.RestaurantID)
			return nil, ErrRestaurantNotFound
		}
		uc.logger.Error("CreateReservation: failed to get restaurant id=%d: %v", req.RestaurantID, err)
		return nil, fmt.Errorf("%w: failed to get restaurant: %v", ErrInternal, err)
	}

	// 3. Operating hours for the requested day
	hours, found := restaurant.HoursForDay(req.Date)
	if !found || !hours.IsOpen {
		uc.logger.Warn("CreateReservation: restaurant id=%d is closed on %s",
			req.RestaurantID, domain.WeekdayFromTime(req.Date))
		return nil, ErrRestaurantClosed
	}

	// 4. Date/time validators against the injected clock
	requestDateTime, err := reservationDateTime(req.Date, req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if !isValidReservationDate(requestDateTime, now) {
		uc.logger.Warn("CreateReservation: datetime %s is in the past", requestDateTime)
		return nil, ErrInvalidDate
	}

	if err := validateWithinOperatingHours(hours, req.StartTime); err != nil {
		uc.logger.Warn("CreateReservation: time %s outside operating hours %s-%s",
			req.StartTime, hours.OpenTime, hours.CloseTime)
		return nil, &OperatingHoursError{
			RestaurantName: restaurant.Name,
			OpenTime:       hours.OpenTime,
			CloseTime:      hours.CloseTime,
		}
	}

	if err := validateSlotAlignment(hours, req.StartTime, uc.scheduling.SlotIntervalMinutes); err != nil {
		uc.logger.Warn("CreateReservation: time %s not aligned to slot interval", req.StartTime)
		return nil, err
	}

	if !isValidReservationTime(requestDateTime, now, uc.scheduling.MinAdvanceMinutes) {
		uc.logger.Warn("CreateReservation: datetime %s violates %d-minute advance rule",
			requestDateTime, uc.scheduling.MinAdvanceMinutes)
		return nil, ErrTooLateToBook
	}

	var result *domain.Reservation

	// 5. Availability re-check and insert, atomically
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		nextDay := req.Date.AddDate(0, 0, 1)
		filter := domain.ReservationsFilter{
			RestaurantID:    &req.RestaurantID,
			StartDate:       &req.Date,
			EndDate:         &nextDay,
			IncludeInactive: false,
		}

		existing, err := uc.reservationRepo.GetWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to get reservations: %v", err)
			return fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
		}

		overlapping, err := countOverlappingReservations(
			existing, req.Date, req.StartTime, uc.scheduling.DiningDurationMinutes)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to count overlaps: %v", err)
			return fmt.Errorf("%w: failed to count overlapping reservations: %v", ErrInternal, err)
		}

		if !slotBookable(uc.scheduling.CapacityPolicy, overlapping, restaurant.Capacity) {
			uc.logger.Warn("CreateReservation: slot %s not available, %d/%d windows taken",
				req.StartTime, overlapping, restaurant.Capacity)
			return ErrSlotNotAvailable
		}

		reservation := &domain.Reservation{
			RestaurantID:    req.RestaurantID,
			Date:            req.Date,
			StartTime:       req.StartTime,
			Persons:         req.Persons,
			Status:          domain.StatusActive,
			FirstName:       req.FirstName,
			LastName:        req.LastName,
			Phone:           req.Phone,
			Email:           req.Email,
			AdditionalNotes: req.AdditionalNotes,
		}

		created, err := uc.reservationRepo.Create(txCtx, reservation)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateReservation: created reservation id=%d", result.ID)

	return &Response{
		ID:              result.ID,
		RestaurantID:    result.RestaurantID,
		Date:            result.Date,
		StartTime:       result.StartTime,
		Persons:         result.Persons,
		Status:          string(result.Status),
		FirstName:       result.FirstName,
		LastName:        result.LastName,
		Phone:           result.Phone,
		Email:           result.Email,
		AdditionalNotes: result.AdditionalNotes,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}

// slotBookable applies the capacity policy to an overlap count
func slotBookable(policy domain.CapacityPolicy, overlapping, capacity int) bool {
	if policy == domain.CapacityPolicyCounted {
		return overlapping < capacity
	}
	return overlapping == 0
}
