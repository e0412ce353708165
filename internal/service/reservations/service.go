package reservations

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/RSV-ReservationService/internal/domain"
	reservationRepo "github.com/m04kA/RSV-ReservationService/internal/infra/storage/reservation"
	restaurantRepo "github.com/m04kA/RSV-ReservationService/internal/infra/storage/restaurant"
	"github.com/m04kA/RSV-ReservationService/internal/service/reservations/models"
)

// Service manages existing reservations. Creation goes through the
// create_reservation use case; everything after the initial booking
// lands here.
type Service struct {
	reservationRepo ReservationRepository
	restaurantRepo  RestaurantRepository
	txManager       TransactionManager
	cfg             domain.SchedulingConfig
	logger          Logger
}

// NewService creates a reservations service
func NewService(
	reservationRepo ReservationRepository,
	restaurantRepo RestaurantRepository,
	txManager TransactionManager,
	cfg domain.SchedulingConfig,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		restaurantRepo:  restaurantRepo,
		txManager:       txManager,
		cfg:             cfg,
		logger:          logger,
	}
}

// GetByID fetches one reservation
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%d", id)

	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReservation(res), nil
}

// List returns a page of reservations with the requested ordering and
// field projection.
func (s *Service) List(ctx context.Context, req *models.ListReservationsRequest) (*models.ReservationListResponse, error) {
	s.logger.Info("List: fetching reservations page=%d limit=%d", req.Page, req.Limit)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	params := req.ToListParams()

	list, total, err := s.reservationRepo.List(ctx, filter, params)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d of %d reservations", len(list), total)
	return models.FromDomainReservationList(list, params, total), nil
}

// Update reschedules a reservation. The new date and time are validated
// against the restaurant schedule and re-checked for capacity inside a
// serializable transaction, the same way the initial booking is.
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateReservationRequest) (*models.ReservationResponse, error) {
	s.logger.Info("Update: updating reservation id=%d", id)

	current, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Update: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("Update: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	if !current.CanBeUpdated() {
		s.logger.Warn("Update: reservation id=%d cannot be updated, status=%s", id, current.Status)
		return nil, ErrCannotModify
	}

	next, err := s.mergeUpdate(current, req)
	if err != nil {
		s.logger.Warn("Update: invalid payload for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	restaurant, err := s.restaurantRepo.GetByID(ctx, next.RestaurantID)
	if err != nil {
		if errors.Is(err, restaurantRepo.ErrRestaurantNotFound) {
			s.logger.Warn("Update: restaurant id=%d not found", next.RestaurantID)
			return nil, ErrRestaurantNotFound
		}
		s.logger.Error("Update: failed to load restaurant id=%d: %v", next.RestaurantID, err)
		return nil, fmt.Errorf("%w: Update - load restaurant: %v", ErrInternal, err)
	}

	timeChanged := next.Date != current.Date || next.StartTime != current.StartTime
	if timeChanged {
		if err := s.validateSchedule(restaurant, next); err != nil {
			return nil, err
		}
	}

	var updated *domain.Reservation
	txErr := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if timeChanged {
			if err := s.checkSlotCapacity(txCtx, restaurant, next, id); err != nil {
				return err
			}
		}

		updated, err = s.reservationRepo.Update(txCtx, id, next)
		return err
	})
	if txErr != nil {
		switch {
		case errors.Is(txErr, ErrSlotNotAvailable):
			s.logger.Warn("Update: slot %s %s not available for reservation id=%d",
				next.Date.Format(domain.DateFormat), next.StartTime, id)
			return nil, ErrSlotNotAvailable
		case errors.Is(txErr, reservationRepo.ErrReservationNotFound):
			return nil, ErrReservationNotFound
		default:
			s.logger.Error("Update: transaction error for reservation id=%d: %v", id, txErr)
			return nil, fmt.Errorf("%w: Update - transaction error: %v", ErrInternal, txErr)
		}
	}

	s.logger.Info("Update: successfully updated reservation id=%d", id)
	return models.FromDomainReservation(updated), nil
}

// Cancel marks a reservation cancelled and records the reason
func (s *Service) Cancel(ctx context.Context, id int64, req *models.CancelReservationRequest) error {
	s.logger.Info("Cancel: cancelling reservation id=%d", id)

	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Cancel: reservation id=%d not found", id)
			return ErrReservationNotFound
		}
		s.logger.Error("Cancel: repository error for reservation id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !res.CanBeCancelled() {
		s.logger.Warn("Cancel: reservation id=%d cannot be cancelled, status=%s", id, res.Status)
		return ErrCannotModify
	}

	if err := s.reservationRepo.Cancel(ctx, id, req.CancellationReason); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return ErrReservationNotFound
		}
		s.logger.Error("Cancel: repository error for reservation id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled reservation id=%d", id)
	return nil
}

// Delete removes a reservation row entirely
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting reservation id=%d", id)

	if err := s.reservationRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Delete: reservation id=%d not found", id)
			return ErrReservationNotFound
		}
		s.logger.Error("Delete: repository error for reservation id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted reservation id=%d", id)
	return nil
}

// mergeUpdate applies the partial update on top of the stored reservation
func (s *Service) mergeUpdate(current *domain.Reservation, req *models.UpdateReservationRequest) (*domain.Reservation, error) {
	next := *current

	if req.Date != nil {
		date, err := models.ParseDate(*req.Date)
		if err != nil {
			return nil, err
		}
		next.Date = date
	}
	if req.Time != nil {
		start, err := models.ParseTime(*req.Time)
		if err != nil {
			return nil, err
		}
		next.StartTime = start
	}
	if req.Persons != nil {
		if *req.Persons < domain.MinPartySize || *req.Persons > domain.MaxPartySize {
			return nil, fmt.Errorf("persons must be between %d and %d", domain.MinPartySize, domain.MaxPartySize)
		}
		next.Persons = *req.Persons
	}
	if req.Phone != nil {
		next.Phone = *req.Phone
	}

	return &next, nil
}

// validateSchedule checks the rescheduled sitting against operating hours
// and the slot grid.
func (s *Service) validateSchedule(restaurant *domain.Restaurant, res *domain.Reservation) error {
	hours, found := restaurant.HoursForDay(res.Date)
	if !found || !hours.IsOpen {
		s.logger.Warn("validateSchedule: restaurant id=%d closed on %s",
			restaurant.ID, domain.WeekdayFromTime(res.Date))
		return ErrRestaurantClosed
	}

	if res.StartTime.IsBefore(hours.OpenTime) || res.StartTime.IsAfter(hours.CloseTime) {
		s.logger.Warn("validateSchedule: time %s outside hours %s-%s for restaurant id=%d",
			res.StartTime, hours.OpenTime, hours.CloseTime, restaurant.ID)
		return ErrOutsideOperatingHours
	}

	startMinutes, err := res.StartTime.Minutes()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	openMinutes, err := hours.OpenTime.Minutes()
	if err != nil {
		return fmt.Errorf("%w: parse opening time: %v", ErrInternal, err)
	}

	offset := startMinutes - openMinutes
	if offset < 0 || offset%s.cfg.SlotIntervalMinutes != 0 {
		s.logger.Warn("validateSchedule: time %s not aligned to %d minute slots for restaurant id=%d",
			res.StartTime, s.cfg.SlotIntervalMinutes, restaurant.ID)
		return ErrInvalidTimeSlot
	}

	return nil
}

// checkSlotCapacity re-counts overlapping reservations for the target slot,
// excluding the reservation being moved.
func (s *Service) checkSlotCapacity(ctx context.Context, restaurant *domain.Restaurant, res *domain.Reservation, excludeID int64) error {
	dayStart := res.Date
	dayEnd := dayStart.AddDate(0, 0, 1)

	existing, err := s.reservationRepo.GetWithFilter(ctx, domain.ReservationsFilter{
		RestaurantID: &res.RestaurantID,
		StartDate:    &dayStart,
		EndDate:      &dayEnd,
	})
	if err != nil {
		return fmt.Errorf("load day reservations: %w", err)
	}

	startMinutes, err := res.StartTime.Minutes()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	slotStart := atMinutes(res.Date, startMinutes)
	slotEnd := slotStart.Add(time.Duration(s.cfg.DiningDurationMinutes) * time.Minute)

	overlapping := 0
	for _, other := range existing {
		if other.ID == excludeID || !other.IsActive() {
			continue
		}
		otherMinutes, err := other.StartTime.Minutes()
		if err != nil {
			continue
		}
		window := domain.ReservationWindow{
			StartTime: atMinutes(other.Date, otherMinutes),
		}
		window.EndTime = window.StartTime.Add(time.Duration(s.cfg.DiningDurationMinutes) * time.Minute)
		if window.Overlaps(slotStart, slotEnd) {
			overlapping++
		}
	}

	if s.cfg.CapacityPolicy == domain.CapacityPolicyCounted {
		if overlapping < restaurant.Capacity {
			return nil
		}
	} else if overlapping == 0 {
		return nil
	}

	return ErrSlotNotAvailable
}

func atMinutes(date time.Time, minutes int) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), minutes/60, minutes%60, 0, 0, date.Location())
}
