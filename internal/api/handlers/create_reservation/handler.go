package create_reservation

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/RSV-ReservationService/internal/api/handlers"
	"github.com/m04kA/RSV-ReservationService/internal/domain"
	createReservation "github.com/m04kA/RSV-ReservationService/internal/usecase/create_reservation"
)

const (
	msgInvalidRestaurantID = "invalid restaurant ID"
	msgInvalidBody         = "invalid request body"
	msgRestaurantNotFound  = "restaurant not found"
	msgPastDate            = "Reservation date cannot be in the past"
	msgTooLateToBook       = "The restaurant take reservations up to 1 hour before dining time"
	msgInvalidTimeSlot     = "time does not match a reservation slot"
	msgSlotNotAvailable    = "the requested slot is no longer available"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/restaurants/{id}/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	restaurantID, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /restaurants/{id}/reservations - Invalid restaurant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRestaurantID)
		return
	}

	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /restaurants/{id}/reservations - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(restaurantID)
	if err != nil {
		h.logger.Warn("POST /restaurants/{id}/reservations - Invalid date or time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var hoursErr *createReservation.OperatingHoursError

		switch {
		case errors.Is(err, createReservation.ErrRestaurantNotFound):
			h.logger.Warn("POST /restaurants/{id}/reservations - Restaurant not found: restaurant_id=%d", restaurantID)
			handlers.RespondNotFound(w, msgRestaurantNotFound)

		case errors.Is(err, createReservation.ErrRestaurantClosed):
			day := domain.WeekdayFromTime(useCaseReq.Date)
			h.logger.Warn("POST /restaurants/{id}/reservations - Closed: restaurant_id=%d, day=%s", restaurantID, day)
			handlers.RespondBadRequest(w, fmt.Sprintf("The restaurant is closed on %s", day))

		case errors.Is(err, createReservation.ErrInvalidDate):
			h.logger.Warn("POST /restaurants/{id}/reservations - Past date: restaurant_id=%d", restaurantID)
			handlers.RespondBadRequest(w, msgPastDate)

		case errors.As(err, &hoursErr):
			h.logger.Warn("POST /restaurants/{id}/reservations - Outside hours: restaurant_id=%d, time=%s",
				restaurantID, useCaseReq.StartTime)
			handlers.RespondBadRequest(w, hoursErr.Error())

		case errors.Is(err, createReservation.ErrInvalidTimeSlot):
			h.logger.Warn("POST /restaurants/{id}/reservations - Misaligned slot: restaurant_id=%d, time=%s",
				restaurantID, useCaseReq.StartTime)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createReservation.ErrTooLateToBook):
			h.logger.Warn("POST /restaurants/{id}/reservations - Lead time violated: restaurant_id=%d, time=%s",
				restaurantID, useCaseReq.StartTime)
			handlers.RespondBadRequest(w, msgTooLateToBook)

		case errors.Is(err, createReservation.ErrSlotNotAvailable):
			h.logger.Warn("POST /restaurants/{id}/reservations - Slot taken: restaurant_id=%d, time=%s",
				restaurantID, useCaseReq.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /restaurants/{id}/reservations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidBody)

		default:
			h.logger.Error("POST /restaurants/{id}/reservations - Failed: restaurant_id=%d, error=%v", restaurantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
