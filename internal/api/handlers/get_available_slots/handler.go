package get_available_slots

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/RSV-ReservationService/internal/api/handlers"
	"github.com/m04kA/RSV-ReservationService/internal/domain"
	getAvailableSlots "github.com/m04kA/RSV-ReservationService/internal/usecase/get_available_slots"
)

const (
	msgInvalidRestaurantID = "invalid restaurant ID"
	msgInvalidBody         = "invalid request body, expected reserveDate with date YYYY-MM-DD and optional time HH:MM"
	msgRestaurantNotFound  = "restaurant not found"
	msgPastDate            = "Reservation date cannot be in the past"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/restaurants/{id}/availability
// Body: {"reserveDate": {"date": "2025-10-15", "time": "18:30"}}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	restaurantID, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /restaurants/{id}/availability - Invalid restaurant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRestaurantID)
		return
	}

	var req CheckAvailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /restaurants/{id}/availability - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(restaurantID)
	if err != nil {
		h.logger.Warn("POST /restaurants/{id}/availability - Invalid date or time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrRestaurantNotFound):
			h.logger.Warn("POST /restaurants/{id}/availability - Restaurant not found: restaurant_id=%d", restaurantID)
			handlers.RespondNotFound(w, msgRestaurantNotFound)

		case errors.Is(err, getAvailableSlots.ErrRestaurantClosed):
			day := domain.WeekdayFromTime(useCaseReq.Date)
			h.logger.Warn("POST /restaurants/{id}/availability - Closed: restaurant_id=%d, day=%s", restaurantID, day)
			handlers.RespondBadRequest(w, fmt.Sprintf("The restaurant is closed on %s", day))

		case errors.Is(err, getAvailableSlots.ErrInvalidDate):
			h.logger.Warn("POST /restaurants/{id}/availability - Past date: restaurant_id=%d, date=%s",
				restaurantID, useCaseReq.Date.Format(domain.DateFormat))
			handlers.RespondBadRequest(w, msgPastDate)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("POST /restaurants/{id}/availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidBody)

		default:
			h.logger.Error("POST /restaurants/{id}/availability - Failed: restaurant_id=%d, error=%v", restaurantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
