package update_reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/RSV-ReservationService/internal/api/handlers"
	"github.com/m04kA/RSV-ReservationService/internal/service/reservations"
	"github.com/m04kA/RSV-ReservationService/internal/service/reservations/models"
)

const (
	msgInvalidReservationID = "invalid reservation ID"
	msgInvalidBody          = "invalid request body"
	msgReservationNotFound  = "reservation not found"
	msgRestaurantNotFound   = "restaurant not found"
	msgCannotModify         = "reservation can no longer be modified"
	msgRestaurantClosed     = "the restaurant is closed on the requested day"
	msgOutsideHours         = "time is outside operating hours"
	msgInvalidTimeSlot      = "time does not match a reservation slot"
	msgSlotNotAvailable     = "the requested slot is no longer available"
)

type Handler struct {
	service ReservationsService
	logger  Logger
}

func NewHandler(service ReservationsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/reservations/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	id, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /reservations/{id} - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	var req models.UpdateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /reservations/{id} - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	updated, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("PUT /reservations/{id} - Not found: reservation_id=%d", id)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, reservations.ErrRestaurantNotFound):
			h.logger.Warn("PUT /reservations/{id} - Restaurant gone: reservation_id=%d", id)
			handlers.RespondNotFound(w, msgRestaurantNotFound)

		case errors.Is(err, reservations.ErrCannotModify):
			h.logger.Warn("PUT /reservations/{id} - Not modifiable: reservation_id=%d", id)
			handlers.RespondBadRequest(w, msgCannotModify)

		case errors.Is(err, reservations.ErrRestaurantClosed):
			h.logger.Warn("PUT /reservations/{id} - Closed day: reservation_id=%d", id)
			handlers.RespondBadRequest(w, msgRestaurantClosed)

		case errors.Is(err, reservations.ErrOutsideOperatingHours):
			h.logger.Warn("PUT /reservations/{id} - Outside hours: reservation_id=%d", id)
			handlers.RespondBadRequest(w, msgOutsideHours)

		case errors.Is(err, reservations.ErrInvalidTimeSlot):
			h.logger.Warn("PUT /reservations/{id} - Misaligned slot: reservation_id=%d", id)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, reservations.ErrSlotNotAvailable):
			h.logger.Warn("PUT /reservations/{id} - Slot taken: reservation_id=%d", id)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("PUT /reservations/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidBody)

		default:
			h.logger.Error("PUT /reservations/{id} - Failed: reservation_id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, updated)
}
