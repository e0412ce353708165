package cancel_reservation

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
	msgCannotCancel         = "reservation can no longer be cancelled"
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

// Handle POST /api/v1/reservations/{id}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	id, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /reservations/{id}/cancel - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	var req models.CancelReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations/{id}/cancel - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	if err := h.service.Cancel(r.Context(), id, &req); err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("POST /reservations/{id}/cancel - Not found: reservation_id=%d", id)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, reservations.ErrCannotModify):
			h.logger.Warn("POST /reservations/{id}/cancel - Not cancellable: reservation_id=%d", id)
			handlers.RespondBadRequest(w, msgCannotCancel)

		default:
			h.logger.Error("POST /reservations/{id}/cancel - Failed: reservation_id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, nil)
}
