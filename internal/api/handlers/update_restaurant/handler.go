package update_restaurant

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/RSV-ReservationService/internal/api/handlers"
	"github.com/m04kA/RSV-ReservationService/internal/api/middleware"
	"github.com/m04kA/RSV-ReservationService/internal/service/restaurants"
	"github.com/m04kA/RSV-ReservationService/internal/service/restaurants/models"
)

const (
	msgUnauthorized        = "authentication required"
	msgForbidden           = "you may not manage this restaurant"
	msgInvalidRestaurantID = "invalid restaurant ID"
	msgInvalidBody         = "invalid request body"
	msgRestaurantNotFound  = "restaurant not found"
)

type Handler struct {
	service RestaurantsService
	logger  Logger
}

func NewHandler(service RestaurantsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/restaurants/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	id, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /restaurants/{id} - Invalid restaurant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRestaurantID)
		return
	}

	actor, ok := middleware.UserFromContext(r.Context())
	if !ok {
		h.logger.Warn("PUT /restaurants/{id} - No authenticated user in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req models.UpdateRestaurantRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /restaurants/{id} - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	updated, err := h.service.Update(r.Context(), actor, id, &req)
	if err != nil {
		switch {
		case errors.Is(err, restaurants.ErrRestaurantNotFound):
			h.logger.Warn("PUT /restaurants/{id} - Not found: restaurant_id=%d", id)
			handlers.RespondNotFound(w, msgRestaurantNotFound)

		case errors.Is(err, restaurants.ErrAccessDenied):
			h.logger.Warn("PUT /restaurants/{id} - Access denied: restaurant_id=%d, user_id=%d", id, actor.ID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, restaurants.ErrInvalidInput):
			h.logger.Warn("PUT /restaurants/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /restaurants/{id} - Failed: restaurant_id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, updated)
}
