package get_restaurant

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/RSV-ReservationService/internal/api/handlers"
	"github.com/m04kA/RSV-ReservationService/internal/service/restaurants"
)

const (
	msgInvalidRestaurantID = "invalid restaurant ID"
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

// Handle GET /api/v1/restaurants/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	id, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /restaurants/{id} - Invalid restaurant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRestaurantID)
		return
	}

	restaurant, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, restaurants.ErrRestaurantNotFound):
			h.logger.Warn("GET /restaurants/{id} - Not found: restaurant_id=%d", id)
			handlers.RespondNotFound(w, msgRestaurantNotFound)

		default:
			h.logger.Error("GET /restaurants/{id} - Failed: restaurant_id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, restaurant)
}
