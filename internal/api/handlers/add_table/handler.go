package add_table

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

// Handle POST /api/v1/restaurants/{id}/tables
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	restaurantID, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /restaurants/{id}/tables - Invalid restaurant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRestaurantID)
		return
	}

	actor, ok := middleware.UserFromContext(r.Context())
	if !ok {
		h.logger.Warn("POST /restaurants/{id}/tables - No authenticated user in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req models.AddTableRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /restaurants/{id}/tables - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	created, err := h.service.AddTable(r.Context(), actor, restaurantID, &req)
	if err != nil {
		switch {
		case errors.Is(err, restaurants.ErrRestaurantNotFound):
			h.logger.Warn("POST /restaurants/{id}/tables - Restaurant not found: restaurant_id=%d", restaurantID)
			handlers.RespondNotFound(w, msgRestaurantNotFound)

		case errors.Is(err, restaurants.ErrAccessDenied):
			h.logger.Warn("POST /restaurants/{id}/tables - Access denied: restaurant_id=%d, user_id=%d",
				restaurantID, actor.ID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, restaurants.ErrInvalidInput):
			h.logger.Warn("POST /restaurants/{id}/tables - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /restaurants/{id}/tables - Failed: restaurant_id=%d, error=%v", restaurantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, created)
}
