package update_table

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
	msgInvalidTableID      = "invalid table ID"
	msgInvalidBody         = "invalid request body"
	msgTableNotFound       = "table not found"
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

// Handle PUT /api/v1/restaurants/{id}/tables/{tableId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	restaurantID, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /restaurants/{id}/tables/{tableId} - Invalid restaurant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRestaurantID)
		return
	}

	tableID, err := strconv.ParseInt(vars["tableId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /restaurants/{id}/tables/{tableId} - Invalid table ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTableID)
		return
	}

	actor, ok := middleware.UserFromContext(r.Context())
	if !ok {
		h.logger.Warn("PUT /restaurants/{id}/tables/{tableId} - No authenticated user in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req models.UpdateTableRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /restaurants/{id}/tables/{tableId} - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	updated, err := h.service.UpdateTable(r.Context(), actor, restaurantID, tableID, &req)
	if err != nil {
		switch {
		case errors.Is(err, restaurants.ErrTableNotFound):
			h.logger.Warn("PUT /restaurants/{id}/tables/{tableId} - Table not found: table_id=%d", tableID)
			handlers.RespondNotFound(w, msgTableNotFound)

		case errors.Is(err, restaurants.ErrAccessDenied):
			h.logger.Warn("PUT /restaurants/{id}/tables/{tableId} - Access denied: restaurant_id=%d, user_id=%d",
				restaurantID, actor.ID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, restaurants.ErrInvalidInput):
			h.logger.Warn("PUT /restaurants/{id}/tables/{tableId} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /restaurants/{id}/tables/{tableId} - Failed: table_id=%d, error=%v", tableID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, updated)
}
