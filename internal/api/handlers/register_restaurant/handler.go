package register_restaurant

import (
	"errors"
	"net/http"

	"github.com/m04kA/RSV-ReservationService/internal/api/handlers"
	"github.com/m04kA/RSV-ReservationService/internal/api/middleware"
	"github.com/m04kA/RSV-ReservationService/internal/service/restaurants"
	"github.com/m04kA/RSV-ReservationService/internal/service/restaurants/models"
)

const (
	msgUnauthorized   = "authentication required"
	msgInvalidBody    = "invalid request body"
	msgDuplicateEmail = "restaurant with this email already exists"
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

// Handle POST /api/v1/restaurants
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.UserFromContext(r.Context())
	if !ok {
		h.logger.Warn("POST /restaurants - No authenticated user in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req models.RegisterRestaurantRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /restaurants - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	created, err := h.service.Register(r.Context(), actor, &req)
	if err != nil {
		switch {
		case errors.Is(err, restaurants.ErrDuplicateEmail):
			h.logger.Warn("POST /restaurants - Duplicate email: %s", req.Email)
			handlers.RespondBadRequest(w, msgDuplicateEmail)

		case errors.Is(err, restaurants.ErrInvalidInput):
			h.logger.Warn("POST /restaurants - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /restaurants - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, created)
}
