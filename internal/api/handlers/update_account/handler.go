package update_account

import (
	"errors"
	"net/http"

	"github.com/m04kA/RSV-ReservationService/internal/api/handlers"
	"github.com/m04kA/RSV-ReservationService/internal/api/middleware"
	"github.com/m04kA/RSV-ReservationService/internal/service/accounts"
	"github.com/m04kA/RSV-ReservationService/internal/service/accounts/models"
)

const (
	msgUnauthorized    = "authentication required"
	msgInvalidBody     = "invalid request body"
	msgAccountNotFound = "account not found"
)

type Handler struct {
	service AccountsService
	logger  Logger
}

func NewHandler(service AccountsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/accounts
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.UserFromContext(r.Context())
	if !ok {
		h.logger.Warn("PUT /accounts - No authenticated user in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req models.UpdateAccountRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /accounts - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	updated, err := h.service.UpdateAccount(r.Context(), actor.ID, &req)
	if err != nil {
		switch {
		case errors.Is(err, accounts.ErrUserNotFound):
			h.logger.Warn("PUT /accounts - Not found: user_id=%d", actor.ID)
			handlers.RespondNotFound(w, msgAccountNotFound)

		case errors.Is(err, accounts.ErrDuplicateEmail):
			h.logger.Warn("PUT /accounts - Duplicate email: user_id=%d", actor.ID)
			handlers.RespondBadRequest(w, accounts.ErrDuplicateEmail.Error())

		case errors.Is(err, accounts.ErrInvalidInput):
			h.logger.Warn("PUT /accounts - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /accounts - Failed: user_id=%d, error=%v", actor.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, updated)
}
