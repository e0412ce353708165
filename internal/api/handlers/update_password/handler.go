package update_password

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
	msgWrongPassword   = "current password is incorrect"
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

// Handle POST /api/v1/accounts/update-password
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.UserFromContext(r.Context())
	if !ok {
		h.logger.Warn("POST /accounts/update-password - No authenticated user in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req models.UpdatePasswordRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /accounts/update-password - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	if err := h.service.UpdatePassword(r.Context(), actor.ID, &req); err != nil {
		switch {
		case errors.Is(err, accounts.ErrInvalidCredentials):
			h.logger.Warn("POST /accounts/update-password - Wrong current password: user_id=%d", actor.ID)
			handlers.RespondForbidden(w, msgWrongPassword)

		case errors.Is(err, accounts.ErrUserNotFound):
			h.logger.Warn("POST /accounts/update-password - Not found: user_id=%d", actor.ID)
			handlers.RespondNotFound(w, msgAccountNotFound)

		case errors.Is(err, accounts.ErrInvalidInput):
			h.logger.Warn("POST /accounts/update-password - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /accounts/update-password - Failed: user_id=%d, error=%v", actor.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
