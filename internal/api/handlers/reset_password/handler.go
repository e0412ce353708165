package reset_password

import (
	"errors"
	"net/http"

	"github.com/m04kA/RSV-ReservationService/internal/api/handlers"
	"github.com/m04kA/RSV-ReservationService/internal/service/accounts"
	"github.com/m04kA/RSV-ReservationService/internal/service/accounts/models"
)

const (
	msgInvalidBody  = "invalid request body, expected token and password"
	msgInvalidToken = "invalid or expired token"
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

// Handle POST /api/v1/accounts/reset-password
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.ResetPasswordRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /accounts/reset-password - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	if err := h.service.ResetPassword(r.Context(), &req); err != nil {
		switch {
		case errors.Is(err, accounts.ErrInvalidToken), errors.Is(err, accounts.ErrUserNotFound):
			h.logger.Warn("POST /accounts/reset-password - Rejected token: %v", err)
			handlers.RespondBadRequest(w, msgInvalidToken)

		case errors.Is(err, accounts.ErrInvalidInput):
			h.logger.Warn("POST /accounts/reset-password - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /accounts/reset-password - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, map[string]string{"message": "password updated"})
}
