package verify_email

import (
	"errors"
	"net/http"

	"github.com/m04kA/RSV-ReservationService/internal/api/handlers"
	"github.com/m04kA/RSV-ReservationService/internal/service/accounts"
)

const (
	msgMissingToken = "token is required"
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

// Handle GET /api/v1/accounts/verify-email?token=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		h.logger.Warn("GET /accounts/verify-email - Missing token")
		handlers.RespondBadRequest(w, msgMissingToken)
		return
	}

	if err := h.service.VerifyEmail(r.Context(), token); err != nil {
		switch {
		case errors.Is(err, accounts.ErrInvalidToken), errors.Is(err, accounts.ErrUserNotFound):
			h.logger.Warn("GET /accounts/verify-email - Rejected token: %v", err)
			handlers.RespondBadRequest(w, msgInvalidToken)

		default:
			h.logger.Error("GET /accounts/verify-email - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, map[string]string{"message": "email verified"})
}
