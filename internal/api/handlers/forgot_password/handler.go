package forgot_password

import (
	"net/http"

	"github.com/m04kA/RSV-ReservationService/internal/api/handlers"
	"github.com/m04kA/RSV-ReservationService/internal/service/accounts/models"
)

const msgInvalidBody = "invalid request body, expected email"

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

// Handle POST /api/v1/accounts/forgot-password
// Responds 200 regardless of whether the email has an account, so the
// endpoint cannot be used to probe for registered addresses.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.ForgotPasswordRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /accounts/forgot-password - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	if err := h.service.ForgotPassword(r.Context(), req.Email); err != nil {
		h.logger.Error("POST /accounts/forgot-password - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, map[string]string{
		"message": "if the email is registered, a reset link has been sent",
	})
}
