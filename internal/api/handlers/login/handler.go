package login

import (
	"errors"
	"net/http"

	"github.com/m04kA/RSV-ReservationService/internal/api/handlers"
	"github.com/m04kA/RSV-ReservationService/internal/service/accounts"
	"github.com/m04kA/RSV-ReservationService/internal/service/accounts/models"
)

const (
	msgInvalidBody        = "invalid request body, expected email and password"
	msgInvalidCredentials = "invalid email or password"
	msgNotVerified        = "email address is not verified"
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

// Handle POST /api/v1/accounts/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /accounts/login - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.service.Login(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, accounts.ErrInvalidCredentials):
			h.logger.Warn("POST /accounts/login - Bad credentials for email=%s", req.Email)
			handlers.RespondUnauthorized(w, msgInvalidCredentials)

		case errors.Is(err, accounts.ErrNotVerified):
			h.logger.Warn("POST /accounts/login - Unverified account email=%s", req.Email)
			handlers.RespondForbidden(w, msgNotVerified)

		default:
			h.logger.Error("POST /accounts/login - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
