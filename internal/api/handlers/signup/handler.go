package signup

import (
	"errors"
	"net/http"

	"github.com/m04kA/RSV-ReservationService/internal/api/handlers"
	"github.com/m04kA/RSV-ReservationService/internal/service/accounts"
	"github.com/m04kA/RSV-ReservationService/internal/service/accounts/models"
)

const (
	msgInvalidBody    = "invalid request body, expected email, password and role"
	msgDuplicateEmail = "account with this email already exists"
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

// Handle POST /api/v1/accounts/signup
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.SignupRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /accounts/signup - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	user, err := h.service.Signup(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, accounts.ErrDuplicateEmail):
			h.logger.Warn("POST /accounts/signup - Duplicate email: %s", req.Email)
			handlers.RespondBadRequest(w, msgDuplicateEmail)

		case errors.Is(err, accounts.ErrInvalidInput):
			h.logger.Warn("POST /accounts/signup - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /accounts/signup - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, user)
}
