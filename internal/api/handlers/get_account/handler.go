package get_account

import (
	"errors"
	"net/http"

	"github.com/m04kA/RSV-ReservationService/internal/api/handlers"
	"github.com/m04kA/RSV-ReservationService/internal/api/middleware"
	"github.com/m04kA/RSV-ReservationService/internal/service/accounts"
)

const (
	msgUnauthorized    = "authentication required"
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

// Handle GET /api/v1/accounts
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.UserFromContext(r.Context())
	if !ok {
		h.logger.Warn("GET /accounts - No authenticated user in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	account, err := h.service.Get(r.Context(), actor.ID)
	if err != nil {
		switch {
		case errors.Is(err, accounts.ErrUserNotFound):
			h.logger.Warn("GET /accounts - Not found: user_id=%d", actor.ID)
			handlers.RespondNotFound(w, msgAccountNotFound)

		default:
			h.logger.Error("GET /accounts - Failed: user_id=%d, error=%v", actor.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, account)
}
