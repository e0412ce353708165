package get_available_slots

import (
	"context"

	getAvailableSlots "github.com/m04kA/RSV-ReservationService/internal/usecase/get_available_slots"
)

// GetAvailableSlotsUseCase is the availability engine entry point
type GetAvailableSlotsUseCase interface {
	Execute(ctx context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error)
}

// Logger is the logging interface
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
