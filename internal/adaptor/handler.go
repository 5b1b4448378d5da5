package adaptor

import (
	"errors"
	"net/http"
	"strings"

	"travel-booking/internal/usecase"
	"travel-booking/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Booking       *BookingHandler
	Passenger     *PassengerHandler
	Activity      *ActivityHandler
	Destination   *DestinationHandler
	TravelPackage *TravelPackageHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Booking:       NewBookingHandler(service.Booking, log),
		Passenger:     NewPassengerHandler(service.Passenger, log),
		Activity:      NewActivityHandler(service.Activity, log),
		Destination:   NewDestinationHandler(service.Destination, log),
		TravelPackage: NewTravelPackageHandler(service.TravelPackage, log),
	}
}

// respondServiceError maps service errors onto the JSON envelope. The typed
// booking errors get their own status codes; anything unrecognized is a 500.
func respondServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	var notFound *usecase.NotFoundError

	switch {
	case errors.As(err, &notFound):
		log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, usecase.ErrCapacityExceeded),
		errors.Is(err, usecase.ErrBookingCancelled):
		log.Warn(operation+" rejected",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseConflict(w, err.Error())

	case errors.Is(err, usecase.ErrInsufficientBalance):
		log.Warn(operation+" rejected",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseUnprocessable(w, err.Error())

	case strings.Contains(err.Error(), "validation failed"),
		strings.Contains(err.Error(), "invalid"):
		log.Warn("Invalid input for "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, err.Error(), nil)

	default:
		log.Error(operation+" failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
