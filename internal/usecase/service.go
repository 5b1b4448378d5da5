package usecase

import (
	"travel-booking/internal/data/repository"

	"go.uber.org/zap"
)

type Service struct {
	Booking       BookingService
	Passenger     PassengerService
	Activity      ActivityService
	Destination   DestinationService
	TravelPackage TravelPackageService
}

func NewService(repo *repository.Repository, log *zap.Logger) *Service {
	return &Service{
		Booking:       NewBookingService(repo, log),
		Passenger:     NewPassengerService(repo, log),
		Activity:      NewActivityService(repo, log),
		Destination:   NewDestinationService(repo, log),
		TravelPackage: NewTravelPackageService(repo, log),
	}
}
