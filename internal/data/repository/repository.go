package repository

import (
	"travel-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Passenger     PassengerRepository
	Activity      ActivityRepository
	Destination   DestinationRepository
	TravelPackage TravelPackageRepository
	Booking       BookingRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Passenger:     NewPassengerRepository(db, log),
		Activity:      NewActivityRepository(db, log),
		Destination:   NewDestinationRepository(db, log),
		TravelPackage: NewTravelPackageRepository(db, log),
		Booking:       NewBookingRepository(db, log),
	}
}
