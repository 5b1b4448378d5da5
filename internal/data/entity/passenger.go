package entity

import (
	"github.com/google/uuid"
)

type PassengerTier string

const (
	TierStandard PassengerTier = "STANDARD"
	TierGold     PassengerTier = "GOLD"
	TierPremium  PassengerTier = "PREMIUM"
)

// Passenger owns a wallet balance and the list of bookings made against it.
// Balance and BookingIDs are written only by the booking service; name and
// mobile are managed by the passenger CRUD service. Tier is fixed at creation.
type Passenger struct {
	Base
	Name       string        `db:"name"`
	Mobile     string        `db:"mobile"`
	Tier       PassengerTier `db:"tier"`
	Balance    float64       `db:"balance"`
	BookingIDs []uuid.UUID   // ordered, loaded from passenger_bookings
}
