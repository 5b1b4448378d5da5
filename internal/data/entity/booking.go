package entity

import (
	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

// Valid reports whether s is one of the defined booking statuses.
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled:
		return true
	}
	return false
}

// Booking links a passenger to an activity within a destination.
// ChargedAmount snapshots the price actually debited at creation; the refund
// on cancellation pays back exactly this amount, so later changes to the
// activity cost never alter the refund.
type Booking struct {
	Base
	Reference     string        `db:"reference"`
	PassengerID   uuid.UUID     `db:"passenger_id"`
	ActivityID    uuid.UUID     `db:"activity_id"`
	DestinationID uuid.UUID     `db:"destination_id"`
	ChargedAmount float64       `db:"charged_amount"`
	Status        BookingStatus `db:"status"`
}
