package entity

import (
	"github.com/google/uuid"
)

// Activity is a bookable experience at a destination. Capacity counts the
// remaining slots (0 = fully booked) and is decremented/incremented only by
// the booking service. Cost is the undiscounted price per booking.
type Activity struct {
	Base
	Name          string    `db:"name"`
	Description   *string   `db:"description"`
	Cost          float64   `db:"cost"`
	Capacity      int       `db:"capacity"`
	DestinationID uuid.UUID `db:"destination_id"`
}
