package response

import (
	"time"

	"travel-booking/internal/data/entity"
)

type PassengerResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Mobile     string    `json:"mobile"`
	Tier       string    `json:"tier"`
	Balance    float64   `json:"balance"`
	BookingIDs []string  `json:"booking_ids"`
	CreatedAt  time.Time `json:"created_at"`
}

func PassengerToResponse(passenger *entity.Passenger) *PassengerResponse {
	bookingIDs := make([]string, len(passenger.BookingIDs))
	for i, id := range passenger.BookingIDs {
		bookingIDs[i] = id.String()
	}

	return &PassengerResponse{
		ID:         passenger.ID.String(),
		Name:       passenger.Name,
		Mobile:     passenger.Mobile,
		Tier:       string(passenger.Tier),
		Balance:    passenger.Balance,
		BookingIDs: bookingIDs,
		CreatedAt:  passenger.CreatedAt,
	}
}
