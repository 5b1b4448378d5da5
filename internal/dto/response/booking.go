package response

import (
	"time"

	"travel-booking/internal/data/entity"
)

type BookingResponse struct {
	ID            string    `json:"id"`
	Reference     string    `json:"reference"`
	PassengerID   string    `json:"passenger_id"`
	ActivityID    string    `json:"activity_id"`
	DestinationID string    `json:"destination_id"`
	ChargedAmount float64   `json:"charged_amount"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func BookingToResponse(booking *entity.Booking) *BookingResponse {
	return &BookingResponse{
		ID:            booking.ID.String(),
		Reference:     booking.Reference,
		PassengerID:   booking.PassengerID.String(),
		ActivityID:    booking.ActivityID.String(),
		DestinationID: booking.DestinationID.String(),
		ChargedAmount: booking.ChargedAmount,
		Status:        string(booking.Status),
		CreatedAt:     booking.CreatedAt,
		UpdatedAt:     booking.UpdatedAt,
	}
}
