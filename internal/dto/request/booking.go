package request

type CreateBookingRequest struct {
	PassengerID   string `json:"passenger_id" validate:"required,uuid"`
	ActivityID    string `json:"activity_id" validate:"required,uuid"`
	DestinationID string `json:"destination_id" validate:"required,uuid"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=PENDING CONFIRMED CANCELLED"`
}
