package request

type CreatePassengerRequest struct {
	Name    string  `json:"name" validate:"required,min=1,max=200"`
	Mobile  string  `json:"mobile" validate:"required,min=6,max=20"`
	Tier    string  `json:"tier" validate:"required,oneof=STANDARD GOLD PREMIUM"`
	Balance float64 `json:"balance" validate:"gte=0"`
}

// Tier and balance are absent on purpose: tier is fixed at creation and the
// balance only moves through bookings.
type UpdatePassengerRequest struct {
	Name   *string `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Mobile *string `json:"mobile,omitempty" validate:"omitempty,min=6,max=20"`
}
