package request

type CreateActivityRequest struct {
	Name          string  `json:"name" validate:"required,min=1,max=200"`
	Description   *string `json:"description,omitempty"`
	Cost          float64 `json:"cost" validate:"gte=0"`
	Capacity      int     `json:"capacity" validate:"gte=0"`
	DestinationID string  `json:"destination_id" validate:"required,uuid"`
}

// Capacity is absent on purpose: only the booking service moves it.
type UpdateActivityRequest struct {
	Name        *string  `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Description *string  `json:"description,omitempty"`
	Cost        *float64 `json:"cost,omitempty" validate:"omitempty,gte=0"`
}
