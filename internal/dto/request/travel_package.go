package request

type CreateTravelPackageRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=200"`
	Description *string `json:"description,omitempty"`
	Capacity    int     `json:"capacity" validate:"gte=0"`
}

type UpdateTravelPackageRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description,omitempty"`
	Capacity    *int    `json:"capacity,omitempty" validate:"omitempty,gte=0"`
}
