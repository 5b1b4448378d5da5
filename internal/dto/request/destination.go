package request

type CreateDestinationRequest struct {
	Name      string `json:"name" validate:"required,min=1,max=200"`
	PackageID string `json:"package_id" validate:"required,uuid"`
}

type UpdateDestinationRequest struct {
	Name *string `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
}
