package response

import (
	"time"

	"travel-booking/internal/data/entity"
)

type TravelPackageResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Capacity    int       `json:"capacity"`
	CreatedAt   time.Time `json:"created_at"`
}

func TravelPackageToResponse(pkg *entity.TravelPackage) *TravelPackageResponse {
	return &TravelPackageResponse{
		ID:          pkg.ID.String(),
		Name:        pkg.Name,
		Description: pkg.Description,
		Capacity:    pkg.Capacity,
		CreatedAt:   pkg.CreatedAt,
	}
}
