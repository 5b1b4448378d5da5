package response

import (
	"time"

	"travel-booking/internal/data/entity"
)

type DestinationResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	PackageID string    `json:"package_id"`
	CreatedAt time.Time `json:"created_at"`
}

func DestinationToResponse(destination *entity.Destination) *DestinationResponse {
	return &DestinationResponse{
		ID:        destination.ID.String(),
		Name:      destination.Name,
		PackageID: destination.PackageID.String(),
		CreatedAt: destination.CreatedAt,
	}
}
