package response

import (
	"time"

	"travel-booking/internal/data/entity"
)

type ActivityResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   *string   `json:"description,omitempty"`
	Cost          float64   `json:"cost"`
	Capacity      int       `json:"capacity"`
	DestinationID string    `json:"destination_id"`
	CreatedAt     time.Time `json:"created_at"`
}

func ActivityToResponse(activity *entity.Activity) *ActivityResponse {
	return &ActivityResponse{
		ID:            activity.ID.String(),
		Name:          activity.Name,
		Description:   activity.Description,
		Cost:          activity.Cost,
		Capacity:      activity.Capacity,
		DestinationID: activity.DestinationID.String(),
		CreatedAt:     activity.CreatedAt,
	}
}
