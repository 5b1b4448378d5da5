package wire

import (
	"travel-booking/internal/adaptor"
	"travel-booking/pkg/middleware"
	"travel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireActivity(
	r chi.Router,
	activityHandler *adaptor.ActivityHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Post("/api/activities", activityHandler.CreateActivity)
	r.Get("/api/activities/{id}", activityHandler.GetActivityByID)
	r.Get("/api/destinations/{id}/activities", activityHandler.GetActivitiesByDestination)
	r.Put("/api/activities/{id}", activityHandler.UpdateActivity)

	r.Group(func(r chi.Router) {
		r.Use(middleware.AdminKey(config.Admin, log))
		r.Delete("/api/activities/{id}", activityHandler.DeleteActivity)
	})
}
