package wire

import (
	"travel-booking/internal/adaptor"
	"travel-booking/pkg/middleware"
	"travel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireDestination(
	r chi.Router,
	destinationHandler *adaptor.DestinationHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Post("/api/destinations", destinationHandler.CreateDestination)
	r.Get("/api/destinations/{id}", destinationHandler.GetDestinationByID)
	r.Get("/api/packages/{id}/destinations", destinationHandler.GetDestinationsByPackage)
	r.Put("/api/destinations/{id}", destinationHandler.UpdateDestination)

	r.Group(func(r chi.Router) {
		r.Use(middleware.AdminKey(config.Admin, log))
		r.Delete("/api/destinations/{id}", destinationHandler.DeleteDestination)
	})
}
