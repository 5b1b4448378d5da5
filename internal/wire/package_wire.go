package wire

import (
	"travel-booking/internal/adaptor"
	"travel-booking/pkg/middleware"
	"travel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wirePackage(
	r chi.Router,
	packageHandler *adaptor.TravelPackageHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Post("/api/packages", packageHandler.CreatePackage)
	r.Get("/api/packages", packageHandler.GetPackages)
	r.Get("/api/packages/{id}", packageHandler.GetPackageByID)
	r.Put("/api/packages/{id}", packageHandler.UpdatePackage)

	r.Group(func(r chi.Router) {
		r.Use(middleware.AdminKey(config.Admin, log))
		r.Delete("/api/packages/{id}", packageHandler.DeletePackage)
	})
}
