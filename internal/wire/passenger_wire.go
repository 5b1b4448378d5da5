package wire

import (
	"travel-booking/internal/adaptor"
	"travel-booking/pkg/middleware"
	"travel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wirePassenger(
	r chi.Router,
	passengerHandler *adaptor.PassengerHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Post("/api/passengers", passengerHandler.CreatePassenger)
	r.Get("/api/passengers", passengerHandler.GetPassengers)
	r.Get("/api/passengers/{id}", passengerHandler.GetPassengerByID)
	r.Put("/api/passengers/{id}", passengerHandler.UpdatePassenger)

	// Destructive route behind the admin key
	r.Group(func(r chi.Router) {
		r.Use(middleware.AdminKey(config.Admin, log))
		r.Delete("/api/passengers/{id}", passengerHandler.DeletePassenger)
	})
}
