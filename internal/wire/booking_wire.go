package wire

import (
	"travel-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler) {
	// POST /api/bookings - Reserve an activity slot for a passenger
	r.Post("/api/bookings", bookingHandler.CreateBooking)

	// GET /api/bookings/{id} - Booking details
	r.Get("/api/bookings/{id}", bookingHandler.GetBookingByID)

	// PUT /api/bookings/{id}/status - Confirm or cancel a booking
	r.Put("/api/bookings/{id}/status", bookingHandler.UpdateBookingStatus)

	// GET /api/passengers/{id}/bookings - Booking history of a passenger
	r.Get("/api/passengers/{id}/bookings", bookingHandler.GetPassengerBookings)
}
