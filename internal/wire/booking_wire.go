package wire

import (
	"biograf/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wireBooking registers reservations, payments and tickets. Every route
// needs a token; handlers restrict non-admin callers to their own records.
func wireBooking(
	r chi.Router,
	reservationHandler *adaptor.ReservationHandler,
	paymentHandler *adaptor.PaymentHandler,
	ticketHandler *adaptor.TicketHandler,
	g guards,
) {
	r.Group(func(r chi.Router) {
		r.Use(g.auth)

		r.Route("/api/Reservations", func(r chi.Router) {
			r.Get("/GetAllReservations", reservationHandler.GetAllReservations)
			r.Get("/GetReservationById/{id}", reservationHandler.GetReservationByID)
			r.Get("/GetReservationsByUserId/{userId}", reservationHandler.GetReservationsByUserID)
			r.Post("/AddReservation", reservationHandler.AddReservationWithSeats)
			r.Post("/AddReservationWithSeats", reservationHandler.AddReservationWithSeats)
			r.Put("/UpdateReservationById/{id}", reservationHandler.UpdateReservationByID)
			r.Delete("/DeleteReservationById/{id}", reservationHandler.DeleteReservationByID)
		})

		r.Route("/api/Payments", func(r chi.Router) {
			r.Get("/GetAllPayments", paymentHandler.GetAllPayments)
			r.Get("/GetPaymentById/{id}", paymentHandler.GetPaymentByID)
			r.Get("/GetPaymentWithTickets/{id}", paymentHandler.GetPaymentWithTickets)
			r.Get("/GetPaymentsByUserId/{userId}", paymentHandler.GetPaymentsByUserID)
			r.Post("/AddPayment", paymentHandler.AddPayment)
			r.Post("/AddPaymentWithTickets", paymentHandler.AddPayment)
			r.Put("/UpdatePaymentById/{id}", paymentHandler.UpdatePaymentByID)
			r.Delete("/DeletePaymentById/{id}", paymentHandler.DeletePaymentByID)
		})

		r.Route("/api/Tickets", func(r chi.Router) {
			r.Get("/GetAllTickets", ticketHandler.GetAllTickets)
			r.Get("/GetTicketById/{id}", ticketHandler.GetTicketByID)
			r.Get("/GetUserTickets/{userId}", ticketHandler.GetUserTickets)
			r.Get("/GetTicketDetailsByPaymentId/{paymentId}", ticketHandler.GetTicketDetailsByPaymentID)
			r.Post("/AddTicket", ticketHandler.AddTicketsRepo)
			r.Post("/AddTicketsRepo", ticketHandler.AddTicketsRepo)
			r.Put("/UpdateTicketById/{id}", ticketHandler.UpdateTicketByID)
			r.Delete("/DeleteTicketById/{id}", ticketHandler.DeleteTicketByID)
		})
	})
}
