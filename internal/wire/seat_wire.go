package wire

import (
	"biograf/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireSeat(r chi.Router, seatHandler *adaptor.SeatHandler, g guards) {
	r.Route("/api/Seats", func(r chi.Router) {
		// ==================== PUBLIC ROUTES ====================
		r.Get("/GetAllSeats", seatHandler.GetAllSeats)
		r.Get("/GetSeatById/{id}", seatHandler.GetSeatByID)
		r.Get("/GetSeatsByHallId/{hallId}", seatHandler.GetSeatsByHallID)
		r.Get("/GetSeatsByHall/{hallId}/Showtime/{showtimeId}", seatHandler.GetSeatsByHallAndShowtime)
		r.Get("/GetAvailableSeatsByShowtimeId/{showtimeId}", seatHandler.GetAvailableSeatsByShowtime)

		// ==================== PROTECTED ROUTES ====================
		r.With(g.auth).Post("/ReserveSeats", seatHandler.ReserveSeats)

		// ==================== ADMIN ROUTES ====================
		r.Group(func(r chi.Router) {
			r.Use(g.auth, g.admin)

			r.Post("/AddSeat", seatHandler.AddSeat)
			r.Put("/UpdateSeatById/{id}", seatHandler.UpdateSeatByID)
			r.Delete("/DeleteSeatById/{id}", seatHandler.DeleteSeatByID)
			r.Delete("/DeleteSeatByRowByNumber", seatHandler.DeleteSeatByRowAndNumber)
		})
	})
}
