package wire

import (
	"biograf/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireShowtime(r chi.Router, showtimeHandler *adaptor.ShowtimeHandler, g guards) {
	r.Route("/api/Showtimes", func(r chi.Router) {
		// ==================== PUBLIC ROUTES ====================
		r.Get("/GetAllShowtimes", showtimeHandler.GetAllShowtimes)
		r.Get("/GetShowtimeById/{id}", showtimeHandler.GetShowtimeByID)
		r.Get("/GetShowtimeDetailsByShowtimeId/{showtimeId}", showtimeHandler.GetShowtimeDetails)
		r.Get("/GetShowtimesByMovieId/{movieId}", showtimeHandler.GetShowtimesByMovieID)
		r.Get("/GetShowtimesByMovies/{movieId}/Cinemas/{cinemaId}/Showtimes", showtimeHandler.GetShowtimesByMovieAndCinema)

		// ==================== ADMIN ROUTES ====================
		r.Group(func(r chi.Router) {
			r.Use(g.auth, g.admin)

			r.Post("/AddShowtime", showtimeHandler.AddShowtime)
			r.Put("/UpdateShowtimeById/{id}", showtimeHandler.UpdateShowtimeByID)
			r.Delete("/DeleteShowtimeById/{id}", showtimeHandler.DeleteShowtimeByID)
		})
	})
}
