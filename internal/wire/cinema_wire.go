package wire

import (
	"biograf/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCinema(r chi.Router, cinemaHandler *adaptor.CinemaHandler, hallHandler *adaptor.HallHandler, g guards) {
	r.Route("/api/Cinemas", func(r chi.Router) {
		// ==================== PUBLIC ROUTES ====================
		r.Get("/GetAllCinemas", cinemaHandler.GetAllCinemas)
		r.Get("/GetCinemaById/{id}", cinemaHandler.GetCinemaByID)
		r.Get("/GetCinemasByMovieId/{movieId}", cinemaHandler.GetCinemasByMovieID)

		// ==================== ADMIN ROUTES ====================
		r.Group(func(r chi.Router) {
			r.Use(g.auth, g.admin)

			r.Post("/AddCinema", cinemaHandler.AddCinema)
			r.Put("/UpdateCinemaById/{id}", cinemaHandler.UpdateCinemaByID)
			r.Put("/UpdateCinemaByName/{name}", cinemaHandler.UpdateCinemaByName)
			r.Delete("/DeleteCinemaById/{id}", cinemaHandler.DeleteCinemaByID)
			r.Delete("/DeleteCinemaByName/{name}", cinemaHandler.DeleteCinemaByName)
		})
	})

	r.Route("/api/Halls", func(r chi.Router) {
		r.Get("/GetAllHalls", hallHandler.GetAllHalls)
		r.Get("/GetHallById/{id}", hallHandler.GetHallByID)
		r.Get("/GetHallsByCinemaId/{cinemaId}", hallHandler.GetHallsByCinemaID)
		r.Get("/GetHallIdByShowtimeId/{showtimeId}", hallHandler.GetHallIDByShowtimeID)

		r.Group(func(r chi.Router) {
			r.Use(g.auth, g.admin)

			r.Post("/AddHall", hallHandler.AddHall)
			r.Put("/UpdateHallById/{id}", hallHandler.UpdateHallByID)
			r.Put("/UpdateHallByName/{cinemaId}/{name}", hallHandler.UpdateHallByName)
			r.Delete("/DeleteHallById/{id}", hallHandler.DeleteHallByID)
			r.Delete("/DeleteHallByName/{cinemaId}/{name}", hallHandler.DeleteHallByName)
		})
	})
}
