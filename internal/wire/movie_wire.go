package wire

import (
	"biograf/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireMovie(r chi.Router, movieHandler *adaptor.MovieHandler, genreHandler *adaptor.GenreHandler, g guards) {
	r.Route("/api/Movies", func(r chi.Router) {
		// ==================== PUBLIC ROUTES ====================
		r.Get("/GetAllMovies", movieHandler.GetAllMovies)
		r.Get("/GetMoviesWithGenres", movieHandler.GetMoviesWithGenres)
		r.Get("/GetActiveMovies", movieHandler.GetActiveMovies)
		r.Get("/GetActiveMoviesByGenre/{genreId}", movieHandler.GetActiveMoviesByGenre)
		r.Get("/GetMovieById/{id}", movieHandler.GetMovieByID)
		r.Get("/GetMovieByTitle/{title}", movieHandler.GetMovieByTitle)
		r.Get("/SearchMovieByTitle/{title}", movieHandler.SearchMovieByTitle)

		// ==================== ADMIN ROUTES ====================
		r.Group(func(r chi.Router) {
			r.Use(g.auth, g.admin)

			r.Post("/AddMovie", movieHandler.AddMovie)
			r.Put("/UpdateMovieById/{id}", movieHandler.UpdateMovieByID)
			r.Put("/UpdateMovieByTitle/{title}", movieHandler.UpdateMovieByTitle)
			r.Delete("/DeleteMovieById/{id}", movieHandler.DeleteMovieByID)
			r.Delete("/DeleteMovieByTitle/{title}", movieHandler.DeleteMovieByTitle)
		})
	})

	r.Route("/api/Genres", func(r chi.Router) {
		r.Get("/GetAllGenres", genreHandler.GetAllGenres)
		r.Get("/GetGenreById/{id}", genreHandler.GetGenreByID)
		r.Get("/GetGenreByName/{name}", genreHandler.GetGenreByName)

		r.Group(func(r chi.Router) {
			r.Use(g.auth, g.admin)

			r.Post("/AddGenre", genreHandler.AddGenre)
			r.Put("/UpdateGenreById/{id}", genreHandler.UpdateGenreByID)
			r.Put("/UpdateGenreByName/{name}", genreHandler.UpdateGenreByName)
			r.Delete("/DeleteGenreById/{id}", genreHandler.DeleteGenreByID)
			r.Delete("/DeleteGenreByName/{name}", genreHandler.DeleteGenreByName)
		})
	})
}
