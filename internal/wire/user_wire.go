package wire

import (
	"biograf/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireUser(r chi.Router, userHandler *adaptor.UserHandler, g guards) {
	r.Route("/api/Users", func(r chi.Router) {
		// ==================== PUBLIC ROUTES ====================
		// Registration
		r.Post("/AddUser", userHandler.AddUser)

		// ==================== ADMIN ROUTES ====================
		r.Group(func(r chi.Router) {
			r.Use(g.auth)  // Must be authenticated
			r.Use(g.admin) // Must be admin

			r.Get("/GetAllUsers", userHandler.GetAllUsers)
			r.Get("/GetUserById/{id}", userHandler.GetUserByID)
			r.Post("/AddAdmin", userHandler.AddAdmin)
			r.Put("/UpdateUserById/{id}", userHandler.UpdateUserByID)
			r.Delete("/DeleteUserById/{id}", userHandler.DeleteUserByID)
		})
	})
}
