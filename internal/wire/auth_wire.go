package wire

import (
	"biograf/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler, g guards) {
	// ==================== PUBLIC ROUTES ====================
	// Login dibatasi per IP
	r.With(g.login).Post("/api/Auth/login", authHandler.Login)
}
