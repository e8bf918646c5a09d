// internal/wire/wire.go
package wire

import (
	"net/http"

	"biograf/internal/adaptor"
	"biograf/internal/data/repository"
	"biograf/internal/usecase"
	"biograf/pkg/middleware"
	"biograf/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// App menyimpan semua dependencies
type App struct {
	Router *chi.Mux
}

// Infra is the optional infrastructure. A nil Redis disables rate limiting.
type Infra struct {
	usecase.Infra
	Redis *redis.Client
}

// guards are the middleware chains shared by the route groups.
type guards struct {
	auth  func(http.Handler) http.Handler
	admin func(http.Handler) http.Handler
	login func(http.Handler) http.Handler
}

// Wiring menginisialisasi semua dependencies
func Wiring(repo *repository.Repository, config *utils.Config, infra Infra, logger *zap.Logger) *App {
	service := usecase.NewService(repo, config, infra.Infra, logger)
	handler := adaptor.NewHandler(service, logger)

	g := guards{
		auth:  middleware.JWTAuth(config.JWT, logger),
		admin: middleware.Admin(logger),
		login: middleware.RateLimit(infra.Redis, config.RateLimit, "login", logger),
	}

	return &App{
		Router: setupRouter(handler, g, config, logger),
	}
}

// setupRouter konfigurasi Chi router
func setupRouter(handler *adaptor.Handler, g guards, config *utils.Config, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.App.CORSOrigins))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseNotFound(w, "Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseJSON(w, http.StatusMethodNotAllowed, false, "Method not allowed", nil, nil)
	})

	// Apply routes
	wireAuth(r, handler.Auth, g)
	wireUser(r, handler.User, g)
	wireMovie(r, handler.Movie, handler.Genre, g)
	wireCinema(r, handler.Cinema, handler.Hall, g)
	wireSeat(r, handler.Seat, g)
	wireShowtime(r, handler.Showtime, g)
	wireBooking(r, handler.Reservation, handler.Payment, handler.Ticket, g)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
