package wire

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"biograf/internal/data/repository"
	"biograf/pkg/middleware"
	"biograf/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConfig() *utils.Config {
	return &utils.Config{
		App: utils.AppConfig{Name: "biograf", CORSOrigins: []string{"*"}},
		JWT: utils.JWTConfig{
			Secret:        "wire-secret",
			ExpiryMinutes: 5,
			Issuer:        "biograf",
			Audience:      "biograf-clients",
		},
	}
}

func token(t *testing.T, cfg *utils.Config, userID int64, role string) string {
	t.Helper()
	tok, err := utils.NewAccessToken(cfg.JWT, userID, "Test", role)
	require.NoError(t, err)
	return "Bearer " + tok.Token
}

// Every case below is answered by middleware or routing before a
// repository is touched, so the repositories stay empty.
func TestRouterAccessPolicy(t *testing.T) {
	cfg := testConfig()
	app := Wiring(&repository.Repository{}, cfg, Infra{}, zap.NewNop())

	tests := []struct {
		name   string
		method string
		path   string
		auth   string
		want   int
	}{
		{"health", http.MethodGet, "/health", "", http.StatusOK},
		{"unknown route", http.MethodGet, "/api/Nope", "", http.StatusNotFound},
		{"catalog write needs token", http.MethodPost, "/api/Movies/AddMovie", "", http.StatusUnauthorized},
		{"catalog write needs admin", http.MethodPost, "/api/Movies/AddMovie", token(t, cfg, 4, "user"), http.StatusForbidden},
		{"hall delete needs admin", http.MethodDelete, "/api/Halls/DeleteHallByName/1/Studio%201", token(t, cfg, 4, "user"), http.StatusForbidden},
		{"reservations need token", http.MethodGet, "/api/Reservations/GetAllReservations", "", http.StatusUnauthorized},
		{"tickets need token", http.MethodPost, "/api/Tickets/AddTicketsRepo", "", http.StatusUnauthorized},
		{"reserve seats needs token", http.MethodPost, "/api/Seats/ReserveSeats", "", http.StatusUnauthorized},
		{"users list needs admin", http.MethodGet, "/api/Users/GetAllUsers", token(t, cfg, 4, "user"), http.StatusForbidden},
		{"other user's payments", http.MethodGet, "/api/Payments/GetPaymentsByUserId/9", token(t, cfg, 4, "user"), http.StatusForbidden},
		{"payment with tickets alias needs token", http.MethodPost, "/api/Payments/AddPaymentWithTickets", "", http.StatusUnauthorized},
		{"payment with tickets alias is routed", http.MethodPost, "/api/Payments/AddPaymentWithTickets", token(t, cfg, 4, "user"), http.StatusBadRequest},
		{"bad path id", http.MethodGet, "/api/Movies/GetMovieById/0", "", http.StatusBadRequest},
		{"expired or forged token", http.MethodGet, "/api/Tickets/GetAllTickets", "Bearer forged", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.auth != "" {
				req.Header.Set("Authorization", tt.auth)
			}
			rec := httptest.NewRecorder()
			app.Router.ServeHTTP(rec, req)

			assert.Equal(t, tt.want, rec.Code)
			assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))
		})
	}
}
