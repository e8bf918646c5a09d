package usecase

import (
	"slices"

	"biograf/internal/data/entity"
	"biograf/internal/data/repository"
	"biograf/pkg/apperror"
	"biograf/pkg/cache"
	"biograf/pkg/events"
	"biograf/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth        AuthService
	User        UserService
	Movie       MovieService
	Genre       GenreService
	Cinema      CinemaService
	Hall        HallService
	Seat        SeatService
	Showtime    ShowtimeService
	Reservation ReservationService
	Payment     PaymentService
	Ticket      TicketService
}

// Infra holds optional infrastructure. Nil fields fall back to no-op
// implementations.
type Infra struct {
	ShowtimeCache cache.Store[entity.ShowtimeDetails]
	Events        events.Publisher
}

func NewService(repo *repository.Repository, config *utils.Config, infra Infra, log *zap.Logger) *Service {
	if infra.ShowtimeCache == nil {
		infra.ShowtimeCache = cache.NoopStore[entity.ShowtimeDetails]{}
	}
	if infra.Events == nil {
		infra.Events = events.NoopPublisher{}
	}

	return &Service{
		Auth:        NewAuthService(repo.User, config.JWT, log),
		User:        NewUserService(repo.User, config.App.BcryptCost, log),
		Movie:       NewMovieService(repo, infra.ShowtimeCache, log),
		Genre:       NewGenreService(repo.Genre, log),
		Cinema:      NewCinemaService(repo.Cinema, infra.ShowtimeCache, log),
		Hall:        NewHallService(repo, infra.ShowtimeCache, log),
		Seat:        NewSeatService(repo.Seat, log),
		Showtime:    NewShowtimeService(repo.Showtime, infra.ShowtimeCache, log),
		Reservation: NewReservationService(repo.Reservation, log),
		Payment:     NewPaymentService(repo.Payment, log),
		Ticket:      NewTicketService(repo.Ticket, infra.Events, log),
	}
}

// ==================== HELPER METHODS ====================

// requireIDs checks that every named id is positive.
func requireIDs(ids map[string]int64) error {
	names := make([]string, 0, len(ids))
	for name := range ids {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		if ids[name] <= 0 {
			return apperror.InvalidInput("%s must be a positive integer", name)
		}
	}
	return nil
}

// uniqueIDs drops duplicates and keeps the first occurrence order. Any
// non-positive id is rejected.
func uniqueIDs(name string, ids []int64) ([]int64, error) {
	out := make([]int64, 0, len(ids))
	seen := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		if id <= 0 {
			return nil, apperror.InvalidInput("%s must contain positive integers", name)
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out, nil
}
