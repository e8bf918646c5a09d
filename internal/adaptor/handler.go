package adaptor

import (
	"encoding/json"
	"net/http"

	"biograf/internal/data/entity"
	"biograf/internal/usecase"
	"biograf/pkg/apperror"
	"biograf/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20

type Handler struct {
	Auth        *AuthHandler
	User        *UserHandler
	Movie       *MovieHandler
	Genre       *GenreHandler
	Cinema      *CinemaHandler
	Hall        *HallHandler
	Seat        *SeatHandler
	Showtime    *ShowtimeHandler
	Reservation *ReservationHandler
	Payment     *PaymentHandler
	Ticket      *TicketHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:        NewAuthHandler(service.Auth, log),
		User:        NewUserHandler(service.User, log),
		Movie:       NewMovieHandler(service.Movie, log),
		Genre:       NewGenreHandler(service.Genre, log),
		Cinema:      NewCinemaHandler(service.Cinema, log),
		Hall:        NewHallHandler(service.Hall, log),
		Seat:        NewSeatHandler(service.Seat, service.Reservation, log),
		Showtime:    NewShowtimeHandler(service.Showtime, log),
		Reservation: NewReservationHandler(service.Reservation, log),
		Payment:     NewPaymentHandler(service.Payment, log),
		Ticket:      NewTicketHandler(service.Ticket, service.Payment, service.Reservation, log),
	}
}

// ==================== HELPER METHODS ====================

// decodeRequest reads a JSON body into dst and validates it. It writes the
// 400 response itself and reports false when the request cannot proceed.
func decodeRequest(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return false
	}

	if validationErrors := utils.ValidateStruct(dst); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return false
	}

	return true
}

// pathID parses a positive id from the named URL parameter.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := utils.ParseID(name, chi.URLParam(r, name))
	if err != nil {
		utils.ResponseError(w, err)
		return 0, false
	}
	return id, true
}

// handleServiceError logs by kind and writes the mapped status. Client
// errors are warnings, everything else is an error.
func handleServiceError(log *zap.Logger, w http.ResponseWriter, r *http.Request, err error, operation string) {
	fields := []zap.Field{
		zap.Error(err),
		zap.String("operation", operation),
		zap.String("request_id", utils.GetRequestIDFromContext(r.Context())),
	}

	switch kind := apperror.KindOf(err); kind {
	case apperror.KindInvalidInput, apperror.KindNotFound, apperror.KindConflict,
		apperror.KindUnauthorized, apperror.KindForbidden:
		log.Warn(operation+" failed", append(fields, zap.String("kind", kind.String()))...)
	default:
		log.Error("Failed to "+operation, fields...)
	}

	utils.ResponseError(w, err)
}

// caller is the authenticated user behind a request.
type caller struct {
	id    int64
	admin bool
}

func callerFrom(r *http.Request) caller {
	id, _ := utils.GetUserIDFromContext(r.Context())
	role, _ := utils.GetRoleFromContext(r.Context())
	return caller{id: id, admin: role == string(entity.RoleAdmin)}
}

// owns reports whether the caller may act on records of userID.
func (c caller) owns(userID int64) bool {
	return c.admin || (c.id > 0 && c.id == userID)
}

// target is the user a write is made for. Only admins may act on behalf
// of someone else.
func (c caller) target(requested int64) int64 {
	if c.admin && requested > 0 {
		return requested
	}
	return c.id
}

func forbidden(w http.ResponseWriter) {
	utils.ResponseError(w, apperror.Forbidden("you may only access your own records"))
}
