package repository

import (
	"errors"
	"fmt"
	"strings"

	"biograf/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Postgres SQLSTATE codes mapped to error kinds.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
	codeNotNullViolation    = "23502"
)

// Constraint names from schema.sql with a dedicated client message.
var conflictMessages = map[string]string{
	"uq_reservation_seats_showtime_seat":     "seat already reserved for this showtime",
	"reservation_seats_pkey":                 "seat already reserved for this showtime",
	"uq_tickets_showtime_seat":               "ticket already issued for this seat and showtime",
	"users_email_key":                        "email already registered",
	"genres_name_key":                        "genre name already exists",
	"cinemas_name_key":                       "cinema name already exists",
	"halls_cinema_id_name_key":               "hall name already exists in this cinema",
	"seats_hall_id_seat_row_seat_number_key": "seat row and number already exist in this hall",
	"movie_genres_pkey":                      "genre already linked to this movie",
}

// dbError categorizes a driver error. action names the failed step,
// e.g. "delete movie 3", and becomes part of the message.
func dbError(err error, action string) error {
	if err == nil {
		return nil
	}

	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			msg, ok := conflictMessages[pgErr.ConstraintName]
			if !ok {
				msg = "record already exists"
			}
			return apperror.Wrap(apperror.KindConflict, msg, err)

		case codeForeignKeyViolation:
			if strings.HasPrefix(action, "delete") {
				msg := fmt.Sprintf("cannot %s: still referenced", action)
				if pgErr.TableName != "" {
					msg = fmt.Sprintf("cannot %s: still referenced by %s", action, pgErr.TableName)
				}
				return apperror.Wrap(apperror.KindConflict, msg, err)
			}
			return apperror.Wrap(apperror.KindInvalidInput,
				fmt.Sprintf("cannot %s: referenced record does not exist", action), err)

		case codeCheckViolation, codeNotNullViolation:
			return apperror.Wrap(apperror.KindInvalidInput,
				fmt.Sprintf("cannot %s: value out of range", action), err)
		}
	}

	return apperror.Persistence("failed to "+action, err)
}

// notFound turns pgx.ErrNoRows into a NotFound error naming what and key,
// e.g. "movie 3 not found", and anything else into dbError.
func notFound(err error, what string, key any) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return apperror.Wrap(apperror.KindNotFound, fmt.Sprintf("%s %v not found", what, key), err)
	}
	return dbError(err, fmt.Sprintf("find %s %v", what, key))
}
