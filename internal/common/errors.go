package common

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrNotFound             = errors.New("requested resource not found")
	ErrAuthenticationFailed = errors.New("authentication failed") // bad credentials, never says which part
	ErrConflict             = errors.New("resource conflict")     // e.g., username already exists
	ErrValidation           = errors.New("validation failed")

	// ErrTokenInvalid covers signature, format, and expiry failures on token
	// decode. It maps to 404, matching the externally observed behavior of
	// the session layer this was built against.
	ErrTokenInvalid = errors.New("invalid token")
)

// HTTPStatusFromError maps domain errors to HTTP status codes.
func HTTPStatusFromError(err error) int {
	if err == nil {
		return http.StatusOK
	}
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrTokenInvalid) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrAuthenticationFailed) {
		return http.StatusUnauthorized
	}
	if errors.Is(err, ErrValidation) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrConflict) {
		return http.StatusConflict
	}

	// Check for pgx specific errors (example for unique constraint)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" { // Unique violation
			return http.StatusConflict
		}
	}

	return http.StatusInternalServerError
}
