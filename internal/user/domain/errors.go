package domain

import (
	"errors"
	"net/http"

	"github.com/lib/pq"

	"github.com/flukechat/fluke-backend/pkg/logger"
)

// SignupErrorKind enumerates the ways a signup insert can fail.
type SignupErrorKind int

const (
	// DuplicateKey means the username or email unique constraint rejected
	// the row. Expected under concurrency, reported as 409.
	DuplicateKey SignupErrorKind = iota
	// UnknownQuery is any other error Postgres reported for the statement.
	UnknownQuery
	// UnknownDatabase is a failure outside the database itself, such as a
	// broken connection.
	UnknownDatabase
)

// pqUniqueViolation is the Postgres error code for a breached unique
// constraint. The classifier depends on the driver preserving it verbatim.
const pqUniqueViolation = "23505"

// SignupError is a classified storage failure. Callers only ever see its
// fixed message; the raw driver error stays in the logs.
type SignupError struct {
	Kind  SignupErrorKind
	cause error
}

func (e *SignupError) Error() string {
	switch e.Kind {
	case DuplicateKey:
		return "Duplicate username or email contained a duplicate key."
	case UnknownQuery:
		return "Database query contained an unspecified error."
	default:
		return "Database error, not query related."
	}
}

func (e *SignupError) Unwrap() error {
	return e.cause
}

// HTTPStatus maps the error kind to the status the signup endpoint reports.
// Kept as a pure table so classification and transport stay separable.
func (e *SignupError) HTTPStatus() int {
	if e.Kind == DuplicateKey {
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// ClassifySignupError sorts a storage failure into one of the three signup
// error kinds. Unique violations are routine; everything else is logged with
// enough detail for an operator to chase down.
func ClassifySignupError(err error) *SignupError {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		if string(pqErr.Code) == pqUniqueViolation {
			return &SignupError{Kind: DuplicateKey, cause: err}
		}
		logger.Logger.Error().
			Str("pq_code", string(pqErr.Code)).
			Str("pq_code_name", pqErr.Code.Name()).
			Str("constraint", pqErr.Constraint).
			Str("detail", pqErr.Detail).
			Err(err).
			Msg("Unclassified database error during signup")
		return &SignupError{Kind: UnknownQuery, cause: err}
	}

	logger.Logger.Error().Err(err).Msg("Non-query database failure during signup")
	return &SignupError{Kind: UnknownDatabase, cause: err}
}
