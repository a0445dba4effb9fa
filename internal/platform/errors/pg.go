package errors

// Mapping from pgx errors to project ErrorCodes

import (
	stderrs "errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE values the check log can realistically hit
const (
	pgErrUniqueViolation           = "23505"
	pgErrNotNullViolation          = "23502"
	pgErrCheckViolation            = "23514"
	pgErrStringDataRightTruncation = "22001"
	pgErrInvalidTextRepresentation = "22P02"
	pgErrCannotConnectNow          = "57P03" // server still starting up
)

// sqlstateCodes maps known SQLSTATEs onto project codes; anything else
// that is still a PgError stays a plain DB error
var sqlstateCodes = map[string]ErrorCode{
	pgErrUniqueViolation:           ErrorCodeDuplicateKey,
	pgErrNotNullViolation:          ErrorCodeValidation,
	pgErrCheckViolation:            ErrorCodeValidation,
	pgErrStringDataRightTruncation: ErrorCodeInvalidArgument,
	pgErrInvalidTextRepresentation: ErrorCodeInvalidArgument,
	pgErrCannotConnectNow:          ErrorCodeUnavailable,
}

// ExtractPgError digs the *pgconn.PgError out of a wrap chain, if present
func ExtractPgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if stderrs.As(Root(err), &pgErr) {
		return pgErr, true
	}
	return nil, false
}

// IsSQLState reports whether err is a postgres error with the given SQLSTATE
func IsSQLState(err error, code string) bool {
	pgErr, ok := ExtractPgError(err)
	return ok && pgErr.Code == code
}

// IsDuplicateKey reports a unique constraint violation
func IsDuplicateKey(err error) bool { return IsSQLState(err, pgErrUniqueViolation) }

// DBErrorCode classifies a postgres error; !ok means err was not a PgError
// and the caller should fall back to generic handling
func DBErrorCode(err error) (ErrorCode, bool) {
	var pgErr *pgconn.PgError
	if !stderrs.As(err, &pgErr) {
		return ErrorCodeUnknown, false
	}
	if code, known := sqlstateCodes[pgErr.Code]; known {
		return code, true
	}
	return ErrorCodeDB, true
}

// FromPostgres wraps a storage error with its mapped code; nil stays nil
func FromPostgres(err error, msg string) error {
	if err == nil {
		return nil
	}
	code, ok := DBErrorCode(err)
	if !ok {
		code = ErrorCodeDB
	}
	return Wrap(err, code, msg)
}

// FromPostgresf is the formatted variant of FromPostgres
func FromPostgresf(err error, format string, a ...any) error {
	if err == nil {
		return nil
	}
	return FromPostgres(err, fmt.Sprintf(format, a...))
}
