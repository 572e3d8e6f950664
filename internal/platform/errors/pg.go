package errors

// Postgres helpers: classify SQLSTATEs raised while running a generated read-only query

import (
	"context"
	stderrs "errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes the execution path distinguishes
const (
	pgErrReadOnlySQLTransaction = "25006"
	pgErrQueryCanceled          = "57014"
	pgErrCannotConnectNow       = "57P03"
	pgErrAdminShutdown          = "57P01"
	pgErrInsufficientPrivilege  = "42501"
)

// ExtractPgError returns the *pgconn.PgError at the root of err, if any
func ExtractPgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if stderrs.As(err, &pgErr) {
		return pgErr, true
	}
	return nil, false
}

// IsSQLState reports whether err is a Postgres error with the given SQLSTATE
func IsSQLState(err error, code string) bool {
	pgErr, ok := ExtractPgError(err)
	return ok && pgErr.Code == code
}

// IsReadOnlyViolation reports whether a statement tried to write inside a read-only transaction
func IsReadOnlyViolation(err error) bool { return IsSQLState(err, pgErrReadOnlySQLTransaction) }

// IsStatementTimeout reports whether the server cancelled the statement (statement_timeout)
func IsStatementTimeout(err error) bool { return IsSQLState(err, pgErrQueryCanceled) }

// DBErrorCode maps a Postgres error to an ErrorCode. ok is false when err carries no PgError
func DBErrorCode(err error) (code ErrorCode, ok bool) {
	pgErr, ok := ExtractPgError(err)
	if !ok {
		return ErrorCodeUnknown, false
	}

	switch pgErr.Code {
	case pgErrReadOnlySQLTransaction, pgErrInsufficientPrivilege:
		return ErrorCodeForbidden, true
	case pgErrQueryCanceled:
		return ErrorCodeTimeout, true
	case pgErrCannotConnectNow, pgErrAdminShutdown:
		return ErrorCodeUnavailable, true
	}

	switch class := pgErr.Code[:min(2, len(pgErr.Code))]; class {
	case "42": // syntax error or access rule violation: undefined table/column, grouping
		return ErrorCodeQuery, true
	case "22": // data exception
		return ErrorCodeInvalidArgument, true
	case "08": // connection exception
		return ErrorCodeUnavailable, true
	}
	return ErrorCodeDB, true
}

// FromPostgres wraps err with the mapped code. Context deadlines map to timeout.
// Returns nil for nil
func FromPostgres(err error, msg string) error {
	if err == nil {
		return nil
	}
	if code, ok := DBErrorCode(err); ok {
		return Wrap(err, code, msg)
	}
	if stderrs.Is(err, context.DeadlineExceeded) {
		return Wrap(err, ErrorCodeTimeout, msg)
	}
	return Wrap(err, ErrorCodeDB, msg)
}

// AttachFieldFromPg sets the error field from the PgError column name, when present
func AttachFieldFromPg(err error) error {
	pgErr, ok := ExtractPgError(err)
	if !ok {
		return err
	}
	if col := strings.TrimSpace(pgErr.ColumnName); col != "" {
		return WithField(err, col)
	}
	return err
}
