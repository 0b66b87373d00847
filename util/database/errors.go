package database

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func IsNoRows(err error) bool { return errors.Is(err, pgx.ErrNoRows) }

func IsUniqueViolation(err error) bool { return hasCode(err, pgerrcode.UniqueViolation) }

func IsForeignKeyViolation(err error) bool { return hasCode(err, pgerrcode.ForeignKeyViolation) }

func IsCheckViolation(err error) bool { return hasCode(err, pgerrcode.CheckViolation) }

// IsOutOfRange reports a value that does not fit its column type.
func IsOutOfRange(err error) bool { return hasCode(err, pgerrcode.NumericValueOutOfRange) }

// ConstraintName returns the violated constraint of a PostgreSQL error,
// lower-cased by the server, or "" for any other error.
func ConstraintName(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	return ""
}

func hasCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}
