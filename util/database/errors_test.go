package database

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	unique := fmt.Errorf("insert: %w", &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "games_name_key"})
	fk := &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation, ConstraintName: "games_categoryId_fkey"}
	check := &pgconn.PgError{Code: pgerrcode.CheckViolation}
	outOfRange := fmt.Errorf("update: %w", &pgconn.PgError{Code: pgerrcode.NumericValueOutOfRange})

	require.True(t, IsUniqueViolation(unique))
	require.False(t, IsForeignKeyViolation(unique))
	require.Equal(t, "games_name_key", ConstraintName(unique))

	require.True(t, IsForeignKeyViolation(fk))
	require.False(t, IsUniqueViolation(fk))

	require.True(t, IsCheckViolation(check))
	require.False(t, IsOutOfRange(check))

	require.True(t, IsOutOfRange(outOfRange))
	require.False(t, IsCheckViolation(outOfRange))

	require.True(t, IsNoRows(fmt.Errorf("scan: %w", pgx.ErrNoRows)))
	require.False(t, IsNoRows(errors.New("boom")))
	require.Equal(t, "", ConstraintName(errors.New("boom")))
}
