package rental

import (
	"context"
	"testing"

	"boardcamp/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListQuery_Unfiltered(t *testing.T) {
	q, args, err := listQuery(Filter{})
	require.NoError(t, err)
	assert.Contains(t, q, `FROM "rentals" AS "r"`)
	assert.Contains(t, q, `"customers" AS "cu"`)
	assert.Contains(t, q, `"categories" AS "ca"`)
	assert.NotContains(t, q, "WHERE")
	assert.Empty(t, args)
}

func TestListQuery_Filters(t *testing.T) {
	q, args, err := listQuery(Filter{CustomerID: 3, GameID: 9, Status: model.RentalOpen})
	require.NoError(t, err)
	assert.Contains(t, q, `"r"."customerId" = $1`)
	assert.Contains(t, q, `"r"."gameId" = $2`)
	assert.Contains(t, q, `"r"."returnDate" IS NULL`)
	assert.Equal(t, []any{int64(3), int64(9)}, args)

	q, _, err = listQuery(Filter{Status: model.RentalClosed})
	require.NoError(t, err)
	assert.Contains(t, q, `"r"."returnDate" IS NOT NULL`)
}

func TestGuards(t *testing.T) {
	assert.Contains(t, markReturnedSQL, `AND "returnDate" IS NULL`)
	assert.Contains(t, deleteSQL, `AND "returnDate" IS NOT NULL`)
	assert.Contains(t, lockSQL, "FOR UPDATE")
	assert.Contains(t, gamePriceSQL, "FOR SHARE")
	assert.Contains(t, customerExistsSQL, "FOR SHARE")
}

// execStub answers Exec with a fixed command tag and records the statement.
type execStub struct {
	tag  string
	sql  string
	args []any
}

func (s *execStub) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	s.sql, s.args = sql, args
	return pgconn.NewCommandTag(s.tag), nil
}

func (s *execStub) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	panic("not used")
}

func (s *execStub) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("not used")
}

func TestMarkReturned_RowsAffected(t *testing.T) {
	r := &repo{}
	ctx := context.Background()
	day := model.NewDate(2024, 3, 10)

	q := &execStub{tag: "UPDATE 1"}
	ok, err := r.MarkReturned(ctx, q, 5, day, 60)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, markReturnedSQL, q.sql)
	assert.Equal(t, []any{int64(5), day, int64(60)}, q.args)

	q = &execStub{tag: "UPDATE 0"}
	ok, err = r.MarkReturned(ctx, q, 5, day, 60)
	require.NoError(t, err)
	assert.False(t, ok, "already returned rows are left alone")
}

func TestDelete_RowsAffected(t *testing.T) {
	r := &repo{}
	ctx := context.Background()

	q := &execStub{tag: "DELETE 1"}
	ok, err := r.Delete(ctx, q, 8)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, deleteSQL, q.sql)

	q = &execStub{tag: "DELETE 0"}
	ok, err = r.Delete(ctx, q, 8)
	require.NoError(t, err)
	assert.False(t, ok, "open rows are left alone")
}
