package categorysvc_test

import (
	"context"
	"errors"
	"testing"

	"boardcamp/model"
	categorysvc "boardcamp/service/category"
	"boardcamp/util/apperr"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

// uniqueRepo rejects a second insert of the same name the way the
// categories_name_key constraint does.
type uniqueRepo struct {
	names  map[string]bool
	listFn func(ctx context.Context) ([]model.Category, error)
}

func (r *uniqueRepo) List(ctx context.Context) ([]model.Category, error) { return r.listFn(ctx) }

func (r *uniqueRepo) Create(ctx context.Context, name string) (*model.Category, error) {
	if r.names[name] {
		return nil, &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "categories_name_key"}
	}
	r.names[name] = true
	return &model.Category{ID: int64(len(r.names)), Name: name}, nil
}

func TestCreate_DuplicateName(t *testing.T) {
	s := categorysvc.New(&uniqueRepo{names: map[string]bool{}})
	ctx := context.Background()

	c, err := s.Create(ctx, "RPG")
	require.NoError(t, err)
	require.Equal(t, "RPG", c.Name)

	_, err = s.Create(ctx, "RPG")
	require.Error(t, err)
	require.Equal(t, apperr.Conflict, apperr.CodeOf(err))
}

func TestCreate_Blank(t *testing.T) {
	s := categorysvc.New(&uniqueRepo{names: map[string]bool{}})
	_, err := s.Create(context.Background(), "   ")
	require.Equal(t, apperr.InvalidArgument, apperr.CodeOf(err))
}

func TestList(t *testing.T) {
	r := &uniqueRepo{listFn: func(ctx context.Context) ([]model.Category, error) {
		return []model.Category{{ID: 1, Name: "Estratégia"}}, nil
	}}
	out, err := categorysvc.New(r).List(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 1)

	r.listFn = func(ctx context.Context) ([]model.Category, error) { return nil, errors.New("db down") }
	_, err = categorysvc.New(r).List(context.Background())
	require.Equal(t, apperr.StoreFailure, apperr.CodeOf(err))
}
