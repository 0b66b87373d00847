package customersvc_test

import (
	"context"
	"errors"
	"testing"

	"boardcamp/model"
	customersvc "boardcamp/service/customer"
	"boardcamp/util/apperr"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

type mockRepo struct {
	listFn   func(ctx context.Context, cpfPrefix string) ([]model.Customer, error)
	byIDFn   func(ctx context.Context, id int64) (*model.Customer, error)
	createFn func(ctx context.Context, c *model.Customer) error
	updateFn func(ctx context.Context, c *model.Customer) (bool, error)
}

var _ customersvc.Repo = (*mockRepo)(nil)

func (m *mockRepo) List(ctx context.Context, cpfPrefix string) ([]model.Customer, error) {
	return m.listFn(ctx, cpfPrefix)
}
func (m *mockRepo) ByID(ctx context.Context, id int64) (*model.Customer, error) {
	return m.byIDFn(ctx, id)
}
func (m *mockRepo) Create(ctx context.Context, c *model.Customer) error {
	if m.createFn == nil {
		return nil
	}
	return m.createFn(ctx, c)
}
func (m *mockRepo) Update(ctx context.Context, c *model.Customer) (bool, error) {
	return m.updateFn(ctx, c)
}

func validReq() model.CreateCustomerReq {
	return model.CreateCustomerReq{Name: "João Alfredo", Phone: "21998899222", CPF: "01234567890", Birthday: "1992-10-05"}
}

func TestCreate_Success(t *testing.T) {
	m := &mockRepo{createFn: func(ctx context.Context, c *model.Customer) error {
		c.ID = 1
		return nil
	}}
	c, err := customersvc.New(m).Create(context.Background(), validReq())
	require.NoError(t, err)
	require.Equal(t, int64(1), c.ID)
	require.Equal(t, model.NewDate(1992, 10, 5), c.Birthday)
}

func TestCreate_BadInput(t *testing.T) {
	s := customersvc.New(&mockRepo{})
	bad := []func(r *model.CreateCustomerReq){
		func(r *model.CreateCustomerReq) { r.Name = "" },
		func(r *model.CreateCustomerReq) { r.Phone = "123456789" },
		func(r *model.CreateCustomerReq) { r.Phone = "123456789012" },
		func(r *model.CreateCustomerReq) { r.Phone = "2199889922a" },
		func(r *model.CreateCustomerReq) { r.CPF = "0123456789" },
		func(r *model.CreateCustomerReq) { r.CPF = "012.345.678" },
		func(r *model.CreateCustomerReq) { r.Birthday = "05/10/1992" },
	}
	for _, mutate := range bad {
		req := validReq()
		mutate(&req)
		_, err := s.Create(context.Background(), req)
		require.Equal(t, apperr.InvalidArgument, apperr.CodeOf(err), "%+v", req)
	}
}

func TestCreate_DuplicateCPF(t *testing.T) {
	m := &mockRepo{createFn: func(ctx context.Context, c *model.Customer) error {
		return &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "customers_cpf_key"}
	}}
	_, err := customersvc.New(m).Create(context.Background(), validReq())
	require.Equal(t, apperr.Conflict, apperr.CodeOf(err))
}

func TestUpdate_OutOfRange(t *testing.T) {
	m := &mockRepo{updateFn: func(ctx context.Context, c *model.Customer) (bool, error) {
		return false, &pgconn.PgError{Code: pgerrcode.NumericValueOutOfRange}
	}}
	_, err := customersvc.New(m).Update(context.Background(), 3, validReq())
	require.Equal(t, apperr.InvalidArgument, apperr.CodeOf(err))
}

func TestGet(t *testing.T) {
	m := &mockRepo{byIDFn: func(ctx context.Context, id int64) (*model.Customer, error) {
		if id == 1 {
			return &model.Customer{ID: 1}, nil
		}
		return nil, pgx.ErrNoRows
	}}
	s := customersvc.New(m)

	c, err := s.Get(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, int64(1), c.ID)

	_, err = s.Get(context.Background(), 2)
	require.Equal(t, apperr.NotFound, apperr.CodeOf(err))
}

func TestUpdate(t *testing.T) {
	m := &mockRepo{updateFn: func(ctx context.Context, c *model.Customer) (bool, error) {
		switch c.ID {
		case 1:
			return true, nil
		case 2:
			return false, &pgconn.PgError{Code: pgerrcode.UniqueViolation}
		case 3:
			return false, errors.New("timeout")
		}
		return false, nil
	}}
	s := customersvc.New(m)
	ctx := context.Background()

	c, err := s.Update(ctx, 1, validReq())
	require.NoError(t, err)
	require.Equal(t, int64(1), c.ID)

	_, err = s.Update(ctx, 2, validReq())
	require.Equal(t, apperr.Conflict, apperr.CodeOf(err))

	_, err = s.Update(ctx, 3, validReq())
	require.Equal(t, apperr.StoreFailure, apperr.CodeOf(err))

	_, err = s.Update(ctx, 4, validReq())
	require.Equal(t, apperr.NotFound, apperr.CodeOf(err))
}

func TestList(t *testing.T) {
	var got string
	m := &mockRepo{listFn: func(ctx context.Context, cpfPrefix string) ([]model.Customer, error) {
		got = cpfPrefix
		return []model.Customer{}, nil
	}}
	_, err := customersvc.New(m).List(context.Background(), "012")
	require.NoError(t, err)
	require.Equal(t, "012", got)
}
