package customersvc

import (
	"context"
	"strings"

	"boardcamp/model"
	"boardcamp/util/apperr"
	"boardcamp/util/database"
)

type Repo interface {
	List(ctx context.Context, cpfPrefix string) ([]model.Customer, error)
	ByID(ctx context.Context, id int64) (*model.Customer, error)
	Create(ctx context.Context, c *model.Customer) error
	Update(ctx context.Context, c *model.Customer) (bool, error)
}

type Service interface {
	List(ctx context.Context, cpfPrefix string) ([]model.Customer, error)
	Get(ctx context.Context, id int64) (*model.Customer, error)
	Create(ctx context.Context, req model.CreateCustomerReq) (*model.Customer, error)
	Update(ctx context.Context, id int64, req model.CreateCustomerReq) (*model.Customer, error)
}

type service struct{ r Repo }

func New(r Repo) Service { return &service{r: r} }

func (s *service) List(ctx context.Context, cpfPrefix string) ([]model.Customer, error) {
	out, err := s.r.List(ctx, strings.TrimSpace(cpfPrefix))
	if err != nil {
		return nil, apperr.Store(err, "list customers")
	}
	return out, nil
}

func (s *service) Get(ctx context.Context, id int64) (*model.Customer, error) {
	c, err := s.r.ByID(ctx, id)
	if err != nil {
		if database.IsNoRows(err) {
			return nil, apperr.New(apperr.NotFound, "customer not found")
		}
		return nil, apperr.Store(err, "get customer")
	}
	return c, nil
}

func (s *service) Create(ctx context.Context, req model.CreateCustomerReq) (*model.Customer, error) {
	c, err := fromReq(req)
	if err != nil {
		return nil, err
	}
	if err := s.r.Create(ctx, c); err != nil {
		return nil, mapWriteErr(err, "create customer")
	}
	return c, nil
}

func (s *service) Update(ctx context.Context, id int64, req model.CreateCustomerReq) (*model.Customer, error) {
	c, err := fromReq(req)
	if err != nil {
		return nil, err
	}
	c.ID = id
	ok, err := s.r.Update(ctx, c)
	if err != nil {
		return nil, mapWriteErr(err, "update customer")
	}
	if !ok {
		return nil, apperr.New(apperr.NotFound, "customer not found")
	}
	return c, nil
}

func mapWriteErr(err error, op string) error {
	switch {
	case database.IsUniqueViolation(err):
		return apperr.Wrap(apperr.Conflict, err, "cpf already registered")
	case database.IsCheckViolation(err):
		return apperr.Wrap(apperr.InvalidArgument, err, "invalid customer")
	case database.IsOutOfRange(err):
		return apperr.Wrap(apperr.InvalidArgument, err, "value out of range")
	}
	return apperr.Store(err, op)
}

func fromReq(req model.CreateCustomerReq) (*model.Customer, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperr.New(apperr.InvalidArgument, "name is required")
	}
	if n := len(req.Phone); n < 10 || n > 11 || !digits(req.Phone) {
		return nil, apperr.New(apperr.InvalidArgument, "phone must have 10 or 11 digits")
	}
	if len(req.CPF) != 11 || !digits(req.CPF) {
		return nil, apperr.New(apperr.InvalidArgument, "cpf must have 11 digits")
	}
	birthday, err := model.ParseDate(req.Birthday)
	if err != nil {
		return nil, apperr.Wrap(apperr.InvalidArgument, err, "birthday must be YYYY-MM-DD")
	}
	return &model.Customer{Name: name, Phone: req.Phone, CPF: req.CPF, Birthday: birthday}, nil
}

func digits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
