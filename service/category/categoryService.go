package categorysvc

import (
	"context"
	"strings"

	"boardcamp/model"
	"boardcamp/util/apperr"
	"boardcamp/util/database"
)

type Repo interface {
	List(ctx context.Context) ([]model.Category, error)
	Create(ctx context.Context, name string) (*model.Category, error)
}

type Service interface {
	List(ctx context.Context) ([]model.Category, error)
	Create(ctx context.Context, name string) (*model.Category, error)
}

type service struct{ r Repo }

func New(r Repo) Service { return &service{r: r} }

func (s *service) List(ctx context.Context) ([]model.Category, error) {
	out, err := s.r.List(ctx)
	if err != nil {
		return nil, apperr.Store(err, "list categories")
	}
	return out, nil
}

func (s *service) Create(ctx context.Context, name string) (*model.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperr.New(apperr.InvalidArgument, "name is required")
	}
	c, err := s.r.Create(ctx, name)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return nil, apperr.Wrap(apperr.Conflict, err, "category already exists")
		}
		return nil, apperr.Store(err, "create category")
	}
	return c, nil
}
