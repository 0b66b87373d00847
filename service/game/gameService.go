package gamesvc

import (
	"context"
	"strings"

	"boardcamp/model"
	repo "boardcamp/repository/game"
	"boardcamp/util/apperr"
	"boardcamp/util/database"
)

type Filter = repo.Filter

type Repo interface {
	List(ctx context.Context, f Filter) ([]model.Game, error)
	Create(ctx context.Context, g *model.Game) error
}

type Service interface {
	List(ctx context.Context, namePrefix string) ([]model.Game, error)
	Create(ctx context.Context, g model.Game) (*model.Game, error)
}

type service struct{ r Repo }

func New(r Repo) Service { return &service{r: r} }

func (s *service) List(ctx context.Context, namePrefix string) ([]model.Game, error) {
	out, err := s.r.List(ctx, Filter{NamePrefix: strings.TrimSpace(namePrefix)})
	if err != nil {
		return nil, apperr.Store(err, "list games")
	}
	return out, nil
}

func (s *service) Create(ctx context.Context, g model.Game) (*model.Game, error) {
	g.Name = strings.TrimSpace(g.Name)
	switch {
	case g.Name == "":
		return nil, apperr.New(apperr.InvalidArgument, "name is required")
	case g.StockTotal < 1 || g.StockTotal > model.MaxInt4:
		return nil, apperr.New(apperr.InvalidArgument, "stockTotal must be between 1 and 2147483647")
	case g.PricePerDay < 1 || g.PricePerDay > model.MaxInt4:
		return nil, apperr.New(apperr.InvalidArgument, "pricePerDay must be between 1 and 2147483647")
	case g.CategoryID <= 0:
		return nil, apperr.New(apperr.InvalidArgument, "categoryId is required")
	case g.CategoryID > model.MaxInt4:
		return nil, apperr.New(apperr.InvalidArgument, "category does not exist")
	}

	if err := s.r.Create(ctx, &g); err != nil {
		switch {
		case database.IsUniqueViolation(err):
			return nil, apperr.Wrap(apperr.Conflict, err, "game already exists")
		case database.IsForeignKeyViolation(err):
			return nil, apperr.Wrap(apperr.InvalidArgument, err, "category does not exist")
		case database.IsCheckViolation(err):
			return nil, apperr.Wrap(apperr.InvalidArgument, err, "invalid game")
		case database.IsOutOfRange(err):
			return nil, apperr.Wrap(apperr.InvalidArgument, err, "value out of range")
		}
		return nil, apperr.Store(err, "create game")
	}
	return &g, nil
}
