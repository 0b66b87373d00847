package gamerepo

import (
	"context"

	"boardcamp/model"
	"boardcamp/util/database"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
)

type Filter struct {
	// NamePrefix matches game names case-insensitively. Empty lists all.
	NamePrefix string
}

type Repo interface {
	List(ctx context.Context, f Filter) ([]model.Game, error)
	Create(ctx context.Context, g *model.Game) error
}

type repo struct{ db *database.DB }

func New(db *database.DB) Repo { return &repo{db} }

func listQuery(f Filter) (string, []any, error) {
	ds := goqu.Dialect("postgres").
		From(goqu.T("games").As("g")).
		Join(goqu.T("categories").As("c"), goqu.On(goqu.I("c.id").Eq(goqu.I("g.categoryId")))).
		Select(
			goqu.I("g.id"),
			goqu.I("g.name"),
			goqu.I("g.image"),
			goqu.I("g.stockTotal"),
			goqu.I("g.categoryId"),
			goqu.I("c.name").As("categoryName"),
			goqu.I("g.pricePerDay"),
		).
		Order(goqu.I("g.id").Asc())

	if f.NamePrefix != "" {
		ds = ds.Where(goqu.I("g.name").ILike(database.LikePrefix(f.NamePrefix)))
	}
	return ds.Prepared(true).ToSQL()
}

func (r *repo) List(ctx context.Context, f Filter) ([]model.Game, error) {
	q, args, err := listQuery(f)
	if err != nil {
		return nil, err
	}
	rows, err := r.db.Pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Game{}
	for rows.Next() {
		var g model.Game
		if err := rows.Scan(
			&g.ID, &g.Name, &g.Image, &g.StockTotal,
			&g.CategoryID, &g.CategoryName, &g.PricePerDay,
		); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

// Create inserts in one statement so the name uniqueness and the
// category reference are enforced by the store's constraints.
func (r *repo) Create(ctx context.Context, g *model.Game) error {
	const q = `
INSERT INTO games (name, image, "stockTotal", "categoryId", "pricePerDay")
VALUES ($1,$2,$3,$4,$5)
RETURNING id`
	return r.db.Pool.QueryRow(ctx, q,
		g.Name, g.Image, g.StockTotal, g.CategoryID, g.PricePerDay,
	).Scan(&g.ID)
}
