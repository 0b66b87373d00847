package categoryrepo

import (
	"context"

	"boardcamp/model"
	"boardcamp/util/database"
)

type Repo interface {
	List(ctx context.Context) ([]model.Category, error)
	Create(ctx context.Context, name string) (*model.Category, error)
}

type repo struct{ db *database.DB }

func New(db *database.DB) Repo { return &repo{db} }

func (r *repo) List(ctx context.Context) ([]model.Category, error) {
	const q = `
SELECT id, name
FROM categories
ORDER BY id`
	rows, err := r.db.Pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Category{}
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Create relies on the unique constraint on name; a duplicate surfaces
// as a unique violation from the single insert.
func (r *repo) Create(ctx context.Context, name string) (*model.Category, error) {
	const q = `
INSERT INTO categories (name)
VALUES ($1)
RETURNING id, name`
	c := &model.Category{}
	if err := r.db.Pool.QueryRow(ctx, q, name).Scan(&c.ID, &c.Name); err != nil {
		return nil, err
	}
	return c, nil
}
