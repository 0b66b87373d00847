package customerrepo

import (
	"context"

	"boardcamp/model"
	"boardcamp/util/database"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
)

type Repo interface {
	List(ctx context.Context, cpfPrefix string) ([]model.Customer, error)
	ByID(ctx context.Context, id int64) (*model.Customer, error)
	Create(ctx context.Context, c *model.Customer) error
	Update(ctx context.Context, c *model.Customer) (bool, error)
}

type repo struct{ db *database.DB }

func New(db *database.DB) Repo { return &repo{db} }

func listQuery(cpfPrefix string) (string, []any, error) {
	ds := goqu.Dialect("postgres").
		From("customers").
		Select("id", "name", "phone", "cpf", "birthday").
		Order(goqu.C("id").Asc())
	if cpfPrefix != "" {
		ds = ds.Where(goqu.C("cpf").Like(database.LikePrefix(cpfPrefix)))
	}
	return ds.Prepared(true).ToSQL()
}

func (r *repo) List(ctx context.Context, cpfPrefix string) ([]model.Customer, error) {
	q, args, err := listQuery(cpfPrefix)
	if err != nil {
		return nil, err
	}
	rows, err := r.db.Pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Customer{}
	for rows.Next() {
		var c model.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.CPF, &c.Birthday); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// ByID returns pgx.ErrNoRows when the customer does not exist.
func (r *repo) ByID(ctx context.Context, id int64) (*model.Customer, error) {
	const q = `
SELECT id, name, phone, cpf, birthday
FROM customers
WHERE id = $1`
	c := &model.Customer{}
	err := r.db.Pool.QueryRow(ctx, q, id).Scan(&c.ID, &c.Name, &c.Phone, &c.CPF, &c.Birthday)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *repo) Create(ctx context.Context, c *model.Customer) error {
	const q = `
INSERT INTO customers (name, phone, cpf, birthday)
VALUES ($1,$2,$3,$4)
RETURNING id`
	return r.db.Pool.QueryRow(ctx, q, c.Name, c.Phone, c.CPF, c.Birthday).Scan(&c.ID)
}

// Update reports false when no customer has c.ID.
func (r *repo) Update(ctx context.Context, c *model.Customer) (bool, error) {
	const q = `
UPDATE customers
SET name = $2,
	phone = $3,
	cpf = $4,
	birthday = $5
WHERE id = $1`
	tag, err := r.db.Pool.Exec(ctx, q, c.ID, c.Name, c.Phone, c.CPF, c.Birthday)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
