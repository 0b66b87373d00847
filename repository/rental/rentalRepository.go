// repository/rental/rentalRepository.go
package rental

import (
	"context"

	"boardcamp/model"
	"boardcamp/util/database"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
)

type Filter struct {
	CustomerID int64
	GameID     int64
	// Status limits the list to OPEN or CLOSED rentals. Empty lists both.
	Status model.RentalState
}

type Repo interface {
	// Games & customers
	GamePriceForShare(ctx context.Context, q database.Querier, gameID int64) (price int64, err error)
	CustomerExists(ctx context.Context, q database.Querier, customerID int64) (bool, error)

	// Rentals
	Insert(ctx context.Context, q database.Querier, r *model.Rental) error
	LockByID(ctx context.Context, q database.Querier, rentalID int64) (*model.Rental, error)
	MarkReturned(ctx context.Context, q database.Querier, rentalID int64, returnDate model.Date, delayFee int64) (bool, error)
	Delete(ctx context.Context, q database.Querier, rentalID int64) (bool, error)

	// Listing
	List(ctx context.Context, f Filter) ([]model.RentalDetail, error)
	Detail(ctx context.Context, rentalID int64) (*model.RentalDetail, error)
}

// FOR SHARE keeps the price stable until the rental row is written.
const gamePriceSQL = `
	SELECT "pricePerDay"
	FROM games
	WHERE id = $1
	FOR SHARE`

const customerExistsSQL = `
	SELECT id
	FROM customers
	WHERE id = $1
	FOR SHARE`

const insertSQL = `
	INSERT INTO rentals ("customerId", "gameId", "rentDate", "daysRented", "returnDate", "originalPrice", "delayFee")
	VALUES ($1, $2, $3, $4, NULL, $5, 0)
	RETURNING id`

const lockSQL = `
	SELECT id, "customerId", "gameId", "rentDate", "daysRented", "returnDate", "originalPrice", "delayFee"
	FROM rentals
	WHERE id = $1
	FOR UPDATE`

// Guard: a closed rental is never closed again.
const markReturnedSQL = `
	UPDATE rentals
	SET "returnDate" = $2,
		"delayFee" = $3
	WHERE id = $1
	AND "returnDate" IS NULL`

// Guard: open rentals cannot be purged.
const deleteSQL = `
	DELETE FROM rentals
	WHERE id = $1
	AND "returnDate" IS NOT NULL`

type repo struct {
	db *database.DB
}

func New(db *database.DB) Repo { return &repo{db: db} }

// Games & customers

func (r *repo) GamePriceForShare(ctx context.Context, q database.Querier, gameID int64) (int64, error) {
	var price int64
	err := q.QueryRow(ctx, gamePriceSQL, gameID).Scan(&price)
	return price, err
}

func (r *repo) CustomerExists(ctx context.Context, q database.Querier, customerID int64) (bool, error) {
	var id int64
	err := q.QueryRow(ctx, customerExistsSQL, customerID).Scan(&id)
	if database.IsNoRows(err) {
		return false, nil
	}
	return err == nil, err
}

// Rentals

func (r *repo) Insert(ctx context.Context, q database.Querier, rt *model.Rental) error {
	return q.QueryRow(ctx, insertSQL,
		rt.CustomerID, rt.GameID, rt.RentDate, rt.DaysRented, rt.OriginalPrice,
	).Scan(&rt.ID)
}

func (r *repo) LockByID(ctx context.Context, q database.Querier, rentalID int64) (*model.Rental, error) {
	rt := &model.Rental{}
	err := q.QueryRow(ctx, lockSQL, rentalID).Scan(
		&rt.ID, &rt.CustomerID, &rt.GameID, &rt.RentDate,
		&rt.DaysRented, &rt.ReturnDate, &rt.OriginalPrice, &rt.DelayFee,
	)
	if err != nil {
		return nil, err
	}
	return rt, nil
}

func (r *repo) MarkReturned(ctx context.Context, q database.Querier, rentalID int64, returnDate model.Date, delayFee int64) (bool, error) {
	tag, err := q.Exec(ctx, markReturnedSQL, rentalID, returnDate, delayFee)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *repo) Delete(ctx context.Context, q database.Querier, rentalID int64) (bool, error) {
	tag, err := q.Exec(ctx, deleteSQL, rentalID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// Listing

func detailQuery() *goqu.SelectDataset {
	return goqu.Dialect("postgres").
		From(goqu.T("rentals").As("r")).
		Join(goqu.T("customers").As("cu"), goqu.On(goqu.I("cu.id").Eq(goqu.I("r.customerId")))).
		Join(goqu.T("games").As("g"), goqu.On(goqu.I("g.id").Eq(goqu.I("r.gameId")))).
		Join(goqu.T("categories").As("ca"), goqu.On(goqu.I("ca.id").Eq(goqu.I("g.categoryId")))).
		Select(
			goqu.I("r.id"),
			goqu.I("r.customerId"),
			goqu.I("r.gameId"),
			goqu.I("r.rentDate"),
			goqu.I("r.daysRented"),
			goqu.I("r.returnDate"),
			goqu.I("r.originalPrice"),
			goqu.I("r.delayFee"),
			goqu.I("cu.name").As("customerName"),
			goqu.I("g.name").As("gameName"),
			goqu.I("g.categoryId"),
			goqu.I("ca.name").As("categoryName"),
		)
}

func listQuery(f Filter) (string, []any, error) {
	ds := detailQuery().Order(goqu.I("r.id").Asc())
	if f.CustomerID > 0 {
		ds = ds.Where(goqu.I("r.customerId").Eq(f.CustomerID))
	}
	if f.GameID > 0 {
		ds = ds.Where(goqu.I("r.gameId").Eq(f.GameID))
	}
	switch f.Status {
	case model.RentalOpen:
		ds = ds.Where(goqu.I("r.returnDate").IsNull())
	case model.RentalClosed:
		ds = ds.Where(goqu.I("r.returnDate").IsNotNull())
	}
	return ds.Prepared(true).ToSQL()
}

func scanDetail(row interface{ Scan(dest ...any) error }) (model.RentalDetail, error) {
	var d model.RentalDetail
	err := row.Scan(
		&d.ID, &d.CustomerID, &d.GameID, &d.RentDate,
		&d.DaysRented, &d.ReturnDate, &d.OriginalPrice, &d.DelayFee,
		&d.Customer.Name, &d.Game.Name, &d.Game.CategoryID, &d.Game.CategoryName,
	)
	d.Customer.ID = d.CustomerID
	d.Game.ID = d.GameID
	return d, err
}

func (r *repo) List(ctx context.Context, f Filter) ([]model.RentalDetail, error) {
	q, args, err := listQuery(f)
	if err != nil {
		return nil, err
	}
	rows, err := r.db.Pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.RentalDetail{}
	for rows.Next() {
		d, err := scanDetail(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// Detail returns pgx.ErrNoRows when the rental does not exist.
func (r *repo) Detail(ctx context.Context, rentalID int64) (*model.RentalDetail, error) {
	q, args, err := detailQuery().Where(goqu.I("r.id").Eq(rentalID)).Prepared(true).ToSQL()
	if err != nil {
		return nil, err
	}
	d, err := scanDetail(r.db.Pool.QueryRow(ctx, q, args...))
	if err != nil {
		return nil, err
	}
	return &d, nil
}
