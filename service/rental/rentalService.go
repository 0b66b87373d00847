package rental

import (
	"context"
	"time"

	"boardcamp/model"
	rrepo "boardcamp/repository/rental"
	"boardcamp/util/apperr"
	"boardcamp/util/database"
	"boardcamp/util/metrics"
)

type Filter = rrepo.Filter

type Repo interface {
	GamePriceForShare(ctx context.Context, q database.Querier, gameID int64) (int64, error)
	CustomerExists(ctx context.Context, q database.Querier, customerID int64) (bool, error)

	Insert(ctx context.Context, q database.Querier, r *model.Rental) error
	LockByID(ctx context.Context, q database.Querier, rentalID int64) (*model.Rental, error)
	MarkReturned(ctx context.Context, q database.Querier, rentalID int64, returnDate model.Date, delayFee int64) (bool, error)
	Delete(ctx context.Context, q database.Querier, rentalID int64) (bool, error)

	List(ctx context.Context, f Filter) ([]model.RentalDetail, error)
	Detail(ctx context.Context, rentalID int64) (*model.RentalDetail, error)
}

type Service interface {
	// Create opens a rental priced at pricePerDay × daysRented.
	Create(ctx context.Context, customerID, gameID int64, daysRented int) (*model.Rental, error)

	// Return closes an open rental and charges the delay fee, if any.
	Return(ctx context.Context, rentalID int64) (*model.Rental, error)

	// Delete purges a closed rental.
	Delete(ctx context.Context, rentalID int64) error

	List(ctx context.Context, f Filter) ([]model.RentalDetail, error)
	Get(ctx context.Context, rentalID int64) (*model.RentalDetail, error)
}

type Option func(*service)

// WithClock replaces time.Now as the source of rent and return dates.
func WithClock(now func() time.Time) Option {
	return func(s *service) { s.now = now }
}

func WithRecorder(rec metrics.Recorder) Option {
	return func(s *service) { s.rec = rec }
}

// ----- Service implementation -----

type service struct {
	db  database.TxRunner
	r   Repo
	now func() time.Time
	rec metrics.Recorder
}

func New(db database.TxRunner, r Repo, opts ...Option) Service {
	s := &service{db: db, r: r, now: time.Now, rec: metrics.Nop{}}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *service) today() model.Date { return model.DateOf(s.now()) }

func (s *service) Create(ctx context.Context, customerID, gameID int64, daysRented int) (*model.Rental, error) {
	switch {
	case daysRented <= 0:
		return nil, apperr.New(apperr.InvalidArgument, "daysRented must be greater than 0")
	case daysRented > model.MaxInt4:
		return nil, apperr.New(apperr.InvalidArgument, "daysRented must be at most 2147483647")
	case gameID <= 0 || gameID > model.MaxInt4:
		return nil, apperr.New(apperr.NotFound, "game not found")
	case customerID <= 0 || customerID > model.MaxInt4:
		return nil, apperr.New(apperr.NotFound, "customer not found")
	}

	var out *model.Rental
	err := s.db.InTx(ctx, func(q database.Querier) error {
		price, err := s.r.GamePriceForShare(ctx, q, gameID)
		if err != nil {
			if database.IsNoRows(err) {
				return apperr.New(apperr.NotFound, "game not found")
			}
			return err
		}

		ok, err := s.r.CustomerExists(ctx, q, customerID)
		if err != nil {
			return err
		}
		if !ok {
			return apperr.New(apperr.NotFound, "customer not found")
		}

		r := &model.Rental{
			CustomerID:    customerID,
			GameID:        gameID,
			RentDate:      s.today(),
			DaysRented:    daysRented,
			OriginalPrice: price * int64(daysRented),
		}
		if err := s.r.Insert(ctx, q, r); err != nil {
			return err
		}
		out = r
		return nil
	})
	if err != nil {
		if database.IsOutOfRange(err) {
			return nil, apperr.Wrap(apperr.InvalidArgument, err, "value out of range")
		}
		return nil, apperr.Store(err, "create rental")
	}

	s.rec.RentalCreated(out.OriginalPrice)
	return out, nil
}

func (s *service) Return(ctx context.Context, rentalID int64) (*model.Rental, error) {
	var out *model.Rental
	err := s.db.InTx(ctx, func(q database.Querier) error {
		r, err := s.r.LockByID(ctx, q, rentalID)
		if err != nil {
			if database.IsNoRows(err) {
				return apperr.New(apperr.NotFound, "rental not found")
			}
			return err
		}
		if !model.CanTransition(r.State(), model.RentalClosed) {
			return apperr.New(apperr.InvalidState, "rental already returned")
		}

		today := s.today()
		fee := DelayFee(*r, today)

		ok, err := s.r.MarkReturned(ctx, q, rentalID, today, fee)
		if err != nil {
			return err
		}
		if !ok {
			return apperr.New(apperr.InvalidState, "rental already returned")
		}

		r.ReturnDate = &today
		r.DelayFee = fee
		out = r
		return nil
	})
	if err != nil {
		return nil, apperr.Store(err, "return rental")
	}

	s.rec.RentalReturned(out.DelayFee)
	return out, nil
}

func (s *service) Delete(ctx context.Context, rentalID int64) error {
	err := s.db.InTx(ctx, func(q database.Querier) error {
		r, err := s.r.LockByID(ctx, q, rentalID)
		if err != nil {
			if database.IsNoRows(err) {
				return apperr.New(apperr.NotFound, "rental not found")
			}
			return err
		}
		if !r.Deletable() {
			return apperr.New(apperr.InvalidState, "rental not returned yet")
		}

		ok, err := s.r.Delete(ctx, q, rentalID)
		if err != nil {
			return err
		}
		if !ok {
			return apperr.New(apperr.InvalidState, "rental not returned yet")
		}
		return nil
	})
	if err != nil {
		return apperr.Store(err, "delete rental")
	}

	s.rec.RentalDeleted()
	return nil
}

func (s *service) List(ctx context.Context, f Filter) ([]model.RentalDetail, error) {
	switch f.Status {
	case "", model.RentalOpen, model.RentalClosed:
	default:
		return nil, apperr.New(apperr.InvalidArgument, "status must be open or closed")
	}
	rows, err := s.r.List(ctx, f)
	if err != nil {
		return nil, apperr.Store(err, "list rentals")
	}
	return rows, nil
}

func (s *service) Get(ctx context.Context, rentalID int64) (*model.RentalDetail, error) {
	d, err := s.r.Detail(ctx, rentalID)
	if err != nil {
		if database.IsNoRows(err) {
			return nil, apperr.New(apperr.NotFound, "rental not found")
		}
		return nil, apperr.Store(err, "get rental")
	}
	return d, nil
}
