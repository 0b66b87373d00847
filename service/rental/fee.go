package rental

import (
	"math"

	"boardcamp/model"
)

// DueDate is the day the rental is expected back: rentDate + daysRented.
func DueDate(r model.Rental) model.Date {
	return r.RentDate.AddDays(r.DaysRented)
}

// LateDays counts the whole days between the due date and returnedOn.
// Returns on or before the due date are never late.
func LateDays(r model.Rental, returnedOn model.Date) int {
	n := returnedOn.DaysSince(DueDate(r))
	if n < 0 {
		return 0
	}
	return n
}

// DelayFee charges the full originalPrice for every late day, not the
// per-day price. The result saturates at math.MaxInt64 so a rental can
// always be closed.
func DelayFee(r model.Rental, returnedOn model.Date) int64 {
	late := int64(LateDays(r, returnedOn))
	if late == 0 || r.OriginalPrice <= 0 {
		return 0
	}
	if late > math.MaxInt64/r.OriginalPrice {
		return math.MaxInt64
	}
	return late * r.OriginalPrice
}
