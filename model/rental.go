// model/rental.go
package model

type RentalState string

const (
	RentalOpen   RentalState = "OPEN"
	RentalClosed RentalState = "CLOSED"
)

// CanTransition reports whether a rental may move from one state to
// another. OPEN -> CLOSED is the only edge; CLOSED is terminal.
func CanTransition(from, to RentalState) bool {
	return from == RentalOpen && to == RentalClosed
}

type Rental struct {
	ID            int64 `json:"id"`
	CustomerID    int64 `json:"customerId"`
	GameID        int64 `json:"gameId"`
	RentDate      Date  `json:"rentDate"`
	DaysRented    int   `json:"daysRented"`
	ReturnDate    *Date `json:"returnDate"`
	OriginalPrice int64 `json:"originalPrice"`
	DelayFee      int64 `json:"delayFee"`
}

func (r Rental) State() RentalState {
	if r.ReturnDate == nil {
		return RentalOpen
	}
	return RentalClosed
}

// Deletable reports whether the rental may be purged. Only closed
// rentals can be.
func (r Rental) Deletable() bool { return r.State() == RentalClosed }

type RentalCustomer struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type RentalGame struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	CategoryID   int64  `json:"categoryId"`
	CategoryName string `json:"categoryName"`
}

// RentalDetail is a rental joined with its customer and game.
type RentalDetail struct {
	Rental
	Customer RentalCustomer `json:"customer"`
	Game     RentalGame     `json:"game"`
}
