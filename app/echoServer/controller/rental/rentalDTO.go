package rental

type CreateRentalReq struct {
	CustomerID int64 `json:"customerId" validate:"required,gt=0,max=2147483647"`
	GameID     int64 `json:"gameId" validate:"required,gt=0,max=2147483647"`
	DaysRented int   `json:"daysRented" validate:"required,gt=0,max=2147483647"`
}
