package game

type CreateGameReq struct {
	Name        string `json:"name" validate:"required"`
	Image       string `json:"image" validate:"omitempty,url"`
	StockTotal  int    `json:"stockTotal" validate:"required,gte=1,max=2147483647"`
	CategoryID  int64  `json:"categoryId" validate:"required,gt=0,max=2147483647"`
	PricePerDay int64  `json:"pricePerDay" validate:"required,gte=1,max=2147483647"`
}
