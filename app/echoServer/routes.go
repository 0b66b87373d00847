package echoServer

import (
	"boardcamp/app/echoServer/controller/category"
	"boardcamp/app/echoServer/controller/customer"
	"boardcamp/app/echoServer/controller/game"
	"boardcamp/app/echoServer/controller/rental"

	"github.com/labstack/echo/v4"
)

type C struct {
	Category *category.Controller
	Game     *game.Controller
	Customer *customer.Controller
	Rental   *rental.Controller
}

func Register(e *echo.Echo, c C) {
	// Categories
	e.GET("/categories", c.Category.List)
	e.POST("/categories", c.Category.Create)

	// Games
	e.GET("/games", c.Game.List)
	e.GET("/games/:name", c.Game.List)
	e.POST("/games", c.Game.Create)

	// Customers
	e.GET("/customers", c.Customer.List)
	e.GET("/customers/:id", c.Customer.Get)
	e.POST("/customers", c.Customer.Create)
	e.PUT("/customers/:id", c.Customer.Update)

	// Rentals
	e.GET("/rentals", c.Rental.List)
	e.GET("/rentals/:id", c.Rental.Get)
	e.POST("/rentals", c.Rental.Create)
	e.POST("/rentals/:id/return", c.Rental.Return)
	e.DELETE("/rentals/:id", c.Rental.Delete)
}
