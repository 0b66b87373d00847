package game

import (
	"log/slog"
	"net/http"

	"boardcamp/app/echoServer/controller"
	"boardcamp/model"
	gamesvc "boardcamp/service/game"

	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc gamesvc.Service
	Log *slog.Logger
}

// List games
// @Summary      List games
// @Description  Games whose name starts with the given text, ignoring case. Also served as /games/{name}.
// @Tags         games
// @Produce      json
// @Param        name  query  string  false  "name prefix"
// @Success      200  {object}  map[string]any
// @Failure      500  {object}  map[string]any
// @Router       /games [get]
func (h *Controller) List(c echo.Context) error {
	name := c.Param("name")
	if name == "" {
		name = c.QueryParam("name")
	}
	rows, err := h.Svc.List(c.Request().Context(), name)
	if err != nil {
		return controller.Fail(c, h.Log, "game list", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}

// Create a game
// @Summary      Create a game
// @Tags         games
// @Accept       json
// @Produce      json
// @Param        payload  body  CreateGameReq  true  "Game payload"
// @Success      201  {object}  model.Game
// @Failure      400  {object}  map[string]any "invalid input or unknown category"
// @Failure      409  {object}  map[string]any "name already taken"
// @Failure      500  {object}  map[string]any
// @Router       /games [post]
func (h *Controller) Create(c echo.Context) error {
	var req CreateGameReq
	if ok, err := controller.Bind(c, h.Log, &req); !ok {
		return err
	}
	out, err := h.Svc.Create(c.Request().Context(), model.Game{
		Name:        req.Name,
		Image:       req.Image,
		StockTotal:  req.StockTotal,
		CategoryID:  req.CategoryID,
		PricePerDay: req.PricePerDay,
	})
	if err != nil {
		return controller.Fail(c, h.Log, "game create", err)
	}
	return c.JSON(http.StatusCreated, out)
}
