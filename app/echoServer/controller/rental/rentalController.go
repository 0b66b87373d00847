package rental

import (
	"log/slog"
	"net/http"
	"strings"

	"boardcamp/app/echoServer/controller"
	"boardcamp/model"
	rs "boardcamp/service/rental"

	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc rs.Service
	Log *slog.Logger
}

// List rentals
// @Summary      List rentals
// @Description  Rentals joined with customer and game, optionally filtered
// @Tags         rentals
// @Produce      json
// @Param        customerId  query  int     false  "customer id"
// @Param        gameId      query  int     false  "game id"
// @Param        status      query  string  false  "open | closed"
// @Success      200  {object}  map[string]any
// @Failure      400  {object}  map[string]any
// @Failure      500  {object}  map[string]any
// @Router       /rentals [get]
func (h *Controller) List(c echo.Context) error {
	var f rs.Filter
	var status string
	err := echo.QueryParamsBinder(c).
		Int64("customerId", &f.CustomerID).
		Int64("gameId", &f.GameID).
		String("status", &status).
		BindError()
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid query"})
	}
	f.Status = model.RentalState(strings.ToUpper(strings.TrimSpace(status)))

	rows, err := h.Svc.List(c.Request().Context(), f)
	if err != nil {
		return controller.Fail(c, h.Log, "rental list", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}

// Get a rental
// @Summary      Get a rental
// @Description  One rental joined with its customer and game
// @Tags         rentals
// @Produce      json
// @Param        id   path  int  true  "rental id"
// @Success      200  {object}  model.RentalDetail
// @Failure      400  {object}  map[string]any
// @Failure      404  {object}  map[string]any
// @Failure      500  {object}  map[string]any
// @Router       /rentals/{id} [get]
func (h *Controller) Get(c echo.Context) error {
	id, ok := controller.ParamID(c, "id")
	if !ok {
		return controller.InvalidID(c)
	}
	row, err := h.Svc.Get(c.Request().Context(), id)
	if err != nil {
		return controller.Fail(c, h.Log, "rental get", err)
	}
	return c.JSON(http.StatusOK, row)
}

// Create a rental
// @Summary      Rent a game
// @Description  Opens a rental dated today, priced pricePerDay × daysRented
// @Tags         rentals
// @Accept       json
// @Produce      json
// @Param        payload  body  CreateRentalReq  true  "Rental payload"
// @Success      201  {object}  model.Rental
// @Failure      400  {object}  map[string]any
// @Failure      404  {object}  map[string]any "game or customer not found"
// @Failure      500  {object}  map[string]any
// @Router       /rentals [post]
func (h *Controller) Create(c echo.Context) error {
	var req CreateRentalReq
	if ok, err := controller.Bind(c, h.Log, &req); !ok {
		return err
	}

	out, err := h.Svc.Create(c.Request().Context(), req.CustomerID, req.GameID, req.DaysRented)
	if err != nil {
		return controller.Fail(c, h.Log, "rental create", err)
	}
	return c.JSON(http.StatusCreated, out)
}

// Return a rental
// @Summary      Return a rental
// @Description  Closes an open rental; late returns pay originalPrice per late day
// @Tags         rentals
// @Produce      json
// @Param        id   path  int  true  "rental id"
// @Success      200  {object}  model.Rental
// @Failure      400  {object}  map[string]any "already returned"
// @Failure      404  {object}  map[string]any
// @Failure      500  {object}  map[string]any
// @Router       /rentals/{id}/return [post]
func (h *Controller) Return(c echo.Context) error {
	id, ok := controller.ParamID(c, "id")
	if !ok {
		return controller.InvalidID(c)
	}

	out, err := h.Svc.Return(c.Request().Context(), id)
	if err != nil {
		return controller.Fail(c, h.Log, "rental return", err)
	}
	return c.JSON(http.StatusOK, out)
}

// Delete a rental
// @Summary      Delete a returned rental
// @Tags         rentals
// @Produce      json
// @Param        id   path  int  true  "rental id"
// @Success      200  {object}  map[string]any
// @Failure      400  {object}  map[string]any "rental still open"
// @Failure      404  {object}  map[string]any
// @Failure      500  {object}  map[string]any
// @Router       /rentals/{id} [delete]
func (h *Controller) Delete(c echo.Context) error {
	id, ok := controller.ParamID(c, "id")
	if !ok {
		return controller.InvalidID(c)
	}

	if err := h.Svc.Delete(c.Request().Context(), id); err != nil {
		return controller.Fail(c, h.Log, "rental delete", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "deleted"})
}
