package customer

import (
	"log/slog"
	"net/http"

	"boardcamp/app/echoServer/controller"
	"boardcamp/model"
	customersvc "boardcamp/service/customer"

	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc customersvc.Service
	Log *slog.Logger
}

// List customers
// @Summary      List customers
// @Description  Customers whose cpf starts with the given digits
// @Tags         customers
// @Produce      json
// @Param        cpf  query  string  false  "cpf prefix"
// @Success      200  {object}  map[string]any
// @Failure      500  {object}  map[string]any
// @Router       /customers [get]
func (h *Controller) List(c echo.Context) error {
	rows, err := h.Svc.List(c.Request().Context(), c.QueryParam("cpf"))
	if err != nil {
		return controller.Fail(c, h.Log, "customer list", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}

// Get a customer
// @Summary      Get a customer
// @Tags         customers
// @Produce      json
// @Param        id   path  int  true  "customer id"
// @Success      200  {object}  model.Customer
// @Failure      400  {object}  map[string]any
// @Failure      404  {object}  map[string]any
// @Failure      500  {object}  map[string]any
// @Router       /customers/{id} [get]
func (h *Controller) Get(c echo.Context) error {
	id, ok := controller.ParamID(c, "id")
	if !ok {
		return controller.InvalidID(c)
	}
	row, err := h.Svc.Get(c.Request().Context(), id)
	if err != nil {
		return controller.Fail(c, h.Log, "customer get", err)
	}
	return c.JSON(http.StatusOK, row)
}

// Create a customer
// @Summary      Create a customer
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        payload  body  model.CreateCustomerReq  true  "Customer payload"
// @Success      201  {object}  model.Customer
// @Failure      400  {object}  map[string]any
// @Failure      409  {object}  map[string]any "cpf already registered"
// @Failure      500  {object}  map[string]any
// @Router       /customers [post]
func (h *Controller) Create(c echo.Context) error {
	var req model.CreateCustomerReq
	if ok, err := controller.Bind(c, h.Log, &req); !ok {
		return err
	}
	out, err := h.Svc.Create(c.Request().Context(), req)
	if err != nil {
		return controller.Fail(c, h.Log, "customer create", err)
	}
	return c.JSON(http.StatusCreated, out)
}

// Update a customer
// @Summary      Update a customer
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        id       path  int                      true  "customer id"
// @Param        payload  body  model.CreateCustomerReq  true  "Customer payload"
// @Success      200  {object}  model.Customer
// @Failure      400  {object}  map[string]any
// @Failure      404  {object}  map[string]any
// @Failure      409  {object}  map[string]any "cpf already registered"
// @Failure      500  {object}  map[string]any
// @Router       /customers/{id} [put]
func (h *Controller) Update(c echo.Context) error {
	id, ok := controller.ParamID(c, "id")
	if !ok {
		return controller.InvalidID(c)
	}
	var req model.CreateCustomerReq
	if ok, err := controller.Bind(c, h.Log, &req); !ok {
		return err
	}
	out, err := h.Svc.Update(c.Request().Context(), id, req)
	if err != nil {
		return controller.Fail(c, h.Log, "customer update", err)
	}
	return c.JSON(http.StatusOK, out)
}
