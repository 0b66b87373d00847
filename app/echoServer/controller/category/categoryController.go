package category

import (
	"log/slog"
	"net/http"

	"boardcamp/app/echoServer/controller"
	categorysvc "boardcamp/service/category"

	"github.com/labstack/echo/v4"
)

type CreateCategoryReq struct {
	Name string `json:"name" validate:"required"`
}

type Controller struct {
	Svc categorysvc.Service
	Log *slog.Logger
}

// List categories
// @Summary      List categories
// @Tags         categories
// @Produce      json
// @Success      200  {object}  map[string]any
// @Failure      500  {object}  map[string]any
// @Router       /categories [get]
func (h *Controller) List(c echo.Context) error {
	rows, err := h.Svc.List(c.Request().Context())
	if err != nil {
		return controller.Fail(c, h.Log, "category list", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}

// Create a category
// @Summary      Create a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        payload  body  CreateCategoryReq  true  "Category payload"
// @Success      201  {object}  model.Category
// @Failure      400  {object}  map[string]any
// @Failure      409  {object}  map[string]any "name already taken"
// @Failure      500  {object}  map[string]any
// @Router       /categories [post]
func (h *Controller) Create(c echo.Context) error {
	var req CreateCategoryReq
	if ok, err := controller.Bind(c, h.Log, &req); !ok {
		return err
	}
	out, err := h.Svc.Create(c.Request().Context(), req.Name)
	if err != nil {
		return controller.Fail(c, h.Log, "category create", err)
	}
	return c.JSON(http.StatusCreated, out)
}
