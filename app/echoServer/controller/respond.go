package controller

import (
	"log/slog"
	"net/http"
	"strconv"

	"boardcamp/app/echoServer/validation"
	"boardcamp/model"
	"boardcamp/util/apperr"

	"github.com/labstack/echo/v4"
)

// Status maps an error code to its HTTP status. Uncoded errors are 500.
func Status(code apperr.Code) int {
	switch code {
	case apperr.InvalidArgument, apperr.InvalidState:
		return http.StatusBadRequest
	case apperr.NotFound:
		return http.StatusNotFound
	case apperr.Conflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Fail writes err as {"message": ...}. Server errors are logged with the
// request id and their detail stays out of the response body.
func Fail(c echo.Context, log *slog.Logger, op string, err error) error {
	log = orDefault(log)
	status := Status(apperr.CodeOf(err))
	if status >= http.StatusInternalServerError {
		log.Error(op+" failed",
			"err", err,
			"req_id", c.Response().Header().Get(echo.HeaderXRequestID),
			"path", c.Path(),
			"method", c.Request().Method,
		)
		return c.JSON(status, echo.Map{"message": "internal error"})
	}
	log.Warn(op+" rejected", "path", c.Path(), "err", err)
	return c.JSON(status, echo.Map{"message": apperr.Message(err)})
}

// Bind decodes and validates the request body into req. On failure it
// writes the 400 response itself and returns false.
func Bind(c echo.Context, log *slog.Logger, req any) (bool, error) {
	log = orDefault(log)
	if err := c.Bind(req); err != nil {
		log.Warn("bind failed", "path", c.Path(), "err", err)
		return false, c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}
	if err := c.Validate(req); err != nil {
		log.Warn("validation failed", "path", c.Path(), "err", err)
		body := echo.Map{"message": "validation error"}
		if fields := validation.Fields(err); len(fields) > 0 {
			body["errors"] = fields
		}
		return false, c.JSON(http.StatusBadRequest, body)
	}
	return true, nil
}

// ParamID parses a positive integer path parameter that fits a SERIAL id.
func ParamID(c echo.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 || id > model.MaxInt4 {
		return 0, false
	}
	return id, true
}

func InvalidID(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
}

func orDefault(log *slog.Logger) *slog.Logger {
	if log == nil {
		return slog.Default()
	}
	return log
}
