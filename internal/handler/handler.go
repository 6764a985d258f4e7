package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "recipebook/internal/errors"
)

// respondError maps a domain error onto the HTTP contract.
func respondError(c echo.Context, err error) error {
	httpErr := apperrors.MapErrorToHTTP(err)
	return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
}

// bindNameError inspects a bind failure. A JSON value of the wrong type for a
// string field is the typed-boundary version of the "name is not a string"
// validation failure; anything else is a generic bad-request.
func bindNameError(err error, notAString error) error {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		var typeErr *json.UnmarshalTypeError
		if errors.As(httpErr.Internal, &typeErr) && typeErr.Type.Kind() == reflect.String {
			return notAString
		}
	}
	return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
}

// pathID parses a numeric path parameter.
func pathID(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return uint(id), nil
}

// intQuery returns the first present query parameter among names, or def.
func intQuery(c echo.Context, def int, names ...string) int {
	for _, name := range names {
		if v := c.QueryParam(name); v != "" {
			if parsed, err := strconv.Atoi(v); err == nil {
				return parsed
			}
		}
	}
	return def
}
