package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

func parseIDParam(c echo.Context, name string) (int64, error) {
	return strconv.ParseInt(c.Param(name), 10, 64)
}

// idToString renders snowflake IDs as strings. They exceed the integer
// range JSON consumers can be trusted with.
func idToString(id int64) string {
	return strconv.FormatInt(id, 10)
}
