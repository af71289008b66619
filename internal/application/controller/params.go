package controller

import (
	"net/url"

	"github.com/labstack/echo/v4"
)

// pathParam returns the decoded path parameter; echo leaves it escaped when the raw path is used for routing
func pathParam(c echo.Context, name string) string {
	value := c.Param(name)
	if decoded, err := url.PathUnescape(value); err == nil {
		return decoded
	}
	return value
}
