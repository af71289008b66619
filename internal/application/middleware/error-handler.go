package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"weather-api/pkg/log"
	"weather-api/pkg/msg"
)

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// SetupErrorHandler renders every handler error as {"detail": "..."}
func SetupErrorHandler(e *echo.Echo) {
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		detail := http.StatusText(status)

		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			status = httpErr.Code
			detail = fmt.Sprint(httpErr.Message)
			if httpErr.Internal != nil {
				log.Debug(msg.GetMessage("app.req-internal", httpErr.Internal), zap.Error(httpErr.Internal))
			}
		} else {
			log.Error(msg.GetMessage("app.req-unhandled", err), zap.Error(err))
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(status)
		} else {
			err = c.JSON(status, ErrorResponse{Detail: detail})
		}
		if err != nil {
			log.Error(msg.GetMessage("app.resp-write-failed", err), zap.Error(err))
		}
	}
}
