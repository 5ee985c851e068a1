package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime"

	"github.com/labstack/echo/v4"
)

const stackSize = 4 << 10

// Recovery returns Echo middleware that turns a handler panic into a 500 JSON
// error. The panic value, route and stack are logged with the request ID set
// by RequestLog.
func Recovery(log *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}

				buf := make([]byte, stackSize)
				n := runtime.Stack(buf, false)

				reqID, _ := c.Get("request_id").(string)
				log.Error("panic recovered",
					"error", fmt.Sprint(r),
					"method", c.Request().Method,
					"path", c.Request().URL.Path,
					"request_id", reqID,
					"stack", string(buf[:n]),
				)

				err = c.JSON(http.StatusInternalServerError, map[string]any{
					"status": http.StatusInternalServerError,
					"title":  http.StatusText(http.StatusInternalServerError),
				})
			}()
			return next(c)
		}
	}
}
