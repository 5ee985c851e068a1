// Package middleware provides Echo middleware for the finn proxy server.
package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/donaldgifford/finn-client/internal/metrics"
)

const healthzPath = "/healthz"

// metricsSkipPaths are excluded from the request histogram and counter.
var metricsSkipPaths = map[string]struct{}{
	"/metrics":  {},
	healthzPath: {},
}

// Metrics returns Echo middleware that records request duration and status
// by route pattern. The liveness probe only updates finn_healthz_up.
func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Path()
			if path == "" {
				path = c.Request().URL.Path
			}

			if _, skip := metricsSkipPaths[path]; skip {
				err := next(c)
				if path == healthzPath {
					setHealthz(c.Response().Status)
				}
				return err
			}

			start := time.Now()
			err := next(c)

			status := strconv.Itoa(c.Response().Status)
			method := c.Request().Method

			metrics.HTTPRequestDuration.
				WithLabelValues(method, path, status).
				Observe(time.Since(start).Seconds())
			metrics.HTTPRequestsTotal.
				WithLabelValues(method, path, status).
				Inc()

			return err
		}
	}
}

func setHealthz(status int) {
	if status >= 200 && status < 300 {
		metrics.HealthzUp.Set(1)
		return
	}
	metrics.HealthzUp.Set(0)
}
