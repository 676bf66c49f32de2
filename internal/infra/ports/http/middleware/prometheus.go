package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/qrave1/zoomer/internal/application/metric"
)

// PrometheusMiddleware собирает метрики HTTP запросов по шаблону маршрута
func PrometheusMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			statusCode := c.Response().Status
			if statusCode == 0 {
				statusCode = http.StatusOK
			}

			// Ошибка, которую не превратили в ответ, станет 500 или статусом HTTPError
			if err != nil && statusCode < http.StatusBadRequest {
				statusCode = http.StatusInternalServerError

				if he, ok := err.(*echo.HTTPError); ok {
					statusCode = he.Code
				}
			}

			endpoint := c.Path()
			if endpoint == "" {
				endpoint = "unmatched"
			}

			metric.RecordHTTPMetrics(c.Request().Method, endpoint, statusCode, time.Since(start))

			return err
		}
	}
}
