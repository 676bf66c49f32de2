package middleware

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/qrave1/zoomer/internal/application/constant"
)

// SlogLogger пишет каждый запрос в slog. Уровень зависит от статуса ответа.
func SlogLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(
		middleware.RequestLoggerConfig{
			LogStatus:    true,
			LogURI:       true,
			LogRoutePath: true,
			LogMethod:    true,
			LogLatency:   true,
			LogRemoteIP:  true,
			LogError:     true,

			LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
				level := slog.LevelInfo
				if v.Error != nil || v.Status >= http.StatusInternalServerError {
					level = slog.LevelError
				} else if v.Status >= http.StatusBadRequest {
					level = slog.LevelWarn
				}

				attrs := []slog.Attr{
					slog.Int("status", v.Status),
					slog.String("method", v.Method),
					slog.String("uri", v.URI),
					slog.String("route", v.RoutePath),
					slog.String("remote_ip", v.RemoteIP),
					slog.Duration("latency", v.Latency),
				}
				if v.Error != nil {
					attrs = append(attrs, slog.Any(constant.Error, v.Error))
				}

				slog.LogAttrs(c.Request().Context(), level, "HTTP request", attrs...)

				return nil
			},
		},
	)
}
