package server

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/qrave1/zoomer/internal/application/config"
	"github.com/qrave1/zoomer/internal/application/constant"
	"github.com/qrave1/zoomer/internal/infra/ports/http/dto"
	"github.com/qrave1/zoomer/internal/infra/ports/http/handlers"
	"github.com/qrave1/zoomer/internal/infra/ports/http/middleware"
)

func New(
	cfg *config.Config,
	roomHandler *handlers.RoomHandler,
	occupancyHandler *handlers.OccupancyHandler,
) *echo.Echo {
	e := echo.New()

	e.HideBanner = true
	e.HidePort = true
	e.Debug = cfg.Debug
	e.HTTPErrorHandler = errorHandler

	e.Use(echomw.Recover())
	e.Use(middleware.SlogLogger())
	e.Use(middleware.PrometheusMiddleware())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
	}))
	// Запросы к хранилищу ограничены таймаутом контекста запроса
	e.Use(echomw.ContextTimeout(cfg.RequestTimeout))

	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Zoomer API active")
	})

	rooms := e.Group("/rooms")
	{
		rooms.GET("", roomHandler.CurrentState)
		rooms.GET("/available", roomHandler.AvailableRooms)
		rooms.GET("/active", roomHandler.ActiveRooms)
		rooms.GET("/occupancies", occupancyHandler.ListOccupancies)
		rooms.GET("/:id", roomHandler.SingleRoom)

		rooms.POST("/new", roomHandler.CreateRoom)
		rooms.POST("/edit/:id", roomHandler.UpdateRoom)

		rooms.POST("/occupy", occupancyHandler.OccupyRoom)
		rooms.GET("/freeup/:id", occupancyHandler.FreeUpRoom)
	}

	return e
}

// errorHandler отдаёт ошибки echo в том же конверте, что и обработчики.
// 404 и 405 неотличимы для клиента.
func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := handlers.MessageInternal

	var he *echo.HTTPError
	if errors.As(err, &he) {
		switch he.Code {
		case http.StatusNotFound, http.StatusMethodNotAllowed:
			code, message = http.StatusNotFound, handlers.MessageNotFound
		case http.StatusBadRequest:
			code, message = http.StatusBadRequest, handlers.MessageInvalidPayload
		case http.StatusServiceUnavailable:
			code = http.StatusServiceUnavailable
		}
	}

	if code >= http.StatusInternalServerError {
		slog.Error("unhandled error", slog.Any(constant.Error, err))
	}

	var respErr error
	if c.Request().Method == http.MethodHead {
		respErr = c.NoContent(code)
	} else {
		respErr = c.JSON(code, dto.ErrorResponse{Message: message})
	}

	if respErr != nil {
		slog.Error("write error response", slog.Any(constant.Error, respErr))
	}
}
