package handlers

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/qrave1/zoomer/internal/application/constant"
	"github.com/qrave1/zoomer/internal/domain/errs"
	"github.com/qrave1/zoomer/internal/infra/ports/http/dto"
)

const (
	MessageNotFound       = "Not found"
	MessageInvalidPayload = "Invalid request payload, check if all fields are sent/correct"
	MessageInternal       = "Internal server error"
)

type errorStatus struct {
	code    int
	message string
}

var statusByKind = map[errs.Kind]errorStatus{
	errs.KindRoomNotFound:       {http.StatusNotFound, "Requested room does not exist"},
	errs.KindRoomWithNameExists: {http.StatusBadRequest, "Room with same name exists"},
	errs.KindRoomWithIdExists:   {http.StatusBadRequest, "Room with same room id exists"},
	errs.KindRoomOccupied:       {http.StatusBadRequest, "Room is already occupied, check selected room"},
	errs.KindRoomNotOccupied:    {http.StatusBadRequest, "Room is not occupied, check selected room"},
	errs.KindInvalidInput:       {http.StatusBadRequest, MessageInvalidPayload},
}

// respondError выбирает статус по виду ошибки. Детали внутренних ошибок
// пишутся только в лог.
func respondError(c echo.Context, op string, err error) error {
	kind := errs.KindOf(err)

	st, ok := statusByKind[kind]
	if !ok {
		slog.Error(op, slog.Any(constant.Error, err))

		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Message: MessageInternal,
			Kind:    string(errs.KindInternal),
		})
	}

	slog.Info(op, slog.String(constant.Kind, string(kind)), slog.Any(constant.Error, err))

	return c.JSON(st.code, dto.ErrorResponse{
		Message: st.message,
		Kind:    string(kind),
		Fields:  errs.FieldsOf(err),
	})
}

func respondInvalidPayload(c echo.Context, err error) error {
	slog.Info("invalid request payload", slog.Any(constant.Error, err))

	return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: MessageInvalidPayload})
}

func respondNotFound(c echo.Context) error {
	return c.JSON(http.StatusNotFound, dto.ErrorResponse{Message: MessageNotFound})
}
