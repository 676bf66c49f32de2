package handlers

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/qrave1/zoomer/internal/application/constant"
	"github.com/qrave1/zoomer/internal/domain/input"
	"github.com/qrave1/zoomer/internal/infra/ports/http/dto"
	"github.com/qrave1/zoomer/internal/usecase"
)

type RoomHandler struct {
	roomUsecase  usecase.RoomUsecase
	stateUsecase usecase.StateUsecase
}

func NewRoomHandler(roomUsecase usecase.RoomUsecase, stateUsecase usecase.StateUsecase) *RoomHandler {
	return &RoomHandler{
		roomUsecase:  roomUsecase,
		stateUsecase: stateUsecase,
	}
}

func (h *RoomHandler) CurrentState(c echo.Context) error {
	state, err := h.stateUsecase.CurrentState(c.Request().Context())
	if err != nil {
		return respondError(c, "fetch current state", err)
	}

	return c.JSON(http.StatusOK, dto.NewRoomsStateResponse(state))
}

func (h *RoomHandler) AvailableRooms(c echo.Context) error {
	rooms, err := h.stateUsecase.AvailableRooms(c.Request().Context())
	if err != nil {
		return respondError(c, "fetch available rooms", err)
	}

	return c.JSON(http.StatusOK, dto.NewRoomsResponse(rooms))
}

func (h *RoomHandler) ActiveRooms(c echo.Context) error {
	rooms, err := h.stateUsecase.ActiveRooms(c.Request().Context())
	if err != nil {
		return respondError(c, "fetch active rooms", err)
	}

	return c.JSON(http.StatusOK, dto.NewActiveRoomsResponse(rooms))
}

func (h *RoomHandler) SingleRoom(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return respondNotFound(c)
	}

	room, err := h.stateUsecase.SingleRoom(c.Request().Context(), id)
	if err != nil {
		return respondError(c, "fetch single room", err)
	}

	return c.JSON(http.StatusOK, dto.RoomDetailsResponse{Room: dto.NewRoomResponseFromModel(room)})
}

func (h *RoomHandler) CreateRoom(c echo.Context) error {
	var req dto.CreateRoomRequest
	if err := c.Bind(&req); err != nil {
		return respondInvalidPayload(c, err)
	}

	in := req.ToInput()
	if err := in.Validate(); err != nil {
		return respondInvalidPayload(c, err)
	}

	room, err := h.roomUsecase.CreateRoom(c.Request().Context(), in)
	if err != nil {
		return respondError(c, "create room", err)
	}

	slog.Info("room created", roomAttrs(room.ID.String(), room.Name, room.RoomID)...)

	return c.JSON(http.StatusCreated, dto.RoomDetailsResponse{Room: dto.NewRoomResponseFromModel(room)})
}

func (h *RoomHandler) UpdateRoom(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return respondNotFound(c)
	}

	var req dto.CreateRoomRequest
	if err := c.Bind(&req); err != nil {
		return respondInvalidPayload(c, err)
	}

	in := &input.UpdateRoomInput{ID: id, CreateRoomInput: *req.ToInput()}
	if err := in.Validate(); err != nil {
		return respondInvalidPayload(c, err)
	}

	room, err := h.roomUsecase.UpdateRoom(c.Request().Context(), in)
	if err != nil {
		return respondError(c, "update room", err)
	}

	slog.Info("room updated", roomAttrs(room.ID.String(), room.Name, room.RoomID)...)

	return c.JSON(http.StatusOK, dto.RoomDetailsResponse{Room: dto.NewRoomResponseFromModel(room)})
}

func roomAttrs(id, name, code string) []any {
	return []any{
		slog.String(constant.RoomID, id),
		slog.String(constant.RoomName, name),
		slog.String(constant.RoomCode, code),
	}
}
