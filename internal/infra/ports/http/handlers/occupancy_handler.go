package handlers

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/qrave1/zoomer/internal/application/constant"
	"github.com/qrave1/zoomer/internal/infra/ports/http/dto"
	"github.com/qrave1/zoomer/internal/usecase"
)

type OccupancyHandler struct {
	occupancyUsecase usecase.OccupancyUsecase
}

func NewOccupancyHandler(occupancyUsecase usecase.OccupancyUsecase) *OccupancyHandler {
	return &OccupancyHandler{occupancyUsecase: occupancyUsecase}
}

func (h *OccupancyHandler) ListOccupancies(c echo.Context) error {
	occupancies, err := h.occupancyUsecase.ListAll(c.Request().Context())
	if err != nil {
		return respondError(c, "fetch occupancies", err)
	}

	return c.JSON(http.StatusOK, dto.NewOccupanciesResponse(occupancies))
}

func (h *OccupancyHandler) OccupyRoom(c echo.Context) error {
	var req dto.OccupyRoomRequest
	if err := c.Bind(&req); err != nil {
		return respondInvalidPayload(c, err)
	}

	in := req.ToInput()
	if err := in.Validate(); err != nil {
		return respondInvalidPayload(c, err)
	}

	occ, err := h.occupancyUsecase.Occupy(c.Request().Context(), in)
	if err != nil {
		return respondError(c, "occupy room", err)
	}

	slog.Info("room occupied", slog.String(constant.RoomID, occ.OccupiedRoomID.String()))

	return c.JSON(http.StatusCreated, dto.OccupancyDetailsResponse{Occupancy: dto.NewOccupancyResponseFromModel(occ)})
}

func (h *OccupancyHandler) FreeUpRoom(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return respondNotFound(c)
	}

	if err := h.occupancyUsecase.Free(c.Request().Context(), id); err != nil {
		return respondError(c, "free up room", err)
	}

	slog.Info("room freed", slog.String(constant.RoomID, id.String()))

	return c.JSON(http.StatusOK, dto.MessageResponse{Success: true, Message: "Room is free now"})
}
