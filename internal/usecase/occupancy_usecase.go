package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/qrave1/zoomer/internal/application/metric"
	"github.com/qrave1/zoomer/internal/domain/errs"
	"github.com/qrave1/zoomer/internal/domain/input"
	"github.com/qrave1/zoomer/internal/domain/models"
)

type OccupancyUsecase interface {
	Occupy(ctx context.Context, in *input.OccupyRoomInput) (*models.Occupancy, error)
	Free(ctx context.Context, roomID uuid.UUID) error
	ListAll(ctx context.Context) ([]*models.Occupancy, error)
}

type occupancyUsecase struct {
	roomRepo      RoomRepository
	occupancyRepo OccupancyRepository
}

func NewOccupancyUsecase(roomRepo RoomRepository, occupancyRepo OccupancyRepository) OccupancyUsecase {
	return &occupancyUsecase{
		roomRepo:      roomRepo,
		occupancyRepo: occupancyRepo,
	}
}

func (uc *occupancyUsecase) Occupy(ctx context.Context, in *input.OccupyRoomInput) (*models.Occupancy, error) {
	occ, err := uc.occupy(ctx, in)
	metric.RecordRoomOperation("occupy", result(err))

	return occ, err
}

func (uc *occupancyUsecase) occupy(ctx context.Context, in *input.OccupyRoomInput) (*models.Occupancy, error) {
	if err := in.Validate(); err != nil {
		return nil, errs.Invalid(err)
	}

	if _, err := uc.roomRepo.GetByID(ctx, in.OccupiedRoomID); err != nil {
		return nil, errs.Wrap("get room", err)
	}

	_, err := uc.occupancyRepo.GetByRoomID(ctx, in.OccupiedRoomID)
	switch {
	case err == nil:
		return nil, errs.Wrap("occupy room", errs.ErrRoomOccupied)
	case !errors.Is(err, errs.ErrRoomNotOccupied):
		return nil, errs.Wrap("get occupancy", err)
	}

	// Проверка выше только даёт понятную ошибку. Одновременные вызовы
	// разводит уникальный индекс по occupied_room_id.
	occ := models.NewOccupancy(in)
	if err := uc.occupancyRepo.Create(ctx, occ); err != nil {
		return nil, errs.Wrap("create occupancy", err)
	}

	return occ, nil
}

func (uc *occupancyUsecase) Free(ctx context.Context, roomID uuid.UUID) error {
	err := uc.free(ctx, roomID)
	metric.RecordRoomOperation("free", result(err))

	return err
}

func (uc *occupancyUsecase) free(ctx context.Context, roomID uuid.UUID) error {
	err := uc.occupancyRepo.DeleteByRoomID(ctx, roomID)
	if errors.Is(err, errs.ErrRoomNotOccupied) {
		if _, getErr := uc.roomRepo.GetByID(ctx, roomID); getErr != nil {
			return errs.Wrap("get room", getErr)
		}
	}

	return errs.Wrap("free room", err)
}

func (uc *occupancyUsecase) ListAll(ctx context.Context) ([]*models.Occupancy, error) {
	occupancies, err := uc.occupancyRepo.List(ctx)
	if err != nil {
		return nil, errs.Wrap("list occupancies", err)
	}

	return occupancies, nil
}
