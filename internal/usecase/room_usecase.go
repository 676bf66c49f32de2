package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/qrave1/zoomer/internal/application/metric"
	"github.com/qrave1/zoomer/internal/domain/errs"
	"github.com/qrave1/zoomer/internal/domain/input"
	"github.com/qrave1/zoomer/internal/domain/models"
)

type RoomUsecase interface {
	CreateRoom(ctx context.Context, in *input.CreateRoomInput) (*models.Room, error)
	GetRoom(ctx context.Context, id uuid.UUID) (*models.Room, error)
	UpdateRoom(ctx context.Context, in *input.UpdateRoomInput) (*models.Room, error)
}

type roomUsecase struct {
	roomRepo RoomRepository
}

func NewRoomUsecase(roomRepo RoomRepository) RoomUsecase {
	return &roomUsecase{roomRepo: roomRepo}
}

func (uc *roomUsecase) CreateRoom(ctx context.Context, in *input.CreateRoomInput) (*models.Room, error) {
	room, err := uc.createRoom(ctx, in)
	metric.RecordRoomOperation("create", result(err))

	return room, err
}

func (uc *roomUsecase) createRoom(ctx context.Context, in *input.CreateRoomInput) (*models.Room, error) {
	if err := in.Validate(); err != nil {
		return nil, errs.Invalid(err)
	}

	room := models.NewRoom(in)

	if err := uc.checkConflicts(ctx, room); err != nil {
		return nil, err
	}

	// Ограничения UNIQUE в хранилище ловят гонку между проверкой и вставкой
	if err := uc.roomRepo.Create(ctx, room); err != nil {
		return nil, errs.Wrap("create room", err)
	}

	return room, nil
}

func (uc *roomUsecase) GetRoom(ctx context.Context, id uuid.UUID) (*models.Room, error) {
	room, err := uc.roomRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errs.Wrap("get room", err)
	}

	return room, nil
}

func (uc *roomUsecase) UpdateRoom(ctx context.Context, in *input.UpdateRoomInput) (*models.Room, error) {
	room, err := uc.updateRoom(ctx, in)
	metric.RecordRoomOperation("update", result(err))

	return room, err
}

func (uc *roomUsecase) updateRoom(ctx context.Context, in *input.UpdateRoomInput) (*models.Room, error) {
	if err := in.Validate(); err != nil {
		return nil, errs.Invalid(err)
	}

	room, err := uc.roomRepo.GetByID(ctx, in.ID)
	if err != nil {
		return nil, errs.Wrap("get room", err)
	}

	room.Apply(in)

	if err := uc.checkConflicts(ctx, room); err != nil {
		return nil, err
	}

	if err := uc.roomRepo.Update(ctx, room); err != nil {
		return nil, errs.Wrap("update room", err)
	}

	return room, nil
}

// checkConflicts ищет другие комнаты с тем же name или room_id.
// Совпадение по имени важнее совпадения по room_id.
func (uc *roomUsecase) checkConflicts(ctx context.Context, room *models.Room) error {
	conflicts, err := uc.roomRepo.FindConflicts(ctx, room.Name, room.RoomID, room.ID)
	if err != nil {
		return errs.Wrap("find conflicting rooms", err)
	}

	var nameTaken, roomIDTaken bool
	for _, c := range conflicts {
		if c.Name == room.Name {
			nameTaken = true
		}
		if c.RoomID == room.RoomID {
			roomIDTaken = true
		}
	}

	return errs.Wrap("check room uniqueness", errs.Conflict(nameTaken, roomIDTaken))
}

func result(err error) string {
	if err == nil {
		return metric.ResultOK
	}

	return string(errs.KindOf(err))
}
