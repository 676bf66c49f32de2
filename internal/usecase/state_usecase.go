package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/qrave1/zoomer/internal/domain/errs"
	"github.com/qrave1/zoomer/internal/domain/models"
)

type StateUsecase interface {
	AvailableRooms(ctx context.Context) ([]*models.Room, error)
	ActiveRooms(ctx context.Context) ([]*models.ActiveRoom, error)
	CurrentState(ctx context.Context) (*models.RoomsState, error)
	SingleRoom(ctx context.Context, id uuid.UUID) (*models.Room, error)
}

type stateUsecase struct {
	roomRepo  RoomRepository
	stateRepo StateRepository
}

func NewStateUsecase(roomRepo RoomRepository, stateRepo StateRepository) StateUsecase {
	return &stateUsecase{
		roomRepo:  roomRepo,
		stateRepo: stateRepo,
	}
}

func (uc *stateUsecase) AvailableRooms(ctx context.Context) ([]*models.Room, error) {
	rooms, err := uc.stateRepo.Available(ctx)
	if err != nil {
		return nil, errs.Wrap("available rooms", err)
	}

	return rooms, nil
}

func (uc *stateUsecase) ActiveRooms(ctx context.Context) ([]*models.ActiveRoom, error) {
	rooms, err := uc.stateRepo.Active(ctx)
	if err != nil {
		return nil, errs.Wrap("active rooms", err)
	}

	return rooms, nil
}

func (uc *stateUsecase) CurrentState(ctx context.Context) (*models.RoomsState, error) {
	state, err := uc.stateRepo.Snapshot(ctx)
	if err != nil {
		return nil, errs.Wrap("current state", err)
	}

	return state, nil
}

func (uc *stateUsecase) SingleRoom(ctx context.Context, id uuid.UUID) (*models.Room, error) {
	room, err := uc.roomRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errs.Wrap("single room", err)
	}

	return room, nil
}
