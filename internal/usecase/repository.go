package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/qrave1/zoomer/internal/domain/models"
)

// Репозитории реализуются адаптерами postgres и memory. Нарушения ограничений
// хранилища они возвращают как ошибки из пакета errs.

type RoomRepository interface {
	Create(ctx context.Context, room *models.Room) error
	Update(ctx context.Context, room *models.Room) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Room, error)
	FindConflicts(ctx context.Context, name, roomID string, exclude uuid.UUID) ([]*models.Room, error)
}

type OccupancyRepository interface {
	Create(ctx context.Context, occ *models.Occupancy) error
	GetByRoomID(ctx context.Context, roomID uuid.UUID) (*models.Occupancy, error)
	DeleteByRoomID(ctx context.Context, roomID uuid.UUID) error
	List(ctx context.Context) ([]*models.Occupancy, error)
}

type StateRepository interface {
	Available(ctx context.Context) ([]*models.Room, error)
	Active(ctx context.Context) ([]*models.ActiveRoom, error)
	Snapshot(ctx context.Context) (*models.RoomsState, error)
}
