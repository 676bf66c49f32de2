package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/qrave1/zoomer/internal/domain/input"
	"github.com/qrave1/zoomer/internal/domain/models"
	"github.com/qrave1/zoomer/internal/infra/adapters/memory"
)

type testEnv struct {
	rooms      RoomUsecase
	ledger     OccupancyUsecase
	projection StateUsecase
}

func newTestEnv() *testEnv {
	store := memory.NewStore()

	return &testEnv{
		rooms:      NewRoomUsecase(store.Rooms()),
		ledger:     NewOccupancyUsecase(store.Rooms(), store.Occupancies()),
		projection: NewStateUsecase(store.Rooms(), store.State()),
	}
}

func (e *testEnv) mustCreateRoom(t *testing.T, name, code string) *models.Room {
	t.Helper()

	room, err := e.rooms.CreateRoom(context.Background(), &input.CreateRoomInput{
		Name:      name,
		RoomID:    code,
		TimeLimit: 30,
	})
	require.NoError(t, err)

	return room
}
