package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qrave1/zoomer/internal/domain/errs"
	"github.com/qrave1/zoomer/internal/domain/input"
	"github.com/qrave1/zoomer/internal/domain/models"
)

func occupyInput(roomID uuid.UUID, title string) *input.OccupyRoomInput {
	return &input.OccupyRoomInput{
		OccupiedRoomID: roomID,
		OccupiedUntil:  time.Now().Add(30 * time.Minute),
		MeetingTitle:   title,
	}
}

func TestOccupy(t *testing.T) {
	env := newTestEnv()
	room := env.mustCreateRoom(t, "Atlas", "A1")

	occ, err := env.ledger.Occupy(context.Background(), occupyInput(room.ID, "Standup"))
	require.NoError(t, err)

	assert.NotZero(t, occ.ID)
	assert.Equal(t, room.ID, occ.OccupiedRoomID)

	active, err := env.projection.ActiveRooms(context.Background())
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, room.ID, active[0].ID)
	assert.Equal(t, "Standup", active[0].MeetingTitle)
}

func TestOccupy_RoomNotFound(t *testing.T) {
	env := newTestEnv()

	_, err := env.ledger.Occupy(context.Background(), occupyInput(uuid.New(), "Standup"))

	assert.ErrorIs(t, err, errs.ErrRoomNotFound)
}

func TestOccupy_AlreadyOccupied(t *testing.T) {
	env := newTestEnv()
	room := env.mustCreateRoom(t, "Atlas", "A1")

	_, err := env.ledger.Occupy(context.Background(), occupyInput(room.ID, "Standup"))
	require.NoError(t, err)

	_, err = env.ledger.Occupy(context.Background(), occupyInput(room.ID, "Retro"))
	assert.ErrorIs(t, err, errs.ErrRoomOccupied)
}

// blindOccupancies не видит существующую занятость, как проигравший гонку запрос
type blindOccupancies struct {
	OccupancyRepository
}

func (blindOccupancies) GetByRoomID(context.Context, uuid.UUID) (*models.Occupancy, error) {
	return nil, errs.ErrRoomNotOccupied
}

func TestOccupy_StoreConstraintCatchesRace(t *testing.T) {
	env := newTestEnv()
	room := env.mustCreateRoom(t, "Atlas", "A1")

	_, err := env.ledger.Occupy(context.Background(), occupyInput(room.ID, "Standup"))
	require.NoError(t, err)

	uc := env.ledger.(*occupancyUsecase)
	racy := NewOccupancyUsecase(uc.roomRepo, blindOccupancies{OccupancyRepository: uc.occupancyRepo})

	_, err = racy.Occupy(context.Background(), occupyInput(room.ID, "Retro"))
	assert.ErrorIs(t, err, errs.ErrRoomOccupied)
}

func TestOccupy_ConcurrentCallsYieldOneWinner(t *testing.T) {
	const n = 32

	env := newTestEnv()
	room := env.mustCreateRoom(t, "Atlas", "A1")

	var (
		wg       sync.WaitGroup
		start    = make(chan struct{})
		results  = make(chan error, n)
		ctx      = context.Background()
		occupied int
		won      int
	)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start

			_, err := env.ledger.Occupy(ctx, occupyInput(room.ID, "Standup"))
			results <- err
		}()
	}

	close(start)
	wg.Wait()
	close(results)

	for err := range results {
		switch {
		case err == nil:
			won++
		case errs.KindOf(err) == errs.KindRoomOccupied:
			occupied++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, won)
	assert.Equal(t, n-1, occupied)
}

func TestFree(t *testing.T) {
	env := newTestEnv()
	room := env.mustCreateRoom(t, "Atlas", "A1")

	_, err := env.ledger.Occupy(context.Background(), occupyInput(room.ID, "Standup"))
	require.NoError(t, err)

	require.NoError(t, env.ledger.Free(context.Background(), room.ID))

	err = env.ledger.Free(context.Background(), room.ID)
	assert.ErrorIs(t, err, errs.ErrRoomNotOccupied)
}

func TestFree_NeverOccupied(t *testing.T) {
	env := newTestEnv()
	room := env.mustCreateRoom(t, "Atlas", "A1")

	err := env.ledger.Free(context.Background(), room.ID)

	assert.ErrorIs(t, err, errs.ErrRoomNotOccupied)
}

func TestFree_RoomNotFound(t *testing.T) {
	env := newTestEnv()

	err := env.ledger.Free(context.Background(), uuid.New())

	assert.ErrorIs(t, err, errs.ErrRoomNotFound)
}

func TestListAll(t *testing.T) {
	env := newTestEnv()
	atlas := env.mustCreateRoom(t, "Atlas", "A1")
	boreas := env.mustCreateRoom(t, "Boreas", "B1")

	_, err := env.ledger.Occupy(context.Background(), occupyInput(atlas.ID, "Standup"))
	require.NoError(t, err)
	_, err = env.ledger.Occupy(context.Background(), occupyInput(boreas.ID, "Retro"))
	require.NoError(t, err)

	occupancies, err := env.ledger.ListAll(context.Background())
	require.NoError(t, err)

	assert.Len(t, occupancies, 2)
}

func TestOccupy_CanceledContextIsInternal(t *testing.T) {
	env := newTestEnv()
	room := env.mustCreateRoom(t, "Atlas", "A1")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := env.ledger.Occupy(ctx, occupyInput(room.ID, "Standup"))

	assert.Equal(t, errs.KindInternal, errs.KindOf(err))
	assert.ErrorIs(t, err, context.Canceled)
}
