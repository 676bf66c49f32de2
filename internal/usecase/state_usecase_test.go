package usecase

import (
	"context"
	"fmt"
	"math/rand"
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

// assertPartition проверяет, что каждая комната ровно в одном списке
func assertPartition(t *testing.T, all []*models.Room, state *models.RoomsState) {
	t.Helper()

	seen := make(map[uuid.UUID]int, len(all))
	for _, room := range state.Available {
		seen[room.ID]++
	}
	for _, room := range state.Active {
		seen[room.ID]++
	}

	require.Len(t, seen, len(all))
	for _, room := range all {
		require.Equal(t, 1, seen[room.ID], "room %s", room.Name)
	}
}

func TestAtlasScenario(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()

	atlas, err := env.rooms.CreateRoom(ctx, &input.CreateRoomInput{Name: "Atlas", RoomID: "A1", TimeLimit: 30})
	require.NoError(t, err)

	available, err := env.projection.AvailableRooms(ctx)
	require.NoError(t, err)
	require.Len(t, available, 1)
	assert.Equal(t, atlas.ID, available[0].ID)

	until := time.Now().Add(30 * time.Minute)
	_, err = env.ledger.Occupy(ctx, &input.OccupyRoomInput{
		OccupiedRoomID: atlas.ID,
		OccupiedUntil:  until,
		MeetingTitle:   "Design review",
	})
	require.NoError(t, err)

	state, err := env.projection.CurrentState(ctx)
	require.NoError(t, err)
	assert.Empty(t, state.Available)
	require.Len(t, state.Active, 1)
	assert.Equal(t, atlas.ID, state.Active[0].ID)
	assert.Equal(t, "Design review", state.Active[0].MeetingTitle)
	assert.True(t, state.Active[0].IsActive)
	assert.True(t, until.UTC().Equal(state.Active[0].OccupiedUntil))

	require.NoError(t, env.ledger.Free(ctx, atlas.ID))

	available, err = env.projection.AvailableRooms(ctx)
	require.NoError(t, err)
	require.Len(t, available, 1)
	assert.Equal(t, atlas.ID, available[0].ID)

	active, err := env.projection.ActiveRooms(ctx)
	require.NoError(t, err)
	assert.Empty(t, active)
}

func TestSingleRoom(t *testing.T) {
	env := newTestEnv()
	room := env.mustCreateRoom(t, "Atlas", "A1")

	_, err := env.ledger.Occupy(context.Background(), occupyInput(room.ID, "Standup"))
	require.NoError(t, err)

	got, err := env.projection.SingleRoom(context.Background(), room.ID)
	require.NoError(t, err)
	assert.Equal(t, room.ID, got.ID)

	_, err = env.projection.SingleRoom(context.Background(), uuid.New())
	assert.ErrorIs(t, err, errs.ErrRoomNotFound)
}

func TestCurrentState_PartitionUnderConcurrentOccupyAndFree(t *testing.T) {
	const (
		roomsCount = 8
		workers    = 8
		iterations = 200
	)

	ctx := context.Background()
	env := newTestEnv()

	rooms := make([]*models.Room, 0, roomsCount)
	for i := 0; i < roomsCount; i++ {
		rooms = append(rooms, env.mustCreateRoom(t, fmt.Sprintf("Room %d", i), fmt.Sprintf("R%d", i)))
	}

	var wg sync.WaitGroup
	done := make(chan struct{})

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()

			rnd := rand.New(rand.NewSource(seed))
			for i := 0; i < iterations; i++ {
				room := rooms[rnd.Intn(len(rooms))]

				var err error
				if rnd.Intn(2) == 0 {
					_, err = env.ledger.Occupy(ctx, occupyInput(room.ID, "Sync"))
				} else {
					err = env.ledger.Free(ctx, room.ID)
				}

				switch errs.KindOf(err) {
				case "", errs.KindRoomOccupied, errs.KindRoomNotOccupied:
				default:
					t.Errorf("unexpected error: %v", err)
					return
				}
			}
		}(int64(w))
	}

	go func() {
		wg.Wait()
		close(done)
	}()

	for {
		state, err := env.projection.CurrentState(ctx)
		require.NoError(t, err)
		assertPartition(t, rooms, state)

		select {
		case <-done:
			return
		default:
		}
	}
}
