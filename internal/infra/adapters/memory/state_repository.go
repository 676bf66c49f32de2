package memory

import (
	"context"
	"sort"

	"github.com/qrave1/zoomer/internal/domain/models"
)

type StateRepository struct {
	s *Store
}

func (r *StateRepository) Available(ctx context.Context) ([]*models.Room, error) {
	state, err := r.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	return state.Available, nil
}

func (r *StateRepository) Active(ctx context.Context) ([]*models.ActiveRoom, error) {
	state, err := r.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	return state.Active, nil
}

// Snapshot делит комнаты под одной блокировкой чтения
func (r *StateRepository) Snapshot(ctx context.Context) (*models.RoomsState, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	state := &models.RoomsState{
		Available: make([]*models.Room, 0, len(r.s.rooms)),
		Active:    make([]*models.ActiveRoom, 0, len(r.s.occupancies)),
	}

	for id, room := range r.s.rooms {
		room := room

		occ, ok := r.s.occupancies[id]
		if !ok {
			state.Available = append(state.Available, &room)
			continue
		}

		state.Active = append(state.Active, models.NewActiveRoom(&room, &occ))
	}

	sort.Slice(state.Available, func(i, j int) bool { return state.Available[i].Name < state.Available[j].Name })
	sort.Slice(state.Active, func(i, j int) bool { return state.Active[i].Name < state.Active[j].Name })

	return state, nil
}
