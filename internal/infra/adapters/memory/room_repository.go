package memory

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/qrave1/zoomer/internal/domain/errs"
	"github.com/qrave1/zoomer/internal/domain/models"
)

type RoomRepository struct {
	s *Store
}

func (r *RoomRepository) Create(ctx context.Context, room *models.Room) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.s.checkUnique(room); err != nil {
		return err
	}

	r.s.rooms[room.ID] = *room
	r.s.names[room.Name] = room.ID
	r.s.codes[room.RoomID] = room.ID

	return nil
}

func (r *RoomRepository) Update(ctx context.Context, room *models.Room) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	old, ok := r.s.rooms[room.ID]
	if !ok {
		return errs.ErrRoomNotFound
	}

	if err := r.s.checkUnique(room); err != nil {
		return err
	}

	delete(r.s.names, old.Name)
	delete(r.s.codes, old.RoomID)

	r.s.rooms[room.ID] = *room
	r.s.names[room.Name] = room.ID
	r.s.codes[room.RoomID] = room.ID

	return nil
}

func (r *RoomRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Room, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	room, ok := r.s.rooms[id]
	if !ok {
		return nil, errs.ErrRoomNotFound
	}

	return &room, nil
}

func (r *RoomRepository) FindConflicts(ctx context.Context, name, roomID string, exclude uuid.UUID) ([]*models.Room, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var rooms []*models.Room

	for id, room := range r.s.rooms {
		if id == exclude {
			continue
		}

		if room.Name == name || room.RoomID == roomID {
			room := room
			rooms = append(rooms, &room)
		}
	}

	sort.Slice(rooms, func(i, j int) bool { return rooms[i].Name < rooms[j].Name })

	return rooms, nil
}

// checkUnique повторяет UNIQUE(name) и UNIQUE(room_id). Вызывается под s.mu.
func (s *Store) checkUnique(room *models.Room) error {
	if id, ok := s.names[room.Name]; ok && id != room.ID {
		return &errs.Error{Kind: errs.KindRoomWithNameExists, Fields: []string{errs.FieldName}}
	}

	if id, ok := s.codes[room.RoomID]; ok && id != room.ID {
		return &errs.Error{Kind: errs.KindRoomWithIdExists, Fields: []string{errs.FieldRoomID}}
	}

	return nil
}
