package memory

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/qrave1/zoomer/internal/domain/errs"
	"github.com/qrave1/zoomer/internal/domain/models"
)

type OccupancyRepository struct {
	s *Store
}

func (r *OccupancyRepository) Create(ctx context.Context, occ *models.Occupancy) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.rooms[occ.OccupiedRoomID]; !ok {
		return errs.ErrRoomNotFound
	}

	if _, ok := r.s.occupancies[occ.OccupiedRoomID]; ok {
		return errs.ErrRoomOccupied
	}

	r.s.seq++
	occ.ID = r.s.seq
	r.s.occupancies[occ.OccupiedRoomID] = *occ

	return nil
}

func (r *OccupancyRepository) GetByRoomID(ctx context.Context, roomID uuid.UUID) (*models.Occupancy, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	occ, ok := r.s.occupancies[roomID]
	if !ok {
		return nil, errs.ErrRoomNotOccupied
	}

	return &occ, nil
}

func (r *OccupancyRepository) DeleteByRoomID(ctx context.Context, roomID uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.occupancies[roomID]; !ok {
		return errs.ErrRoomNotOccupied
	}

	delete(r.s.occupancies, roomID)

	return nil
}

func (r *OccupancyRepository) List(ctx context.Context) ([]*models.Occupancy, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	occupancies := make([]*models.Occupancy, 0, len(r.s.occupancies))
	for _, occ := range r.s.occupancies {
		occ := occ
		occupancies = append(occupancies, &occ)
	}

	sort.Slice(occupancies, func(i, j int) bool { return occupancies[i].ID < occupancies[j].ID })

	return occupancies, nil
}
