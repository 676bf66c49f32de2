package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/qrave1/zoomer/internal/domain/models"
)

const occupancyColumns = `
	occupancies.occupied_until,
	occupancies.meeting_title,
	occupancies.comments AS meeting_comments`

// StateRepo строит представления комнат запросами к текущему состоянию базы,
// без кэша
type StateRepo struct {
	db *sqlx.DB
}

func NewStateRepo(db *sqlx.DB) *StateRepo {
	return &StateRepo{db: db}
}

func (r *StateRepo) Available(ctx context.Context) ([]*models.Room, error) {
	var rows []roomRow

	query := "SELECT" + roomColumns + `
		FROM rooms
		LEFT OUTER JOIN occupancies ON rooms.id = occupancies.occupied_room_id
		WHERE occupancies.id IS NULL
		ORDER BY rooms.name`

	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("select available rooms: %w", err)
	}

	rooms := make([]*models.Room, 0, len(rows))
	for i := range rows {
		rooms = append(rooms, rows[i].toModel())
	}

	return rooms, nil
}

func (r *StateRepo) Active(ctx context.Context) ([]*models.ActiveRoom, error) {
	var rows []activeRoomRow

	query := "SELECT" + roomColumns + "," + occupancyColumns + `
		FROM rooms
		JOIN occupancies ON rooms.id = occupancies.occupied_room_id
		ORDER BY rooms.name`

	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("select active rooms: %w", err)
	}

	rooms := make([]*models.ActiveRoom, 0, len(rows))
	for i := range rows {
		rooms = append(rooms, rows[i].toModel())
	}

	return rooms, nil
}

// Snapshot читает все комнаты одним запросом и делит их по наличию занятости,
// поэтому каждая комната попадает ровно в один список.
func (r *StateRepo) Snapshot(ctx context.Context) (*models.RoomsState, error) {
	var rows []stateRow

	query := "SELECT" + roomColumns + `,
		occupancies.id AS occupancy_id,` + occupancyColumns + `
		FROM rooms
		LEFT OUTER JOIN occupancies ON rooms.id = occupancies.occupied_room_id
		ORDER BY rooms.name`

	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("select rooms state: %w", err)
	}

	state := &models.RoomsState{
		Available: make([]*models.Room, 0, len(rows)),
		Active:    make([]*models.ActiveRoom, 0),
	}

	for i := range rows {
		row := &rows[i]
		room := (&roomRow{Room: row.Room, TimeLimitSeconds: row.TimeLimitSeconds}).toModel()

		if !row.OccupancyID.Valid {
			state.Available = append(state.Available, room)
			continue
		}

		state.Active = append(state.Active, &models.ActiveRoom{
			Room:            *room,
			IsActive:        true,
			OccupiedUntil:   row.OccupiedUntil.Time,
			MeetingTitle:    row.MeetingTitle.String,
			MeetingComments: row.MeetingComments.String,
		})
	}

	return state, nil
}
