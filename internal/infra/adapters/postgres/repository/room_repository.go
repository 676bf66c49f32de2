package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/qrave1/zoomer/internal/domain/errs"
	"github.com/qrave1/zoomer/internal/domain/models"
)

type RoomRepo struct {
	db *sqlx.DB
}

func NewRoomRepo(db *sqlx.DB) *RoomRepo {
	return &RoomRepo{db: db}
}

func (r *RoomRepo) Create(ctx context.Context, room *models.Room) error {
	_, err := r.db.ExecContext(
		ctx,
		`INSERT INTO rooms (id, name, room_id, capacity, time_limit, link, comments)
		VALUES ($1, $2, $3, $4, $5::BIGINT * INTERVAL '1 second', $6, $7)`,
		room.ID,
		room.Name,
		room.RoomID,
		room.Capacity,
		seconds(room.TimeLimit),
		room.Link,
		room.Comments,
	)
	if err != nil {
		return fmt.Errorf("insert room: %w", classify(err))
	}

	return nil
}

func (r *RoomRepo) Update(ctx context.Context, room *models.Room) error {
	res, err := r.db.ExecContext(
		ctx,
		`UPDATE rooms
		SET name = $2, room_id = $3, capacity = $4, time_limit = $5::BIGINT * INTERVAL '1 second', link = $6, comments = $7
		WHERE id = $1`,
		room.ID,
		room.Name,
		room.RoomID,
		room.Capacity,
		seconds(room.TimeLimit),
		room.Link,
		room.Comments,
	)
	if err != nil {
		return fmt.Errorf("update room: %w", classify(err))
	}

	aff, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update room rows affected: %w", err)
	}

	if aff == 0 {
		return errs.ErrRoomNotFound
	}

	return nil
}

func (r *RoomRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Room, error) {
	var row roomRow

	err := r.db.GetContext(ctx, &row, "SELECT"+roomColumns+" FROM rooms WHERE rooms.id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.ErrRoomNotFound
		}

		return nil, fmt.Errorf("select room: %w", err)
	}

	return row.toModel(), nil
}

// FindConflicts возвращает комнаты с тем же именем или room_id, кроме комнаты exclude
func (r *RoomRepo) FindConflicts(ctx context.Context, name, roomID string, exclude uuid.UUID) ([]*models.Room, error) {
	var rows []roomRow

	query := "SELECT" + roomColumns + `
		FROM rooms
		WHERE (rooms.name = $1 OR rooms.room_id = $2) AND rooms.id <> $3`

	if err := r.db.SelectContext(ctx, &rows, query, name, roomID, exclude); err != nil {
		return nil, fmt.Errorf("select conflicting rooms: %w", err)
	}

	rooms := make([]*models.Room, 0, len(rows))
	for i := range rows {
		rooms = append(rooms, rows[i].toModel())
	}

	return rooms, nil
}
