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

type OccupancyRepo struct {
	db *sqlx.DB
}

func NewOccupancyRepo(db *sqlx.DB) *OccupancyRepo {
	return &OccupancyRepo{db: db}
}

// Create вставляет занятость и заполняет occ.ID. Проигранная гонка за комнату
// приходит из уникального индекса и становится ErrRoomOccupied.
func (r *OccupancyRepo) Create(ctx context.Context, occ *models.Occupancy) error {
	err := r.db.QueryRowxContext(
		ctx,
		`INSERT INTO occupancies (occupied_room_id, occupied_until, meeting_title, comments)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		occ.OccupiedRoomID,
		occ.OccupiedUntil,
		occ.MeetingTitle,
		occ.Comments,
	).Scan(&occ.ID)
	if err != nil {
		return fmt.Errorf("insert occupancy: %w", classify(err))
	}

	return nil
}

func (r *OccupancyRepo) GetByRoomID(ctx context.Context, roomID uuid.UUID) (*models.Occupancy, error) {
	var occ models.Occupancy

	err := r.db.GetContext(
		ctx,
		&occ,
		`SELECT id, occupied_room_id, occupied_until, meeting_title, comments
		FROM occupancies
		WHERE occupied_room_id = $1`,
		roomID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.ErrRoomNotOccupied
		}

		return nil, fmt.Errorf("select occupancy: %w", err)
	}

	return &occ, nil
}

// DeleteByRoomID освобождает комнату одним DELETE, так что из двух
// одновременных вызовов успешен только один.
func (r *OccupancyRepo) DeleteByRoomID(ctx context.Context, roomID uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM occupancies WHERE occupied_room_id = $1", roomID)
	if err != nil {
		return fmt.Errorf("delete occupancy: %w", err)
	}

	aff, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete occupancy rows affected: %w", err)
	}

	if aff == 0 {
		return errs.ErrRoomNotOccupied
	}

	return nil
}

func (r *OccupancyRepo) List(ctx context.Context) ([]*models.Occupancy, error) {
	var occupancies []*models.Occupancy

	err := r.db.SelectContext(
		ctx,
		&occupancies,
		"SELECT id, occupied_room_id, occupied_until, meeting_title, comments FROM occupancies",
	)
	if err != nil {
		return nil, fmt.Errorf("select occupancies: %w", err)
	}

	return occupancies, nil
}
