package repository

import (
	"database/sql"
	"time"

	"github.com/qrave1/zoomer/internal/domain/models"
)

// time_limit хранится как INTERVAL и читается в секундах
const roomColumns = `
	rooms.id,
	rooms.name,
	rooms.room_id,
	rooms.capacity,
	EXTRACT(EPOCH FROM rooms.time_limit)::BIGINT AS time_limit,
	rooms.link,
	rooms.comments`

type roomRow struct {
	models.Room
	TimeLimitSeconds int64 `db:"time_limit"`
}

func (r *roomRow) toModel() *models.Room {
	room := r.Room
	room.TimeLimit = time.Duration(r.TimeLimitSeconds) * time.Second

	return &room
}

type activeRoomRow struct {
	models.Room
	TimeLimitSeconds int64     `db:"time_limit"`
	OccupiedUntil    time.Time `db:"occupied_until"`
	MeetingTitle     string    `db:"meeting_title"`
	MeetingComments  string    `db:"meeting_comments"`
}

func (r *activeRoomRow) toModel() *models.ActiveRoom {
	room := r.Room
	room.TimeLimit = time.Duration(r.TimeLimitSeconds) * time.Second

	return &models.ActiveRoom{
		Room:            room,
		IsActive:        true,
		OccupiedUntil:   r.OccupiedUntil,
		MeetingTitle:    r.MeetingTitle,
		MeetingComments: r.MeetingComments,
	}
}

// stateRow это строка LEFT JOIN, поля занятости NULL у свободных комнат
type stateRow struct {
	models.Room
	TimeLimitSeconds int64          `db:"time_limit"`
	OccupancyID      sql.NullInt64  `db:"occupancy_id"`
	OccupiedUntil    sql.NullTime   `db:"occupied_until"`
	MeetingTitle     sql.NullString `db:"meeting_title"`
	MeetingComments  sql.NullString `db:"meeting_comments"`
}

func seconds(d time.Duration) int64 {
	return int64(d / time.Second)
}
