package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/qrave1/zoomer/internal/domain/input"
)

type Occupancy struct {
	ID             int64     `db:"id"`
	OccupiedRoomID uuid.UUID `db:"occupied_room_id"`
	OccupiedUntil  time.Time `db:"occupied_until"`
	MeetingTitle   string    `db:"meeting_title"`
	Comments       string    `db:"comments"`
}

// NewOccupancy создаёт запись без ID, его назначает хранилище
func NewOccupancy(in *input.OccupyRoomInput) *Occupancy {
	return &Occupancy{
		OccupiedRoomID: in.OccupiedRoomID,
		OccupiedUntil:  in.OccupiedUntil.UTC(),
		MeetingTitle:   in.MeetingTitle,
		Comments:       in.Comments,
	}
}
