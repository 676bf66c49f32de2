package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/qrave1/zoomer/internal/domain/input"
)

type Room struct {
	ID        uuid.UUID     `db:"id"`
	Name      string        `db:"name"`
	RoomID    string        `db:"room_id"`
	Capacity  string        `db:"capacity"`
	TimeLimit time.Duration `db:"-"`
	Link      string        `db:"link"`
	Comments  string        `db:"comments"`
}

func NewRoom(in *input.CreateRoomInput) *Room {
	return &Room{
		ID:        uuid.New(),
		Name:      in.Name,
		RoomID:    in.RoomID,
		Capacity:  in.Capacity,
		TimeLimit: time.Duration(in.TimeLimit) * time.Minute,
		Link:      in.Link,
		Comments:  in.Comments,
	}
}

// Apply переносит изменения в комнату, идентификатор не меняется
func (r *Room) Apply(in *input.UpdateRoomInput) {
	r.Name = in.Name
	r.RoomID = in.RoomID
	r.Capacity = in.Capacity
	r.TimeLimit = time.Duration(in.TimeLimit) * time.Minute
	r.Link = in.Link
	r.Comments = in.Comments
}

// ActiveRoom это комната вместе с её текущей занятостью
type ActiveRoom struct {
	Room

	IsActive        bool
	OccupiedUntil   time.Time
	MeetingTitle    string
	MeetingComments string
}

func NewActiveRoom(room *Room, occ *Occupancy) *ActiveRoom {
	return &ActiveRoom{
		Room:            *room,
		IsActive:        true,
		OccupiedUntil:   occ.OccupiedUntil,
		MeetingTitle:    occ.MeetingTitle,
		MeetingComments: occ.Comments,
	}
}

type RoomsState struct {
	Available []*Room
	Active    []*ActiveRoom
}
