package dto

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/qrave1/zoomer/internal/domain/input"
	"github.com/qrave1/zoomer/internal/domain/models"
)

type CreateRoomRequest struct {
	Name     string `json:"name"`
	RoomID   string `json:"room_id"`
	Capacity string `json:"capacity"`
	// TimeLimit в минутах
	TimeLimit uint64 `json:"time_limit"`
	Link      string `json:"link"`
	Comments  string `json:"comments"`
}

func (r *CreateRoomRequest) ToInput() *input.CreateRoomInput {
	return &input.CreateRoomInput{
		Name:      r.Name,
		RoomID:    r.RoomID,
		Capacity:  r.Capacity,
		TimeLimit: r.TimeLimit,
		Link:      r.Link,
		Comments:  r.Comments,
	}
}

type RoomResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	RoomID    string    `json:"room_id"`
	Capacity  string    `json:"capacity"`
	TimeLimit string    `json:"time_limit"`
	Link      string    `json:"link"`
	Comments  string    `json:"comments"`
}

func NewRoomResponseFromModel(room *models.Room) RoomResponse {
	return RoomResponse{
		ID:        room.ID,
		Name:      room.Name,
		RoomID:    room.RoomID,
		Capacity:  room.Capacity,
		TimeLimit: FormatTimeLimit(room.TimeLimit),
		Link:      room.Link,
		Comments:  room.Comments,
	}
}

type ActiveRoomResponse struct {
	RoomResponse

	IsActive        bool      `json:"is_active"`
	OccupiedUntil   time.Time `json:"occupied_until"`
	MeetingTitle    string    `json:"meeting_title"`
	MeetingComments string    `json:"meeting_comments"`
}

func NewActiveRoomResponseFromModel(room *models.ActiveRoom) ActiveRoomResponse {
	return ActiveRoomResponse{
		RoomResponse:    NewRoomResponseFromModel(&room.Room),
		IsActive:        room.IsActive,
		OccupiedUntil:   room.OccupiedUntil,
		MeetingTitle:    room.MeetingTitle,
		MeetingComments: room.MeetingComments,
	}
}

type RoomDetailsResponse struct {
	Room RoomResponse `json:"room_details"`
}

type RoomsResponse struct {
	Rooms []RoomResponse `json:"rooms"`
}

func NewRoomsResponse(rooms []*models.Room) RoomsResponse {
	resp := RoomsResponse{Rooms: make([]RoomResponse, 0, len(rooms))}
	for _, room := range rooms {
		resp.Rooms = append(resp.Rooms, NewRoomResponseFromModel(room))
	}

	return resp
}

type ActiveRoomsResponse struct {
	Rooms []ActiveRoomResponse `json:"rooms"`
}

func NewActiveRoomsResponse(rooms []*models.ActiveRoom) ActiveRoomsResponse {
	resp := ActiveRoomsResponse{Rooms: make([]ActiveRoomResponse, 0, len(rooms))}
	for _, room := range rooms {
		resp.Rooms = append(resp.Rooms, NewActiveRoomResponseFromModel(room))
	}

	return resp
}

type RoomsStateResponse struct {
	AvailableRooms []RoomResponse       `json:"available_rooms"`
	ActiveRooms    []ActiveRoomResponse `json:"active_rooms"`
}

func NewRoomsStateResponse(state *models.RoomsState) RoomsStateResponse {
	return RoomsStateResponse{
		AvailableRooms: NewRoomsResponse(state.Available).Rooms,
		ActiveRooms:    NewActiveRoomsResponse(state.Active).Rooms,
	}
}

// FormatTimeLimit печатает длительность как HH:MM:SS
func FormatTimeLimit(d time.Duration) string {
	// Отрицательных лимитов не бывает: вход ограничен input.MaxTimeLimit
	total := max(int64(d/time.Second), 0)

	return fmt.Sprintf("%02d:%02d:%02d", total/3600, total%3600/60, total%60)
}
