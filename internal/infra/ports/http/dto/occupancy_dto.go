package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/qrave1/zoomer/internal/domain/input"
	"github.com/qrave1/zoomer/internal/domain/models"
)

type OccupyRoomRequest struct {
	OccupiedRoomID uuid.UUID `json:"occupied_room_id"`
	OccupiedUntil  time.Time `json:"occupied_until"`
	MeetingTitle   string    `json:"meeting_title"`
	Comments       string    `json:"comments"`
}

func (r *OccupyRoomRequest) ToInput() *input.OccupyRoomInput {
	return &input.OccupyRoomInput{
		OccupiedRoomID: r.OccupiedRoomID,
		OccupiedUntil:  r.OccupiedUntil,
		MeetingTitle:   r.MeetingTitle,
		Comments:       r.Comments,
	}
}

type OccupancyResponse struct {
	ID             int64     `json:"id"`
	OccupiedRoomID uuid.UUID `json:"occupied_room_id"`
	OccupiedUntil  time.Time `json:"occupied_until"`
	MeetingTitle   string    `json:"meeting_title"`
	Comments       string    `json:"comments"`
}

func NewOccupancyResponseFromModel(occ *models.Occupancy) OccupancyResponse {
	return OccupancyResponse{
		ID:             occ.ID,
		OccupiedRoomID: occ.OccupiedRoomID,
		OccupiedUntil:  occ.OccupiedUntil,
		MeetingTitle:   occ.MeetingTitle,
		Comments:       occ.Comments,
	}
}

type OccupancyDetailsResponse struct {
	Occupancy OccupancyResponse `json:"occupancy"`
}

type OccupanciesResponse struct {
	Occupancies []OccupancyResponse `json:"occupancies"`
}

func NewOccupanciesResponse(occupancies []*models.Occupancy) OccupanciesResponse {
	resp := OccupanciesResponse{Occupancies: make([]OccupancyResponse, 0, len(occupancies))}
	for _, occ := range occupancies {
		resp.Occupancies = append(resp.Occupancies, NewOccupancyResponseFromModel(occ))
	}

	return resp
}
