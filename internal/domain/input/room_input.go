package input

import (
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNameRequired          = errors.New("name is required")
	ErrRoomIDRequired        = errors.New("room_id is required")
	ErrOccupiedRoomRequired  = errors.New("occupied_room_id is required")
	ErrOccupiedUntilRequired = errors.New("occupied_until is required")
	ErrTimeLimitTooLarge     = errors.New("time_limit is too large")
)

// MaxTimeLimit наибольшее число минут, которое помещается в time.Duration
const MaxTimeLimit = uint64(math.MaxInt64 / int64(time.Minute))

type CreateRoomInput struct {
	Name     string
	RoomID   string
	Capacity string
	// TimeLimit в минутах
	TimeLimit uint64
	Link      string
	Comments  string
}

func (in *CreateRoomInput) Validate() error {
	if in.Name == "" {
		return ErrNameRequired
	}
	if in.RoomID == "" {
		return ErrRoomIDRequired
	}
	if in.TimeLimit > MaxTimeLimit {
		return ErrTimeLimitTooLarge
	}

	return nil
}

type UpdateRoomInput struct {
	ID uuid.UUID
	CreateRoomInput
}

type OccupyRoomInput struct {
	OccupiedRoomID uuid.UUID
	OccupiedUntil  time.Time
	MeetingTitle   string
	Comments       string
}

func (in *OccupyRoomInput) Validate() error {
	if in.OccupiedRoomID == uuid.Nil {
		return ErrOccupiedRoomRequired
	}
	if in.OccupiedUntil.IsZero() {
		return ErrOccupiedUntilRequired
	}

	return nil
}
