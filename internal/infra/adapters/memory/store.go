package memory

import (
	"sync"

	"github.com/google/uuid"

	"github.com/qrave1/zoomer/internal/domain/models"
)

// Store хранит комнаты и занятости в памяти процесса. Он сам является
// хранилищем, поэтому ограничения уникальности проверяются под его мьютексом
// так же, как их проверяет Postgres.
type Store struct {
	rooms       map[uuid.UUID]models.Room
	names       map[string]uuid.UUID
	codes       map[string]uuid.UUID
	occupancies map[uuid.UUID]models.Occupancy
	seq         int64

	mu sync.RWMutex
}

func NewStore() *Store {
	return &Store{
		rooms:       make(map[uuid.UUID]models.Room),
		names:       make(map[string]uuid.UUID),
		codes:       make(map[string]uuid.UUID),
		occupancies: make(map[uuid.UUID]models.Occupancy),
	}
}

func (s *Store) Rooms() *RoomRepository {
	return &RoomRepository{s: s}
}

func (s *Store) Occupancies() *OccupancyRepository {
	return &OccupancyRepository{s: s}
}

func (s *Store) State() *StateRepository {
	return &StateRepository{s: s}
}
