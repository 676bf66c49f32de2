package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/qrave1/zoomer/internal/domain/errs"
)

// Имена ограничений из миграции 00001_create_rooms.sql
const (
	constraintRoomName        = "rooms_name_key"
	constraintRoomCode        = "rooms_room_id_key"
	constraintActiveOccupancy = "occupancies_active_room_idx"
	constraintOccupiedRoomFK  = "occupancies_occupied_room_id_fkey"
)

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

// classify переводит нарушения ограничений Postgres в ошибки домена.
// Остальные ошибки возвращаются как есть.
func classify(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case codeUniqueViolation:
		switch pgErr.ConstraintName {
		case constraintRoomName:
			return &errs.Error{Kind: errs.KindRoomWithNameExists, Fields: []string{errs.FieldName}, Err: err}
		case constraintRoomCode:
			return &errs.Error{Kind: errs.KindRoomWithIdExists, Fields: []string{errs.FieldRoomID}, Err: err}
		case constraintActiveOccupancy:
			return &errs.Error{Kind: errs.KindRoomOccupied, Err: err}
		}
	case codeForeignKeyViolation:
		if pgErr.ConstraintName == constraintOccupiedRoomFK {
			return &errs.Error{Kind: errs.KindRoomNotFound, Err: err}
		}
	}

	return err
}
