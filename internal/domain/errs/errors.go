// Package errs описывает таксономию ошибок комнат и занятости.
//
// Каждая операция ядра возвращает либо результат, либо *Error одного из видов
// ниже. Вид (Kind) и список конфликтующих полей достаточно структурированы,
// чтобы HTTP слой выбрал статус без разбора текста ошибки.
package errs

import (
	"errors"
	"fmt"
	"strings"
)

type Kind string

const (
	KindInternal           Kind = "internal"
	KindRoomNotFound       Kind = "room_not_found"
	KindRoomWithNameExists Kind = "room_with_name_exists"
	KindRoomWithIdExists   Kind = "room_with_id_exists"
	KindRoomOccupied       Kind = "room_occupied"
	KindRoomNotOccupied    Kind = "room_not_occupied"
	KindInvalidInput       Kind = "invalid_input"
)

// Конфликтующие поля комнаты
const (
	FieldName   = "name"
	FieldRoomID = "room_id"
)

type Error struct {
	Kind   Kind
	Fields []string
	Err    error
}

var (
	ErrRoomNotFound       = &Error{Kind: KindRoomNotFound}
	ErrRoomWithNameExists = &Error{Kind: KindRoomWithNameExists}
	ErrRoomWithIdExists   = &Error{Kind: KindRoomWithIdExists}
	ErrRoomOccupied       = &Error{Kind: KindRoomOccupied}
	ErrRoomNotOccupied    = &Error{Kind: KindRoomNotOccupied}
)

func (e *Error) Error() string {
	var b strings.Builder

	b.WriteString(strings.ReplaceAll(string(e.Kind), "_", " "))

	if len(e.Fields) > 0 {
		b.WriteString(" (")
		b.WriteString(strings.Join(e.Fields, ", "))
		b.WriteString(")")
	}

	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}

	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is сравнивает только вид ошибки, поэтому errors.Is(err, ErrRoomOccupied)
// срабатывает и для ошибок с деталями.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return t.Kind == e.Kind
}

// Conflict строит ошибку уникальности комнаты. Имя имеет приоритет над room_id.
func Conflict(nameTaken, roomIDTaken bool) error {
	var fields []string
	if nameTaken {
		fields = append(fields, FieldName)
	}
	if roomIDTaken {
		fields = append(fields, FieldRoomID)
	}

	switch {
	case nameTaken:
		return &Error{Kind: KindRoomWithNameExists, Fields: fields}
	case roomIDTaken:
		return &Error{Kind: KindRoomWithIdExists, Fields: fields}
	default:
		return nil
	}
}

// Invalid помечает ошибку проверки входных данных
func Invalid(err error) error {
	return &Error{Kind: KindInvalidInput, Err: err}
}

func Internal(err error) error {
	return &Error{Kind: KindInternal, Err: err}
}

// Wrap добавляет к ошибке имя операции. Неклассифицированные ошибки
// хранилища становятся KindInternal.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}

	wrapped := fmt.Errorf("%s: %w", op, err)

	var e *Error
	if errors.As(err, &e) {
		return wrapped
	}

	return Internal(wrapped)
}

func KindOf(err error) Kind {
	if err == nil {
		return ""
	}

	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}

	return KindInternal
}

func FieldsOf(err error) []string {
	var e *Error
	if errors.As(err, &e) {
		return e.Fields
	}

	return nil
}
