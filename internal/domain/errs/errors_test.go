package errs

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConflict_NameWins(t *testing.T) {
	err := Conflict(true, true)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRoomWithNameExists)
	assert.NotErrorIs(t, err, ErrRoomWithIdExists)
	assert.Equal(t, []string{FieldName, FieldRoomID}, FieldsOf(err))
}

func TestConflict_RoomIDOnly(t *testing.T) {
	err := Conflict(false, true)

	assert.ErrorIs(t, err, ErrRoomWithIdExists)
	assert.Equal(t, []string{FieldRoomID}, FieldsOf(err))
}

func TestConflict_None(t *testing.T) {
	assert.NoError(t, Conflict(false, false))
}

func TestWrap_KeepsKind(t *testing.T) {
	err := Wrap("occupy room", ErrRoomOccupied)

	assert.ErrorIs(t, err, ErrRoomOccupied)
	assert.Equal(t, KindRoomOccupied, KindOf(err))
	assert.Equal(t, "occupy room: room occupied", err.Error())
}

func TestWrap_UnknownBecomesInternal(t *testing.T) {
	err := Wrap("list occupancies", context.DeadlineExceeded)

	assert.Equal(t, KindInternal, KindOf(err))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestWrap_Nil(t *testing.T) {
	assert.NoError(t, Wrap("noop", nil))
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, Kind(""), KindOf(nil))
	assert.Equal(t, KindInternal, KindOf(errors.New("boom")))
	assert.Equal(t, KindRoomNotFound, KindOf(fmt.Errorf("get room: %w", ErrRoomNotFound)))
}

func TestInvalid(t *testing.T) {
	cause := errors.New("name is required")

	err := Wrap("create room", Invalid(cause))

	assert.Equal(t, KindInvalidInput, KindOf(err))
	assert.ErrorIs(t, err, cause)
}
