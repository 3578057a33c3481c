package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gotaskboard/internal/board/domain/entities"
)

func TestDecodeTask(t *testing.T) {
	t.Run("maps a valid record", func(t *testing.T) {
		task, err := entities.DecodeTask([]byte(`{"id":12,"userId":3,"title":"buy milk","completed":true}`))
		require.NoError(t, err)

		assert.Equal(t, 12, task.ID)
		assert.Equal(t, 3, task.UserID)
		assert.Equal(t, "buy milk", task.Title)
		assert.True(t, task.Completed)
	})

	t.Run("rejects record without owner", func(t *testing.T) {
		_, err := entities.DecodeTask([]byte(`{"id":12,"title":"x","completed":false}`))
		assert.ErrorIs(t, err, entities.ErrMalformedResponse)
	})

	t.Run("rejects record without completion flag", func(t *testing.T) {
		_, err := entities.DecodeTask([]byte(`{"id":12,"userId":3,"title":"x"}`))
		assert.ErrorIs(t, err, entities.ErrMalformedResponse)
	})

	t.Run("rejects unknown fields", func(t *testing.T) {
		_, err := entities.DecodeTask([]byte(`{"id":12,"userId":3,"title":"x","completed":false,"extra":1}`))
		assert.ErrorIs(t, err, entities.ErrMalformedResponse)
	})
}

func TestDecodeTasks(t *testing.T) {
	tasks, err := entities.DecodeTasks([]byte(`[
		{"id":1,"userId":3,"title":"first","completed":false},
		{"id":2,"userId":3,"title":"second","completed":true}
	]`))
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "second", tasks[1].Title)
}

func TestValidateTaskID(t *testing.T) {
	require.NoError(t, entities.ValidateTaskID(201))

	err := entities.ValidateTaskID(0)
	require.Error(t, err)
	assert.ErrorIs(t, err, entities.ErrInvalidTaskID)
	assert.ErrorIs(t, err, entities.ErrInvalidInput)
}

func TestValidateTitle(t *testing.T) {
	t.Run("trims surrounding whitespace", func(t *testing.T) {
		title, err := entities.ValidateTitle("  Buy milk  ")
		require.NoError(t, err)
		assert.Equal(t, "Buy milk", title)
	})

	t.Run("rejects titles shorter than the minimum after trimming", func(t *testing.T) {
		for _, title := range []string{"", "ab", "  ab  ", "\t a \n"} {
			_, err := entities.ValidateTitle(title)
			require.Error(t, err)
			assert.ErrorIs(t, err, entities.ErrTitleTooShort)
			assert.ErrorIs(t, err, entities.ErrInvalidInput)
		}
	})
}
