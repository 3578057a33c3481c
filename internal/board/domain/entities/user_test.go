package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gotaskboard/internal/board/domain/entities"
)

const validUserJSON = `{
	"id": 7,
	"name": "Kurtis Weissnat",
	"username": "Elwyn.Skiles",
	"email": "Telly.Hoeger@billy.biz",
	"phone": "210.067.6132",
	"website": "elvis.io",
	"company": {
		"name": "Johns Group",
		"catchPhrase": "Configurable multimedia task-force",
		"bs": "generate enterprise e-tailers"
	},
	"address": {
		"street": "Rex Trail",
		"suite": "Suite 280",
		"city": "Howemouth",
		"zipcode": "58804-1099",
		"geo": {"lat": "24.8918", "lng": "21.8984"}
	}
}`

func TestDecodeUser(t *testing.T) {
	t.Run("maps every field of a valid record", func(t *testing.T) {
		user, err := entities.DecodeUser([]byte(validUserJSON))
		require.NoError(t, err)

		assert.Equal(t, 7, user.ID)
		assert.Equal(t, "Kurtis Weissnat", user.Name)
		assert.Equal(t, "Elwyn.Skiles", user.Username)
		assert.Equal(t, "Telly.Hoeger@billy.biz", user.Email)
		assert.Equal(t, "210.067.6132", user.Phone)
		assert.Equal(t, "elvis.io", user.Website)
		assert.Equal(t, "Johns Group", user.Company.Name)
		assert.Equal(t, "Configurable multimedia task-force", user.Company.CatchPhrase)
		assert.Equal(t, "Howemouth", user.Address.City)
		assert.Equal(t, "24.8918", user.Address.Geo.Lat)
	})

	t.Run("rejects unknown fields", func(t *testing.T) {
		user, err := entities.DecodeUser([]byte(`{"id":1,"name":"A","email":"a@b.c","unexpected":true}`))
		require.Error(t, err)
		assert.Nil(t, user)
		assert.ErrorIs(t, err, entities.ErrMalformedResponse)
	})

	t.Run("rejects record without id", func(t *testing.T) {
		_, err := entities.DecodeUser([]byte(`{"name":"A","email":"a@b.c","company":{},"address":{}}`))
		assert.ErrorIs(t, err, entities.ErrMalformedResponse)
	})

	t.Run("rejects record without email", func(t *testing.T) {
		_, err := entities.DecodeUser([]byte(`{"id":1,"name":"A","company":{},"address":{}}`))
		assert.ErrorIs(t, err, entities.ErrMalformedResponse)
	})

	t.Run("rejects record without nested company", func(t *testing.T) {
		_, err := entities.DecodeUser([]byte(`{"id":1,"name":"A","email":"a@b.c","address":{}}`))
		assert.ErrorIs(t, err, entities.ErrMalformedResponse)
	})

	t.Run("rejects non-json payload", func(t *testing.T) {
		_, err := entities.DecodeUser([]byte(`<html>not json</html>`))
		assert.ErrorIs(t, err, entities.ErrMalformedResponse)
	})
}

func TestDecodeUsers(t *testing.T) {
	t.Run("decodes a collection", func(t *testing.T) {
		users, err := entities.DecodeUsers([]byte("[" + validUserJSON + "]"))
		require.NoError(t, err)
		require.Len(t, users, 1)
		assert.Equal(t, 7, users[0].ID)
	})

	t.Run("fails on first malformed record", func(t *testing.T) {
		_, err := entities.DecodeUsers([]byte(`[{"name":"no id"}]`))
		assert.ErrorIs(t, err, entities.ErrMalformedResponse)
	})
}

func TestValidateUserID(t *testing.T) {
	require.NoError(t, entities.ValidateUserID(1))

	for _, userID := range []int{0, -1, -100} {
		err := entities.ValidateUserID(userID)
		require.Error(t, err)
		assert.ErrorIs(t, err, entities.ErrInvalidUserID)
		assert.ErrorIs(t, err, entities.ErrInvalidInput)
	}
}
