package profile

import (
	"testing"
	"time"

	"booklibrary/internal/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func str(s string) *string { return &s }

var today = time.Date(2024, 5, 11, 0, 0, 0, 0, time.UTC)

func TestUpdateCommand_Changes(t *testing.T) {
	t.Run("valid fields", func(t *testing.T) {
		public := true
		ch, err := UpdateCommand{
			Username: str(" reader "),
			Birthday: str("1990-05-12"),
			Postcode: str("22003"),
			Phone:    str("+375 (29) 123-45-67"),
			Sex:      str("f"),
			City:     str("mi"),
			IsPublic: &public,
		}.Changes(today)

		require.NoError(t, err)
		assert.Equal(t, "reader", *ch.Username)
		assert.Equal(t, time.Date(1990, 5, 12, 0, 0, 0, 0, time.UTC), *ch.Birthday)
		assert.Equal(t, "22003", *ch.Postcode)
		assert.Equal(t, "F", *ch.Sex)
		assert.Equal(t, "MI", *ch.City)
		assert.True(t, *ch.IsPublic)
	})

	t.Run("empty phone clears it", func(t *testing.T) {
		ch, err := UpdateCommand{Phone: str("")}.Changes(today)
		require.NoError(t, err)
		assert.Equal(t, "", *ch.Phone)
	})

	tests := []struct {
		name string
		cmd  UpdateCommand
		want error
	}{
		{"short postcode", UpdateCommand{Postcode: str("1234")}, ErrPostcode},
		{"empty postcode", UpdateCommand{Postcode: str(" ")}, ErrPostcode},
		{"signed postcode", UpdateCommand{Postcode: str("+1234")}, ErrPostcode},
		{"letters in postcode", UpdateCommand{Postcode: str("12a45")}, ErrPostcode},
		{"wrong operator code", UpdateCommand{Phone: str("+375 (17) 123-45-67")}, ErrPhone},
		{"unformatted phone", UpdateCommand{Phone: str("+375291234567")}, ErrPhone},
		{"unknown sex", UpdateCommand{Sex: str("X")}, ErrSex},
		{"unknown city", UpdateCommand{City: str("LA")}, ErrCity},
		{"bad birthday", UpdateCommand{Birthday: str("12/05/1990")}, ErrBirthday},
		{"future birthday", UpdateCommand{Birthday: str("2024-05-12")}, ErrBirthdayFuture},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.cmd.Changes(today)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestUpdateCommand_KnownCodes(t *testing.T) {
	for _, sex := range user.Sexes {
		_, err := UpdateCommand{Sex: str(sex)}.Changes(today)
		assert.NoError(t, err, sex)
	}
	for _, city := range user.Cities {
		_, err := UpdateCommand{City: str(city)}.Changes(today)
		assert.NoError(t, err, city)
	}
}

func TestAge(t *testing.T) {
	assert.Equal(t, 33, age(time.Date(1990, 5, 12, 0, 0, 0, 0, time.UTC), today))
	assert.Equal(t, 34, age(time.Date(1990, 5, 11, 0, 0, 0, 0, time.UTC), today))
	assert.Equal(t, 4, age(time.Date(2020, 2, 29, 0, 0, 0, 0, time.UTC), today))
}
