package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundCents(t *testing.T) {
	assert.Equal(t, 9.41, RoundCents(9.4133))
	assert.Equal(t, 9.42, RoundCents(9.4151))
	assert.Equal(t, -1.23, RoundCents(-1.2349))
}

func TestParseOptionalPrice(t *testing.T) {
	t.Run("nil and blank mean not attempted", func(t *testing.T) {
		parsed, err := ParseOptionalPrice(nil)
		assert.NoError(t, err)
		assert.Nil(t, parsed)

		blank := "   "
		parsed, err = ParseOptionalPrice(&blank)
		assert.NoError(t, err)
		assert.Nil(t, parsed)
	})

	t.Run("parses numeric strings", func(t *testing.T) {
		value := " 4.05 "
		parsed, err := ParseOptionalPrice(&value)
		assert.NoError(t, err)
		assert.Equal(t, 4.05, *parsed)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		value := "4.o5"
		_, err := ParseOptionalPrice(&value)
		assert.Error(t, err)
	})
}
