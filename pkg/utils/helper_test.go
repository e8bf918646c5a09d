package utils

import (
	"testing"

	"biograf/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseID(t *testing.T) {
	id, err := ParseID("showtimeId", " 42 ")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	for _, raw := range []string{"", "0", "-3", "abc", "1.5"} {
		_, err := ParseID("showtimeId", raw)
		assert.True(t, apperror.Is(err, apperror.KindInvalidInput), "input %q", raw)
	}
}

func TestSeatLabel(t *testing.T) {
	assert.Equal(t, "A1", SeatLabel("A", 1))
	assert.Equal(t, "C12", SeatLabel("C", 12))
}
