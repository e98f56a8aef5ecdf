package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWeekday(t *testing.T) {
	day, err := ParseWeekday(" Monday ")
	require.NoError(t, err)
	assert.Equal(t, Monday, day)

	_, err = ParseWeekday("funday")
	assert.ErrorIs(t, err, ErrInvalidWeekday)
}

func TestWeekdayOrderAndLabels(t *testing.T) {
	require.Len(t, Weekdays, 7)
	assert.Equal(t, Monday, Weekdays[0])
	assert.Equal(t, Sunday, Weekdays[6])
	assert.Equal(t, 2, Wednesday.Index())
	assert.Equal(t, -1, Weekday("x").Index())

	assert.Equal(t, "Segunda", Monday.Label())
	assert.Equal(t, "Sábado", Saturday.Label())
	assert.Equal(t, "x", Weekday("x").Label())
}
