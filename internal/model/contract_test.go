package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate(" 2024-02-29 ")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC), d)

	_, err = ParseDate("2023-02-29")
	assert.Error(t, err)

	_, err = ParseDate("01/02/2024")
	assert.Error(t, err)
}

func TestContract_IsDue(t *testing.T) {
	c := Contract{EndDate: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)}

	assert.True(t, c.IsDue(time.Date(2024, time.March, 1, 17, 30, 0, 0, time.UTC)))
	assert.True(t, c.IsDue(time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)))
	assert.False(t, c.IsDue(time.Date(2024, time.February, 29, 23, 59, 0, 0, time.UTC)))
}

func TestToday_DropsTimeOfDay(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*60*60)
	now := time.Date(2024, time.May, 3, 1, 15, 0, 0, loc)

	assert.Equal(t, time.Date(2024, time.May, 3, 0, 0, 0, 0, time.UTC), Today(now))
}
