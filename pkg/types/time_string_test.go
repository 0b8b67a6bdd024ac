package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeString_Validate(t *testing.T) {
	valid := []string{"00:00", "09:05", "12:30", "19:59", "23:59"}
	for _, s := range valid {
		assert.NoError(t, TimeString(s).Validate(), s)
	}

	invalid := []string{"", "9:00", "24:00", "12:60", "12:5", "12-30", "12:30:00", "ab:cd"}
	for _, s := range invalid {
		assert.ErrorIs(t, TimeString(s).Validate(), ErrInvalidTimeFormat, s)
	}
}

func TestTimeString_MinutesRoundTrip(t *testing.T) {
	// FromMinutes(Minutes(x)) == x для всех корректных значений
	for minutes := 0; minutes < 24*60; minutes++ {
		ts, err := NewTimeStringFromMinutes(minutes)
		require.NoError(t, err)

		back, err := ts.Minutes()
		require.NoError(t, err)
		assert.Equal(t, minutes, back)
	}
}

func TestNewTimeStringFromMinutes_OutOfRange(t *testing.T) {
	for _, minutes := range []int{-1, 1440, 2000} {
		_, err := NewTimeStringFromMinutes(minutes)
		assert.ErrorIs(t, err, ErrMinutesOutOfRange)
	}
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts, err := TimeString("10:00").AddMinutes(45)
	require.NoError(t, err)
	assert.Equal(t, "10:45", ts.String())

	_, err = TimeString("23:30").AddMinutes(45)
	assert.ErrorIs(t, err, ErrMinutesOutOfRange)
}

func TestTimeString_Comparison(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.True(t, TimeString("10:30").IsAfter("10:00"))
}

func TestNewTimeString(t *testing.T) {
	moment := time.Date(2025, 10, 15, 9, 5, 33, 0, time.UTC)
	assert.Equal(t, TimeString("09:05"), NewTimeString(moment))
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString
	require.NoError(t, ts.Scan("10:00:00"))
	assert.Equal(t, TimeString("10:00"), ts)

	require.NoError(t, ts.Scan([]byte("17:30")))
	assert.Equal(t, TimeString("17:30"), ts)

	require.NoError(t, ts.Scan(time.Date(2025, 1, 1, 8, 15, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("08:15"), ts)

	assert.Error(t, ts.Scan(42))
}
