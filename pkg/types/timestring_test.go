package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("09:30")
	require.NoError(t, err)
	assert.Equal(t, TimeString("09:30"), ts)

	for _, bad := range []string{"9:30", "24:00", "12:60", "12.30", "", "noon", "12:3"} {
		_, err := NewTimeStringFromString(bad)
		assert.ErrorIs(t, err, ErrInvalidTimeString, "input %q", bad)
	}
}

func TestNewTimeStringFromMinutes(t *testing.T) {
	ts, err := NewTimeStringFromMinutes(0)
	require.NoError(t, err)
	assert.Equal(t, TimeString("00:00"), ts)

	ts, err = NewTimeStringFromMinutes(13*60 + 30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("13:30"), ts)

	ts, err = NewTimeStringFromMinutes(23*60 + 59)
	require.NoError(t, err)
	assert.Equal(t, TimeString("23:59"), ts)

	_, err = NewTimeStringFromMinutes(-1)
	assert.ErrorIs(t, err, ErrInvalidTimeString)

	_, err = NewTimeStringFromMinutes(24 * 60)
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestMinutes(t *testing.T) {
	min, err := TimeString("00:00").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 0, min)

	min, err = TimeString("10:15").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 615, min)

	min, err = TimeString("23:59").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 1439, min)

	_, err = TimeString("bogus").Minutes()
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestAddMinutes(t *testing.T) {
	ts, err := TimeString("10:00").AddMinutes(120)
	require.NoError(t, err)
	assert.Equal(t, TimeString("12:00"), ts)

	// overflow past midnight clamps to the last minute of the day
	ts, err = TimeString("23:00").AddMinutes(120)
	require.NoError(t, err)
	assert.Equal(t, TimeString("23:59"), ts)

	ts, err = TimeString("00:30").AddMinutes(-120)
	require.NoError(t, err)
	assert.Equal(t, TimeString("00:00"), ts)
}

func TestIsBeforeIsAfter(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("17:00"))
	assert.False(t, TimeString("17:00").IsBefore("09:00"))
	assert.False(t, TimeString("12:00").IsBefore("12:00"))

	assert.True(t, TimeString("17:00").IsAfter("09:00"))
	assert.False(t, TimeString("12:00").IsAfter("12:00"))
}

func TestFormat12Hour(t *testing.T) {
	cases := map[TimeString]string{
		"13:30": "1:30 PM",
		"08:45": "8:45 AM",
		"00:00": "12:00 AM",
		"12:00": "12:00 PM",
		"23:59": "11:59 PM",
		"11:05": "11:05 AM",
	}
	for in, want := range cases {
		assert.Equal(t, want, in.Format12Hour(), "input %s", in)
	}
}

func TestScan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("14:30:00"))
	assert.Equal(t, TimeString("14:30"), ts)

	require.NoError(t, ts.Scan([]byte("08:15:59")))
	assert.Equal(t, TimeString("08:15"), ts)

	require.NoError(t, ts.Scan(time.Date(2026, 10, 16, 19, 45, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("19:45"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}

func TestValue(t *testing.T) {
	v, err := TimeString("10:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "10:00", v)

	v, err = TimeString("").Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = TimeString("bad").Value()
	assert.Error(t, err)
}
