package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{"10:00", false},
		{"00:00", false},
		{"23:59", false},
		{"24:00", true},
		{"10:60", true},
		{"1:00", true},
		{"10-00", true},
		{"", true},
		{"aa:bb", true},
	}

	for _, tt := range tests {
		ts, err := NewTimeStringFromString(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.in)
		} else {
			require.NoError(t, err, "input %q", tt.in)
			assert.Equal(t, tt.in, ts.String())
		}
	}
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts := TimeString("10:45")

	got, err := ts.AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("12:15"), got)

	_, err = TimeString("23:30").AddMinutes(60)
	assert.ErrorIs(t, err, ErrTimeOutOfRange)
}

func TestTimeString_Comparisons(t *testing.T) {
	assert.True(t, TimeString("09:15").IsBefore("09:30"))
	assert.False(t, TimeString("09:30").IsBefore("09:30"))
	assert.True(t, TimeString("19:00").IsAfter("17:30"))
	assert.False(t, TimeString("17:30").IsAfter("17:30"))
}

func TestTimeString_FloorTo(t *testing.T) {
	assert.Equal(t, TimeString("10:00"), TimeString("10:07").FloorTo(15))
	assert.Equal(t, TimeString("10:15"), TimeString("10:15").FloorTo(15))
	assert.Equal(t, TimeString("21:45"), TimeString("21:59").FloorTo(15))
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("18:15:00"))
	assert.Equal(t, TimeString("18:15"), ts)

	require.NoError(t, ts.Scan([]byte("09:00")))
	assert.Equal(t, TimeString("09:00"), ts)

	require.NoError(t, ts.Scan(time.Date(2026, 2, 1, 14, 30, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("14:30"), ts)

	assert.Error(t, ts.Scan(42))
}
