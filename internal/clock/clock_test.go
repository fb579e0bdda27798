package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		in   time.Duration
		want string
	}{
		{0, "00:00"},
		{999 * time.Millisecond, "00:00"},
		{time.Second, "00:01"},
		{59 * time.Second, "00:59"},
		{5 * time.Minute, "05:00"},
		{90*time.Minute + 7*time.Second, "90:07"},
		{-3 * time.Second, "00:00"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, Format(tc.in), "Format(%v)", tc.in)
	}
}

func TestCountdownTick(t *testing.T) {
	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	c := New(2, 5*time.Minute, 30*time.Second, start)
	require.Equal(t, 2, c.Player())

	g, m := c.Tick(start.Add(100 * time.Millisecond))
	require.Equal(t, 5*time.Minute-100*time.Millisecond, g)
	require.Equal(t, 30*time.Second-100*time.Millisecond, m)

	g, m = c.Tick(start.Add(10 * time.Second))
	require.Equal(t, 4*time.Minute+50*time.Second, g)
	require.Equal(t, 20*time.Second, m)

	// A clock that runs backwards does not add time.
	g2, m2 := c.Tick(start)
	require.Equal(t, g, g2)
	require.Equal(t, m, m2)
}
