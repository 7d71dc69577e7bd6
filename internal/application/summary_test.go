package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	require.Equal(t, 0, Summarize(nil).Count)

	one := Summarize([]time.Duration{time.Second})
	require.Equal(t, 1, one.Count)
	require.Equal(t, time.Second, one.Mean)
	require.Equal(t, time.Duration(0), one.StdDev)

	s := Summarize([]time.Duration{time.Second, 2 * time.Second, 3 * time.Second})
	require.Equal(t, 3, s.Count)
	require.Equal(t, time.Second, s.Min)
	require.Equal(t, 3*time.Second, s.Max)
	require.Equal(t, 2*time.Second, s.Mean)
	require.Equal(t, time.Second, s.StdDev)
}
