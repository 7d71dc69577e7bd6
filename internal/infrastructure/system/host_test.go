package system

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultThreads(t *testing.T) {
	require.Equal(t, 1, defaultThreads(0))
	require.Equal(t, 1, defaultThreads(1))
	require.Equal(t, 1, defaultThreads(2))
	require.Equal(t, 7, defaultThreads(8))

	require.GreaterOrEqual(t, DefaultThreads(), 1)
}

func TestHost(t *testing.T) {
	h := Host()
	require.Positive(t, h.LogicalCores)
	require.NotEmpty(t, h.MemoryString())
}
