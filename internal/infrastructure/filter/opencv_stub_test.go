//go:build !gocv
// +build !gocv

package filter

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"denoise-bench/internal/domain/entity"
	"denoise-bench/internal/testutil"
)

func TestOpenCV_StubReturnsBackendError(t *testing.T) {
	b := NewOpenCVBilateral()
	f, err := b.Configure(mustParse(t, b.Info(), "2", "3", "25"), 1)
	require.NoError(t, err)

	_, err = f.Apply(context.Background(), testutil.NoisyImage(8, 8, 1))
	require.ErrorIs(t, err, entity.ErrBackend)
}
