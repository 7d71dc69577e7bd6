package filter

import (
	"testing"

	"github.com/stretchr/testify/require"

	"denoise-bench/internal/domain/entity"
)

func TestRegistry_Get(t *testing.T) {
	r := NewRegistry()

	for _, id := range []entity.BackendID{
		entity.BackendOpenCVBilateral,
		entity.BackendOpenCVNonLocalMeans,
		entity.BackendFastBilateral,
	} {
		b, err := r.Get(id)
		require.NoError(t, err)
		require.Equal(t, id, b.Info().ID)
	}

	_, err := r.Get("itk-bl")
	require.ErrorIs(t, err, entity.ErrInvalidArguments)
}

func TestRegistry_IDs(t *testing.T) {
	require.Equal(t, []entity.BackendID{"fbl-bl", "opencv-bl", "opencv-nlm"}, NewRegistry().IDs())
}

func TestRegistry_ParameterContracts(t *testing.T) {
	r := NewRegistry()

	b, _ := r.Get(entity.BackendOpenCVBilateral)
	require.Equal(t, []string{"radius", "spaceSigma", "rangeSigma"}, b.Info().ParameterNames())

	b, _ = r.Get(entity.BackendOpenCVNonLocalMeans)
	require.Equal(t, []string{"patchRadius", "windowRadius", "h"}, b.Info().ParameterNames())

	b, _ = r.Get(entity.BackendFastBilateral)
	require.Equal(t, []string{"spaceSigma", "rangeSigma"}, b.Info().ParameterNames())
}
