package filter

import (
	"testing"

	"github.com/stretchr/testify/require"

	"denoise-bench/internal/domain/entity"
)

func mustParse(t *testing.T, info entity.BackendInfo, args ...string) entity.FilterParameters {
	t.Helper()
	p, err := entity.ParseParameters(info.Parameters, args)
	require.NoError(t, err)
	return p
}

func TestOpenCVBilateral_Configure(t *testing.T) {
	b := NewOpenCVBilateral()
	f, err := b.Configure(mustParse(t, b.Info(), "4", "3.0", "25"), 3)
	require.NoError(t, err)

	bf := f.(*openCVBilateralFilter)
	require.Equal(t, 9, bf.settings.Diameter)
	require.Equal(t, 3.0, bf.settings.SpaceSigma)
	require.Equal(t, 25.0, bf.settings.RangeSigma)
	require.Equal(t, 3, bf.threads)
}

func TestOpenCVNonLocalMeans_Configure(t *testing.T) {
	b := NewOpenCVNonLocalMeans()
	f, err := b.Configure(mustParse(t, b.Info(), "3", "10", "12.5"), 1)
	require.NoError(t, err)

	nf := f.(*openCVNonLocalMeansFilter)
	require.Equal(t, 7, nf.settings.TemplateWindow)
	require.Equal(t, 21, nf.settings.SearchWindow)
	require.Equal(t, float32(12.5), nf.settings.H)
}

func TestOpenCVNonLocalMeans_WindowSmallerThanPatch(t *testing.T) {
	b := NewOpenCVNonLocalMeans()
	_, err := b.Configure(mustParse(t, b.Info(), "5", "2", "10"), 1)
	require.ErrorIs(t, err, entity.ErrInvalidArguments)
}

func TestOpenCV_InvalidThreads(t *testing.T) {
	bl := NewOpenCVBilateral()
	_, err := bl.Configure(mustParse(t, bl.Info(), "2", "3", "25"), 0)
	require.ErrorIs(t, err, entity.ErrBackend)

	nlm := NewOpenCVNonLocalMeans()
	_, err = nlm.Configure(mustParse(t, nlm.Info(), "1", "7", "10"), -4)
	require.ErrorIs(t, err, entity.ErrBackend)
}

func TestOpenCV_HugeRadiusRejected(t *testing.T) {
	bl := NewOpenCVBilateral()
	for _, radius := range []string{"1e30", "3e9", "3000000000"} {
		_, err := entity.ParseParameters(bl.Info().Parameters, []string{radius, "3", "25"})
		require.ErrorIs(t, err, entity.ErrInvalidArguments, radius)
	}

	nlm := NewOpenCVNonLocalMeans()
	cases := [][]string{
		{"1e30", "5", "10"},
		{"1", "1e30", "10"},
		{"3e9", "3e9", "10"},
	}
	for _, args := range cases {
		_, err := entity.ParseParameters(nlm.Info().Parameters, args)
		require.ErrorIs(t, err, entity.ErrInvalidArguments, "%v", args)
	}
}

func TestOpenCV_ConfigureRejectsOutOfRangeInt(t *testing.T) {
	// Параметры, собранные в обход ParseParameters
	bl := NewOpenCVBilateral()
	params := entity.NewFilterParameters(map[string]float64{"radius": 1e30, "spaceSigma": 3, "rangeSigma": 25})
	_, err := bl.Configure(params, 1)
	require.ErrorIs(t, err, entity.ErrInvalidArguments)

	nlm := NewOpenCVNonLocalMeans()
	params = entity.NewFilterParameters(map[string]float64{"patchRadius": 1e30, "windowRadius": 5, "h": 10})
	_, err = nlm.Configure(params, 1)
	require.ErrorIs(t, err, entity.ErrInvalidArguments)
}
