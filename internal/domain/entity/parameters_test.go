package entity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

var bilateralSpecs = []ParameterSpec{
	{Name: "spaceSigma", Min: 0, Exclusive: true},
	{Name: "rangeSigma", Min: 0, Max: MaxIntensity, Exclusive: true},
}

func TestParseParameters_OK(t *testing.T) {
	p, err := ParseParameters(bilateralSpecs, []string{"3.0", "25"})
	require.NoError(t, err)
	require.Equal(t, 2, p.Len())

	v, err := p.Float("spaceSigma")
	require.NoError(t, err)
	require.Equal(t, 3.0, v)

	v, err = p.Float("rangeSigma")
	require.NoError(t, err)
	require.Equal(t, 25.0, v)

	require.Equal(t, "rangeSigma=25 spaceSigma=3", p.String())
}

func TestParseParameters_ArityMismatch(t *testing.T) {
	_, err := ParseParameters(bilateralSpecs, []string{"3.0"})
	require.ErrorIs(t, err, ErrInvalidArguments)

	_, err = ParseParameters(bilateralSpecs, []string{"3.0", "25", "1"})
	require.ErrorIs(t, err, ErrInvalidArguments)
}

func TestParseParameters_Invalid(t *testing.T) {
	cases := [][]string{
		{"abc", "25"},
		{"0", "25"},
		{"-1", "25"},
		{"3", "300"},
		{"NaN", "25"},
		{"3", "+Inf"},
	}
	for _, args := range cases {
		_, err := ParseParameters(bilateralSpecs, args)
		require.ErrorIs(t, err, ErrInvalidArguments, "%v", args)
	}
}

func TestParseParameters_Integer(t *testing.T) {
	specs := []ParameterSpec{{Name: "patchRadius", Integer: true, Min: 1}}

	p, err := ParseParameters(specs, []string{"3"})
	require.NoError(t, err)
	r, err := p.Int("patchRadius")
	require.NoError(t, err)
	require.Equal(t, 3, r)

	_, err = ParseParameters(specs, []string{"2.5"})
	require.ErrorIs(t, err, ErrInvalidArguments)

	_, err = ParseParameters(specs, []string{"0"})
	require.ErrorIs(t, err, ErrInvalidArguments)
}

func TestParseParameters_IntegerOutOfRange(t *testing.T) {
	bounded := []ParameterSpec{{Name: "radius", Integer: true, Min: 1, Max: MaxRadius}}
	unbounded := []ParameterSpec{{Name: "radius", Integer: true, Min: 1}}

	cases := []string{"1e30", "3e9", "3000000000", "1073741824", "-1e30"}
	for _, arg := range cases {
		_, err := ParseParameters(bounded, []string{arg})
		require.ErrorIs(t, err, ErrInvalidArguments, arg)
	}

	// Без Max целое всё равно ограничено диапазоном int32
	for _, arg := range []string{"1e30", "3e9"} {
		_, err := ParseParameters(unbounded, []string{arg})
		require.ErrorIs(t, err, ErrInvalidArguments, arg)
	}

	p, err := ParseParameters(bounded, []string{"1073741823"})
	require.NoError(t, err)
	r, err := p.Int("radius")
	require.NoError(t, err)
	require.Equal(t, MaxRadius, r)
	require.LessOrEqual(t, int64(KernelSize(r)), int64(math.MaxInt32))
}

func TestFilterParameters_IntOutOfRange(t *testing.T) {
	p := NewFilterParameters(map[string]float64{"big": 1e30, "neg": -3e9, "frac": 1.5})

	for _, name := range []string{"big", "neg", "frac"} {
		_, err := p.Int(name)
		require.ErrorIs(t, err, ErrInvalidArguments, name)
	}
}

func TestFilterParameters_Immutable(t *testing.T) {
	src := map[string]float64{"h": 10}
	p := NewFilterParameters(src)
	src["h"] = 99

	v, err := p.Float("h")
	require.NoError(t, err)
	require.Equal(t, 10.0, v)

	_, err = p.Float("missing")
	require.ErrorIs(t, err, ErrInvalidArguments)
}

func TestKernelSize(t *testing.T) {
	for r := 0; r < 50; r++ {
		require.Equal(t, 2*r+1, KernelSize(r))
	}
}

func TestNormalizeIntensity(t *testing.T) {
	require.Equal(t, 0.0, NormalizeIntensity(0))
	require.Equal(t, 1.0, NormalizeIntensity(255))
	require.Equal(t, 25.0/255.0, NormalizeIntensity(25))
}

func TestBackendInfo_Arity(t *testing.T) {
	info := BackendInfo{ID: BackendFastBilateral, Parameters: bilateralSpecs}
	require.Equal(t, 2, info.Arity())
	require.Equal(t, []string{"spaceSigma", "rangeSigma"}, info.ParameterNames())
}
