package solve

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAlgorithmShrink(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"same quarter twice makes a half", "R R", "R2"},
		{"quarter and prime cancel", "R R'", ""},
		{"half and quarter makes a prime", "R2 R", "R'"},
		{"three quarters makes a prime", "R R R", "R'"},
		{"four quarters cancel entirely", "R R R R", ""},
		{"different axes untouched", "R U R'", "R U R'"},
		{"collapses across a longer run", "F F F F R R", "R2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := ParseAlgorithm(tt.in)
			require.NoError(t, err)
			require.Equal(t, tt.want, a.Shrink().String())
		})
	}
}

func TestAlgorithmInverse(t *testing.T) {
	a, err := ParseAlgorithm("R U R' U'")
	require.NoError(t, err)
	require.Equal(t, "U R U' R'", a.Inverse().String())
}

func TestAlgorithmInverseRoundTrip(t *testing.T) {
	a, err := ParseAlgorithm("R U2 R' D' R U R' F2 L")
	require.NoError(t, err)

	c := Solved()
	c.ApplyAlgorithm(a)
	c.ApplyAlgorithm(a.Inverse())
	require.True(t, c.IsSolvedCube(), "applying an algorithm then its inverse must return to solved")
}

func TestAlgorithmLenIgnoresGroupingTokens(t *testing.T) {
	a := Algorithm{Steps: []Step{ParenOpen(), Face(AxisR, Quarter), Face(AxisU, Quarter), ParenClose(2)}}
	require.Equal(t, 2, a.Len())
}

func TestAlgorithmMetricAdditivity(t *testing.T) {
	a, err := ParseAlgorithm("R U R' U'")
	require.NoError(t, err)
	b, err := ParseAlgorithm("F2 L'")
	require.NoError(t, err)

	combined := NewAlgorithm(append(append([]Step{}, a.Steps...), b.Steps...)...)
	for _, m := range []Metric{Movements, QTM, HTM, STM, ATM, ETM, OBTM} {
		require.Equal(t, a.Metric(m)+b.Metric(m), combined.Metric(m), "metric %v should add across a concatenation", m)
	}
}

func TestParseAlgorithmRoundTrip(t *testing.T) {
	for _, s := range []string{"R U R' U'", "Rw2 M' E S2", "x y' z2", "R2 U2 F'"} {
		a, err := ParseAlgorithm(s)
		require.NoError(t, err)
		require.Equal(t, s, a.String())
	}
}

func TestSpinPathReachesTarget(t *testing.T) {
	for _, to := range AllSpins() {
		path := spinPath(identitySpin, to)
		got := identitySpin
		for _, s := range path {
			got = got.Rotate(s)
		}
		require.Equal(t, to, got, "spinPath from identity to %+v should land on target", to)
	}
}
