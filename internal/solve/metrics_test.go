package solve

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestQTMCountsHalfTurnAsTwo(t *testing.T) {
	require.Equal(t, 2.0, Face(AxisR, Half).Cost(QTM))
	require.Equal(t, 1.0, Face(AxisR, Quarter).Cost(QTM))
}

func TestHTMCountsEveryTurnAsOne(t *testing.T) {
	for _, turn := range []Turn{Quarter, Half, Prime} {
		require.Equal(t, 1.0, Face(AxisR, turn).Cost(HTM))
	}
}

func TestETMOnlyDoublesWideOrSliceHalfTurns(t *testing.T) {
	require.Equal(t, 1.0, Face(AxisR, Half).Cost(ETM), "a face half turn costs 1 under ETM")
	require.Equal(t, 2.0, Wide(AxisR, Half).Cost(ETM), "a wide half turn costs 2 under ETM")
	require.Equal(t, 2.0, Slice(AxisM, Half).Cost(ETM), "a slice half turn costs 2 under ETM")
	require.Equal(t, 1.0, Wide(AxisR, Quarter).Cost(ETM))
}

func TestRotationsAndPseudoTokensCostNothing(t *testing.T) {
	for _, m := range []Metric{Movements, QTM, HTM, STM, ATM, ETM, OBTM} {
		require.Equal(t, 0.0, Rotation(AxisY, Quarter).Cost(m), m.String())
		require.Equal(t, 0.0, ParenOpen().Cost(m), m.String())
	}
}

func TestAlgorithmMetricSumsOverSteps(t *testing.T) {
	a, err := ParseAlgorithm("R2 U F2 L'")
	require.NoError(t, err)
	require.Equal(t, 6.0, a.Metric(QTM)) // R2=2, U=1, F2=2, L'=1
	require.Equal(t, 4.0, a.Metric(HTM))
}
