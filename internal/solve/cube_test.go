package solve

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSolvedCubeIsSolved(t *testing.T) {
	c := Solved()
	require.True(t, c.IsSolvedCube())
}

func TestApplyMoveFourTimesReturnsToSolved(t *testing.T) {
	for _, axis := range []Axis{AxisU, AxisD, AxisF, AxisB, AxisR, AxisL} {
		c := Solved()
		for i := 0; i < 4; i++ {
			c.Apply(Face(axis, Quarter))
		}
		require.Truef(t, c.IsSolvedCube(), "four quarter turns of %v should return to solved", axis)
	}
}

func TestApplyMoveTwiceMatchesHalfTurn(t *testing.T) {
	for _, axis := range []Axis{AxisU, AxisD, AxisF, AxisB, AxisR, AxisL} {
		twice := Solved()
		twice.Apply(Face(axis, Quarter))
		twice.Apply(Face(axis, Quarter))

		half := Solved()
		half.Apply(Face(axis, Half))

		require.Equalf(t, half.CPerm, twice.CPerm, "%v2 should match two quarter turns (corners)", axis)
		require.Equalf(t, half.COri, twice.COri, "%v2 should match two quarter turns (corner ori)", axis)
		require.Equalf(t, half.EPerm, twice.EPerm, "%v2 should match two quarter turns (edges)", axis)
		require.Equalf(t, half.EOri, twice.EOri, "%v2 should match two quarter turns (edge ori)", axis)
	}
}

func TestApplyMoveThenInverseReturnsToSolved(t *testing.T) {
	for _, axis := range []Axis{AxisU, AxisD, AxisF, AxisB, AxisR, AxisL} {
		for _, turn := range []Turn{Quarter, Half, Prime} {
			c := Solved()
			step := Face(axis, turn)
			c.Apply(step)
			c.Apply(step.Inverse())
			require.Truef(t, c.IsSolvedCube(), "%v then its inverse should return to solved", step)
		}
	}
}

func TestRotationOnlyChangesSpin(t *testing.T) {
	c := Solved()
	before := c
	c.Apply(Rotation(AxisY, Quarter))
	require.Equal(t, before.CPerm, c.CPerm)
	require.Equal(t, before.COri, c.COri)
	require.Equal(t, before.EPerm, c.EPerm)
	require.Equal(t, before.EOri, c.EOri)
	require.NotEqual(t, before.Spin, c.Spin)
}

func TestApplyAlgorithmScrambleIsNotSolved(t *testing.T) {
	a, err := ParseAlgorithm("R U R' U' R' F R2 U' R' U' R U R' F'")
	require.NoError(t, err)
	c := Solved()
	c.ApplyAlgorithm(a)
	require.False(t, c.IsSolvedCube())
}

func TestPositionOfCornerInvertsPieceAtCorner(t *testing.T) {
	c := Solved()
	a, err := ParseAlgorithm("R U R' U' R' F R2 U' R' U' R U R' F'")
	require.NoError(t, err)
	c.ApplyAlgorithm(a)

	for slot := 0; slot < 8; slot++ {
		piece := c.PieceAtCorner(slot)
		require.Equal(t, slot, c.PositionOfCorner(piece))
	}
	for slot := 0; slot < 12; slot++ {
		piece := c.PieceAtEdge(slot)
		require.Equal(t, slot, c.PositionOfEdge(piece))
	}
}

func TestFromAbsPositionIdentitySpinMatchesHomeSlots(t *testing.T) {
	slot, ok := FromAbsPosition([]Axis{AxisU, AxisF, AxisR}, identitySpin, true)
	require.True(t, ok)
	require.Equal(t, cUFR, slot)

	eslot, ok := FromAbsPosition([]Axis{AxisU, AxisF}, identitySpin, false)
	require.True(t, ok)
	require.Equal(t, eUF, eslot)
}
