package solve

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMustSolveAllPiecesOnlySolvedCube(t *testing.T) {
	pred := MustSolve(AllPieces)
	require.True(t, pred.Check(&[]Cube{Solved()}[0]))

	scrambled := Solved()
	scrambled.Apply(Face(AxisR, Quarter))
	require.False(t, pred.Check(&scrambled), "AllPieces must not be vacuously satisfied by an unsolved cube")
}

func TestMustSolveCfopCrossFailsWhenCrossEdgeMoved(t *testing.T) {
	c := Solved()
	c.Apply(Face(AxisR, Quarter))
	c.Apply(Face(AxisU, Quarter))

	pred := MustSolve(CfopCross)
	require.False(t, pred.Check(&c))
}

func TestAndCombinesAllBranches(t *testing.T) {
	a := MustSolve(CfopCross)
	b := MustOrient(ZzAllEdges)
	combined := And(a, b)

	require.Equal(t, a.Solved, combined.Solved)
	require.Equal(t, b.Oriented, combined.Oriented)
}

func TestPgrSolvedRequiresEveryListedSlotHome(t *testing.T) {
	c := Solved()
	require.True(t, RouxFB.Solved(&c))

	c.Apply(Face(AxisL, Quarter))
	require.False(t, RouxFB.Solved(&c))
}
