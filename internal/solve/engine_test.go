package solve

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEngineSolvesOneMoveScramble(t *testing.T) {
	start := Solved()
	start.Apply(Face(AxisR, Quarter))

	plan := NewPlan(FullTurnstile, 2, MustSolve(AllPieces))
	eng := NewEngine(-1)
	eng.Configure(plan, start)

	alg, ok := eng.Run(context.Background())
	require.True(t, ok, "a depth-2 search must find the 1-move solution to a 1-move scramble")

	c := start
	c.ApplyAlgorithm(alg)
	require.True(t, c.IsSolvedCube())
}

func TestEngineReportsFailureWhenUnreachable(t *testing.T) {
	start := Solved()
	start.Apply(Face(AxisR, Quarter))

	plan := NewPlan(FullTurnstile, 0, MustSolve(AllPieces))
	eng := NewEngine(-1)
	eng.Configure(plan, start)

	_, ok := eng.Run(context.Background())
	require.False(t, ok, "a depth-0 search on an unsolved cube must fail, not report vacuous success")
}

func TestEngineFindsSolvedAtDepthZero(t *testing.T) {
	plan := NewPlan(FullTurnstile, 0, MustSolve(AllPieces))
	eng := NewEngine(-1)
	eng.Configure(plan, Solved())

	alg, ok := eng.Run(context.Background())
	require.True(t, ok)
	require.Equal(t, 0, alg.Len())
}

func TestEngineCancelStopsSearch(t *testing.T) {
	start := Solved()
	start.Apply(Face(AxisR, Quarter))
	start.Apply(Face(AxisU, Quarter))
	start.Apply(Face(AxisF, Quarter))

	plan := NewPlan(FullTurnstile, 6, MustSolve(AllPieces))
	eng := NewEngine(-1)
	eng.Configure(plan, start)
	eng.Cancel()

	_, ok := eng.Run(context.Background())
	require.False(t, ok, "a cancelled engine must not report success")
}

func TestOpposingOrderOKRejectsOneDirectionOnly(t *testing.T) {
	u := Face(AxisU, Quarter)
	d := Face(AxisD, Quarter)
	require.True(t, opposingOrderOK(u, d), "U before D is the canonical order")
	require.False(t, opposingOrderOK(d, u), "D before U is redundant with U before D")
}

func TestEvaluateShortestPrefersLowerSubjectiveScore(t *testing.T) {
	plain, err := ParseAlgorithm("R U R'")
	require.NoError(t, err)
	withRotation, err := ParseAlgorithm("x R U R' x'")
	require.NoError(t, err)

	best := evaluateShortest([]Algorithm{withRotation, plain})
	require.Equal(t, plain.String(), best.String())
}
