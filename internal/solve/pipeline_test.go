package solve

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

// tinyPlan builds a Plan that only ever needs to search for the full solve
// directly, used to keep these pipeline-level tests fast and deterministic
// without needing every method's real stage depths.
func tinyPlan(maxDepth int) Plan {
	return NewPlan(FullTurnstile, maxDepth, MustSolve(AllPieces))
}

func TestPipelineSolveConsistencyCheckPasses(t *testing.T) {
	scramble, err := ParseAlgorithm("R U R' U'")
	require.NoError(t, err)

	pipe := Pipeline{
		Name:   "TEST",
		Cores:  -1,
		Spins:  []Spn{identitySpin},
		Stages: []Stage{{Name: "SOLVE", Kind: StageSearch, Plan: tinyPlan(6), Cores: -1, Eval: EvalFinal}},
	}

	rec, err := pipe.Solve(context.Background(), scramble)
	require.NoError(t, err)
	require.NoError(t, rec.ConsistencyCheck())

	final := Solved()
	final.ApplyAlgorithm(scramble)
	final.ApplyAlgorithm(rec.Total())
	require.True(t, final.IsSolvedCube())
}

func TestPipelineSolveFailsWithFurthestProgressError(t *testing.T) {
	scramble, err := ParseAlgorithm("R U")
	require.NoError(t, err)

	pipe := Pipeline{
		Name:  "TEST",
		Cores: -1,
		Spins: []Spn{identitySpin},
		Stages: []Stage{
			{Name: "CROSS", Kind: StageSearch, Plan: NewPlan(FullTurnstile, 2, MustSolve(CfopCross)), Cores: -1, Eval: EvalCfopF2L},
			{Name: "IMPOSSIBLE", Kind: StageSearch, Plan: NewPlan(FullTurnstile, 0, MustSolve(AllPieces)), Cores: -1, Eval: EvalFinal},
		},
	}

	_, err = pipe.Solve(context.Background(), scramble)
	require.Error(t, err)

	pe, ok := err.(PipelineError)
	require.True(t, ok)
	require.Equal(t, "IMPOSSIBLE", pe.Failed.Stage)
}

func TestPipelineSpinAlignPrependsRotationForNonIdentitySpin(t *testing.T) {
	scramble := NewAlgorithm()
	pipe := Pipeline{
		Name:   "TEST",
		Cores:  -1,
		Spins:  []Spn{AllSpins()[1]},
		Stages: []Stage{{Name: "SOLVE", Kind: StageSearch, Plan: tinyPlan(2), Cores: -1, Eval: EvalFinal}},
	}

	rec, err := pipe.Solve(context.Background(), scramble)
	require.NoError(t, err)
	require.Equal(t, "SPIN_ALIGN", rec.Stages[0].Name)
	require.NoError(t, rec.ConsistencyCheck())
}
