package solve

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseMethodAcceptsCanonicalAndAliasSpellings(t *testing.T) {
	tests := []struct {
		in   string
		want Method
	}{
		{"CFOP", MethodCFOP}, {"cfop", MethodCFOP},
		{"Roux", MethodRoux}, {"roux", MethodRoux},
		{"CEOR", MethodCEOR}, {"YruRU", MethodCEOR}, {"yruru", MethodCEOR},
		{"LBL", MethodLBL}, {"beginner", MethodLBL},
	}
	for _, tt := range tests {
		got, ok := ParseMethod(tt.in)
		require.True(t, ok, tt.in)
		require.Equal(t, tt.want, got, tt.in)
	}

	_, ok := ParseMethod("not-a-method")
	require.False(t, ok)
}

func isEmptyPredicate(p Predicate) bool {
	return len(p.Solved) == 0 && len(p.Oriented) == 0 && len(p.Permuted) == 0 &&
		len(p.CornerSlots) == 0 && len(p.EdgeSlots) == 0 && len(p.AnySolved) == 0
}

func TestBuildPipelineEveryMethodHasNonVacuousStageGoals(t *testing.T) {
	methods := []Method{
		MethodCFOP, MethodRoux, MethodPetrus, MethodZZ, MethodCEOR,
		MethodMehta, MethodNautilus, MethodLEOR, MethodLBL,
	}
	preset := DefaultPreset()

	for _, m := range methods {
		pipe := BuildPipeline(m, preset)
		require.Equal(t, m.String(), pipe.Name)
		require.NotEmpty(t, pipe.Stages, "%s pipeline must have at least one stage", m)

		seen := map[string]bool{}
		for _, st := range pipe.Stages {
			require.False(t, seen[st.Name], "%s: duplicate stage name %q", m, st.Name)
			seen[st.Name] = true

			if st.Kind == StageSearch {
				require.False(t, isEmptyPredicate(st.Plan.Goal), "%s stage %q must not have a vacuously-true goal", m, st.Name)
				require.Positive(t, st.Plan.MaxDepth, "%s stage %q must search at least depth 1", m, st.Name)
			}
		}
	}
}

func TestBuildPipelineDepthScalesWithSpeed(t *testing.T) {
	slow := BuildPipeline(MethodCFOP, Preset{Speed: Speed1, Orient: OrientSingle, Amount: AmountOne})
	fast := BuildPipeline(MethodCFOP, Preset{Speed: Speed6, Orient: OrientSingle, Amount: AmountOne})

	require.GreaterOrEqual(t, slow.Stages[0].Plan.MaxDepth, fast.Stages[0].Plan.MaxDepth,
		"a lower speed setting must search at least as deep as a higher one")
}

func TestBuildPipelineLBLUsesOnlyIdentitySpin(t *testing.T) {
	pipe := BuildPipeline(MethodLBL, Preset{Speed: Speed3, Orient: OrientAll, Amount: AmountOne})
	require.Len(t, pipe.Spins, 1)
	require.Equal(t, identitySpin, pipe.Spins[0])
}
