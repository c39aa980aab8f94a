package solve

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOLLCollectionMatchesSkipOnSolvedCube(t *testing.T) {
	c := Solved()
	matches := OLLCollection.Match(&c)
	require.Len(t, matches, 1)
	require.Equal(t, "OLL Skip", matches[0].Name)
}

func TestOLLCollectionDistinguishesSkipFromH(t *testing.T) {
	skip := Solved()
	skipMatches := OLLCollection.Match(&skip)
	require.Len(t, skipMatches, 1)
	require.Equal(t, "OLL Skip", skipMatches[0].Name)

	h := Solved()
	for i := range h.EOri {
		if i == eUB || i == eUL || i == eUR || i == eUF {
			h.EOri[i] = 1
		}
	}
	hMatches := OLLCollection.Match(&h)
	require.Len(t, hMatches, 1)
	require.Equal(t, "H", hMatches[0].Name, "a cube with all 4 last-layer edges flipped but corners solved must recognize as H, not Skip")
}

func TestPLLCollectionMatchesSkipOnSolvedCube(t *testing.T) {
	c := Solved()
	alg, ok := PLLCollection.Solve(&c, LookupFirst, EvalFinal)
	require.True(t, ok)
	require.Equal(t, 0, alg.Len())
}

func TestCollectionSolveReturnsFalseWhenNoCaseMatches(t *testing.T) {
	c := Solved()
	c.Apply(Face(AxisR, Quarter))
	_, ok := OLLCollection.Solve(&c, LookupFirst, EvalFinal)
	require.False(t, ok, "a cube far from any known last-layer case must report no match")
}

func TestCaseBestFirstPolicyReturnsCanonicalAlgorithm(t *testing.T) {
	sune := OLLCollection.Cases[0]
	require.Equal(t, "R U R' U R U2 R'", sune.Best(LookupFirst, EvalFinal).String())
}
