package solve

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScrambleCacheMissThenHit(t *testing.T) {
	var c scrambleCache
	key := newCacheKey("R U R' U'", MethodCFOP, DefaultPreset())

	_, ok := c.Get(key)
	require.False(t, ok)

	rec := SolveRecord{ScrambleAlg: NewAlgorithm(Face(AxisR, Quarter))}
	c.Put(key, rec)

	got, ok := c.Get(key)
	require.True(t, ok)
	require.Equal(t, rec.ScrambleAlg.String(), got.ScrambleAlg.String())
}

func TestScrambleCacheKeyIncludesPreset(t *testing.T) {
	a := newCacheKey("R U R' U'", MethodCFOP, Preset{Speed: Speed1, Orient: OrientSingle, Amount: AmountOne})
	b := newCacheKey("R U R' U'", MethodCFOP, Preset{Speed: Speed6, Orient: OrientSingle, Amount: AmountOne})
	require.NotEqual(t, a, b, "different speed presets must not collide in the cache key")
}

func TestScrambleCacheOnlyKeepsMostRecentEntry(t *testing.T) {
	var c scrambleCache
	keyA := newCacheKey("R", MethodCFOP, DefaultPreset())
	keyB := newCacheKey("U", MethodCFOP, DefaultPreset())

	c.Put(keyA, SolveRecord{})
	c.Put(keyB, SolveRecord{})

	_, ok := c.Get(keyA)
	require.False(t, ok, "storing a second entry evicts the first, by design")

	_, ok = c.Get(keyB)
	require.True(t, ok)
}
