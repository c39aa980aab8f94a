package solve

import "sync"

// scrambleCache holds the single most recent (scramble, method, preset) ->
// SolveRecord mapping the driver goroutine computed, so a report re-print
// or a second query against the same scramble doesn't re-run the search.
// It is intentionally tiny:
// widening it to an LRU of more than one entry is a straightforward
// extension if a future façade needs it, not something this package's
// current callers exercise.
type scrambleCache struct {
	mu    sync.Mutex
	key   cacheKey
	valid bool
	value SolveRecord
}

type cacheKey struct {
	scramble string
	method   Method
	speed    Speed
	orient   Orient
	amount   Amount
	variant  int
	option   int
	metric   Metric
}

func newCacheKey(scramble string, m Method, p Preset) cacheKey {
	return cacheKey{
		scramble: scramble, method: m,
		speed: p.Speed, orient: p.Orient, amount: p.Amount,
		variant: p.Variant, option: p.Option, metric: p.Metric,
	}
}

// Get returns the cached record for key, if it is still the last thing
// stored.
func (c *scrambleCache) Get(key cacheKey) (SolveRecord, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.valid && c.key == key {
		return c.value, true
	}
	return SolveRecord{}, false
}

// Put replaces the single cached entry.
func (c *scrambleCache) Put(key cacheKey, v SolveRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.key, c.value, c.valid = key, v, true
}
