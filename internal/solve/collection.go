package solve

// Case is one named entry in a Collection: a recognizable situation (an
// OLL/PLL case, a CMLL case, a VLS/WV trigger, ...) together with one or
// more algorithms that solve it. Modeled on internal/cube's Algorithm
// database entries, but keyed by the Predicate the case solves rather than
// a CFEN pattern string, since Collection lookups run against a live Cube
// rather than a textual board diff.
type Case struct {
	Name     string
	CaseID   string // e.g. "OLL-27", "PLL-Ua"
	Category string

	Solves Predicate        // used when the case is just "this group is solved"
	Match  func(*Cube) bool // used for recognition-pattern cases (OLL/PLL/CMLL/...); takes priority over Solves when set
	Algs   []Algorithm      // alternative executions, same case
}

// matches reports whether c is in this case, preferring the recognition
// function when the case defines one.
func (c Case) matches(cube *Cube) bool {
	if c.Match != nil {
		return c.Match(cube)
	}
	return c.Solves.Check(cube)
}

// Best returns the case's preferred algorithm for the given policy: FIRST
// always returns Algs[0] (the canonical/most-recognized execution), SHORT
// picks the shortest under the evaluator's metric.
func (c Case) Best(policy LookupPolicy, ev Evaluator) Algorithm {
	if len(c.Algs) == 0 {
		return Algorithm{}
	}
	if policy == LookupFirst {
		return c.Algs[0]
	}
	return ev.Best(c.Algs)
}

// LookupPolicy selects how a Collection resolves a case with more than one
// known algorithm.
type LookupPolicy int

const (
	LookupFirst LookupPolicy = iota
	LookupShort
)

// Collection is a named set of Cases sharing a category, e.g. "the 57 OLL
// cases" or "the 21 Mehta CDRLL cases".
type Collection struct {
	Name  string
	Cases []Case
}

// Match returns every case in the collection whose Predicate the cube
// currently satisfies (normally exactly one, since a well-formed collection
// partitions the space its stage operates over).
func (coll Collection) Match(c *Cube) []Case {
	var out []Case
	for _, cs := range coll.Cases {
		if cs.matches(c) {
			out = append(out, cs)
		}
	}
	return out
}

// Solve looks up the single matching case and returns its best algorithm,
// per policy. ok is false if no case in the collection matches (the stage
// should fall back to a search instead).
func (coll Collection) Solve(c *Cube, policy LookupPolicy, ev Evaluator) (Algorithm, bool) {
	matches := coll.Match(c)
	if len(matches) == 0 {
		return Algorithm{}, false
	}
	return matches[0].Best(policy, ev), true
}

// SubjectiveBestY tries every one of the four y-axis AUF rotations before
// the cube is even presented to the collection, returning the best-scoring
// (case, pre-AUF, algorithm) combination across all four — the source's
// "subjective_best_y" search for the least-painful way to recognize and
// execute a last-layer case regardless of which U-face rotation the solver
// happens to land on it in.
func (coll Collection) SubjectiveBestY(c *Cube, policy LookupPolicy, ev Evaluator) (auf Step, alg Algorithm, ok bool) {
	type candidate struct {
		auf Step
		alg Algorithm
	}
	var best *candidate
	bestScore := 0.0

	try := func(preAuf Step) {
		cube := *c
		cube.Apply(preAuf)
		a, found := coll.Solve(&cube, policy, ev)
		if !found {
			return
		}
		score := ev.Score(a)
		if best == nil || score < bestScore {
			best = &candidate{auf: preAuf, alg: a}
			bestScore = score
		}
	}

	try(None)
	try(Rotation(AxisY, Quarter))
	try(Rotation(AxisY, Half))
	try(Rotation(AxisY, Prime))

	if best == nil {
		return Step{}, Algorithm{}, false
	}
	return best.auf, best.alg, true
}
