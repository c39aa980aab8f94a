package solve

// Policy selects which direction an Evaluator's weights point: SHORT
// rewards fewer moves above all else (used while searching for a stage's
// own solution), BEST flips several weights so a finished solve can be
// re-scored for overall quality once every stage is known.
type Policy int

const (
	PolicyShort Policy = iota
	PolicyBest
)

// Evaluator scores a candidate Algorithm for a given stage: lower is
// better. It is a small weighted sum over named features rather than a
// single length count, so a stage can prefer (for example) an algorithm
// that sets up a nicer next stage over a strictly shorter one.
type Evaluator struct {
	Name    string
	Metric  Metric
	Weights EvalWeights

	// StructureGroups names auxiliary piece groups a candidate is rewarded
	// for incidentally solving, beyond the stage's own goal — e.g. F2L
	// pairs finished early by a cross solution, or pairs in the opposite
	// layer. Each solved group subtracts Weights.Structure from the score.
	StructureGroups []Pgr
}

// EvalWeights mirrors the source's per-case scoring knobs: a base length
// weight plus small corrective terms for traits a pure move-count wouldn't
// see.
type EvalWeights struct {
	Length      float64 // weight per unit of Metric cost
	Rotation    float64 // weight per whole-cube rotation
	WideOrSlice float64 // weight per wide/slice move
	Subjective  float64 // weight applied to Algorithm.SubjectiveScore
	Structure   float64 // bonus (as a score deduction) per StructureGroups hit
}

// Score combines the algorithm's metric length with the weighted feature
// terms; lower scores win ties the engine's own SubjectiveScore alone would
// miss (e.g. two 8-move solutions where one leaves the cube mid-rotated).
func (e Evaluator) Score(a Algorithm) float64 {
	score := a.Metric(e.Metric) * e.Weights.Length
	rotations, wideOrSlice := 0, 0
	for _, s := range a.Steps {
		switch s.Kind {
		case KindRotation:
			rotations++
		case KindWide, KindSlice:
			wideOrSlice++
		}
	}
	score += float64(rotations) * e.Weights.Rotation
	score += float64(wideOrSlice) * e.Weights.WideOrSlice
	score += float64(a.SubjectiveScore()) * e.Weights.Subjective
	return score
}

// Best returns the lowest-scoring algorithm among cands under e.
func (e Evaluator) Best(cands []Algorithm) Algorithm {
	best := cands[0]
	bestScore := e.Score(best)
	for _, a := range cands[1:] {
		if s := e.Score(a); s < bestScore {
			best, bestScore = a, s
		}
	}
	return best
}

// ScoreFrom scores a as Score does, plus e's structural bonus: for every
// StructureGroups entry that ends up solved once a is applied on top of
// start, Weights.Structure is subtracted from the score (each such group
// makes the candidate more attractive).
func (e Evaluator) ScoreFrom(start Cube, a Algorithm) float64 {
	score := e.Score(a)
	if len(e.StructureGroups) == 0 {
		return score
	}
	c := start.Clone()
	c.ApplyAlgorithm(a)
	for _, g := range e.StructureGroups {
		if g.Solved(&c) {
			score -= e.Weights.Structure
		}
	}
	return score
}

// BestFrom is Best but scored with ScoreFrom against the stage's actual
// starting cube, so the structural bonus can see what each candidate
// actually leaves solved.
func (e Evaluator) BestFrom(start Cube, cands []Algorithm) Algorithm {
	best := cands[0]
	bestScore := e.ScoreFrom(start, best)
	for _, a := range cands[1:] {
		if s := e.ScoreFrom(start, a); s < bestScore {
			best, bestScore = a, s
		}
	}
	return best
}

// shortWeights/bestWeights give the two standard weight profiles: SHORT
// cares almost entirely about length, BEST additionally penalizes
// rotations and wide/slice moves since those cost real time to execute
// even when they don't add to the metric count.
func shortWeights() EvalWeights { return EvalWeights{Length: 1.0, Structure: 0.2} }
func bestWeights() EvalWeights {
	return EvalWeights{Length: 1.0, Rotation: 0.5, WideOrSlice: 0.25, Subjective: 0.1, Structure: 0.3}
}

func weightsFor(p Policy) EvalWeights {
	if p == PolicyBest {
		return bestWeights()
	}
	return shortWeights()
}

// Named per-stage evaluator catalogue, one per search stage that needs to
// pick among several equal-or-near-equal-depth solutions.
var (
	// EvalCfopF2L rewards a cross/F2L candidate that leaves extra pairs
	// already solved, per-pair, matching the source's "cross-plus" scoring
	// (a cross solution that happens to also place a pair is preferred over
	// an equal-length one that doesn't).
	EvalCfopF2L = Evaluator{
		Name: "CFOP_F2L", Metric: HTM, Weights: shortWeights(),
		StructureGroups: []Pgr{CfopF2LFL, CfopF2LFR, CfopF2LBL, CfopF2LBR},
	}
	EvalRouxFB     = Evaluator{Name: "ROUX_FB", Metric: STM, Weights: shortWeights()}
	EvalPetrusBlk  = Evaluator{Name: "PETRUS_BLOCK", Metric: HTM, Weights: shortWeights()}
	EvalZzEOX      = Evaluator{Name: "ZZ_EOX", Metric: HTM, Weights: shortWeights()}
	EvalCeorCPLine = Evaluator{Name: "CEOR_CP_LINE", Metric: STM, Weights: shortWeights()}
	EvalMehtaFB    = Evaluator{Name: "MEHTA_FB", Metric: STM, Weights: shortWeights()}
	EvalMehta3QB   = Evaluator{Name: "MEHTA_3QB", Metric: STM, Weights: shortWeights()}
	EvalNautilusFB = Evaluator{Name: "NAUTILUS_FB", Metric: STM, Weights: shortWeights()}
	EvalNautilusSB = Evaluator{Name: "NAUTILUS_SB", Metric: STM, Weights: shortWeights()}
	EvalNautilusSQ = Evaluator{Name: "NAUTILUS_SB_SQUARE", Metric: STM, Weights: shortWeights()}

	// EvalFinal re-scores a whole solve (every stage concatenated) under
	// the BEST policy, used once by the pipeline after all stages finish.
	EvalFinal = Evaluator{Name: "FINAL", Metric: HTM, Weights: bestWeights()}
)

// WithPolicy returns a copy of e using the given policy's weight profile,
// keeping its name and metric — the SHORT/BEST switch
// describes as a magnitude swap on the same evaluator rather than a
// different evaluator per policy.
func (e Evaluator) WithPolicy(p Policy) Evaluator {
	e.Weights = weightsFor(p)
	return e
}
