package solve

import (
	"context"
	"fmt"
	"time"
)

// StageKind distinguishes a Stage backed by a live IDA search from one
// backed by a precomputed Collection lookup.
type StageKind int

const (
	StageSearch StageKind = iota
	StageCollection
)

// Stage is one named step of a method Pipeline. It is built once per method
// (methods.go) and reused across every solve attempt; Run is the only part
// that touches live cube state. Modeling SearchStage and CollectionStage as
// one tagged type — rather than two incompatible interfaces — is the
// generalization calls for in place of the source's per-stage
// subclassing.
type Stage struct {
	Name string
	Kind StageKind

	// StageSearch fields.
	Plan   Plan
	Cores  int
	Policy Policy
	Eval   Evaluator

	// StageCollection fields.
	Coll       Collection
	LookupMode LookupPolicy
}

// Run executes the stage against the given cube (a copy; callers apply the
// returned algorithm themselves once satisfied with it) and returns the
// algorithm that reaches the stage's goal, or an error describing why it
// could not.
func (st Stage) Run(ctx context.Context, c Cube) (Algorithm, error) {
	switch st.Kind {
	case StageCollection:
		alg, ok := st.Coll.Solve(&c, st.LookupMode, st.Eval)
		if !ok {
			return Algorithm{}, StageError{Stage: st.Name, Reason: "no matching case in collection"}
		}
		return alg, nil
	default:
		eng := NewEngine(st.Cores)
		eng.Configure(st.Plan, c, st.Eval.WithPolicy(st.Policy))
		alg, ok := eng.Run(ctx)
		if !ok {
			return Algorithm{}, StageError{
				Stage:    st.Name,
				Reason:   "not built within search depth",
				MaxDepth: st.Plan.MaxDepth,
				MinDepth: st.Plan.MinDepth,
			}
		}
		return alg, nil
	}
}

// RunTop is Run but, for a StageSearch stage, keeps up to maxOut ranked
// candidates from the first depth that finds any instead of one winner. A
// StageCollection stage has nothing to rank among — a collection lookup
// returns one case — so it always reports a single-element slice.
func (st Stage) RunTop(ctx context.Context, c Cube, maxOut int) ([]Algorithm, error) {
	if st.Kind == StageCollection {
		alg, err := st.Run(ctx, c)
		if err != nil {
			return nil, err
		}
		return []Algorithm{alg}, nil
	}
	eng := NewEngine(st.Cores)
	eng.Configure(st.Plan, c, st.Eval.WithPolicy(st.Policy))
	algs, ok := eng.RunTop(ctx, maxOut)
	if !ok {
		return nil, StageError{
			Stage:    st.Name,
			Reason:   "not built within search depth",
			MaxDepth: st.Plan.MaxDepth,
			MinDepth: st.Plan.MinDepth,
		}
	}
	return algs, nil
}

// SolveRecord accumulates the per-stage results of one full pipeline run:
// the cube state and algorithm after each stage, used both to print a
// per-stage report and to run ConsistencyCheck.
type SolveRecord struct {
	ScrambleAlg Algorithm
	Stages      []StageResult
	Spin        Spn

	// Inspection is this record's index among the first stage's kept
	// candidates for Spin (0 when Preset.Amount keeps only the best one),
	// identifying it within a Response's AllSpins report.
	Inspection int
}

// StageResult is one completed stage's contribution to a SolveRecord.
type StageResult struct {
	Name     string
	Alg      Algorithm
	After    Cube
	Duration time.Duration
}

// Total concatenates every stage's algorithm in order, shrunk as a whole.
func (r SolveRecord) Total() Algorithm {
	out := NewAlgorithm()
	for _, st := range r.Stages {
		out = Concat(out, st.Alg)
	}
	return out
}

// RawTotal is Total without the cross-stage shrink pass, so its Metric
// reflects exactly the moves each stage planned before any cancellation.
func (r SolveRecord) RawTotal() Algorithm {
	out := NewAlgorithm()
	for _, st := range r.Stages {
		out = ConcatRaw(out, st.Alg)
	}
	return out
}

// ConsistencyCheck replays the scramble followed by every recorded stage
// algorithm from a solved cube and confirms the result matches the last
// stage's recorded cube exactly — catching a stage whose Plan.Goal checked
// a weaker condition than "fully solved" partway through the pipeline.
func (r SolveRecord) ConsistencyCheck() error {
	c := Solved()
	c.ApplyAlgorithm(r.ScrambleAlg)
	for i, st := range r.Stages {
		c.ApplyAlgorithm(st.Alg)
		if c != st.After {
			return fmt.Errorf("solve: stage %q (%d) replay mismatch", st.Name, i)
		}
	}
	return nil
}
