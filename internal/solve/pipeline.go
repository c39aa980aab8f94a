package solve

import (
	"context"
	"sync"
	"time"
)

// Pipeline is one method's ordered list of Stages plus the set of starting
// spins ("inspections") worth trying before the stages even begin, and how
// many of the first stage's candidates to carry forward per spin. Every
// method (CFOP, Roux, Petrus, ZZ, CEOR, Mehta, Nautilus, LEOR, LBL) is one
// Pipeline value built by methods.go; this file holds the single driver
// every one of them runs through ( table-driven replacement for
// the source's per-method inheritance hierarchy).
type Pipeline struct {
	Name   string
	Stages []Stage
	Spins  []Spn
	Cores  int
	Amount Amount
}

// maxOut is how many of the first stage's candidates this pipeline keeps
// per spin; a zero-value Amount (an unconfigured Pipeline literal, as built
// by some tests) keeps just the best one.
func (p Pipeline) maxOut() int { return p.Amount.maxOut() }

// attempt is one (spin, inspection index) candidate's outcome: either a
// full SolveRecord or the stage that broke it.
type attempt struct {
	record SolveRecord
	err    *PipelineError
}

// SolveAll runs the pipeline against a scrambled cube, trying every
// configured starting spin and, within each spin, every one of the first
// stage's kept candidates, returning every attempt that reached a full
// solve alongside the single best one (by EvalFinal under the BEST
// policy). If every attempt failed, the error from whichever progressed
// furthest is returned and the successful-record slice is empty.
func (p Pipeline) SolveAll(ctx context.Context, scramble Algorithm) ([]SolveRecord, SolveRecord, error) {
	spins := p.Spins
	if len(spins) == 0 {
		spins = []Spn{identitySpin}
	}

	perSpin := make([][]attempt, len(spins))
	var wg sync.WaitGroup
	for i, spin := range spins {
		wg.Add(1)
		go func(i int, spin Spn) {
			defer wg.Done()
			perSpin[i] = p.runSpin(ctx, scramble, spin)
		}(i, spin)
	}
	wg.Wait()

	var records []SolveRecord
	var best *SolveRecord
	var bestScore float64
	var furthest *PipelineError

	for _, attempts := range perSpin {
		for _, a := range attempts {
			if a.err != nil {
				if furthest == nil || len(a.err.Partial.Stages) > len(furthest.Partial.Stages) {
					furthest = a.err
				}
				continue
			}
			records = append(records, a.record)
			score := EvalFinal.Score(a.record.Total())
			if best == nil || score < bestScore {
				rec := a.record
				best = &rec
				bestScore = score
			}
		}
	}

	if best == nil {
		return nil, SolveRecord{}, *furthest
	}
	return records, *best, nil
}

// Solve is SolveAll narrowed to just the best record, the common case for
// callers that don't need every (spin, inspection index) attempt.
func (p Pipeline) Solve(ctx context.Context, scramble Algorithm) (SolveRecord, error) {
	_, best, err := p.SolveAll(ctx, scramble)
	return best, err
}

// runSpin drives one starting spin: the first stage is run with RunTop so
// up to maxOut() candidates are kept, then each candidate continues
// independently through the remaining stages.
func (p Pipeline) runSpin(ctx context.Context, scramble Algorithm, startSpin Spn) []attempt {
	if len(p.Stages) == 0 {
		return nil
	}

	cube := Solved()
	cube.ApplyAlgorithm(scramble)
	cube.SetSpin(startSpin)

	base := SolveRecord{ScrambleAlg: scramble, Spin: startSpin}
	if lead := spinPath(identitySpin, startSpin); len(lead) > 0 {
		base.Stages = append(base.Stages, StageResult{Name: "SPIN_ALIGN", Alg: NewAlgorithm(lead...), After: cube})
	}

	first := p.Stages[0]
	if first.Cores == 0 && first.Kind == StageSearch {
		first.Cores = p.Cores
	}

	started := time.Now()
	cands, err := first.RunTop(ctx, cube, p.maxOut())
	elapsed := time.Since(started)
	if err != nil {
		se, _ := err.(StageError)
		return []attempt{{err: &PipelineError{Failed: se, Partial: base}}}
	}

	out := make([]attempt, len(cands))
	var wg sync.WaitGroup
	for i, alg := range cands {
		wg.Add(1)
		go func(i int, alg Algorithm) {
			defer wg.Done()
			next := cube
			next.ApplyAlgorithm(alg)
			rec := base
			rec.Inspection = i
			rec.Stages = append(append([]StageResult{}, base.Stages...),
				StageResult{Name: first.Name, Alg: alg, After: next, Duration: elapsed})
			out[i] = p.continueFrom(ctx, rec, next)
		}(i, alg)
	}
	wg.Wait()
	return out
}

// continueFrom runs every stage after the first, sequentially, starting
// from record/cube as already advanced through the first stage.
func (p Pipeline) continueFrom(ctx context.Context, record SolveRecord, cube Cube) attempt {
	for _, st := range p.Stages[1:] {
		if st.Cores == 0 && st.Kind == StageSearch {
			st.Cores = p.Cores
		}
		started := time.Now()
		alg, err := st.Run(ctx, cube)
		elapsed := time.Since(started)
		if err != nil {
			se, _ := err.(StageError)
			return attempt{err: &PipelineError{Failed: se, Partial: record}}
		}
		cube.ApplyAlgorithm(alg)
		record.Stages = append(record.Stages, StageResult{Name: st.Name, Alg: alg, After: cube, Duration: elapsed})
	}
	return attempt{record: record}
}

// TimeReport renders rec's per-stage wall-clock durations plus the total,
// one line per stage.
func (p Pipeline) TimeReport(rec SolveRecord) string {
	return buildTimeReport(rec)
}
