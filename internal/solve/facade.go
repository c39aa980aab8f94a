package solve

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Request is the external entry point's input: a scramble, a
// method, a preset of quality/time dials, and the independent on/off
// bitflags (cache, regrips, cancellations). It is the thing the CLI flags
// and the web /api/solve JSON body both get parsed into.
type Request struct {
	Scramble string
	Method   Method
	Preset   Preset
	Bitflags Bitflags
}

// Response is what a Solve call returns: the request's assigned ID (so a
// progress subscriber can correlate updates), the best report and its raw
// SolveRecord, every other (spin, inspection index) attempt that also
// reached a full solve, and a rendered timing report for the winning
// attempt.
type Response struct {
	ID       string
	Report   Report
	Record   SolveRecord
	AllSpins []Report
	Timing   string
}

// Progress is one update sent on a Solve call's progress channel: the stage
// it names and the engine state (Running for a pipeline stage, Done or an
// error for the final update). The web
// server's websocket handler and the TUI watcher both just range over this
// channel and render it.
type Progress struct {
	RequestID string
	Stage     string
	State     EngineState
	Done      bool
	Err       error
}

// Facade is the package's single stateful entry point: it owns the
// scramble cache and hands every request a fresh request ID.
type Facade struct {
	cache scrambleCache
}

func NewFacade() *Facade { return &Facade{} }

// Solve runs a full method pipeline for req and publishes Progress updates on
// the returned channel: one Running update per pipeline stage, all posted
// before the search starts (an update that does not fit the 8-slot buffer is
// dropped), then one final update. No update is posted when an individual
// stage completes. The channel is closed when the solve
// finishes (successfully or not); the caller should keep draining it until
// then. Cancelling ctx stops the search at its next cooperative checkpoint,
// the same mechanism Engine.Cancel uses internally.
func (f *Facade) Solve(ctx context.Context, req Request) (<-chan Progress, func() (Response, error)) {
	id := uuid.NewString()
	progress := make(chan Progress, 8)

	key := newCacheKey(req.Scramble, req.Method, req.Preset)
	if req.Bitflags.Cache {
		if cached, ok := f.cache.Get(key); ok {
			progress <- Progress{RequestID: id, Stage: "CACHE", State: Done, Done: true}
			close(progress)
			resp := Response{
				ID:     id,
				Report: BuildReport(req.Method.String(), cached, req.Preset.Metric, req.Bitflags),
				Record: cached,
				Timing: buildTimeReport(cached),
			}
			return progress, func() (Response, error) { return resp, nil }
		}
	}

	resultCh := make(chan Response, 1)
	errCh := make(chan error, 1)

	go func() {
		defer close(progress)

		_, scrambleAlg, err := ScrambleToCube(req.Scramble)
		if err != nil {
			progress <- Progress{RequestID: id, Stage: "PARSE", Err: err, Done: true}
			errCh <- err
			return
		}

		pipeline := BuildPipeline(req.Method, req.Preset)
		for _, st := range pipeline.Stages {
			select {
			case progress <- Progress{RequestID: id, Stage: st.Name, State: Running}:
			default:
			}
		}

		recs, best, solveErr := pipeline.SolveAll(ctx, scrambleAlg)
		if solveErr != nil {
			progress <- Progress{RequestID: id, Stage: "FAILED", Err: solveErr, Done: true}
			errCh <- solveErr
			return
		}

		if req.Bitflags.Regrips {
			best = regripRecord(best)
		}

		if err := best.ConsistencyCheck(); err != nil {
			progress <- Progress{RequestID: id, Stage: "CONSISTENCY", Err: err, Done: true}
			errCh <- err
			return
		}

		if req.Bitflags.Cache {
			f.cache.Put(key, best)
		}
		progress <- Progress{RequestID: id, Stage: "DONE", State: Done, Done: true}
		resultCh <- Response{
			ID:       id,
			Report:   BuildReport(req.Method.String(), best, req.Preset.Metric, req.Bitflags),
			Record:   best,
			AllSpins: BuildAllSpinsReport(req.Method.String(), recs, req.Preset.Metric, req.Bitflags),
			Timing:   pipeline.TimeReport(best),
		}
	}()

	wait := func() (Response, error) {
		select {
		case r := <-resultCh:
			return r, nil
		case err := <-errCh:
			return Response{}, err
		case <-ctx.Done():
			return Response{}, ctx.Err()
		}
	}
	return progress, wait
}

// SolveSync is the common-case convenience wrapper for callers (the CLI's
// non---watch path, tests) that don't want to juggle the progress channel.
func (f *Facade) SolveSync(ctx context.Context, req Request) (Response, error) {
	progress, wait := f.Solve(ctx, req)
	go func() {
		for range progress {
		}
	}()
	return wait()
}

// regripRecord shifts each stage's leading whole-cube rotation into the
// previous stage's tail: the move's position in the overall concatenated
// sequence doesn't change, only which stage's line it prints on, so a
// solver can fold it into the hand repositioning they do between stages
// instead of pausing mid-stage for it. Run only when Bitflags.Regrips asks
// for it.
func regripRecord(rec SolveRecord) SolveRecord {
	for i := 1; i < len(rec.Stages); i++ {
		cur := rec.Stages[i]
		if len(cur.Alg.Steps) == 0 || cur.Alg.Steps[0].Kind != KindRotation {
			continue
		}
		lead := cur.Alg.Steps[0]
		prev := rec.Stages[i-1]

		after := prev.After.Clone()
		after.Apply(lead)
		rec.Stages[i-1].Alg = Algorithm{Steps: append(append([]Step{}, prev.Alg.Steps...), lead), Spin: prev.Alg.Spin}
		rec.Stages[i-1].After = after

		rec.Stages[i].Alg = Algorithm{Steps: append([]Step{}, cur.Alg.Steps[1:]...), Spin: cur.Alg.Spin}
	}
	return rec
}

// DescribeFailure turns a Solve error back into the human-readable report
// format, falling back to a plain error string if it isn't a
// PipelineError (e.g. a scramble parse failure).
func DescribeFailure(method Method, err error) string {
	if pe, ok := err.(PipelineError); ok {
		return FailureReport(method.String(), pe)
	}
	return fmt.Sprintf("Method: %s\nerror: %v\n", method, err)
}
