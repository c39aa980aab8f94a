package solve

import (
	"context"
	"runtime"
	"sort"
	"sync"
	"sync/atomic"
)

// EngineState is the IDA engine's lifecycle, surfaced in progress reporting
// so a long low-depth search can be observed mid-flight (
// concurrency model).
type EngineState int

const (
	Idle EngineState = iota
	Configuring
	Ready
	Running
	Done
)

func (s EngineState) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Configuring:
		return "Configuring"
	case Ready:
		return "Ready"
	case Running:
		return "Running"
	case Done:
		return "Done"
	default:
		return "Unknown"
	}
}

// Engine runs a single Plan's iterative-deepening search with a pool of
// goroutines splitting work across the plan's root ply. cores follows this
// project's convention: -1 pins the search to one goroutine (deterministic,
// easiest to reason about while debugging a stage), 0 uses
// runtime.NumCPU(), and any positive value is used as the exact worker
// count.
type Engine struct {
	mu      sync.Mutex
	state   EngineState
	cores   int
	plan    Plan
	start   Cube
	eval    Evaluator
	hasEval bool

	cancelled atomic.Bool
	skip      atomic.Bool

	workersUsed atomic.Int32
}

func NewEngine(cores int) *Engine {
	return &Engine{state: Idle, cores: cores}
}

// WorkersUsed reports how many worker goroutines actually picked up at least
// one root job during the most recent Run — may be lower than the pool size
// requested at construction when the root expansion is smaller than it.
func (e *Engine) WorkersUsed() int { return int(e.workersUsed.Load()) }

func (e *Engine) State() EngineState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

func (e *Engine) workerCount() int {
	switch {
	case e.cores < 0:
		return 1
	case e.cores == 0:
		if n := runtime.NumCPU(); n > 0 {
			return n
		}
		return 1
	default:
		return e.cores
	}
}

// Configure loads a plan and starting position, moving Idle/Done -> Ready.
// An optional Evaluator overrides the default evaluateShortest tie-break
// among same-depth solutions (omit it to keep the old subjective-score-only
// behavior).
func (e *Engine) Configure(plan Plan, start Cube, eval ...Evaluator) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state = Configuring
	e.plan = plan
	e.start = start
	e.cancelled.Store(false)
	e.skip.Store(false)
	e.workersUsed.Store(0)
	if len(eval) > 0 {
		e.eval = eval[0]
		e.hasEval = true
	} else {
		e.eval = Evaluator{}
		e.hasEval = false
	}
	e.state = Ready
}

// pickBest picks the winner among same-depth candidates: the configured
// Evaluator's BestFrom when one was supplied, evaluateShortest otherwise.
func (e *Engine) pickBest(results []Algorithm) Algorithm {
	if e.hasEval {
		return e.eval.BestFrom(e.start, results)
	}
	return evaluateShortest(results)
}

// Cancel asks a running search to abandon as soon as workers notice —
// cooperative, not forced, matching the source's FinishingThread flag.
func (e *Engine) Cancel() { e.cancelled.Store(true) }

// SkipDeeper asks a running search to stop increasing depth once the
// current position already satisfies the plan's Goal, even short of
// MaxDepth — used by stages whose goal can be reached "for free" partway
// through a deeper plan than strictly required.
func (e *Engine) SkipDeeper() { e.skip.Store(true) }

// Run executes the configured plan: for each depth from plan.MinDepth to
// plan.MaxDepth, every solution at exactly that depth is collected (not
// just the first found) so EvaluateShortest can pick the best one by
// SubjectiveScore; the first depth with any hit ends the search.
func (e *Engine) Run(ctx context.Context) (Algorithm, bool) {
	e.mu.Lock()
	if e.state != Ready {
		e.mu.Unlock()
		panic("solve: Engine.Run called while not Ready (state " + e.state.String() + ")")
	}
	e.state = Running
	e.mu.Unlock()
	defer func() {
		e.mu.Lock()
		e.state = Done
		e.mu.Unlock()
	}()

	for depth := e.plan.MinDepth; depth <= e.plan.MaxDepth; depth++ {
		if e.cancelled.Load() || ctx.Err() != nil {
			return Algorithm{}, false
		}
		if e.skip.Load() && e.plan.Goal.Check(&e.start) {
			return NewAlgorithm(), true
		}
		results := e.searchDepth(ctx, depth)
		if len(results) > 0 {
			return e.pickBest(results), true
		}
	}
	return Algorithm{}, false
}

// RunTop is Run but keeps up to maxOut ranked candidates from the first
// depth that finds any, instead of collapsing straight to a single winner —
// used by the first stage of a pipeline run with Preset.Amount > 1, so the
// remaining stages can each be tried against a different early candidate.
func (e *Engine) RunTop(ctx context.Context, maxOut int) ([]Algorithm, bool) {
	e.mu.Lock()
	if e.state != Ready {
		e.mu.Unlock()
		panic("solve: Engine.RunTop called while not Ready (state " + e.state.String() + ")")
	}
	e.state = Running
	e.mu.Unlock()
	defer func() {
		e.mu.Lock()
		e.state = Done
		e.mu.Unlock()
	}()

	for depth := e.plan.MinDepth; depth <= e.plan.MaxDepth; depth++ {
		if e.cancelled.Load() || ctx.Err() != nil {
			return nil, false
		}
		if e.skip.Load() && e.plan.Goal.Check(&e.start) {
			return []Algorithm{NewAlgorithm()}, true
		}
		results := e.searchDepth(ctx, depth)
		if len(results) > 0 {
			return e.pickTop(results, maxOut), true
		}
	}
	return nil, false
}

// pickTop ranks results by the same scoring RunTop's single-winner sibling
// uses (the configured Evaluator when one is set, SubjectiveScore
// otherwise) and returns the best maxOut, lowest score first.
func (e *Engine) pickTop(results []Algorithm, maxOut int) []Algorithm {
	score := func(a Algorithm) float64 {
		if e.hasEval {
			return e.eval.ScoreFrom(e.start, a)
		}
		return float64(a.SubjectiveScore())
	}
	out := append([]Algorithm{}, results...)
	sort.SliceStable(out, func(i, j int) bool { return score(out[i]) < score(out[j]) })
	if maxOut > 0 && maxOut < len(out) {
		out = out[:maxOut]
	}
	return out
}

// searchDepth splits the root ply's candidate moves across a worker pool
// and runs a bounded DFS from each. The root level is a comparatively large
// expansion: every single root move, plus — when the root is marked DOUBLE
// and there's budget for it — every valid pair of root moves, so the pool
// has enough independent jobs to keep every worker busy even at low depths.
func (e *Engine) searchDepth(ctx context.Context, depth int) []Algorithm {
	if depth == 0 {
		if e.plan.Goal.Check(&e.start) {
			return []Algorithm{NewAlgorithm()}
		}
		return nil
	}
	if len(e.plan.Levels) == 0 {
		return nil
	}

	root := e.plan.Levels[0]
	var rootJobs [][]Step
	for _, s := range root.Set.Steps {
		rootJobs = append(rootJobs, []Step{s})
	}
	if root.Unit == DOUBLE && depth >= 2 {
		for _, m1 := range root.Set.Steps {
			for _, m2 := range root.Set.Steps {
				if m2.SameAxis(m1) || !opposingOrderOK(m1, m2) {
					continue
				}
				rootJobs = append(rootJobs, []Step{m1, m2})
			}
		}
	}

	jobs := make(chan []Step, len(rootJobs))
	for _, j := range rootJobs {
		jobs <- j
	}
	close(jobs)

	var mu sync.Mutex
	var out []Algorithm
	var wg sync.WaitGroup
	var used atomic.Int32

	workers := e.workerCount()
	if workers > len(rootJobs) {
		workers = len(rootJobs)
	}
	if workers < 1 {
		workers = 1
	}

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ranAny := false
			for lead := range jobs {
				if e.cancelled.Load() || ctx.Err() != nil {
					return
				}
				ranAny = true
				cube := e.start
				for _, s := range lead {
					cube.Apply(s)
				}
				found := e.dfs(ctx, &cube, append([]Step{}, lead...), depth-len(lead))
				if len(found) > 0 {
					mu.Lock()
					out = append(out, found...)
					mu.Unlock()
				}
			}
			if ranAny {
				used.Add(1)
			}
		}()
	}
	wg.Wait()
	e.workersUsed.Store(used.Load())
	return out
}

// dfs explores the remaining plies of the plan from cube, appending any
// path that satisfies the plan's Goal exactly when remaining reaches 0.
// Pruning: a move never immediately follows another turn of the same axis
// (Shrink would collapse it anyway), and opposite-face pairs are only tried
// in a fixed order (U before D, R before L, F before B) since either order
// commutes to the same resulting state.
func (e *Engine) dfs(ctx context.Context, c *Cube, path []Step, remaining int) []Algorithm {
	if remaining == 0 {
		if e.plan.Goal.Check(c) {
			return []Algorithm{NewAlgorithm(append([]Step{}, path...)...)}
		}
		return nil
	}
	if e.cancelled.Load() || ctx.Err() != nil {
		return nil
	}

	level := e.levelFor(len(path))
	last := path[len(path)-1]

	if level.Unit == DOUBLE && remaining >= 1 {
		return e.dfsDouble(ctx, c, path, remaining, level, last)
	}

	var out []Algorithm
	for _, mv := range level.Set.Steps {
		if mv.SameAxis(last) || !opposingOrderOK(last, mv) {
			continue
		}
		next := c.Clone()
		nextPath := append(append([]Step{}, path...), mv)
		next.Apply(mv)
		// A CHECK level ends its branch as soon as the predicate is
		// satisfied, even short of the plan's full depth budget.
		if level.Check != nil && level.Check.Check(&next) {
			out = append(out, NewAlgorithm(nextPath...))
			continue
		}
		out = append(out, e.dfs(ctx, &next, nextPath, remaining-1)...)
	}
	return out
}

// dfsDouble spends one unit of remaining depth on a pair of moves, used by
// levels the method tables mark SearchUnit DOUBLE (e.g. a slice pair that
// the evaluator always rewards together).
func (e *Engine) dfsDouble(ctx context.Context, c *Cube, path []Step, remaining int, level SearchLevel, last Step) []Algorithm {
	var out []Algorithm
	for _, m1 := range level.Set.Steps {
		if m1.SameAxis(last) || !opposingOrderOK(last, m1) {
			continue
		}
		mid := c.Clone()
		mid.Apply(m1)
		for _, m2 := range level.Set.Steps {
			if m2.SameAxis(m1) || !opposingOrderOK(m1, m2) {
				continue
			}
			next := mid.Clone()
			next.Apply(m2)
			np := append(append(append([]Step{}, path...), m1), m2)
			if level.Check != nil && level.Check.Check(&next) {
				out = append(out, NewAlgorithm(np...))
				continue
			}
			out = append(out, e.dfs(ctx, &next, np, remaining-1)...)
		}
	}
	return out
}

func (e *Engine) levelFor(pathLen int) SearchLevel {
	idx := pathLen
	if idx >= len(e.plan.Levels) {
		idx = len(e.plan.Levels) - 1
	}
	return e.plan.Levels[idx]
}

var oppositeAxis = map[Axis]Axis{
	AxisU: AxisD, AxisD: AxisU,
	AxisR: AxisL, AxisL: AxisR,
	AxisF: AxisB, AxisB: AxisF,
}

func axisRank(a Axis) int {
	switch a {
	case AxisU, AxisR, AxisF:
		return 0
	default:
		return 1
	}
}

// opposingOrderOK enforces a fixed order between opposite-face turns so the
// search never explores both "D then U" and "U then D", which commute to
// the same state.
func opposingOrderOK(prev, next Step) bool {
	if (prev.Kind != KindFace && prev.Kind != KindWide) || (next.Kind != KindFace && next.Kind != KindWide) {
		return true
	}
	opp, ok := oppositeAxis[prev.Axis]
	if !ok || opp != next.Axis {
		return true
	}
	return axisRank(prev.Axis) < axisRank(next.Axis)
}

// evaluateShortest is the engine's default tie-break among several
// solutions found at the same depth: lowest SubjectiveScore wins.
func evaluateShortest(cands []Algorithm) Algorithm {
	best := cands[0]
	for _, a := range cands[1:] {
		if a.SubjectiveScore() < best.SubjectiveScore() {
			best = a
		}
	}
	return best
}
