package solve

import (
	"fmt"
	"strings"
	"time"
)

// Report renders a SolveRecord as the multi-line, per-stage text the CLI
// and web terminal print: one line per stage naming its algorithm and
// that stage's own move count, followed by the combined solution and its overall
// length under every metric.
type Report struct {
	Method     string
	Spin       Spn
	Inspection int
	Lines      []string
	Full       Algorithm
	Metric     Metric // the preset's chosen primary metric, used by String's summary line
	Metrics    map[Metric]float64

	// RawMetrics is Metrics computed from RawTotal instead of Total —
	// populated only when Bitflags.Cancellations asks for the
	// pre-cancellation count alongside the shrunk one.
	RawMetrics map[Metric]float64
}

// BuildReport walks a finished SolveRecord's stages into a Report. metric
// is the preset's chosen primary metric for the summary line; flags
// controls which optional passes run — Cancellations also populates
// RawMetrics from the record's unshrunk total.
func BuildReport(method string, rec SolveRecord, metric Metric, flags Bitflags) Report {
	r := Report{Method: method, Spin: rec.Spin, Inspection: rec.Inspection, Metric: metric, Metrics: map[Metric]float64{}}
	running := NewAlgorithm()
	for _, st := range rec.Stages {
		running = Concat(running, st.Alg)
		name := st.Name
		if n := st.Alg.Len(); n == 0 {
			r.Lines = append(r.Lines, fmt.Sprintf("%-12s (skip)", name+":"))
		} else {
			r.Lines = append(r.Lines, fmt.Sprintf("%-12s %s (%d)", name+":", st.Alg.String(), n))
		}
	}
	r.Full = running
	for _, m := range []Metric{Movements, QTM, HTM, STM, ATM, ETM, OBTM} {
		r.Metrics[m] = running.Metric(m)
	}
	if flags.Cancellations {
		raw := rec.RawTotal()
		r.RawMetrics = map[Metric]float64{}
		for _, m := range []Metric{Movements, QTM, HTM, STM, ATM, ETM, OBTM} {
			r.RawMetrics[m] = raw.Metric(m)
		}
	}
	return r
}

// String renders the full multi-line report, ending with the combined
// algorithm and its HTM/STM totals (the two metrics most solvers compare
// by).
func (r Report) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Method: %s\n", r.Method)
	for _, l := range r.Lines {
		fmt.Fprintln(&b, l)
	}
	fmt.Fprintf(&b, "Solution: %s\n", r.Full.String())
	fmt.Fprintf(&b, "Length: %d moves (HTM %.0f, STM %.0f, %s %.0f)\n",
		r.Full.Len(), r.Metrics[HTM], r.Metrics[STM], r.Metric, r.Metrics[r.Metric])
	if r.RawMetrics != nil {
		fmt.Fprintf(&b, "Before cancellation: HTM %.0f, STM %.0f\n", r.RawMetrics[HTM], r.RawMetrics[STM])
	}
	return b.String()
}

// BuildAllSpinsReport builds one Report per successful SolveRecord, in the
// order they were found — the façade's "all spins" output, alongside the
// single best report picked from the same records.
func BuildAllSpinsReport(method string, recs []SolveRecord, metric Metric, flags Bitflags) []Report {
	reports := make([]Report, len(recs))
	for i, rec := range recs {
		reports[i] = BuildReport(method, rec, metric, flags)
	}
	return reports
}

// FailureReport renders a PipelineError as a diagnostic string: every
// completed stage plus the one that could not be built.
func FailureReport(method string, err PipelineError) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Method: %s\n", method)
	for _, st := range err.Partial.Stages {
		fmt.Fprintf(&b, "%-12s %s\n", st.Name+":", st.Alg.String())
	}
	if err.Failed.MaxDepth > 0 {
		fmt.Fprintf(&b, "%s not built in %d steps: %s\n", err.Failed.Stage, err.Failed.MaxDepth, err.Failed.Reason)
	} else {
		fmt.Fprintf(&b, "%s not built: %s\n", err.Failed.Stage, err.Failed.Reason)
	}
	return b.String()
}

// buildTimeReport renders one line per stage's wall-clock duration plus a
// cumulative total, the façade's timing report.
func buildTimeReport(rec SolveRecord) string {
	var b strings.Builder
	var sum time.Duration
	for _, st := range rec.Stages {
		fmt.Fprintf(&b, "%-12s %s\n", st.Name+":", st.Duration)
		sum += st.Duration
	}
	fmt.Fprintf(&b, "Total: %s\n", sum)
	return b.String()
}
