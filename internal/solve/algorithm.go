package solve

import "strings"

// Algorithm is an ordered sequence of Steps together with the spin it was
// recorded under. It is the unit every search, collection lookup, and
// report line passes around.
type Algorithm struct {
	Steps []Step
	Spin  Spn
}

// NewAlgorithm wraps a step slice, defaulting to the identity spin.
func NewAlgorithm(steps ...Step) Algorithm {
	return Algorithm{Steps: steps, Spin: identitySpin}
}

// Len counts only real moves, ignoring grouping pseudo-tokens.
func (a Algorithm) Len() int {
	n := 0
	for _, s := range a.Steps {
		if s.IsMove() {
			n++
		}
	}
	return n
}

// Metric totals the algorithm's cost under m.
func (a Algorithm) Metric(m Metric) float64 {
	total := 0.0
	for _, s := range a.Steps {
		total += s.Cost(m)
	}
	return total
}

// Append adds steps to the end, applying Shrink so the result never carries
// redundant same-axis runs.
func (a Algorithm) Append(steps ...Step) Algorithm {
	out := Algorithm{Steps: append(append([]Step{}, a.Steps...), steps...), Spin: a.Spin}
	return out.Shrink()
}

// Concat joins two algorithms recorded under the same spin and shrinks the
// seam between them.
func Concat(a, b Algorithm) Algorithm {
	out := Algorithm{Steps: append(append([]Step{}, a.Steps...), b.Steps...), Spin: a.Spin}
	return out.Shrink()
}

// Shrink collapses consecutive same-axis moves (R R -> R2, R R' -> nothing,
// R2 R -> R', ...) and drops no-ops, repeating until the sequence is stable.
// Grouping pseudo-tokens are left untouched and break adjacency.
func (a Algorithm) Shrink() Algorithm {
	steps := a.Steps
	for {
		out := make([]Step, 0, len(steps))
		changed := false
		for _, s := range steps {
			if len(out) > 0 && s.IsMove() && out[len(out)-1].IsMove() && out[len(out)-1].SameAxis(s) {
				prev := out[len(out)-1]
				q := prev.Turn.quarterTurns() + s.Turn.quarterTurns()
				if t, ok := turnFromQuarters(q); ok {
					merged := prev
					merged.Turn = t
					out[len(out)-1] = merged
				} else {
					out = out[:len(out)-1]
				}
				changed = true
				continue
			}
			out = append(out, s)
		}
		steps = out
		if !changed {
			break
		}
	}
	return Algorithm{Steps: steps, Spin: a.Spin}
}

// Inverse returns the algorithm that undoes a, steps reversed and each
// individually inverted. Grouping pseudo-tokens are dropped: an inverse is
// always a flat move list.
func (a Algorithm) Inverse() Algorithm {
	moves := make([]Step, 0, len(a.Steps))
	for _, s := range a.Steps {
		if s.IsMove() {
			moves = append(moves, s)
		}
	}
	out := make([]Step, len(moves))
	for i, s := range moves {
		out[len(moves)-1-i] = s.Inverse()
	}
	return Algorithm{Steps: out, Spin: a.Spin}
}

// axisRepVec gives each face/slice axis a representative direction vector in
// the solved-state frame, used to carry a turn's axis through a whole-cube
// rotation. Slice axes share their matching face's line (M tracks L, E
// tracks D, S tracks F) since a slice turn is always parallel to it.
var axisRepVec = map[Axis]vec3{
	AxisU: vecU, AxisD: vecD, AxisF: vecF, AxisB: vecB, AxisR: vecR, AxisL: vecL,
	AxisM: vecL, AxisE: vecD, AxisS: vecF,
}

// axisFromVec resolves a solved-frame direction back to the face axis
// pointing there.
func axisFromVec(v vec3) (Axis, bool) {
	switch v {
	case vecU:
		return AxisU, true
	case vecD:
		return AxisD, true
	case vecF:
		return AxisF, true
	case vecB:
		return AxisB, true
	case vecR:
		return AxisR, true
	case vecL:
		return AxisL, true
	}
	return AxisNone, false
}

// sliceAxisFromVec resolves a solved-frame direction to the slice axis whose
// line runs along it.
func sliceAxisFromVec(v vec3) Axis {
	switch {
	case v[0] != 0:
		return AxisM
	case v[1] != 0:
		return AxisE
	default:
		return AxisS
	}
}

// rotateAxisBy carries axis a through whole-cube rotation rot: a's
// representative direction is turned by rot's quarter-turn count, then
// re-resolved to whichever face or slice axis now lies along that
// direction.
func rotateAxisBy(rot Step, a Axis) Axis {
	v, ok := axisRepVec[a]
	if !ok {
		return a
	}
	for i := 0; i < rot.Turn.quarterTurns(); i++ {
		v = rotQuarter(rot.Axis, v)
	}
	if a == AxisM || a == AxisE || a == AxisS {
		return sliceAxisFromVec(v)
	}
	if na, ok := axisFromVec(v); ok {
		return na
	}
	return a
}

// TransformTurn rewrites a as if the whole cube had first been rotated by
// rot: every face/wide/slice step's axis is remapped to whichever axis now
// lies along its original direction, and the recorded Spin is rotated the
// same way. Whole-cube rotations are orientation-preserving, so a step's
// Turn never needs to flip — only its Axis moves.
func (a Algorithm) TransformTurn(rot Step) Algorithm {
	steps := make([]Step, len(a.Steps))
	for i, s := range a.Steps {
		if s.Kind == KindFace || s.Kind == KindWide || s.Kind == KindSlice {
			s.Axis = rotateAxisBy(rot, s.Axis)
		}
		steps[i] = s
	}
	return Algorithm{Steps: steps, Spin: a.Spin.Rotate(rot)}
}

// Cancellations returns a's fully shrunk form — named to pair with
// ConcatRaw/RawTotal's unshrunk metric so a report can show both a pre- and
// post-cancellation move count.
func (a Algorithm) Cancellations() Algorithm { return a.Shrink() }

// ConcatRaw joins two algorithms without shrinking the seam, so the result's
// Metric still reflects every stage's moves exactly as planned. Concat (and
// SolveRecord.Total) report the shrunk count; ConcatRaw (and
// SolveRecord.RawTotal) report the pre-cancellation one.
func ConcatRaw(a, b Algorithm) Algorithm {
	return Algorithm{Steps: append(append([]Step{}, a.Steps...), b.Steps...), Spin: a.Spin}
}

// Regrip prepends the whole-cube rotations that turn `from` into the
// identity spin, without altering the face turns that follow (a "regrip"
// pass, report generation). No trailing rotation is added.
func Regrip(a Algorithm, from Spn) Algorithm {
	lead := spinPath(from, identitySpin)
	return Concat(Concat(NewAlgorithm(lead...), Algorithm{Steps: a.Steps, Spin: from}), NewAlgorithm())
}

// spinPath returns the short rotation sequence that turns `from` into `to`.
// It tries a single rotation on each axis before falling back to two.
func spinPath(from, to Spn) []Step {
	if from == to {
		return nil
	}
	for _, axis := range []Axis{AxisX, AxisY, AxisZ} {
		for _, t := range []Turn{Quarter, Half, Prime} {
			if from.Rotate(Rotation(axis, t)) == to {
				return []Step{Rotation(axis, t)}
			}
		}
	}
	for _, a1 := range []Axis{AxisX, AxisY, AxisZ} {
		for _, t1 := range []Turn{Quarter, Half, Prime} {
			mid := from.Rotate(Rotation(a1, t1))
			for _, a2 := range []Axis{AxisX, AxisY, AxisZ} {
				for _, t2 := range []Turn{Quarter, Half, Prime} {
					if mid.Rotate(Rotation(a2, t2)) == to {
						return []Step{Rotation(a1, t1), Rotation(a2, t2)}
					}
				}
			}
		}
	}
	return nil
}

// String renders the algorithm in WCA-extended notation, space-separated.
func (a Algorithm) String() string {
	parts := make([]string, 0, len(a.Steps))
	for _, s := range a.Steps {
		if r := s.String(); r != "" {
			parts = append(parts, r)
		}
	}
	return strings.Join(parts, " ")
}

// ParseAlgorithm splits whitespace-separated WCA-extended tokens into an
// Algorithm under the identity spin.
func ParseAlgorithm(text string) (Algorithm, error) {
	fields := strings.Fields(text)
	steps := make([]Step, 0, len(fields))
	for _, f := range fields {
		s, err := ParseStep(f)
		if err != nil {
			return Algorithm{}, err
		}
		steps = append(steps, s)
	}
	return Algorithm{Steps: steps, Spin: identitySpin}, nil
}

// SubjectiveScore ranks algorithms for tie-breaking among equally-short
// solutions: fewer rotations first, then fewer wide/slice moves, matching
// the source's preference for "cleaner" execution over raw move count.
func (a Algorithm) SubjectiveScore() int {
	score := 0
	for _, s := range a.Steps {
		switch s.Kind {
		case KindRotation:
			score += 3
		case KindWide, KindSlice:
			score += 1
		}
	}
	return score
}
