// Package solve implements the cubie-level 3x3 cube model, the parallel
// search engine, and the per-method solving pipelines described for this
// project. It is the "core" that internal/cube's NxN sticker engine feeds
// into: a scramble typed by a user is parsed and applied with internal/cube,
// then bridged into this package's Cube for solving (see bridge.go).
package solve

import (
	"fmt"
	"strconv"
	"strings"
)

// Axis names one of the letters a Step can turn around: the six faces, the
// three middle slices, and the three whole-cube rotations.
type Axis int

const (
	AxisNone Axis = iota
	AxisU
	AxisD
	AxisF
	AxisB
	AxisR
	AxisL
	AxisM
	AxisE
	AxisS
	AxisX
	AxisY
	AxisZ
)

var axisLetters = map[Axis]string{
	AxisU: "U", AxisD: "D", AxisF: "F", AxisB: "B", AxisR: "R", AxisL: "L",
	AxisM: "M", AxisE: "E", AxisS: "S",
	AxisX: "x", AxisY: "y", AxisZ: "z",
}

var lettersAxis = map[string]Axis{
	"U": AxisU, "D": AxisD, "F": AxisF, "B": AxisB, "R": AxisR, "L": AxisL,
	"M": AxisM, "E": AxisE, "S": AxisS,
	"x": AxisX, "y": AxisY, "z": AxisZ,
}

// StepKind distinguishes the families of token the alphabet is built from.
type StepKind int

const (
	KindNone StepKind = iota
	KindFace
	KindWide
	KindSlice
	KindRotation
	KindParenOpen
	KindParenClose
)

// Turn is the amount a Step rotates its axis by.
type Turn int

const (
	Quarter Turn = iota // 90 degrees clockwise
	Prime               // 90 degrees counter-clockwise
	Half                // 180 degrees
)

// Step is one token of the move alphabet: a single face/wide/slice turn, a
// whole-cube rotation, or one of the pseudo tokens used to group algorithm
// text (PARENTHESIS_OPEN / PARENTHESIS_CLOSE_n_REP). It is the Go analogue
// of the distilled spec's `Step` value.
type Step struct {
	Kind Axis2Kind
	Axis Axis
	Turn Turn
	Rep  int // repetition count for a KindParenClose token, e.g. (R U)3
}

// Axis2Kind is kept distinct from StepKind so a Step literal reads as
// Step{Kind: KindFace, Axis: AxisR, Turn: Quarter} without a name clash.
type Axis2Kind = StepKind

// None is the pseudo "no move" token, used as a zero value for empty slots.
var None = Step{Kind: KindNone}

// ParenOpen and ParenClose build grouping pseudo-tokens.
func ParenOpen() Step  { return Step{Kind: KindParenOpen} }
func ParenClose(rep int) Step {
	if rep <= 1 {
		rep = 1
	}
	return Step{Kind: KindParenClose, Rep: rep}
}

// Face/Wide/Slice/Rotation build a concrete move token.
func Face(a Axis, t Turn) Step     { return Step{Kind: KindFace, Axis: a, Turn: t} }
func Wide(a Axis, t Turn) Step     { return Step{Kind: KindWide, Axis: a, Turn: t} }
func Slice(a Axis, t Turn) Step    { return Step{Kind: KindSlice, Axis: a, Turn: t} }
func Rotation(a Axis, t Turn) Step { return Step{Kind: KindRotation, Axis: a, Turn: t} }

// IsMove reports whether the step actually turns something (as opposed to a
// pseudo token used only for textual grouping).
func (s Step) IsMove() bool {
	return s.Kind == KindFace || s.Kind == KindWide || s.Kind == KindSlice || s.Kind == KindRotation
}

// Inverse returns the step that undoes s.
func (s Step) Inverse() Step {
	inv := s
	switch s.Turn {
	case Quarter:
		inv.Turn = Prime
	case Prime:
		inv.Turn = Quarter
	case Half:
		inv.Turn = Half
	}
	return inv
}

// SameAxis reports whether two steps turn the same physical axis (used by
// the shrink/cancellation and search-pruning logic).
func (s Step) SameAxis(o Step) bool {
	return s.Kind == o.Kind && s.Axis == o.Axis
}

// quarterTurns normalises Turn to a count of clockwise quarter turns (1..3),
// which is what lets Shrink combine two same-axis steps by addition mod 4.
func (t Turn) quarterTurns() int {
	switch t {
	case Quarter:
		return 1
	case Half:
		return 2
	case Prime:
		return 3
	}
	return 0
}

func turnFromQuarters(q int) (Turn, bool) {
	switch q % 4 {
	case 1:
		return Quarter, true
	case 2:
		return Half, true
	case 3:
		return Prime, true
	}
	return Quarter, false // q%4==0: moves cancel, caller drops the step
}

// String renders a Step in WCA-extended notation: face letters as-is, wide
// moves lowercase, slice letters unchanged, rotations lowercase, prime as
// a trailing ', half as a trailing 2.
func (s Step) String() string {
	switch s.Kind {
	case KindNone:
		return ""
	case KindParenOpen:
		return "("
	case KindParenClose:
		if s.Rep > 1 {
			return fmt.Sprintf(")%d", s.Rep)
		}
		return ")"
	}

	letter := axisLetters[s.Axis]
	if s.Kind == KindWide {
		letter = strings.ToLower(letter) + "w"
	} else if s.Kind == KindRotation {
		letter = strings.ToLower(letter)
	}

	switch s.Turn {
	case Prime:
		return letter + "'"
	case Half:
		return letter + "2"
	default:
		return letter
	}
}

// ParseStep parses a single whitespace-trimmed token in WCA-extended
// notation: face turns (R, R', R2), wide turns (r or Rw, plus primes/2),
// slice turns (M E S), rotations (x y z), and the grouping pseudo tokens
// "(" and ")" / ")2" / ")3".
func ParseStep(tok string) (Step, error) {
	tok = strings.TrimSpace(tok)
	if tok == "" {
		return Step{}, fmt.Errorf("empty step")
	}

	if tok == "(" {
		return ParenOpen(), nil
	}
	if strings.HasPrefix(tok, ")") {
		rest := tok[1:]
		if rest == "" {
			return ParenClose(1), nil
		}
		n, err := strconv.Atoi(rest)
		if err != nil {
			return Step{}, fmt.Errorf("bad repetition suffix %q", tok)
		}
		return ParenClose(n), nil
	}

	turn := Quarter
	for len(tok) > 0 {
		last := tok[len(tok)-1]
		if last == '\'' {
			turn = Prime
			tok = tok[:len(tok)-1]
		} else if last == '2' {
			turn = Half
			tok = tok[:len(tok)-1]
		} else {
			break
		}
	}
	if tok == "" {
		return Step{}, fmt.Errorf("move with no axis letter")
	}

	wide := false
	if strings.HasSuffix(tok, "w") && len(tok) > 1 {
		wide = true
		tok = tok[:len(tok)-1]
	}
	// Lowercase single-letter wide shorthand: r, u, f, b, l, d (but not the
	// already-lowercase rotation letters x, y, z, which are handled below).
	if len(tok) == 1 && tok[0] >= 'a' && tok[0] <= 'z' {
		upper := strings.ToUpper(tok)
		if _, ok := lettersAxis[upper]; ok && tok != "x" && tok != "y" && tok != "z" {
			wide = true
			tok = upper
		}
	}

	axis, ok := lettersAxis[tok]
	if !ok {
		return Step{}, fmt.Errorf("unknown step axis %q", tok)
	}

	switch {
	case axis == AxisX || axis == AxisY || axis == AxisZ:
		return Rotation(axis, turn), nil
	case axis == AxisM || axis == AxisE || axis == AxisS:
		return Slice(axis, turn), nil
	case wide:
		return Wide(axis, turn), nil
	default:
		return Face(axis, turn), nil
	}
}
