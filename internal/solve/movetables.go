package solve

import (
	"fmt"
	"sync"

	"github.com/GRVigo/speedsolve/internal/cube"
)

// cornerDelta and edgeDelta describe how one quarter-turn generator
// rearranges the 8 corner / 12 edge slots: Perm[i] names which home slot's
// piece ends up at slot i, and Ori[i] is the additional twist/flip that
// piece picks up. Composing and applying these is pure arithmetic (see
// Cube.Apply); the VALUES are derived once, on first use (ensureTables), by running the
// move through internal/cube's already-tested sticker engine rather than
// hand-transcribed from a table, since that engine's move math
// (ring_generators.go, moves.go) is the thing this whole solver ultimately
// has to agree with when a user types a scramble.
type cornerDelta struct {
	Perm [8]int
	Ori  [8]int
}

type edgeDelta struct {
	Perm [12]int
	Ori  [12]int
}

type moveDelta struct {
	C cornerDelta
	E edgeDelta
}

// cornerSlotName/edgeSlotName document the fixed index<->physical-corner
// correspondence used throughout this package; the indices themselves come
// from the order internal/cube's Get3x3CornerMappings/Get3x3EdgeMappings
// return (and that order is stable: it is a literal slice built the same
// way on every call).
var cornerSlotName = [8]string{"UBL", "UBR", "UFL", "UFR", "DFL", "DFR", "DBL", "DBR"}
var edgeSlotName = [12]string{"UB", "UL", "UR", "UF", "FL", "FR", "BR", "BL", "DF", "DL", "DR", "DB"}

// cornerSlotVec/edgeSlotVec give each slot's fixed solved-frame position, in
// (Right,Up,Front) components. FromAbsPosition uses these to translate a
// current-frame role (e.g. "the corner currently at up-front-right") into
// the intrinsic slot index that role maps to under a given spin.
var cornerSlotVec = [8]vec3{
	{-1, 1, -1}, {1, 1, -1}, {-1, 1, 1}, {1, 1, 1},
	{-1, -1, 1}, {1, -1, 1}, {-1, -1, -1}, {1, -1, -1},
}

var edgeSlotVec = [12]vec3{
	{0, 1, -1}, {-1, 1, 0}, {1, 1, 0}, {0, 1, 1},
	{-1, 0, 1}, {1, 0, 1}, {1, 0, -1}, {-1, 0, -1},
	{0, -1, 1}, {-1, -1, 0}, {1, -1, 0}, {0, -1, -1},
}

var (
	tablesOnce sync.Once
	genTable   map[genKey]moveDelta
)

type genKey struct {
	Kind StepKind
	Axis Axis
}

var axisFace = map[Axis]cube.Face{
	AxisU: cube.Up, AxisD: cube.Down, AxisF: cube.Front,
	AxisB: cube.Back, AxisR: cube.Right, AxisL: cube.Left,
}

var axisSlice = map[Axis]cube.SliceType{
	AxisM: cube.M_Slice, AxisE: cube.E_Slice, AxisS: cube.S_Slice,
}

func ensureTables() {
	tablesOnce.Do(func() {
		genTable = make(map[genKey]moveDelta, 15)
		for axis := range axisFace {
			genTable[genKey{KindFace, axis}] = deriveDelta(cube.Move{Face: axisFace[axis], Clockwise: true})
			genTable[genKey{KindWide, axis}] = deriveDelta(cube.Move{Face: axisFace[axis], Clockwise: true, Wide: true})
		}
		for axis := range axisSlice {
			genTable[genKey{KindSlice, axis}] = deriveDelta(cube.Move{Slice: axisSlice[axis], Clockwise: true})
		}
	})
}

// deriveDelta runs a single clockwise-quarter sticker-engine Move on a solved
// sticker cube and reads off, for every corner/edge slot, which piece (by
// its solved-state identity) is now there and how it is twisted/flipped
// relative to its home orientation.
func deriveDelta(m cube.Move) moveDelta {
	solved := cube.NewCube(3)
	after := cube.NewCube(3)
	after.ApplyMove(m)

	cornerMaps := cube.Get3x3CornerMappings()
	homeC := make([][]cube.Color, len(cornerMaps))
	for i, cm := range cornerMaps {
		homeC[i] = solved.OrderedCornerColors(cm)
	}

	var cd cornerDelta
	for i, cm := range cornerMaps {
		live := after.OrderedCornerColors(cm)
		j, r, ok := matchRotation(homeC, live, 3)
		if !ok {
			panic(fmt.Sprintf("solve: could not derive corner move table for %v at slot %d", m, i))
		}
		cd.Perm[i] = j
		cd.Ori[i] = r
	}

	edgeMaps := cube.Get3x3EdgeMappings()
	homeE := make([][]cube.Color, len(edgeMaps))
	for i, em := range edgeMaps {
		homeE[i] = solved.OrderedEdgeColors(em)
	}

	var ed edgeDelta
	for i, em := range edgeMaps {
		live := after.OrderedEdgeColors(em)
		j, r, ok := matchRotation(homeE, live, 2)
		if !ok {
			panic(fmt.Sprintf("solve: could not derive edge move table for %v at slot %d", m, i))
		}
		ed.Perm[i] = j
		ed.Ori[i] = r
	}

	return moveDelta{C: cd, E: ed}
}

// matchRotation finds the home entry whose colors are a cyclic rotation of
// live, and returns its index plus the rotation offset r such that
// live[k] == home[j][(k+r) % n] for every k.
func matchRotation(home [][]cube.Color, live []cube.Color, n int) (j int, r int, ok bool) {
	for idx, h := range home {
		for rot := 0; rot < n; rot++ {
			match := true
			for k := 0; k < n; k++ {
				if live[k] != h[(k+rot)%n] {
					match = false
					break
				}
			}
			if match {
				return idx, rot, true
			}
		}
	}
	return 0, 0, false
}

// composeCorner/composeEdge return the delta reached by first reaching
// state `base` (itself expressed as a delta from solved) and then applying
// move `d` on top of it — the same arithmetic Cube.Apply uses for a real
// cube, just applied to deltas so generators can be raised to powers.
func composeCorner(base, d cornerDelta) cornerDelta {
	var out cornerDelta
	for i := 0; i < 8; i++ {
		out.Perm[i] = base.Perm[d.Perm[i]]
		out.Ori[i] = (base.Ori[d.Perm[i]] + d.Ori[i]) % 3
	}
	return out
}

func composeEdge(base, d edgeDelta) edgeDelta {
	var out edgeDelta
	for i := 0; i < 12; i++ {
		out.Perm[i] = base.Perm[d.Perm[i]]
		out.Ori[i] = (base.Ori[d.Perm[i]] + d.Ori[i]) % 2
	}
	return out
}

func identityCornerDelta() cornerDelta {
	var d cornerDelta
	for i := range d.Perm {
		d.Perm[i] = i
	}
	return d
}

func identityEdgeDelta() edgeDelta {
	var d edgeDelta
	for i := range d.Perm {
		d.Perm[i] = i
	}
	return d
}

// powDelta raises a quarter-turn generator to the given power (1, 2, or 3)
// by repeated composition, giving the Quarter/Half/Prime variant of a move
// as a single directly-applicable delta.
func powDelta(d moveDelta, n int) moveDelta {
	c, e := identityCornerDelta(), identityEdgeDelta()
	for i := 0; i < n; i++ {
		c = composeCorner(c, d.C)
		e = composeEdge(e, d.E)
	}
	return moveDelta{C: c, E: e}
}

// lookupDelta resolves a Step (any turn amount, any of the 15 generator
// kinds) to the delta that applies it in one shot.
func lookupDelta(s Step) moveDelta {
	ensureTables()
	gen, ok := genTable[genKey{s.Kind, s.Axis}]
	if !ok {
		panic(fmt.Sprintf("solve: no move table for step %v", s))
	}
	return powDelta(gen, s.Turn.quarterTurns())
}
