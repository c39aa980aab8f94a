package solve

import (
	"fmt"

	"github.com/GRVigo/speedsolve/internal/cube"
)

// ToStickerMove translates one Step into the sticker engine's Move value,
// so a solution found by this package's search can be replayed on an
// internal/cube.Cube (for the CLI's --headless renderer, CFEN export, and
// the existing move-count/verification helpers) without this package
// needing its own sticker renderer.
func ToStickerMove(s Step) (cube.Move, error) {
	if !s.IsMove() {
		return cube.Move{}, fmt.Errorf("solve: step %v is not a concrete move", s)
	}

	clockwise := s.Turn != Prime
	double := s.Turn == Half

	switch s.Kind {
	case KindFace:
		return cube.Move{Face: axisFace[s.Axis], Clockwise: clockwise, Double: double}, nil
	case KindWide:
		return cube.Move{Face: axisFace[s.Axis], Clockwise: clockwise, Double: double, Wide: true, WideDepth: 2}, nil
	case KindSlice:
		return cube.Move{Slice: axisSlice[s.Axis], Clockwise: clockwise, Double: double}, nil
	case KindRotation:
		rt, ok := rotationType[s.Axis]
		if !ok {
			return cube.Move{}, fmt.Errorf("solve: unknown rotation axis %v", s.Axis)
		}
		return cube.Move{Rotation: rt, Clockwise: clockwise, Double: double}, nil
	default:
		return cube.Move{}, fmt.Errorf("solve: unsupported step kind %v", s.Kind)
	}
}

var rotationType = map[Axis]cube.RotationType{
	AxisX: cube.X_Rotation, AxisY: cube.Y_Rotation, AxisZ: cube.Z_Rotation,
}

// ToStickerMoves converts a whole Algorithm, skipping grouping pseudo-tokens.
func ToStickerMoves(a Algorithm) ([]cube.Move, error) {
	moves := make([]cube.Move, 0, len(a.Steps))
	for _, s := range a.Steps {
		if !s.IsMove() {
			continue
		}
		mv, err := ToStickerMove(s)
		if err != nil {
			return nil, err
		}
		moves = append(moves, mv)
	}
	return moves, nil
}

// FromSticker reads a solved-or-scrambled 3x3 internal/cube.Cube into this
// package's cubie Cube, using the same cyclic-color-matching approach
// movetables.go uses to derive move deltas: for every corner/edge slot,
// compare its current colors against the solved baseline's colors for
// every slot and take the (slot, rotation) that lines up.
func FromSticker(sc *cube.Cube) (Cube, error) {
	solved := cube.NewCube(3)

	cornerMaps := cube.Get3x3CornerMappings()
	homeC := make([][]cube.Color, len(cornerMaps))
	for i, cm := range cornerMaps {
		homeC[i] = solved.OrderedCornerColors(cm)
	}

	out := Cube{Spin: identitySpin}
	for i, cm := range cornerMaps {
		live := sc.OrderedCornerColors(cm)
		j, r, ok := matchRotation(homeC, live, 3)
		if !ok {
			return Cube{}, fmt.Errorf("solve: corner slot %d does not match any home identity", i)
		}
		out.CPerm[i] = j
		out.COri[i] = r
	}

	edgeMaps := cube.Get3x3EdgeMappings()
	homeE := make([][]cube.Color, len(edgeMaps))
	for i, em := range edgeMaps {
		homeE[i] = solved.OrderedEdgeColors(em)
	}
	for i, em := range edgeMaps {
		live := sc.OrderedEdgeColors(em)
		j, r, ok := matchRotation(homeE, live, 2)
		if !ok {
			return Cube{}, fmt.Errorf("solve: edge slot %d does not match any home identity", i)
		}
		out.EPerm[i] = j
		out.EOri[i] = r
	}

	return out, nil
}

// ScrambleToCube parses WCA-extended scramble text with internal/cube's own
// ParseScramble (so the CLI's existing --cfen/--start validation keeps
// working unchanged) and returns the resulting cubie Cube plus the
// Algorithm form this package's search and reporting need.
func ScrambleToCube(scramble string) (Cube, Algorithm, error) {
	moves, err := cube.ParseScramble(scramble)
	if err != nil {
		return Cube{}, Algorithm{}, err
	}
	sc := cube.NewCube(3)
	sc.ApplyMoves(moves)

	cb, err := FromSticker(sc)
	if err != nil {
		return Cube{}, Algorithm{}, err
	}
	alg, err := ParseAlgorithm(scramble)
	if err != nil {
		return Cube{}, Algorithm{}, err
	}
	return cb, alg, nil
}
