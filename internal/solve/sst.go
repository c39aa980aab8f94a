package solve

// Sst (search step set) is a named, reusable list of generator Steps a
// search level is allowed to choose from. Restricting the alphabet per
// level is how the engine keeps later stages (second block, last layer,
// ...) from re-breaking earlier progress and how it encodes move
// restrictions particular to a method (e.g. CFOP's F2L never needs B/D
// turns once the cross is down in most writeups, Roux's second-block search
// stays off L/R so the completed first block is untouched).
type Sst struct {
	Name  string
	Steps []Step
}

func quarterAndHalf(a Axis) []Step {
	return []Step{Face(a, Quarter), Face(a, Prime), Face(a, Half)}
}

func wideQuarterAndHalf(a Axis) []Step {
	return []Step{Wide(a, Quarter), Wide(a, Prime), Wide(a, Half)}
}

func sliceQuarterAndHalf(a Axis) []Step {
	return []Step{Slice(a, Quarter), Slice(a, Prime), Slice(a, Half)}
}

func union(sets ...[]Step) []Step {
	out := []Step{}
	for _, s := range sets {
		out = append(out, s...)
	}
	return out
}

var (
	allFaces = union(
		quarterAndHalf(AxisU), quarterAndHalf(AxisD),
		quarterAndHalf(AxisF), quarterAndHalf(AxisB),
		quarterAndHalf(AxisR), quarterAndHalf(AxisL),
	)

	// FullTurnstile is every face turn, no wide/slice/rotation moves: the
	// default alphabet for a from-scratch stage like a cross or EOLine.
	FullTurnstile = Sst{Name: "FULL", Steps: allFaces}

	// NoSliceNoRotation is FullTurnstile restricted off M/E/S and x/y/z —
	// used once a stage must not re-orient the cube or disturb a block
	// that a slice move would otherwise cut through.
	NoSliceNoRotation = Sst{Name: "NO_SLICE_NO_ROT", Steps: allFaces}

	// RouxSecondBlock keeps Roux's second-block search off L and R so the
	// completed first block on the left is never disturbed.
	RouxSecondBlock = Sst{
		Name: "ROUX_SB",
		Steps: union(
			quarterAndHalf(AxisU), quarterAndHalf(AxisD),
			quarterAndHalf(AxisF), quarterAndHalf(AxisB),
			sliceQuarterAndHalf(AxisM),
		),
	}

	// YruRUCPBuilt is CEOR/YruRU's signature restricted alphabet for CP-line
	// extension: only U, R, and the M slice, matching the source's
	// `yruRU_urUR`-family set names.
	YruRUCPBuilt = Sst{
		Name: "YRURU_urUR",
		Steps: union(
			quarterAndHalf(AxisU), quarterAndHalf(AxisR),
			sliceQuarterAndHalf(AxisM),
		),
	}

	// PetrusExpandBlock restricts the 2x2x2->2x2x3 expansion search off the
	// two faces that already belong to the finished block.
	PetrusExpandBlock = Sst{
		Name: "PETRUS_EB",
		Steps: union(
			quarterAndHalf(AxisU), quarterAndHalf(AxisB),
			quarterAndHalf(AxisR), quarterAndHalf(AxisF),
		),
	}

	// LastLayerAlg is the alphabet OLL/PLL search is allowed: U plus any
	// single face turn, since last-layer algorithms never need D/slice/wide
	// moves once F2L is complete.
	LastLayerAlg = Sst{Name: "LL", Steps: allFaces}

	// WideEOCross is ZZ/LEOR's EOLine alphabet: wide R/L turns are
	// useful here because the left/right faces can be turned as a pair
	// while orientation is being fixed.
	WideEOCross = Sst{
		Name: "WIDE_EO",
		Steps: union(allFaces, wideQuarterAndHalf(AxisR), wideQuarterAndHalf(AxisL)),
	}

	// RouxLSE restricts the last-six-edges search to U and M turns, which
	// never disturb the finished blocks.
	RouxLSE = Sst{
		Name:  "ROUX_LSE",
		Steps: union(quarterAndHalf(AxisU), sliceQuarterAndHalf(AxisM)),
	}

	// ZzF2L is ZZ's F2L alphabet once EOLine is down: every face but no
	// slice/wide, since all edges are already oriented and slice turns
	// would immediately re-break that.
	ZzF2L = Sst{Name: "ZZ_F2L", Steps: allFaces}

	// NoRSlice is CEOR/LEOR's CP-preserving alphabet once corner
	// permutation on the D layer is solved: M is dropped to avoid
	// re-breaking CP, leaving U/R/L/F/B/D.
	NoRSlice = Sst{Name: "NO_M", Steps: allFaces}
)

// Contains reports whether s is a member of the set (ignores Turn so a
// lookup can ask "is axis X usable at all", matching how the engine applies
// per-level pruning before trying specific amounts).
func (set Sst) Contains(s Step) bool {
	for _, m := range set.Steps {
		if m.Kind == s.Kind && m.Axis == s.Axis {
			return true
		}
	}
	return false
}
