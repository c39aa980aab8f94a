package solve

// Pgr (piece group) names a fixed set of corner/edge home slots that a
// method's stage cares about together, e.g. "the four D-layer edges" or
// "the left 2x1x3 block". Predicates (predicate.go) and evaluators
// (evaluator.go) are built on top of named Pgr values rather than raw slot
// indices so method tables read the way the source's stage definitions do.
//
// This is a grounded SUBSET of piece groups — just enough to drive the nine
// method pipelines' real stages — not the full named-group catalogue a
// from-scratch speedcubing reference would enumerate; DESIGN.md records
// which groups were chosen and why.
type Pgr struct {
	Name    string
	Corners []int
	Edges   []int
}

// Slot indices, named for readability against cornerSlotName/edgeSlotName
// in movetables.go.
const (
	cUBL = 0
	cUBR = 1
	cUFL = 2
	cUFR = 3
	cDFL = 4
	cDFR = 5
	cDBL = 6
	cDBR = 7
)

const (
	eUB = 0
	eUL = 1
	eUR = 2
	eUF = 3
	eFL = 4
	eFR = 5
	eBR = 6
	eBL = 7
	eDF = 8
	eDL = 9
	eDR = 10
	eDB = 11
)

// CornersSolved reports whether every named corner slot holds its home
// piece in home orientation.
func CornersSolved(c *Cube, slots []int) bool {
	for _, s := range slots {
		if c.CPerm[s] != s || c.COri[s] != 0 {
			return false
		}
	}
	return true
}

// EdgesSolved reports whether every named edge slot holds its home piece in
// home orientation.
func EdgesSolved(c *Cube, slots []int) bool {
	for _, s := range slots {
		if c.EPerm[s] != s || c.EOri[s] != 0 {
			return false
		}
	}
	return true
}

// CornersPermuted / EdgesPermuted ignore orientation: only position matters
// (used for permutation-only stages like a PLL skeleton check).
func CornersPermuted(c *Cube, slots []int) bool {
	for _, s := range slots {
		if c.CPerm[s] != s {
			return false
		}
	}
	return true
}

func EdgesPermuted(c *Cube, slots []int) bool {
	for _, s := range slots {
		if c.EPerm[s] != s {
			return false
		}
	}
	return true
}

// CornersOriented / EdgesOriented ignore position: every piece currently
// occupying one of the named slots must be twisted/flipped home, wherever
// it came from (used for orientation-only stages like EOLine/EOCross).
func CornersOriented(c *Cube, slots []int) bool {
	for _, s := range slots {
		if c.COri[s] != 0 {
			return false
		}
	}
	return true
}

func EdgesOriented(c *Cube, slots []int) bool {
	for _, s := range slots {
		if c.EOri[s] != 0 {
			return false
		}
	}
	return true
}

// Solved reports whether the group's corners and edges are all solved
// (position + orientation), resolved against c's current spin first so a
// name like CfopCross keeps meaning "whichever four edges are currently on
// the bottom" under any whole-cube orientation, not just the identity one.
func (g Pgr) Solved(c *Cube) bool {
	r := g.ResolveSpin(c.Spin)
	return CornersSolved(c, r.Corners) && EdgesSolved(c, r.Edges)
}

// Oriented reports whether the group's corners and edges are all oriented,
// regardless of position.
func (g Pgr) Oriented(c *Cube) bool {
	r := g.ResolveSpin(c.Spin)
	return CornersOriented(c, r.Corners) && EdgesOriented(c, r.Edges)
}

// Permuted reports whether the group's corners and edges are all in their
// home positions, regardless of orientation.
func (g Pgr) Permuted(c *Cube) bool {
	r := g.ResolveSpin(c.Spin)
	return CornersPermuted(c, r.Corners) && EdgesPermuted(c, r.Edges)
}

// vecToLetters decomposes a solved-frame position vector back into the
// current-frame axis letters that name it (e.g. {-1,1,-1} -> L,U,B),
// inverting the sum axisVector performs in FromAbsPosition.
func vecToLetters(v vec3) []Axis {
	var out []Axis
	switch {
	case v[0] > 0:
		out = append(out, AxisR)
	case v[0] < 0:
		out = append(out, AxisL)
	}
	switch {
	case v[1] > 0:
		out = append(out, AxisU)
	case v[1] < 0:
		out = append(out, AxisD)
	}
	switch {
	case v[2] > 0:
		out = append(out, AxisF)
	case v[2] < 0:
		out = append(out, AxisB)
	}
	return out
}

// resolveCornerSlot/resolveEdgeSlot answer "which physical slot is currently
// playing the role that home slot `slot` names" under spin s: they recover
// slot's identity-frame label (vecToLetters) and re-resolve that label
// through FromAbsPosition under s. At the identity spin this is the
// identity map.
func resolveCornerSlot(slot int, s Spn) int {
	if s == identitySpin {
		return slot
	}
	if r, ok := FromAbsPosition(vecToLetters(cornerSlotVec[slot]), s, true); ok {
		return r
	}
	return slot
}

func resolveEdgeSlot(slot int, s Spn) int {
	if s == identitySpin {
		return slot
	}
	if r, ok := FromAbsPosition(vecToLetters(edgeSlotVec[slot]), s, false); ok {
		return r
	}
	return slot
}

// ResolveSpin rebuilds g's slot lists for the cube's current spin: a group
// defined under the identity spin (e.g. "the four D-layer edges") is
// translated to whichever physical slots currently hold that role.
func (g Pgr) ResolveSpin(s Spn) Pgr {
	if s == identitySpin {
		return g
	}
	rc := make([]int, len(g.Corners))
	for i, slot := range g.Corners {
		rc[i] = resolveCornerSlot(slot, s)
	}
	re := make([]int, len(g.Edges))
	for i, slot := range g.Edges {
		re[i] = resolveEdgeSlot(slot, s)
	}
	return Pgr{Name: g.Name, Corners: rc, Edges: re}
}

// Catalogue of named piece groups, one per method stage that needs a
// predicate or evaluator target. Slot choices assume the identity spin
// (U=up, F=front); a stage built on one of these groups always checks it
// against the cube transformed to the stage's own working spin first.
var (
	// CfopCross is the four D-layer edges (U/D swapped relative to a
	// classic write-up because this package's "cross" stage always solves
	// onto the D face under the active spin).
	CfopCross = Pgr{Name: "CFOP_CROSS", Edges: []int{eDF, eDL, eDR, eDB}}

	// CfopF2LFL/FR/BL/BR are the four corner+edge pairs of the first two
	// layers, named by their D-layer corner.
	CfopF2LFL = Pgr{Name: "CFOP_F2L_FL", Corners: []int{cDFL}, Edges: []int{eFL}}
	CfopF2LFR = Pgr{Name: "CFOP_F2L_FR", Corners: []int{cDFR}, Edges: []int{eFR}}
	CfopF2LBL = Pgr{Name: "CFOP_F2L_BL", Corners: []int{cDBL}, Edges: []int{eBL}}
	CfopF2LBR = Pgr{Name: "CFOP_F2L_BR", Corners: []int{cDBR}, Edges: []int{eBR}}

	// CfopF2L is all four layers below the last-layer corners/edges.
	CfopF2L = Pgr{
		Name:    "CFOP_F2L",
		Corners: []int{cDFL, cDFR, cDBL, cDBR},
		Edges:   []int{eDF, eDL, eDR, eDB, eFL, eFR, eBL, eBR},
	}

	// CfopLastLayer is the U-layer corners and edges, targeted by OLL/PLL.
	CfopLastLayer = Pgr{
		Name:    "CFOP_LL",
		Corners: []int{cUBL, cUBR, cUFL, cUFR},
		Edges:   []int{eUB, eUL, eUR, eUF},
	}

	// RouxFB/RouxSB are the left and right 2x1x3 blocks (two D-layer
	// corners, three belt edges each) Roux builds with the first two
	// stages of its pipeline.
	RouxFB = Pgr{Name: "ROUX_FB", Corners: []int{cDFL, cDBL}, Edges: []int{eFL, eBL, eDL}}
	RouxSB = Pgr{Name: "ROUX_SB", Corners: []int{cDFR, cDBR}, Edges: []int{eFR, eBR, eDR}}

	// PetrusBlock is the initial 2x2x2 corner, PetrusExpanded adds the
	// fourth edge+corner to make a 2x2x3. The other three D-layer corners
	// give the same shape of block rotated onto a different corner;
	// PetrusBlockDFR/DBL/DBR and their matching PetrusExpanded* groups let
	// the BLOCK_222/BLOCK_223 stages accept whichever corner the search
	// happens to build first instead of forcing DFL.
	PetrusBlock    = Pgr{Name: "PETRUS_222", Corners: []int{cDFL}, Edges: []int{eDF, eDL, eFL}}
	PetrusBlockDFR = Pgr{Name: "PETRUS_222_DFR", Corners: []int{cDFR}, Edges: []int{eDF, eDR, eFR}}
	PetrusBlockDBL = Pgr{Name: "PETRUS_222_DBL", Corners: []int{cDBL}, Edges: []int{eDB, eDL, eBL}}
	PetrusBlockDBR = Pgr{Name: "PETRUS_222_DBR", Corners: []int{cDBR}, Edges: []int{eDB, eDR, eBR}}

	PetrusExpanded = Pgr{
		Name:    "PETRUS_223",
		Corners: []int{cDFL, cDBL},
		Edges:   []int{eDF, eDL, eFL, eBL},
	}
	PetrusExpandedDFR = Pgr{
		Name:    "PETRUS_223_DFR",
		Corners: []int{cDFR, cDBR},
		Edges:   []int{eDF, eDR, eFR, eBR},
	}
	PetrusExpandedDBL = Pgr{
		Name:    "PETRUS_223_DBL",
		Corners: []int{cDBL, cDFL},
		Edges:   []int{eDB, eDL, eBL, eFL},
	}
	PetrusExpandedDBR = Pgr{
		Name:    "PETRUS_223_DBR",
		Corners: []int{cDBR, cDFR},
		Edges:   []int{eDB, eDR, eBR, eFR},
	}

	// ZzAllEdges is all 12 edges, used orientation-only by the ZZ EOLine
	// stage; ZzLine additionally requires DF/DB in place.
	ZzAllEdges = Pgr{Name: "ZZ_EO", Edges: []int{eUB, eUL, eUR, eUF, eFL, eFR, eBL, eBR, eDF, eDL, eDR, eDB}}
	ZzLine     = Pgr{Name: "ZZ_LINE", Edges: []int{eDF, eDB}}

	// CeorCPLine mirrors ZzLine for CP-based methods: corner permutation on
	// the D layer plus the same DF/DB edge line.
	CeorCPLine = Pgr{Name: "CEOR_CP_LINE", Corners: []int{cDFL, cDFR, cDBL, cDBR}, Edges: []int{eDF, eDB}}

	// MehtaFB is the same first block as Roux; Mehta3QB extends it with
	// the front-right column (corner left unplaced, belt edges placed).
	// MehtaFBRight/Mehta3QBRight are the same shapes built on the right
	// side instead, for Preset.Variant's mirrored build order.
	MehtaFB       = RouxFB
	MehtaFBRight  = RouxSB
	Mehta3QB      = Pgr{Name: "MEHTA_3QB", Corners: []int{cDFL, cDBL}, Edges: []int{eFL, eBL, eDL, eFR, eDR}}
	Mehta3QBRight = Pgr{Name: "MEHTA_3QB_RIGHT", Corners: []int{cDFR, cDBR}, Edges: []int{eFR, eBR, eDR, eFL, eDL}}

	// NautilusFB/SB mirror Roux's blocks under Nautilus's own naming.
	NautilusFB = RouxFB
	NautilusSB = RouxSB

	// LeorLine is LEOR's EO-plus-line stage, built like CeorCPLine but
	// edge-oriented first (LEOR solves EO before placing the D line).
	LeorLine = Pgr{Name: "LEOR_LINE", Edges: []int{eDF, eDB}}

	// AllPieces covers the whole cube; a final stage's goal is "solved",
	// full stop, with no partial-group shortcut.
	AllPieces = Pgr{
		Name:    "ALL",
		Corners: []int{cUBL, cUBR, cUFL, cUFR, cDFL, cDFR, cDBL, cDBR},
		Edges:   []int{eUB, eUL, eUR, eUF, eFL, eFR, eBR, eBL, eDF, eDL, eDR, eDB},
	}
)
