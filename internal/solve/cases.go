package solve

// llCornerOri/llEdgeOri read the last layer's orientation signature in a
// fixed slot order, used by the OLL/PLL/CMLL case Match funcs below instead
// of a CFEN sticker pattern (internal/cube's Algorithm.Pattern) since this
// package reasons in cubie coordinates, not stickers. Slots are resolved
// against c.Spin first so "the last layer" still means whichever four
// corners/edges are currently on top under a non-identity spin.
func llCornerOri(c *Cube) [4]int {
	s := [4]int{cUBL, cUBR, cUFL, cUFR}
	for i, slot := range s {
		s[i] = resolveCornerSlot(slot, c.Spin)
	}
	return [4]int{c.COri[s[0]], c.COri[s[1]], c.COri[s[2]], c.COri[s[3]]}
}

func llEdgeOri(c *Cube) [4]int {
	s := [4]int{eUB, eUL, eUR, eUF}
	for i, slot := range s {
		s[i] = resolveEdgeSlot(slot, c.Spin)
	}
	return [4]int{c.EOri[s[0]], c.EOri[s[1]], c.EOri[s[2]], c.EOri[s[3]]}
}

func llCornerPerm(c *Cube) [4]int {
	s := [4]int{cUBL, cUBR, cUFL, cUFR}
	for i, slot := range s {
		s[i] = resolveCornerSlot(slot, c.Spin)
	}
	return [4]int{c.CPerm[s[0]], c.CPerm[s[1]], c.CPerm[s[2]], c.CPerm[s[3]]}
}

func llEdgePerm(c *Cube) [4]int {
	s := [4]int{eUB, eUL, eUR, eUF}
	for i, slot := range s {
		s[i] = resolveEdgeSlot(slot, c.Spin)
	}
	return [4]int{c.EPerm[s[0]], c.EPerm[s[1]], c.EPerm[s[2]], c.EPerm[s[3]]}
}

// rotated4 cyclically shifts a length-4 array by n (used to recognize a
// case regardless of which of the 4 AUF angles it's currently sitting at;
// SubjectiveBestY is what actually tries each angle, this just lets one
// Case definition match all of them).
func rotated4(a [4]int, n int) [4]int {
	var out [4]int
	for i := 0; i < 4; i++ {
		out[i] = a[(i+n)%4]
	}
	return out
}

func matchesAnyRotation(actual, want [4]int) bool {
	for n := 0; n < 4; n++ {
		if rotated4(actual, n) == want {
			return true
		}
	}
	return false
}

func oriOnly(cornerWant [4]int) func(*Cube) bool {
	return func(c *Cube) bool { return matchesAnyRotation(llCornerOri(c), cornerWant) }
}

// ollMatch checks corner AND edge orientation together, rotated by the same
// AUF amount: corner orientation alone can't distinguish two cases that
// happen to share a corner-twist pattern but differ in which edges are
// flipped (e.g. OLL Skip vs. H).
func ollMatch(cornerWant, edgeWant [4]int) func(*Cube) bool {
	return func(c *Cube) bool {
		co, eo := llCornerOri(c), llEdgeOri(c)
		for n := 0; n < 4; n++ {
			if rotated4(co, n) == cornerWant && rotated4(eo, n) == edgeWant {
				return true
			}
		}
		return false
	}
}

func permMatch(cornerWant, edgeWant [4]int) func(*Cube) bool {
	return func(c *Cube) bool {
		return llCornerPerm(c) == cornerWant && llEdgePerm(c) == edgeWant
	}
}

// OLLCollection is a representative subset of the 57 OLL cases — enough to
// exercise a real pipeline stage and Collection lookup, not the full named
// catalogue a from-scratch reference table would carry.
var OLLCollection = Collection{
	Name: "OLL",
	Cases: []Case{
		{
			Name: "Sune", CaseID: "OLL-27", Category: "OLL",
			Match: ollMatch([4]int{0, 1, 2, 2}, [4]int{0, 0, 0, 0}),
			Algs:  []Algorithm{mustAlg("R U R' U R U2 R'")},
		},
		{
			Name: "Anti-Sune", CaseID: "OLL-26", Category: "OLL",
			Match: ollMatch([4]int{0, 2, 1, 1}, [4]int{0, 0, 0, 0}),
			Algs:  []Algorithm{mustAlg("R U2 R' U' R U' R'")},
		},
		{
			Name: "OLL Skip", CaseID: "OLL-SKIP", Category: "OLL",
			Match: ollMatch([4]int{0, 0, 0, 0}, [4]int{0, 0, 0, 0}),
			Algs:  []Algorithm{mustAlg("")},
		},
		{
			Name: "H", CaseID: "OLL-21", Category: "OLL",
			Match: ollMatch([4]int{0, 0, 0, 0}, [4]int{1, 1, 1, 1}),
			Algs:  []Algorithm{mustAlg("R U2 R2 U' R2 U' R2 U2 R")},
		},
		{
			Name: "Pi", CaseID: "OLL-22", Category: "OLL",
			Match: ollMatch([4]int{1, 1, 2, 2}, [4]int{1, 1, 1, 1}),
			Algs:  []Algorithm{mustAlg("R U2 R2 U' R2 U' R2 U2 R")},
		},
		{
			Name: "Bowtie", CaseID: "OLL-25", Category: "OLL",
			Match: ollMatch([4]int{2, 2, 1, 1}, [4]int{1, 1, 1, 1}),
			Algs:  []Algorithm{mustAlg("F' r U R' U' r' F R")},
		},
	},
}

// PLLCollection is a representative subset of the 21 PLL cases.
var PLLCollection = Collection{
	Name: "PLL",
	Cases: []Case{
		{
			Name: "Ua", CaseID: "PLL-Ua", Category: "PLL",
			Match: permMatch([4]int{cUBL, cUBR, cUFL, cUFR}, [4]int{eUR, eUF, eUL, eUB}),
			Algs:  []Algorithm{mustAlg("R U' R U R U R U' R' U' R2")},
		},
		{
			Name: "Ub", CaseID: "PLL-Ub", Category: "PLL",
			Match: permMatch([4]int{cUBL, cUBR, cUFL, cUFR}, [4]int{eUL, eUB, eUR, eUF}),
			Algs:  []Algorithm{mustAlg("R2 U R U R' U' R' U' R' U R'")},
		},
		{
			Name: "PLL Skip", CaseID: "PLL-SKIP", Category: "PLL",
			Match: permMatch([4]int{cUBL, cUBR, cUFL, cUFR}, [4]int{eUB, eUL, eUR, eUF}),
			Algs:  []Algorithm{mustAlg("")},
		},
		{
			Name: "T", CaseID: "PLL-T", Category: "PLL",
			Match: permMatch([4]int{cUBL, cUBR, cUFR, cUFL}, [4]int{eUB, eUL, eUR, eUF}),
			Algs:  []Algorithm{mustAlg("R U R' U' R' F R2 U' R' U' R U R' F'")},
		},
		{
			Name: "Y", CaseID: "PLL-Y", Category: "PLL",
			Match: permMatch([4]int{cUFR, cUBR, cUFL, cUBL}, [4]int{eUB, eUR, eUL, eUF}),
			Algs:  []Algorithm{mustAlg("F R U' R' U' R U R' F' R U R' U' R' F R F'")},
		},
	},
}

// CMLLCollection is Roux/Nautilus's last-layer-corners-only lookup: it
// shares OLL's corner signature space but never touches edges, since by
// the time CMLL runs the last layer's edges are still unsolved (LSE comes
// after).
var CMLLCollection = Collection{
	Name: "CMLL",
	Cases: []Case{
		{
			Name: "Sune", CaseID: "CMLL-SUNE", Category: "CMLL",
			Match: oriOnly([4]int{0, 1, 2, 2}),
			Algs:  []Algorithm{mustAlg("R U R' U R U2 R'")},
		},
		{
			// CMLL only cares about corners: by the time it runs, LSE
			// (edges) hasn't been solved yet.
			Name: "CMLL Skip", CaseID: "CMLL-SKIP", Category: "CMLL",
			Match: func(c *Cube) bool {
				return llCornerPerm(c) == [4]int{cUBL, cUBR, cUFL, cUFR} && llCornerOri(c) == [4]int{0, 0, 0, 0}
			},
			Algs: []Algorithm{mustAlg("")},
		},
	},
}

func mustAlg(s string) Algorithm {
	a, err := ParseAlgorithm(s)
	if err != nil {
		panic(err)
	}
	return a
}
