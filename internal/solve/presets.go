package solve

// Speed is a coarse depth/quality dial methods.go's pipelines are built
// against, mirroring the source's SPEED1..SPEED6 switch in its search
// thread setup: lower speeds search deeper for a better result, higher
// speeds cap depth for a faster response.
type Speed int

const (
	Speed1 Speed = iota + 1
	Speed2
	Speed3
	Speed4
	Speed5
	Speed6
)

// depthForSpeed scales a stage's baseline max depth down as Speed
// increases, floored at 1 so no stage is ever configured unsearchable.
func depthForSpeed(base int, sp Speed) int {
	d := base - int(sp) + 1
	if d < 1 {
		return 1
	}
	return d
}

// Orient selects which of the 24 whole-cube orientations a pipeline tries
// before running its stages, trading search time for a shot at a shorter
// overall solve from a friendlier starting grip. OrientSingle keeps only
// the scramble's own identity spin; the named axis-pair settings (UD, FB,
// RL) try every spin with that pair of opposite faces up, and the six
// single-face settings narrow it to the four spins with exactly that face
// up. OrientAll tries all 24.
type Orient int

const (
	OrientSingle Orient = iota
	OrientAll
	OrientUD
	OrientFB
	OrientRL
	OrientU
	OrientD
	OrientF
	OrientB
	OrientR
	OrientL
)

// spinsForOrient resolves an Orient setting to the concrete spin list a
// Pipeline should try, filtering AllSpins() by which face(s) are allowed
// to sit up.
func spinsForOrient(o Orient) []Spn {
	all := AllSpins()
	upIn := func(vs ...vec3) []Spn {
		out := make([]Spn, 0, len(all))
		for _, s := range all {
			for _, v := range vs {
				if s.Up == v {
					out = append(out, s)
					break
				}
			}
		}
		return out
	}
	switch o {
	case OrientAll:
		return all
	case OrientUD:
		return upIn(vecU, vecD)
	case OrientFB:
		return upIn(vecF, vecB)
	case OrientRL:
		return upIn(vecR, vecL)
	case OrientU:
		return upIn(vecU)
	case OrientD:
		return upIn(vecD)
	case OrientF:
		return upIn(vecF)
	case OrientB:
		return upIn(vecB)
	case OrientR:
		return upIn(vecR)
	case OrientL:
		return upIn(vecL)
	default:
		return all[:1]
	}
}

// Amount caps how many of the first stage's candidate algorithms are kept
// for the rest of the pipeline to continue from — the evaluator's max_out.
// Each kept candidate runs every downstream stage independently, indexed
// by (spin, inspection index) in the report; the best-scoring complete
// solve across all of them wins.
type Amount int

const (
	AmountOne        Amount = 1
	AmountThree      Amount = 3
	AmountSix        Amount = 6
	AmountTwelve     Amount = 12
	AmountTwentyFour Amount = 24
)

// maxOut returns how many first-stage candidates a should keep, treating
// any non-positive or otherwise unnamed value as "just the best one" so a
// zero-value Preset (or an out-of-range value arriving from an external
// request) degrades to the old single-candidate behavior instead of
// panicking or silently dropping every candidate.
func (a Amount) maxOut() int {
	switch a {
	case AmountOne, AmountThree, AmountSix, AmountTwelve, AmountTwentyFour:
		return int(a)
	}
	return 1
}

// Bitflags are the façade's independent on/off dials: whether a repeated
// (scramble, preset) request may be served from the cache, whether a
// regrip pass may shift a leading rotation across a stage boundary, and
// whether a cancellation pass reports a post-cancellation metric
// alongside the stage-by-stage one.
type Bitflags struct {
	Cache         bool
	Regrips       bool
	Cancellations bool
}

// DefaultBitflags matches the source's out-of-the-box behavior: caching on,
// both optional report passes on.
func DefaultBitflags() Bitflags {
	return Bitflags{Cache: true, Regrips: true, Cancellations: true}
}

// Preset bundles the dials a caller picks per solve request into the values
// methods.go's pipeline builders need. Variant and Option select between a
// method's alternative stage orderings where one exists (methods.go's
// BuildPipeline); Metric picks which move-counting convention the report's
// per-stage totals are expressed in.
type Preset struct {
	Speed   Speed
	Orient  Orient
	Amount  Amount
	Variant int
	Option  int
	Metric  Metric
	Cores   int
}

// DefaultPreset matches the source's out-of-the-box configuration: moderate
// depth, scramble's own orientation only, single inspection, every
// available core.
func DefaultPreset() Preset {
	return Preset{Speed: Speed3, Orient: OrientSingle, Amount: AmountOne, Metric: HTM, Cores: 0}
}
