package solve

// Method names one of the nine supported solving pipelines. CEOR and
// YruRU name the same method under this project;
// LEOR and CEOR share most of their machinery and differ mainly in stage
// order (LEOR solves edge orientation before the CP-line, CEOR after).
type Method int

const (
	MethodCFOP Method = iota
	MethodRoux
	MethodPetrus
	MethodZZ
	MethodCEOR
	MethodMehta
	MethodNautilus
	MethodLEOR
	MethodLBL
)

func (m Method) String() string {
	switch m {
	case MethodCFOP:
		return "CFOP"
	case MethodRoux:
		return "Roux"
	case MethodPetrus:
		return "Petrus"
	case MethodZZ:
		return "ZZ"
	case MethodCEOR:
		return "CEOR"
	case MethodMehta:
		return "Mehta"
	case MethodNautilus:
		return "Nautilus"
	case MethodLEOR:
		return "LEOR"
	case MethodLBL:
		return "LBL"
	default:
		return "Unknown"
	}
}

// ParseMethod resolves a method's external name (as accepted by the CLI and
// HTTP façade) case-sensitively against its canonical spelling plus a few
// accepted aliases.
func ParseMethod(s string) (Method, bool) {
	switch s {
	case "CFOP", "cfop":
		return MethodCFOP, true
	case "Roux", "roux":
		return MethodRoux, true
	case "Petrus", "petrus":
		return MethodPetrus, true
	case "ZZ", "zz":
		return MethodZZ, true
	case "CEOR", "ceor", "YruRU", "yruru":
		return MethodCEOR, true
	case "Mehta", "mehta":
		return MethodMehta, true
	case "Nautilus", "nautilus":
		return MethodNautilus, true
	case "LEOR", "leor":
		return MethodLEOR, true
	case "LBL", "lbl", "beginner":
		return MethodLBL, true
	default:
		return 0, false
	}
}

// searchStage is a small constructor for a Stage backed by an IDA search
// over a single Sst to a preset-scaled depth.
func searchStage(name string, set Sst, baseDepth int, preset Preset, goal Predicate, ev Evaluator) Stage {
	depth := depthForSpeed(baseDepth, preset.Speed)
	return Stage{
		Name:  name,
		Kind:  StageSearch,
		Plan:  NewPlan(set, depth, goal),
		Cores: preset.Cores,
		Eval:  ev,
	}
}

func collectionStage(name string, coll Collection, policy LookupPolicy, ev Evaluator) Stage {
	return Stage{Name: name, Kind: StageCollection, Coll: coll, LookupMode: policy, Eval: ev}
}

// f2lPair names one of CFOP/LBL's four corner+edge pairs by its stage name.
type f2lPair struct {
	name string
	grp  Pgr
}

// cfopF2LStages builds the four F2L pair stages in the given order, each
// goal accumulating every pair solved so far plus the leading cross.
// Preset.Variant == 1 solves CFOP's pairs back-to-front (back-left,
// back-right, front-left, front-right) instead of the default
// front-to-back order — a stylistic choice some solvers prefer since it
// keeps the cross-facing side untouched the longest.
func cfopF2LStages(preset Preset) []Stage {
	pairs := []f2lPair{
		{"F2L_FL", CfopF2LFL}, {"F2L_FR", CfopF2LFR}, {"F2L_BL", CfopF2LBL}, {"F2L_BR", CfopF2LBR},
	}
	if preset.Variant == 1 {
		pairs = []f2lPair{
			{"F2L_BL", CfopF2LBL}, {"F2L_BR", CfopF2LBR}, {"F2L_FL", CfopF2LFL}, {"F2L_FR", CfopF2LFR},
		}
	}
	stages := make([]Stage, len(pairs))
	solvedSoFar := []Pgr{CfopCross}
	for i, p := range pairs {
		solvedSoFar = append(solvedSoFar, p.grp)
		goal := MustSolve(append([]Pgr{}, solvedSoFar...)...)
		if i == len(pairs)-1 {
			goal = MustSolve(CfopF2L)
		}
		stages[i] = searchStage(p.name, NoSliceNoRotation, 10, preset, goal, EvalCfopF2L)
	}
	return stages
}

// BuildPipeline constructs the named method's Pipeline at the given preset.
// Every stage's Plan, Sst, and Collection come from the tables already
// defined in pieces.go/sst.go/cases.go/evaluator.go — this function's only
// job is ordering them per method ( replacement for the
// source's per-method subclass hierarchy). Preset.Variant/Option select
// between a method's alternative stage orderings where methods.go defines
// one; every other method ignores them.
func BuildPipeline(m Method, preset Preset) Pipeline {
	spins := spinsForOrient(preset.Orient)
	switch m {
	case MethodCFOP:
		stages := append([]Stage{searchStage("CROSS", FullTurnstile, 8, preset, MustSolve(CfopCross), EvalCfopF2L)},
			cfopF2LStages(preset)...)
		stages = append(stages,
			collectionStage("OLL", OLLCollection, LookupFirst, EvalFinal),
			collectionStage("PLL", PLLCollection, LookupFirst, EvalFinal),
		)
		return Pipeline{Name: "CFOP", Cores: preset.Cores, Spins: spins, Amount: preset.Amount, Stages: stages}

	case MethodRoux:
		return Pipeline{Name: "Roux", Cores: preset.Cores, Spins: spins, Amount: preset.Amount, Stages: []Stage{
			searchStage("FB", FullTurnstile, 6, preset, MustSolve(RouxFB), EvalRouxFB),
			searchStage("SB", RouxSecondBlock, 9, preset, And(MustSolve(RouxFB), MustSolve(RouxSB)), EvalRouxFB),
			collectionStage("CMLL", CMLLCollection, LookupFirst, EvalFinal),
			searchStage("LSE", RouxLSE, 12, preset, MustSolve(AllPieces), EvalFinal),
		}}

	case MethodPetrus:
		return Pipeline{Name: "Petrus", Cores: preset.Cores, Spins: spins, Amount: preset.Amount, Stages: []Stage{
			searchStage("BLOCK_222", FullTurnstile, 6, preset,
				MustSolveAny(PetrusBlock, PetrusBlockDFR, PetrusBlockDBL, PetrusBlockDBR), EvalPetrusBlk),
			searchStage("BLOCK_223", PetrusExpandBlock, 7, preset,
				MustSolveAny(PetrusExpanded, PetrusExpandedDFR, PetrusExpandedDBL, PetrusExpandedDBR), EvalPetrusBlk),
			searchStage("EO", NoSliceNoRotation, 5, preset,
				And(MustSolveAny(PetrusExpanded, PetrusExpandedDFR, PetrusExpandedDBL, PetrusExpandedDBR), MustOrient(ZzAllEdges)), EvalZzEOX),
			searchStage("F2L", NoSliceNoRotation, 10, preset, MustSolve(CfopF2L), EvalCfopF2L),
			collectionStage("OLL", OLLCollection, LookupFirst, EvalFinal),
			collectionStage("PLL", PLLCollection, LookupFirst, EvalFinal),
		}}

	case MethodZZ:
		return Pipeline{Name: "ZZ", Cores: preset.Cores, Spins: spins, Amount: preset.Amount, Stages: []Stage{
			searchStage("EOLINE", WideEOCross, 6, preset, And(MustOrient(ZzAllEdges), MustSolve(ZzLine)), EvalZzEOX),
			searchStage("F2L", ZzF2L, 10, preset, MustSolve(CfopF2L), EvalCfopF2L),
			collectionStage("OLL", OLLCollection, LookupFirst, EvalFinal),
			collectionStage("PLL", PLLCollection, LookupFirst, EvalFinal),
		}}

	case MethodCEOR:
		stages := []Stage{}
		if preset.Option == 1 {
			// Option 1 skips the intermediate CP_LINE checkpoint and
			// searches straight for the combined CP-line-plus-EO goal,
			// trading a deeper single search for one fewer stage boundary.
			stages = append(stages,
				searchStage("CP_EOCP", FullTurnstile, 10, preset,
					And(MustSolve(CeorCPLine), MustOrient(ZzAllEdges)), EvalCeorCPLine))
		} else {
			stages = append(stages,
				searchStage("CP_LINE", FullTurnstile, 7, preset, MustSolve(CeorCPLine), EvalCeorCPLine),
				searchStage("EOCP", YruRUCPBuilt, 6, preset, And(MustSolve(CeorCPLine), MustOrient(ZzAllEdges)), EvalCeorCPLine),
			)
		}
		stages = append(stages,
			searchStage("F2L", NoRSlice, 9, preset, MustSolve(CfopF2L), EvalCfopF2L),
			collectionStage("OLL", OLLCollection, LookupFirst, EvalFinal),
			collectionStage("PLL", PLLCollection, LookupFirst, EvalFinal),
		)
		return Pipeline{Name: "CEOR", Cores: preset.Cores, Spins: spins, Amount: preset.Amount, Stages: stages}

	case MethodMehta:
		fb, threeQB, fbEval, threeQBEval := MehtaFB, Mehta3QB, EvalMehtaFB, EvalMehta3QB
		if preset.Variant == 1 {
			fb, threeQB = MehtaFBRight, Mehta3QBRight
		}
		return Pipeline{Name: "Mehta", Cores: preset.Cores, Spins: spins, Amount: preset.Amount, Stages: []Stage{
			searchStage("FB", FullTurnstile, 6, preset, MustSolve(fb), fbEval),
			searchStage("3QB", RouxSecondBlock, 7, preset, And(MustSolve(fb), MustSolve(threeQB)), threeQBEval),
			collectionStage("CDRLL", CMLLCollection, LookupFirst, EvalFinal),
			searchStage("L5EP", RouxLSE, 11, preset, MustSolve(AllPieces), EvalFinal),
		}}

	case MethodNautilus:
		sbEval := EvalNautilusSB
		if preset.Option == 1 {
			// Option 1 scores the second block with the square-bias
			// evaluator instead of the plain one, favoring a
			// square-shaped block over a strictly shorter one.
			sbEval = EvalNautilusSQ
		}
		return Pipeline{Name: "Nautilus", Cores: preset.Cores, Spins: spins, Amount: preset.Amount, Stages: []Stage{
			searchStage("FB", FullTurnstile, 6, preset, MustSolve(NautilusFB), EvalNautilusFB),
			searchStage("SB", RouxSecondBlock, 9, preset, And(MustSolve(NautilusFB), MustSolve(NautilusSB)), sbEval),
			collectionStage("CMLL", CMLLCollection, LookupFirst, EvalFinal),
			searchStage("LSE", RouxLSE, 12, preset, MustSolve(AllPieces), EvalFinal),
		}}

	case MethodLEOR:
		return Pipeline{Name: "LEOR", Cores: preset.Cores, Spins: spins, Amount: preset.Amount, Stages: []Stage{
			searchStage("EO", WideEOCross, 5, preset, MustOrient(ZzAllEdges), EvalZzEOX),
			searchStage("EOLINE", NoRSlice, 6, preset, And(MustOrient(ZzAllEdges), MustSolve(LeorLine)), EvalZzEOX),
			searchStage("F2L", NoRSlice, 9, preset, MustSolve(CfopF2L), EvalCfopF2L),
			collectionStage("OLL", OLLCollection, LookupFirst, EvalFinal),
			collectionStage("PLL", PLLCollection, LookupFirst, EvalFinal),
		}}

	default: // MethodLBL
		stages := append([]Stage{searchStage("CROSS", FullTurnstile, 8, preset, MustSolve(CfopCross), EvalCfopF2L)},
			cfopF2LStages(preset)...)
		stages = append(stages,
			searchStage("OLL_ORIENT", LastLayerAlg, 8, preset, And(MustSolve(CfopF2L), MustOrient(CfopLastLayer)), EvalFinal),
			searchStage("PLL_PERMUTE", LastLayerAlg, 8, preset, MustSolve(AllPieces), EvalFinal),
		)
		return Pipeline{Name: "LBL", Cores: preset.Cores, Spins: spins[:1], Amount: preset.Amount, Stages: stages}
	}
}
