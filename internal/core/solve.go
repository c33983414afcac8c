package core

import "fmt"

// Variant names one of the five search procedures spec.md section 4.7
// dispatches between.
type Variant string

const (
	DPDefault     Variant = "dp_default"
	DP            Variant = "dp"
	ClassicalDPLL Variant = "classical_dpll"
	DPLL          Variant = "dpll"
	DPLLWatchers  Variant = "dpll_watchers"
)

// Solve is the solver façade: single entry point dispatching to the
// chosen variant. An unknown variant is a programming error at the
// façade boundary (spec.md section 6/7), not a runtime condition to
// recover from, so it panics rather than returning an error.
func Solve(in InputFormula, variant Variant) (Result, Stats) {
	switch variant {
	case DPDefault:
		res, stats := SolveDP(in, false, SimplifyOptions{})
		stats.Variant = string(variant)
		return res, stats
	case DP:
		res, stats := SolveDP(in, true, SimplifyOptions{})
		stats.Variant = string(variant)
		return res, stats
	case ClassicalDPLL:
		// Per DESIGN.md's Open Question 1, classical_dpll skips
		// pure-literal elimination.
		res, stats := SolveDPLL(in, false, false)
		stats.Variant = string(variant)
		return res, stats
	case DPLL:
		res, stats := SolveDPLL(in, true, true)
		stats.Variant = string(variant)
		return res, stats
	case DPLLWatchers:
		res, stats := SolveWatchers(in)
		stats.Variant = string(variant)
		return res, stats
	default:
		panic(fmt.Sprintf("core: unknown solver variant %q", variant))
	}
}

// Variants lists the five supported variant names, in the order
// spec.md section 4.7 introduces them.
func Variants() []Variant {
	return []Variant{DPDefault, DP, ClassicalDPLL, DPLL, DPLLWatchers}
}
