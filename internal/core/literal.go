// Package core implements the search procedures shared by every SAT
// variant: Davis-Putnam, DPLL, and DPLL with two-literal watching.
package core

import "fmt"

// Var is a propositional variable, numbered [1, NumVars] as the external
// formula contract requires.
type Var int32

// Lit is a literal encoded as 2*(v-1) for the positive polarity and
// 2*(v-1)+1 for the negative polarity. The encoding lets every solver
// variant index occurrence, watcher, and assignment tables directly by
// literal instead of hashing on the signed int the caller handed in.
type Lit int32

// mkLit encodes variable v with the given polarity (neg=true for -v).
func mkLit(v Var, neg bool) Lit {
	l := Lit(v-1) << 1
	if neg {
		l |= 1
	}
	return l
}

// litFromRaw decodes a signed, nonzero DIMACS-style literal into a Lit.
func litFromRaw(x int) Lit {
	if x > 0 {
		return mkLit(Var(x), false)
	}
	return mkLit(Var(-x), true)
}

// Var returns the variable underlying l.
func (l Lit) Var() Var { return Var(l>>1) + 1 }

// Negated reports whether l is the negative polarity of its variable.
func (l Lit) Negated() bool { return l&1 == 1 }

// Neg returns the complementary literal, -l.
func (l Lit) Neg() Lit { return l ^ 1 }

// Raw returns l in the signed-integer form of the external contract.
func (l Lit) Raw() int {
	v := int(l.Var())
	if l.Negated() {
		return -v
	}
	return v
}

func (l Lit) String() string {
	return fmt.Sprintf("%d", l.Raw())
}

// Value is the truth value assigned to a variable or literal.
type Value int8

const (
	Unassigned Value = iota
	True
	False
)

func (a Value) String() string {
	switch a {
	case True:
		return "true"
	case False:
		return "false"
	default:
		return "unassigned"
	}
}

// Inv flips True<->False; Unassigned maps to itself.
func (a Value) Inv() Value {
	switch a {
	case True:
		return False
	case False:
		return True
	default:
		return Unassigned
	}
}
