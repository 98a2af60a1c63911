// Package policy implements the positive-negative logic language used as the
// payload of JustAct messages: parsing, program composition, and the
// three-valued grounded denotation (truths, unknowns, effects).
//
// Ground atoms follow original_source/src/policy/slick.rs's GroundAtom: a
// constant is an interned symbol, a tuple is an ordered list of sub-atoms.
// Mangle's own ast package models a typed (name/string/number) constant
// space tuned for its stratified two-valued evaluator; it has no notion of
// "unknown", so it is not used to represent ground atoms here. See
// DESIGN.md for the full justification.
package policy

import (
	"fmt"
	"strings"
)

// Atom is a term in a rule: a constant, a tuple, a variable, or a wildcard.
type Atom interface {
	isAtom()
	String() string
}

// Constant is an interned symbol, e.g. foo or "a string".
type Constant string

func (Constant) isAtom()          {}
func (c Constant) String() string { return string(c) }

// Tuple is an ordered, fixed-arity collection of atoms.
type Tuple []Atom

func (Tuple) isAtom() {}
func (t Tuple) String() string {
	parts := make([]string, len(t))
	for i, a := range t {
		parts[i] = a.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// Variable is bound by a positive antecedent within a rule.
type Variable string

func (Variable) isAtom()          {}
func (v Variable) String() string { return string(v) }

// Wildcard matches anything and binds nothing. Only legal where no variable
// binding is needed (enforced at extraction time).
type Wildcard struct{}

func (Wildcard) isAtom()          {}
func (Wildcard) String() string   { return "_" }

// IsGround reports whether an atom contains no Variable or Wildcard.
func IsGround(a Atom) bool {
	switch v := a.(type) {
	case Constant:
		return true
	case Tuple:
		for _, e := range v {
			if !IsGround(e) {
				return false
			}
		}
		return true
	case Variable, Wildcard:
		return false
	default:
		return false
	}
}

// GroundAtom is an Atom known to contain no variables or wildcards. It is
// used as a map key, so it must be comparable; Tuple (a slice) is not
// comparable, so GroundAtom is represented as an interface value holding
// either a Constant or a groundTuple (an array-backed, comparable tuple
// built via NewGroundTuple).
type GroundAtom interface {
	Atom
	isGround()
}

func (Constant) isGround() {}

// groundTuple is a comparable representation of a ground Tuple, keyed by
// its canonical string form so it can be used as a map key alongside plain
// Constants.
type groundTuple struct {
	elems string // canonical joined representation, for map-key comparability
	orig  []GroundAtom
}

func (groundTuple) isAtom()  {}
func (groundTuple) isGround() {}
func (g groundTuple) String() string {
	parts := make([]string, len(g.orig))
	for i, e := range g.orig {
		parts[i] = e.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// Elems returns the tuple's ground elements in order.
func (g groundTuple) Elems() []GroundAtom { return g.orig }

// NewGroundTuple builds a comparable GroundAtom tuple from ground elements.
func NewGroundTuple(elems ...GroundAtom) GroundAtom {
	parts := make([]string, len(elems))
	for i, e := range elems {
		parts[i] = canonicalKey(e)
	}
	return groundTuple{elems: strings.Join(parts, "\x1f"), orig: elems}
}

func canonicalKey(a GroundAtom) string {
	switch v := a.(type) {
	case Constant:
		return "c:" + string(v)
	case groundTuple:
		return "t:(" + v.elems + ")"
	default:
		return fmt.Sprintf("?:%v", a)
	}
}

// GroundTuple type-asserts a to its tuple form, if it is one.
func GroundTuple(a GroundAtom) (elems []GroundAtom, ok bool) {
	if g, isTuple := a.(groundTuple); isTuple {
		return g.orig, true
	}
	return nil, false
}

// Ground converts any fully-ground Atom into a GroundAtom. Panics (in a
// controlled, caller-checked way via ok) if the atom is not ground.
func Ground(a Atom) (GroundAtom, bool) {
	switch v := a.(type) {
	case Constant:
		return v, true
	case Tuple:
		elems := make([]GroundAtom, len(v))
		for i, e := range v {
			g, ok := Ground(e)
			if !ok {
				return nil, false
			}
			elems[i] = g
		}
		return NewGroundTuple(elems...), true
	default:
		return nil, false
	}
}

// ErrorAtom is the sentinel truth injected when policy inference itself
// fails (spec 4.1 "Failure of inference").
var ErrorAtom GroundAtom = NewGroundTuple(Constant("error"), NewGroundTuple(Constant("inference"), Constant("failure")))

// IsErrorAtom reports whether a ground atom is the bare constant `error`, or
// a tuple whose first element is the constant `error` (spec 4.1 Validity).
func IsErrorAtom(a GroundAtom) bool {
	if c, ok := a.(Constant); ok {
		return string(c) == "error"
	}
	if elems, ok := GroundTuple(a); ok && len(elems) > 0 {
		if c, ok := elems[0].(Constant); ok {
			return string(c) == "error"
		}
	}
	return false
}
