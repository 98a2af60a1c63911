package policy

import "strings"

// CheckOp is an equality/inequality check in a rule body.
type CheckOp int

const (
	CheckEqual CheckOp = iota
	CheckNotEqual
)

// Check is an equality/inequality antecedent, e.g. `X == Y` or `X != foo`.
type Check struct {
	Op    CheckOp
	Left  Atom
	Right Atom
}

func (c Check) String() string {
	op := "=="
	if c.Op == CheckNotEqual {
		op = "!="
	}
	return c.Left.String() + " " + op + " " + c.Right.String()
}

// Rule is a non-empty list of consequents (the head, a disjunction-free set
// of atoms all derived together) and a body of positive antecedents,
// negative antecedents, and checks. A bare fact is a rule with an empty
// body. Author records who contributed the rule, used by the extractor to
// inject reflection consequents and by the audit to render provenance.
type Rule struct {
	Consequents []Atom
	Positive    []Atom
	Negative    []Atom
	Checks      []Check
	Author      string
}

// IsFact reports whether the rule has an empty body.
func (r Rule) IsFact() bool {
	return len(r.Positive) == 0 && len(r.Negative) == 0 && len(r.Checks) == 0
}

func (r Rule) String() string {
	heads := make([]string, len(r.Consequents))
	for i, c := range r.Consequents {
		heads[i] = c.String()
	}
	head := strings.Join(heads, ", ")
	if r.IsFact() {
		return head + "."
	}
	var body []string
	for _, p := range r.Positive {
		body = append(body, p.String())
	}
	for _, n := range r.Negative {
		body = append(body, "!"+n.String())
	}
	for _, c := range r.Checks {
		body = append(body, c.String())
	}
	return head + " :- " + strings.Join(body, ", ") + "."
}

// Program is an ordered list of rules. Programs compose by concatenation;
// composition is commutative with respect to denotation (spec 4.1).
type Program struct {
	Rules []Rule
}

// Compose appends other's rules after this program's, returning a new
// Program (the receiver is not mutated).
func (p Program) Compose(other Program) Program {
	out := make([]Rule, 0, len(p.Rules)+len(other.Rules))
	out = append(out, p.Rules...)
	out = append(out, other.Rules...)
	return Program{Rules: out}
}

// boundVariables collects every Variable appearing in a positive antecedent
// atom, recursively through tuples.
func boundVariables(atoms []Atom) map[Variable]bool {
	bound := make(map[Variable]bool)
	var walk func(Atom)
	walk = func(a Atom) {
		switch v := a.(type) {
		case Variable:
			bound[v] = true
		case Tuple:
			for _, e := range v {
				walk(e)
			}
		}
	}
	for _, a := range atoms {
		walk(a)
	}
	return bound
}

// variablesIn collects every Variable referenced anywhere in atoms.
func variablesIn(atoms []Atom) map[Variable]bool {
	return boundVariables(atoms) // identical walk; named separately for call-site clarity
}

// hasWildcard reports whether a contains a Wildcard anywhere.
func hasWildcard(a Atom) bool {
	switch v := a.(type) {
	case Wildcard:
		return true
	case Tuple:
		for _, e := range v {
			if hasWildcard(e) {
				return true
			}
		}
	}
	return false
}

// checkWellFormed validates a single rule per spec 4.1's well-formedness
// rules: no misplaced wildcard, every consequent/negative/check variable
// bound by a positive antecedent.
func checkWellFormed(r Rule) *SyntaxError {
	// Wildcards are only permitted inside positive antecedents (where no
	// binding is needed for that position); anywhere else is misplaced.
	for _, c := range r.Consequents {
		if hasWildcard(c) {
			return &SyntaxError{Kind: ErrMisplacedWildcard, RuleText: r.String(), Author: r.Author}
		}
	}
	for _, n := range r.Negative {
		if hasWildcard(n) {
			return &SyntaxError{Kind: ErrMisplacedWildcard, RuleText: r.String(), Author: r.Author}
		}
	}
	for _, chk := range r.Checks {
		if hasWildcard(chk.Left) || hasWildcard(chk.Right) {
			return &SyntaxError{Kind: ErrMisplacedWildcard, RuleText: r.String(), Author: r.Author}
		}
	}

	bound := boundVariables(r.Positive)
	need := variablesIn(r.Consequents)
	for _, n := range r.Negative {
		for v := range variablesIn([]Atom{n}) {
			need[v] = true
		}
	}
	for _, chk := range r.Checks {
		for v := range variablesIn([]Atom{chk.Left, chk.Right}) {
			need[v] = true
		}
	}
	for v := range need {
		if !bound[v] {
			return &SyntaxError{Kind: ErrUnboundVariable, RuleText: r.String(), Author: r.Author, Variable: string(v)}
		}
	}
	return nil
}
