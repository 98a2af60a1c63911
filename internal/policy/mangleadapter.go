package policy

import (
	"fmt"
	"strings"

	"github.com/google/mangle/ast"
	"github.com/google/mangle/parse"
)

// ParseQueryAtom lets an operator hand cmd/justact audit a one-off ground
// query in mangle's own concrete atom syntax (e.g. `permitted("a")`)
// instead of learning this package's rule grammar just to ask "is this
// true". Mangle's parser is used purely as a convenient second syntax
// frontend for ground queries; the result is converted into this package's
// own GroundAtom representation (atom.go documents why mangle's typed ast
// isn't used to hold ground atoms themselves — it has no notion of
// "unknown", which spec 4.1's three-valued denotation needs).
func ParseQueryAtom(query string) (GroundAtom, error) {
	clean := strings.TrimSpace(query)
	clean = strings.TrimPrefix(clean, "?")
	clean = strings.TrimSpace(clean)
	clean = strings.TrimSuffix(clean, ".")

	a, err := parse.Atom(clean)
	if err != nil {
		// A lone predicate name without parens (e.g. "permitted") only
		// parses with a trailing period in some mangle grammar versions.
		a, err = parse.Atom(clean + ".")
		if err != nil {
			return nil, fmt.Errorf("query syntax: %w", err)
		}
	}
	return fromMangleAtom(a)
}

func fromMangleAtom(a ast.Atom) (GroundAtom, error) {
	elems := make([]GroundAtom, 0, len(a.Args)+1)
	elems = append(elems, Constant(a.Predicate.Symbol))
	for i, term := range a.Args {
		g, err := fromMangleTerm(term)
		if err != nil {
			return nil, fmt.Errorf("query argument %d: %w", i, err)
		}
		elems = append(elems, g)
	}
	if len(elems) == 1 {
		return elems[0], nil
	}
	return NewGroundTuple(elems...), nil
}

func fromMangleTerm(t ast.BaseTerm) (GroundAtom, error) {
	switch v := t.(type) {
	case ast.Constant:
		return Constant(v.Symbol), nil
	default:
		return nil, fmt.Errorf("query must be fully ground, got %v", t)
	}
}
