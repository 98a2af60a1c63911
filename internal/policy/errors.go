package policy

import "fmt"

// SyntaxError is the extractor's error taxonomy (spec 4.2, 7). It is a
// sentinel-style error value, distinguished with errors.As.
type SyntaxError struct {
	Kind    SyntaxErrorKind
	Message string
	// Rule, Author, and Variable add context for the inspector (spec 7:
	// "all errors carry enough context... to be actionable").
	Author   string
	RuleText string
	Variable string
}

// SyntaxErrorKind enumerates the ways extraction can fail.
type SyntaxErrorKind int

const (
	// ErrParse indicates the policy text did not parse.
	ErrParse SyntaxErrorKind = iota
	// ErrMisplacedWildcard indicates a wildcard appeared where a variable
	// binding was required.
	ErrMisplacedWildcard
	// ErrUnboundVariable indicates a consequent, negative antecedent, or
	// check referenced a variable no positive antecedent binds.
	ErrUnboundVariable
	// ErrInference names a failure of the denotation engine itself. Neither
	// extraction nor denotation returns it: Denote and DenoteSafe degrade an
	// inference failure to the single ErrorAtom truth instead.
	ErrInference
)

func (e *SyntaxError) Error() string {
	switch e.Kind {
	case ErrParse:
		return fmt.Sprintf("policy parse error (author %s): %s", e.Author, e.Message)
	case ErrMisplacedWildcard:
		return fmt.Sprintf("misplaced wildcard in rule %q (author %s)", e.RuleText, e.Author)
	case ErrUnboundVariable:
		return fmt.Sprintf("unbound variable %q in rule %q (author %s)", e.Variable, e.RuleText, e.Author)
	case ErrInference:
		return fmt.Sprintf("policy inference failure: %s", e.Message)
	default:
		return e.Message
	}
}
