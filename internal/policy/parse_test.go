package policy

import "testing"

func TestParseRoundTrip(t *testing.T) {
	src := `p.
q(a, b) :- p, r(X), !s(X), X == a.
`
	prog, serr := Parse(src, "c")
	if serr != nil {
		t.Fatalf("parse: %v", serr)
	}
	if len(prog.Rules) != 2 {
		t.Fatalf("expected 2 rules, got %d", len(prog.Rules))
	}

	serialized := Serialize(prog)
	prog2, serr := Parse(serialized, "c")
	if serr != nil {
		t.Fatalf("re-parse of serialized program: %v\n%s", serr, serialized)
	}
	if len(prog2.Rules) != len(prog.Rules) {
		t.Fatalf("round-trip changed rule count: %d vs %d", len(prog.Rules), len(prog2.Rules))
	}
}

func TestParseMisplacedWildcard(t *testing.T) {
	cases := []string{
		`_.`,
		`p :- !_.`,
		`p :- q, _ == a.`,
	}
	for _, src := range cases {
		_, serr := Parse(src, "c")
		if serr == nil || serr.Kind != ErrMisplacedWildcard {
			t.Errorf("Parse(%q) = %v, want ErrMisplacedWildcard", src, serr)
		}
	}
}

func TestParseWildcardAllowedInPositiveAntecedent(t *testing.T) {
	src := `p(X) :- q(X, _).`
	_, serr := Parse(src, "c")
	if serr != nil {
		t.Fatalf("unexpected error: %v", serr)
	}
}

func TestParseUnboundVariable(t *testing.T) {
	src := `p(X) :- q.`
	_, serr := Parse(src, "c")
	if serr == nil || serr.Kind != ErrUnboundVariable {
		t.Fatalf("expected ErrUnboundVariable, got %v", serr)
	}
}

func TestParseTaggedTuple(t *testing.T) {
	src := `effect(foo(a, b), by, worker).`
	prog, serr := Parse(src, "c")
	if serr != nil {
		t.Fatalf("parse: %v", serr)
	}
	tup, ok := prog.Rules[0].Consequents[0].(Tuple)
	if !ok || len(tup) != 4 {
		t.Fatalf("expected 4-element tuple, got %#v", prog.Rules[0].Consequents[0])
	}
	if tup[0] != Constant("effect") {
		t.Fatalf("expected leading constant 'effect', got %#v", tup[0])
	}
}

func TestParseComment(t *testing.T) {
	src := "p. % this is a comment\nq.\n"
	prog, serr := Parse(src, "c")
	if serr != nil {
		t.Fatalf("parse: %v", serr)
	}
	if len(prog.Rules) != 2 {
		t.Fatalf("expected 2 rules, got %d", len(prog.Rules))
	}
}
