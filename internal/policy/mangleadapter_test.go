package policy

import "testing"

func TestParseQueryAtomConstant(t *testing.T) {
	a, err := ParseQueryAtom("permitted")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if a.String() != "permitted" {
		t.Fatalf("got %v, want permitted", a)
	}
}

func TestParseQueryAtomTuple(t *testing.T) {
	got, err := ParseQueryAtom(`permitted("a")`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := NewGroundTuple(Constant("permitted"), Constant("a"))
	if got.String() != want.String() {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestParseQueryAtomRejectsVariables(t *testing.T) {
	if _, err := ParseQueryAtom("permitted(X)"); err == nil {
		t.Fatal("expected an error for a non-ground query")
	}
}

func TestParseQueryAtomRejectsSyntaxError(t *testing.T) {
	if _, err := ParseQueryAtom("permitted(("); err == nil {
		t.Fatal("expected a syntax error")
	}
}
