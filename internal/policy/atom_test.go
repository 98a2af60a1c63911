package policy

import "testing"

func TestGroundTupleEquality(t *testing.T) {
	a := NewGroundTuple(Constant("p"), Constant("q"))
	b := NewGroundTuple(Constant("p"), Constant("q"))
	if canonicalKey(a) != canonicalKey(b) {
		t.Fatalf("expected equal canonical keys, got %q vs %q", canonicalKey(a), canonicalKey(b))
	}
}

func TestIsErrorAtom(t *testing.T) {
	if !IsErrorAtom(Constant("error")) {
		t.Fatalf("expected bare 'error' constant to be an error atom")
	}
	tup := NewGroundTuple(Constant("error"), Constant("inference"))
	if !IsErrorAtom(tup) {
		t.Fatalf("expected tuple starting with 'error' to be an error atom")
	}
	if IsErrorAtom(Constant("ok")) {
		t.Fatalf("did not expect 'ok' to be an error atom")
	}
}

func TestGroundRejectsUnboundVariable(t *testing.T) {
	_, ok := Ground(Variable("X"))
	if ok {
		t.Fatalf("expected Ground to fail on an unbound variable")
	}
}
