package collections

import (
	"testing"

	"justact/internal/wire"
)

func TestAgreementsAddOverwritesAndReturnsPrevious(t *testing.T) {
	a := NewAgreements()
	msg1 := newTestMessage("c", 1, "p.")
	msg1b := newTestMessage("c", 1, "p2.")

	agr1 := wire.NewAgreement(msg1, 1)
	prev, had := a.Add(agr1)
	if had || prev != nil {
		t.Fatalf("expected no previous agreement on first add")
	}

	agr2 := wire.NewAgreement(msg1b, 2)
	prev, had = a.Add(agr2)
	if !had || prev != agr1 {
		t.Fatalf("expected Add to return the replaced agreement")
	}

	got, ok := a.Get(msg1.ID())
	if !ok || got != agr2 {
		t.Fatalf("expected Get to return the latest agreement")
	}
}
