package inspector

import (
	"strings"
	"testing"

	"justact/internal/audit"
	"justact/internal/policy"
	"justact/internal/wire"
)

func TestRenderDetailShowsSyntaxError(t *testing.T) {
	entry := Entry{
		Seq:    1,
		Action: wire.NewAction(wire.ActionID{Actor: "a", Tag: 'a'}, "a", nil, nil),
		Result: audit.Result{Err: &policy.SyntaxError{Kind: policy.ErrParse, Message: "bad", Author: "a"}},
	}
	out := renderDetail(entry)
	if !strings.Contains(out, "actor: a") {
		t.Fatalf("expected actor to appear in detail view, got %q", out)
	}
	if !strings.Contains(out, "SYNTAX ERROR") {
		t.Fatalf("expected the syntax error to appear in detail view, got %q", out)
	}
}

func TestNewModelListsEveryEntry(t *testing.T) {
	entries := []Entry{
		{Seq: 0, Action: wire.NewAction(wire.ActionID{Actor: "a", Tag: 'a'}, "a", nil, nil), Result: audit.Result{Permission: &audit.Permission{Stated: true, Based: true, Valid: true, Current: true}}},
		{Seq: 1, Action: wire.NewAction(wire.ActionID{Actor: "b", Tag: 'b'}, "b", nil, nil), Result: audit.Result{Permission: &audit.Permission{}}},
	}
	m := New(entries)
	if len(m.list.Items()) != 2 {
		t.Fatalf("expected 2 list items, got %d", len(m.list.Items()))
	}
}
