package dataplane

import (
	"testing"

	"justact/internal/wire"
)

type recordingSink struct {
	reads   []string
	writes  []string
	writers []string
}

func (s *recordingSink) Read(who string, id ID, context wire.ActionID, contents []byte, found bool) error {
	s.reads = append(s.reads, id.Field)
	return nil
}

func (s *recordingSink) Write(who string, id ID, context wire.ActionID, isNew bool, contents []byte) error {
	s.writes = append(s.writes, id.Field)
	s.writers = append(s.writers, who)
	return nil
}

func TestReadNonexistentEmitsEvent(t *testing.T) {
	sink := &recordingSink{}
	store := New(sink)
	id := ID{Author: "a", Container: "c", Field: "x"}

	contents, err := store.Read("agent", id, wire.ActionID{Actor: "a", Tag: 'a'})
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if contents != nil {
		t.Fatalf("expected nil contents for nonexistent variable")
	}
	if len(sink.reads) != 1 {
		t.Fatalf("expected a Read event even for a nonexistent variable, got %d", len(sink.reads))
	}
}

func TestWriteNewFlag(t *testing.T) {
	store := New(nil)
	id := ID{Author: "a", Container: "c", Field: "x"}
	ctx := wire.ActionID{Actor: "a", Tag: 'a'}

	if err := store.Write("agent", id, ctx, []byte("v1")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if !store.Exists(id) {
		t.Fatalf("expected variable to exist after write")
	}
	got, err := store.Read("agent", id, ctx)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(got) != "v1" {
		t.Fatalf("expected v1, got %q", got)
	}

	if err := store.Write("agent", id, ctx, []byte("v2")); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, _ = store.Read("agent", id, ctx)
	if string(got) != "v2" {
		t.Fatalf("expected overwrite to replace contents, got %q", got)
	}
}

func TestScopedAttributesAgent(t *testing.T) {
	sink := &recordingSink{}
	store := New(sink)
	scoped := store.Scope("agent-1")
	id := ID{Author: "a", Container: "c", Field: "x"}
	if err := scoped.Write(id, wire.ActionID{Actor: "a", Tag: 'a'}, []byte("v")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if !scoped.Exists(id) {
		t.Fatalf("expected scoped.Exists to see the written variable")
	}
	if len(sink.writers) != 1 || sink.writers[0] != "agent-1" {
		t.Fatalf("expected the write to be attributed to agent-1, got %v", sink.writers)
	}
}
