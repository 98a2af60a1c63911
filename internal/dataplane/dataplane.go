// Package dataplane implements the in-memory keyed data store agents use to
// exchange effects: ((author_id, container_id), field_id) -> bytes (spec
// 4.6), grounded in original_source/src/dataplane.rs's StoreHandle.
package dataplane

import (
	"encoding/json"

	"justact/internal/wire"
)

// ID identifies a stored variable: the (author, container) pair that owns
// it plus its field name.
type ID struct {
	Author    string
	Container string
	Field     string
}

// MarshalJSON renders an ID as ((author, container), field), i.e.
// [[author, container], field] (spec 6.1).
func (id ID) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{[2]string{id.Author, id.Container}, id.Field})
}

// Store is the shared in-memory data plane. All mutation is serialized by
// the single-threaded runtime (spec 5); Store itself does no locking.
type Store struct {
	values map[ID][]byte
	events EventSink
}

// EventSink receives Read/Write events as they happen. The tracing wrapper
// (internal/trace) implements this; a nil sink means "no event recorded",
// used in tests that don't care about tracing.
type EventSink interface {
	Read(who string, id ID, context wire.ActionID, contents []byte, found bool) error
	Write(who string, id ID, context wire.ActionID, isNew bool, contents []byte) error
}

// New returns an empty Store. sink may be nil.
func New(sink EventSink) *Store {
	return &Store{values: make(map[ID][]byte), events: sink}
}

// Exists reports whether id currently has a value.
func (s *Store) Exists(id ID) bool {
	_, ok := s.values[id]
	return ok
}

// Read fetches the full snapshot of id's value, emitting a Read event
// whether or not the variable exists (spec 4.6: "so auditors can see the
// attempt").
func (s *Store) Read(who string, id ID, context wire.ActionID) ([]byte, error) {
	contents, found := s.values[id]
	if s.events != nil {
		if err := s.events.Read(who, id, context, contents, found); err != nil {
			return contents, err
		}
	}
	if !found {
		return nil, nil
	}
	return contents, nil
}

// Write replaces any prior value of id with contents, emitting a Write
// event with new=true iff no prior value existed. Per dataplane.rs, the
// event is logged before the mutation is applied.
func (s *Store) Write(who string, id ID, context wire.ActionID, contents []byte) error {
	_, existed := s.values[id]
	if s.events != nil {
		if err := s.events.Write(who, id, context, !existed, contents); err != nil {
			return err
		}
	}
	s.values[id] = contents
	return nil
}

// Scope returns a handle that records agent for attribution on every
// subsequent Read/Write call, mirroring dataplane.rs's ScopedStoreHandle.
func (s *Store) Scope(agent string) *Scoped {
	return &Scoped{store: s, agent: agent}
}

// Scoped is an agent-attributed view onto a Store.
type Scoped struct {
	store *Store
	agent string
}

// Exists delegates to the parent store.
func (v *Scoped) Exists(id ID) bool { return v.store.Exists(id) }

// Read delegates to the parent store, attributing the call to v's agent.
func (v *Scoped) Read(id ID, context wire.ActionID) ([]byte, error) {
	return v.store.Read(v.agent, id, context)
}

// Write delegates to the parent store, attributing the call to v's agent.
func (v *Scoped) Write(id ID, context wire.ActionID, contents []byte) error {
	return v.store.Write(v.agent, id, context, contents)
}
