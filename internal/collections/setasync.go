package collections

import (
	"fmt"

	"justact/internal/wire"
)

// ErrIllegalStatement is returned when an agent tries to state an element
// it neither authored nor already held (spec 4.4's gossip discipline).
type ErrIllegalStatement struct {
	Agent   string
	ElemKey string
}

func (e *ErrIllegalStatement) Error() string {
	return fmt.Sprintf("agent %q illegally stated %s without being its author or already holding it", e.Agent, e.ElemKey)
}

// Keyed is the shape SetAsync needs from its elements: a comparable
// identity and the agent that owns/authored it (original_source/src/sets.rs
// calls this "Agented"). *wire.Message (keyed by MessageID, authored by
// AuthorID) and wire.Action (keyed by ActionID, actored by ActorID) both
// satisfy it via thin adapters below.
type Keyed[K comparable] interface {
	Key() K
	AgentID() string
}

// SetAsync is a generic asynchronous, per-agent-scoped set: every
// registered agent has its own view, and adding an element routes it into
// one or all views (original_source/src/sets.rs's SetAsync). Statements
// and Enactments are both instantiations of this mechanism.
type SetAsync[K comparable, E Keyed[K]] struct {
	views    map[string]map[K]E
	order    map[string][]K
	gossiped bool
}

// NewSetAsync returns an empty SetAsync with no registered agents. When
// gossiped is true, Add enforces the gossip discipline (Statements); when
// false, any agent may add any element (Enactments — spec 4.4: "no
// authorship restriction beyond the actor_id field is set by the caller").
func NewSetAsync[K comparable, E Keyed[K]](gossiped bool) *SetAsync[K, E] {
	return &SetAsync[K, E]{views: make(map[string]map[K]E), order: make(map[string][]K), gossiped: gossiped}
}

// Register creates a new, empty view for agentID. Returns true if the agent
// was already registered (a no-op in that case).
func (s *SetAsync[K, E]) Register(agentID string) bool {
	if _, ok := s.views[agentID]; ok {
		return true
	}
	s.views[agentID] = make(map[K]E)
	return false
}

// View returns the scoped view for agentID; it panics if agentID was never
// registered (matching the Rust source's unwrap-or-panic on misuse — this
// is a programmer error, not a runtime condition agents can trigger).
func (s *SetAsync[K, E]) View(agentID string) *SetAsyncView[K, E] {
	if _, ok := s.views[agentID]; !ok {
		panic(fmt.Sprintf("collections: no such registered agent %q", agentID))
	}
	return &SetAsyncView[K, E]{parent: s, id: agentID}
}

// SetAsyncView is one agent's scoped access to a SetAsync.
type SetAsyncView[K comparable, E Keyed[K]] struct {
	parent *SetAsync[K, E]
	id     string
}

// Get looks up an element by key in this agent's view.
func (v *SetAsyncView[K, E]) Get(key K) (E, bool) {
	e, ok := v.parent.views[v.id][key]
	return e, ok
}

// ContainsKey reports whether key is present in this agent's view.
func (v *SetAsyncView[K, E]) ContainsKey(key K) bool {
	_, ok := v.parent.views[v.id][key]
	return ok
}

// Iter returns every element in this agent's view, in the order it was
// added there.
func (v *SetAsyncView[K, E]) Iter() []E {
	keys := v.parent.order[v.id]
	out := make([]E, 0, len(keys))
	for _, k := range keys {
		out = append(out, v.parent.views[v.id][k])
	}
	return out
}

// Add routes elem into the view(s) selected by to. It enforces the gossip
// discipline: the caller (v.id) must either be elem's agent (author/actor),
// or already hold elem in its own view. Duplicate adds of the same key are
// idempotent (spec 4.4: "every inbox is append-only; duplicate adds...are
// idempotent").
func (v *SetAsyncView[K, E]) Add(to wire.Recipient, elem E) error {
	if v.parent.gossiped && elem.AgentID() != v.id {
		if !v.ContainsKey(elem.Key()) {
			return &ErrIllegalStatement{Agent: v.id, ElemKey: fmt.Sprint(elem.Key())}
		}
	}
	if one, ok := to.One(); ok {
		v.parent.insert(one, elem)
		return nil
	}
	for agentID := range v.parent.views {
		v.parent.insert(agentID, elem)
	}
	return nil
}

func (s *SetAsync[K, E]) insert(agentID string, elem E) {
	view, ok := s.views[agentID]
	if !ok {
		panic(fmt.Sprintf("collections: no such registered agent %q", agentID))
	}
	key := elem.Key()
	if _, present := view[key]; present {
		return
	}
	view[key] = elem
	s.order[agentID] = append(s.order[agentID], key)
}
