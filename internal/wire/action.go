package wire

// ActionID identifies an Action by its actor and a per-actor tag (spec 6.1:
// action ids serialize as [actor, tag]; scenario 8's ids such as ("a",'a')
// use a single character as the tag).
type ActionID struct {
	Actor string
	Tag   rune
}

// Action is an agent's enactment candidate: constructed from an actor,
// the agreement it claims as basis, and the set of messages justifying it
// (spec 4.3: "(id_tuple, actor_id, basis_agreement, justification_set)").
type Action struct {
	id            ActionID
	ActorID       string
	Basis         *Agreement
	Justification []*Message
}

// NewAction constructs an Action. actor must equal id.Actor (caller
// invariant, spec 4.3, not re-validated here).
func NewAction(id ActionID, actor string, basis *Agreement, justification []*Message) Action {
	return Action{id: id, ActorID: actor, Basis: basis, Justification: justification}
}

// ID returns the action's identifier.
func (a Action) ID() ActionID { return a.id }

// Payload returns every message an audit must extract policy from: the
// justification messages plus the basis agreement's message, if any (spec
// 4.3's decision: the plain union Justification ∪ {Basis.Message}, with no
// synthetic placeholder message when there is no basis).
func (a Action) Payload() []*Message {
	out := make([]*Message, 0, len(a.Justification)+1)
	out = append(out, a.Justification...)
	if a.Basis != nil && a.Basis.Message != nil {
		out = append(out, a.Basis.Message)
	}
	return out
}
