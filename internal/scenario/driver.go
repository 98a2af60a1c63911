package scenario

import (
	"fmt"

	"justact/internal/runtime"
	"justact/internal/wire"
)

// resolver tracks messages and agreements stated/agreed earlier in the
// scenario so later steps can reference them by MsgRef instead of
// reconstructing them.
type resolver struct {
	messages   map[MsgRef]*wire.Message
	agreements map[MsgRef]*wire.Agreement
}

func newResolver() *resolver {
	return &resolver{
		messages:   make(map[MsgRef]*wire.Message),
		agreements: make(map[MsgRef]*wire.Agreement),
	}
}

func (r *resolver) message(ref MsgRef) (*wire.Message, error) {
	m, ok := r.messages[ref]
	if !ok {
		return nil, fmt.Errorf("scenario: no message stated at %s/%d", ref.Author, ref.Seq)
	}
	return m, nil
}

func (r *resolver) agreement(ref MsgRef) (*wire.Agreement, error) {
	a, ok := r.agreements[ref]
	if !ok {
		return nil, fmt.Errorf("scenario: no agreement recorded for %s/%d", ref.Author, ref.Seq)
	}
	return a, nil
}

func recipientFor(to string) wire.Recipient {
	if to == "" || to == "All" {
		return wire.RecipientAll()
	}
	return wire.RecipientOne(to)
}

func (r *resolver) buildAction(actorID string, step Step) (wire.Action, error) {
	tagRunes := []rune(step.Tag)
	if len(tagRunes) != 1 {
		return wire.Action{}, fmt.Errorf("scenario: action tag must be exactly one character, got %q", step.Tag)
	}

	var basis *wire.Agreement
	if step.Basis != nil {
		a, err := r.agreement(*step.Basis)
		if err != nil {
			return wire.Action{}, err
		}
		basis = a
	}

	justification := make([]*wire.Message, 0, len(step.Justification))
	for _, ref := range step.Justification {
		m, err := r.message(ref)
		if err != nil {
			return wire.Action{}, err
		}
		justification = append(justification, m)
	}

	id := wire.ActionID{Actor: actorID, Tag: tagRunes[0]}
	return wire.NewAction(id, actorID, basis, justification), nil
}

func (r *resolver) applyAgentStep(view runtime.AgentView, step Step) error {
	switch step.Kind {
	case "state":
		msg := wire.NewMessage(wire.MessageID{Author: step.Author, Seq: step.Seq}, step.Author, step.Payload)
		if err := view.Statements.Add(recipientFor(step.To), msg); err != nil {
			return err
		}
		r.messages[MsgRef{Author: step.Author, Seq: step.Seq}] = msg
		return nil

	case "enact":
		action, err := r.buildAction(view.ID, step)
		if err != nil {
			return err
		}
		return view.Enactments.Add(recipientFor(step.To), action)

	default:
		return fmt.Errorf("scenario: step kind %q is not valid for an agent", step.Kind)
	}
}

func (r *resolver) applySyncStep(view runtime.SynchronizerView, step Step) error {
	switch step.Kind {
	case "advance_time":
		return view.WriteTimes.AddCurrent(step.Timestamp)

	case "agree":
		ref := MsgRef{Author: step.Author, Seq: step.Seq}
		msg, err := r.message(ref)
		if err != nil {
			return err
		}
		agr := wire.NewAgreement(msg, step.At)
		if _, _, err := view.WriteAgreements.Add(agr); err != nil {
			return err
		}
		r.agreements[ref] = agr
		return nil

	default:
		return fmt.Errorf("scenario: step kind %q is not valid for the synchronizer", step.Kind)
	}
}

// scriptedAgent replays one participant's steps in order, one per poll.
type scriptedAgent struct {
	id       string
	steps    []Step
	idx      int
	resolver *resolver
}

func (a *scriptedAgent) ID() string { return a.id }

func (a *scriptedAgent) Poll(view runtime.AgentView) (runtime.PollResult, error) {
	if a.idx >= len(a.steps) {
		return runtime.Ready, nil
	}
	step := a.steps[a.idx]
	a.idx++
	if err := a.resolver.applyAgentStep(view, step); err != nil {
		return runtime.Pending, err
	}
	if a.idx >= len(a.steps) {
		return runtime.Ready, nil
	}
	return runtime.Pending, nil
}

// scriptedSynchronizer executes its entire step list on its first poll, so
// that every Add/AddCurrent it performs is visible to agents from the next
// round onward (spec 4.7's synchronizer-polled-last ordering).
type scriptedSynchronizer struct {
	id       string
	steps    []Step
	resolver *resolver
	done     bool
}

func (s *scriptedSynchronizer) ID() string { return s.id }

func (s *scriptedSynchronizer) Poll(view runtime.SynchronizerView) (runtime.PollResult, error) {
	if s.done {
		return runtime.Ready, nil
	}
	for _, step := range s.steps {
		if err := s.resolver.applySyncStep(view, step); err != nil {
			return runtime.Pending, err
		}
	}
	s.done = true
	return runtime.Ready, nil
}
