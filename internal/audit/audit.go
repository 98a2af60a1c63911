package audit

import (
	"sort"

	"justact/internal/policy"
	"justact/internal/trace"
	"justact/internal/wire"
)

// Result is what an enactment's audit produces: either a Permission, or a
// SyntaxError if its justification failed to extract (spec 4.8: "Denotation
// extraction failure is recorded as Err(SyntaxError) in place of the
// Permission; callers treat it as not-permitted").
type Result struct {
	Permission *Permission
	Err        *policy.SyntaxError
}

// IsPermitted reports the effective verdict: false whenever extraction
// failed, otherwise Permission.IsPermitted().
func (r Result) IsPermitted() bool {
	return r.Err == nil && r.Permission != nil && r.Permission.IsPermitted()
}

// Audit replays a linear event stream, maintaining the running `stated`
// set and `current` timestamp, and computing a Result for every
// EnactActionEvent it observes (spec 4.8).
type Audit struct {
	seq       int
	stated    map[wire.MessageID]struct{}
	current   *wire.Timestamp
	results   map[int]Result
	extractor policy.Extractor
}

// NewAudit returns an Audit that has seen nothing yet.
func NewAudit() *Audit {
	return &Audit{stated: make(map[wire.MessageID]struct{}), results: make(map[int]Result)}
}

// Observe processes one event, advancing the audit's internal state.
func (a *Audit) Observe(event trace.Event) {
	defer func() { a.seq++ }()

	switch e := event.(type) {
	case trace.AdvanceTimeEvent:
		ts := e.Timestamp
		a.current = &ts

	case trace.StateMessageEvent:
		a.stated[e.Msg.ID()] = struct{}{}

	case trace.AddAgreementEvent:
		// No effect on audit state (spec 4.8).

	case trace.EnactActionEvent:
		a.results[a.seq] = a.auditAction(e.Action)

	default:
		// Data events (Read/Write) have no bearing on the audit (spec 4.8).
	}
}

// Handle implements trace.Handler, letting an Audit be registered directly
// as the process-wide trace handler.
func (a *Audit) Handle(event trace.Event) error {
	a.Observe(event)
	return nil
}

// PermissionOf returns the Result computed for the EnactAction event at the
// given sequence index, if any.
func (a *Audit) PermissionOf(seq int) (Result, bool) {
	r, ok := a.results[seq]
	return r, ok
}

func (a *Audit) auditAction(action wire.Action) Result {
	messages := make([]policy.Message, 0, len(action.Justification))
	for _, m := range action.Justification {
		messages = append(messages, m)
	}

	pol, serr := a.extractor.ExtractWithActor(action.ActorID, messages)
	if serr != nil {
		return Result{Err: serr}
	}
	pol.UpdateEffectPattern(policy.AuditPattern())
	denot := pol.Truths()

	perm := &Permission{}

	perm.Stated = true
	for _, m := range action.Justification {
		if _, ok := a.stated[m.ID()]; !ok {
			perm.Stated = false
			break
		}
	}

	perm.Based = false
	if action.Basis != nil {
		basisID := action.Basis.ID()
		for _, m := range action.Justification {
			if m.ID() == basisID {
				perm.Based = true
				break
			}
		}
	}

	perm.Valid = denot.IsValid()

	perm.Current = action.Basis != nil && a.current != nil && action.Basis.At == *a.current

	perm.Truths = sortedTruths(denot.IterTruths())
	perm.Effects = sortedEffects(denot.IterEffects())

	return Result{Permission: perm}
}

// errorTier orders a truth for spec 4.8's display ordering: the bare error
// constant first, then error-tagged tuples, then everything else. Ranking
// both kinds of error atom as a single IsErrorAtom tier would let the
// tuple's leading "(" (0x28) sort before the constant's "e" (0x65) in the
// lexicographic fallback, inverting this.
func errorTier(a policy.GroundAtom) int {
	if c, ok := a.(policy.Constant); ok && string(c) == "error" {
		return 0
	}
	if policy.IsErrorAtom(a) {
		return 1
	}
	return 2
}

func sortedTruths(truths []policy.GroundAtom) []policy.GroundAtom {
	sort.SliceStable(truths, func(i, j int) bool {
		ti, tj := errorTier(truths[i]), errorTier(truths[j])
		if ti != tj {
			return ti < tj
		}
		return truths[i].String() < truths[j].String()
	})
	return truths
}

func sortedEffects(effects []policy.Effect) []policy.Effect {
	sort.SliceStable(effects, func(i, j int) bool {
		return effects[i].String() < effects[j].String()
	})
	return effects
}
