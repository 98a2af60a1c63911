package scenario

import (
	"fmt"

	"justact/internal/audit"
	"justact/internal/runtime"
	"justact/internal/trace"
)

// Trace is the result of running a Scenario: every event emitted, in order,
// plus the Audit that observed them. An event's index in Events equals the
// seq Audit.PermissionOf expects, since both advance together off the same
// Handle call.
type Trace struct {
	Events []trace.Event
	Audit  *audit.Audit
}

// ResultAt returns the audit Result computed for the EnactActionEvent at
// index seq, if Events[seq] is one.
func (t *Trace) ResultAt(seq int) (audit.Result, bool) {
	return t.Audit.PermissionOf(seq)
}

// recorder fans every event out to an Audit and to an in-order log, so a
// caller can recover both "what was the verdict" and "what happened".
type recorder struct {
	audit  *audit.Audit
	events []trace.Event
}

func (r *recorder) Handle(event trace.Event) error {
	r.events = append(r.events, event)
	r.audit.Observe(event)
	return nil
}

// Run registers a fresh trace handler and drives sc to completion, returning
// the resulting System (for data-plane inspection) and Trace. Since
// trace.RegisterHandler is one-shot, a second Run in the same process fails
// unless trace.Reset (trace.ResetForTest in tests) is called between runs,
// as cmd/justact run --watch does.
func Run(sc *Scenario) (*runtime.System, *Trace, error) {
	rec := &recorder{audit: audit.NewAudit()}
	if err := trace.RegisterHandler(rec); err != nil {
		return nil, nil, fmt.Errorf("scenario: %w", err)
	}

	res := newResolver()

	agentSteps := make(map[string][]Step, len(sc.Agents))
	var syncSteps []Step
	for _, step := range sc.Steps {
		if step.Who == sc.Synchronizer {
			syncSteps = append(syncSteps, step)
		} else {
			agentSteps[step.Who] = append(agentSteps[step.Who], step)
		}
	}

	agents := make([]runtime.Agent, 0, len(sc.Agents))
	for _, id := range sc.Agents {
		agents = append(agents, &scriptedAgent{id: id, steps: agentSteps[id], resolver: res})
	}
	sync := &scriptedSynchronizer{id: sc.Synchronizer, steps: syncSteps, resolver: res}

	system := runtime.NewSystem()
	runErr := system.Run(agents, sync)

	t := &Trace{Events: rec.events, Audit: rec.audit}
	if runErr != nil {
		return system, t, runErr
	}
	return system, t, nil
}
