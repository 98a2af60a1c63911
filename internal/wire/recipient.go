package wire

import (
	"encoding/json"
	"fmt"
)

// Recipient selects the target(s) of a state/enact operation: every agent,
// or exactly one (spec 4.4, 6.1). The zero value is not a valid Recipient;
// use RecipientAll or RecipientOne.
type Recipient struct {
	one string
	all bool
}

// RecipientAll targets every registered agent.
func RecipientAll() Recipient { return Recipient{all: true} }

// RecipientOne targets a single agent by id.
func RecipientOne(agentID string) Recipient { return Recipient{one: agentID} }

// IsAll reports whether this recipient targets every agent.
func (r Recipient) IsAll() bool { return r.all }

// One returns the targeted agent id and true, or ("", false) if this
// recipient is RecipientAll.
func (r Recipient) One() (string, bool) {
	if r.all {
		return "", false
	}
	return r.one, true
}

func (r Recipient) String() string {
	if r.all {
		return "All"
	}
	return fmt.Sprintf("One(%s)", r.one)
}

// MarshalJSON renders the recipient per spec 6.1: the bare string "All", or
// an object {"One": agent_id}.
func (r Recipient) MarshalJSON() ([]byte, error) {
	if r.all {
		return json.Marshal("All")
	}
	return json.Marshal(struct {
		One string `json:"One"`
	}{One: r.one})
}

// UnmarshalJSON accepts either the bare string "All" or {"One": agent_id}.
func (r *Recipient) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s != "All" {
			return fmt.Errorf("recipient: unexpected string %q", s)
		}
		*r = RecipientAll()
		return nil
	}
	var obj struct {
		One string `json:"One"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("recipient: %w", err)
	}
	*r = RecipientOne(obj.One)
	return nil
}
