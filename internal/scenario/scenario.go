// Package scenario loads a declarative YAML description of agents and their
// per-round actions and drives it through internal/runtime.System, the way
// the teacher's campaign packages (cmd/nerd/cmd_campaign.go) load a document
// and drive an OODA loop over it. There is no equivalent "scripted agent" in
// spec 4.7 itself — agents there are arbitrary implementations of the Agent
// interface — this package supplies one concrete implementation so
// cmd/justact has something to run without embedding a full agent runtime.
package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"justact/internal/wire"
)

// MsgRef names a previously stated message by its (author, seq) id, the way
// scenario steps refer to each other.
type MsgRef struct {
	Author string `yaml:"author"`
	Seq    uint32 `yaml:"seq"`
}

// Step is one unit of work assigned to a single participant ("who"). Kind
// selects which fields apply:
//
//	state        — author, seq, payload, to (default All)
//	enact        — tag, basis (optional), justification, to (default All)
//	advance_time — timestamp (synchronizer only)
//	agree        — author, seq, at (synchronizer only)
type Step struct {
	Who           string   `yaml:"who"`
	Kind          string   `yaml:"kind"`
	Author        string   `yaml:"author,omitempty"`
	Seq           uint32   `yaml:"seq,omitempty"`
	Payload       string   `yaml:"payload,omitempty"`
	To            string   `yaml:"to,omitempty"`
	Tag           string   `yaml:"tag,omitempty"`
	Basis         *MsgRef  `yaml:"basis,omitempty"`
	Justification []MsgRef `yaml:"justification,omitempty"`
	Timestamp     wire.Timestamp `yaml:"timestamp,omitempty"`
	At            wire.Timestamp `yaml:"at,omitempty"`
}

// Scenario is a full scripted run: a cast of agents, the id of the
// participant that plays the synchronizer, and the steps assigned to each.
type Scenario struct {
	Agents       []string `yaml:"agents"`
	Synchronizer string   `yaml:"synchronizer"`
	Steps        []Step   `yaml:"steps"`
}

// Load reads and parses a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	if sc.Synchronizer == "" {
		sc.Synchronizer = "synchronizer"
	}
	if len(sc.Agents) == 0 {
		return nil, fmt.Errorf("scenario: at least one agent is required")
	}
	return &sc, nil
}
