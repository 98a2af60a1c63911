package config

// PolicyConfig holds a fact limit and a query timeout, loaded and checked by
// Validate. No code in this module reads them: neither the core denotation
// engine nor the mangle query parser (internal/policy/mangleadapter.go),
// which only parses and evaluates nothing, has a limit or timeout.
type PolicyConfig struct {
	FactLimit    int    `yaml:"fact_limit" json:"fact_limit,omitempty"`
	QueryTimeout string `yaml:"query_timeout" json:"query_timeout,omitempty"`
}

// DefaultDerivedFactLimit is a derived-fact limit constant; no code in this
// module reads it.
const DefaultDerivedFactLimit = 500000
