package policy

// Message is the minimal shape the extractor needs from a wire message: an
// author and a policy-text payload. internal/wire.Message satisfies this.
type Message interface {
	AuthorID() string
	Payload() string
}

// Policy is a program together with the effect pattern and affector used
// to compute its denotation (spec 4.1/4.2).
type Policy struct {
	Program  Program
	Pattern  PatternAtom
	Affector AffectorAtom
}

// Truths runs Denote with the policy's pattern/affector, degrading to the
// single error truth on inference failure (spec 4.1).
func (p Policy) Truths() Denotation {
	return DenoteSafe(p.Program, p.Pattern, p.Affector)
}

// UpdateEffectPattern replaces the pattern and affector used by Truths.
func (p *Policy) UpdateEffectPattern(pat PatternAtom, aff AffectorAtom) {
	p.Pattern, p.Affector = pat, aff
}

// Extractor combines policy payloads from a set of messages into one
// Policy (spec 4.2).
type Extractor struct{}

// Extract runs the base procedure: parse each message, preprocess, check
// well-formedness (folded into Parse via checkWellFormed), inject a
// reflection consequent per original consequent, and concatenate all rules.
func (e Extractor) Extract(messages []Message) (Policy, *SyntaxError) {
	return e.extract(messages, "")
}

// ExtractWithActor is the action-audit variant: it additionally appends the
// fact `(actor, <actorID>).` before denoting, letting policy rules refer to
// who enacted the action (spec 4.2 "For action audit...").
func (e Extractor) ExtractWithActor(actorID string, messages []Message) (Policy, *SyntaxError) {
	return e.extract(messages, actorID)
}

func (e Extractor) extract(messages []Message, actorID string) (Policy, *SyntaxError) {
	var allRules []Rule
	for _, m := range messages {
		prog, serr := Parse(m.Payload(), m.AuthorID())
		if serr != nil {
			return Policy{}, serr
		}
		for _, r := range prog.Rules {
			reflected := reflectRule(r)
			allRules = append(allRules, r, reflected)
		}
	}
	if actorID != "" {
		allRules = append(allRules, Rule{
			Consequents: []Atom{Tuple{Constant("actor"), Constant(actorID)}},
			Author:      "<system>",
		})
	}
	pat, aff := DefaultPattern()
	return Policy{Program: Program{Rules: allRules}, Pattern: pat, Affector: aff}, nil
}

// reflectRule builds the reflection rule injected alongside an original
// rule: for every consequent C, a consequent `(author, "says", C)` (spec
// 4.2 step 4). The reflection rule shares the original's body so it is
// derived under exactly the same conditions as the original.
func reflectRule(r Rule) Rule {
	reflected := make([]Atom, len(r.Consequents))
	for i, c := range r.Consequents {
		reflected[i] = Tuple{Constant(r.Author), Constant("says"), c}
	}
	return Rule{
		Consequents: reflected,
		Positive:    r.Positive,
		Negative:    r.Negative,
		Checks:      r.Checks,
		Author:      r.Author,
	}
}
