package policy

import "fmt"

// Denotation is the grounded, three-valued evaluation of a Program: a set
// of true ground atoms, a set of unknown ground atoms (everything else is
// implicitly false), and the effects matched out of trues/unknowns by the
// policy's effect pattern.
type Denotation struct {
	truths  map[string]GroundAtom
	unknown map[string]GroundAtom
	effects map[string]Effect
}

// Effect is a ground atom matched by an effect pattern, annotated with the
// agent responsible for it (spec 4.1 "Effect extraction").
type Effect struct {
	Fact     GroundAtom
	Affector GroundAtom
}

func (e Effect) String() string {
	return fmt.Sprintf("%s by %s", e.Fact.String(), e.Affector.String())
}

// IterTruths returns the true ground atoms.
func (d Denotation) IterTruths() []GroundAtom {
	out := make([]GroundAtom, 0, len(d.truths))
	for _, a := range d.truths {
		out = append(out, a)
	}
	return out
}

// IterUnknowns returns the unknown ground atoms.
func (d Denotation) IterUnknowns() []GroundAtom {
	out := make([]GroundAtom, 0, len(d.unknown))
	for _, a := range d.unknown {
		out = append(out, a)
	}
	return out
}

// IterEffects returns the matched effects.
func (d Denotation) IterEffects() []Effect {
	out := make([]Effect, 0, len(d.effects))
	for _, e := range d.effects {
		out = append(out, e)
	}
	return out
}

// TruthOf implements spec 4.1's truth_of: Some(true), None ("unknown"), or
// Some(false) (reported here via the ok=false, isTrue=false case).
func (d Denotation) TruthOf(a GroundAtom) (isTrue bool, known bool) {
	key := canonicalKey(a)
	if _, ok := d.truths[key]; ok {
		return true, true
	}
	if _, ok := d.unknown[key]; ok {
		return false, false
	}
	return false, true
}

// TruthOfQuery parses query in mangle's concrete atom syntax (via
// ParseQueryAtom) and reports its truth value in d, for ad hoc
// operator-typed queries (cmd/justact audit --query).
func (d Denotation) TruthOfQuery(query string) (isTrue bool, known bool, err error) {
	a, err := ParseQueryAtom(query)
	if err != nil {
		return false, false, err
	}
	isTrue, known = d.TruthOf(a)
	return isTrue, known, nil
}

// IsValid implements spec 4.1's Validity: no true ground atom is the
// constant error or a tuple whose first element is error.
func (d Denotation) IsValid() bool {
	for _, a := range d.truths {
		if IsErrorAtom(a) {
			return false
		}
	}
	return true
}

// --- evaluation ---

type binding map[Variable]GroundAtom

func (b binding) clone() binding {
	out := make(binding, len(b))
	for k, v := range b {
		out[k] = v
	}
	return out
}

// substitute replaces every bound Variable in a with its GroundAtom value;
// unbound variables and wildcards pass through unchanged.
func substitute(a Atom, b binding) Atom {
	switch v := a.(type) {
	case Variable:
		if g, ok := b[v]; ok {
			return g
		}
		return v
	case Tuple:
		out := make(Tuple, len(v))
		for i, e := range v {
			out[i] = substitute(e, b)
		}
		return out
	default:
		return a
	}
}

func groundSubstitute(a Atom, b binding) (GroundAtom, bool) {
	return Ground(substitute(a, b))
}

// matchPattern attempts to extend b so that pattern unifies with fact,
// returning the extended binding (a copy) on success.
func matchPattern(pattern Atom, fact GroundAtom, b binding) (binding, bool) {
	switch p := pattern.(type) {
	case Wildcard:
		return b, true
	case Variable:
		if existing, ok := b[p]; ok {
			if canonicalKey(existing) == canonicalKey(fact) {
				return b, true
			}
			return nil, false
		}
		nb := b.clone()
		nb[p] = fact
		return nb, true
	case Constant:
		if c, ok := fact.(Constant); ok && c == p {
			return b, true
		}
		return nil, false
	case Tuple:
		elems, ok := GroundTuple(fact)
		if !ok || len(elems) != len(p) {
			return nil, false
		}
		cur := b
		for i, sub := range p {
			var matched bool
			cur, matched = matchPattern(sub, elems[i], cur)
			if !matched {
				return nil, false
			}
		}
		return cur, true
	default:
		return nil, false
	}
}

// joinPositive performs a backtracking join of positive antecedents against
// the current derived fact set, invoking k for every resulting binding.
func joinPositive(antecedents []Atom, facts []GroundAtom, b binding, k func(binding) bool) bool {
	if len(antecedents) == 0 {
		return k(b)
	}
	head := antecedents[0]
	rest := antecedents[1:]
	for _, fact := range facts {
		nb, ok := matchPattern(head, fact, b.clone())
		if !ok {
			continue
		}
		if !joinPositive(rest, facts, nb, k) {
			return false
		}
	}
	return true
}

// immediateConsequence applies every rule once against the given fact set
// (as the source of positive-antecedent matches), testing negative
// antecedents against negRef, and returns newly derivable ground
// consequents (key -> atom).
func immediateConsequence(rules []Rule, facts []GroundAtom, negRef map[string]GroundAtom) map[string]GroundAtom {
	derived := make(map[string]GroundAtom)
	for _, r := range rules {
		emit := func(b binding) bool {
			for _, n := range r.Negative {
				g, ok := groundSubstitute(n, b)
				if !ok {
					return true // unsafe; skip (shouldn't happen post well-formedness check)
				}
				if _, present := negRef[canonicalKey(g)]; present {
					return true // negation fails, this binding doesn't satisfy the rule
				}
			}
			for _, c := range r.Checks {
				lg, lok := groundSubstitute(c.Left, b)
				rg, rok := groundSubstitute(c.Right, b)
				if !lok || !rok {
					return true
				}
				eq := canonicalKey(lg) == canonicalKey(rg)
				if c.Op == CheckEqual && !eq {
					return true
				}
				if c.Op == CheckNotEqual && eq {
					return true
				}
			}
			for _, c := range r.Consequents {
				g, ok := groundSubstitute(c, b)
				if !ok {
					continue
				}
				derived[canonicalKey(g)] = g
			}
			return true
		}
		joinPositive(r.Positive, facts, binding{}, emit)
	}
	return derived
}

// fixpoint repeatedly applies immediateConsequence, accumulating derived
// atoms, until a full pass adds nothing new. The Herbrand universe here is
// finite (every ground atom is built only from constants literally present
// in the program), so this always terminates.
func fixpoint(rules []Rule, negRef map[string]GroundAtom) map[string]GroundAtom {
	all := make(map[string]GroundAtom)
	allList := []GroundAtom{}
	for {
		newly := immediateConsequence(rules, allList, negRef)
		grew := false
		for k, v := range newly {
			if _, ok := all[k]; !ok {
				all[k] = v
				allList = append(allList, v)
				grew = true
			}
		}
		if !grew {
			return all
		}
	}
}

// Denote computes the grounded three-valued denotation of a Program using
// the given effect pattern and affector (spec 4.1). On inference failure
// (defensively: only reachable if a rule body referenced an unsafe
// variable, which extraction already rejects) the denotation degrades to
// the single `error inference failure` truth rather than propagating.
func Denote(p Program, pat PatternAtom, aff AffectorAtom) (d Denotation) {
	defer func() {
		// immediateConsequence/joinPositive are written to be total; this
		// recover is a last-resort guard matching spec 4.1's degrade-on-
		// failure contract, not a substitute for correctness above.
		if r := recover(); r != nil {
			d = Denotation{
				truths:  map[string]GroundAtom{canonicalKey(ErrorAtom): ErrorAtom},
				unknown: map[string]GroundAtom{},
				effects: map[string]Effect{},
			}
		}
	}()

	// Alternating fixpoint: optimistic over-approximates what may hold
	// (negation tested against confirmed), confirmed under-approximates what
	// must hold (negation tested against optimistic). The first optimistic
	// pass tests negation against the empty set; both are refined until
	// neither changes.
	optimistic := fixpoint(p.Rules, map[string]GroundAtom{})
	confirmed := fixpoint(p.Rules, optimistic)
	for {
		nextOptimistic := fixpoint(p.Rules, confirmed)
		nextConfirmed := fixpoint(p.Rules, nextOptimistic)
		if len(nextOptimistic) == len(optimistic) && len(nextConfirmed) == len(confirmed) {
			break
		}
		optimistic, confirmed = nextOptimistic, nextConfirmed
	}

	unknown := make(map[string]GroundAtom)
	for k, v := range optimistic {
		if _, ok := confirmed[k]; !ok {
			unknown[k] = v
		}
	}

	d = Denotation{truths: confirmed, unknown: unknown, effects: make(map[string]Effect)}
	for _, a := range confirmed {
		matchEffect(a, pat, aff, d.effects)
	}
	for _, a := range unknown {
		matchEffect(a, pat, aff, d.effects)
	}
	return d
}

// DenoteSafe is Denote with the inference-failure degrade made explicit: if
// evaluation panics (defensive only) it returns the single-truth error
// denotation described in spec 4.1 instead of the zero value.
func DenoteSafe(p Program, pat PatternAtom, aff AffectorAtom) (d Denotation) {
	defer func() {
		if r := recover(); r != nil {
			d = Denotation{
				truths:  map[string]GroundAtom{canonicalKey(ErrorAtom): ErrorAtom},
				unknown: map[string]GroundAtom{},
				effects: map[string]Effect{},
			}
		}
	}()
	return Denote(p, pat, aff)
}

func matchEffect(a GroundAtom, pat PatternAtom, aff AffectorAtom, out map[string]Effect) {
	if !pat.Matches(a) {
		return
	}
	affector, ok := aff.Resolve(pat, a)
	if !ok {
		return
	}
	out[canonicalKey(a)] = Effect{Fact: a, Affector: affector}
}
