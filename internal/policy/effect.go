package policy

// PatternAtom is an effect pattern: a tagged variant distinguishing the
// ways a ground atom can be matched (spec 4.1). Recursive tuple-match
// returns false on arity mismatch and proceeds pointwise otherwise
// (original_source/src/policy/slick.rs).
type PatternAtom interface {
	// Matches reports whether the pattern matches a, without producing
	// bindings (bindings are only needed to resolve the affector).
	Matches(a GroundAtom) bool
	// bind extends capture with this pattern's variable bindings against a,
	// used internally by AffectorAtom.Resolve.
	bind(a GroundAtom, capture map[Variable]GroundAtom) bool
}

// PatternConstant matches a ground Constant exactly.
type PatternConstant Constant

func (p PatternConstant) Matches(a GroundAtom) bool { return p.bind(a, nil) }
func (p PatternConstant) bind(a GroundAtom, _ map[Variable]GroundAtom) bool {
	c, ok := a.(Constant)
	return ok && c == Constant(p)
}

// PatternConstantSet matches if the ground atom is a Constant present in
// the set (symbol ∈ set).
type PatternConstantSet []Constant

func (p PatternConstantSet) Matches(a GroundAtom) bool { return p.bind(a, nil) }
func (p PatternConstantSet) bind(a GroundAtom, _ map[Variable]GroundAtom) bool {
	c, ok := a.(Constant)
	if !ok {
		return false
	}
	for _, alt := range p {
		if c == alt {
			return true
		}
	}
	return false
}

// PatternVariable always matches and binds the ground atom to a name that
// AffectorAtom can later reference.
type PatternVariable Variable

func (p PatternVariable) Matches(a GroundAtom) bool { return true }
func (p PatternVariable) bind(a GroundAtom, capture map[Variable]GroundAtom) bool {
	if capture != nil {
		capture[Variable(p)] = a
	}
	return true
}

// PatternTuple matches an arity-equal ground tuple pointwise.
type PatternTuple []PatternAtom

func (p PatternTuple) Matches(a GroundAtom) bool { return p.bind(a, nil) }
func (p PatternTuple) bind(a GroundAtom, capture map[Variable]GroundAtom) bool {
	elems, ok := GroundTuple(a)
	if !ok || len(elems) != len(p) {
		return false
	}
	for i, sub := range p {
		if !sub.bind(elems[i], capture) {
			return false
		}
	}
	return true
}

// PatternWildcard always matches, binds nothing.
type PatternWildcard struct{}

func (PatternWildcard) Matches(GroundAtom) bool                         { return true }
func (PatternWildcard) bind(GroundAtom, map[Variable]GroundAtom) bool { return true }

// AffectorAtom selects who is responsible for a matched effect: either a
// fixed constant, or one of the pattern's variables.
type AffectorAtom interface {
	// Resolve computes the affector for a ground atom a that pat is known
	// to match.
	Resolve(pat PatternAtom, a GroundAtom) (GroundAtom, bool)
}

// AffectorConstant is a fixed affector, independent of the matched atom.
type AffectorConstant Constant

func (af AffectorConstant) Resolve(PatternAtom, GroundAtom) (GroundAtom, bool) {
	return Constant(af), true
}

// AffectorVariable resolves to whatever ground atom the named pattern
// variable captured.
type AffectorVariable Variable

func (af AffectorVariable) Resolve(pat PatternAtom, a GroundAtom) (GroundAtom, bool) {
	capture := make(map[Variable]GroundAtom)
	if !pat.bind(a, capture) {
		return nil, false
	}
	g, ok := capture[Variable(af)]
	return g, ok
}

// DefaultPattern is spec 4.1's default effect pattern: (effect, <Effect>,
// by, <Affector>), affector taken from the <Affector> variable.
func DefaultPattern() (PatternAtom, AffectorAtom) {
	return PatternTuple{
		PatternConstant("effect"),
		PatternVariable("Effect"),
		PatternConstant("by"),
		PatternVariable("Affector"),
	}, AffectorVariable("Affector")
}

// AuditPattern is the pattern the audit substitutes in before computing
// validity (spec 4.8 item 3 / original_source/src/auditing.rs): (<Worker>,
// {reads|writes}, <Variable>), affector <Worker>.
func AuditPattern() (PatternAtom, AffectorAtom) {
	return PatternTuple{
		PatternVariable("Worker"),
		PatternConstantSet{"reads", "writes"},
		PatternVariable("Variable"),
	}, AffectorVariable("Worker")
}
