package physics

// Phase is the stage of a contact reported by a physics step.
type Phase int

const (
	PhaseBegin Phase = iota
	PhaseContinue
	PhaseEnd
)

func (p Phase) String() string {
	switch p {
	case PhaseBegin:
		return "begin"
	case PhaseContinue:
		return "continue"
	case PhaseEnd:
		return "end"
	default:
		return "unknown"
	}
}

// Contact is one contact event between two fixtures. The pair is unordered.
type Contact struct {
	Phase Phase
	A     *Fixture
	B     *Fixture
}

// Match returns the pair's fixtures in the order (x, y) when one has type x
// and the other type y.
func (c Contact) Match(x, y FixtureType) (*Fixture, *Fixture, bool) {
	if c.A == nil || c.B == nil {
		return nil, nil, false
	}
	if c.A.Type == x && c.B.Type == y {
		return c.A, c.B, true
	}
	if c.B.Type == x && c.A.Type == y {
		return c.B, c.A, true
	}
	return nil, nil, false
}
