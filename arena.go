package zoomable

import "time"

// Gesture is a node of a recognizer graph: either a recognizer or a
// combinator built with Simultaneous, Exclusive or Race.
type Gesture interface {
	gesture()
}

// relation is how two recognizers may coexist, decided by the innermost
// combinator that contains both.
type relation uint8

const (
	relRace         relation = iota // first to activate cancels the other
	relSimultaneous                 // both may be active at once
	relExclusive                    // earlier member has priority
)

type group struct {
	kind     relation
	children []Gesture
}

func (*group) gesture() {}

// Simultaneous lets every member be active at the same time.
func Simultaneous(gs ...Gesture) Gesture {
	return &group{kind: relSimultaneous, children: gs}
}

// Exclusive gives earlier members priority: a later member that recognizes
// waits until every earlier member has failed, and is cancelled if one of
// them activates.
func Exclusive(gs ...Gesture) Gesture {
	return &group{kind: relExclusive, children: gs}
}

// Race lets the first member to activate claim the pointer stream; the
// others are cancelled for the rest of the touch sequence.
func Race(gs ...Gesture) Gesture {
	return &group{kind: relRace, children: gs}
}

// RecognizerState is the arbitration state of a recognizer.
type RecognizerState uint8

const (
	StateIdle     RecognizerState = iota // not tracking any pointer
	StatePossible                        // tracking pointers, not yet recognized
	StatePending                         // recognized, waiting for higher-priority members to fail
	StateActive                          // recognized and delivering events
)

func (s RecognizerState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePossible:
		return "possible"
	case StatePending:
		return "pending"
	case StateActive:
		return "active"
	default:
		return "unknown"
	}
}

// member is the arena-facing side of a recognizer.
type member interface {
	Gesture
	base() *recognizer
	handle(ev PointerEvent, ptrs *pointerSet)
	tick(now time.Duration)
	activate()
	cancel()
}

// recognizer holds the state shared by every recognizer kind.
type recognizer struct {
	arena   *Arena
	self    member
	state   RecognizerState
	enabled bool
	// blocked recognizers ignore pointers until the next touch sequence.
	blocked bool
}

func (r *recognizer) base() *recognizer { return r }

// State returns the current arbitration state.
func (r *recognizer) State() RecognizerState { return r.state }

// Enabled reports whether the recognizer takes part in arbitration.
func (r *recognizer) Enabled() bool { return r.enabled }

// SetEnabled turns the recognizer on or off. Disabling a recognizer that is
// tracking pointers cancels it and lets any peer waiting on it resolve.
func (r *recognizer) SetEnabled(enabled bool) {
	if enabled || r.state == StateIdle || r.self == nil {
		r.enabled = enabled
		return
	}
	r.self.cancel()
	r.enabled = false
	r.settled()
}

func (r *recognizer) listening() bool {
	return r.enabled && !r.blocked
}

// claim asks the arena to activate the recognizer. It returns true when the
// recognizer became active now; otherwise its state is Pending or Idle.
func (r *recognizer) claim() bool {
	if r.arena == nil {
		r.state = StateActive
		return true
	}
	return r.arena.request(r.self) == grantNow
}

// fail drops the recognizer for the rest of the touch sequence.
func (r *recognizer) fail() {
	r.state = StateIdle
	r.blocked = true
	r.settled()
}

// done returns the recognizer to Idle after it ended normally.
func (r *recognizer) done() {
	r.state = StateIdle
	r.settled()
}

func (r *recognizer) settled() {
	if r.arena != nil {
		r.arena.resolve()
	}
}

type grant uint8

const (
	grantNow grant = iota
	grantPending
	grantDenied
)

type pathStep struct {
	g     *group
	index int
}

// Arena routes pointer events to every recognizer of a gesture graph and
// arbitrates which of them may be active.
type Arena struct {
	members []member
	paths   [][]pathStep
	ptrs    pointerSet
	now     time.Duration

	resolving bool
	dirty     bool
}

// NewArena flattens root into an arena. Nil gestures are skipped.
func NewArena(root Gesture) *Arena {
	a := &Arena{ptrs: newPointerSet()}
	a.collect(root, nil)
	return a
}

func (a *Arena) collect(g Gesture, path []pathStep) {
	switch n := g.(type) {
	case nil:
	case *group:
		for i, child := range n.children {
			p := make([]pathStep, len(path), len(path)+1)
			copy(p, path)
			a.collect(child, append(p, pathStep{g: n, index: i}))
		}
	case member:
		r := n.base()
		r.arena = a
		r.self = n
		a.members = append(a.members, n)
		a.paths = append(a.paths, path)
	}
}

// Pointers returns the number of pointers currently down.
func (a *Arena) Pointers() int {
	return a.ptrs.len()
}

// HandlePointer records ev and forwards it to every recognizer.
func (a *Arena) HandlePointer(ev PointerEvent) {
	a.now = ev.Time
	if ev.Phase == PointerDown && a.ptrs.len() == 0 {
		for _, m := range a.members {
			m.base().blocked = false
		}
	}
	a.ptrs.apply(ev)
	for _, m := range a.members {
		if m.base().listening() {
			m.handle(ev, &a.ptrs)
		}
	}
}

// Tick lets time-bounded recognizers fail once their windows expire.
func (a *Arena) Tick(now time.Duration) {
	a.now = now
	for _, m := range a.members {
		if m.base().enabled && m.base().state != StateIdle {
			m.tick(now)
		}
	}
}

// Cancel cancels every recognizer and forgets all pointers.
func (a *Arena) Cancel() {
	for _, m := range a.members {
		if m.base().state != StateIdle {
			m.cancel()
		}
	}
	a.ptrs.clear()
}

// relation returns how m and o relate, and whether o has priority over m
// when the relation is exclusive.
func (a *Arena) relation(m, o int) (relation, bool) {
	pm, po := a.paths[m], a.paths[o]
	var rel relation
	oFirst := false
	for i := 0; i < len(pm) && i < len(po); i++ {
		if pm[i].g != po[i].g {
			break
		}
		rel = pm[i].g.kind
		oFirst = po[i].index < pm[i].index
		if pm[i].index != po[i].index {
			break
		}
	}
	return rel, oFirst
}

func (a *Arena) index(m member) int {
	for i, x := range a.members {
		if x == m {
			return i
		}
	}
	return -1
}

// evaluate decides whether m may activate given the state of the others.
func (a *Arena) evaluate(mi int) grant {
	blocked := false
	for oi, o := range a.members {
		if oi == mi {
			continue
		}
		st := o.base().state
		if st == StateIdle {
			continue
		}
		rel, oFirst := a.relation(mi, oi)
		switch rel {
		case relSimultaneous:
		case relRace:
			if st == StateActive {
				return grantDenied
			}
		case relExclusive:
			if st == StateActive {
				return grantDenied
			}
			if oFirst {
				blocked = true
			}
		}
	}
	if blocked {
		return grantPending
	}
	return grantNow
}

// request evaluates m and applies the outcome.
func (a *Arena) request(m member) grant {
	mi := a.index(m)
	g := a.evaluate(mi)
	switch g {
	case grantNow:
		a.win(mi)
	case grantPending:
		m.base().state = StatePending
	case grantDenied:
		r := m.base()
		r.state = StateIdle
		r.blocked = true
	}
	return g
}

// win activates m and cancels every competitor it does not coexist with.
func (a *Arena) win(mi int) {
	a.members[mi].base().state = StateActive
	for oi, o := range a.members {
		if oi == mi || o.base().state == StateIdle {
			continue
		}
		if rel, _ := a.relation(mi, oi); rel == relSimultaneous {
			continue
		}
		o.cancel()
		o.base().blocked = true
	}
}

// resolve re-evaluates pending recognizers after another one settled.
func (a *Arena) resolve() {
	if a.resolving {
		a.dirty = true
		return
	}
	a.resolving = true
	defer func() { a.resolving = false }()

	for {
		a.dirty = false
		for mi, m := range a.members {
			if m.base().state != StatePending {
				continue
			}
			switch a.evaluate(mi) {
			case grantNow:
				a.win(mi)
				m.activate()
			case grantDenied:
				m.cancel()
			}
		}
		if !a.dirty {
			return
		}
	}
}
