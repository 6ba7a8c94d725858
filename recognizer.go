package zoomable

import (
	"time"
)

const (
	// defaultPanSlop is the centroid travel in pixels before a pan activates.
	defaultPanSlop = 4.0
	// defaultPinchSlop is the span ratio change before a pinch activates.
	defaultPinchSlop = 0.02
	// defaultTapSlop is how far a tap may drift from its first touch-down.
	defaultTapSlop = 10.0
	// velocityWindow is how recent the last move must be for its velocity
	// to carry into the end of a pan.
	velocityWindow = 100 * time.Millisecond
)

// PanEvent describes a pan phase. Translation is cumulative since the pan
// started tracking; velocity is in pixels per second.
type PanEvent struct {
	TranslationX, TranslationY float64
	VelocityX, VelocityY       float64
	Pointers                   int
	Cancelled                  bool
}

// PanRecognizer recognizes a drag by a number of pointers within
// [MinPointers, MaxPointers].
type PanRecognizer struct {
	recognizer

	MinPointers, MaxPointers int
	// Slop is the distance the centroid must travel before activation.
	Slop float64
	// ShouldFail is consulted at touch-down; returning true fails the
	// recognizer for the whole touch sequence.
	ShouldFail func() bool

	OnStart  func(PanEvent)
	OnUpdate func(PanEvent)
	OnEnd    func(PanEvent)

	origin   Vec2
	prev     Vec2
	prevTime time.Duration
	velocity Vec2
	count    int
}

// NewPanRecognizer returns an enabled pan recognizer for the pointer range.
func NewPanRecognizer(minPointers, maxPointers int) *PanRecognizer {
	if minPointers < 1 {
		minPointers = 1
	}
	if maxPointers < minPointers {
		maxPointers = minPointers
	}
	return &PanRecognizer{
		recognizer:  recognizer{enabled: true},
		MinPointers: minPointers,
		MaxPointers: maxPointers,
		Slop:        defaultPanSlop,
	}
}

func (*PanRecognizer) gesture() {}

func (p *PanRecognizer) event() PanEvent {
	return PanEvent{
		TranslationX: p.prev.X - p.origin.X,
		TranslationY: p.prev.Y - p.origin.Y,
		VelocityX:    p.velocity.X,
		VelocityY:    p.velocity.Y,
		Pointers:     p.count,
	}
}

func (p *PanRecognizer) inRange(n int) bool {
	return n >= p.MinPointers && n <= p.MaxPointers
}

func (p *PanRecognizer) handle(ev PointerEvent, ptrs *pointerSet) {
	n := ptrs.len()
	c := ptrs.centroid()

	switch p.state {
	case StateIdle:
		if ev.Phase != PointerDown {
			return
		}
		if p.ShouldFail != nil && p.ShouldFail() {
			p.fail()
			return
		}
		if n > p.MaxPointers {
			p.fail()
			return
		}
		p.state = StatePossible
		p.origin = c
		p.prev = c
		p.prevTime = ev.Time
		p.velocity = Vec2{}
		p.count = n

	case StatePossible, StatePending:
		switch ev.Phase {
		case PointerCancel:
			p.fail()
		case PointerUp:
			if n == 0 {
				p.fail()
				return
			}
			p.rebase(c, n)
		case PointerDown:
			if n > p.MaxPointers {
				p.fail()
				return
			}
			p.rebase(c, n)
		case PointerMove:
			p.track(c, ev.Time)
			if p.state != StatePossible || !p.inRange(n) {
				return
			}
			if distance(p.origin, p.prev) > p.Slop && p.claim() {
				p.activate()
			}
		}

	case StateActive:
		switch ev.Phase {
		case PointerCancel:
			p.end(true)
		case PointerUp:
			if n == 0 {
				if ev.Time-p.prevTime > velocityWindow {
					p.velocity = Vec2{}
				}
				p.end(false)
				return
			}
			p.rebase(c, n)
			if !p.inRange(n) {
				p.end(false)
			}
		case PointerDown:
			p.rebase(c, n)
			if !p.inRange(n) {
				p.end(false)
			}
		case PointerMove:
			p.track(c, ev.Time)
			if p.OnUpdate != nil {
				p.OnUpdate(p.event())
			}
		}
	}
}

// rebase keeps the translation continuous when the pointer set changes.
func (p *PanRecognizer) rebase(c Vec2, n int) {
	p.origin.X += c.X - p.prev.X
	p.origin.Y += c.Y - p.prev.Y
	p.prev = c
	p.count = n
}

func (p *PanRecognizer) track(c Vec2, t time.Duration) {
	if dt := (t - p.prevTime).Seconds(); dt > 0 {
		p.velocity = Vec2{X: (c.X - p.prev.X) / dt, Y: (c.Y - p.prev.Y) / dt}
	}
	p.prev = c
	p.prevTime = t
}

func (p *PanRecognizer) activate() {
	p.state = StateActive
	if p.OnStart != nil {
		p.OnStart(p.event())
	}
	if p.OnUpdate != nil {
		p.OnUpdate(p.event())
	}
}

func (p *PanRecognizer) end(cancelled bool) {
	e := p.event()
	e.Cancelled = cancelled
	p.state = StateIdle
	if cancelled {
		p.blocked = true
	}
	if p.OnEnd != nil {
		p.OnEnd(e)
	}
	p.settled()
}

func (p *PanRecognizer) tick(time.Duration) {}

func (p *PanRecognizer) cancel() {
	if p.state == StateActive {
		e := p.event()
		e.Cancelled = true
		p.state = StateIdle
		if p.OnEnd != nil {
			p.OnEnd(e)
		}
		return
	}
	p.state = StateIdle
}

// PinchEvent describes a pinch phase. Scale is relative to the span at
// activation; the focal point is the centroid of the pointers.
type PinchEvent struct {
	Scale          float64
	FocalX, FocalY float64
	Pointers       int
	Cancelled      bool
}

// PinchRecognizer recognizes two or more pointers moving apart or together.
type PinchRecognizer struct {
	recognizer

	// Slop is the span ratio change required before activation.
	Slop float64

	OnStart  func(PinchEvent)
	OnUpdate func(PinchEvent)
	OnEnd    func(PinchEvent)

	initialSpan float64
	scale       float64
	focal       Vec2
	count       int
}

// NewPinchRecognizer returns an enabled pinch recognizer.
func NewPinchRecognizer() *PinchRecognizer {
	return &PinchRecognizer{
		recognizer: recognizer{enabled: true},
		Slop:       defaultPinchSlop,
		scale:      1,
	}
}

func (*PinchRecognizer) gesture() {}

func (p *PinchRecognizer) event() PinchEvent {
	return PinchEvent{Scale: p.scale, FocalX: p.focal.X, FocalY: p.focal.Y, Pointers: p.count}
}

func (p *PinchRecognizer) measure(ptrs *pointerSet) {
	p.focal = ptrs.centroid()
	p.count = ptrs.len()
	if p.initialSpan > 0 {
		p.scale = ptrs.span() / p.initialSpan
	}
}

// rebase keeps the scale continuous when a pointer joins or leaves.
func (p *PinchRecognizer) rebase(ptrs *pointerSet) {
	span := ptrs.span()
	if p.scale > 0 && span > 0 {
		p.initialSpan = span / p.scale
	}
	p.focal = ptrs.centroid()
	p.count = ptrs.len()
}

func (p *PinchRecognizer) handle(ev PointerEvent, ptrs *pointerSet) {
	n := ptrs.len()

	switch p.state {
	case StateIdle:
		if n < 2 || ev.Phase == PointerUp || ev.Phase == PointerCancel {
			return
		}
		p.state = StatePossible
		p.scale = 1
		p.initialSpan = ptrs.span()
		p.focal = ptrs.centroid()
		p.count = n

	case StatePossible, StatePending:
		switch {
		case ev.Phase == PointerCancel:
			p.fail()
		case n < 2:
			p.state = StateIdle
			p.settled()
		case ev.Phase == PointerMove:
			if p.initialSpan <= 0 {
				p.initialSpan = ptrs.span()
				return
			}
			p.measure(ptrs)
		default:
			p.rebase(ptrs)
		}

	case StateActive:
		switch {
		case ev.Phase == PointerCancel:
			p.end(true)
		case n < 2:
			p.end(false)
		case ev.Phase == PointerMove:
			p.measure(ptrs)
			if p.OnUpdate != nil {
				p.OnUpdate(p.event())
			}
		default:
			p.rebase(ptrs)
		}
	}
}

func (p *PinchRecognizer) activate() {
	p.state = StateActive
	if p.OnStart != nil {
		p.OnStart(p.event())
	}
	if p.OnUpdate != nil {
		p.OnUpdate(p.event())
	}
}

func (p *PinchRecognizer) end(cancelled bool) {
	e := p.event()
	e.Cancelled = cancelled
	p.state = StateIdle
	if cancelled {
		p.blocked = true
	}
	if p.OnEnd != nil {
		p.OnEnd(e)
	}
	p.settled()
}

// tick claims the pinch once the span has changed past Slop. Claiming here
// rather than on each move means a frame's whole pointer batch has been
// applied, so OnStart sees the focal point of every pointer that moved.
func (p *PinchRecognizer) tick(time.Duration) {
	if p.state != StatePossible {
		return
	}
	ratio := p.scale - 1
	if (ratio > p.Slop || ratio < -p.Slop) && p.claim() {
		p.activate()
	}
}

func (p *PinchRecognizer) cancel() {
	if p.state == StateActive {
		e := p.event()
		e.Cancelled = true
		p.state = StateIdle
		if p.OnEnd != nil {
			p.OnEnd(e)
		}
		return
	}
	p.state = StateIdle
}

// TapEvent is the position of the final touch of a recognized tap sequence.
type TapEvent struct {
	X, Y float64
	Taps int
}

// TapRecognizer recognizes Taps consecutive single-pointer taps.
type TapRecognizer struct {
	recognizer

	Taps int
	// MaxDuration bounds each press. Zero means unbounded.
	MaxDuration time.Duration
	// MaxDelay bounds the gap between taps. Zero means unbounded.
	MaxDelay time.Duration
	// MaxDist bounds how far any touch may stray from the first touch-down.
	MaxDist float64

	OnTap func(TapEvent)

	count   int
	pressed bool
	downAt  time.Duration
	upAt    time.Duration
	origin  Vec2
	last    Vec2
}

// NewTapRecognizer returns an enabled recognizer for taps consecutive taps.
func NewTapRecognizer(taps int) *TapRecognizer {
	if taps < 1 {
		taps = 1
	}
	return &TapRecognizer{
		recognizer: recognizer{enabled: true},
		Taps:       taps,
		MaxDist:    defaultTapSlop,
	}
}

func (*TapRecognizer) gesture() {}

func (t *TapRecognizer) handle(ev PointerEvent, ptrs *pointerSet) {
	pos := Vec2{X: ev.X, Y: ev.Y}

	switch t.state {
	case StateIdle:
		if ev.Phase != PointerDown || ptrs.len() != 1 {
			return
		}
		t.state = StatePossible
		t.count = 0
		t.pressed = true
		t.downAt = ev.Time
		t.origin = pos
		t.last = pos

	case StatePossible:
		switch ev.Phase {
		case PointerCancel:
			t.fail()
		case PointerDown:
			if t.pressed || ptrs.len() != 1 || distance(t.origin, pos) > t.MaxDist {
				t.fail()
				return
			}
			t.pressed = true
			t.downAt = ev.Time
			t.last = pos
		case PointerMove:
			if distance(t.origin, pos) > t.MaxDist {
				t.fail()
			}
		case PointerUp:
			if !t.pressed || (t.MaxDuration > 0 && ev.Time-t.downAt > t.MaxDuration) {
				t.fail()
				return
			}
			t.pressed = false
			t.upAt = ev.Time
			t.last = pos
			t.count++
			if t.count < t.Taps {
				return
			}
			if t.claim() {
				t.activate()
			}
		}
	}
}

func (t *TapRecognizer) tick(now time.Duration) {
	if t.state != StatePossible {
		return
	}
	if t.pressed && t.MaxDuration > 0 && now-t.downAt > t.MaxDuration {
		t.fail()
		return
	}
	if !t.pressed && t.count > 0 && t.MaxDelay > 0 && now-t.upAt > t.MaxDelay {
		t.fail()
	}
}

// activate fires the tap. Taps are discrete, so the recognizer returns to
// Idle straight away.
func (t *TapRecognizer) activate() {
	t.state = StateActive
	if t.OnTap != nil {
		t.OnTap(TapEvent{X: t.last.X, Y: t.last.Y, Taps: t.count})
	}
	t.done()
}

func (t *TapRecognizer) cancel() {
	t.state = StateIdle
	t.pressed = false
	t.count = 0
}
