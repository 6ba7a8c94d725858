package zoomable

import (
	"math"
	"time"
)

// PointerPhase is the lifecycle stage of a single pointer.
type PointerPhase uint8

const (
	PointerDown   PointerPhase = iota // pointer touched down
	PointerMove                       // pointer moved while down
	PointerUp                         // pointer lifted
	PointerCancel                     // the platform cancelled the pointer
)

func (p PointerPhase) String() string {
	switch p {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	case PointerCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// PointerEvent is one raw pointer sample. Coordinates share the space of the
// layout rect reported through OnLayout. Time is filled in by the Zoomable
// from its own clock.
type PointerEvent struct {
	ID    int
	Phase PointerPhase
	X, Y  float64
	Time  time.Duration
}

// pointerSet tracks the pointers currently down, in touch-down order.
type pointerSet struct {
	ids []int
	pos map[int]Vec2
}

func newPointerSet() pointerSet {
	return pointerSet{pos: make(map[int]Vec2)}
}

// apply updates the set with ev. Up and Cancel remove the pointer.
func (s *pointerSet) apply(ev PointerEvent) {
	switch ev.Phase {
	case PointerDown:
		if _, ok := s.pos[ev.ID]; !ok {
			s.ids = append(s.ids, ev.ID)
		}
		s.pos[ev.ID] = Vec2{X: ev.X, Y: ev.Y}
	case PointerMove:
		if _, ok := s.pos[ev.ID]; ok {
			s.pos[ev.ID] = Vec2{X: ev.X, Y: ev.Y}
		}
	case PointerUp, PointerCancel:
		if _, ok := s.pos[ev.ID]; !ok {
			return
		}
		delete(s.pos, ev.ID)
		for i, id := range s.ids {
			if id == ev.ID {
				s.ids = append(s.ids[:i], s.ids[i+1:]...)
				break
			}
		}
	}
}

func (s *pointerSet) len() int {
	return len(s.ids)
}

func (s *pointerSet) clear() {
	s.ids = s.ids[:0]
	for id := range s.pos {
		delete(s.pos, id)
	}
}

// centroid returns the mean position of the pointers that are down.
func (s *pointerSet) centroid() Vec2 {
	if len(s.ids) == 0 {
		return Vec2{}
	}
	var c Vec2
	for _, id := range s.ids {
		p := s.pos[id]
		c.X += p.X
		c.Y += p.Y
	}
	n := float64(len(s.ids))
	return Vec2{X: c.X / n, Y: c.Y / n}
}

// span returns the mean distance of the pointers from their centroid.
func (s *pointerSet) span() float64 {
	if len(s.ids) < 2 {
		return 0
	}
	c := s.centroid()
	var sum float64
	for _, id := range s.ids {
		sum += distance(s.pos[id], c)
	}
	return sum / float64(len(s.ids))
}

func distance(a, b Vec2) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return math.Sqrt(dx*dx + dy*dy)
}
