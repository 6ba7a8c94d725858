package zoomable

import "testing"

func TestPointerSetApply(t *testing.T) {
	s := newPointerSet()
	s.apply(PointerEvent{ID: 1, Phase: PointerDown, X: 0, Y: 0})
	s.apply(PointerEvent{ID: 2, Phase: PointerDown, X: 100, Y: 0})
	s.apply(PointerEvent{ID: 3, Phase: PointerMove, X: 5, Y: 5}) // unknown, ignored
	if s.len() != 2 {
		t.Fatalf("len = %d, want 2", s.len())
	}
	if c := s.centroid(); c != (Vec2{X: 50}) {
		t.Errorf("centroid = %+v", c)
	}
	if sp := s.span(); sp != 50 {
		t.Errorf("span = %v, want 50", sp)
	}

	s.apply(PointerEvent{ID: 2, Phase: PointerMove, X: 200, Y: 0})
	if sp := s.span(); sp != 100 {
		t.Errorf("span after move = %v, want 100", sp)
	}

	s.apply(PointerEvent{ID: 1, Phase: PointerUp})
	s.apply(PointerEvent{ID: 9, Phase: PointerUp})
	if s.len() != 1 || s.ids[0] != 2 {
		t.Errorf("ids = %v", s.ids)
	}
	if s.span() != 0 {
		t.Error("span of one pointer should be 0")
	}

	s.clear()
	if s.len() != 0 || s.centroid() != (Vec2{}) {
		t.Error("clear should empty the set")
	}
}

func TestDistance(t *testing.T) {
	if d := distance(Vec2{}, Vec2{X: 3, Y: 4}); d != 5 {
		t.Errorf("distance = %v, want 5", d)
	}
}
