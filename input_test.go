package zoomable

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

type recordingHandler struct {
	events []PointerEvent
}

func (h *recordingHandler) HandlePointer(ev PointerEvent) {
	h.events = append(h.events, ev)
}

func TestEbitenInputProcessPointer(t *testing.T) {
	in := NewEbitenInput()
	h := &recordingHandler{}

	in.processPointer(h, 0, 10, 10, true)  // down
	in.processPointer(h, 0, 10, 10, true)  // no movement
	in.processPointer(h, 0, 15, 12, true)  // move
	in.processPointer(h, 0, 15, 12, false) // up
	in.processPointer(h, 0, 20, 20, false) // hover, ignored

	want := []PointerPhase{PointerDown, PointerMove, PointerUp}
	if len(h.events) != len(want) {
		t.Fatalf("events = %+v", h.events)
	}
	for i, ph := range want {
		if h.events[i].Phase != ph {
			t.Errorf("events[%d] = %s, want %s", i, h.events[i].Phase, ph)
		}
	}
	if h.events[1].X != 15 || h.events[1].Y != 12 {
		t.Errorf("move = %+v", h.events[1])
	}
}

func TestEbitenInputTouchSlot(t *testing.T) {
	in := NewEbitenInput()

	a := in.touchSlot(ebiten.TouchID(7))
	b := in.touchSlot(ebiten.TouchID(9))
	if a != 1 || b != 2 {
		t.Errorf("slots = %d, %d, want 1, 2", a, b)
	}
	if again := in.touchSlot(ebiten.TouchID(7)); again != a {
		t.Errorf("existing touch moved to slot %d", again)
	}

	for i := 0; i < maxPointers; i++ {
		in.touchSlot(ebiten.TouchID(100 + i))
	}
	if slot := in.touchSlot(ebiten.TouchID(500)); slot != -1 {
		t.Errorf("slot = %d, want -1 when full", slot)
	}
}
