package zoomable

import "github.com/hajimehoshi/ebiten/v2"

// --- Constants ---

const (
	maxPointers  = 10 // pointer 0 = mouse, 1-9 = touch
	mousePointer = 0
)

// --- Per-pointer state ---

type pointerState struct {
	down         bool
	lastX, lastY float64
}

// EbitenInput polls Ebitengine's mouse and touch state each tick and turns
// it into PointerEvents. The left mouse button is pointer 0; touches are
// mapped onto slots 1-9 for as long as they stay down.
type EbitenInput struct {
	// MouseEnabled routes the left mouse button as a single pointer.
	MouseEnabled bool

	pointers     [maxPointers]pointerState
	touchMap     [maxPointers]ebiten.TouchID
	touchUsed    [maxPointers]bool
	prevTouchIDs []ebiten.TouchID
}

// NewEbitenInput returns an input source with the mouse enabled.
func NewEbitenInput() *EbitenInput {
	return &EbitenInput{MouseEnabled: true}
}

// Poll reads the current input state and forwards changes to h.
func (in *EbitenInput) Poll(h PointerHandler) {
	if in.MouseEnabled {
		mx, my := ebiten.CursorPosition()
		pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
		in.processPointer(h, mousePointer, float64(mx), float64(my), pressed)
	}
	in.processTouchPointers(h)
}

// processTouchPointers handles touch input (pointers 1-9).
func (in *EbitenInput) processTouchPointers(h PointerHandler) {
	touchIDs := ebiten.AppendTouchIDs(in.prevTouchIDs[:0])
	in.prevTouchIDs = touchIDs

	var activeSlots [maxPointers]bool
	for _, tid := range touchIDs {
		slot := in.touchSlot(tid)
		if slot < 0 {
			continue
		}
		activeSlots[slot] = true

		tx, ty := ebiten.TouchPosition(tid)
		in.processPointer(h, slot, float64(tx), float64(ty), true)
	}

	// Release any touch slots that are no longer active.
	for i := 1; i < maxPointers; i++ {
		if in.touchUsed[i] && !activeSlots[i] {
			ps := &in.pointers[i]
			if ps.down {
				in.processPointer(h, i, ps.lastX, ps.lastY, false)
			}
			in.touchUsed[i] = false
			in.touchMap[i] = 0
		}
	}
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (in *EbitenInput) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if in.touchUsed[i] && in.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !in.touchUsed[i] {
			in.touchUsed[i] = true
			in.touchMap[i] = tid
			return i
		}
	}
	return -1
}

// processPointer runs the down/move/up state machine for a single pointer.
func (in *EbitenInput) processPointer(h PointerHandler, id int, x, y float64, pressed bool) {
	ps := &in.pointers[id]
	switch {
	case pressed && !ps.down:
		ps.down = true
		h.HandlePointer(PointerEvent{ID: id, Phase: PointerDown, X: x, Y: y})
	case !pressed && ps.down:
		ps.down = false
		h.HandlePointer(PointerEvent{ID: id, Phase: PointerUp, X: x, Y: y})
	case pressed && ps.down && (x != ps.lastX || y != ps.lastY):
		h.HandlePointer(PointerEvent{ID: id, Phase: PointerMove, X: x, Y: y})
	}
	ps.lastX = x
	ps.lastY = y
}
