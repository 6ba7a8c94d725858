package zoomable

// interactionTracker folds overlapping pinch and pan gestures into one
// logical interaction. Pinch is flagged; pan is counted because several pan
// recognizers may be live at once during arbitration.
type interactionTracker struct {
	interacting bool
	pinching    bool
	panCount    int

	lastID  InteractionID
	current InteractionID

	// onStart runs when the first gesture of an interaction begins.
	onStart func(id InteractionID)
	// settle runs when the last gesture ends, before onEnd.
	settle func(id InteractionID)
	// onEnd runs after settle.
	onEnd func(id InteractionID)
}

// nextID allocates a fresh InteractionID.
func (t *interactionTracker) nextID() InteractionID {
	t.lastID++
	return t.lastID
}

// id returns the id of the open interaction, or zero when idle.
func (t *interactionTracker) id() InteractionID {
	if !t.interacting {
		return 0
	}
	return t.current
}

func (t *interactionTracker) active() bool {
	return t.interacting
}

func (t *interactionTracker) panning() bool {
	return t.panCount > 0
}

// noteStart opens an interaction unless one is already open, and reports
// whether it did. The host is told by started once the gesture's own state
// is committed.
func (t *interactionTracker) noteStart() bool {
	if t.interacting {
		return false
	}
	t.interacting = true
	t.current = t.nextID()
	return true
}

func (t *interactionTracker) started(opened bool) {
	if opened && t.onStart != nil {
		t.onStart(t.current)
	}
}

// noteEnd closes the interaction once no pinch or pan remains active.
func (t *interactionTracker) noteEnd() {
	if !t.interacting || t.pinching || t.panCount > 0 {
		return
	}
	id := t.current
	if t.settle != nil {
		t.settle(id)
	}
	t.interacting = false
	if t.onEnd != nil {
		t.onEnd(id)
	}
}

// The gesture hooks run hook after updating the flags. On start, onStart
// follows the hook; on end, the hook precedes the check for the end of the
// interaction. Host callbacks therefore observe committed state.

func (t *interactionTracker) pinchStarted(hook func()) {
	opened := t.noteStart()
	t.pinching = true
	call(hook)
	t.started(opened)
}

func (t *interactionTracker) pinchEnded(hook func()) {
	t.pinching = false
	call(hook)
	t.noteEnd()
}

func (t *interactionTracker) panStarted(hook func()) {
	opened := t.noteStart()
	t.panCount++
	call(hook)
	t.started(opened)
}

func (t *interactionTracker) panEnded(hook func()) {
	if t.panCount > 0 {
		t.panCount--
	}
	call(hook)
	t.noteEnd()
}

func call(fn func()) {
	if fn != nil {
		fn()
	}
}
