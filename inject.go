package zoomable

// injectFrame is the batch of synthetic pointer events delivered in one
// tick. Multi-touch gestures need several pointers to move within the same
// frame.
type injectFrame []PointerEvent

// syntheticPointerBase keeps injected pointer IDs clear of live touch slots.
const syntheticPointerBase = 1000

// InjectFrame queues a batch of pointer events consumed together on the next
// tick. While injected frames are pending, the live PointerSource is not
// polled.
func (z *Zoomable) InjectFrame(events ...PointerEvent) {
	frame := make(injectFrame, len(events))
	copy(frame, events)
	z.injectQueue = append(z.injectQueue, frame)
}

// InjectTap queues a press and a release at (x, y). Consumes two frames.
func (z *Zoomable) InjectTap(x, y float64) {
	id := syntheticPointerBase
	z.InjectFrame(PointerEvent{ID: id, Phase: PointerDown, X: x, Y: y})
	z.InjectFrame(PointerEvent{ID: id, Phase: PointerUp, X: x, Y: y})
}

// InjectDoubleTap queues two taps at (x, y) separated by one idle frame.
func (z *Zoomable) InjectDoubleTap(x, y float64) {
	z.InjectTap(x, y)
	z.InjectFrame()
	z.InjectTap(x, y)
}

// InjectPan queues a drag of fingers pointers, spaced 40px apart
// horizontally around (fromX, fromY), moving together to (toX, toY). The
// whole sequence consumes `frames` frames; the minimum is 3.
func (z *Zoomable) InjectPan(fingers int, fromX, fromY, toX, toY float64, frames int) {
	if fingers < 1 {
		fingers = 1
	}
	if frames < 3 {
		frames = 3
	}
	offset := func(i int) float64 {
		return (float64(i) - float64(fingers-1)/2) * 40
	}
	frame := make([]PointerEvent, 0, fingers)
	for i := 0; i < fingers; i++ {
		frame = append(frame, PointerEvent{ID: syntheticPointerBase + i, Phase: PointerDown, X: fromX + offset(i), Y: fromY})
	}
	z.InjectFrame(frame...)

	steps := frames - 2
	for s := 1; s <= steps; s++ {
		t := float64(s) / float64(steps)
		x := fromX + (toX-fromX)*t
		y := fromY + (toY-fromY)*t
		frame = frame[:0]
		for i := 0; i < fingers; i++ {
			frame = append(frame, PointerEvent{ID: syntheticPointerBase + i, Phase: PointerMove, X: x + offset(i), Y: y})
		}
		z.InjectFrame(frame...)
	}

	frame = frame[:0]
	for i := 0; i < fingers; i++ {
		frame = append(frame, PointerEvent{ID: syntheticPointerBase + i, Phase: PointerUp, X: toX + offset(i), Y: toY})
	}
	z.InjectFrame(frame...)
}

// InjectPinch queues a two-finger pinch centred on (x, y) whose finger
// distance goes from fromSpan to toSpan. The whole sequence consumes
// `frames` frames; the minimum is 3.
func (z *Zoomable) InjectPinch(x, y, fromSpan, toSpan float64, frames int) {
	if frames < 3 {
		frames = 3
	}
	a, b := syntheticPointerBase, syntheticPointerBase+1
	z.InjectFrame(
		PointerEvent{ID: a, Phase: PointerDown, X: x - fromSpan/2, Y: y},
		PointerEvent{ID: b, Phase: PointerDown, X: x + fromSpan/2, Y: y},
	)
	steps := frames - 2
	for s := 1; s <= steps; s++ {
		t := float64(s) / float64(steps)
		half := (fromSpan + (toSpan-fromSpan)*t) / 2
		z.InjectFrame(
			PointerEvent{ID: a, Phase: PointerMove, X: x - half, Y: y},
			PointerEvent{ID: b, Phase: PointerMove, X: x + half, Y: y},
		)
	}
	z.InjectFrame(
		PointerEvent{ID: a, Phase: PointerUp, X: x - toSpan/2, Y: y},
		PointerEvent{ID: b, Phase: PointerUp, X: x + toSpan/2, Y: y},
	)
}

// PendingInjections returns the number of queued synthetic frames.
func (z *Zoomable) PendingInjections() int {
	return len(z.injectQueue)
}

// processInjectedInput pops one frame from the inject queue and feeds it
// through HandlePointer. Returns true if a frame was consumed (live input is
// skipped for that tick).
func (z *Zoomable) processInjectedInput() bool {
	if len(z.injectQueue) == 0 {
		return false
	}
	frame := z.injectQueue[0]
	copy(z.injectQueue, z.injectQueue[1:])
	z.injectQueue[len(z.injectQueue)-1] = nil
	z.injectQueue = z.injectQueue[:len(z.injectQueue)-1]

	for _, ev := range frame {
		z.HandlePointer(ev)
	}
	return true
}
