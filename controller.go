package zoomable

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// PointerSource delivers live pointer events once per tick. See EbitenInput.
type PointerSource interface {
	Poll(h PointerHandler)
}

// PointerHandler consumes raw pointer events.
type PointerHandler interface {
	HandlePointer(ev PointerEvent)
}

// Zoomable turns pinch, pan and tap gestures on one surface into a
// continuously updated translate/focal/scale transform.
//
// A Zoomable is driven from a single goroutine, normally the host's update
// loop: call OnLayout when the container is measured, feed pointers through
// HandlePointer or a PointerSource, call Update (or Advance) once per tick,
// and render with Transform, Matrix or GeoM.
type Zoomable struct {
	cfg       Config
	callbacks Callbacks

	layout  Layout
	state   *transformState
	tracker interactionTracker
	animEnd *animationEnd
	arena   *Arena
	gs      gestureSet

	clock       time.Duration
	input       PointerSource
	injectQueue []injectFrame
	script      *ScriptRunner
	sink        EventSink
}

// New creates a Zoomable for cfg. cfg is normalized first.
func New(cfg Config, callbacks Callbacks) *Zoomable {
	z := &Zoomable{
		cfg:       cfg.Normalize(),
		callbacks: callbacks,
		state:     newTransformState(),
	}
	z.animEnd = newAnimationEnd(z.resetAnimationEnded)
	z.tracker = interactionTracker{
		onStart: z.interactionStarted,
		settle:  z.settle,
		onEnd:   z.interactionEnded,
	}
	z.compose()
	return z
}

// Config returns the normalized configuration in use.
func (z *Zoomable) Config() Config {
	return z.cfg
}

// Reconfigure replaces the configuration and rebuilds the recognizers.
// Active gestures are cancelled first so bookkeeping stays balanced; the
// transform itself is kept.
func (z *Zoomable) Reconfigure(cfg Config) {
	if z.arena != nil {
		z.arena.Cancel()
	}
	z.cfg = cfg.Normalize()
	z.compose()
}

// SetCallbacks replaces the host callbacks.
func (z *Zoomable) SetCallbacks(callbacks Callbacks) {
	z.callbacks = callbacks
}

// SetInput attaches a live pointer source polled by Update.
func (z *Zoomable) SetInput(src PointerSource) {
	z.input = src
}

// Interacting reports whether an interaction is open.
func (z *Zoomable) Interacting() bool {
	return z.tracker.active()
}

// Animating reports whether any channel is still animating.
func (z *Zoomable) Animating() bool {
	return z.state.animating()
}

// Transform returns the live transform values.
func (z *Zoomable) Transform() Transform {
	return z.state.snapshot()
}

// Matrix returns the content-to-screen affine matrix [a, b, c, d, tx, ty],
// where content coordinates are local to the container.
func (z *Zoomable) Matrix() [6]float64 {
	return transformMatrix(z.state.snapshot(), z.layout.Rect())
}

// ContentToScreen maps a container-local content point to the screen.
func (z *Zoomable) ContentToScreen(x, y float64) (float64, float64) {
	return transformPoint(z.Matrix(), x, y)
}

// ScreenToContent maps a screen point to container-local content
// coordinates.
func (z *Zoomable) ScreenToContent(x, y float64) (float64, float64) {
	return transformPoint(invertAffine(z.Matrix()), x, y)
}

// HandlePointer feeds one raw pointer event to the recognizers. The event
// is stamped with the Zoomable's clock.
func (z *Zoomable) HandlePointer(ev PointerEvent) {
	ev.Time = z.clock
	z.arena.HandlePointer(ev)
}

// Update advances one tick at the Ebitengine tick rate.
func (z *Zoomable) Update() {
	z.Advance(float32(1.0 / float64(ebiten.TPS())))
}

// Advance runs scripted steps, consumes queued or live input, expires tap
// windows and steps every animation by dt seconds.
func (z *Zoomable) Advance(dt float32) {
	if z.script != nil {
		z.script.step(z)
	}
	if !z.processInjectedInput() && z.input != nil {
		z.input.Poll(z)
	}
	z.clock += time.Duration(float64(dt) * float64(time.Second))
	z.arena.Tick(z.clock)
	z.state.update(dt)
}

func (z *Zoomable) interactionStarted(id InteractionID) {
	z.debugf("interaction %d start", id)
	if z.callbacks.OnInteractionStart != nil {
		z.callbacks.OnInteractionStart()
	}
	z.emit(ZoomEvent{Type: EventInteractionStart, InteractionID: id})
}

func (z *Zoomable) interactionEnded(id InteractionID) {
	z.debugf("interaction %d end", id)
	if z.callbacks.OnInteractionEnd != nil {
		z.callbacks.OnInteractionEnd()
	}
	z.emit(ZoomEvent{Type: EventInteractionEnd, InteractionID: id})
}

func (z *Zoomable) resetAnimationEnded(id InteractionID, finished bool, results map[Channel]ChannelResult) {
	z.debugf("settle %d finished=%v", id, finished)
	if z.callbacks.OnResetAnimationEnd != nil {
		z.callbacks.OnResetAnimationEnd(finished, results)
	}
	z.emit(ZoomEvent{
		Type:          EventResetAnimationEnd,
		InteractionID: id,
		Finished:      finished,
		Scale:         results[ChannelScale].Value,
	})
}
