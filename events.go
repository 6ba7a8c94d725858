package zoomable

// Callbacks are the optional host hooks. Every hook runs after the state
// change it reports has been committed, so a panicking or re-entrant hook
// cannot observe a half-applied transform.
type Callbacks struct {
	OnInteractionStart func()
	OnInteractionEnd   func()
	OnPinchStart       func(PinchEvent)
	OnPinchEnd         func(PinchEvent)
	OnPanStart         func(PanEvent)
	OnPanEnd           func(PanEvent)
	OnSingleTap        func(TapEvent)
	OnDoubleTap        func(ZoomType)
	OnProgrammaticZoom func(ZoomType)
	// OnResetAnimationEnd fires once all five channels of a settle animation
	// have reported. finished is true only if none was interrupted.
	OnResetAnimationEnd func(finished bool, results map[Channel]ChannelResult)
	OnLayout            func(Rect)
}

// ZoomEvent mirrors a host callback for consumers that prefer an event
// stream, such as an ECS world. Fields that do not apply to Type are zero.
type ZoomEvent struct {
	Type          EventType
	InteractionID InteractionID
	X, Y          float64
	Scale         float64
	TranslationX  float64
	TranslationY  float64
	Zoom          ZoomType
	Finished      bool
	Cancelled     bool
	Layout        Rect
}

// EventSink receives a ZoomEvent for every notification. See the ecs
// sub-package for a Donburi-backed implementation.
type EventSink interface {
	EmitEvent(event ZoomEvent)
}

// SetEventSink attaches an event sink. Pass nil to detach.
func (z *Zoomable) SetEventSink(sink EventSink) {
	z.sink = sink
}

func (z *Zoomable) emit(ev ZoomEvent) {
	if z.sink == nil {
		return
	}
	if ev.InteractionID == 0 {
		ev.InteractionID = z.tracker.id()
	}
	z.sink.EmitEvent(ev)
}
