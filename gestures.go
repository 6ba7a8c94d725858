package zoomable

// gestureSet holds the recognizers built for the current Config.
type gestureSet struct {
	pinch     *PinchRecognizer
	pan       *PanRecognizer
	singlePan *PanRecognizer
	doubleTap *TapRecognizer
	singleTap *TapRecognizer
	root      Gesture
}

// Recognizers exposes the recognizers built for the current Config.
// singlePan is nil unless both pan and double tap are enabled.
type Recognizers struct {
	Pinch     *PinchRecognizer
	Pan       *PanRecognizer
	SinglePan *PanRecognizer
	DoubleTap *TapRecognizer
	SingleTap *TapRecognizer
	// Root is the composed graph the arena arbitrates.
	Root Gesture
}

// Recognizers returns the live recognizer set.
func (z *Zoomable) Recognizers() Recognizers {
	return Recognizers{
		Pinch:     z.gs.pinch,
		Pan:       z.gs.pan,
		SinglePan: z.gs.singlePan,
		DoubleTap: z.gs.doubleTap,
		SingleTap: z.gs.singleTap,
		Root:      z.gs.root,
	}
}

// compose builds the recognizer graph:
//
//	taps disabled: Simultaneous(pinch, pan)
//	taps enabled:  Race(Simultaneous(pinch, pan), singlePan, Exclusive(doubleTap, singleTap))
//
// The single-finger pan only exists in continuous-zoom mode and fails at
// touch-down unless the surface is zoomed in.
func (z *Zoomable) compose() {
	cfg := z.cfg
	var gs gestureSet

	gs.pinch = NewPinchRecognizer()
	gs.pinch.SetEnabled(cfg.IsPinchEnabled)
	gs.pinch.OnStart = z.pinchStart
	gs.pinch.OnUpdate = z.pinchUpdate
	gs.pinch.OnEnd = z.pinchEnd

	minPan, maxPan := cfg.MinPanPointers, cfg.MaxPanPointers
	withSinglePan := cfg.IsDoubleTapEnabled && cfg.IsPanEnabled
	if withSinglePan && minPan < 2 {
		minPan = 2
		if maxPan < minPan {
			maxPan = minPan
		}
	}
	gs.pan = NewPanRecognizer(minPan, maxPan)
	gs.pan.SetEnabled(cfg.IsPanEnabled)
	gs.pan.OnStart = z.panStart
	gs.pan.OnUpdate = z.panUpdate
	gs.pan.OnEnd = z.panEnd

	simultaneous := Simultaneous(gs.pinch, gs.pan)
	gs.root = simultaneous

	if cfg.IsSingleTapEnabled || cfg.IsDoubleTapEnabled {
		gs.doubleTap = NewTapRecognizer(2)
		gs.doubleTap.MaxDuration = cfg.DoubleTapWindow
		gs.doubleTap.MaxDelay = cfg.DoubleTapWindow
		gs.doubleTap.SetEnabled(cfg.IsDoubleTapEnabled)
		gs.doubleTap.OnTap = z.doubleTapped

		gs.singleTap = NewTapRecognizer(1)
		gs.singleTap.SetEnabled(cfg.IsSingleTapEnabled)
		gs.singleTap.OnTap = z.singleTapped

		taps := Exclusive(gs.doubleTap, gs.singleTap)
		if withSinglePan {
			gs.singlePan = NewPanRecognizer(1, 1)
			gs.singlePan.ShouldFail = func() bool { return z.state.scale() <= 1 }
			gs.singlePan.OnStart = z.panStart
			gs.singlePan.OnUpdate = z.panUpdate
			gs.singlePan.OnEnd = z.panEnd
			gs.root = Race(simultaneous, gs.singlePan, taps)
		} else {
			gs.root = Race(simultaneous, taps)
		}
	}

	z.gs = gs
	z.arena = NewArena(gs.root)
}

// --- Pan ---

func (z *Zoomable) panStart(e PanEvent) {
	z.tracker.panStarted(func() {
		z.state.set(ChannelTranslateX, z.state.get(ChannelTranslateX))
		z.state.set(ChannelTranslateY, z.state.get(ChannelTranslateY))
		z.state.saveTranslate()
	})
	if z.callbacks.OnPanStart != nil {
		z.callbacks.OnPanStart(e)
	}
	z.emit(ZoomEvent{Type: EventPanStart, TranslationX: e.TranslationX, TranslationY: e.TranslationY})
}

func (z *Zoomable) panUpdate(e PanEvent) {
	z.state.set(ChannelTranslateX, z.state.savedTranslate.X+e.TranslationX)
	z.state.set(ChannelTranslateY, z.state.savedTranslate.Y+e.TranslationY)
}

// panEnd either settles straight away or, when zoomed in with continuous
// zoom, lets each axis decay inside the boundary envelope and closes the pan
// once both axes have come to rest.
func (z *Zoomable) panEnd(e PanEvent) {
	if z.callbacks.OnPanEnd != nil {
		z.callbacks.OnPanEnd(e)
	}
	z.emit(ZoomEvent{Type: EventPanEnd, TranslationX: e.TranslationX, TranslationY: e.TranslationY, Cancelled: e.Cancelled})

	scale := z.state.scale()
	if e.Cancelled || !z.cfg.IsDoubleTapEnabled || scale <= 1 {
		z.tracker.panEnded(nil)
		return
	}

	focal := z.state.focal()
	remaining := 2
	settled := func(bool, float64) {
		remaining--
		if remaining == 0 {
			z.tracker.panEnded(nil)
		}
	}
	loX, hiX := decayBounds(z.layout.Width, scale, focal.X)
	loY, hiY := decayBounds(z.layout.Height, scale, focal.Y)
	z.state.ch[ChannelTranslateX].decayFrom(e.VelocityX, loX, hiX, settled)
	z.state.ch[ChannelTranslateY].decayFrom(e.VelocityY, loY, hiY, settled)
}

// --- Pinch ---

func (z *Zoomable) pinchStart(e PinchEvent) {
	z.tracker.pinchStarted(func() {
		for _, c := range [...]Channel{ChannelScale, ChannelFocalX, ChannelFocalY} {
			z.state.set(c, z.state.get(c))
		}
		z.state.savePinch(Vec2{X: e.FocalX, Y: e.FocalY})
	})
	if z.callbacks.OnPinchStart != nil {
		z.callbacks.OnPinchStart(e)
	}
	z.emit(ZoomEvent{Type: EventPinchStart, X: e.FocalX, Y: e.FocalY, Scale: z.state.scale()})
}

func (z *Zoomable) pinchUpdate(e PinchEvent) {
	s := z.state
	scale := clamp(s.savedScale*e.Scale, z.cfg.MinScale, z.cfg.MaxScale)
	delta := scale - s.savedScale
	s.set(ChannelScale, scale)
	s.set(ChannelFocalX, s.savedFocal.X+(z.layout.Center.X-s.initialFocal.X)*delta)
	s.set(ChannelFocalY, s.savedFocal.Y+(z.layout.Center.Y-s.initialFocal.Y)*delta)
}

func (z *Zoomable) pinchEnd(e PinchEvent) {
	z.tracker.pinchEnded(func() {
		z.state.initialFocal = Vec2{}
		if z.callbacks.OnPinchEnd != nil {
			z.callbacks.OnPinchEnd(e)
		}
		z.emit(ZoomEvent{Type: EventPinchEnd, X: e.FocalX, Y: e.FocalY, Scale: z.state.scale(), Cancelled: e.Cancelled})
	})
}

// --- Taps ---

// doubleTapped zooms in around the tap point from rest, or resets otherwise.
func (z *Zoomable) doubleTapped(e TapEvent) {
	if z.state.scale() == 1 {
		target := clamp(z.cfg.DoubleTapScale, z.cfg.MinScale, z.cfg.MaxScale)
		c := z.layout.Center
		z.animateTo(ChannelScale, target, nil)
		z.animateTo(ChannelFocalX, (c.X-e.X)*(target-1), nil)
		z.animateTo(ChannelFocalY, (c.Y-e.Y)*(target-1), nil)
		z.debugf("double tap zoom in to %.2f at (%.1f, %.1f)", target, e.X, e.Y)
		z.notifyDoubleTap(ZoomIn, e)
		return
	}
	z.Reset()
	z.debugf("double tap zoom out")
	z.notifyDoubleTap(ZoomOut, e)
}

func (z *Zoomable) notifyDoubleTap(zt ZoomType, e TapEvent) {
	if z.callbacks.OnDoubleTap != nil {
		z.callbacks.OnDoubleTap(zt)
	}
	z.emit(ZoomEvent{Type: EventDoubleTap, X: e.X, Y: e.Y, Zoom: zt, Scale: z.state.scale()})
}

func (z *Zoomable) singleTapped(e TapEvent) {
	if z.callbacks.OnSingleTap != nil {
		z.callbacks.OnSingleTap(e)
	}
	z.emit(ZoomEvent{Type: EventSingleTap, X: e.X, Y: e.Y})
}

func (z *Zoomable) animateTo(c Channel, target float64, done completion) {
	z.state.ch[c].animateTo(target, z.cfg.AnimationDuration, z.cfg.Easing, done)
}
