package zoomable

// ZoomRequest asks for a programmatic zoom to Scale with the container-local
// point (X, Y) brought to the visual centre.
type ZoomRequest struct {
	Scale float64
	X, Y  float64
}

// ContainerInfo is the container part of an Info snapshot.
type ContainerInfo struct {
	X, Y, Width, Height float64
	Center              Vec2
}

// Info is a read-only snapshot of the container and the current transform.
type Info struct {
	Container ContainerInfo
	// ScaledSize is the content size after scaling.
	ScaledSize Size
	// VisibleArea is the part of the scaled content that is inside the
	// container, in scaled-content coordinates.
	VisibleArea Rect
	Transform   Transform
}

// Reset animates every channel back to rest (scale 1, no focal offset, no
// translation). It may be called at any time: mid-gesture it interrupts the
// running values, at rest it animates to the values already held.
func (z *Zoomable) Reset() {
	z.reset(z.settleID())
}

// Zoom animates to req.Scale (clamped to the configured range) so that the
// container-local point (req.X, req.Y) ends up at the visual centre. A scale
// of 1 or less resets instead.
func (z *Zoomable) Zoom(req ZoomRequest) {
	if req.Scale <= 1 || !finite(req.Scale) {
		z.Reset()
		z.notifyProgrammaticZoom(ZoomOut, req)
		return
	}

	scale := clamp(req.Scale, z.cfg.MinScale, z.cfg.MaxScale)
	c := z.layout.Center
	px := z.layout.X + req.X
	py := z.layout.Y + req.Y

	z.state.clearShadows()
	z.animateTo(ChannelScale, scale, nil)
	z.animateTo(ChannelFocalX, (c.X-px)*scale, nil)
	z.animateTo(ChannelFocalY, (c.Y-py)*scale, nil)
	z.animateTo(ChannelTranslateX, 0, nil)
	z.animateTo(ChannelTranslateY, 0, nil)
	z.debugf("zoom to %.2f at (%.1f, %.1f)", scale, req.X, req.Y)
	z.notifyProgrammaticZoom(ZoomIn, req)
}

func (z *Zoomable) notifyProgrammaticZoom(zt ZoomType, req ZoomRequest) {
	if z.callbacks.OnProgrammaticZoom != nil {
		z.callbacks.OnProgrammaticZoom(zt)
	}
	z.emit(ZoomEvent{Type: EventProgrammaticZoom, X: req.X, Y: req.Y, Scale: req.Scale, Zoom: zt})
}

// Info returns the container rect, the scaled content size, the visible
// part of the scaled content and the raw transform. It never mutates state.
func (z *Zoomable) Info() Info {
	t := z.state.snapshot()
	l := z.layout
	scaledW := l.Width * t.Scale
	scaledH := l.Height * t.Scale
	off := t.Offset()

	x0 := clamp(limitRight(l.Width, t.Scale)-off.X, 0, scaledW)
	y0 := clamp(limitBottom(l.Height, t.Scale)-off.Y, 0, scaledH)
	x1 := clamp(x0+l.Width, x0, scaledW)
	y1 := clamp(y0+l.Height, y0, scaledH)

	return Info{
		Container: ContainerInfo{
			X: l.X, Y: l.Y, Width: l.Width, Height: l.Height,
			Center: l.Center,
		},
		ScaledSize:  Size{Width: scaledW, Height: scaledH},
		VisibleArea: Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0},
		Transform:   t,
	}
}

// settleID picks the id a settle animation is tracked under: the open
// interaction's id, or a fresh one outside an interaction.
func (z *Zoomable) settleID() InteractionID {
	if id := z.tracker.id(); id != 0 {
		return id
	}
	return z.tracker.nextID()
}

// settle runs when an interaction ends. Continuous-zoom mode keeps the zoom
// and only pulls the content back inside the envelope.
func (z *Zoomable) settle(id InteractionID) {
	if z.cfg.IsDoubleTapEnabled {
		z.snapIntoView(id)
		return
	}
	z.reset(id)
}

// beginSettle supersedes any earlier settle and opens a bucket for id.
// Running animations are interrupted first, so an earlier bucket still open
// receives its remaining completions as unfinished and reports under its
// own id before the new bucket exists.
func (z *Zoomable) beginSettle(id InteractionID) {
	for _, c := range Channels {
		z.state.ch[c].interrupt()
	}
	z.animEnd.track(id)
}

func (z *Zoomable) reset(id InteractionID) {
	z.debugf("reset %d", id)
	z.beginSettle(id)
	z.state.clearShadows()
	z.animateAll(id, restTransform)
}

// snapIntoView animates the content back inside the boundary envelope, or
// resets when not zoomed in. Every channel is animated, in-range ones to the
// value they already hold, so the settle always reports five completions.
func (z *Zoomable) snapIntoView(id InteractionID) {
	t := z.state.snapshot()
	if t.Scale <= 1 {
		z.reset(id)
		return
	}
	z.debugf("snap %d", id)
	target := snapTargets(t, z.layout.Size())
	z.beginSettle(id)
	z.animateAll(id, target)
}

func (z *Zoomable) animateAll(id InteractionID, t Transform) {
	targets := [channelCount]float64{
		ChannelScale:      t.Scale,
		ChannelFocalX:     t.Focal.X,
		ChannelFocalY:     t.Focal.Y,
		ChannelTranslateX: t.Translate.X,
		ChannelTranslateY: t.Translate.Y,
	}
	for _, c := range Channels {
		z.animateTo(c, targets[c], z.animEnd.sink(id, c))
	}
}
