package zoomable

// Layout is the container rectangle as last reported by the host, plus its
// derived centre.
type Layout struct {
	X, Y, Width, Height float64
	Center              Vec2
}

// Rect returns the layout as a Rect.
func (l Layout) Rect() Rect {
	return Rect{X: l.X, Y: l.Y, Width: l.Width, Height: l.Height}
}

// Size returns the container dimensions.
func (l Layout) Size() Size {
	return Size{Width: l.Width, Height: l.Height}
}

// newLayout derives a Layout from rect. Negative dimensions are treated as
// zero, which collapses the boundary envelope instead of inverting it.
func newLayout(rect Rect) Layout {
	if rect.Width < 0 || !finite(rect.Width) {
		rect.Width = 0
	}
	if rect.Height < 0 || !finite(rect.Height) {
		rect.Height = 0
	}
	return Layout{
		X:      rect.X,
		Y:      rect.Y,
		Width:  rect.Width,
		Height: rect.Height,
		Center: rect.Center(),
	}
}

// OnLayout records a new container rectangle and forwards it to the host's
// OnLayout callback.
func (z *Zoomable) OnLayout(rect Rect) {
	z.layout = newLayout(rect)
	if z.callbacks.OnLayout != nil {
		z.callbacks.OnLayout(rect)
	}
	z.emit(ZoomEvent{Type: EventLayout, Layout: z.layout.Rect()})
}

// Layout returns the last reported container layout.
func (z *Zoomable) Layout() Layout {
	return z.layout
}
