package zoomable

// The boundary envelope is the legal range of total translation (translate +
// focal) at a given scale. Beyond it the scaled content would expose empty
// space inside the container.

// limitRight returns the largest legal x offset for width at scale.
func limitRight(width, scale float64) float64 {
	return width * (scale - 1) / 2
}

// limitLeft returns the smallest legal x offset for width at scale.
func limitLeft(width, scale float64) float64 {
	return -limitRight(width, scale)
}

// limitBottom returns the largest legal y offset for height at scale.
func limitBottom(height, scale float64) float64 {
	return height * (scale - 1) / 2
}

// limitTop returns the smallest legal y offset for height at scale.
func limitTop(height, scale float64) float64 {
	return -limitBottom(height, scale)
}

// axisCorrection is the settled target for one axis after snapping.
type axisCorrection struct {
	translate float64
	focal     float64
}

// snapAxis computes where translate and focal on one axis should settle.
// When the total offset leaves [lo, hi] the translate moves to the nearest
// edge and the focal contribution is zeroed; otherwise both stay put.
func snapAxis(translate, focal, lo, hi float64) axisCorrection {
	total := translate + focal
	switch {
	case total > hi:
		return axisCorrection{translate: hi, focal: 0}
	case total < lo:
		return axisCorrection{translate: lo, focal: 0}
	default:
		return axisCorrection{translate: translate, focal: focal}
	}
}

// snapTargets returns the rest target of every channel after snapping t into
// the envelope for a container of the given size. At scale <= 1 the target is
// the full rest state.
func snapTargets(t Transform, size Size) Transform {
	if t.Scale <= 1 {
		return restTransform
	}
	x := snapAxis(t.Translate.X, t.Focal.X, limitLeft(size.Width, t.Scale), limitRight(size.Width, t.Scale))
	y := snapAxis(t.Translate.Y, t.Focal.Y, limitTop(size.Height, t.Scale), limitBottom(size.Height, t.Scale))
	return Transform{
		Scale:     t.Scale,
		Focal:     Vec2{X: x.focal, Y: y.focal},
		Translate: Vec2{X: x.translate, Y: y.translate},
	}
}

// decayBounds returns the clamp range for translate on one axis during an
// inertial pan: the envelope shifted by the current focal value.
func decayBounds(extent, scale, focal float64) (lo, hi float64) {
	r := extent * (scale - 1) / 2
	return -r - focal, r - focal
}
