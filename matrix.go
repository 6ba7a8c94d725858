package zoomable

// identityMatrix is the identity affine matrix.
var identityMatrix = [6]float64{1, 0, 0, 1, 0, 0}

// transformMatrix computes the content-to-screen affine matrix for t inside
// the container rect. Content coordinates are container-local, with (0, 0)
// at the container's top-left corner.
//
// Composition:
//
//	Translate(-w/2, -h/2) -> Scale(s) -> Translate(w/2, h/2) -> Translate(focal) -> Translate(translate) -> Translate(rect.X, rect.Y)
//
// Matrix layout: [a, b, c, d, tx, ty]
//
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func transformMatrix(t Transform, rect Rect) [6]float64 {
	hw := rect.Width / 2
	hh := rect.Height / 2
	off := t.Offset()
	s := t.Scale
	return [6]float64{
		s, 0, 0, s,
		rect.X + hw + off.X - s*hw,
		rect.Y + hh + off.Y - s*hh,
	}
}

// multiplyAffine multiplies two 2D affine matrices: result = p * c.
func multiplyAffine(p, c [6]float64) [6]float64 {
	return [6]float64{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// invertAffine computes the inverse of a 2D affine matrix.
// Returns the identity matrix if the matrix is singular (determinant ~ 0).
func invertAffine(m [6]float64) [6]float64 {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return identityMatrix
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return [6]float64{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}
