package zoomable

import "github.com/hajimehoshi/ebiten/v2"

// GeoM returns the content-to-screen transform as an ebiten.GeoM. Content
// coordinates are local to the container.
func (z *Zoomable) GeoM() ebiten.GeoM {
	return geoMFromAffine(z.Matrix())
}

// DrawImage draws img stretched over the container with the live transform
// applied. op may be nil; its GeoM is appended after the container fit, so
// callers can use it for device scaling.
func (z *Zoomable) DrawImage(dst, img *ebiten.Image, op *ebiten.DrawImageOptions) {
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 || z.layout.Width == 0 || z.layout.Height == 0 {
		return
	}
	fit := [6]float64{
		z.layout.Width / float64(b.Dx()), 0,
		0, z.layout.Height / float64(b.Dy()),
		0, 0,
	}
	m := multiplyAffine(z.Matrix(), fit)

	opts := &ebiten.DrawImageOptions{}
	if op != nil {
		*opts = *op
	}
	extra := opts.GeoM
	opts.GeoM = geoMFromAffine(m)
	opts.GeoM.Concat(extra)
	dst.DrawImage(img, opts)
}

// geoMFromAffine converts [a, b, c, d, tx, ty] into an ebiten.GeoM.
func geoMFromAffine(m [6]float64) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(1, 0, m[1])
	g.SetElement(0, 1, m[2])
	g.SetElement(1, 1, m[3])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 2, m[5])
	return g
}
