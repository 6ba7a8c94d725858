package zoomable

import (
	"math"
	"testing"
)

const frameDT = float32(1.0 / 60)

// newTestZoomable returns a Zoomable laid out over a 300x400 container at the
// origin, centre (150, 200).
func newTestZoomable(cfg Config, cb Callbacks) *Zoomable {
	z := New(cfg, cb)
	z.OnLayout(Rect{Width: 300, Height: 400})
	return z
}

func advance(z *Zoomable, frames int) {
	for i := 0; i < frames; i++ {
		z.Advance(frameDT)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name      string
		v, lo, hi float64
		want      float64
	}{
		{"inside", 2, 1, 3, 2},
		{"below", 0, 1, 3, 1},
		{"above", 5, 1, 3, 3},
		{"inverted above", 5, 3, 1, 3},
		{"inverted below", 0, 3, 1, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := clamp(tt.v, tt.lo, tt.hi); got != tt.want {
				t.Errorf("clamp(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
			}
		})
	}
}

func TestRectCenter(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 100, Height: 50}
	if c := r.Center(); c != (Vec2{X: 60, Y: 45}) {
		t.Errorf("Center = %+v", c)
	}
}

func TestEnumStrings(t *testing.T) {
	if ZoomIn.String() != "ZOOM_IN" || ZoomOut.String() != "ZOOM_OUT" {
		t.Errorf("ZoomType strings: %s, %s", ZoomIn, ZoomOut)
	}
	want := []string{"SCALE", "FOCAL_X", "FOCAL_Y", "TRANSLATE_X", "TRANSLATE_Y"}
	for i, c := range Channels {
		if c.String() != want[i] {
			t.Errorf("Channels[%d] = %s, want %s", i, c, want[i])
		}
	}
	if StatePending.String() != "pending" || PointerCancel.String() != "cancel" {
		t.Error("state strings")
	}
}

func TestNewAtRest(t *testing.T) {
	z := New(DefaultConfig(), Callbacks{})
	if got := z.Transform(); got != restTransform {
		t.Errorf("Transform = %+v, want rest", got)
	}
	if z.Interacting() || z.Animating() {
		t.Error("new Zoomable should be idle")
	}
}

func TestNewNormalizesConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxScale = math.NaN()
	z := New(cfg, Callbacks{})
	if z.Config().MaxScale != DefaultMaxScale {
		t.Errorf("MaxScale = %v, want %v", z.Config().MaxScale, DefaultMaxScale)
	}
}
