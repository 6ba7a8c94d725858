package zoomable

import (
	"math"
	"testing"
)

func TestResetAtRestReportsOnce(t *testing.T) {
	var log callbackLog
	z := newTestZoomable(DefaultConfig(), log.callbacks())

	z.Reset()
	if !z.Animating() {
		t.Fatal("reset should animate even at rest")
	}
	advance(z, 30)
	if len(log.resets) != 1 || !log.resets[0] {
		t.Errorf("resets = %v, want one finished", log.resets)
	}
	if len(log.lastResetInfo) != channelCount {
		t.Errorf("results = %v", log.lastResetInfo)
	}
}

func TestResetTwiceSupersedes(t *testing.T) {
	var log callbackLog
	z := newTestZoomable(DefaultConfig(), log.callbacks())
	z.state.set(ChannelScale, 3)

	sink := &recordingSink{}
	z.SetEventSink(sink)

	z.Reset()
	advance(z, 5)
	z.Reset()
	advance(z, 30)
	if len(log.resets) != 2 || log.resets[0] || !log.resets[1] {
		t.Errorf("resets = %v, want the first unfinished and the second finished", log.resets)
	}
	ends := settleEvents(sink)
	if len(ends) != 2 || ends[0].InteractionID == ends[1].InteractionID {
		t.Fatalf("settle events = %+v, want one per reset", ends)
	}
	if ends[1].InteractionID < ends[0].InteractionID || !ends[1].Finished {
		t.Errorf("settle events = %+v, want the later id to finish", ends)
	}
	if got := z.Transform(); got != restTransform {
		t.Errorf("transform = %+v", got)
	}
}

func settleEvents(s *recordingSink) []ZoomEvent {
	var out []ZoomEvent
	for _, ev := range s.events {
		if ev.Type == EventResetAnimationEnd {
			out = append(out, ev)
		}
	}
	return out
}

func TestOverlappingInteractionsReportBothSettles(t *testing.T) {
	var log callbackLog
	z := newTestZoomable(DefaultConfig(), log.callbacks())
	sink := &recordingSink{}
	z.SetEventSink(sink)
	z.state.set(ChannelScale, 3)

	z.panStart(PanEvent{})
	z.panEnd(PanEvent{})
	advance(z, 3)
	z.panStart(PanEvent{})
	z.panEnd(PanEvent{})
	advance(z, 60)

	if log.starts != 2 || log.ends != 2 {
		t.Fatalf("starts=%d ends=%d, want 2 each", log.starts, log.ends)
	}
	if len(log.resets) != 2 || log.resets[0] || !log.resets[1] {
		t.Fatalf("resets = %v, want [false true]", log.resets)
	}

	var started []InteractionID
	for _, ev := range sink.events {
		if ev.Type == EventInteractionStart {
			started = append(started, ev.InteractionID)
		}
	}
	ends := settleEvents(sink)
	if len(started) != 2 || len(ends) != 2 {
		t.Fatalf("started = %v, settles = %+v", started, ends)
	}
	for i := range ends {
		if ends[i].InteractionID != started[i] {
			t.Errorf("settle %d reported under id %d, want %d", i, ends[i].InteractionID, started[i])
		}
	}
}

func TestResetInterruptedByPinch(t *testing.T) {
	var log callbackLog
	z := newTestZoomable(DefaultConfig(), log.callbacks())
	z.state.set(ChannelScale, 3)

	z.Reset()
	advance(z, 5)
	// A pinch writes the scale and focal channels, interrupting the reset.
	z.pinchStart(PinchEvent{FocalX: 150, FocalY: 200})
	advance(z, 30)
	if len(log.resets) != 1 || log.resets[0] {
		t.Fatalf("resets = %v, want one unfinished report", log.resets)
	}
	if !log.lastResetInfo[ChannelTranslateX].Finished || log.lastResetInfo[ChannelScale].Finished {
		t.Errorf("results = %v", log.lastResetInfo)
	}

	z.pinchEnd(PinchEvent{})
	advance(z, 30)
	if len(log.resets) != 2 || !log.resets[1] {
		t.Errorf("resets = %v, want the settle after the pinch to finish", log.resets)
	}
}

func TestZoomCentresPoint(t *testing.T) {
	var log callbackLog
	z := newTestZoomable(DefaultConfig(), log.callbacks())

	z.Zoom(ZoomRequest{Scale: 2, X: 100, Y: 100})
	advance(z, 30)
	if len(log.programmatic) != 1 || log.programmatic[0] != ZoomIn {
		t.Fatalf("programmatic = %v", log.programmatic)
	}
	got := z.Transform()
	want := Transform{Scale: 2, Focal: Vec2{X: 100, Y: 200}}
	if got != want {
		t.Errorf("transform = %+v, want %+v", got, want)
	}
	x, y := z.ContentToScreen(100, 100)
	assertNear(t, "screen.x", x, 150)
	assertNear(t, "screen.y", y, 200)
}

func TestZoomResetRoundTrip(t *testing.T) {
	var log callbackLog
	z := newTestZoomable(DefaultConfig(), log.callbacks())

	z.Zoom(ZoomRequest{Scale: 4, X: 30, Y: 350})
	advance(z, 30)
	z.Reset()
	advance(z, 30)
	if got := z.Transform(); got != restTransform {
		t.Errorf("transform = %+v, want rest", got)
	}
	if len(log.resets) != 1 || !log.resets[0] {
		t.Errorf("resets = %v", log.resets)
	}
}

func TestZoomOutBelowOne(t *testing.T) {
	tests := []struct {
		name  string
		scale float64
	}{
		{"one", 1},
		{"below", 0.5},
		{"NaN", math.NaN()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var log callbackLog
			z := newTestZoomable(DefaultConfig(), log.callbacks())
			z.state.set(ChannelScale, 2)

			z.Zoom(ZoomRequest{Scale: tt.scale})
			advance(z, 30)
			if len(log.programmatic) != 1 || log.programmatic[0] != ZoomOut {
				t.Errorf("programmatic = %v", log.programmatic)
			}
			if z.Transform().Scale != 1 {
				t.Errorf("scale = %v", z.Transform().Scale)
			}
		})
	}
}

func TestZoomClampsScale(t *testing.T) {
	z := newTestZoomable(DefaultConfig(), Callbacks{})
	z.Zoom(ZoomRequest{Scale: 50, X: 150, Y: 200})
	advance(z, 30)
	if s := z.Transform().Scale; s != DefaultMaxScale {
		t.Errorf("scale = %v, want %v", s, DefaultMaxScale)
	}
}

func TestZoomHonoursContainerOrigin(t *testing.T) {
	z := New(DefaultConfig(), Callbacks{})
	z.OnLayout(Rect{X: 50, Y: 20, Width: 300, Height: 400})

	z.Zoom(ZoomRequest{Scale: 2, X: 100, Y: 100})
	advance(z, 30)
	x, y := z.ContentToScreen(100, 100)
	c := z.Layout().Center
	assertNear(t, "screen.x", x, c.X)
	assertNear(t, "screen.y", y, c.Y)
}

func TestInfo(t *testing.T) {
	z := newTestZoomable(DefaultConfig(), Callbacks{})

	info := z.Info()
	if info.VisibleArea != (Rect{Width: 300, Height: 400}) {
		t.Errorf("rest visible = %+v", info.VisibleArea)
	}

	z.state.set(ChannelScale, 2)
	info = z.Info()
	if info.ScaledSize != (Size{Width: 600, Height: 800}) {
		t.Errorf("scaled = %+v", info.ScaledSize)
	}
	if info.VisibleArea != (Rect{X: 150, Y: 200, Width: 300, Height: 400}) {
		t.Errorf("centred visible = %+v", info.VisibleArea)
	}

	z.state.set(ChannelTranslateX, 150)
	info = z.Info()
	if info.VisibleArea.X != 0 || info.VisibleArea.Width != 300 {
		t.Errorf("left edge visible = %+v", info.VisibleArea)
	}
	if info.Container.Center != (Vec2{X: 150, Y: 200}) || info.Transform.Translate.X != 150 {
		t.Errorf("info = %+v", info)
	}
}

func TestInfoDoesNotMutate(t *testing.T) {
	z := newTestZoomable(DefaultConfig(), Callbacks{})
	z.state.set(ChannelScale, 2)
	z.state.set(ChannelTranslateX, 500) // far outside the envelope
	before := z.Transform()
	_ = z.Info()
	if z.Transform() != before {
		t.Error("Info changed the transform")
	}
}
