package zoomable

import (
	"testing"
	"time"

	"github.com/tanema/gween/ease"
)

type completionRecord struct {
	calls    int
	finished bool
	value    float64
}

func (r *completionRecord) done(finished bool, value float64) {
	r.calls++
	r.finished = finished
	r.value = value
}

func TestChannelAnimateTo(t *testing.T) {
	var c channel
	var rec completionRecord
	c.animateTo(10, 100*time.Millisecond, ease.Linear, rec.done)
	if !c.animating() {
		t.Fatal("expected animating")
	}

	c.update(0.05)
	if !approxEqual(c.get(), 5, 1e-3) {
		t.Errorf("value at half time = %v, want 5", c.get())
	}
	if rec.calls != 0 {
		t.Error("completion should not fire mid-animation")
	}

	c.update(0.06)
	if c.get() != 10 {
		t.Errorf("value after end = %v, want exactly 10", c.get())
	}
	if rec.calls != 1 || !rec.finished || rec.value != 10 {
		t.Errorf("completion = %+v", rec)
	}
	if c.animating() {
		t.Error("should be idle after finishing")
	}
}

func TestChannelSetInterrupts(t *testing.T) {
	var c channel
	var rec completionRecord
	c.animateTo(10, 100*time.Millisecond, ease.Linear, rec.done)
	c.update(0.05)
	c.set(3)

	if rec.calls != 1 || rec.finished {
		t.Errorf("completion = %+v, want one unfinished call", rec)
	}
	if c.get() != 3 || c.animating() {
		t.Errorf("value = %v animating = %v", c.get(), c.animating())
	}
}

func TestChannelAnimateOverAnimation(t *testing.T) {
	var c channel
	var first, second completionRecord
	c.animateTo(10, 100*time.Millisecond, ease.Linear, first.done)
	c.animateTo(-10, 100*time.Millisecond, ease.Linear, second.done)
	if first.calls != 1 || first.finished {
		t.Errorf("first = %+v, want interrupted", first)
	}
	for i := 0; i < 10; i++ {
		c.update(0.02)
	}
	if second.calls != 1 || !second.finished || c.get() != -10 {
		t.Errorf("second = %+v value = %v", second, c.get())
	}
}

func TestChannelDefaultEasing(t *testing.T) {
	var c channel
	c.animateTo(1, 10*time.Millisecond, nil, nil)
	c.update(0.1)
	if c.get() != 1 {
		t.Errorf("value = %v, want 1", c.get())
	}
}

func TestChannelSinkMayRestart(t *testing.T) {
	var c channel
	restarted := false
	c.animateTo(1, 10*time.Millisecond, ease.Linear, func(bool, float64) {
		restarted = true
		c.animateTo(2, 10*time.Millisecond, ease.Linear, nil)
	})
	c.update(0.02)
	if !restarted || !c.animating() {
		t.Error("sink should be able to start a new animation")
	}
}

func TestChannelDecayFree(t *testing.T) {
	var c channel
	var rec completionRecord
	c.decayFrom(1000, -1e9, 1e9, rec.done)
	for i := 0; i < 600 && rec.calls == 0; i++ {
		c.update(frameDT)
	}
	if rec.calls != 1 || !rec.finished {
		t.Fatalf("completion = %+v", rec)
	}
	// Total travel is v0 / -k, about 499.5.
	if !approxEqual(c.get(), -1000/decayK, 1) {
		t.Errorf("rest position = %v, want ~%v", c.get(), -1000/decayK)
	}
}

func TestChannelDecayClamped(t *testing.T) {
	var c channel
	var rec completionRecord
	c.decayFrom(1000, -10, 50, rec.done)
	for i := 0; i < 600 && rec.calls == 0; i++ {
		c.update(frameDT)
	}
	if !rec.finished || c.get() != 50 {
		t.Errorf("value = %v completion = %+v, want 50", c.get(), rec)
	}
}

func TestChannelDecayStartsInsideBounds(t *testing.T) {
	var c channel
	c.set(100)
	var rec completionRecord
	c.decayFrom(0, -50, 50, rec.done)
	c.update(frameDT)
	if c.get() != 50 || rec.calls != 1 {
		t.Errorf("value = %v calls = %d", c.get(), rec.calls)
	}
}
