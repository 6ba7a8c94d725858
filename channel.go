package zoomable

import (
	"math"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// completion receives the outcome of a channel animation. finished is false
// when the animation was interrupted by a write or a newer animation.
type completion func(finished bool, value float64)

// Exponential drag used for inertial pan: v(t) = v0 * 0.998^ms.
var decayK = 1000 * math.Log(0.998)

// decayVelocityEpsilon is the speed in px/s below which a decay comes to rest.
const decayVelocityEpsilon = 1.0

// decayAnim integrates a point mass with drag proportional to velocity,
// clamped to [lo, hi]. Given x(0) = origin and x'(0) = v0:
//
//	x(t) = origin + v0*(e^(k*t) - 1)/k
//	x'(t) = v0*e^(k*t)
type decayAnim struct {
	origin, v0 float64
	lo, hi     float64
	t          float64
}

func (d *decayAnim) step(dt float64) (float64, bool) {
	d.t += dt
	ekt := math.Exp(decayK * d.t)
	x := d.origin + d.v0*(ekt-1)/decayK
	if x <= d.lo {
		return d.lo, true
	}
	if x >= d.hi {
		return d.hi, true
	}
	v := d.v0 * ekt
	return x, v < decayVelocityEpsilon && v > -decayVelocityEpsilon
}

// channel is a single animatable scalar: a value that can be written
// synchronously, eased toward a target with a gween tween, or left to decay.
// At most one animation runs at a time; starting another, or writing the
// value, interrupts the running one and reports finished=false to its sink.
type channel struct {
	value  float64
	target float64
	tween  *gween.Tween
	decay  *decayAnim
	done   completion
}

func (c *channel) get() float64 {
	return c.value
}

// set writes v immediately, interrupting any running animation.
func (c *channel) set(v float64) {
	c.interrupt()
	c.value = v
}

// animateTo eases the channel from its current value to target.
func (c *channel) animateTo(target float64, d time.Duration, fn ease.TweenFunc, done completion) {
	c.interrupt()
	if fn == nil {
		fn = ease.OutQuad
	}
	c.target = target
	c.tween = gween.New(float32(c.value), float32(target), float32(d.Seconds()), fn)
	c.done = done
}

// decayFrom starts an inertial decay at velocity (px/s) clamped to [lo, hi].
func (c *channel) decayFrom(velocity, lo, hi float64, done completion) {
	c.interrupt()
	if hi < lo {
		hi = lo
	}
	c.decay = &decayAnim{origin: clamp(c.value, lo, hi), v0: velocity, lo: lo, hi: hi}
	c.done = done
}

func (c *channel) animating() bool {
	return c.tween != nil || c.decay != nil
}

func (c *channel) interrupt() {
	if c.animating() {
		c.finish(false)
	}
}

// finish clears the animation before invoking the sink so the sink may
// start a new animation on the same channel.
func (c *channel) finish(finished bool) {
	done := c.done
	c.tween = nil
	c.decay = nil
	c.done = nil
	if done != nil {
		done(finished, c.value)
	}
}

// update advances the running animation by dt seconds.
func (c *channel) update(dt float32) {
	switch {
	case c.tween != nil:
		val, fin := c.tween.Update(dt)
		if fin {
			c.value = c.target
			c.finish(true)
			return
		}
		c.value = float64(val)
	case c.decay != nil:
		val, fin := c.decay.step(float64(dt))
		c.value = val
		if fin {
			c.finish(true)
		}
	}
}
