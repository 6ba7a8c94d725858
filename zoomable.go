package zoomable

import "math"

// Vec2 is a 2D vector used for points, offsets and sizes throughout the API.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Size is a width/height pair.
type Size struct {
	Width, Height float64
}

// ZoomType tags a zoom notification as zooming in or out.
type ZoomType uint8

const (
	ZoomIn  ZoomType = iota // the surface was zoomed in
	ZoomOut                 // the surface was reset to rest
)

func (z ZoomType) String() string {
	switch z {
	case ZoomIn:
		return "ZOOM_IN"
	case ZoomOut:
		return "ZOOM_OUT"
	default:
		return "UNKNOWN"
	}
}

// Channel names one of the five independently animated transform values.
type Channel uint8

const (
	ChannelScale      Channel = iota // scale factor
	ChannelFocalX                    // focal correction, x
	ChannelFocalY                    // focal correction, y
	ChannelTranslateX                // pan translation, x
	ChannelTranslateY                // pan translation, y

	channelCount = 5
)

// Channels lists every transform channel in a stable order.
var Channels = [channelCount]Channel{
	ChannelScale, ChannelFocalX, ChannelFocalY, ChannelTranslateX, ChannelTranslateY,
}

func (c Channel) String() string {
	switch c {
	case ChannelScale:
		return "SCALE"
	case ChannelFocalX:
		return "FOCAL_X"
	case ChannelFocalY:
		return "FOCAL_Y"
	case ChannelTranslateX:
		return "TRANSLATE_X"
	case ChannelTranslateY:
		return "TRANSLATE_Y"
	default:
		return "UNKNOWN"
	}
}

// EventType identifies a kind of zoom event delivered to an EventSink.
type EventType uint8

const (
	EventInteractionStart EventType = iota // first gesture of an interaction began
	EventInteractionEnd                    // last gesture of an interaction ended
	EventPinchStart                        // pinch recognizer activated
	EventPinchEnd                          // pinch recognizer ended or was cancelled
	EventPanStart                          // a pan recognizer activated
	EventPanEnd                            // a pan recognizer ended or was cancelled
	EventSingleTap                         // single tap recognized
	EventDoubleTap                         // double tap recognized
	EventProgrammaticZoom                  // Zoom was called
	EventResetAnimationEnd                 // all channels of a settle animation finished
	EventLayout                            // container layout changed
)

// clamp restricts v to [lo, hi]. An inverted range collapses to lo so the
// result is always finite when the bounds are.
func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		hi = lo
	}
	return math.Max(lo, math.Min(v, hi))
}
