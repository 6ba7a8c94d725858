package ecs

import (
	"github.com/phanxgames/zoomable"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// ZoomEventType is the Donburi event type for zoomable notifications.
var ZoomEventType = events.NewEventType[zoomable.ZoomEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Events are
// queued on ZoomEventType and delivered by ProcessEvents.
func NewDonburiSink(world donburi.World) zoomable.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event zoomable.ZoomEvent) {
	ZoomEventType.Publish(s.world, event)
}
