// Package ecs provides ECS adapters for zoomable's event stream.
//
// The primary adapter is [NewDonburiSink], which bridges zoomable
// notifications (interaction start/end, pinch, pan, taps, programmatic zoom,
// settle completion, layout) into a [Donburi] world as typed events.
// Subscribe to [ZoomEventType] in your ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	z.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
