// Package zoomable turns pinch, pan and tap gestures on a rectangular surface
// into a continuously updated zoom transform for [Ebitengine] games.
//
// A [Zoomable] owns five animated channels (scale, focal x/y, translate
// x/y), a small gesture arena that arbitrates pinch, pan and tap
// recognizers, and the bookkeeping that folds overlapping gestures into one
// interaction with one start and one end.
//
// # Quick start
//
//	z := zoomable.New(zoomable.DefaultConfig(), zoomable.Callbacks{
//		OnDoubleTap: func(t zoomable.ZoomType) { log.Println(t) },
//	})
//	z.OnLayout(zoomable.Rect{Width: 640, Height: 480})
//	z.SetInput(zoomable.NewEbitenInput())
//
//	func (g *Game) Update() error        { g.z.Update(); return nil }
//	func (g *Game) Draw(s *ebiten.Image) { g.z.DrawImage(s, g.content, nil) }
//
// # Transform
//
// The rendered transform scales the content about the container centre,
// then offsets it by Focal + Translate. [Zoomable.Matrix] and
// [Zoomable.GeoM] expose it as an affine matrix; [Zoomable.ScreenToContent]
// maps pointer positions back into content coordinates.
//
// # Modes
//
// With double tap disabled (the default) every interaction springs back to
// rest when it ends. With double tap enabled the surface keeps its zoom, a
// one-finger pan moves the zoomed content with inertia, and the end of an
// interaction only pulls the content back inside the container.
//
// # Programmatic control
//
// [Zoomable.Zoom] animates to a scale around a point, [Zoomable.Reset]
// returns to rest, and [Zoomable.Info] reports the visible area. Settle
// animations report once through Callbacks.OnResetAnimationEnd.
//
// # Configuration
//
// [Config] can be built in code or loaded from YAML with [LoadConfig]:
//
//	minScale: 1
//	maxScale: 4
//	doubleTapScale: 2.5
//	isDoubleTapEnabled: true
//	animationDuration: 250ms
//
// # Testing and automation
//
// [Zoomable.InjectTap], [Zoomable.InjectPan] and [Zoomable.InjectPinch]
// queue synthetic pointer frames, and [LoadScript] runs a YAML gesture
// script through them. [Zoomable.Advance] steps the simulation by an explicit
// delta, so tests run without a window.
//
// # ECS
//
// Every notification is also delivered as a [ZoomEvent] to an optional
// [EventSink]; the zoomable/ecs package publishes them into a [Donburi]
// world.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package zoomable
