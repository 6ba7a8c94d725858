package zoomable

// Transform is a snapshot of the five transform channels. The rendered
// transform applies Translate, then Focal, then Scale about the container
// centre.
type Transform struct {
	Scale     float64
	Focal     Vec2
	Translate Vec2
}

// Offset returns the total translation, Translate + Focal.
func (t Transform) Offset() Vec2 {
	return Vec2{X: t.Translate.X + t.Focal.X, Y: t.Translate.Y + t.Focal.Y}
}

// restTransform is the identity state every reset animates back to.
var restTransform = Transform{Scale: 1}

// transformState owns the live channels plus the shadows captured at gesture
// start, so that a new gesture composes onto the settled value instead of
// replacing it.
type transformState struct {
	ch [channelCount]channel

	savedScale     float64
	savedFocal     Vec2
	savedTranslate Vec2
	initialFocal   Vec2
}

func newTransformState() *transformState {
	s := &transformState{savedScale: 1}
	s.ch[ChannelScale].value = 1
	return s
}

func (s *transformState) get(c Channel) float64 {
	return s.ch[c].get()
}

func (s *transformState) set(c Channel, v float64) {
	s.ch[c].set(v)
}

func (s *transformState) scale() float64 {
	return s.ch[ChannelScale].get()
}

func (s *transformState) focal() Vec2 {
	return Vec2{X: s.ch[ChannelFocalX].get(), Y: s.ch[ChannelFocalY].get()}
}

func (s *transformState) translate() Vec2 {
	return Vec2{X: s.ch[ChannelTranslateX].get(), Y: s.ch[ChannelTranslateY].get()}
}

func (s *transformState) snapshot() Transform {
	return Transform{Scale: s.scale(), Focal: s.focal(), Translate: s.translate()}
}

// saveTranslate captures the translate shadow at pan start.
func (s *transformState) saveTranslate() {
	s.savedTranslate = s.translate()
}

// savePinch captures the scale and focal shadows and the pinch origin.
func (s *transformState) savePinch(origin Vec2) {
	s.savedScale = s.scale()
	s.savedFocal = s.focal()
	s.initialFocal = origin
}

// clearShadows returns every shadow to its rest value.
func (s *transformState) clearShadows() {
	s.savedScale = 1
	s.savedFocal = Vec2{}
	s.savedTranslate = Vec2{}
	s.initialFocal = Vec2{}
}

func (s *transformState) animating() bool {
	for i := range s.ch {
		if s.ch[i].animating() {
			return true
		}
	}
	return false
}

func (s *transformState) update(dt float32) {
	for i := range s.ch {
		s.ch[i].update(dt)
	}
}
