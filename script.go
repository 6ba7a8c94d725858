package zoomable

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// scriptStep represents a single action in a gesture script.
type scriptStep struct {
	Action  string  `yaml:"action"`
	X       float64 `yaml:"x,omitempty"`
	Y       float64 `yaml:"y,omitempty"`
	FromX   float64 `yaml:"fromX,omitempty"`
	FromY   float64 `yaml:"fromY,omitempty"`
	ToX     float64 `yaml:"toX,omitempty"`
	ToY     float64 `yaml:"toY,omitempty"`
	Fingers int     `yaml:"fingers,omitempty"`
	From    float64 `yaml:"from,omitempty"`
	To      float64 `yaml:"to,omitempty"`
	Scale   float64 `yaml:"scale,omitempty"`
	Frames  int     `yaml:"frames,omitempty"`
}

// gestureScript is the top-level structure of a gesture script.
type gestureScript struct {
	Steps []scriptStep `yaml:"steps"`
}

var scriptActions = map[string]bool{
	"tap": true, "doubletap": true, "pan": true, "pinch": true,
	"wait": true, "reset": true, "zoom": true,
}

// ScriptRunner sequences injected gestures and programmatic calls across
// frames, for demos and automated checks. Attach to a Zoomable via
// SetScript.
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a YAML (or JSON) gesture script:
//
//	steps:
//	  - {action: doubletap, x: 120, y: 80}
//	  - {action: wait, frames: 30}
//	  - {action: pan, fingers: 1, fromX: 100, fromY: 100, toX: 40, toY: 100, frames: 10}
//	  - {action: pinch, x: 160, y: 120, from: 100, to: 200, frames: 12}
//	  - {action: zoom, scale: 3, x: 50, y: 50}
//	  - {action: reset}
func LoadScript(data []byte) (*ScriptRunner, error) {
	var script gestureScript
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("parse gesture script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse gesture script: no steps")
	}
	for i, st := range script.Steps {
		if !scriptActions[st.Action] {
			return nil, fmt.Errorf("parse gesture script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: script.Steps}, nil
}

// SetScript attaches a ScriptRunner. Its step method is called from Advance
// before input is processed each frame.
func (z *Zoomable) SetScript(runner *ScriptRunner) {
	z.script = runner
}

// Done reports whether all steps in the script have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame.
func (r *ScriptRunner) step(z *Zoomable) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(z.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "tap":
		z.InjectTap(st.X, st.Y)
	case "doubletap":
		z.InjectDoubleTap(st.X, st.Y)
	case "pan":
		z.InjectPan(st.Fingers, st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "pinch":
		z.InjectPinch(st.X, st.Y, st.From, st.To, st.Frames)
	case "zoom":
		z.Zoom(ZoomRequest{Scale: st.Scale, X: st.X, Y: st.Y})
	case "reset":
		z.Reset()
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(z.injectQueue) == 0 {
		r.done = true
	}
}
