package spheres

import (
	"encoding/json"
	"fmt"
)

// scriptStep is a single action in a frame script.
type scriptStep struct {
	Action string `json:"action"`
	Label  string `json:"label,omitempty"`
	Frames int    `json:"frames,omitempty"`
}

// frameScript is the top-level JSON structure of a frame script.
type frameScript struct {
	Steps []scriptStep `json:"steps"`
}

// screenshotter captures the current frame under a label.
type screenshotter interface {
	Screenshot(label string)
}

// FrameScript sequences waits and screenshots across animation frames.
// Attach it to the windowed viewer with RunConfig.Script, or play it
// headlessly with Play.
//
//	{"steps": [
//		{"action": "screenshot", "label": "start"},
//		{"action": "wait", "frames": 100},
//		{"action": "screenshot", "label": "later"}
//	]}
type FrameScript struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadFrameScript parses a JSON frame script.
func LoadFrameScript(jsonData []byte) (*FrameScript, error) {
	var script frameScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse frame script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse frame script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "screenshot", "wait":
		default:
			return nil, fmt.Errorf("parse frame script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &FrameScript{steps: script.Steps}, nil
}

// Done reports whether all steps have been executed.
func (s *FrameScript) Done() bool {
	return s.done
}

// step advances the script by one frame. Screenshots capture the world as
// it is when step runs.
func (s *FrameScript) step(target screenshotter) {
	if s.done {
		return
	}
	if s.waitCount > 0 {
		s.waitCount--
		return
	}
	if s.cursor >= len(s.steps) {
		s.done = true
		return
	}

	st := s.steps[s.cursor]
	s.cursor++

	switch st.Action {
	case "screenshot":
		target.Screenshot(st.Label)
	case "wait":
		if st.Frames > 0 {
			s.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if s.cursor >= len(s.steps) && s.waitCount == 0 {
		s.done = true
	}
}

// headlessTarget renders and saves screenshots immediately.
type headlessTarget struct {
	world         *World
	pix           []byte
	width, height int
	dir           string
	paths         []string
	err           error
}

func (h *headlessTarget) Screenshot(label string) {
	if h.err != nil {
		return
	}
	h.world.Draw(h.pix, h.width, h.height)
	path, err := SavePNG(h.dir, label, h.world.Frame, h.pix, h.width, h.height)
	if err != nil {
		h.err = err
		return
	}
	h.paths = append(h.paths, path)
}

// Play runs the script against w without a window, ticking w once per frame,
// and writes every screenshot as a width x height PNG under dir. It returns
// the written paths in order.
func (s *FrameScript) Play(w *World, width, height int, dir string) ([]string, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("play frame script: invalid size %dx%d", width, height)
	}
	target := &headlessTarget{
		world:  w,
		pix:    make([]byte, width*height*4),
		width:  width,
		height: height,
		dir:    dir,
	}
	for {
		s.step(target)
		if target.err != nil {
			return target.paths, fmt.Errorf("play frame script: %w", target.err)
		}
		if s.done {
			return target.paths, nil
		}
		w.Tick()
	}
}
