package spheres

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// fade eases presentation brightness from black to full over a duration.
type fade struct {
	tween *gween.Tween
	value float32
	done  bool
}

// newFade creates a fade lasting duration seconds. A non-positive duration
// starts fully bright.
func newFade(duration float32) *fade {
	if duration <= 0 {
		return &fade{value: 1, done: true}
	}
	return &fade{tween: gween.New(0, 1, duration, ease.OutQuad)}
}

// Update advances the fade by dt seconds.
func (f *fade) Update(dt float32) {
	if f.done {
		return
	}
	f.value, f.done = f.tween.Update(dt)
	if f.done {
		f.value = 1
	}
}

// Scale returns the current brightness in [0, 1].
func (f *fade) Scale() float32 {
	return f.value
}

// Done reports whether the fade has finished.
func (f *fade) Done() bool {
	return f.done
}
