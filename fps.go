package spheres

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// overlayRefresh is how often, in seconds, the overlay text is redrawn.
const overlayRefresh = 0.5

// fpsOverlay displays FPS, TPS and the current frame index.
type fpsOverlay struct {
	img     *ebiten.Image
	elapsed float64
	text    string
}

func newFPSOverlay() *fpsOverlay {
	// 120x48 is enough for three lines of debug text.
	return &fpsOverlay{img: ebiten.NewImage(120, 48)}
}

// update refreshes the text roughly every overlayRefresh seconds.
func (o *fpsOverlay) update(dt float64, frame uint32) {
	o.elapsed += dt
	if o.text != "" && o.elapsed < overlayRefresh {
		return
	}
	o.elapsed = 0
	o.text = overlayText(ebiten.ActualFPS(), ebiten.ActualTPS(), frame)

	o.img.Clear()
	// Semi-transparent background for readability
	o.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(o.img, o.text)
}

func (o *fpsOverlay) draw(screen *ebiten.Image) {
	screen.DrawImage(o.img, nil)
}

func overlayText(fps, tps float64, frame uint32) string {
	return fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nFrame: %d", fps, tps, frame)
}
