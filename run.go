package spheres

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// RunConfig configures the window and loop started by Run.
type RunConfig struct {
	// Title is the window title. Defaults to "Spheres".
	Title string
	// Width and Height are the initial window size and the size of the
	// rendered pixel buffer. Default 640x480.
	Width, Height int
	// ShowFPS draws an FPS/TPS/frame overlay in the top-left corner.
	ShowFPS bool
	// FadeIn is the startup fade from black in seconds. Zero uses the
	// default of one second; negative disables the fade.
	FadeIn float32
	// ScreenshotDir is where F12 and script screenshots are written.
	// Defaults to "screenshots".
	ScreenshotDir string
	// Script, if set, is stepped once per frame after each tick.
	Script *FrameScript
	// Logger receives errors. Defaults to a stderr logger.
	Logger Logger
}

const (
	defaultTitle         = "Spheres"
	defaultWidth         = 640
	defaultHeight        = 480
	defaultFadeIn        = 1.0
	defaultScreenshotDir = "screenshots"
)

// withDefaults fills zero fields with their defaults.
func (c RunConfig) withDefaults() RunConfig {
	if c.Title == "" {
		c.Title = defaultTitle
	}
	if c.Width <= 0 {
		c.Width = defaultWidth
	}
	if c.Height <= 0 {
		c.Height = defaultHeight
	}
	if c.FadeIn == 0 {
		c.FadeIn = defaultFadeIn
	}
	if c.ScreenshotDir == "" {
		c.ScreenshotDir = defaultScreenshotDir
	}
	if c.Logger == nil {
		c.Logger = NewStderrLogger()
	}
	return c
}

// game adapts a World to ebiten.Game. The pixel buffer has a fixed size;
// Ebitengine scales it to the window when the window is resized.
type game struct {
	world   *World
	cfg     RunConfig
	pix     []byte
	frame   *ebiten.Image
	fade    *fade
	overlay *fpsOverlay
	shots   []string
}

func newGame(w *World, cfg RunConfig) *game {
	g := &game{
		world: w,
		cfg:   cfg,
		pix:   make([]byte, cfg.Width*cfg.Height*4),
		frame: ebiten.NewImage(cfg.Width, cfg.Height),
		fade:  newFade(cfg.FadeIn),
	}
	if cfg.ShowFPS {
		g.overlay = newFPSOverlay()
	}
	return g
}

// Screenshot queues a capture of the next drawn frame.
func (g *game) Screenshot(label string) {
	g.shots = append(g.shots, label)
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		g.Screenshot("manual")
	}

	g.world.Tick()
	if g.cfg.Script != nil {
		g.cfg.Script.step(g)
	}

	dt := frameDelta()
	g.fade.Update(float32(dt))
	if g.overlay != nil {
		g.overlay.update(dt, g.world.Frame)
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.world.Draw(g.pix, g.cfg.Width, g.cfg.Height)
	g.flushScreenshots()
	g.frame.WritePixels(g.pix)

	op := &ebiten.DrawImageOptions{}
	s := g.fade.Scale()
	op.ColorScale.Scale(s, s, s, 1)
	screen.DrawImage(g.frame, op)

	if g.overlay != nil {
		g.overlay.draw(screen)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// frameDelta returns the seconds covered by one Update. With TPS synced
// to the display, the measured FPS stands in; 60 is assumed until one is
// available.
func frameDelta() float64 {
	if tps := ebiten.TPS(); tps > 0 {
		return 1.0 / float64(tps)
	}
	if fps := ebiten.ActualFPS(); fps > 0 {
		return 1.0 / fps
	}
	return 1.0 / 60
}

// flushScreenshots writes the current buffer once per queued label.
func (g *game) flushScreenshots() {
	for _, label := range g.shots {
		path, err := SavePNG(g.cfg.ScreenshotDir, label, g.world.Frame, g.pix, g.cfg.Width, g.cfg.Height)
		if err != nil {
			logError(g.cfg.Logger, "SavePNG", err)
			continue
		}
		g.cfg.Logger.Infof("screenshot saved to %s", path)
	}
	g.shots = g.shots[:0]
}

// configureLoop applies window settings and pairs every Update with one
// Draw, so each tick is rendered exactly once.
func configureLoop(cfg RunConfig) {
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowSizeLimits(cfg.Width, cfg.Height, -1, -1)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(ebiten.SyncWithFPS)
}

// Run opens a resizable window and animates w until Escape is pressed or
// the window is closed. It calls w.Tick then w.Draw once per frame.
// Errors from the game loop are logged and returned.
func Run(w *World, cfg RunConfig) error {
	cfg = cfg.withDefaults()
	configureLoop(cfg)

	if err := ebiten.RunGame(newGame(w, cfg)); err != nil && !errors.Is(err, ebiten.Termination) {
		err = fmt.Errorf("run game: %w", err)
		logError(cfg.Logger, "ebiten.RunGame", err)
		return err
	}
	return nil
}
