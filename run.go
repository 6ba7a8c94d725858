package zoomable

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title         string
	Width, Height int
	// ShowFPS overlays the current FPS and TPS in the top-left corner.
	ShowFPS bool
	// ShowInfo overlays the current transform below the FPS counter.
	ShowInfo bool
	// Background fills the screen before the content is drawn.
	Background color.Color
}

// Run opens a window, lays z out over the whole screen and draws content
// through it until the window closes. Live mouse and touch input is attached
// unless the Zoomable already has a PointerSource.
func Run(z *Zoomable, content *ebiten.Image, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 640
	}
	if cfg.Height <= 0 {
		cfg.Height = 480
	}
	if z.input == nil {
		z.SetInput(NewEbitenInput())
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if err := ebiten.RunGame(&runGame{z: z, content: content, cfg: cfg}); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}

type runGame struct {
	z       *Zoomable
	content *ebiten.Image
	cfg     RunConfig
	w, h    int
}

func (g *runGame) Update() error {
	g.z.Update()
	return nil
}

func (g *runGame) Draw(screen *ebiten.Image) {
	if g.cfg.Background != nil {
		screen.Fill(g.cfg.Background)
	}
	if g.content != nil {
		g.z.DrawImage(screen, g.content, nil)
	}
	var msg string
	if g.cfg.ShowFPS {
		msg = fmt.Sprintf("FPS: %.1f\nTPS: %.1f\n", ebiten.ActualFPS(), ebiten.ActualTPS())
	}
	if g.cfg.ShowInfo {
		msg += overlayText(g.z.Info())
	}
	if msg != "" {
		ebitenutil.DebugPrint(screen, msg)
	}
}

// Layout re-lays the Zoomable out whenever the outside size changes.
func (g *runGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.w || outsideHeight != g.h {
		g.w, g.h = outsideWidth, outsideHeight
		g.z.OnLayout(Rect{Width: float64(outsideWidth), Height: float64(outsideHeight)})
	}
	return outsideWidth, outsideHeight
}

// overlayText formats an Info snapshot for the debug overlay.
func overlayText(info Info) string {
	t := info.Transform
	v := info.VisibleArea
	return fmt.Sprintf("scale: %.2f\nfocal: (%.1f, %.1f)\ntranslate: (%.1f, %.1f)\nvisible: (%.0f, %.0f) %.0fx%.0f\n",
		t.Scale, t.Focal.X, t.Focal.Y, t.Translate.X, t.Translate.Y, v.X, v.Y, v.Width, v.Height)
}
