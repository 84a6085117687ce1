package skyworld

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window and loop started by Run.
type RunConfig struct {
	Title   string
	Width   int
	Height  int
	TPS     int  // ticks per second; 0 keeps Ebitengine's default of 60
	ShowFPS bool // overlay an FPS/TPS readout
	Debug   bool // see Scene.SetDebugMode
}

// game adapts a Scene to ebiten.Game with a fixed logical screen size.
type game struct {
	scene  *Scene
	width  int
	height int
}

func (g *game) Update() error {
	return g.scene.Update()
}

func (g *game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

// Run opens a window and drives scene until the window closes or the
// scene's update func returns an error.
func Run(scene *Scene, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("skyworld: invalid window size %dx%d", cfg.Width, cfg.Height)
	}

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}
	if cfg.Debug {
		scene.SetDebugMode(true)
	}
	if cfg.ShowFPS {
		scene.Root().AddChild(NewFPSWidget())
	}

	return ebiten.RunGame(&game{scene: scene, width: cfg.Width, height: cfg.Height})
}
