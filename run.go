package mapview

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title  string
	Width  int
	Height int
	// Resizable allows the user to resize the window.
	Resizable bool
	// ShowHUD enables the cursor/camera readout.
	ShowHUD bool
}

// game adapts a Scene to ebiten.Game.
type game struct {
	scene *Scene
}

func (g *game) Update() error {
	err := g.scene.Update()
	if err != nil {
		return err
	}
	// Keep running one more frame so Draw can flush queued screenshots.
	if r := g.scene.testRunner; r != nil && r.Done() && len(g.scene.screenshotQueue) == 0 {
		return ebiten.Termination
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.scene.Layout(outsideWidth, outsideHeight)
}

// Run opens a window and drives the scene until the window is closed, a
// test runner finishes, or Update fails (for example with ErrMissingCamera).
func Run(scene *Scene, cfg RunConfig) error {
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	} else {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	}
	scene.ShowHUD = scene.ShowHUD || cfg.ShowHUD
	scene.SetWindowSize(cfg.Width, cfg.Height)

	err := ebiten.RunGame(&game{scene: scene})
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
