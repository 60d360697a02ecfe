package mapview

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	hudLineHeight = 16
	hudPadding    = 4
	hudWidth      = 300
)

// hudText formats the readout shown in the corner overlay.
func hudText(cam *Camera, cursor Vec2, cursorOK bool, tileSize float64, tiles int, fps float64) string {
	t := cam.Transform
	cursorLine := "Cursor: outside window"
	if cursorOK {
		cursorLine = fmt.Sprintf("Cursor: %.1f, %.1f", cursor.X, cursor.Y)
		if tileSize > 0 {
			// Tiles are centered on their grid point; grid Y is flipped.
			gx := int(math.Floor(cursor.X/tileSize + 0.5))
			gy := int(math.Floor(-cursor.Y/tileSize + 0.5))
			cursorLine += fmt.Sprintf("  |  Tile: %d_%d", gx, gy)
		}
	}
	return fmt.Sprintf("Camera: %.1f, %.1f  |  Scale: %.3f\n%s\nTiles: %d  |  FPS: %.1f",
		t.Translation.X, t.Translation.Y, t.Scale.X, cursorLine, tiles, fps)
}

// drawHUD draws the readout in the top-left corner of the screen.
func (s *Scene) drawHUD(screen *ebiten.Image) {
	if len(s.cameras) != 1 {
		return
	}
	world, ok := s.navigator.CursorWorld()
	msg := hudText(s.cameras[0], world, ok, s.TileSize, len(s.tiles), ebiten.ActualFPS())

	// Semi-transparent background for readability
	vector.DrawFilledRect(screen, 0, 0, hudWidth, 3*hudLineHeight+2*hudPadding,
		color.RGBA{0, 0, 0, 128}, false)
	ebitenutil.DebugPrintAt(screen, msg, hudPadding, hudPadding)
}
