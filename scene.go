package mapview

import (
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"go.uber.org/zap"

	// Tile image decoders.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// defaultDT is the frame duration assumed when no game loop is driving the scene.
const defaultDT = 1.0 / 60.0

// tileSprite is a placed tile and its loaded image.
type tileSprite struct {
	placement TilePlacement
	img       *ebiten.Image
}

// ImageLoader loads the image for a tile source path.
type ImageLoader func(path string) (*ebiten.Image, error)

// Scene is the top-level object that owns the camera list, the placed
// tiles, input sources, and navigation.
type Scene struct {
	// ClearColor fills the screen before tiles are drawn.
	ClearColor Color
	// ShowHUD draws the cursor/camera readout over the tiles.
	ShowHUD bool
	// TileSize is the world size of a tile edge; images are scaled to it.
	TileSize float64
	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string

	cameras   []*Camera
	tiles     []tileSprite
	navigator *Navigator
	window    Vec2
	log       *zap.Logger
	fsys      fs.FS
	loadImage ImageLoader

	input           InputSource
	injected        injectedInput
	testRunner      *TestRunner
	screenshotQueue []string

	debug      bool
	debugFrame int
}

// NewScene creates an empty scene with no cameras. Tile images are read from
// the current directory until SetFS is called.
func NewScene() *Scene {
	s := &Scene{
		ClearColor:    ColorBlack,
		TileSize:      DefaultTileSize,
		ScreenshotDir: "screenshots",
		navigator:     NewNavigator(DefaultZoomStep),
		log:           zap.NewNop(),
		fsys:          os.DirFS("."),
		input:         &ebitenInput{},
	}
	s.loadImage = s.loadImageFromFS
	return s
}

// SetLogger sets the scene logger. nil installs a no-op logger.
func (s *Scene) SetLogger(log *zap.Logger) {
	if log == nil {
		log = zap.NewNop()
	}
	s.log = log
}

// SetFS sets the file system tile source paths are resolved against.
func (s *Scene) SetFS(fsys fs.FS) {
	s.fsys = fsys
}

// SetImageLoader replaces the tile image loader. nil restores the default,
// which decodes from the scene FS.
func (s *Scene) SetImageLoader(fn ImageLoader) {
	if fn == nil {
		fn = s.loadImageFromFS
	}
	s.loadImage = fn
}

// SetInputSource replaces the live input source. Injected events still take
// priority while queued.
func (s *Scene) SetInputSource(src InputSource) {
	s.input = src
}

// SetWindowSize sets the window size used for coordinate conversion.
func (s *Scene) SetWindowSize(w, h int) {
	s.window = Vec2{float64(w), float64(h)}
}

// WindowSize returns the current window size in pixels.
func (s *Scene) WindowSize() Vec2 {
	return s.window
}

// Navigator returns the scene's camera navigator.
func (s *Scene) Navigator() *Navigator {
	return s.navigator
}

// NewCamera creates a camera and adds it to the scene. The viewer expects
// exactly one; Update fails with ErrMissingCamera otherwise.
func (s *Scene) NewCamera() *Camera {
	cam := NewCamera()
	s.cameras = append(s.cameras, cam)
	return cam
}

// RemoveCamera removes a camera from the scene.
func (s *Scene) RemoveCamera(cam *Camera) {
	for i, c := range s.cameras {
		if c == cam {
			s.cameras = append(s.cameras[:i], s.cameras[i+1:]...)
			return
		}
	}
}

// Cameras returns the scene's camera list. The returned slice MUST NOT be mutated.
func (s *Scene) Cameras() []*Camera {
	return s.cameras
}

// SpawnTile implements TileSpawner: it loads the tile image and places it.
func (s *Scene) SpawnTile(p TilePlacement) error {
	img, err := s.loadImage(p.SourcePath)
	if err != nil {
		return fmt.Errorf("load tile image: %w", err)
	}
	s.tiles = append(s.tiles, tileSprite{placement: p, img: img})
	s.log.Debug("tile spawned",
		zap.String("path", p.SourcePath),
		zap.Int("gridX", p.Grid.X),
		zap.Int("gridY", p.Grid.Y))
	return nil
}

// Tiles returns the placements of every spawned tile in spawn order.
func (s *Scene) Tiles() []TilePlacement {
	out := make([]TilePlacement, len(s.tiles))
	for i, t := range s.tiles {
		out[i] = t.placement
	}
	return out
}

func (s *Scene) loadImageFromFS(path string) (*ebiten.Image, error) {
	img, _, err := ebitenutil.NewImageFromFileSystem(s.fsys, path)
	if err != nil {
		return nil, err
	}
	return img, nil
}

// Update reads this frame's input and runs camera navigation. A camera
// precondition failure is returned so the game loop stops.
func (s *Scene) Update() error {
	if s.testRunner != nil {
		s.testRunner.step(s)
	}

	var in FrameInput
	if s.injected.pending() > 0 || s.input == nil {
		in = s.injected.Poll(s.window)
	} else {
		in = s.input.Poll(s.window)
	}

	if err := s.navigator.Tick(s.cameras, in); err != nil {
		s.log.Error("camera navigation stopped", zap.Error(err))
		return err
	}
	return nil
}

// Draw renders every tile through the scene camera. With no usable camera
// only the clear color is drawn; Update reports the error.
func (s *Scene) Draw(screen *ebiten.Image) {
	screen.Fill(s.ClearColor.toRGBA())
	s.drawTiles(screen)
	if s.ShowHUD {
		s.drawHUD(screen)
	}
	s.flushScreenshots(screen)
}

func (s *Scene) drawTiles(screen *ebiten.Image) {
	if len(s.cameras) != 1 {
		return
	}
	cam := s.cameras[0]
	view, ok := worldToScreenGeoM(cam.Transform, cam.ProjectionMatrix(s.window), s.window)
	if !ok {
		return
	}

	var stats drawStats
	if s.debug {
		start := time.Now()
		defer func() {
			stats.drawTime = time.Since(start)
			s.debugLog(stats)
		}()
	}

	var op ebiten.DrawImageOptions
	op.Filter = ebiten.FilterLinear
	for i := range s.tiles {
		t := &s.tiles[i]
		if t.img == nil {
			continue
		}
		b := t.img.Bounds()
		op.GeoM = tileGeoM(t.placement, float64(b.Dx()), float64(b.Dy()), s.TileSize)
		op.GeoM.Concat(view)
		screen.DrawImage(t.img, &op)
		stats.tilesDrawn++
	}
}

// Layout records the window size and renders at native resolution.
func (s *Scene) Layout(outsideWidth, outsideHeight int) (int, int) {
	s.SetWindowSize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// tileGeoM maps image pixels (origin top-left, Y down) onto the tile's
// world square, centered on its world position (Y up).
func tileGeoM(p TilePlacement, imgW, imgH, tileSize float64) ebiten.GeoM {
	var g ebiten.GeoM
	if imgW <= 0 || imgH <= 0 {
		return g
	}
	g.Translate(-imgW/2, -imgH/2)
	g.Scale(tileSize/imgW, -tileSize/imgH)
	g.Translate(p.WorldPosition.X, p.WorldPosition.Y)
	return g
}

// worldToScreenGeoM flattens the camera view-projection and the NDC to
// window mapping into a 2D affine GeoM. World Z is taken as 0.
func worldToScreenGeoM(cam CameraTransform, proj Mat4, window Vec2) (ebiten.GeoM, bool) {
	var g ebiten.GeoM
	if window.X <= 0 || window.Y <= 0 {
		return g, false
	}
	vp, ok := ViewProjection(cam, proj)
	if !ok {
		return g, false
	}
	hw, hh := window.X/2, window.Y/2
	g.SetElement(0, 0, vp[0]*hw)
	g.SetElement(0, 1, vp[4]*hw)
	g.SetElement(0, 2, (vp[12]+1)*hw)
	g.SetElement(1, 0, -vp[1]*hh)
	g.SetElement(1, 1, -vp[5]*hh)
	g.SetElement(1, 2, (1-vp[13])*hh)
	return g, true
}
