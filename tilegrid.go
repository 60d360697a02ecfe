package mapview

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"slices"

	"go.uber.org/zap"
)

// DefaultTileSize is the world size of one tile edge.
const DefaultTileSize = 1024

// ErrDuplicateTile is recorded when two files decode to the same grid coordinate.
var ErrDuplicateTile = errors.New("duplicate tile coordinate")

// TilePlacement is one tile ready to be handed to the rendering collaborator.
type TilePlacement struct {
	SourcePath    string
	Grid          GridCoord
	WorldPosition Vec3
}

// NewTilePlacement computes the world position of a grid cell. Grid Y grows
// downward while world Y grows upward, hence the negation.
func NewTilePlacement(sourcePath string, grid GridCoord, tileSize float64) TilePlacement {
	return TilePlacement{
		SourcePath: sourcePath,
		Grid:       grid,
		WorldPosition: Vec3{
			X: float64(grid.X) * tileSize,
			Y: -float64(grid.Y) * tileSize,
			Z: 0,
		},
	}
}

// TileFailure records a file that could not become a tile.
type TileFailure struct {
	SourcePath string
	Err        error
}

// TileGrid is the outcome of a load: every tile that was placed and every
// file that was skipped.
type TileGrid struct {
	Placements []TilePlacement
	Failures   []TileFailure
}

// BuildTileGrid decodes each name and computes its placement. Names are
// processed in sorted order so the result never depends on directory
// enumeration order. Bad names are recorded and skipped.
func BuildTileGrid(dir string, names []string, tileSize float64) TileGrid {
	sorted := slices.Clone(names)
	slices.Sort(sorted)

	var grid TileGrid
	seen := make(map[GridCoord]string, len(sorted))
	for _, name := range sorted {
		src := path.Join(dir, name)
		coord, err := ParseGridName(name)
		if err != nil {
			grid.Failures = append(grid.Failures, TileFailure{SourcePath: src, Err: err})
			continue
		}
		if prev, dup := seen[coord]; dup {
			grid.Failures = append(grid.Failures, TileFailure{
				SourcePath: src,
				Err:        fmt.Errorf("%w: %v already used by %s", ErrDuplicateTile, coord, prev),
			})
			continue
		}
		seen[coord] = src
		grid.Placements = append(grid.Placements, NewTilePlacement(src, coord, tileSize))
	}
	return grid
}

// DirLister lists the file names (not paths) in a directory.
type DirLister interface {
	ListDir(dir string) ([]string, error)
}

// TileSpawner creates one drawable for a placement.
type TileSpawner interface {
	SpawnTile(p TilePlacement) error
}

// FSLister lists regular files through an fs.FS.
type FSLister struct {
	FS fs.FS
}

// ListDir implements DirLister. Subdirectories are skipped.
func (l FSLister) ListDir(dir string) ([]string, error) {
	entries, err := fs.ReadDir(l.FS, dir)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}

// TileLoader lists a tile directory, decodes every name, and spawns a
// drawable per tile. Per-file problems never abort the load.
type TileLoader struct {
	Dir      string
	TileSize float64
	Lister   DirLister
	Spawner  TileSpawner
	Logger   *zap.Logger
}

// Load runs the loader. The only returned error is a failed directory listing.
func (l *TileLoader) Load() (TileGrid, error) {
	log := l.Logger
	if log == nil {
		log = zap.NewNop()
	}
	tileSize := l.TileSize
	if tileSize <= 0 {
		tileSize = DefaultTileSize
	}

	names, err := l.Lister.ListDir(l.Dir)
	if err != nil {
		return TileGrid{}, fmt.Errorf("list tile dir %s: %w", l.Dir, err)
	}

	grid := BuildTileGrid(l.Dir, names, tileSize)
	if l.Spawner != nil {
		placed := grid.Placements[:0:0]
		for _, p := range grid.Placements {
			if err := l.Spawner.SpawnTile(p); err != nil {
				grid.Failures = append(grid.Failures, TileFailure{SourcePath: p.SourcePath, Err: err})
				continue
			}
			placed = append(placed, p)
		}
		grid.Placements = placed
	}

	for _, f := range grid.Failures {
		log.Warn("skipping tile", zap.String("path", f.SourcePath), zap.Error(f.Err))
	}
	log.Info("tile grid loaded",
		zap.String("dir", l.Dir),
		zap.Int("tiles", len(grid.Placements)),
		zap.Int("failures", len(grid.Failures)))
	return grid, nil
}
