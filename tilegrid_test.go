package mapview

import (
	"errors"
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewTilePlacement(t *testing.T) {
	p := NewTilePlacement("tiles/1_1.png", GridCoord{1, 1}, 1024)
	assert.Equal(t, Vec3{1024, -1024, 0}, p.WorldPosition)
	assert.Equal(t, "tiles/1_1.png", p.SourcePath)
	assert.Equal(t, GridCoord{1, 1}, p.Grid)

	p = NewTilePlacement("a", GridCoord{-2, -3}, 256)
	assert.Equal(t, Vec3{-512, 768, 0}, p.WorldPosition)
}

func permutations(s []string) [][]string {
	if len(s) <= 1 {
		return [][]string{append([]string(nil), s...)}
	}
	var out [][]string
	for i := range s {
		rest := make([]string, 0, len(s)-1)
		rest = append(rest, s[:i]...)
		rest = append(rest, s[i+1:]...)
		for _, p := range permutations(rest) {
			out = append(out, append([]string{s[i]}, p...))
		}
	}
	return out
}

func TestBuildTileGridPartialFailure(t *testing.T) {
	names := []string{"1_1.png", "bad.png", "2_0.png"}
	var first TileGrid
	for i, order := range permutations(names) {
		grid := BuildTileGrid("tiles", order, DefaultTileSize)
		require.Len(t, grid.Placements, 2, "order %v", order)
		require.Len(t, grid.Failures, 1, "order %v", order)
		assert.Equal(t, "tiles/bad.png", grid.Failures[0].SourcePath)
		assert.ErrorIs(t, grid.Failures[0].Err, ErrMalformedTileName)
		if i == 0 {
			first = grid
			continue
		}
		assert.Equal(t, first.Placements, grid.Placements, "order %v", order)
	}

	byPath := map[string]TilePlacement{}
	for _, p := range first.Placements {
		byPath[p.SourcePath] = p
	}
	assert.Equal(t, Vec3{1024, -1024, 0}, byPath["tiles/1_1.png"].WorldPosition)
	assert.Equal(t, Vec3{2048, 0, 0}, byPath["tiles/2_0.png"].WorldPosition)
}

func TestBuildTileGridDoesNotMutateInput(t *testing.T) {
	names := []string{"2_0.png", "1_1.png"}
	BuildTileGrid(".", names, DefaultTileSize)
	assert.Equal(t, []string{"2_0.png", "1_1.png"}, names)
}

func TestBuildTileGridDuplicates(t *testing.T) {
	grid := BuildTileGrid("", []string{"1_1.png", "1_1.jpg", "+1_1.webp"}, DefaultTileSize)
	require.Len(t, grid.Placements, 1)
	// Sorted order: "+1_1.webp" < "1_1.jpg" < "1_1.png".
	assert.Equal(t, "+1_1.webp", grid.Placements[0].SourcePath)
	require.Len(t, grid.Failures, 2)
	for _, f := range grid.Failures {
		assert.ErrorIs(t, f.Err, ErrDuplicateTile)
	}
}

func TestBuildTileGridEmpty(t *testing.T) {
	grid := BuildTileGrid("tiles", nil, DefaultTileSize)
	assert.Empty(t, grid.Placements)
	assert.Empty(t, grid.Failures)
}

func TestFSListerSkipsDirectories(t *testing.T) {
	fsys := fstest.MapFS{
		"tiles/0_0.png":     {Data: []byte("x")},
		"tiles/1_0.png":     {Data: []byte("x")},
		"tiles/sub/5_5.png": {Data: []byte("x")},
	}
	names, err := FSLister{FS: fsys}.ListDir("tiles")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"0_0.png", "1_0.png"}, names)
}

type recordingSpawner struct {
	spawned []TilePlacement
	fail    map[string]error
}

func (r *recordingSpawner) SpawnTile(p TilePlacement) error {
	if err := r.fail[p.SourcePath]; err != nil {
		return err
	}
	r.spawned = append(r.spawned, p)
	return nil
}

func TestTileLoaderLoad(t *testing.T) {
	fsys := fstest.MapFS{
		"tiles/1_1.png":   {Data: []byte("x")},
		"tiles/bad.png":   {Data: []byte("x")},
		"tiles/2_0.png":   {Data: []byte("x")},
		"tiles/-1_3.webp": {Data: []byte("x")},
	}
	errDecode := errors.New("decode failed")
	spawner := &recordingSpawner{fail: map[string]error{"tiles/-1_3.webp": errDecode}}
	core, logs := observer.New(zap.DebugLevel)

	loader := &TileLoader{
		Dir:      "tiles",
		TileSize: 512,
		Lister:   FSLister{FS: fsys},
		Spawner:  spawner,
		Logger:   zap.New(core),
	}
	grid, err := loader.Load()
	require.NoError(t, err)

	require.Len(t, grid.Placements, 2)
	assert.Equal(t, grid.Placements, spawner.spawned)
	require.Len(t, grid.Failures, 2)

	var sawDecode, sawName bool
	for _, f := range grid.Failures {
		switch {
		case errors.Is(f.Err, errDecode):
			sawDecode = true
			assert.Equal(t, "tiles/-1_3.webp", f.SourcePath)
		case errors.Is(f.Err, ErrMalformedTileName):
			sawName = true
			assert.Equal(t, "tiles/bad.png", f.SourcePath)
		}
	}
	assert.True(t, sawDecode, "spawn failure not recorded")
	assert.True(t, sawName, "name failure not recorded")

	for _, p := range grid.Placements {
		if p.Grid == (GridCoord{1, 1}) {
			assert.Equal(t, Vec3{512, -512, 0}, p.WorldPosition)
		}
	}

	assert.Equal(t, 2, logs.FilterMessage("skipping tile").Len())
	assert.Equal(t, 1, logs.FilterMessage("tile grid loaded").Len())
}

func TestTileLoaderDefaultTileSize(t *testing.T) {
	fsys := fstest.MapFS{"map/1_1.png": {Data: []byte("x")}}
	loader := &TileLoader{Dir: "map", Lister: FSLister{FS: fsys}}
	grid, err := loader.Load()
	require.NoError(t, err)
	require.Len(t, grid.Placements, 1)
	assert.Equal(t, Vec3{1024, -1024, 0}, grid.Placements[0].WorldPosition)
}

func TestTileLoaderListError(t *testing.T) {
	loader := &TileLoader{Dir: "missing", Lister: FSLister{FS: fstest.MapFS{}}}
	_, err := loader.Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}
