// Package mapview is a pan-and-zoom viewer for tiled 2D maps, built on
// [Ebitengine].
//
// A map is a directory of images whose names encode their grid cell,
// "<x>_<y>.<ext>" (for example "2_-1.png"). Each tile is centered at
// (x*TileSize, -y*TileSize) in world space, where world Y points up.
//
// # Quick start
//
//	scene := mapview.NewScene()
//	scene.SetFS(os.DirFS("tiles"))
//	scene.NewCamera()
//
//	loader := &mapview.TileLoader{
//		Dir:     ".",
//		Lister:  mapview.FSLister{FS: os.DirFS("tiles")},
//		Spawner: scene,
//	}
//	if _, err := loader.Load(); err != nil {
//		log.Fatal(err)
//	}
//	mapview.Run(scene, mapview.RunConfig{Title: "Map", Width: 1280, Height: 720})
//
// # Coordinate spaces
//
// Screen pixels have their origin at the window's top-left with Y down.
// [ScreenToNDC] maps them to normalized device coordinates in [-1, 1] with
// Y up, and [ScreenToWorld] unprojects through the inverse of the camera's
// view-projection matrix. [WorldToScreen] is the forward mapping.
//
// # Navigation
//
// [Navigator] is the only writer of the camera transform. Each tick it
// applies a [DragController] (the world point grabbed on press stays under
// the cursor) and a [ZoomController] (scroll deltas subtract from the scale;
// updates that would make the scale non-positive are dropped). The scene
// must hold exactly one camera, otherwise Update returns [ErrMissingCamera].
//
// Reset-view scrolls are eased with [gween].
//
// # Scripted input
//
// [LoadTestScript] reads a YAML step list (press, move, hover, release, drag,
// scroll, reset, wait, screenshot) that [Scene.SetTestRunner] replays one
// frame at a time through the same path as real mouse input.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package mapview
