package mapview

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tanema/gween/ease"
)

func frame(x, y float64, b ButtonState, scroll ...float64) FrameInput {
	return FrameInput{
		Window:         testWindow,
		Cursor:         Vec2{x, y},
		CursorInWindow: cursorInWindow(Vec2{x, y}, testWindow),
		Primary:        b,
		Scroll:         scroll,
		DT:             defaultDT,
	}
}

func TestNavigatorRequiresExactlyOneCamera(t *testing.T) {
	tests := []struct {
		name    string
		cameras []*Camera
		count   int
	}{
		{"none", nil, 0},
		{"two", []*Camera{NewCamera(), NewCamera()}, 2},
		{"nil entry", []*Camera{nil}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nav := NewNavigator(DefaultZoomStep)
			err := nav.Tick(tt.cameras, frame(400, 300, ButtonJustPressed))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMissingCamera)
			var countErr *CameraCountError
			require.True(t, errors.As(err, &countErr))
			assert.Equal(t, tt.count, countErr.Count)
			_, ok := nav.CursorWorld()
			assert.False(t, ok)
		})
	}
}

func TestNavigatorDragFlow(t *testing.T) {
	nav := NewNavigator(DefaultZoomStep)
	cam := NewCamera()
	cams := []*Camera{cam}

	require.NoError(t, nav.Tick(cams, frame(400, 300, ButtonJustPressed)))
	require.NoError(t, nav.Tick(cams, frame(500, 250, ButtonHeld)))
	assertNear(t, "x", cam.Transform.Translation.X, -100)
	assertNear(t, "y", cam.Transform.Translation.Y, -50)

	require.NoError(t, nav.Tick(cams, frame(500, 250, ButtonJustReleased)))
	assert.Equal(t, DragIdle, nav.Drag.State())

	// The grabbed point (world origin) is under the cursor.
	w, ok := nav.CursorWorld()
	require.True(t, ok)
	assertNear(t, "cursor.x", w.X, 0)
	assertNear(t, "cursor.y", w.Y, 0)
}

func TestNavigatorCursorOutside(t *testing.T) {
	nav := NewNavigator(DefaultZoomStep)
	cams := []*Camera{NewCamera()}

	require.NoError(t, nav.Tick(cams, frame(800, 10, ButtonUp)))
	_, ok := nav.CursorWorld()
	assert.False(t, ok, "right edge is outside the window")

	require.NoError(t, nav.Tick(cams, frame(0, 0, ButtonUp)))
	w, ok := nav.CursorWorld()
	require.True(t, ok)
	assertNear(t, "x", w.X, -400)
	assertNear(t, "y", w.Y, 300)
}

func TestNavigatorZoom(t *testing.T) {
	nav := NewNavigator(DefaultZoomStep)
	cam := NewCamera()
	cam.Transform.Scale = Vec3{0.5, 0.5, 1}
	cams := []*Camera{cam}

	require.NoError(t, nav.Tick(cams, frame(400, 300, ButtonUp, 1)))
	assert.Equal(t, Vec3{0.5, 0.5, 1}, cam.Transform.Scale)

	require.NoError(t, nav.Tick(cams, frame(400, 300, ButtonUp, 0.25, 0.5, -1)))
	assertNear(t, "scale", cam.Transform.Scale.X, 1.25)
}

func TestNavigatorZoomDuringDragReanchors(t *testing.T) {
	nav := NewNavigator(DefaultZoomStep)
	cam := NewCamera()
	cams := []*Camera{cam}

	require.NoError(t, nav.Tick(cams, frame(400, 300, ButtonJustPressed)))
	require.NoError(t, nav.Tick(cams, frame(500, 300, ButtonHeld, -1)))
	assertNear(t, "scale", cam.Transform.Scale.X, 2)
	assertNear(t, "x after drag", cam.Transform.Translation.X, -100)

	a, ok := nav.Drag.Anchor()
	require.True(t, ok)
	assertNear(t, "anchor camera", a.CameraStart.X, -100)
	// At scale 2, cursor 100px right of center is 200 world units right.
	assertNear(t, "anchor world", a.MouseStartWorld.X, 100)

	// Holding still does not jump the camera after the zoom.
	require.NoError(t, nav.Tick(cams, frame(500, 300, ButtonHeld)))
	assertNear(t, "x held", cam.Transform.Translation.X, -100)

	// Continue dragging at the new scale.
	require.NoError(t, nav.Tick(cams, frame(450, 300, ButtonHeld)))
	assertNear(t, "x moved", cam.Transform.Translation.X, 0)
}

func TestNavigatorResetView(t *testing.T) {
	nav := NewNavigator(DefaultZoomStep)
	nav.ResetEase = ease.Linear
	cam := NewCamera()
	cam.Transform = NewCameraTransform(Vec3{500, -300, 0}, Vec3{3, 3, 1})
	cams := []*Camera{cam}

	in := frame(400, 300, ButtonUp)
	in.ResetView = true
	in.DT = 0.2
	require.NoError(t, nav.Tick(cams, in))
	assert.True(t, cam.Scrolling())
	assert.InDelta(t, 250, cam.Transform.Translation.X, 1e-3)
	assert.InDelta(t, 2, cam.Transform.Scale.X, 1e-3)

	in = frame(400, 300, ButtonUp)
	in.DT = 0.3
	require.NoError(t, nav.Tick(cams, in))
	assert.False(t, cam.Scrolling())
	assert.InDelta(t, 0, cam.Transform.Translation.X, 1e-3)
	assert.InDelta(t, 0, cam.Transform.Translation.Y, 1e-3)
	assert.InDelta(t, 1, cam.Transform.Scale.X, 1e-3)
	assert.InDelta(t, 1, cam.Transform.Scale.Y, 1e-3)
}

func TestNavigatorPressCancelsReset(t *testing.T) {
	nav := NewNavigator(DefaultZoomStep)
	cam := NewCamera()
	cam.Transform.Translation = Vec3{1000, 0, 0}
	cams := []*Camera{cam}

	in := frame(400, 300, ButtonUp)
	in.ResetView = true
	require.NoError(t, nav.Tick(cams, in))
	require.True(t, cam.Scrolling())

	require.NoError(t, nav.Tick(cams, frame(400, 300, ButtonJustPressed)))
	assert.False(t, cam.Scrolling())

	x := cam.Transform.Translation.X
	require.NoError(t, nav.Tick(cams, frame(400, 300, ButtonHeld)))
	assert.Equal(t, x, cam.Transform.Translation.X)
}

func TestNavigatorZoomCancelsReset(t *testing.T) {
	nav := NewNavigator(DefaultZoomStep)
	cam := NewCamera()
	cam.Transform.Translation = Vec3{1000, 0, 0}
	cams := []*Camera{cam}

	in := frame(400, 300, ButtonUp)
	in.ResetView = true
	require.NoError(t, nav.Tick(cams, in))
	require.NoError(t, nav.Tick(cams, frame(400, 300, ButtonUp, -0.5)))
	assert.False(t, cam.Scrolling())
	assertNear(t, "scale", cam.Transform.Scale.X, 1.5)
}

func TestNavigatorZoomOutsideWindowKeepsDrag(t *testing.T) {
	nav := NewNavigator(DefaultZoomStep)
	cam := NewCamera()
	cams := []*Camera{cam}

	require.NoError(t, nav.Tick(cams, frame(400, 300, ButtonJustPressed)))
	require.NoError(t, nav.Tick(cams, frame(450, 300, ButtonHeld)))
	assertNear(t, "x before", cam.Transform.Translation.X, -50)

	require.NoError(t, nav.Tick(cams, frame(900, 300, ButtonHeld, -0.5)))
	assert.Equal(t, DragDragging, nav.Drag.State(), "zoom outside the window must not end the drag")
	assertNear(t, "scale", cam.Transform.Scale.X, 1.5)
	assertNear(t, "x outside", cam.Transform.Translation.X, -50)

	require.NoError(t, nav.Tick(cams, frame(300, 300, ButtonHeld)))
	assert.Equal(t, DragDragging, nav.Drag.State())
	// The grabbed origin is pinned under the cursor at the new scale.
	assertNear(t, "x after", cam.Transform.Translation.X, 150)
	assertNear(t, "y after", cam.Transform.Translation.Y, 0)
	w, ok := nav.CursorWorld()
	require.True(t, ok)
	assertNear(t, "cursor.x", w.X, 0)
}
