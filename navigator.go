package mapview

import (
	"errors"
	"fmt"

	"github.com/tanema/gween/ease"
)

// ErrMissingCamera is matched by the error Navigator.Tick returns when the
// scene does not hold exactly one camera.
var ErrMissingCamera = errors.New("exactly one camera required")

// CameraCountError reports how many cameras were found instead of one.
type CameraCountError struct {
	Count int
}

func (e *CameraCountError) Error() string {
	return fmt.Sprintf("%s, found %d", ErrMissingCamera, e.Count)
}

// Is makes errors.Is(err, ErrMissingCamera) succeed.
func (e *CameraCountError) Is(target error) bool {
	return target == ErrMissingCamera
}

// FrameInput is one tick's read-only input snapshot.
type FrameInput struct {
	// Window is the window size in pixels.
	Window Vec2
	// Cursor is the cursor position in window pixels. Only meaningful when
	// CursorInWindow is true.
	Cursor         Vec2
	CursorInWindow bool
	// Primary is the primary (left) button transition for this frame.
	Primary ButtonState
	// Scroll holds the vertical wheel deltas queued since the previous frame.
	Scroll []float64
	// ResetView asks the camera to scroll back to its home position.
	ResetView bool
	// DT is the frame duration in seconds.
	DT float64
}

func (in FrameInput) pointer() PointerInput {
	return PointerInput{
		Window:         in.Window,
		Cursor:         in.Cursor,
		CursorInWindow: in.CursorInWindow,
		Primary:        in.Primary,
	}
}

// DefaultResetDuration is how long the reset-view scroll takes, in seconds.
const DefaultResetDuration = 0.4

// Navigator owns camera navigation: it is the only writer of the camera
// transform while the scene runs.
type Navigator struct {
	Drag DragController
	Zoom ZoomController
	// ResetDuration is the reset-view scroll length in seconds.
	ResetDuration float32
	// ResetEase is the easing used for reset-view scrolls.
	ResetEase ease.TweenFunc

	cursorWorld   Vec2
	cursorWorldOK bool
}

// NewNavigator creates a navigator with the given zoom step.
func NewNavigator(zoomStep float64) *Navigator {
	return &Navigator{
		Zoom:          ZoomController{Step: zoomStep},
		ResetDuration: DefaultResetDuration,
		ResetEase:     ease.OutCubic,
	}
}

// CursorWorld returns the world point under the cursor as of the last tick.
// ok is false when the cursor was outside the window.
func (n *Navigator) CursorWorld() (Vec2, bool) {
	return n.cursorWorld, n.cursorWorldOK
}

// Tick runs one frame of navigation against the scene's cameras.
//
// Order: reset-view scroll, drag, zoom, cursor readout. A zoom that changes
// the scale during a drag re-anchors the drag at the current cursor when the
// cursor is inside the window.
func (n *Navigator) Tick(cameras []*Camera, in FrameInput) error {
	if len(cameras) != 1 || cameras[0] == nil {
		n.cursorWorldOK = false
		return &CameraCountError{Count: countCameras(cameras)}
	}
	cam := cameras[0]
	proj := cam.ProjectionMatrix(in.Window)
	ptr := in.pointer()

	if in.ResetView {
		n.Drag.Cancel()
		cam.ScrollTo(cam.Home.X, cam.Home.Y, 1, n.ResetDuration, n.ResetEase)
	}
	if in.Primary == ButtonJustPressed && ptr.CursorInWindow {
		cam.StopScroll()
	}
	cam.update(float32(in.DT))

	n.Drag.Update(&cam.Transform, proj, ptr)

	prevScale := cam.Transform.Scale
	if n.Zoom.Apply(&cam.Transform, in.Scroll) > 0 {
		cam.StopScroll()
		// Outside the window the old anchor is kept; the pin formula already
		// holds at the new scale once the cursor returns.
		if n.Drag.State() == DragDragging && ptr.CursorInWindow && cam.Transform.Scale != prevScale {
			n.Drag.Reanchor(cam.Transform, proj, ptr)
		}
	}

	n.cursorWorldOK = false
	if ptr.CursorInWindow {
		n.cursorWorld, n.cursorWorldOK = cam.ScreenToWorld(in.Cursor, in.Window)
	}
	return nil
}

func countCameras(cameras []*Camera) int {
	count := 0
	for _, c := range cameras {
		if c != nil {
			count++
		}
	}
	return count
}
