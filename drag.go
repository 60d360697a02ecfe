package mapview

// DragState is the state of a DragController.
type DragState uint8

const (
	DragIdle     DragState = iota // no primary button drag in progress
	DragDragging                  // anchored drag in progress
)

func (s DragState) String() string {
	if s == DragDragging {
		return "dragging"
	}
	return "idle"
}

// DragAnchor is captured when a drag starts and discarded when it ends.
type DragAnchor struct {
	// MouseStartWorld is the world point under the cursor at press time.
	MouseStartWorld Vec2
	// CameraStart is the camera translation at press time.
	CameraStart Vec2
}

// PointerInput is the subset of a frame's input the drag controller reads.
type PointerInput struct {
	Window         Vec2
	Cursor         Vec2
	CursorInWindow bool
	Primary        ButtonState
}

// DragController pans a camera so that the world point grabbed at press
// time stays under the cursor for the whole drag.
type DragController struct {
	state  DragState
	anchor DragAnchor
}

// State returns the current drag state.
func (d *DragController) State() DragState {
	return d.state
}

// Anchor returns the active anchor. ok is false when idle.
func (d *DragController) Anchor() (anchor DragAnchor, ok bool) {
	if d.state != DragDragging {
		return DragAnchor{}, false
	}
	return d.anchor, true
}

// Cancel drops any active drag.
func (d *DragController) Cancel() {
	d.state = DragIdle
	d.anchor = DragAnchor{}
}

// Update advances the state machine for one frame and reports whether the
// camera translation was changed.
func (d *DragController) Update(cam *CameraTransform, proj Mat4, in PointerInput) bool {
	switch {
	case in.Primary == ButtonJustPressed:
		// A press while dragging means the release was missed; start over.
		d.Cancel()
		d.Reanchor(*cam, proj, in)
		return false

	case in.Primary == ButtonHeld && d.state == DragDragging:
		if !in.CursorInWindow {
			return false
		}
		// Evaluate the cursor against the camera as it was at press time so
		// the result does not feed back on this frame's movement.
		start := cam.withTranslationXY(d.anchor.CameraStart)
		p, ok := ScreenToWorld(in.Cursor, in.Window, start, proj)
		if !ok {
			return false
		}
		next := d.anchor.CameraStart.Sub(p.Sub(d.anchor.MouseStartWorld))
		if next.X == cam.Translation.X && next.Y == cam.Translation.Y {
			return false
		}
		cam.Translation.X = next.X
		cam.Translation.Y = next.Y
		return true

	case !in.Primary.Down():
		d.Cancel()
	}
	return false
}

// Reanchor captures a new anchor from the current camera and cursor. It is
// a no-op, leaving the controller idle, when the cursor is outside the window.
func (d *DragController) Reanchor(cam CameraTransform, proj Mat4, in PointerInput) {
	if !in.CursorInWindow {
		d.Cancel()
		return
	}
	w, ok := ScreenToWorld(in.Cursor, in.Window, cam, proj)
	if !ok {
		d.Cancel()
		return
	}
	d.anchor = DragAnchor{
		MouseStartWorld: w,
		CameraStart:     cam.Translation.XY(),
	}
	d.state = DragDragging
}
