package mapview

// DefaultZoomStep is the scale change per unit of scroll delta.
const DefaultZoomStep = 1.0

// ZoomController applies scroll deltas to the camera scale. Updates that
// would make either scale component non-positive are dropped.
type ZoomController struct {
	// Step multiplies every scroll delta. Zero means DefaultZoomStep.
	Step float64
}

// Apply processes the frame's scroll deltas in order, each checked on its
// own, and returns how many were accepted. deltas is not retained.
func (z ZoomController) Apply(cam *CameraTransform, deltas []float64) int {
	step := z.Step
	if step == 0 {
		step = DefaultZoomStep
	}
	applied := 0
	for _, dy := range deltas {
		sx := cam.Scale.X - dy*step
		sy := cam.Scale.Y - dy*step
		// Written as !(>0) so NaN candidates are rejected too.
		if !(sx > 0) || !(sy > 0) {
			continue
		}
		cam.Scale.X = sx
		cam.Scale.Y = sy
		applied++
	}
	return applied
}
