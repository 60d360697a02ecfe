package mapview

// nearPlaneNDC is the NDC depth of the near clipping plane.
const nearPlaneNDC = -1

// ScreenToNDC maps a window pixel position (origin top-left, Y down) to
// normalized device coordinates (origin center, Y up, [-1, 1] on both axes).
func ScreenToNDC(screen, window Vec2) Vec2 {
	return Vec2{
		X: screen.X/window.X*2 - 1,
		Y: -(screen.Y/window.Y*2 - 1),
	}
}

// NDCToScreen is the inverse of ScreenToNDC.
func NDCToScreen(ndc, window Vec2) Vec2 {
	return Vec2{
		X: (ndc.X + 1) / 2 * window.X,
		Y: (1 - ndc.Y) / 2 * window.Y,
	}
}

// ViewProjection returns proj * inverse(cam.Matrix()), the world-to-clip
// matrix. Returns false if the camera matrix is singular.
func ViewProjection(cam CameraTransform, proj Mat4) (Mat4, bool) {
	view, ok := cam.Matrix().Invert()
	if !ok {
		return IdentityMat4, false
	}
	return proj.Mul(view), true
}

// InverseViewProjection returns the clip-to-world matrix for the camera.
func InverseViewProjection(cam CameraTransform, proj Mat4) (Mat4, bool) {
	vp, ok := ViewProjection(cam, proj)
	if !ok {
		return IdentityMat4, false
	}
	return vp.Invert()
}

// UnprojectNDC maps an NDC point on the near plane through invViewProj and
// drops depth.
func UnprojectNDC(ndc Vec2, invViewProj Mat4) Vec2 {
	return invViewProj.Project(Vec3{ndc.X, ndc.Y, nearPlaneNDC}).XY()
}

// ScreenToWorld converts a window pixel position to a world point for a
// camera with the given transform and projection. Returns false if the
// window is empty or the view-projection is not invertible.
func ScreenToWorld(screen, window Vec2, cam CameraTransform, proj Mat4) (Vec2, bool) {
	if window.X <= 0 || window.Y <= 0 {
		return Vec2{}, false
	}
	inv, ok := InverseViewProjection(cam, proj)
	if !ok {
		return Vec2{}, false
	}
	return UnprojectNDC(ScreenToNDC(screen, window), inv), true
}

// WorldToScreen converts a world point (Z = 0) to a window pixel position.
// ScreenToWorld is its left inverse.
func WorldToScreen(world, window Vec2, cam CameraTransform, proj Mat4) (Vec2, bool) {
	if window.X <= 0 || window.Y <= 0 {
		return Vec2{}, false
	}
	vp, ok := ViewProjection(cam, proj)
	if !ok {
		return Vec2{}, false
	}
	ndc := vp.Project(Vec3{world.X, world.Y, 0})
	return NDCToScreen(ndc.XY(), window), true
}
