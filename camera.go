package mapview

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// CameraTransform is the camera's placement in world space. Translation is
// the world point at the center of the view; Scale is world units per screen
// pixel, so a larger scale shows more of the world.
//
// Scale.X and Scale.Y are always > 0 once the transform is owned by a
// Navigator.
type CameraTransform struct {
	Translation Vec3
	Scale       Vec3
}

// NewCameraTransform returns a transform with every field given explicitly.
func NewCameraTransform(translation, scale Vec3) CameraTransform {
	return CameraTransform{Translation: translation, Scale: scale}
}

// IdentityCameraTransform returns a transform at the world origin with unit scale.
func IdentityCameraTransform() CameraTransform {
	return NewCameraTransform(Vec3{0, 0, 0}, Vec3{1, 1, 1})
}

// Matrix returns the camera-to-world matrix: Translate(Translation) * Scale(Scale).
// Scale.Z is ignored so a flat camera stays invertible.
func (t CameraTransform) Matrix() Mat4 {
	return Translation(t.Translation).Mul(Scaling(Vec3{t.Scale.X, t.Scale.Y, 1}))
}

// Valid reports whether the transform satisfies the positive-scale invariant.
func (t CameraTransform) Valid() bool {
	return t.Scale.X > 0 && t.Scale.Y > 0
}

// withTranslationXY returns a copy of t with the X and Y translation replaced.
func (t CameraTransform) withTranslationXY(p Vec2) CameraTransform {
	t.Translation.X = p.X
	t.Translation.Y = p.Y
	return t
}

// Projection is a window-sized orthographic projection centered on the
// camera: one view unit maps to one window pixel.
type Projection struct {
	Near, Far float64
}

// DefaultProjection returns the projection used by NewCamera.
func DefaultProjection() Projection {
	return Projection{Near: -1000, Far: 1000}
}

// Matrix returns the projection matrix for the given window size.
func (p Projection) Matrix(window Vec2) Mat4 {
	hw := window.X / 2
	hh := window.Y / 2
	return Orthographic(-hw, hw, -hh, hh, p.Near, p.Far)
}

// scrollAnim holds active scroll-to tweens for the camera translation and scale.
type scrollAnim struct {
	tweenX     *gween.Tween
	tweenY     *gween.Tween
	tweenScale *gween.Tween
	doneX      bool
	doneY      bool
	doneScale  bool
}

// Camera is the single view into the tile grid.
type Camera struct {
	// Transform is the camera placement. Only the Navigator writes it while
	// the scene is running.
	Transform CameraTransform
	// Projection maps view space to NDC.
	Projection Projection
	// Home is the translation the camera scrolls back to on reset.
	Home Vec2

	scrollTween *scrollAnim
}

// NewCamera creates a camera at the origin with unit scale.
func NewCamera() *Camera {
	return &Camera{
		Transform:  IdentityCameraTransform(),
		Projection: DefaultProjection(),
		Home:       Vec2{0, 0},
	}
}

// ProjectionMatrix returns the projection matrix for the given window size.
func (c *Camera) ProjectionMatrix(window Vec2) Mat4 {
	return c.Projection.Matrix(window)
}

// ScreenToWorld converts a window pixel position to world coordinates.
func (c *Camera) ScreenToWorld(screen, window Vec2) (Vec2, bool) {
	return ScreenToWorld(screen, window, c.Transform, c.ProjectionMatrix(window))
}

// WorldToScreen converts world coordinates to a window pixel position.
func (c *Camera) WorldToScreen(world, window Vec2) (Vec2, bool) {
	return WorldToScreen(world, window, c.Transform, c.ProjectionMatrix(window))
}

// VisibleBounds returns the axis-aligned world rectangle covered by the window.
func (c *Camera) VisibleBounds(window Vec2) Rect {
	corners := [4]Vec2{
		{0, 0}, {window.X, 0}, {window.X, window.Y}, {0, window.Y},
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, s := range corners {
		w, ok := c.ScreenToWorld(s, window)
		if !ok {
			return Rect{}
		}
		minX = math.Min(minX, w.X)
		minY = math.Min(minY, w.Y)
		maxX = math.Max(maxX, w.X)
		maxY = math.Max(maxY, w.Y)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// ScrollTo animates the camera translation to (x, y) and its uniform scale
// to scale over duration seconds. A non-positive scale leaves scale alone.
func (c *Camera) ScrollTo(x, y, scale float64, duration float32, easeFn ease.TweenFunc) {
	t := c.Transform
	anim := &scrollAnim{
		tweenX:    gween.New(float32(t.Translation.X), float32(x), duration, easeFn),
		tweenY:    gween.New(float32(t.Translation.Y), float32(y), duration, easeFn),
		doneScale: true,
	}
	if scale > 0 {
		anim.tweenScale = gween.New(float32(t.Scale.X), float32(scale), duration, easeFn)
		anim.doneScale = false
	}
	c.scrollTween = anim
}

// Scrolling reports whether a ScrollTo animation is in progress.
func (c *Camera) Scrolling() bool {
	return c.scrollTween != nil
}

// StopScroll cancels any ScrollTo animation, leaving the camera where it is.
func (c *Camera) StopScroll() {
	c.scrollTween = nil
}

// update advances the scroll animation by dt seconds. Called from Navigator.Tick.
func (c *Camera) update(dt float32) {
	a := c.scrollTween
	if a == nil {
		return
	}
	if !a.doneX {
		val, done := a.tweenX.Update(dt)
		c.Transform.Translation.X = float64(val)
		a.doneX = done
	}
	if !a.doneY {
		val, done := a.tweenY.Update(dt)
		c.Transform.Translation.Y = float64(val)
		a.doneY = done
	}
	if !a.doneScale {
		val, done := a.tweenScale.Update(dt)
		// Easing functions with overshoot must not break the scale invariant.
		if val > 0 {
			c.Transform.Scale.X = float64(val)
			c.Transform.Scale.Y = float64(val)
		}
		a.doneScale = done
	}
	if a.doneX && a.doneY && a.doneScale {
		c.scrollTween = nil
	}
}
