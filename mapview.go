package mapview

import (
	"image/color"
	"math"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorBlack is the default clear color.
var ColorBlack = Color{0, 0, 0, 1}

// toRGBA converts the color to a premultiplied color.RGBA for image.Fill.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// Vec2 is a 2D vector used for screen positions, NDC points, world points,
// and window sizes.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Vec3 is a 3D vector. The viewer is 2D; Z only carries depth and is
// ignored by camera navigation.
type Vec3 struct {
	X, Y, Z float64
}

// XY drops the Z component.
func (v Vec3) XY() Vec2 { return Vec2{v.X, v.Y} }

// Rect is an axis-aligned rectangle. In world space Y increases upward and
// (X, Y) is the bottom-left corner.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// ButtonState is the per-frame transition state of the primary pointer button.
type ButtonState uint8

const (
	ButtonUp           ButtonState = iota // not pressed, not released this frame
	ButtonJustPressed                     // went down this frame
	ButtonHeld                            // down this frame and the previous one
	ButtonJustReleased                    // went up this frame
)

// Down reports whether the button is physically pressed this frame.
func (b ButtonState) Down() bool {
	return b == ButtonJustPressed || b == ButtonHeld
}

func (b ButtonState) String() string {
	switch b {
	case ButtonUp:
		return "up"
	case ButtonJustPressed:
		return "just-pressed"
	case ButtonHeld:
		return "held"
	case ButtonJustReleased:
		return "just-released"
	default:
		return "unknown"
	}
}
