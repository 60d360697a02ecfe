package mapview

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputSource produces one FrameInput per tick for a window of the given size.
type InputSource interface {
	Poll(window Vec2) FrameInput
}

// buttonTransition derives the frame's button state from the pressed state
// on the previous and current frames.
func buttonTransition(wasDown, isDown bool) ButtonState {
	switch {
	case isDown && !wasDown:
		return ButtonJustPressed
	case isDown:
		return ButtonHeld
	case wasDown:
		return ButtonJustReleased
	default:
		return ButtonUp
	}
}

// cursorInWindow reports whether a cursor position lies inside the window.
// The right and bottom edges are outside.
func cursorInWindow(p, window Vec2) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < window.X && p.Y < window.Y
}

// ebitenInput reads mouse, wheel, and keyboard state from Ebitengine.
type ebitenInput struct {
	scroll []float64
}

// Poll implements InputSource.
func (e *ebitenInput) Poll(window Vec2) FrameInput {
	mx, my := ebiten.CursorPosition()
	cursor := Vec2{float64(mx), float64(my)}

	var primary ButtonState
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		primary = ButtonJustPressed
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		primary = ButtonJustReleased
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		primary = ButtonHeld
	default:
		primary = ButtonUp
	}

	// Ebitengine accumulates wheel movement per tick, so the queue holds at
	// most one delta. The buffer is reused; the navigator never keeps it.
	e.scroll = e.scroll[:0]
	if _, dy := ebiten.Wheel(); dy != 0 {
		e.scroll = append(e.scroll, dy)
	}

	return FrameInput{
		Window:         window,
		Cursor:         cursor,
		CursorInWindow: ebiten.IsFocused() && cursorInWindow(cursor, window),
		Primary:        primary,
		Scroll:         e.scroll,
		ResetView: inpututil.IsKeyJustPressed(ebiten.KeyHome) ||
			inpututil.IsKeyJustPressed(ebiten.KeyR),
		DT: 1.0 / float64(ebiten.TPS()),
	}
}
