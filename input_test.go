package mapview

import "testing"

func TestButtonTransition(t *testing.T) {
	tests := []struct {
		was, is bool
		want    ButtonState
	}{
		{false, false, ButtonUp},
		{false, true, ButtonJustPressed},
		{true, true, ButtonHeld},
		{true, false, ButtonJustReleased},
	}
	for _, tt := range tests {
		if got := buttonTransition(tt.was, tt.is); got != tt.want {
			t.Errorf("buttonTransition(%v, %v) = %v, want %v", tt.was, tt.is, got, tt.want)
		}
	}
}

func TestCursorInWindow(t *testing.T) {
	tests := []struct {
		name string
		p    Vec2
		want bool
	}{
		{"origin", Vec2{0, 0}, true},
		{"center", Vec2{400, 300}, true},
		{"last pixel", Vec2{799.5, 599.5}, true},
		{"right edge", Vec2{800, 10}, false},
		{"bottom edge", Vec2{10, 600}, false},
		{"negative x", Vec2{-1, 10}, false},
		{"negative y", Vec2{10, -0.1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cursorInWindow(tt.p, testWindow); got != tt.want {
				t.Errorf("cursorInWindow(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestCursorInWindow_EmptyWindow(t *testing.T) {
	if cursorInWindow(Vec2{0, 0}, Vec2{}) {
		t.Error("no point is inside an empty window")
	}
}
