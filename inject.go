package mapview

// syntheticEvent is one queued frame of injected input. Screen coordinates
// are used, exactly like real mouse input.
type syntheticEvent struct {
	screenX, screenY float64
	pressed          bool
	scroll           float64
	reset            bool
}

// injectedInput replays queued events, one per frame, as an InputSource.
type injectedInput struct {
	queue    []syntheticEvent
	wasDown  bool
	lastX    float64
	lastY    float64
	scrollBf [1]float64
}

// pending reports whether events are waiting.
func (q *injectedInput) pending() int {
	return len(q.queue)
}

// Poll implements InputSource by popping the next event.
func (q *injectedInput) Poll(window Vec2) FrameInput {
	in := FrameInput{Window: window, DT: defaultDT}
	if len(q.queue) == 0 {
		in.Cursor = Vec2{q.lastX, q.lastY}
		in.CursorInWindow = cursorInWindow(in.Cursor, window)
		in.Primary = buttonTransition(q.wasDown, q.wasDown)
		return in
	}
	evt := q.queue[0]
	copy(q.queue, q.queue[1:])
	q.queue = q.queue[:len(q.queue)-1]

	in.Cursor = Vec2{evt.screenX, evt.screenY}
	in.CursorInWindow = cursorInWindow(in.Cursor, window)
	in.Primary = buttonTransition(q.wasDown, evt.pressed)
	in.ResetView = evt.reset
	if evt.scroll != 0 {
		q.scrollBf[0] = evt.scroll
		in.Scroll = q.scrollBf[:]
	}
	q.wasDown = evt.pressed
	q.lastX, q.lastY = evt.screenX, evt.screenY
	return in
}

func (q *injectedInput) push(evt syntheticEvent) {
	q.queue = append(q.queue, evt)
}

// InjectPress queues a primary button press at the given window coordinates.
// The event is consumed on the next Update.
func (s *Scene) InjectPress(x, y float64) {
	s.injected.push(syntheticEvent{screenX: x, screenY: y, pressed: true})
}

// InjectMove queues a cursor move with the button held down. Use this
// between InjectPress and InjectRelease to simulate a drag.
func (s *Scene) InjectMove(x, y float64) {
	s.injected.push(syntheticEvent{screenX: x, screenY: y, pressed: true})
}

// InjectHover queues a cursor move with the button up.
func (s *Scene) InjectHover(x, y float64) {
	s.injected.push(syntheticEvent{screenX: x, screenY: y})
}

// InjectRelease queues a primary button release at the given window coordinates.
func (s *Scene) InjectRelease(x, y float64) {
	s.injected.push(syntheticEvent{screenX: x, screenY: y})
}

// InjectScroll queues a wheel delta at the last known cursor position,
// keeping the current button state.
func (s *Scene) InjectScroll(dy float64) {
	q := &s.injected
	x, y, down := q.lastX, q.lastY, q.wasDown
	if n := len(q.queue); n > 0 {
		last := q.queue[n-1]
		x, y, down = last.screenX, last.screenY, last.pressed
	}
	q.push(syntheticEvent{screenX: x, screenY: y, pressed: down, scroll: dy})
}

// InjectReset queues a reset-view request.
func (s *Scene) InjectReset() {
	q := &s.injected
	x, y, down := q.lastX, q.lastY, q.wasDown
	if n := len(q.queue); n > 0 {
		last := q.queue[n-1]
		x, y, down = last.screenX, last.screenY, last.pressed
	}
	q.push(syntheticEvent{screenX: x, screenY: y, pressed: down, reset: true})
}

// InjectDrag queues a full drag: press at (fromX, fromY), linearly
// interpolated moves over frames-2 intermediate frames, and release at
// (toX, toY). The sequence consumes `frames` frames; the minimum is 2.
//
// With frames > 2 the last held move is at (toX, toY), so the camera lands
// exactly on the target before the release.
func (s *Scene) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	s.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		s.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	s.InjectRelease(toX, toY)
}
