// Package interact tracks the press-and-hold gesture that reveals the chart
// crosshair.
package interact

import (
	"time"

	"gioui.org/f32"
)

// DefaultDelay is how long a pointer must be held before the crosshair
// appears.
const DefaultDelay = 400 * time.Millisecond

// State is the phase of the gesture.
type State uint8

const (
	Idle State = iota
	// Pressed is a held pointer waiting for the delay to pass.
	Pressed
	// Dragging shows the crosshair under the pointer.
	Dragging
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Pressed:
		return "pressed"
	case Dragging:
		return "dragging"
	default:
		return "unknown"
	}
}

// Machine is the press-and-hold state machine. The zero value is idle and
// uses DefaultDelay.
type Machine struct {
	// Delay before a press turns into a drag.
	Delay time.Duration
	// Slop is how far in pixels a pressed pointer may wander before the
	// press is abandoned. Zero disables the check.
	Slop float32

	state State
	start f32.Point
	pos   f32.Point
	timer Timer
}

func (m *Machine) delay() time.Duration {
	if m.Delay <= 0 {
		return DefaultDelay
	}
	return m.Delay
}

// State returns the current phase.
func (m *Machine) State() State {
	return m.state
}

// Press starts a new gesture at pos, abandoning any previous one.
func (m *Machine) Press(pos f32.Point, now time.Time) {
	m.state = Pressed
	m.start = pos
	m.pos = pos
	m.timer.Arm(now, m.delay())
}

// Move tracks the pointer. A pressed pointer that wanders past Slop before
// the delay passes abandons the gesture.
func (m *Machine) Move(pos f32.Point, now time.Time) {
	switch m.state {
	case Pressed:
		if m.Advance(now) {
			m.pos = pos
			return
		}
		if d := pos.Sub(m.start); m.Slop > 0 && d.X*d.X+d.Y*d.Y > m.Slop*m.Slop {
			m.Cancel()
			return
		}
		m.pos = pos
	case Dragging:
		m.pos = pos
	}
}

// Release ends the gesture. It reports whether the crosshair was showing.
func (m *Machine) Release(now time.Time) bool {
	dragging := m.state == Dragging
	m.Cancel()
	return dragging
}

// Cancel abandons the gesture and stops the pending timer.
func (m *Machine) Cancel() {
	m.timer.Stop()
	m.state = Idle
}

// Advance promotes a press to a drag once the delay has passed. It reports
// whether the promotion happened during this call.
func (m *Machine) Advance(now time.Time) bool {
	if m.state != Pressed || !m.timer.Fire(now) {
		return false
	}
	m.state = Dragging
	return true
}

// Deadline returns the time at which a pending press turns into a drag.
func (m *Machine) Deadline() (time.Time, bool) {
	if m.state != Pressed {
		return time.Time{}, false
	}
	return m.timer.Deadline()
}

// Crosshair returns the horizontal pointer position while dragging.
func (m *Machine) Crosshair() (float32, bool) {
	if m.state != Dragging {
		return 0, false
	}
	return m.pos.X, true
}
