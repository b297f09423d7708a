package interact

import "time"

// Timer is a one-shot deadline driven by an external clock. It never
// calls back on its own: the owner polls Fire with the current time, so a
// stopped timer can never fire late.
type Timer struct {
	deadline time.Time
	armed    bool
}

// Arm schedules the timer to fire d after now, replacing any pending
// deadline.
func (t *Timer) Arm(now time.Time, d time.Duration) {
	t.deadline = now.Add(d)
	t.armed = true
}

// Stop disarms the timer. It reports whether the timer was armed.
func (t *Timer) Stop() bool {
	was := t.armed
	t.armed = false
	return was
}

// Fire reports whether the deadline has passed. It returns true at most
// once per Arm.
func (t *Timer) Fire(now time.Time) bool {
	if !t.armed || now.Before(t.deadline) {
		return false
	}
	t.armed = false
	return true
}

// Deadline returns the pending deadline, if any.
func (t *Timer) Deadline() (time.Time, bool) {
	return t.deadline, t.armed
}
