package common

// Timer accumulates elapsed seconds up to a fixed duration.
type Timer struct {
	duration     float64
	elapsed      float64
	justFinished bool
	updated      bool
}

func NewTimer(duration float64) *Timer {
	return &Timer{duration: duration}
}

func (t *Timer) Update(dt float64) {
	if t == nil {
		return
	}
	// a zero-length timer completes on its first Update, not at creation
	wasFinished := t.updated && t.Finished()
	t.updated = true
	t.elapsed = min(t.elapsed+dt, t.duration)
	t.justFinished = !wasFinished && t.Finished()
}

func (t *Timer) Reset() {
	if t == nil {
		return
	}
	t.elapsed = 0
	t.justFinished = false
	t.updated = false
}

func (t *Timer) Finished() bool {
	return t != nil && t.elapsed >= t.duration
}

// JustFinished reports whether the most recent Update completed the timer.
func (t *Timer) JustFinished() bool {
	return t != nil && t.justFinished
}

// Ratio is elapsed/duration in [0, 1]. A zero-length timer reports 1.
func (t *Timer) Ratio() float64 {
	if t == nil || t.duration <= 0 {
		return 1
	}
	return t.elapsed / t.duration
}

func (t *Timer) Duration() float64 {
	if t == nil {
		return 0
	}
	return t.duration
}

func (t *Timer) Elapsed() float64 {
	if t == nil {
		return 0
	}
	return t.elapsed
}
