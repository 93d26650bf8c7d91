package term

import "time"

// clickTracker counts rapid same-place primary clicks so the host can
// raise double-click. The count wraps after a triple.
type clickTracker struct {
	maxInterval time.Duration
	maxDistance int

	lastX, lastY int
	lastTime     time.Time
	count        int
}

func newClickTracker() *clickTracker {
	return &clickTracker{maxInterval: 500 * time.Millisecond, maxDistance: 1}
}

// record registers a primary-button release and returns the click count
// (1..3).
func (t *clickTracker) record(x, y int, when time.Time) int {
	if when.IsZero() {
		when = time.Now()
	}
	if t.inSequence(x, y, when) {
		t.count++
		if t.count > 3 {
			t.count = 1
		}
	} else {
		t.count = 1
	}
	t.lastX, t.lastY = x, y
	t.lastTime = when
	return t.count
}

func (t *clickTracker) inSequence(x, y int, when time.Time) bool {
	if t.count == 0 || t.lastTime.IsZero() {
		return false
	}
	elapsed := when.Sub(t.lastTime)
	if elapsed < 0 || elapsed > t.maxInterval {
		return false
	}
	return abs(x-t.lastX)+abs(y-t.lastY) <= t.maxDistance
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
