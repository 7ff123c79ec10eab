package core

// DefaultSwipeThreshold is the minimum displacement, in pixels, along the
// dominant axis for a drag to count as a swipe.
const DefaultSwipeThreshold = 30.0

// SwipeTracker turns a press/release pair into at most one directional action.
// Terminal mouse events report cells, so displacement is scaled by the
// nominal cell size before comparing against the pixel threshold.
type SwipeTracker struct {
	Threshold float64 // Pixels; <= 0 means DefaultSwipeThreshold
	CellW     float64 // Pixels per column; <= 0 means 1
	CellH     float64 // Pixels per row; <= 0 means 1

	active bool
	startX int
	startY int
}

// NewSwipeTracker creates a tracker with the given threshold and cell size.
func NewSwipeTracker(threshold, cellW, cellH float64) *SwipeTracker {
	return &SwipeTracker{Threshold: threshold, CellW: cellW, CellH: cellH}
}

// Begin records the start of a drag. Starting a new drag discards any
// unfinished one.
func (s *SwipeTracker) Begin(x, y int) {
	s.active = true
	s.startX = x
	s.startY = y
}

// Active reports whether a drag is in progress.
func (s *SwipeTracker) Active() bool {
	return s.active
}

// Cancel drops the drag in progress without producing an action.
func (s *SwipeTracker) Cancel() {
	s.active = false
}

// End finishes the drag at (x, y). It returns the swipe direction and true
// when the dominant-axis displacement exceeds the threshold, otherwise
// ActionNone and false. A release without a matching Begin is ignored.
func (s *SwipeTracker) End(x, y int) (Action, bool) {
	if !s.active {
		return ActionNone, false
	}
	s.active = false
	return Swipe(float64(x-s.startX)*s.cellW(), float64(y-s.startY)*s.cellH(), s.threshold())
}

func (s *SwipeTracker) threshold() float64 {
	if s.Threshold <= 0 {
		return DefaultSwipeThreshold
	}
	return s.Threshold
}

func (s *SwipeTracker) cellW() float64 {
	if s.CellW <= 0 {
		return 1
	}
	return s.CellW
}

func (s *SwipeTracker) cellH() float64 {
	if s.CellH <= 0 {
		return 1
	}
	return s.CellH
}

// Swipe classifies a displacement (dx, dy) in pixels. Positive dy points down.
// Ties between the axes resolve vertically.
func Swipe(dx, dy, threshold float64) (Action, bool) {
	absDx, absDy := dx, dy
	if absDx < 0 {
		absDx = -absDx
	}
	if absDy < 0 {
		absDy = -absDy
	}

	if max(absDx, absDy) <= threshold {
		return ActionNone, false
	}

	if absDx > absDy {
		if dx > 0 {
			return ActionRight, true
		}
		return ActionLeft, true
	}
	if dy > 0 {
		return ActionDown, true
	}
	return ActionUp, true
}
