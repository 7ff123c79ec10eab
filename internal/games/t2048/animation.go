package t2048

// Animation constants
const (
	slideAnimationDuration = 8 // ~133ms at 60fps
	popAnimationDuration   = 6 // ~100ms at 60fps
)

// AnimationPhase represents the current phase of animation.
type AnimationPhase int

const (
	PhaseNone AnimationPhase = iota
	PhaseSlide
	PhasePop
)

// TileAnimation is one tile sliding between two cells.
type TileAnimation struct {
	Value    int     // Value before the move
	From     Cell    // Start cell
	To       Cell    // End cell
	Progress float64 // 0.0 → 1.0
}

// animator plays the slide and pop effects after a move. It only affects
// rendering; the session has already committed the move.
type animator struct {
	phase  AnimationPhase
	ticks  int
	slides []TileAnimation
	pops   map[int]bool // Tile ids that pop after the slide
}

// start prepares a slide from the move trail, followed by a pop of the
// merged and spawned tiles.
func (a *animator) start(trail []Step, tiles []Tile) {
	byID := make(map[int]Tile, len(tiles))
	a.pops = make(map[int]bool)
	for _, t := range tiles {
		byID[t.ID] = t
		if t.IsNew || t.IsMerged {
			a.pops[t.ID] = true
		}
	}

	a.slides = a.slides[:0]
	for _, s := range trail {
		result, ok := byID[s.Into]
		if !ok {
			continue
		}
		value := result.Value
		if result.IsMerged {
			value /= 2
		}
		a.slides = append(a.slides, TileAnimation{Value: value, From: s.From, To: s.To})
	}

	a.phase = PhaseSlide
	a.ticks = 0
}

// update advances the animation state.
// Returns true if animation is still in progress.
func (a *animator) update() bool {
	var duration int
	switch a.phase {
	case PhaseSlide:
		duration = slideAnimationDuration
	case PhasePop:
		duration = popAnimationDuration
	default:
		return false
	}

	a.ticks++
	progress := min(float64(a.ticks)/float64(duration), 1.0)
	for i := range a.slides {
		a.slides[i].Progress = progress
	}

	if a.ticks < duration {
		return true
	}

	// Slide finished: pop merged and new tiles if there are any
	if a.phase == PhaseSlide && len(a.pops) > 0 {
		a.phase = PhasePop
		a.ticks = 0
		return true
	}
	a.stop()
	return false
}

func (a *animator) stop() {
	a.phase = PhaseNone
	a.ticks = 0
	a.slides = nil
	a.pops = nil
}

func (a *animator) active() bool {
	return a.phase != PhaseNone
}

// popping reports whether tile id is highlighted in the pop phase.
func (a *animator) popping(id int) bool {
	return a.phase == PhasePop && a.pops[id]
}

// easeOutQuad provides smooth deceleration for animation.
func easeOutQuad(t float64) float64 {
	return t * (2 - t)
}

// position returns the interpolated (row, col) of a sliding tile.
func (t TileAnimation) position() (row, col float64) {
	p := easeOutQuad(t.Progress)
	row = float64(t.From.Row) + (float64(t.To.Row)-float64(t.From.Row))*p
	col = float64(t.From.Col) + (float64(t.To.Col)-float64(t.From.Col))*p
	return row, col
}
