package animations

// Animation steps through frame indices First..Last, holding each one for
// SpeedInTps ticks. Frames are plain indices; callers map them to images or
// colors.
type Animation struct {
	First      int
	Last       int
	Step       int     // how many indices do we move per frame
	SpeedInTps float32 // how many ticks before next frame
	PingPong   bool    // run back down to First instead of wrapping
	Looped     bool    // set once the first cycle completes

	frameCounter float32
	frame        int
	dir          int
}

func (a *Animation) Update() {
	a.frameCounter -= 1.0
	if a.frameCounter >= 0.0 {
		return
	}
	a.frameCounter = a.SpeedInTps
	a.frame += a.Step * a.dir

	switch {
	case a.frame > a.Last && a.PingPong:
		a.frame = max(a.First, a.Last-a.Step)
		a.dir = -1
	case a.frame > a.Last:
		a.Looped = true
		a.frame = a.First
	case a.frame < a.First:
		a.Looped = true
		a.frame = min(a.Last, a.First+a.Step)
		a.dir = 1
	}
}

func (a *Animation) Frame() int {
	return a.frame
}

func (a *Animation) Restart() {
	a.frame = a.First
	a.frameCounter = a.SpeedInTps
	a.dir = 1
	a.Looped = false
}

func NewAnimation(first, last, step int, speed float32) *Animation {
	a := &Animation{
		First:      first,
		Last:       last,
		Step:       step,
		SpeedInTps: speed,
	}
	a.Restart()
	return a
}

// NewPingPong returns an animation that bounces between first and last.
func NewPingPong(first, last int, speed float32) *Animation {
	a := NewAnimation(first, last, 1, speed)
	a.PingPong = true
	return a
}
