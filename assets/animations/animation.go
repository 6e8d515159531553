package animations

// Animation cycles a frame index over [First, Last]. The index advances
// when the tick counter, reloaded with SpeedInTps, drops below zero.
type Animation struct {
	First            int
	Last             int
	Step             int     // how many indices do we move per advance
	SpeedInTps       float32 // how many ticks before next frame
	frameCounter     float32
	frame            int
	Looped           bool
	FreezeOnComplete bool // If true, stay on last frame instead of looping
}

// Update consumes one tick.
func (a *Animation) Update() {
	a.frameCounter -= 1.0
	if a.frameCounter >= 0.0 {
		return
	}

	a.frameCounter = a.SpeedInTps
	a.frame += a.Step
	if a.frame > a.Last {
		a.Looped = true
		if a.FreezeOnComplete {
			a.frame = a.Last
		} else {
			a.frame = a.First
		}
	}
}

func (a *Animation) Frame() int {
	return a.frame
}

// Len is the number of distinct frames the animation visits.
func (a *Animation) Len() int {
	if a.Last < a.First {
		return 0
	}
	return (a.Last-a.First)/a.Step + 1
}

func (a *Animation) Restart() {
	a.frame = a.First
	a.frameCounter = a.SpeedInTps
	a.Looped = false
}

func NewAnimation(first, last, step int, speed float32) *Animation {
	if step <= 0 {
		step = 1
	}
	return &Animation{
		First:        first,
		Last:         last,
		Step:         step,
		SpeedInTps:   speed,
		frameCounter: speed,
		frame:        first,
	}
}

// NewCycle builds an animation over frames [0, frames).
func NewCycle(frames int, speed float32) *Animation {
	if frames < 1 {
		frames = 1
	}
	return NewAnimation(0, frames-1, 1, speed)
}
