package skyworld

// scheduledFunc is a callback registered with Schedule or ScheduleInterval.
type scheduledFunc struct {
	fn       func(dt float64)
	interval float64 // 0 runs every tick
	elapsed  float64
}

// Schedule registers fn to run once per tick with the tick's dt.
// Callbacks stay registered for the life of the scene.
func (s *Scene) Schedule(fn func(dt float64)) {
	s.scheduled = append(s.scheduled, scheduledFunc{fn: fn})
}

// ScheduleInterval registers fn to run every interval seconds of scene time.
// fn receives the time elapsed since its previous call. A non-positive
// interval behaves like Schedule.
func (s *Scene) ScheduleInterval(fn func(dt float64), interval float64) {
	if interval < 0 {
		interval = 0
	}
	s.scheduled = append(s.scheduled, scheduledFunc{fn: fn, interval: interval})
}

func (s *Scene) runScheduled(dt float64) {
	// Index loop: a callback may register another one mid-tick.
	for i := 0; i < len(s.scheduled); i++ {
		sf := &s.scheduled[i]
		if sf.interval == 0 {
			sf.fn(dt)
			continue
		}
		sf.elapsed += dt
		if sf.elapsed >= sf.interval {
			elapsed := sf.elapsed
			sf.elapsed = 0
			sf.fn(elapsed)
		}
	}
}
