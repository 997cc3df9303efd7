// Package scheduler is a tick-driven timer queue. Timers are advanced by the
// game loop, so callbacks always run on the loop's goroutine.
package scheduler

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TimerID identifies a scheduled timer. The zero value is never issued.
type TimerID uint64

type timer struct {
	id        TimerID
	remaining int // ticks still to wait
	progress  *gween.Tween
	fn        func()
}

// Scheduler holds one-shot timers counted in whole ticks. It is not safe for
// concurrent use.
type Scheduler struct {
	tps    int
	next   TimerID
	timers []*timer
}

// New returns a scheduler advanced tps times per second.
func New(tps int) *Scheduler {
	if tps <= 0 {
		tps = 1
	}
	return &Scheduler{tps: tps}
}

// Ticks converts delay to a tick count, rounding partial ticks up.
func (s *Scheduler) Ticks(delay time.Duration) int {
	if delay <= 0 {
		return 0
	}
	scaled := delay * time.Duration(s.tps)
	return int((scaled + time.Second - 1) / time.Second)
}

// After schedules fn to run once delay has elapsed. The tick that schedules
// the timer is counted if Tick runs later in that same tick, so a delay of
// n ticks fires exactly n ticks afterwards and a zero delay fires on the
// next Tick call.
func (s *Scheduler) After(delay time.Duration, fn func()) TimerID {
	ticks := s.Ticks(delay)
	s.next++
	s.timers = append(s.timers, &timer{
		id:        s.next,
		remaining: ticks,
		progress:  gween.New(0, 1, float32(ticks), ease.Linear),
		fn:        fn,
	})
	return s.next
}

// Cancel removes a pending timer. It reports false if the timer already fired
// or never existed. Gameplay never cancels a scheduled level reset.
func (s *Scheduler) Cancel(id TimerID) bool {
	for i, t := range s.timers {
		if t.id == id {
			s.timers = append(s.timers[:i], s.timers[i+1:]...)
			return true
		}
	}
	return false
}

// Pending returns the number of timers that have not fired yet.
func (s *Scheduler) Pending() int {
	return len(s.timers)
}

// Progress reports how far a pending timer is toward firing (0..1).
func (s *Scheduler) Progress(id TimerID) (float64, bool) {
	for _, t := range s.timers {
		if t.id == id {
			v, finished := t.progress.Update(0)
			if finished {
				return 1, true
			}
			return float64(v), true
		}
	}
	return 0, false
}

// Tick advances the clock by one tick and runs every timer that came due, in
// the order they were scheduled. Timers scheduled from a callback start
// counting on the next Tick.
func (s *Scheduler) Tick() {
	if len(s.timers) == 0 {
		return
	}

	current := s.timers
	s.timers = make([]*timer, 0, len(current))
	var due []*timer
	for _, t := range current {
		if t.remaining <= 0 {
			due = append(due, t)
			continue
		}
		t.remaining--
		t.progress.Update(1)
		s.timers = append(s.timers, t)
	}

	for _, t := range due {
		t.fn()
	}
}

// Clear drops every pending timer without running it.
func (s *Scheduler) Clear() {
	s.timers = nil
}
