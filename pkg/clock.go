package pkg

import (
	"fmt"
	"time"
)

// Clock is a countdown measured in whole seconds. It only moves when the
// match ticks it, so there is no goroutine behind it.
type Clock struct {
	Duration  time.Duration
	Remaining time.Duration
	Increment time.Duration
}

func (cl *Clock) String() string {
	return fmt.Sprintf("%d:%02d", int(cl.Remaining.Minutes()), int(cl.Remaining.Seconds())%60)
}

func NewClock(duration, increment time.Duration) *Clock {
	duration = duration.Truncate(time.Second)
	return &Clock{
		Duration:  duration,
		Remaining: duration,
		Increment: increment.Truncate(time.Second),
	}
}

// Decrement takes one second off the clock. It saturates at zero.
func (cl *Clock) Decrement() {
	if cl.Remaining < time.Second {
		cl.Remaining = 0
		return
	}
	cl.Remaining -= time.Second
}

// AddIncrement credits the per-move increment after a completed move.
func (cl *Clock) AddIncrement() {
	cl.Remaining += cl.Increment
}
