package taphold_test

import (
	"sort"
	"time"

	"github.com/seqsense/taphold/taphold"
)

// manualClock fires timers only when advanced.
type manualClock struct {
	now    time.Duration
	timers []*manualTimer
	// leaky timers keep firing after Stop, like a callback that was already
	// queued on the event loop when it was cancelled.
	leaky bool
}

type manualTimer struct {
	at      time.Duration
	f       func()
	stopped bool
	fired   bool
	leaky   bool
}

func (t *manualTimer) Stop() bool {
	if t.fired || t.stopped {
		return false
	}
	if !t.leaky {
		t.stopped = true
	}
	return true
}

func (c *manualClock) AfterFunc(d time.Duration, f func()) taphold.Timer {
	t := &manualTimer{at: c.now + d, f: f, leaky: c.leaky}
	c.timers = append(c.timers, t)
	return t
}

// Advance moves the clock to now+d, firing due timers in deadline order.
func (c *manualClock) Advance(d time.Duration) {
	end := c.now + d
	for {
		sort.SliceStable(c.timers, func(i, j int) bool { return c.timers[i].at < c.timers[j].at })
		var next *manualTimer
		for _, t := range c.timers {
			if !t.fired && !t.stopped && t.at <= end {
				next = t
				break
			}
		}
		if next == nil {
			break
		}
		c.now = next.at
		next.fired = true
		next.f()
	}
	c.now = end
}

// AdvanceTo moves the clock to the absolute time at.
func (c *manualClock) AdvanceTo(at time.Duration) {
	if at > c.now {
		c.Advance(at - c.now)
	}
}

func (c *manualClock) pending() int {
	var n int
	for _, t := range c.timers {
		if !t.fired && !t.stopped {
			n++
		}
	}
	return n
}
