package tui

import (
	"sync"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/seqsense/taphold/taphold"
)

// Clock delivers expired timers as messages, so timer callbacks run inside
// Update together with the mouse handlers.
type Clock struct {
	ch        chan *timer
	done      chan struct{}
	closeOnce sync.Once
}

type timer struct {
	t       *time.Timer
	f       func()
	stopped atomic.Bool
}

func NewClock() *Clock {
	return &Clock{
		ch:   make(chan *timer, 16),
		done: make(chan struct{}),
	}
}

func (c *Clock) AfterFunc(d time.Duration, f func()) taphold.Timer {
	tm := &timer{f: f}
	tm.t = time.AfterFunc(d, func() {
		c.deliver(tm)
	})
	return tm
}

// deliver queues an expired timer. It gives up once the clock is closed
// and reports whether the timer was queued.
func (c *Clock) deliver(tm *timer) bool {
	if tm.stopped.Load() {
		return false
	}
	select {
	case c.ch <- tm:
		return true
	case <-c.done:
		return false
	}
}

// Close stops delivering timers. Pending and later Wait commands return nil.
func (c *Clock) Close() {
	c.closeOnce.Do(func() {
		close(c.done)
	})
}

func (t *timer) Stop() bool {
	t.stopped.Store(true)
	return t.t.Stop()
}

// TimerMsg is sent when a timer expires.
type TimerMsg struct {
	t *timer
}

// Fire runs the timer callback unless the timer was stopped after it
// expired.
func (m TimerMsg) Fire() {
	if m.t.stopped.Load() {
		return
	}
	m.t.f()
}

// Wait returns a command waiting for the next expired timer.
func (c *Clock) Wait() tea.Cmd {
	return func() tea.Msg {
		select {
		case tm := <-c.ch:
			return TimerMsg{t: tm}
		case <-c.done:
			return nil
		}
	}
}
