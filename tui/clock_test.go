package tui

import (
	"testing"
	"time"
)

func TestClock_Deliver(t *testing.T) {
	t.Run("Stopped", func(t *testing.T) {
		c := NewClock()
		tm := &timer{t: time.NewTimer(time.Hour), f: func() {}}
		tm.Stop()
		if c.deliver(tm) {
			t.Error("Stopped timer must not be queued")
		}
		if n := len(c.ch); n != 0 {
			t.Errorf("Expected empty queue, got %d", n)
		}
	})
	t.Run("Closed", func(t *testing.T) {
		c := NewClock()
		c.Close()
		c.Close()

		done := make(chan struct{})
		go func() {
			for i := 0; i < cap(c.ch)*2; i++ {
				c.deliver(&timer{t: time.NewTimer(time.Hour), f: func() {}})
			}
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("Delivering to a closed clock must not block")
		}
		if msg := c.Wait()(); msg != nil {
			if _, ok := msg.(TimerMsg); !ok {
				t.Errorf("Unexpected message %T", msg)
			}
		}
	})
}
