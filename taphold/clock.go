package taphold

import "time"

// Timer is a pending callback that can be stopped.
type Timer interface {
	Stop() bool
}

// Clock schedules the hold timer.
// Hosts running an event loop provide a clock that fires on that loop.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// SystemClock fires timers on their own goroutine using time.AfterFunc.
var SystemClock Clock = systemClock{}

type systemClock struct{}

func (systemClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
