package element

import "time"

// Event is a plain input event.
type Event struct {
	Name string
	X, Y int
	Time time.Time

	DefaultPrevented   bool
	PropagationStopped bool
}

// NewEvent creates an event of the given type at (x, y).
func NewEvent(name string, x, y int) *Event {
	return &Event{Name: name, X: x, Y: y, Time: time.Now()}
}

func (e *Event) Type() string {
	return e.Name
}

func (e *Event) PreventDefault() {
	e.DefaultPrevented = true
}

func (e *Event) StopPropagation() {
	e.PropagationStopped = true
}
