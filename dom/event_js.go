package dom

import (
	"syscall/js"
)

type UIEvent struct {
	Event
}

type Event struct {
	event js.Value
}

func (e Event) Type() string {
	return e.event.Get("type").String()
}

func (e Event) PreventDefault() {
	e.event.Call("preventDefault")
}

func (e Event) StopPropagation() {
	e.event.Call("stopPropagation")
}

func (e Event) JS() js.Value {
	return e.event
}

func parseEvent(event js.Value) Event {
	return Event{event: event}
}
