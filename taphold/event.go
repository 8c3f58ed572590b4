package taphold

// Synthetic event types produced by the recognizer.
const (
	TypeClick = "click"
	TypeHold  = "hold"
)

// Event is an input event the recognizer can suppress.
type Event interface {
	Type() string
	PreventDefault()
	StopPropagation()
}

// Handler receives events.
type Handler func(Event)

type retyped struct {
	Event
	typ string
}

func (e retyped) Type() string {
	return e.typ
}

func (e retyped) Unwrap() Event {
	return e.Event
}

// Retype returns e with its type replaced by typ.
// All other data of e is kept; Source returns the original event.
func Retype(e Event, typ string) Event {
	if r, ok := e.(retyped); ok {
		e = r.Event
	}
	return retyped{Event: e, typ: typ}
}

// Source returns the event a synthetic event was built from,
// or e itself if it is not synthetic.
func Source(e Event) Event {
	if r, ok := e.(interface{ Unwrap() Event }); ok {
		return r.Unwrap()
	}
	return e
}

func suppress(e Event) {
	if e == nil {
		return
	}
	e.PreventDefault()
	e.StopPropagation()
}
