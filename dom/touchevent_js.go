package dom

import (
	"syscall/js"
)

// TouchEvent holds the position of the first changed touch point.
type TouchEvent struct {
	UIEvent
	ClientX, ClientY int
}

func parseTouchEvent(event js.Value) TouchEvent {
	e := TouchEvent{
		UIEvent: UIEvent{
			Event: Event{
				event: event,
			},
		},
	}
	changed := event.Get("changedTouches")
	if !changed.IsUndefined() && changed.Get("length").Int() > 0 {
		t := changed.Index(0)
		e.ClientX = t.Get("clientX").Int()
		e.ClientY = t.Get("clientY").Int()
	}
	return e
}

// TouchSupported reports whether the browser provides touch events.
func TouchSupported() bool {
	has := js.Global().Get("Reflect").Get("has")
	w := js.Global()
	return has.Invoke(w, "ontouchstart").Bool() ||
		has.Invoke(w, "onmsgesturechange").Bool()
}
