package dom

import (
	"syscall/js"
)

type MouseEvent struct {
	UIEvent
	ClientX, ClientY int
}

func parseMouseEvent(event js.Value) MouseEvent {
	return MouseEvent{
		UIEvent: UIEvent{
			Event: Event{
				event: event,
			},
		},
		ClientX: event.Get("clientX").Int(),
		ClientY: event.Get("clientY").Int(),
	}
}
