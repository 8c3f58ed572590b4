package taphold

// Listener is a live event binding.
type Listener interface {
	Remove()
}

// Target is a UI element the recognizer attaches to.
//
// Targets are used as map keys and must be comparable; pass the same
// value to Attach and Detach.
type Target interface {
	// On binds h to the named input event.
	On(name string, h Handler) Listener
	// Dispatch delivers a synthetic event to the target's listeners.
	Dispatch(e Event)
	// TakeClickHandler removes the target's default (unnamespaced) click
	// handler from normal dispatch and returns it, or nil if none is bound.
	TakeClickHandler() Handler
	// RestoreClickHandler binds a handler previously returned by
	// TakeClickHandler again. On Detach it is called once per captured
	// handler, latest first.
	RestoreClickHandler(h Handler)
}

// Bindings lists the input event names driving a recognizer.
type Bindings struct {
	Start []string
	End   []string
	Leave []string
}

// BindingsFor returns the input events for touch or mouse platforms.
func BindingsFor(touch bool) Bindings {
	if touch {
		return Bindings{
			Start: []string{"touchstart"},
			End:   []string{"touchend"},
			Leave: []string{"touchmove", "touchcancel"},
		}
	}
	return Bindings{
		Start: []string{"mousedown"},
		End:   []string{"mouseup"},
		Leave: []string{"mouseleave"},
	}
}
