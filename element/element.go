// Package element provides an in-memory event target with namespaced
// bindings, usable wherever there is no DOM to attach to.
package element

import (
	"strings"
	"sync"

	"github.com/seqsense/taphold/taphold"
)

type binding struct {
	id        uint32
	name      string
	namespace string
	h         taphold.Handler
}

// Element is an event target. The zero value is ready to use.
type Element struct {
	mu       sync.Mutex
	bindings []binding
	nextID   uint32
}

// Handle removes a single binding.
type Handle struct {
	id uint32
	el *Element
}

// Remove unbinds the handler. Removing twice does nothing.
func (h Handle) Remove() {
	if h.el == nil {
		return
	}
	h.el.mu.Lock()
	defer h.el.mu.Unlock()
	h.el.remove(func(b binding) bool { return b.id == h.id })
}

func splitEvents(events string) (name, namespace string) {
	if i := strings.IndexByte(events, '.'); i >= 0 {
		return events[:i], events[i+1:]
	}
	return events, ""
}

// Bind adds h for the event "name" or "name.namespace".
func (el *Element) Bind(events string, h taphold.Handler) Handle {
	name, ns := splitEvents(events)
	el.mu.Lock()
	defer el.mu.Unlock()
	el.nextID++
	el.bindings = append(el.bindings, binding{id: el.nextID, name: name, namespace: ns, h: h})
	return Handle{id: el.nextID, el: el}
}

// Unbind removes bindings matching events. "name" removes all bindings of
// the event, ".namespace" all bindings in the namespace, and
// "name.namespace" only those matching both.
func (el *Element) Unbind(events string) {
	name, ns := splitEvents(events)
	el.mu.Lock()
	defer el.mu.Unlock()
	el.remove(func(b binding) bool {
		return (name == "" || b.name == name) && (ns == "" || b.namespace == ns)
	})
}

func (el *Element) remove(match func(binding) bool) {
	kept := el.bindings[:0]
	for _, b := range el.bindings {
		if !match(b) {
			kept = append(kept, b)
		}
	}
	for i := len(kept); i < len(el.bindings); i++ {
		el.bindings[i] = binding{}
	}
	el.bindings = kept
}

// Bound returns the number of handlers bound to the events.
func (el *Element) Bound(events string) int {
	name, ns := splitEvents(events)
	el.mu.Lock()
	defer el.mu.Unlock()
	var n int
	for _, b := range el.bindings {
		if b.name == name && (ns == "" || b.namespace == ns) {
			n++
		}
	}
	return n
}

// Trigger runs the handlers bound to e.Type() in binding order.
func (el *Element) Trigger(e taphold.Event) {
	el.mu.Lock()
	var hs []taphold.Handler
	for _, b := range el.bindings {
		if b.name == e.Type() {
			hs = append(hs, b.h)
		}
	}
	el.mu.Unlock()

	for _, h := range hs {
		h(e)
	}
}

// On implements taphold.Target.
func (el *Element) On(name string, h taphold.Handler) taphold.Listener {
	return el.Bind(name+".taphold", h)
}

// Dispatch implements taphold.Target.
func (el *Element) Dispatch(e taphold.Event) {
	el.Trigger(e)
}

// TakeClickHandler implements taphold.Target.
// Only the first click binding without a namespace is taken.
func (el *Element) TakeClickHandler() taphold.Handler {
	el.mu.Lock()
	defer el.mu.Unlock()
	for _, b := range el.bindings {
		if b.name == taphold.TypeClick && b.namespace == "" {
			el.remove(func(o binding) bool { return o.id == b.id })
			return b.h
		}
	}
	return nil
}

// RestoreClickHandler implements taphold.Target.
func (el *Element) RestoreClickHandler(h taphold.Handler) {
	el.Bind(taphold.TypeClick, h)
}
