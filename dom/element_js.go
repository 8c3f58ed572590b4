package dom

import (
	"strings"
	"syscall/js"

	"github.com/seqsense/taphold/taphold"
)

// Element is a DOM element usable as a taphold.Target.
// The element's onclick property is its default click handler.
type Element struct {
	v js.Value

	// onclick functions taken by TakeClickHandler, latest last.
	displaced []js.Value
}

func NewElement(v js.Value) *Element {
	return &Element{v: v}
}

// ElementByID looks up an element of the document.
func ElementByID(id string) (*Element, bool) {
	v := js.Global().Get("document").Call("getElementById", id)
	if v.IsNull() {
		return nil, false
	}
	return NewElement(v), true
}

func (el *Element) JS() js.Value {
	return el.v
}

type listener struct {
	el   *Element
	name string
	fn   js.Func
	done bool
}

func (l *listener) Remove() {
	if l.done {
		return
	}
	l.done = true
	l.el.v.Call("removeEventListener", l.name, l.fn)
	l.fn.Release()
}

func (el *Element) On(name string, h taphold.Handler) taphold.Listener {
	parse := func(e js.Value) taphold.Event { return parseEvent(e) }
	switch {
	case strings.HasPrefix(name, "touch"):
		parse = func(e js.Value) taphold.Event { return parseTouchEvent(e) }
	case strings.HasPrefix(name, "mouse"), name == "click":
		parse = func(e js.Value) taphold.Event { return parseMouseEvent(e) }
	}
	l := &listener{el: el, name: name}
	l.fn = js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		h(parse(args[0]))
		return nil
	})
	el.v.Call("addEventListener", name, l.fn)
	return l
}

func position(e taphold.Event) (x, y int, src js.Value) {
	switch s := taphold.Source(e).(type) {
	case MouseEvent:
		return s.ClientX, s.ClientY, s.JS()
	case TouchEvent:
		return s.ClientX, s.ClientY, s.JS()
	case Event:
		return 0, 0, s.JS()
	}
	return 0, 0, js.Null()
}

// Dispatch emits e as a bubbling CustomEvent. The detail holds the
// position and the original input event.
func (el *Element) Dispatch(e taphold.Event) {
	x, y, src := position(e)
	ev := js.Global().Get("CustomEvent").New(e.Type(), map[string]interface{}{
		"bubbles":    true,
		"cancelable": true,
		"detail": map[string]interface{}{
			"clientX":       x,
			"clientY":       y,
			"originalEvent": src,
		},
	})
	el.v.Call("dispatchEvent", ev)
}

// TakeClickHandler clears the element's onclick property and returns a
// handler calling the removed function with a MouseEvent of e's type.
func (el *Element) TakeClickHandler() taphold.Handler {
	fn := el.v.Get("onclick")
	if fn.Type() != js.TypeFunction {
		return nil
	}
	el.v.Set("onclick", js.Null())
	el.displaced = append(el.displaced, fn)
	return func(e taphold.Event) {
		x, y, _ := position(e)
		ev := js.Global().Get("MouseEvent").New(e.Type(), map[string]interface{}{
			"cancelable": true,
			"clientX":    x,
			"clientY":    y,
		})
		fn.Call("call", el.v, ev)
	}
}

// RestoreClickHandler puts the latest function removed by TakeClickHandler
// back to onclick, unless the page has set a new one meanwhile. onclick
// holds a single function, so older ones are dropped once it is set.
func (el *Element) RestoreClickHandler(taphold.Handler) {
	n := len(el.displaced)
	if n == 0 {
		return
	}
	fn := el.displaced[n-1]
	el.displaced[n-1] = js.Undefined()
	el.displaced = el.displaced[:n-1]
	if el.v.Get("onclick").Type() != js.TypeFunction {
		el.v.Set("onclick", fn)
	}
}
