package element

import (
	"testing"

	"github.com/seqsense/taphold/taphold"
)

func TestElement_Unbind(t *testing.T) {
	testCases := map[string]struct {
		events   string
		expected map[string]int
	}{
		"Name": {
			events:   "click",
			expected: map[string]int{"click": 0, "click.a": 0, "hold": 1, "hold.a": 1},
		},
		"Namespace": {
			events:   ".a",
			expected: map[string]int{"click": 1, "click.a": 0, "hold": 0, "hold.a": 0},
		},
		"NameNamespace": {
			events:   "click.a",
			expected: map[string]int{"click": 1, "click.a": 0, "hold": 1, "hold.a": 1},
		},
	}
	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			el := &Element{}
			nop := func(taphold.Event) {}
			el.Bind("click", nop)
			el.Bind("click.a", nop)
			el.Bind("hold.a", nop)
			el.Unbind(tt.events)
			for events, n := range tt.expected {
				if got := el.Bound(events); got != n {
					t.Errorf("%s: expected %d bindings, got %d", events, n, got)
				}
			}
		})
	}
}

func TestElement_Trigger(t *testing.T) {
	el := &Element{}
	var order []int
	el.Bind("click", func(taphold.Event) { order = append(order, 1) })
	h := el.Bind("click.x", func(taphold.Event) { order = append(order, 2) })
	el.Bind("click", func(taphold.Event) { order = append(order, 3) })
	el.Bind("hold", func(taphold.Event) { order = append(order, 4) })

	el.Trigger(NewEvent("click", 0, 0))
	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Fatalf("Handlers must run in binding order, got %v", order)
	}

	order = nil
	h.Remove()
	h.Remove()
	el.Trigger(NewEvent("click", 0, 0))
	if len(order) != 2 || order[0] != 1 || order[1] != 3 {
		t.Errorf("Removed handler must not run, got %v", order)
	}
}

func TestElement_TriggerWhileUnbinding(t *testing.T) {
	el := &Element{}
	var n int
	el.Bind("click", func(taphold.Event) {
		n++
		el.Unbind("click")
	})
	el.Bind("click", func(taphold.Event) { n++ })

	el.Trigger(NewEvent("click", 0, 0))
	if n != 2 {
		t.Errorf("Handlers bound at trigger time must all run, got %d", n)
	}
	el.Trigger(NewEvent("click", 0, 0))
	if n != 2 {
		t.Errorf("Unbound handlers must not run, got %d", n)
	}
}

func TestElement_TakeClickHandler(t *testing.T) {
	el := &Element{}
	if h := el.TakeClickHandler(); h != nil {
		t.Fatal("Element without click binding must not return a handler")
	}

	var got string
	el.Bind("click.ns", func(taphold.Event) { got += "ns" })
	el.Bind("click", func(taphold.Event) { got += "first" })
	el.Bind("click", func(taphold.Event) { got += "second" })

	h := el.TakeClickHandler()
	if h == nil {
		t.Fatal("Unnamespaced click handler must be returned")
	}
	h(NewEvent("click", 0, 0))
	if got != "first" {
		t.Errorf("First unnamespaced handler must be taken, got %q", got)
	}
	if n := el.Bound("click"); n != 2 {
		t.Errorf("Only the taken handler must be unbound, %d left", n)
	}
	for _, b := range el.bindings[len(el.bindings):cap(el.bindings)] {
		if b.h != nil {
			t.Error("Taken handler must not stay referenced")
		}
	}

	got = ""
	el.RestoreClickHandler(h)
	el.Trigger(NewEvent("click", 0, 0))
	if got != "nssecondfirst" {
		t.Errorf("Restored handler must be bound again, got %q", got)
	}
}

func TestElement_On(t *testing.T) {
	el := &Element{}
	var n int
	l := el.On("mousedown", func(taphold.Event) { n++ })
	if el.Bound("mousedown.taphold") != 1 {
		t.Fatal("Listener must be bound in its own namespace")
	}
	el.Trigger(NewEvent("mousedown", 0, 0))
	l.Remove()
	el.Trigger(NewEvent("mousedown", 0, 0))
	if n != 1 {
		t.Errorf("Expected 1 call, got %d", n)
	}
}
