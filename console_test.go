package main

import (
	"errors"
	"testing"
	"time"

	"github.com/seqsense/taphold/element"
	"github.com/seqsense/taphold/taphold"
)

type testApp struct {
	app      *app
	elements map[string]*element.Element
	logs     []string
}

func newTestApp() *testApp {
	ta := &testApp{
		elements: map[string]*element.Element{
			"button1": {},
			"button2": {},
		},
	}
	lookup := func(id string) (taphold.Target, bool) {
		el, ok := ta.elements[id]
		return el, ok
	}
	ta.app = newApp(taphold.New(false), lookup, func(msg interface{}) {
		ta.logs = append(ta.logs, msg.(string))
	})
	return ta
}

func TestConsole(t *testing.T) {
	ta := newTestApp()
	c := &console{app: ta.app}

	testCases := []struct {
		line     string
		expected string
		err      error
	}{
		{line: "", expected: ""},
		{line: "list", expected: ""},
		{line: "attach button1", expected: ""},
		{line: "attach button2 500", expected: ""},
		{line: "list", expected: "button1 1000\nbutton2 500"},
		{line: "attach button2 750", expected: ""},
		{line: "list", expected: "button1 1000\nbutton2 750"},
		{line: "detach button1", expected: ""},
		{line: "list", expected: "button2 750"},
		{line: "detach button1", err: errUnknownElement},
		{line: "attach button3", err: errUnknownElement},
		{line: "attach button1 -5", err: taphold.ErrInvalidDuration},
		{line: "attach", err: errArgumentNumber},
		{line: "attach a 1 2", err: errArgumentNumber},
		{line: "detach", err: errArgumentNumber},
		{line: "list all", err: errArgumentNumber},
		{line: "hold button1", err: errInvalidCommand},
	}
	for _, tt := range testCases {
		res, err := c.Run(tt.line)
		if tt.err != nil {
			if !errors.Is(err, tt.err) {
				t.Errorf("%q: expected error %v, got %v", tt.line, tt.err, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: unexpected error %v", tt.line, err)
			continue
		}
		if res != tt.expected {
			t.Errorf("%q: expected %q, got %q", tt.line, tt.expected, res)
		}
	}

	if _, err := c.Run("attach button1 abc"); err == nil {
		t.Error("Non-numeric duration must be rejected")
	}
}

func TestApp_Events(t *testing.T) {
	ta := newTestApp()
	if err := ta.app.Attach("button1", time.Hour); err != nil {
		t.Fatal(err)
	}
	if err := ta.app.Attach("button1", time.Hour); err != nil {
		t.Fatal(err)
	}
	el := ta.elements["button1"]
	if n := el.Bound(taphold.TypeHold); n != 1 {
		t.Errorf("Expected 1 hold logger, got %d", n)
	}

	el.Trigger(element.NewEvent("mousedown", 0, 0))
	el.Trigger(element.NewEvent("mouseup", 0, 0))
	el.Trigger(element.NewEvent(taphold.TypeHold, 0, 0))
	if len(ta.logs) != 2 || ta.logs[0] != "button1: click" || ta.logs[1] != "button1: hold" {
		t.Errorf("Unexpected logs: %v", ta.logs)
	}

	if err := ta.app.Detach("button1"); err != nil {
		t.Fatal(err)
	}
	if n := el.Bound(taphold.TypeHold); n != 0 {
		t.Errorf("Hold logger must be removed, got %d", n)
	}
	el.Trigger(element.NewEvent("mousedown", 0, 0))
	el.Trigger(element.NewEvent("mouseup", 0, 0))
	if len(ta.logs) != 2 {
		t.Errorf("Detached element must not log, got %v", ta.logs)
	}
}
