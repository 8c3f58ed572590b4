package main

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/seqsense/taphold/taphold"
)

var errUnknownElement = errors.New("unknown element")

// app keeps the elements attached to the recognizer by id.
type app struct {
	rec      *taphold.Recognizer
	lookup   func(id string) (taphold.Target, bool)
	logPrint func(msg interface{})

	targets  map[string]taphold.Target
	loggers  map[string]taphold.Listener
	attached map[string]time.Duration
}

func newApp(rec *taphold.Recognizer, lookup func(string) (taphold.Target, bool), logPrint func(interface{})) *app {
	return &app{
		rec:      rec,
		lookup:   lookup,
		logPrint: logPrint,
		targets:  make(map[string]taphold.Target),
		loggers:  make(map[string]taphold.Listener),
		attached: make(map[string]time.Duration),
	}
}

func (a *app) target(id string) (taphold.Target, error) {
	if t, ok := a.targets[id]; ok {
		return t, nil
	}
	t, ok := a.lookup(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", errUnknownElement, id)
	}
	a.targets[id] = t
	return t, nil
}

func (a *app) Attach(id string, d time.Duration) error {
	t, err := a.target(id)
	if err != nil {
		return err
	}
	err = a.rec.Attach(t, taphold.Config{
		Duration: d,
		ClickHandler: func(taphold.Event) {
			a.logPrint(fmt.Sprintf("%s: click", id))
		},
	})
	if err != nil {
		return fmt.Errorf("%s: %w", id, err)
	}
	if _, ok := a.loggers[id]; !ok {
		a.loggers[id] = t.On(taphold.TypeHold, func(taphold.Event) {
			a.logPrint(fmt.Sprintf("%s: hold", id))
		})
	}
	if d == 0 {
		d = taphold.DefaultDuration
	}
	a.attached[id] = d
	return nil
}

func (a *app) Detach(id string) error {
	t, ok := a.targets[id]
	if !ok || !a.rec.Attached(t) {
		return fmt.Errorf("%w: %s is not attached", errUnknownElement, id)
	}
	a.rec.Detach(t)
	if l, ok := a.loggers[id]; ok {
		l.Remove()
		delete(a.loggers, id)
	}
	delete(a.attached, id)
	return nil
}

func (a *app) Attached() []string {
	var ids []string
	for id, d := range a.attached {
		ids = append(ids, fmt.Sprintf("%s %d", id, d.Milliseconds()))
	}
	sort.Strings(ids)
	return ids
}
