// Package taphold recognizes taps and holds on UI elements.
//
// A press released before the configured duration is a tap and invokes the
// element's click action once. A press kept until the duration elapses is a
// hold and dispatches a "hold" event on the element instead. Moving out of
// the element cancels the press, so neither fires.
//
// The element is anything implementing Target; the click action is the
// element's own default click handler, captured on the first press and
// re-invoked by the recognizer, or Config.ClickHandler if there is none.
//
//	rec := taphold.New(touchSupported)
//	err := rec.Attach(target, taphold.Config{Duration: 800 * time.Millisecond})
//
// Timers run on the Clock given with WithClock. Hosts with a single event
// loop should provide a clock firing on that loop.
package taphold
