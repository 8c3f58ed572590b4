package dom

import (
	"syscall/js"
	"time"

	"github.com/seqsense/taphold/taphold"
)

// Clock schedules timers with setTimeout so they run on the browser event
// loop together with the input handlers.
type Clock struct{}

type timer struct {
	id   js.Value
	fn   js.Func
	done bool
}

func (Clock) AfterFunc(d time.Duration, f func()) taphold.Timer {
	t := &timer{}
	t.fn = js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		if t.done {
			return nil
		}
		t.done = true
		t.fn.Release()
		f()
		return nil
	})
	t.id = js.Global().Call("setTimeout", t.fn, d.Milliseconds())
	return t
}

func (t *timer) Stop() bool {
	if t.done {
		return false
	}
	t.done = true
	js.Global().Call("clearTimeout", t.id)
	t.fn.Release()
	return true
}
