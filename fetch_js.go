package main

import (
	"errors"
	"fmt"
	"syscall/js"
)

// await blocks until the promise settles. It must not be called from a
// js.FuncOf callback.
func await(p js.Value) (js.Value, error) {
	type result struct {
		v   js.Value
		err error
	}
	ch := make(chan result, 1)
	onResolve := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		ch <- result{v: args[0]}
		return nil
	})
	defer onResolve.Release()
	onReject := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		err := errors.New("promise rejected")
		if len(args) > 0 && args[0].Type() == js.TypeObject {
			err = errors.New(args[0].Get("message").String())
		}
		ch <- result{err: err}
		return nil
	})
	defer onReject.Release()

	p.Call("then", onResolve, onReject)
	r := <-ch
	return r.v, r.err
}

func fetchGet(path string) ([]byte, error) {
	res, err := await(js.Global().Call("fetch", path))
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", path, err)
	}
	if !res.Get("ok").Bool() {
		return nil, fmt.Errorf("fetching %s: %s", path, res.Get("statusText").String())
	}
	buf, err := await(res.Call("arrayBuffer"))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	array := js.Global().Get("Uint8Array").New(buf)
	b := make([]byte, array.Get("byteLength").Int())
	js.CopyBytesToGo(b, array)
	return b, nil
}
