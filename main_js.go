package main

import (
	"fmt"
	"log/slog"
	"os"
	"syscall/js"

	"github.com/seqsense/taphold/dom"
	"github.com/seqsense/taphold/taphold"
)

const defaultConfigPath = "config.yaml"

func main() {
	doc := js.Global().Get("document")

	logDiv := doc.Call("getElementById", "log")
	logPrint := func(msg interface{}) {
		if logDiv.IsNull() {
			println(fmt.Sprint(msg))
			return
		}
		html := logDiv.Get("innerHTML").String()
		logDiv.Set("innerHTML", fmt.Sprintf("%s%v<br/>", html, msg))
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	path := defaultConfigPath
	query := js.Global().Get("URLSearchParams").New(js.Global().Get("location").Get("search"))
	if p := query.Call("get", "config"); !p.IsNull() {
		path = p.String()
	}

	b, err := fetchGet(path)
	if err != nil {
		logPrint(err)
		return
	}
	cfg, err := parseConfig(b)
	if err != nil {
		logPrint(err)
		return
	}
	touch, err := cfg.touchEnabled(dom.TouchSupported())
	if err != nil {
		logPrint(err)
		return
	}
	logger.Info("Input events selected", "touch", touch)

	rec := taphold.New(touch,
		taphold.WithClock(dom.Clock{}),
		taphold.WithLogger(logger),
	)
	a := newApp(rec, func(id string) (taphold.Target, bool) {
		el, ok := dom.ElementByID(id)
		if !ok {
			return nil, false
		}
		return el, true
	}, logPrint)

	for _, e := range cfg.Elements {
		if err := a.Attach(e.ID, e.Duration()); err != nil {
			logPrint(err)
		}
	}

	c := &console{app: a}
	js.Global().Set("tapholdConsole",
		js.FuncOf(func(this js.Value, args []js.Value) interface{} {
			if len(args) != 1 {
				return errorToJS(errArgumentNumber)
			}
			res, err := c.Run(args[0].String())
			if err != nil {
				return errorToJS(err)
			}
			return res
		}),
	)
	logPrint("taphold ready")

	select {}
}
