package main

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

type attacher interface {
	Attach(id string, d time.Duration) error
	Detach(id string) error
	Attached() []string
}

type console struct {
	app attacher
}

var errArgumentNumber = errors.New("invalid number of arguments")
var errInvalidCommand = errors.New("invalid command")

var consoleCommands = map[string]func(app attacher, args []string) ([]string, error){
	"attach": func(app attacher, args []string) ([]string, error) {
		var d time.Duration
		switch len(args) {
		case 1:
		case 2:
			ms, err := strconv.Atoi(args[1])
			if err != nil {
				return nil, err
			}
			d = time.Duration(ms) * time.Millisecond
		default:
			return nil, errArgumentNumber
		}
		if err := app.Attach(args[0], d); err != nil {
			return nil, err
		}
		return nil, nil
	},
	"detach": func(app attacher, args []string) ([]string, error) {
		if len(args) != 1 {
			return nil, errArgumentNumber
		}
		return nil, app.Detach(args[0])
	},
	"list": func(app attacher, args []string) ([]string, error) {
		if len(args) != 0 {
			return nil, errArgumentNumber
		}
		return app.Attached(), nil
	},
}

func (c *console) Run(line string) (string, error) {
	args := strings.Fields(line)
	if len(args) == 0 {
		return "", nil
	}
	fn, ok := consoleCommands[args[0]]
	if !ok {
		return "", errInvalidCommand
	}
	res, err := fn(c.app, args[1:])
	if err != nil {
		return "", err
	}
	return strings.Join(res, "\n"), nil
}
