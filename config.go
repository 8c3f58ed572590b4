package main

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

var errUnknownTouchMode = errors.New("touch must be auto, true or false")

type appConfig struct {
	Touch    string          `yaml:"touch"`
	Elements []elementConfig `yaml:"elements"`
}

type elementConfig struct {
	ID         string `yaml:"id"`
	DurationMs int    `yaml:"duration_ms"`
}

func (e elementConfig) Duration() time.Duration {
	return time.Duration(e.DurationMs) * time.Millisecond
}

func parseConfig(b []byte) (*appConfig, error) {
	c := &appConfig{Touch: "auto"}
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if _, err := c.touchEnabled(false); err != nil {
		return nil, err
	}
	ids := make(map[string]bool)
	for i, e := range c.Elements {
		if e.ID == "" {
			return nil, fmt.Errorf("elements[%d]: id is required", i)
		}
		if ids[e.ID] {
			return nil, fmt.Errorf("elements[%d]: duplicated id %q", i, e.ID)
		}
		ids[e.ID] = true
		if e.DurationMs < 0 {
			return nil, fmt.Errorf("elements[%d]: duration_ms must not be negative", i)
		}
	}
	return c, nil
}

// touchEnabled returns whether touch events are used, given the detected
// platform capability.
func (c *appConfig) touchEnabled(detected bool) (bool, error) {
	switch c.Touch {
	case "", "auto":
		return detected, nil
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, fmt.Errorf("%w: %q", errUnknownTouchMode, c.Touch)
	}
}
