package taphold

import (
	"errors"
	"fmt"
	"time"
)

// DefaultDuration is the press length separating a tap from a hold.
const DefaultDuration = time.Second

// ErrInvalidDuration is returned for a negative hold duration.
var ErrInvalidDuration = errors.New("invalid hold duration")

// Config is the per-attachment configuration.
type Config struct {
	// Duration is the hold threshold. Zero selects DefaultDuration.
	Duration time.Duration
	// ClickHandler is invoked on a tap when the target has no click
	// handler of its own.
	ClickHandler Handler
}

func (c Config) merge() (Config, error) {
	if c.Duration < 0 {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidDuration, c.Duration)
	}
	if c.Duration == 0 {
		c.Duration = DefaultDuration
	}
	return c, nil
}
