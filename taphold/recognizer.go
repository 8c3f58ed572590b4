package taphold

import (
	"log/slog"
	"sync"
)

// Option configures a Recognizer.
type Option func(*Recognizer)

// WithClock sets the clock used for hold timers. Defaults to SystemClock.
func WithClock(c Clock) Option {
	return func(r *Recognizer) {
		r.clock = c
	}
}

// WithLogger sets the logger for attach and session transitions.
func WithLogger(l *slog.Logger) Option {
	return func(r *Recognizer) {
		r.logger = l
	}
}

// Recognizer turns press/release input on attached targets into either a
// click or a hold, never both.
//
// Each press starts a session. Releasing before the configured duration
// invokes the target's click action; staying pressed until the duration
// elapses dispatches a "hold" event on the target. Leaving the target
// cancels the session.
type Recognizer struct {
	bindings Bindings
	clock    Clock
	logger   *slog.Logger

	mu          sync.Mutex
	attachments map[Target]*attachment
	lastSession uint64
}

type attachment struct {
	target    Target
	config    Config
	listeners []Listener
	// displaced holds the target's own click handlers in capture order,
	// taken out of normal dispatch. The latest one is the click action.
	displaced []Handler
	session   session
}

type session struct {
	id          uint64
	press       Event
	clickAction Handler
	timer       Timer

	holdFired  bool
	clickFired bool
	cancelled  bool
}

func (s *session) resolved() bool {
	return s.holdFired || s.clickFired
}

// New creates a Recognizer using touch or mouse input events.
func New(touch bool, opts ...Option) *Recognizer {
	r := &Recognizer{
		bindings:    BindingsFor(touch),
		clock:       SystemClock,
		logger:      slog.Default(),
		attachments: make(map[Target]*attachment),
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Attach starts recognizing gestures on t.
// Attaching an already attached target replaces its configuration and
// listeners; captured click handlers are kept.
func (r *Recognizer) Attach(t Target, c Config) error {
	c, err := c.merge()
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	a := &attachment{target: t, config: c}
	if prev, ok := r.attachments[t]; ok {
		prev.release()
		a.displaced = prev.displaced
	}
	r.attachments[t] = a

	on := func(names []string, fn func(*attachment, Event)) {
		for _, name := range names {
			a.listeners = append(a.listeners, t.On(name, func(e Event) {
				fn(a, e)
			}))
		}
	}
	on(r.bindings.Start, r.start)
	on(r.bindings.End, r.end)
	on(r.bindings.Leave, r.leave)

	r.logger.Debug("taphold attached", "duration", c.Duration)
	return nil
}

// Detach removes the listeners installed by Attach and gives every
// captured click handler back to t, latest first. Detaching a target that
// is not attached does nothing.
func (r *Recognizer) Detach(t Target) {
	r.mu.Lock()
	a, ok := r.attachments[t]
	if !ok {
		r.mu.Unlock()
		return
	}
	delete(r.attachments, t)
	a.release()
	r.mu.Unlock()

	for i := len(a.displaced) - 1; i >= 0; i-- {
		t.RestoreClickHandler(a.displaced[i])
	}
	r.logger.Debug("taphold detached")
}

// Attached reports whether t is attached.
func (r *Recognizer) Attached(t Target) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.attachments[t]
	return ok
}

func (a *attachment) release() {
	for _, l := range a.listeners {
		l.Remove()
	}
	a.listeners = nil
	if a.session.timer != nil {
		a.session.timer.Stop()
		a.session.timer = nil
	}
}

// current must be called with r.mu held.
func (r *Recognizer) current(a *attachment) bool {
	return r.attachments[a.target] == a
}

func (r *Recognizer) start(a *attachment, e Event) {
	suppress(e)

	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.current(a) {
		return
	}

	if a.session.timer != nil {
		a.session.timer.Stop()
	}

	action := a.config.ClickHandler
	if h := a.target.TakeClickHandler(); h != nil {
		a.displaced = append(a.displaced, h)
	}
	if n := len(a.displaced); n > 0 {
		action = a.displaced[n-1]
	}

	r.lastSession++
	id := r.lastSession
	a.session = session{
		id:          id,
		press:       e,
		clickAction: action,
	}
	a.session.timer = r.clock.AfterFunc(a.config.Duration, func() {
		r.expire(a, id)
	})
	r.logger.Debug("taphold armed", "session", id, "duration", a.config.Duration)
}

func (r *Recognizer) expire(a *attachment, id uint64) {
	r.mu.Lock()
	s := &a.session
	if !r.current(a) || s.id != id || s.cancelled || s.resolved() {
		r.mu.Unlock()
		return
	}
	s.holdFired = true
	s.timer = nil
	press := s.press
	r.mu.Unlock()

	r.logger.Debug("taphold hold", "session", id)
	a.target.Dispatch(Retype(press, TypeHold))
}

func (r *Recognizer) end(a *attachment, e Event) {
	suppress(e)

	r.mu.Lock()
	s := &a.session
	if !r.current(a) || s.id == 0 || s.cancelled {
		r.mu.Unlock()
		return
	}
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	if s.resolved() {
		r.mu.Unlock()
		return
	}
	s.clickFired = true
	id, action := s.id, s.clickAction
	r.mu.Unlock()

	r.logger.Debug("taphold click", "session", id, "action", action != nil)
	if action != nil {
		action(Retype(e, TypeClick))
	}
}

func (r *Recognizer) leave(a *attachment, e Event) {
	suppress(e)

	r.mu.Lock()
	defer r.mu.Unlock()
	s := &a.session
	if !r.current(a) || s.id == 0 || s.resolved() || s.cancelled {
		return
	}
	s.cancelled = true
	r.logger.Debug("taphold cancelled", "session", s.id)
}
