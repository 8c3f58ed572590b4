// Package tui is a terminal front end for the tap-hold recognizer.
// A single button reacts to terminal mouse reports: a short press counts
// as a tap, a long press as a hold.
package tui

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"

	"github.com/seqsense/taphold/element"
	"github.com/seqsense/taphold/taphold"
)

const (
	durationStep = 250 * time.Millisecond
	maxHistory   = 5

	fps         = 30
	progressLen = buttonWidth + 2
)

// Button geometry, in terminal cells. The button is drawn below the title
// line and a blank line.
const (
	buttonX      = 2
	buttonY      = 2
	buttonWidth  = 20
	buttonHeight = 3
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	buttonStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Width(buttonWidth).
			Height(buttonHeight).
			MarginLeft(buttonX).
			Align(lipgloss.Center, lipgloss.Center)
	pressedStyle = buttonStyle.
			BorderForeground(lipgloss.Color("205")).
			Foreground(lipgloss.Color("205"))
	dimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Config configures the model.
type Config struct {
	Duration time.Duration
	Logger   *slog.Logger
}

type stats struct {
	taps    int
	holds   int
	history []string
}

func (s *stats) record(ev string) {
	s.history = append(s.history, ev)
	if len(s.history) > maxHistory {
		s.history = s.history[len(s.history)-maxHistory:]
	}
}

// Model is the root Bubble Tea model.
type Model struct {
	keys   KeyMap
	logger *slog.Logger

	clock    *Clock
	rec      *taphold.Recognizer
	button   *element.Element
	duration time.Duration
	stats    *stats

	hover     bool
	pressed   bool
	pressedAt time.Time

	// Hold progress bar, animated towards the pressed time ratio.
	spring   harmonica.Spring
	progress float64
	velocity float64
	animate  bool
}

type frameMsg time.Time

func frame() tea.Cmd {
	return tea.Tick(time.Second/fps, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// New creates the model and attaches the recognizer to its button.
func New(c Config) (Model, error) {
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	if c.Duration == 0 {
		c.Duration = taphold.DefaultDuration
	}
	clock := NewClock()
	m := Model{
		keys:     DefaultKeyMap(),
		logger:   c.Logger,
		clock:    clock,
		rec:      taphold.New(false, taphold.WithClock(clock), taphold.WithLogger(c.Logger)),
		button:   &element.Element{},
		duration: c.Duration,
		stats:    &stats{},
		spring:   harmonica.NewSpring(harmonica.FPS(fps), 12.0, 1.0),
	}

	st := m.stats
	m.button.Bind(taphold.TypeClick, func(taphold.Event) {
		st.taps++
		st.record("tap")
	})
	m.button.Bind(taphold.TypeHold, func(taphold.Event) {
		st.holds++
		st.record("hold")
	})
	if err := m.rec.Attach(m.button, taphold.Config{Duration: m.duration}); err != nil {
		return Model{}, err
	}
	return m, nil
}

// Init starts waiting for hold timers.
func (m Model) Init() tea.Cmd {
	return m.clock.Wait()
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TimerMsg:
		msg.Fire()
		return m, m.clock.Wait()

	case tea.MouseMsg:
		m = m.handleMouse(tea.MouseEvent(msg))
		if m.pressed && !m.animate {
			m.animate = true
			return m, frame()
		}
		return m, nil

	case frameMsg:
		m.progress, m.velocity = m.spring.Update(m.progress, m.velocity, m.holdRatio(time.Time(msg)))
		if m.pressed || m.progress > 0.01 {
			return m, frame()
		}
		m.progress, m.velocity = 0, 0
		m.animate = false
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func inButton(x, y int) bool {
	// Border cells belong to the button.
	return x >= buttonX && x < buttonX+buttonWidth+2 &&
		y >= buttonY && y < buttonY+buttonHeight+2
}

func (m Model) handleMouse(e tea.MouseEvent) Model {
	inside := inButton(e.X, e.Y)
	wasHover := m.hover
	m.hover = inside

	switch e.Action {
	case tea.MouseActionPress:
		if inside && e.Button == tea.MouseButtonLeft {
			m.pressed = true
			m.pressedAt = time.Now()
			m.button.Trigger(element.NewEvent("mousedown", e.X, e.Y))
		}
	case tea.MouseActionRelease:
		switch {
		case m.pressed && inside:
			m.button.Trigger(element.NewEvent("mouseup", e.X, e.Y))
		case m.pressed:
			// Released outside without a motion report in between.
			m.button.Trigger(element.NewEvent("mouseleave", e.X, e.Y))
		}
		m.pressed = false
	case tea.MouseActionMotion:
		if wasHover && !inside {
			m.button.Trigger(element.NewEvent("mouseleave", e.X, e.Y))
			m.pressed = false
		}
	}
	return m
}

// holdRatio returns how far the current press is towards a hold.
func (m Model) holdRatio(now time.Time) float64 {
	if !m.pressed {
		return 0
	}
	r := float64(now.Sub(m.pressedAt)) / float64(m.duration)
	if r > 1 {
		return 1
	}
	return r
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.rec.Detach(m.button)
		m.clock.Close()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Longer):
		return m.setDuration(m.duration + durationStep), nil

	case key.Matches(msg, m.keys.Shorter):
		if m.duration > durationStep {
			return m.setDuration(m.duration - durationStep), nil
		}

	case key.Matches(msg, m.keys.Reset):
		*m.stats = stats{}
	}
	return m, nil
}

func (m Model) setDuration(d time.Duration) Model {
	if err := m.rec.Attach(m.button, taphold.Config{Duration: d}); err != nil {
		m.logger.Error("Failed to update hold duration", "error", err)
		return m
	}
	m.duration = d
	m.pressed = false
	m.logger.Info("Hold duration updated", "duration", d)
	return m
}

// View renders the button and counters.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("tap or hold the button"))
	b.WriteString("\n\n")

	style := buttonStyle
	if m.pressed {
		style = pressedStyle
	}
	b.WriteString(style.Render("press me"))
	b.WriteString("\n")
	b.WriteString(strings.Repeat(" ", buttonX))
	b.WriteString(progressBar(m.progress))
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "  hold after %v\n", m.duration)
	fmt.Fprintf(&b, "  taps: %d  holds: %d\n", m.stats.taps, m.stats.holds)
	if len(m.stats.history) > 0 {
		fmt.Fprintf(&b, "  last: %s\n", strings.Join(m.stats.history, " "))
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.help()))
	return b.String()
}

func progressBar(p float64) string {
	n := int(p*progressLen + 0.5)
	if n < 0 {
		n = 0
	}
	if n > progressLen {
		n = progressLen
	}
	return strings.Repeat("█", n) + dimStyle.Render(strings.Repeat("░", progressLen-n))
}

func (m Model) help() string {
	var parts []string
	for _, k := range []key.Binding{m.keys.Longer, m.keys.Shorter, m.keys.Reset, m.keys.Quit} {
		h := k.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return "  " + strings.Join(parts, " • ")
}
