// Package tui renders the sidereal clock as a full-screen terminal
// display, re-evaluating the pipeline on a fixed tick.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ryan-winkler/transitwatch/internal/sidereal"
)

// ZoneResolver annotates the display with an IANA zone name. Cosmetic:
// a resolve error just drops the zone line.
type ZoneResolver interface {
	Resolve(lat, lon float64) (string, error)
}

// ObserverMsg swaps the observer of a running display (sent by the
// observer-file watcher via Program.Send).
type ObserverMsg sidereal.Observer

// tickMsg drives the refresh cadence.
type tickMsg time.Time

// Model is the Bubble Tea model for the clock display.
type Model struct {
	observer sidereal.Observer
	zones    ZoneResolver
	refresh  time.Duration
	now      func() time.Time

	zone    string // empty when resolution failed
	report  sidereal.Report
	evalErr error
}

// NewModel builds the display model. zones may be nil to skip timezone
// annotation entirely.
func NewModel(obs sidereal.Observer, zones ZoneResolver, refresh time.Duration) Model {
	m := Model{
		observer: obs,
		zones:    zones,
		refresh:  refresh,
		now:      time.Now,
	}
	m.resolveZone()
	return m
}

// NewProgram wraps the model in an alt-screen program. Callers keep the
// handle so the observer-file watcher can Send updates into it.
func NewProgram(m Model) *tea.Program {
	return tea.NewProgram(m, tea.WithAltScreen())
}

func (m *Model) resolveZone() {
	m.zone = ""
	if m.zones == nil {
		return
	}
	// Zero matches and overlapping polygons both leave the zone line
	// blank; the sidereal readout is unaffected.
	if zone, err := m.zones.Resolve(m.observer.Latitude, m.observer.Longitude); err == nil {
		m.zone = zone
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.refresh, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init starts the refresh tick.
func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update handles ticks, observer swaps, and quit keys.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.report, m.evalErr = sidereal.Evaluate(m.now(), m.observer)
		return m, m.tick()

	case ObserverMsg:
		m.observer = sidereal.Observer(msg)
		m.resolveZone()
		m.report, m.evalErr = sidereal.Evaluate(m.now(), m.observer)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	}
	return m, nil
}

// View renders the current report.
func (m Model) View() string {
	var b strings.Builder

	if m.zone != "" {
		fmt.Fprintf(&b, "Zone for %.3f, %.3f: %s\n", m.observer.Latitude, m.observer.Longitude, m.zone)
	} else {
		fmt.Fprintf(&b, "Observer at %.3f, %.3f\n", m.observer.Latitude, m.observer.Longitude)
	}

	if m.evalErr != nil {
		fmt.Fprintf(&b, "evaluation error: %v\n", m.evalErr)
		return b.String()
	}
	r := m.report
	if r.Instant.IsZero() {
		b.WriteString("starting...\n")
		return b.String()
	}

	fmt.Fprintf(&b, "Gregorian Date: %s\n", r.Instant.Format("2006-01-02"))
	fmt.Fprintf(&b, "UTC:  %s\n", r.Instant.Format("15:04:05.000000"))
	fmt.Fprintf(&b, "MJD:  %.6f\n", r.MJD)
	fmt.Fprintf(&b, "GMST: %s\n", r.GMST.StringPrecise())
	fmt.Fprintf(&b, "LMST: %s\n", r.LMST.StringPrecise())
	fmt.Fprintf(&b, "Next %s transit in %s\n", m.observer.Target.String(), r.CountdownClock.String())

	b.WriteString("\nq to quit")
	return b.String()
}
