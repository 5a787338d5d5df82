// Package session holds the state of one notepad editing session: the
// definition set and the text buffer. Every effective change re-scores the
// whole buffer synchronously and reports the result to the observer.
package session

import (
	"slices"

	"github.com/dshills/snartpad/internal/definition"
	"github.com/dshills/snartpad/internal/notepad"
	"github.com/dshills/snartpad/internal/score"
)

// Session is owned by a single caller and is not safe for concurrent use.
// The zero value is an empty session.
type Session struct {
	defs  definition.Set
	lines []string

	// OnChange, if set, receives the fresh grand total after every
	// mutation that changed the session. err is non-nil when a definition
	// pattern does not compile; the session state is kept either way.
	OnChange func(total int, err error)
}

// New returns an empty session.
func New() *Session {
	return &Session{}
}

// CanAdd reports whether Add would accept pattern.
func (s *Session) CanAdd(pattern string) bool {
	return s.defs.CanAdd(pattern)
}

// Add appends a definition, ignoring empty and duplicate patterns.
func (s *Session) Add(pattern string, points int) bool {
	if !s.defs.Add(pattern, points) {
		return false
	}
	s.notify()
	return true
}

// Remove deletes a definition by pattern, ignoring unknown patterns.
func (s *Session) Remove(pattern string) bool {
	if !s.defs.Remove(pattern) {
		return false
	}
	s.notify()
	return true
}

// Definitions returns the current definitions in insertion order.
func (s *Session) Definitions() []definition.Definition {
	return s.defs.List()
}

// SetText replaces the buffer with text split into lines.
func (s *Session) SetText(text string) {
	s.SetLines(notepad.SplitLines(text))
}

// SetLines replaces the buffer. The slice is copied. Identical content is
// not a change.
func (s *Session) SetLines(lines []string) {
	if slices.Equal(s.lines, lines) {
		return
	}
	s.lines = append([]string(nil), lines...)
	s.notify()
}

// Lines returns a copy of the buffer.
func (s *Session) Lines() []string {
	return append([]string(nil), s.lines...)
}

// Total scores the buffer against the current definitions.
func (s *Session) Total() (int, error) {
	return score.Total(s.lines, s.defs.List())
}

// Report scores the buffer and returns the per-line breakdown.
func (s *Session) Report() (score.Report, error) {
	sc, err := score.Compile(s.defs.List())
	if err != nil {
		return score.Report{}, err
	}
	return sc.Report(s.lines), nil
}

func (s *Session) notify() {
	if s.OnChange == nil {
		return
	}
	s.OnChange(s.Total())
}
