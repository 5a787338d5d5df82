// Package definition manages the ordered set of pattern-to-points rules.
package definition

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Definition pairs a regular expression source with the points each match is worth.
type Definition struct {
	Pattern string `yaml:"pattern" json:"pattern"`
	Points  int    `yaml:"points" json:"points"`
}

func (d Definition) String() string {
	return fmt.Sprintf("%s=%d", d.Pattern, d.Points)
}

// Set is an insertion-ordered collection of definitions keyed by pattern.
// The zero value is an empty set ready to use.
type Set struct {
	order  []string
	points map[string]int
}

// New returns a set holding defs in order. Empty and duplicate patterns are
// dropped the same way Add drops them.
func New(defs ...Definition) *Set {
	s := &Set{}
	for _, d := range defs {
		s.Add(d.Pattern, d.Points)
	}
	return s
}

// CanAdd reports whether Add would accept pattern.
func (s *Set) CanAdd(pattern string) bool {
	return pattern != "" && !s.Has(pattern)
}

// Add appends a definition. It is a no-op returning false when pattern is
// empty or already present; the existing points are kept.
func (s *Set) Add(pattern string, points int) bool {
	if !s.CanAdd(pattern) {
		return false
	}
	if s.points == nil {
		s.points = make(map[string]int)
	}
	s.order = append(s.order, pattern)
	s.points[pattern] = points
	return true
}

// Remove deletes the definition with exactly this pattern. Absent patterns
// are ignored. Remaining definitions keep their relative order.
func (s *Set) Remove(pattern string) bool {
	if !s.Has(pattern) {
		return false
	}
	i := slices.Index(s.order, pattern)
	s.order = slices.Delete(s.order, i, i+1)
	delete(s.points, pattern)
	return true
}

// Has reports whether pattern is in the set. Comparison is exact and case-sensitive.
func (s *Set) Has(pattern string) bool {
	_, ok := s.points[pattern]
	return ok
}

// Points returns the points registered for pattern.
func (s *Set) Points(pattern string) (int, bool) {
	p, ok := s.points[pattern]
	return p, ok
}

func (s *Set) Len() int { return len(s.order) }

// List returns a snapshot of the definitions in insertion order.
func (s *Set) List() []Definition {
	out := make([]Definition, 0, len(s.order))
	for _, p := range s.order {
		out = append(out, Definition{Pattern: p, Points: s.points[p]})
	}
	return out
}

// Clone returns an independent copy of the set.
func (s *Set) Clone() *Set {
	return New(s.List()...)
}

// Parse reads the "pattern=points" form used on the command line. The split
// happens at the last '=' so patterns may themselves contain '='.
func Parse(s string) (Definition, error) {
	i := strings.LastIndex(s, "=")
	if i < 0 {
		return Definition{}, fmt.Errorf("definition.Parse: %q: expected pattern=points", s)
	}
	pattern := s[:i]
	if pattern == "" {
		return Definition{}, fmt.Errorf("definition.Parse: %q: empty pattern", s)
	}
	points, err := strconv.Atoi(strings.TrimSpace(s[i+1:]))
	if err != nil {
		return Definition{}, fmt.Errorf("definition.Parse: %q: invalid points: %w", s, err)
	}
	return Definition{Pattern: pattern, Points: points}, nil
}
