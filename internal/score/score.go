// Package score computes notepad point totals from definitions.
package score

import (
	"math"
	"strconv"

	"github.com/dshills/snartpad/internal/definition"
)

// Scorer holds a compiled definition list. It is immutable once built and
// safe to reuse across calls.
type Scorer struct {
	defs  []definition.Definition
	rules []Matcher
}

// Compile compiles defs with the RE2 engine.
func Compile(defs []definition.Definition) (*Scorer, error) {
	return CompileWith(RE2{}, defs)
}

// CompileWith compiles every definition pattern with e. The first pattern e
// rejects is returned as an *InvalidPatternError.
func CompileWith(e Engine, defs []definition.Definition) (*Scorer, error) {
	s := &Scorer{
		defs:  append([]definition.Definition(nil), defs...),
		rules: make([]Matcher, len(defs)),
	}
	for i, d := range defs {
		m, err := e.Compile(d.Pattern)
		if err != nil {
			return nil, &InvalidPatternError{Pattern: d.Pattern, Err: err}
		}
		s.rules[i] = m
	}
	return s, nil
}

// Line scores a single line against defs.
func Line(line string, defs []definition.Definition) (int, error) {
	s, err := Compile(defs)
	if err != nil {
		return 0, err
	}
	return s.Line(line), nil
}

// Total sums the line scores of lines against defs. Patterns are compiled
// once, before any line is looked at.
func Total(lines []string, defs []definition.Definition) (int, error) {
	s, err := Compile(defs)
	if err != nil {
		return 0, err
	}
	return s.Total(lines), nil
}

// Definitions returns the definitions the scorer was compiled from.
func (s *Scorer) Definitions() []definition.Definition {
	return append([]definition.Definition(nil), s.defs...)
}

// Line returns the points of one line.
func (s *Scorer) Line(line string) int {
	return s.Explain(0, line).Points
}

// Total returns the grand total over lines.
func (s *Scorer) Total(lines []string) int {
	total := 0
	for _, l := range lines {
		total += s.Line(l)
	}
	return total
}

// Explain scores line and records the evidence. n is the 1-based line
// number copied into the result.
//
// Points are accumulated from parenthesized numbers, then from every
// definition (match count times points). If the line then holds a positive
// value and contains a multiplier token, the value is multiplied by the
// first digit of the first token.
func (s *Scorer) Explain(n int, line string) LineResult {
	r := LineResult{Line: n, Text: line}

	for _, m := range literalPattern.All(line) {
		r.Literals += parseLiteral(m[1 : len(m)-1])
	}
	points := r.Literals

	for i, rule := range s.rules {
		count := len(rule.All(line))
		if count == 0 {
			continue
		}
		d := s.defs[i]
		r.Hits = append(r.Hits, Hit{Pattern: d.Pattern, Count: count, Points: count * d.Points})
		points += count * d.Points
	}
	r.Base = points

	if tok, ok := multiplierPattern.First(line); ok {
		digit := int(tok[0] - '0')
		r.Multiplier = &digit
		if points > 0 {
			points *= digit
			r.Applied = true
		}
	}
	r.Points = points
	return r
}

// Report scores every line and keeps the ones that carry evidence.
func (s *Scorer) Report(lines []string) Report {
	rep := Report{
		Definitions: s.Definitions(),
		Lines:       []LineResult{},
		Input:       Input{LineCount: len(lines)},
	}
	for i, l := range lines {
		r := s.Explain(i+1, l)
		rep.Total += r.Points
		if r.Contributes() {
			rep.Lines = append(rep.Lines, r)
		}
	}
	return rep
}

// parseLiteral converts a digit run, saturating at math.MaxInt.
func parseLiteral(digits string) int {
	v, err := strconv.Atoi(digits)
	if err != nil {
		return math.MaxInt
	}
	return v
}
