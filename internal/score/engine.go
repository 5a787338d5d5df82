package score

import "regexp"

// Matcher is a compiled pattern.
type Matcher interface {
	// All returns every non-overlapping match in s, left to right.
	All(s string) []string
	// First returns the leftmost match in s.
	First(s string) (string, bool)
}

// Engine compiles pattern source into a Matcher.
type Engine interface {
	Compile(pattern string) (Matcher, error)
}

// RE2 is the default engine, backed by the standard regexp package.
// Patterns use RE2 syntax; lookaround and backreferences are rejected.
type RE2 struct{}

func (RE2) Compile(pattern string) (Matcher, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return reMatcher{re}, nil
}

type reMatcher struct {
	re *regexp.Regexp
}

func (m reMatcher) All(s string) []string {
	return m.re.FindAllString(s, -1)
}

func (m reMatcher) First(s string) (string, bool) {
	loc := m.re.FindStringIndex(s)
	if loc == nil {
		return "", false
	}
	return s[loc[0]:loc[1]], true
}

var (
	// Parenthesized number: (12)
	literalPattern Matcher = reMatcher{regexp.MustCompile(`\(\d+\)`)}
	// Multiplier token: 3x. Only the first digit of the match is used.
	multiplierPattern Matcher = reMatcher{regexp.MustCompile(`\d+x`)}
)
