// Package schema validates definition files before they are applied.
package schema

import (
	"errors"
	"fmt"

	"github.com/dshills/snartpad/internal/preset"
	"github.com/dshills/snartpad/internal/score"
)

// Kind classifies a validation error.
type Kind string

const (
	KindRequired  Kind = "REQUIRED"
	KindEmpty     Kind = "EMPTY_PATTERN"
	KindDuplicate Kind = "DUPLICATE_PATTERN"
	KindInvalid   Kind = "INVALID_PATTERN"
)

// ValidationError describes a single schema violation.
type ValidationError struct {
	Path    string
	Kind    Kind
	Message string
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Path, v.Message)
}

// Validate checks a preset for structural validity using the RE2 engine.
func Validate(p *preset.Preset) []ValidationError {
	return ValidateWith(score.RE2{}, p)
}

// ValidateWith checks a preset, compiling patterns with e.
func ValidateWith(e score.Engine, p *preset.Preset) []ValidationError {
	var errs []ValidationError

	if p.Name == "" {
		errs = append(errs, ValidationError{"name", KindRequired, "required"})
	}

	seen := make(map[string]int)
	for i, d := range p.Definitions {
		prefix := fmt.Sprintf("definitions[%d]", i)
		if d.Pattern == "" {
			errs = append(errs, ValidationError{prefix + ".pattern", KindEmpty, "required"})
			continue
		}
		if first, ok := seen[d.Pattern]; ok {
			errs = append(errs, ValidationError{prefix + ".pattern", KindDuplicate,
				fmt.Sprintf("duplicate of definitions[%d]: %q", first, d.Pattern)})
			continue
		}
		seen[d.Pattern] = i
		if _, err := e.Compile(d.Pattern); err != nil {
			errs = append(errs, ValidationError{prefix + ".pattern", KindInvalid, err.Error()})
		}
	}

	return errs
}

// HasKind reports whether any error in errs is of kind k.
func HasKind(errs []ValidationError, k Kind) bool {
	for _, e := range errs {
		if e.Kind == k {
			return true
		}
	}
	return false
}

// Join folds errs into a single error, or nil when errs is empty.
func Join(errs []ValidationError) error {
	if len(errs) == 0 {
		return nil
	}
	all := make([]error, len(errs))
	for i, e := range errs {
		all[i] = e
	}
	return errors.Join(all...)
}
