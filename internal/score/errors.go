package score

import (
	"errors"
	"fmt"
)

// ErrInvalidPattern is matched by errors.Is for every *InvalidPatternError.
var ErrInvalidPattern = errors.New("invalid pattern")

// InvalidPatternError reports a definition whose pattern the engine rejected.
type InvalidPatternError struct {
	Pattern string
	Err     error
}

func (e *InvalidPatternError) Error() string {
	return fmt.Sprintf("invalid pattern %q: %v", e.Pattern, e.Err)
}

func (e *InvalidPatternError) Unwrap() []error {
	return []error{ErrInvalidPattern, e.Err}
}
