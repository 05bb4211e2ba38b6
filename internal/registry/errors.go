package registry

import (
	"fmt"

	"github.com/jonathan/md-icon-localize/internal/types"
)

// UnavailableError is returned when no codepoint document is cached for a
// variant and the remote document cannot be fetched. Without it no icon name
// can be resolved, so callers treat it as fatal.
type UnavailableError struct {
	Variant types.Variant
	URL     string
	Cause   error
}

func (e *UnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("codepoint registry unavailable for %s (%s): %v", e.Variant, e.URL, e.Cause)
	}
	return fmt.Sprintf("codepoint registry unavailable for %s (%s)", e.Variant, e.URL)
}

func (e *UnavailableError) Unwrap() error {
	return e.Cause
}
