package memo

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNoProvider  = errors.New("memo: provider is required")
	ErrNoNamespace = errors.New("memo: namespace is required")
)

// InvalidateError reports the entries Invalidate could not delete.
type InvalidateError struct {
	Text string
	Keys []string
	Errs []error
}

func (e *InvalidateError) Error() string {
	switch len(e.Errs) {
	case 0:
		return fmt.Sprintf("invalidate %q: unknown error", e.Text)
	case 1:
		return fmt.Sprintf("invalidate %q: delete %s failed: %v", e.Text, e.Keys[0], e.Errs[0])
	default:
		parts := make([]string, len(e.Errs))
		for i := range e.Errs {
			parts[i] = fmt.Sprintf("%s=%v", e.Keys[i], e.Errs[i])
		}
		return fmt.Sprintf("invalidate %q: %d deletes failed: %s", e.Text, len(e.Errs), strings.Join(parts, "; "))
	}
}

func (e *InvalidateError) Unwrap() []error { return e.Errs }
