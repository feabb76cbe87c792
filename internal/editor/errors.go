package editor

import (
	"errors"
	"fmt"
)

// Kind is a closed, named outcome taxonomy. It generalizes loom's
// ValidationError{Message, Code string} (internal/editor's original
// validator.go) into an exhaustive, switchable enum, since every failure
// mode this engine can produce is known in advance.
type Kind string

const (
	KindNoChange      Kind = "no_change"
	KindFileNotFound  Kind = "file_not_found"
	KindIsDirectory   Kind = "is_directory"
	KindBinaryRefused Kind = "binary_refused"
	KindMatchNotFound Kind = "match_not_found"
	KindAmbiguous     Kind = "ambiguous"
	KindUserCancelled Kind = "user_cancelled"
)

// EditError is the typed failure surface returned by Edit and Drive. It is
// terminal: the engine never retries internally. RequestID is set by Edit
// when available (Drive itself has no request of its own), so a caller can
// correlate a failure with the confirmation prompt or log lines from the
// same call.
type EditError struct {
	Kind      Kind
	Message   string
	RequestID string
}

func (e *EditError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Is reports whether target is an *EditError with the same Kind, so
// errors.Is(err, &EditError{Kind: K}) matches by Kind alone. To read the
// Kind itself, use AsKind below.
func (e *EditError) Is(target error) bool {
	t, ok := target.(*EditError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// AsKind extracts the Kind from err if it is (or wraps) an *EditError.
func AsKind(err error) (Kind, bool) {
	var ee *EditError
	if errors.As(err, &ee) {
		return ee.Kind, true
	}
	return "", false
}
