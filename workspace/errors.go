package workspace

import "fmt"

// Error codes reported by workspace operations.
const (
	CodeOutsideSandbox = "ERR_PATH_OUTSIDE_SANDBOX"
	CodeNotFound       = "ERR_NOT_FOUND"
	CodeNotAFile       = "ERR_NOT_A_FILE"
	CodeNotTracked     = "ERR_NOT_TRACKED"
	CodeTextNotFound   = "ERR_TEXT_NOT_FOUND"
	CodeInvalidEdit    = "ERR_INVALID_EDIT"
)

// Error is a machine-readable workspace failure.
type Error struct {
	Code    string
	Path    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s (%s)", e.Path, e.Message, e.Code)
}

// Is matches on Code so callers can test with errors.Is(err, &Error{Code: ...}).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}
