package dserr

// NotFound - Custom error to inform that no matching element was found.
// It is returned by mutations that need an anchor (a value to insert after, a node or a line to
// work on) when that anchor is missing, and by iterators that have run past the last element.
// Any NotFound matches any other NotFound in errors.Is, regardless of message.
type NotFound struct {
	msg string
}

// NewNotFound - Returns a NotFound error carrying a message
func NewNotFound(msg string) NotFound {
	return NotFound{msg: msg}
}

// Error - Used to notify that no matching element was found
func (N NotFound) Error() string {
	if N.msg == "" {
		return "not found"
	}
	return N.msg
}

// Is - Makes errors.Is(err, NotFound{}) hold for every NotFound
func (N NotFound) Is(target error) bool {
	switch target.(type) {
	case NotFound, *NotFound:
		return true
	}
	return false
}
