package takeout

import "fmt"

// MissingFieldError reports a required field absent from a segment.
type MissingFieldError struct {
	Path string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field %s", e.Path)
}

// MalformedTimestampError reports a segment timestamp that matches
// neither accepted layout.
type MalformedTimestampError struct {
	Value string
	Err   error
}

func (e *MalformedTimestampError) Error() string {
	return fmt.Sprintf("malformed timestamp %q: %v", e.Value, e.Err)
}

func (e *MalformedTimestampError) Unwrap() error { return e.Err }
