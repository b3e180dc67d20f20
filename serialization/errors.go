package serialization

import "fmt"

// MalformedFieldError reports a required or structurally broken field
// encountered while decoding a record.
type MalformedFieldError struct {
	Field  string
	Reason string
}

func (e *MalformedFieldError) Error() string {
	return fmt.Sprintf("malformed field %q: %s", e.Field, e.Reason)
}

// IsMalformed reports whether err originates from record decoding.
func IsMalformed(err error) bool {
	_, ok := err.(*MalformedFieldError)
	return ok
}
