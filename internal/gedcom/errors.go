package gedcom

import "fmt"

// EncodingError reports a line that is not valid UTF-8.
type EncodingError struct{}

func (e *EncodingError) Error() string {
	return "line is not valid UTF-8"
}

// MalformedLevelError reports a level token that is not a decimal integer.
type MalformedLevelError struct {
	Token string
}

func (e *MalformedLevelError) Error() string {
	return fmt.Sprintf("malformed level %q", e.Token)
}

// MalformedPointerError reports a cross reference value that is not of the
// @ID@ form.
type MalformedPointerError struct {
	Tag   string
	Value string
}

func (e *MalformedPointerError) Error() string {
	return fmt.Sprintf("malformed %s pointer %q", e.Tag, e.Value)
}

// LineError ties a parse failure to the input line that caused it.
type LineError struct {
	// Number is the 1-based line number in the input.
	Number int
	// Raw is the line text as read, or a quoted form when it is not valid UTF-8.
	Raw string
	Err error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %q: %v", e.Number, e.Raw, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}
