package linebreak

// ParseError is returned when the command line itself is malformed: an
// unknown flag, a flag missing its value, or too many positional arguments.
type ParseError struct {
	err error
}

func (e *ParseError) Error() string { return e.err.Error() }

// Cause returns the underlying error, for use with errors.Cause.
func (e *ParseError) Cause() error { return e.err }

func (e *ParseError) Unwrap() error { return e.err }

// ValidationError is returned when a flag was well-formed but its value
// was not acceptable.
type ValidationError struct {
	// Flag is the long name of the offending flag, without dashes.
	Flag string

	// Value is the value that was rejected.
	Value string

	err error
}

func (e *ValidationError) Error() string { return e.err.Error() }

// Cause returns the underlying error, for use with errors.Cause.
func (e *ValidationError) Cause() error { return e.err }

func (e *ValidationError) Unwrap() error { return e.err }
