package edgelist

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedFileType is returned by readers and writers for unknown extensions.
	ErrUnsupportedFileType = errors.New("unsupported file type")
	// ErrMalformedLine is returned when a line has the wrong number of fields.
	ErrMalformedLine = errors.New("malformed line")
)

// LineError reports an offending input line.
type LineError struct {
	Line    int
	Content string
	Format  Format
	Reason  string
}

func (e *LineError) Error() string {
	return fmt.Sprintf("invalid %s format in line %d (%s): %s", e.Format, e.Line, e.Reason, e.Content)
}

func (e *LineError) Unwrap() error {
	return ErrMalformedLine
}
