package edgelist

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format is a supported delimited record format.
type Format int

const (
	CSV Format = iota
	TSV
)

var formats = [...]struct {
	label     string
	ext       string
	delimiter string
}{
	CSV: {label: "csv", ext: ".csv", delimiter: ","},
	TSV: {label: "tsv", ext: ".tsv", delimiter: "\t"},
}

// Formats lists every supported format.
func Formats() []Format {
	return []Format{CSV, TSV}
}

func (f Format) valid() bool {
	return f >= 0 && int(f) < len(formats)
}

// String returns the short label used in error messages ("csv", "tsv").
func (f Format) String() string {
	if !f.valid() {
		return fmt.Sprintf("Format(%d)", int(f))
	}
	return formats[f].label
}

// Delimiter returns the field separator of the format.
func (f Format) Delimiter() string {
	if !f.valid() {
		return ""
	}
	return formats[f].delimiter
}

// Extension returns the file extension, including the leading dot.
func (f Format) Extension() string {
	if !f.valid() {
		return ""
	}
	return formats[f].ext
}

// FormatFromPath picks the record format from the file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	for _, f := range Formats() {
		if formats[f].ext == ext {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedFileType, ext)
}
