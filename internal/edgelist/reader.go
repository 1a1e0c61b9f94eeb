package edgelist

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	// Unspecified fills interaction type and provenance when a line omits them.
	Unspecified = "unspecified"
	// DefaultCommentPrefix marks lines that are skipped.
	DefaultCommentPrefix = "#"

	fieldCount = 4
	minFields  = 2
)

// Record is one normalized relationship.
type Record struct {
	Source          string
	Target          string
	InteractionType string
	Provenance      string
}

// Fields returns the record as a 4-element row.
func (r Record) Fields() []string {
	return []string{r.Source, r.Target, r.InteractionType, r.Provenance}
}

type readOptions struct {
	fill          string
	commentPrefix string
}

// Option customizes parsing.
type Option func(*readOptions)

// WithFillValue sets the value used for missing trailing fields.
func WithFillValue(v string) Option {
	return func(o *readOptions) {
		if v != "" {
			o.fill = v
		}
	}
}

// WithCommentPrefix sets the prefix that marks a comment line.
func WithCommentPrefix(p string) Option {
	return func(o *readOptions) {
		if p != "" {
			o.commentPrefix = p
		}
	}
}

// ReadFile reads the whole file at path and parses it in the format implied by its extension.
func ReadFile(path string, opts ...Option) ([]Record, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read edge list: %w", err)
	}

	return Parse(bytes.NewReader(data), format, opts...)
}

// Parse reads records from r. Blank and comment lines are skipped; the result
// keeps input order and is never nil.
func Parse(r io.Reader, format Format, opts ...Option) ([]Record, error) {
	if !format.valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFileType, format)
	}

	o := readOptions{fill: Unspecified, commentPrefix: DefaultCommentPrefix}
	for _, opt := range opts {
		opt(&o)
	}

	records := make([]Record, 0)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, o.commentPrefix) {
			continue
		}

		rec, err := parseLine(line, lineNo, format, o.fill)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan %s edge list: %w", format, err)
	}

	return records, nil
}

func parseLine(line string, lineNo int, format Format, fill string) (Record, error) {
	lineErr := func(reason string) error {
		return &LineError{Line: lineNo, Content: strings.TrimSpace(line), Format: format, Reason: reason}
	}

	// Fields are split from the untrimmed line and trimmed one by one; a tab
	// is both delimiter and whitespace. Overflow is counted on the active
	// delimiter only, so a comma inside a TSV field is data.
	fields := strings.Split(strings.TrimRight(line, "\r\n"), format.Delimiter())
	if len(fields) > fieldCount {
		return Record{}, lineErr(fmt.Sprintf("expected at most %d fields, got %d", fieldCount, len(fields)))
	}
	if len(fields) < minFields {
		return Record{}, lineErr(fmt.Sprintf("expected at least %d fields, got %d", minFields, len(fields)))
	}
	for len(fields) < fieldCount {
		fields = append(fields, fill)
	}
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
		// An empty optional column counts as absent.
		if i >= minFields && fields[i] == "" {
			fields[i] = fill
		}
	}

	rec := Record{
		Source:          strings.ToUpper(fields[0]),
		Target:          strings.ToUpper(fields[1]),
		InteractionType: fields[2],
		Provenance:      fields[3],
	}
	if rec.Source == "" || rec.Target == "" {
		return Record{}, lineErr("empty endpoint")
	}
	return rec, nil
}
