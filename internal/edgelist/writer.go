package edgelist

import (
	"bytes"
	"fmt"
	"os"
)

// Pair is an unordered endpoint pair as written to an edge list.
type Pair struct {
	Source string
	Target string
}

// Encode renders pairs one per line, separated by the format's delimiter.
// Attributes are not emitted.
func Encode(pairs []Pair, format Format) ([]byte, error) {
	if !format.valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFileType, format)
	}

	var buf bytes.Buffer
	for _, p := range pairs {
		buf.WriteString(p.Source)
		buf.WriteString(format.Delimiter())
		buf.WriteString(p.Target)
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}

// WriteFile writes pairs to path in the format implied by its extension.
func WriteFile(path string, pairs []Pair) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	data, err := Encode(pairs, format)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write edge list: %w", err)
	}
	return nil
}
