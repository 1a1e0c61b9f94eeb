package graph

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/25smoking/genenet/internal/edgelist"
)

// OutputFormat is a supported output encoding.
type OutputFormat int

const (
	OutputGraphML OutputFormat = iota
	OutputDOT
	OutputEdgeList
)

var outputExtensions = map[string]OutputFormat{
	".graphml": OutputGraphML,
	".dot":     OutputDOT,
	".gv":      OutputDOT,
	".csv":     OutputEdgeList,
	".tsv":     OutputEdgeList,
}

// OutputFormatFromPath picks the output encoding from the file extension.
func OutputFormatFromPath(path string) (OutputFormat, error) {
	ext := strings.ToLower(filepath.Ext(path))
	f, ok := outputExtensions[ext]
	if !ok {
		return 0, fmt.Errorf("%w: %q", edgelist.ErrUnsupportedFileType, ext)
	}
	return f, nil
}

// WriteFile serializes g to path. GraphML and DOT carry node and edge
// attributes; .csv and .tsv receive bare endpoint pairs.
func WriteFile(g *Graph, path string, opts ExportOptions) error {
	format, err := OutputFormatFromPath(path)
	if err != nil {
		return err
	}

	if format == OutputEdgeList {
		return edgelist.WriteFile(path, g.Pairs())
	}

	var buf bytes.Buffer
	switch format {
	case OutputGraphML:
		err = g.ExportGraphML(&buf, opts)
	case OutputDOT:
		err = g.ExportDOT(&buf, opts)
	}
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
