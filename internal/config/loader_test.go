package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/25smoking/genenet/internal/graph"
)

func TestLoadEmbeddedDefault(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "unspecified", cfg.Reader.FillValue)
	assert.Equal(t, "#", cfg.Reader.CommentPrefix)
	assert.Equal(t, graph.MergeReplace, cfg.MergePolicy())
	assert.True(t, cfg.Builder.RemoveSelfLoops)
	assert.Equal(t, graph.ExportOptions{GraphName: "gene_network", Indent: "  "}, cfg.ExportOptions())
	assert.Len(t, cfg.ReadOptions(), 2)
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("builder:\n  remove_self_loops: false\nwriter:\n  graph_name: ppi\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.False(t, cfg.Builder.RemoveSelfLoops)
	assert.Equal(t, "ppi", cfg.Writer.GraphName)
	// untouched sections keep their defaults
	assert.Equal(t, "unspecified", cfg.Reader.FillValue)
	assert.Equal(t, "  ", cfg.Writer.Indent)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseRejectsMergePolicy(t *testing.T) {
	_, err := Parse([]byte("builder:\n  merge_policy: merge\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MergePolicy")
	assert.Contains(t, err.Error(), "oneof")
}

func TestParseRejectsEmptyFill(t *testing.T) {
	_, err := Parse([]byte("reader:\n  fill_value: \"\"\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FillValue")
}

func TestParseRejectsLongIndent(t *testing.T) {
	_, err := Parse([]byte("writer:\n  indent: \"            \"\n"))
	assert.Error(t, err)
}

func TestParseInvalidYAML(t *testing.T) {
	_, err := Parse([]byte("reader: [unclosed\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestValidateNil(t *testing.T) {
	assert.Error(t, Validate(nil))
}
