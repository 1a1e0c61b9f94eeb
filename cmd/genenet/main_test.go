package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/25smoking/genenet/internal/edgelist"
	"github.com/25smoking/genenet/internal/graph"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestCLIHappyPath(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "edges.csv", "A,B\n")
	output := filepath.Join(dir, "graph.graphml")
	reportPath := filepath.Join(dir, "run.json")

	var stdout bytes.Buffer
	err := run(context.Background(), []string{"--input", input, "--output", output, "--report", reportPath}, &stdout)
	require.NoError(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), `<node id="A">`)
	assert.Contains(t, string(data), `<edge source="A" target="B">`)
	assert.Contains(t, string(data), `attr.name="degree"`)

	assert.FileExists(t, reportPath)
	assert.Contains(t, stdout.String(), "num_edges:")
}

func TestCLIQuietDOT(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "edges.tsv", "tp53\tmdm2\tinhibits\n")
	output := filepath.Join(dir, "graph.dot")

	var stdout bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"--input", input, "--output", output, "-q"}, &stdout))
	assert.Empty(t, stdout.String())

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), "TP53 -- MDM2")
}

func TestCLIRequiresFlags(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "edges.csv", "A,B\n")

	err := run(context.Background(), []string{"--input", input}, &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "output")

	err = run(context.Background(), []string{"--output", filepath.Join(dir, "g.graphml")}, &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "input")
}

func TestCLIUnsupportedInput(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "edges.txt", "A,B\n")

	err := run(context.Background(), []string{"--input", input, "--output", filepath.Join(dir, "g.graphml"), "-q"}, &bytes.Buffer{})
	assert.ErrorIs(t, err, edgelist.ErrUnsupportedFileType)
}

func TestCLIMalformedInput(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "edges.csv", "a,b,c,d,e\n")

	err := run(context.Background(), []string{"--input", input, "--output", filepath.Join(dir, "g.graphml"), "-q"}, &bytes.Buffer{})
	assert.ErrorIs(t, err, edgelist.ErrMalformedLine)
}

func TestCLISummary(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "edges.csv", "a,a\na,b\n")

	var stdout bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"summary", "--input", input}, &stdout))

	var s graph.Summary
	require.NoError(t, yaml.Unmarshal(stdout.Bytes(), &s))
	assert.Equal(t, graph.Summary{NumNodes: 2, NumEdges: 1}, s)

	stdout.Reset()
	require.NoError(t, run(context.Background(), []string{"summary", "--input", input, "--keep-self-loops"}, &stdout))
	require.NoError(t, yaml.Unmarshal(stdout.Bytes(), &s))
	assert.Equal(t, 2, s.NumEdges)
}

func TestCLIConfigFile(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "edges.csv", "a,a\n")
	cfgPath := writeFile(t, dir, "genenet.yaml", "builder:\n  remove_self_loops: false\n")

	var stdout bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"summary", "--input", input, "--config", cfgPath}, &stdout))
	assert.True(t, strings.Contains(stdout.String(), "num_edges: 1"), stdout.String())
}

func TestVerboseRaisesLevelOfSingleLogger(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "edges.csv", "a,b\n")

	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	a := &app{stdout: &bytes.Buffer{}, level: level, log: newLogger(level)}
	before := a.log

	cmd := newRootCmd(a)
	cmd.SetArgs([]string{"summary", "--input", input, "-v"})
	require.NoError(t, cmd.ExecuteContext(context.Background()))

	assert.Same(t, before, a.log)
	assert.Equal(t, zapcore.DebugLevel, a.level.Level())
}
