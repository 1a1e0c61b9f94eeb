package core

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/25smoking/genenet/internal/edgelist"
	"github.com/25smoking/genenet/internal/graph"
)

func writeInput(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

type recorder struct {
	started  []string
	finished []StageResult
}

func (r *recorder) StageStarted(name string) { r.started = append(r.started, name) }
func (r *recorder) StageFinished(result StageResult) { r.finished = append(r.finished, result) }

func TestPipelineHappyPath(t *testing.T) {
	in := writeInput(t, "edges.csv", "# header\na,a\na,b,binds,BioGRID\nb,c\n")
	out := filepath.Join(t.TempDir(), "graph.graphml")

	p := NewPipeline(&RunConfig{Input: in, Output: out, MergePolicy: graph.MergeReplace, Export: graph.DefaultExportOptions}, nil)
	rec := &recorder{}
	p.SetObserver(rec)

	assert.Equal(t, []string{"read", "build", "prune", "annotate", "write"}, p.Stages())

	summary, err := p.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, summary.RecordsRead)
	assert.Equal(t, 1, summary.SelfLoopsRemoved)
	assert.Equal(t, graph.Summary{NumNodes: 3, NumEdges: 2}, summary.Graph)
	assert.Len(t, summary.Stages, 5)
	assert.Equal(t, p.Stages(), rec.started)
	assert.Len(t, rec.finished, 5)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), `<data key="d0">2</data>`)
	assert.Contains(t, string(data), "BioGRID")
}

func TestPipelineKeepSelfLoops(t *testing.T) {
	in := writeInput(t, "edges.tsv", "a\ta\na\tb\n")

	p := NewPipeline(&RunConfig{Input: in, KeepSelfLoops: true}, nil)
	assert.Equal(t, []string{"read", "build", "annotate"}, p.Stages())

	summary, err := p.Run(context.Background())
	require.NoError(t, err)
	assert.Zero(t, summary.SelfLoopsRemoved)
	assert.Equal(t, graph.Summary{NumNodes: 2, NumEdges: 2}, summary.Graph)
}

func TestPipelineEmptyInput(t *testing.T) {
	in := writeInput(t, "edges.csv", "")
	out := filepath.Join(t.TempDir(), "edges.tsv")

	summary, err := NewPipeline(&RunConfig{Input: in, Output: out}, nil).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, graph.Summary{}, summary.Graph)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestPipelineMalformedInput(t *testing.T) {
	in := writeInput(t, "edges.csv", "a,b,c,d,e\n")
	out := filepath.Join(t.TempDir(), "graph.graphml")

	summary, err := NewPipeline(&RunConfig{Input: in, Output: out}, nil).Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, edgelist.ErrMalformedLine)
	assert.True(t, strings.HasPrefix(err.Error(), "read: "))
	require.Len(t, summary.Stages, 1)
	assert.NotEmpty(t, summary.Stages[0].Err)

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr))
}

func TestPipelineUnsupportedExtensions(t *testing.T) {
	in := writeInput(t, "edges.txt", "a,b\n")
	_, err := NewPipeline(&RunConfig{Input: in}, nil).Run(context.Background())
	assert.ErrorIs(t, err, edgelist.ErrUnsupportedFileType)

	in = writeInput(t, "edges.csv", "a,b\n")
	_, err = NewPipeline(&RunConfig{Input: in, Output: filepath.Join(t.TempDir(), "out.xlsx")}, nil).Run(context.Background())
	assert.ErrorIs(t, err, edgelist.ErrUnsupportedFileType)
	assert.True(t, strings.HasPrefix(err.Error(), "write: "))
}

func TestPipelineCancelled(t *testing.T) {
	in := writeInput(t, "edges.csv", "a,b\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	summary, err := NewPipeline(&RunConfig{Input: in}, nil).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, summary.Stages)
}

type panicStage struct{}

func (panicStage) Name() string { return "explode" }
func (panicStage) Run(context.Context, *State) error { panic("boom") }

func TestSafeRunRecoversPanic(t *testing.T) {
	obsCore, logs := observer.New(zapcore.ErrorLevel)
	ctx := WithLogger(context.Background(), zap.New(obsCore))

	err := SafeRun(ctx, panicStage{}, &State{Config: &RunConfig{}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stage explode panicked: boom")

	entries := logs.FilterMessage("stage panic").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "explode", entries[0].ContextMap()["stage"])
}

func TestPipelineStopsAfterPanic(t *testing.T) {
	in := writeInput(t, "edges.csv", "a,b\n")
	p := NewPipelineWithStages(&RunConfig{Input: in}, nil, ReadStage{}, panicStage{}, BuildStage{})

	summary, err := p.Run(context.Background())
	require.Error(t, err)
	assert.Len(t, summary.Stages, 2)
	assert.Equal(t, 1, summary.RecordsRead)
}

func TestStagesRequireGraph(t *testing.T) {
	st := &State{Config: &RunConfig{}}
	for _, s := range []Stage{PruneStage{}, AnnotateStage{}, WriteStage{}} {
		err := s.Run(context.Background(), st)
		assert.True(t, errors.Is(err, errNoGraph), s.Name())
	}
}

func TestLoggerFromDefault(t *testing.T) {
	assert.NotNil(t, LoggerFrom(context.Background()))
}
