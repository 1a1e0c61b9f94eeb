package core

import (
	"context"

	"github.com/25smoking/genenet/internal/edgelist"
	"github.com/25smoking/genenet/internal/graph"
)

// RunConfig holds the settings of one pipeline run.
type RunConfig struct {
	Input         string
	Output        string
	KeepSelfLoops bool
	MergePolicy   graph.MergePolicy
	ReadOptions   []edgelist.Option
	Export        graph.ExportOptions
}

// State is passed from stage to stage. Records are dropped once the graph is built.
type State struct {
	Config           *RunConfig
	Records          []edgelist.Record
	RecordsRead      int
	Graph            *graph.Graph
	SelfLoopsRemoved int
}

// Stage is one step of the pipeline.
type Stage interface {
	Name() string
	Run(ctx context.Context, st *State) error
}

// Observer is notified around every stage.
type Observer interface {
	StageStarted(name string)
	StageFinished(result StageResult)
}
