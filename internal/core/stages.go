package core

import (
	"context"
	"errors"

	"github.com/25smoking/genenet/internal/edgelist"
	"github.com/25smoking/genenet/internal/graph"
)

var errNoGraph = errors.New("graph has not been built")

type ReadStage struct{}

func (ReadStage) Name() string { return "read" }

func (ReadStage) Run(_ context.Context, st *State) error {
	records, err := edgelist.ReadFile(st.Config.Input, st.Config.ReadOptions...)
	if err != nil {
		return err
	}
	st.Records = records
	st.RecordsRead = len(records)
	return nil
}

type BuildStage struct{}

func (BuildStage) Name() string { return "build" }

func (BuildStage) Run(_ context.Context, st *State) error {
	policy := st.Config.MergePolicy
	if policy == "" {
		policy = graph.MergeReplace
	}
	g, err := graph.Build(st.Records, policy)
	if err != nil {
		return err
	}
	st.Graph = g
	st.Records = nil
	return nil
}

type PruneStage struct{}

func (PruneStage) Name() string { return "prune" }

func (PruneStage) Run(_ context.Context, st *State) error {
	if st.Graph == nil {
		return errNoGraph
	}
	st.SelfLoopsRemoved = st.Graph.RemoveSelfLoops()
	return nil
}

type AnnotateStage struct{}

func (AnnotateStage) Name() string { return "annotate" }

func (AnnotateStage) Run(_ context.Context, st *State) error {
	if st.Graph == nil {
		return errNoGraph
	}
	graph.AnnotateDegree(st.Graph)
	return nil
}

type WriteStage struct{}

func (WriteStage) Name() string { return "write" }

func (WriteStage) Run(_ context.Context, st *State) error {
	if st.Graph == nil {
		return errNoGraph
	}
	return graph.WriteFile(st.Graph, st.Config.Output, st.Config.Export)
}
