package core

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Pipeline runs stages in order and stops at the first failure.
type Pipeline struct {
	cfg      *RunConfig
	stages   []Stage
	log      *zap.SugaredLogger
	observer Observer
}

// NewPipeline assembles read, build, prune, annotate and write. Prune is
// left out when self-loops are kept and write when no output is set.
func NewPipeline(cfg *RunConfig, log *zap.SugaredLogger) *Pipeline {
	stages := []Stage{ReadStage{}, BuildStage{}}
	if !cfg.KeepSelfLoops {
		stages = append(stages, PruneStage{})
	}
	stages = append(stages, AnnotateStage{})
	if cfg.Output != "" {
		stages = append(stages, WriteStage{})
	}
	return NewPipelineWithStages(cfg, log, stages...)
}

// NewPipelineWithStages builds a pipeline from an explicit stage list.
func NewPipelineWithStages(cfg *RunConfig, log *zap.SugaredLogger, stages ...Stage) *Pipeline {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Pipeline{cfg: cfg, stages: stages, log: log}
}

// SetObserver registers o to be told about stage progress.
func (p *Pipeline) SetObserver(o Observer) {
	p.observer = o
}

// Stages returns the stage names in execution order.
func (p *Pipeline) Stages() []string {
	names := make([]string, 0, len(p.stages))
	for _, s := range p.stages {
		names = append(names, s.Name())
	}
	return names
}

// Run executes the pipeline. The returned summary is filled in as far as the
// run got, also on error.
func (p *Pipeline) Run(ctx context.Context) (*Summary, error) {
	start := time.Now()
	st := &State{Config: p.cfg}
	summary := &Summary{
		Input:     p.cfg.Input,
		Output:    p.cfg.Output,
		StartedAt: start,
	}
	finish := func() {
		summary.Duration = time.Since(start)
		summary.RecordsRead = st.RecordsRead
		summary.SelfLoopsRemoved = st.SelfLoopsRemoved
		if st.Graph != nil {
			summary.Graph = st.Graph.Summary()
		}
	}

	ctx = WithLogger(ctx, p.log.Desugar())
	for _, stage := range p.stages {
		if err := ctx.Err(); err != nil {
			finish()
			return summary, fmt.Errorf("before stage %s: %w", stage.Name(), err)
		}

		if p.observer != nil {
			p.observer.StageStarted(stage.Name())
		}
		p.log.Debugw("stage started", "stage", stage.Name())

		stageStart := time.Now()
		err := SafeRun(ctx, stage, st)
		result := StageResult{Stage: stage.Name(), Duration: time.Since(stageStart)}
		if err != nil {
			result.Err = err.Error()
		}
		summary.Stages = append(summary.Stages, result)

		if p.observer != nil {
			p.observer.StageFinished(result)
		}
		if err != nil {
			finish()
			return summary, fmt.Errorf("%s: %w", stage.Name(), err)
		}
		p.log.Debugw("stage finished", "stage", stage.Name(), "duration", result.Duration)
	}

	finish()
	p.log.Infow("pipeline finished",
		"input", p.cfg.Input,
		"output", p.cfg.Output,
		"records", summary.RecordsRead,
		"self_loops_removed", summary.SelfLoopsRemoved,
		"num_nodes", summary.Graph.NumNodes,
		"num_edges", summary.Graph.NumEdges,
	)
	return summary, nil
}
