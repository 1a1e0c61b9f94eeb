package core

import (
	"time"

	"github.com/25smoking/genenet/internal/graph"
)

// StageResult records how one stage went.
type StageResult struct {
	Stage    string        `json:"stage" yaml:"stage"`
	Duration time.Duration `json:"duration_ns" yaml:"duration_ns"`
	Err      string        `json:"error,omitempty" yaml:"error,omitempty"`
}

// Summary describes a finished run.
type Summary struct {
	Input            string        `json:"input" yaml:"input"`
	Output           string        `json:"output,omitempty" yaml:"output,omitempty"`
	StartedAt        time.Time     `json:"started_at" yaml:"started_at"`
	Duration         time.Duration `json:"duration_ns" yaml:"duration_ns"`
	RecordsRead      int           `json:"records_read" yaml:"records_read"`
	SelfLoopsRemoved int           `json:"self_loops_removed" yaml:"self_loops_removed"`
	Graph            graph.Summary `json:"graph" yaml:"graph"`
	Stages           []StageResult `json:"stages" yaml:"stages"`
}
