package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/25smoking/genenet/internal/core"
)

// ANSI colour codes
const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorBlue   = "\033[34m"
	ColorCyan   = "\033[36m"
	ColorWhite  = "\033[37m"
	ColorBold   = "\033[1m"
	ColorDim    = "\033[2m"
)

const (
	IconSuccess = "✓"
	IconError   = "✗"
	IconStage   = "›"
)

// Terminal prints pipeline progress and the final summary. It implements
// core.Observer.
type Terminal struct {
	w     io.Writer
	color bool
}

var _ core.Observer = (*Terminal)(nil)

// NewTerminal returns a printer writing to w. Colour codes are emitted only
// when color is true.
func NewTerminal(w io.Writer, color bool) *Terminal {
	return &Terminal{w: w, color: color}
}

func (t *Terminal) c(code string) string {
	if !t.color {
		return ""
	}
	return code
}

func (t *Terminal) PrintSection(title string) {
	line := strings.Repeat("─", 50)
	fmt.Fprintf(t.w, "\n%s┌%s┐%s\n", t.c(ColorBlue), line, t.c(ColorReset))
	fmt.Fprintf(t.w, "%s│ %s%-48s%s │%s\n", t.c(ColorBlue), t.c(ColorBold+ColorWhite), title, t.c(ColorReset+ColorBlue), t.c(ColorReset))
	fmt.Fprintf(t.w, "%s└%s┘%s\n\n", t.c(ColorBlue), line, t.c(ColorReset))
}

func (t *Terminal) StageStarted(name string) {
	fmt.Fprintf(t.w, "%s %s[%s]%s running...\n", IconStage, t.c(ColorCyan), name, t.c(ColorReset))
}

func (t *Terminal) StageFinished(result core.StageResult) {
	if result.Err != "" {
		fmt.Fprintf(t.w, "%s %s[%s]%s failed after %s%.3fs%s: %s\n",
			IconError, t.c(ColorRed), result.Stage, t.c(ColorReset),
			t.c(ColorDim), result.Duration.Seconds(), t.c(ColorReset),
			result.Err)
		return
	}
	fmt.Fprintf(t.w, "%s %s[%s]%s done in %s%.3fs%s\n",
		IconSuccess, t.c(ColorGreen), result.Stage, t.c(ColorReset),
		t.c(ColorDim), result.Duration.Seconds(), t.c(ColorReset))
}

func (t *Terminal) PrintSummary(s *core.Summary) {
	t.PrintSection("Summary")
	row := func(label string, value any, color string) {
		fmt.Fprintf(t.w, "  %s%-20s%s %s%v%s\n", t.c(ColorDim), label, t.c(ColorReset), t.c(color), value, t.c(ColorReset))
	}
	row("input:", s.Input, "")
	if s.Output != "" {
		row("output:", s.Output, "")
	}
	row("records read:", s.RecordsRead, ColorYellow)
	row("self-loops removed:", s.SelfLoopsRemoved, ColorYellow)
	row("num_nodes:", s.Graph.NumNodes, ColorGreen)
	row("num_edges:", s.Graph.NumEdges, ColorGreen)
	row("elapsed:", fmt.Sprintf("%.3fs", s.Duration.Seconds()), "")
	fmt.Fprintln(t.w)
}
