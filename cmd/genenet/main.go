package main

import (
	"context"
	"io"
	"os"

	"github.com/25smoking/genenet/internal/config"
	"github.com/25smoking/genenet/internal/core"
	"github.com/25smoking/genenet/internal/report"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

type options struct {
	input         string
	output        string
	configPath    string
	reportPath    string
	keepSelfLoops bool
	verbose       bool
	quiet         bool
}

type app struct {
	opts   options
	stdout io.Writer
	level  zap.AtomicLevel
	log    *zap.SugaredLogger
}

// newLogger builds the one logger of a run. Its level is adjusted through
// level once flags are parsed.
func newLogger(level zap.AtomicLevel) *zap.SugaredLogger {
	cfg := zap.NewProductionConfig()
	cfg.Level = level
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop().Sugar()
	}
	return logger.Sugar()
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "genenet",
		Short: "genenet - build annotated gene networks from edge lists",
		Long: `genenet reads pairwise relationship records (gene-gene interactions and the
like) from a CSV or TSV edge list, builds an undirected graph, drops
self-loops, annotates every node with its degree and writes the result as
GraphML, Graphviz DOT or a plain edge list.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if a.opts.verbose {
				a.level.SetLevel(zapcore.DebugLevel)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runBuild(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.opts.input, "input", "", "Path to the input edge list file (CSV or TSV format).")
	rootCmd.PersistentFlags().StringVar(&a.opts.configPath, "config", "", "Path to a YAML config file (default: config/genenet.yaml, then built-in defaults).")
	rootCmd.PersistentFlags().BoolVar(&a.opts.keepSelfLoops, "keep-self-loops", false, "Keep self-loop edges instead of removing them.")
	rootCmd.PersistentFlags().BoolVarP(&a.opts.verbose, "verbose", "v", false, "Enable debug logging.")
	rootCmd.Flags().StringVar(&a.opts.output, "output", "", "Path to save the output annotated graph (.graphml, .dot, .gv, .csv, .tsv).")
	rootCmd.Flags().StringVar(&a.opts.reportPath, "report", "", "Also save a run report (.json, .yaml, .html).")
	rootCmd.Flags().BoolVarP(&a.opts.quiet, "quiet", "q", false, "Do not print progress and summary.")
	_ = rootCmd.MarkPersistentFlagRequired("input")
	_ = rootCmd.MarkFlagRequired("output")

	summaryCmd := &cobra.Command{
		Use:   "summary",
		Short: "Print node and edge counts of the graph built from --input",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSummary(cmd)
		},
	}
	rootCmd.AddCommand(summaryCmd)

	return rootCmd
}

func (a *app) runConfig(cmd *cobra.Command, output string) (*core.RunConfig, error) {
	cfg, err := config.Load(a.opts.configPath)
	if err != nil {
		return nil, err
	}

	keep := !cfg.Builder.RemoveSelfLoops
	if cmd.Flags().Changed("keep-self-loops") {
		keep = a.opts.keepSelfLoops
	}

	return &core.RunConfig{
		Input:         a.opts.input,
		Output:        output,
		KeepSelfLoops: keep,
		MergePolicy:   cfg.MergePolicy(),
		ReadOptions:   cfg.ReadOptions(),
		Export:        cfg.ExportOptions(),
	}, nil
}

func (a *app) runBuild(cmd *cobra.Command) error {
	runCfg, err := a.runConfig(cmd, a.opts.output)
	if err != nil {
		return err
	}

	pipeline := core.NewPipeline(runCfg, a.log)
	var term *report.Terminal
	if !a.opts.quiet {
		term = report.NewTerminal(a.stdout, isTerminal(a.stdout))
		term.PrintSection("genenet")
		pipeline.SetObserver(term)
	}

	summary, err := pipeline.Run(cmd.Context())
	if err != nil {
		return err
	}
	if term != nil {
		term.PrintSummary(summary)
	}

	if a.opts.reportPath != "" {
		if err := report.Save(report.New(summary), a.opts.reportPath); err != nil {
			return err
		}
		a.log.Infof("report written: %s", a.opts.reportPath)
	}
	return nil
}

func (a *app) runSummary(cmd *cobra.Command) error {
	runCfg, err := a.runConfig(cmd, "")
	if err != nil {
		return err
	}

	summary, err := core.NewPipeline(runCfg, a.log).Run(cmd.Context())
	if err != nil {
		return err
	}

	out, err := yaml.Marshal(summary.Graph)
	if err != nil {
		return err
	}
	_, err = a.stdout.Write(out)
	return err
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

// run executes the CLI with args and returns the first error.
func run(ctx context.Context, args []string, stdout io.Writer) (err error) {
	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	a := &app{stdout: stdout, level: level, log: newLogger(level)}
	defer func() {
		if err != nil {
			a.log.Errorw("genenet failed", "error", err)
		}
		_ = a.log.Sync()
	}()

	rootCmd := newRootCmd(a)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	return rootCmd.ExecuteContext(ctx)
}

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		os.Exit(1)
	}
}
