// Package main provides the CLI entry point for linegraph, which plots
// the line counts of benchmark result files per implementation variant.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/weiihann/linegraph/chart"
	"github.com/weiihann/linegraph/expand"
	"github.com/weiihann/linegraph/report"
	"github.com/weiihann/linegraph/results"
	"github.com/weiihann/linegraph/sample"
)

func main() {
	level := new(slog.LevelVar)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))

	root := newRootCmd(logger, level)
	if err := root.Execute(); err != nil {
		logger.Error("linegraph failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func newRootCmd(logger *slog.Logger, level *slog.LevelVar) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "linegraph",
		Short: "Plot line counts of MPST, Binary and Crossbeam benchmark results",
		Long: `Linegraph reads the long_simple_<participants>_<variant>.txt files a
benchmark run leaves in a results directory, counts the lines of each, and
draws one line per variant against the number of participants.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if verbose {
				level.Set(slog.LevelDebug)
			}
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Log every result file")

	plotCmd := newPlotCmd(logger)

	// With no subcommand, plot ./expand using the defaults.
	root.RunE = func(cmd *cobra.Command, args []string) error {
		return plotCmd.RunE(cmd, args)
	}

	root.AddCommand(plotCmd)
	root.AddCommand(newExpandCmd(logger))
	root.AddCommand(newSampleCmd(logger))

	return root
}

func newPlotCmd(logger *slog.Logger) *cobra.Command {
	var cfg plotConfig

	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Aggregate a results directory and write the chart",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlot(cmd.Context(), logger, cmd.OutOrStdout(), cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&cfg.dir, "dir", "./expand",
		"Results directory to scan")
	flags.StringVar(&cfg.output, "output", chart.DefaultFileName,
		"Chart file; relative paths are resolved against --dir")
	flags.BoolVar(&cfg.latex, "latex", true,
		"Typeset labels with the LaTeX text handler")
	flags.BoolVar(&cfg.legend, "legend", false,
		"Draw a legend naming each variant")
	flags.StringVar(&cfg.title, "title", "",
		"Chart title")
	flags.BoolVar(&cfg.strict, "strict", false,
		"Fail on result names not of the form long_simple_<label>_<variant>.txt")
	flags.BoolVar(&cfg.rejectDuplicates, "reject-duplicates", false,
		"Fail when a variant has two files for the same participant count")
	flags.StringVar(&cfg.summary, "summary", "none",
		"Also print the series: none, table, json")

	return cmd
}

type plotConfig struct {
	dir              string
	output           string
	latex            bool
	legend           bool
	title            string
	strict           bool
	rejectDuplicates bool
	summary          string
}

func runPlot(
	ctx context.Context,
	logger *slog.Logger,
	stdout io.Writer,
	cfg plotConfig,
) error {
	switch cfg.summary {
	case "none", "table", "json":
	default:
		return fmt.Errorf("unknown --summary %q", cfg.summary)
	}

	opts := results.Options{
		Strict:           cfg.strict,
		RejectDuplicates: cfg.rejectDuplicates,
	}

	// Step 1: Scan and aggregate.
	set, err := results.Collect(ctx, logger, cfg.dir, opts)
	if err != nil {
		return fmt.Errorf("collect results: %w", err)
	}

	// Step 2: Sort each series and check none is empty.
	set.Sort()

	if err := set.Validate(opts.RejectDuplicates); err != nil {
		return err
	}

	// Step 3: Render.
	output := cfg.output
	if !filepath.IsAbs(output) {
		output = filepath.Join(cfg.dir, output)
	}

	chartCfg := chart.DefaultConfig()
	chartCfg.LaTeX = cfg.latex
	chartCfg.Legend = cfg.legend
	chartCfg.Title = cfg.title

	if err := chart.Save(output, set.Series, chartCfg); err != nil {
		return err
	}

	logger.InfoContext(ctx, "chart written",
		slog.String("path", output),
		slog.String("format", chart.Format(output)),
	)

	// Step 4: Optional summary.
	switch cfg.summary {
	case "table":
		if err := report.Generate(stdout, set); err != nil {
			return fmt.Errorf("generate report: %w", err)
		}
	case "json":
		if err := report.GenerateJSON(stdout, set); err != nil {
			return fmt.Errorf("generate JSON report: %w", err)
		}
	}

	return nil
}

func newExpandCmd(logger *slog.Logger) *cobra.Command {
	var cfg expandConfig

	cmd := &cobra.Command{
		Use:   "expand",
		Short: "Run cargo expand on the benchmark examples to produce result files",
		Long: `Expand every long_simple_<participants>_<variant> example of a Rust
crate with cargo expand and store the output as <dir>/<example>.txt, the
input of the plot command.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runExpand(cmd.Context(), logger, cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&cfg.projectDir, "project", ".",
		"Rust crate containing the examples")
	flags.StringVar(&cfg.dir, "dir", "./expand",
		"Directory to write result files into")
	flags.StringSliceVar(&cfg.examples, "examples", nil,
		"Examples to expand (default: discover under <project>/examples)")
	flags.StringVar(&cfg.cargo, "cargo", "cargo",
		"Path to cargo")
	flags.StringVar(&cfg.toolchain, "toolchain", "nightly",
		"Rust toolchain passed as +<toolchain>; empty to omit")
	flags.DurationVar(&cfg.timeout, "timeout", 10*time.Minute,
		"Timeout per example")

	return cmd
}

type expandConfig struct {
	projectDir string
	dir        string
	examples   []string
	cargo      string
	toolchain  string
	timeout    time.Duration
}

func runExpand(ctx context.Context, logger *slog.Logger, cfg expandConfig) error {
	examples := cfg.examples
	if len(examples) == 0 {
		var err error

		examples, err = expand.Discover(cfg.projectDir)
		if err != nil {
			return err
		}
	}

	if len(examples) == 0 {
		return fmt.Errorf("no long_simple examples found in %s", cfg.projectDir)
	}

	logger.InfoContext(ctx, "starting expansion",
		slog.String("project_dir", cfg.projectDir),
		slog.String("out_dir", cfg.dir),
		slog.Int("examples", len(examples)),
	)

	cmdCfg := expand.WrapCommand(cfg.cargo, cfg.toolchain)
	totalLines := 0

	for _, example := range examples {
		runner := expand.NewRunner(
			example, cmdCfg.Binary, cmdCfg.ExtraArgs, nil, logger,
		)

		result, err := runner.Run(ctx, expand.RunConfig{
			ProjectDir: cfg.projectDir,
			OutDir:     cfg.dir,
			Timeout:    cfg.timeout,
		})
		if err != nil {
			return fmt.Errorf("expand %s: %w", example, err)
		}

		totalLines += result.Lines
	}

	logger.InfoContext(ctx, "expansion complete",
		slog.Int("examples", len(examples)),
		slog.Int("lines", totalLines),
	)

	return nil
}

func newSampleCmd(logger *slog.Logger) *cobra.Command {
	var (
		dir      string
		seed     int64
		labels   []string
		variants []string
		minLines int
		maxLines int
		growth   string
		noise    int
	)

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Write a deterministic sample results directory",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := sample.Config{
				MinLines: minLines,
				MaxLines: maxLines,
				Growth:   growth,
				Seed:     seed,
				Noise:    noise,
			}

			for _, w := range labels {
				l, err := results.ParseLabel(w)
				if err != nil {
					return err
				}

				cfg.Labels = append(cfg.Labels, l)
			}

			for _, tag := range variants {
				v, err := results.ParseVariant(tag)
				if err != nil {
					return err
				}

				cfg.Variants = append(cfg.Variants, v)
			}

			summary, err := sample.NewGenerator(cfg).Generate(dir)
			if err != nil {
				return fmt.Errorf("generate sample: %w", err)
			}

			logger.InfoContext(cmd.Context(), "sample written",
				slog.String("dir", dir),
				slog.Int("result_files", summary.ResultFiles),
				slog.Int("noise_files", summary.NoiseFiles),
				slog.Int("lines", summary.TotalLines),
			)

			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&dir, "dir", "./expand",
		"Directory to write into")
	flags.Int64Var(&seed, "seed", 1,
		"Random seed")
	flags.StringSliceVar(&labels, "labels", nil,
		"Participant labels (default: all)")
	flags.StringSliceVar(&variants, "variants", nil,
		"Variants (default: mpst,binary,crossbeam)")
	flags.IntVar(&minLines, "min-lines", 50,
		"Smallest line count")
	flags.IntVar(&maxLines, "max-lines", 400,
		"Largest line count")
	flags.StringVar(&growth, "growth", "linear",
		"Line growth with participants: linear, quadratic, uniform")
	flags.IntVar(&noise, "noise", 0,
		"Number of unrelated files to add")

	return cmd
}
