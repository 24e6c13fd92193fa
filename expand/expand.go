// Package expand produces result files by running cargo expand on the
// benchmark examples of a Rust crate, one file per example.
package expand

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/weiihann/linegraph/results"
)

// RunConfig holds parameters for a single expansion.
type RunConfig struct {
	ProjectDir string
	OutDir     string
	Timeout    time.Duration
}

// Result describes one written result file.
type Result struct {
	Example string        `json:"example"`
	File    string        `json:"file"`
	Lines   int           `json:"lines"`
	Elapsed time.Duration `json:"elapsed"`
}

// Runner expands a single example.
type Runner struct {
	Example   string
	Binary    string
	ExtraArgs []string
	Env       []string
	Logger    *slog.Logger
}

// NewRunner creates a Runner for the named example. binary and
// extraArgs come from WrapCommand; env is appended to the inherited
// environment.
func NewRunner(
	example, binary string,
	extraArgs, env []string,
	logger *slog.Logger,
) *Runner {
	return &Runner{
		Example:   example,
		Binary:    binary,
		ExtraArgs: extraArgs,
		Env:       env,
		Logger:    logger.With(slog.String("example", example)),
	}
}

// Run expands the example and writes its output to
// <OutDir>/<example>.txt.
func (r *Runner) Run(ctx context.Context, cfg RunConfig) (*Result, error) {
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
		return nil, fmt.Errorf("create out dir %s: %w", cfg.OutDir, err)
	}

	args := make([]string, 0, len(r.ExtraArgs)+2)
	args = append(args, r.ExtraArgs...)
	args = append(args, "--example", r.Example)

	cmd := exec.CommandContext(ctx, r.Binary, args...)
	cmd.Dir = cfg.ProjectDir

	if len(r.Env) > 0 {
		cmd.Env = append(os.Environ(), r.Env...)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	r.Logger.Info("expanding example",
		slog.String("binary", r.Binary),
		slog.String("project_dir", cfg.ProjectDir),
	)

	wallStart := time.Now()

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf(
			"expand %s failed: %w\nstderr: %s",
			r.Example, err, stderr.String(),
		)
	}

	wallElapsed := time.Since(wallStart)

	name := r.Example + ".txt"
	path := filepath.Join(cfg.OutDir, name)

	if err := os.WriteFile(path, stdout.Bytes(), 0o644); err != nil {
		return nil, fmt.Errorf("write %s: %w", path, err)
	}

	lines, err := results.CountLines(bytes.NewReader(stdout.Bytes()))
	if err != nil {
		return nil, fmt.Errorf("count lines of %s: %w", r.Example, err)
	}

	r.Logger.Info("example expanded",
		slog.Duration("wall_time", wallElapsed),
		slog.Int("lines", lines),
	)

	return &Result{
		Example: r.Example,
		File:    name,
		Lines:   lines,
		Elapsed: wallElapsed,
	}, nil
}
