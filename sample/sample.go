// Package sample writes deterministic result directories in the layout
// the benchmark harness produces: one long_simple_<label>_<variant>.txt
// file per measurement, plus optional unrelated files.
package sample

import (
	"bufio"
	"fmt"
	mrand "math/rand"
	"os"
	"path/filepath"

	"github.com/weiihann/linegraph/results"
)

// Summary contains statistics about the generated directory.
type Summary struct {
	ResultFiles int
	NoiseFiles  int
	TotalLines  int
}

// Config controls sample generation.
type Config struct {
	Labels   []results.Label
	Variants []results.Variant
	MinLines int
	MaxLines int
	// Growth is how line counts scale with participants:
	// linear, quadratic or uniform.
	Growth string
	Seed   int64
	// Noise is the number of files written that must be skipped.
	Noise int
}

// Generator produces deterministic sample directories from a Config.
type Generator struct {
	cfg Config
	rng *mrand.Rand
}

// NewGenerator creates a Generator from the given Config.
func NewGenerator(cfg Config) *Generator {
	if len(cfg.Labels) == 0 {
		cfg.Labels = results.Labels()
	}

	if len(cfg.Variants) == 0 {
		cfg.Variants = results.Variants()
	}

	if cfg.MaxLines < cfg.MinLines {
		cfg.MaxLines = cfg.MinLines
	}

	return &Generator{
		cfg: cfg,
		rng: mrand.New(mrand.NewSource(cfg.Seed)),
	}
}

// Generate writes the sample files into dir, creating it if needed.
func (g *Generator) Generate(dir string) (Summary, error) {
	var summary Summary

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return summary, fmt.Errorf("create sample dir: %w", err)
	}

	for _, v := range g.cfg.Variants {
		for _, l := range g.cfg.Labels {
			lines := g.lineCount(l)
			name := results.FileName(l, v)

			if err := writeLines(filepath.Join(dir, name), name, lines); err != nil {
				return summary, err
			}

			summary.ResultFiles++
			summary.TotalLines += lines
		}
	}

	for i := 0; i < g.cfg.Noise; i++ {
		name := g.noiseName(i)
		if err := writeLines(filepath.Join(dir, name), name, 1+g.rng.Intn(5)); err != nil {
			return summary, err
		}

		summary.NoiseFiles++
	}

	return summary, nil
}

func (g *Generator) lineCount(l results.Label) int {
	span := g.cfg.MaxLines - g.cfg.MinLines
	jitter := 0
	if span >= 20 {
		jitter = g.rng.Intn(span / 20)
	}

	n := l.Count()

	var lines int

	switch g.cfg.Growth {
	case "linear":
		lines = g.cfg.MinLines + n*span/20 + jitter

	case "quadratic":
		lines = g.cfg.MinLines + n*n*span/400 + jitter

	default:
		lines = g.cfg.MinLines + g.rng.Intn(span+1)
	}

	return min(max(lines, g.cfg.MinLines), g.cfg.MaxLines)
}

// noiseName cycles through names that are not result files.
func (g *Generator) noiseName(i int) string {
	l := results.Labels()[g.rng.Intn(len(results.Labels()))]

	switch i % 3 {
	case 0:
		return fmt.Sprintf("long_simple_%s_mpst_%d.log", l, i)
	case 1:
		return fmt.Sprintf("short_%s_binary_%d.txt", l, i)
	default:
		return fmt.Sprintf("notes_%d.md", i)
	}
}

func writeLines(path, name string, n int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	w := bufio.NewWriter(f)
	for i := 0; i < n; i++ {
		fmt.Fprintf(w, "%s %d\n", name, i)
	}

	if err := w.Flush(); err != nil {
		f.Close()

		return fmt.Errorf("write %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}

	return nil
}
