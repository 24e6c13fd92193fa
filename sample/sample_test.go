package sample

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/weiihann/linegraph/report"
	"github.com/weiihann/linegraph/results"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestGenerateDeterministic(t *testing.T) {
	cfg := Config{
		MinLines: 10,
		MaxLines: 200,
		Growth:   "uniform",
		Seed:     42,
		Noise:    4,
	}

	dir1, dir2 := t.TempDir(), t.TempDir()

	sum1, err := NewGenerator(cfg).Generate(dir1)
	if err != nil {
		t.Fatalf("first generation failed: %v", err)
	}

	sum2, err := NewGenerator(cfg).Generate(dir2)
	if err != nil {
		t.Fatalf("second generation failed: %v", err)
	}

	if sum1 != sum2 {
		t.Errorf("summaries differ: %+v vs %+v", sum1, sum2)
	}

	for _, l := range results.Labels() {
		name := results.FileName(l, results.Crossbeam)

		a, err := os.ReadFile(filepath.Join(dir1, name))
		if err != nil {
			t.Fatal(err)
		}

		b, err := os.ReadFile(filepath.Join(dir2, name))
		if err != nil {
			t.Fatal(err)
		}

		if !bytes.Equal(a, b) {
			t.Errorf("%s differs between runs", name)
		}
	}
}

func TestGenerateCounts(t *testing.T) {
	tests := []struct {
		name      string
		cfg       Config
		wantFiles int
	}{
		{
			name:      "defaults",
			cfg:       Config{MinLines: 1, MaxLines: 10, Seed: 1},
			wantFiles: len(results.Labels()) * len(results.Variants()),
		},
		{
			name: "subset",
			cfg: Config{
				Labels:   []results.Label{results.LabelThree, results.LabelFive},
				Variants: []results.Variant{results.MPST},
				MinLines: 5,
				MaxLines: 5,
				Seed:     1,
			},
			wantFiles: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary, err := NewGenerator(tt.cfg).Generate(t.TempDir())
			if err != nil {
				t.Fatalf("Generate failed: %v", err)
			}

			if summary.ResultFiles != tt.wantFiles {
				t.Errorf("result files = %d, want %d", summary.ResultFiles, tt.wantFiles)
			}
		})
	}
}

func TestGenerateGrowth(t *testing.T) {
	for _, growth := range []string{"linear", "quadratic"} {
		t.Run(growth, func(t *testing.T) {
			dir := t.TempDir()
			cfg := Config{
				Variants: []results.Variant{results.Binary},
				MinLines: 10,
				MaxLines: 1000,
				Growth:   growth,
				Seed:     7,
			}

			if _, err := NewGenerator(cfg).Generate(dir); err != nil {
				t.Fatalf("Generate failed: %v", err)
			}

			set, err := results.Collect(context.Background(), testLogger(), dir, results.Options{Strict: true})
			if err != nil {
				t.Fatalf("Collect failed: %v", err)
			}

			set.Sort()

			points := set.Get(results.Binary).Points
			if len(points) != len(results.Labels()) {
				t.Fatalf("got %d points, want %d", len(points), len(results.Labels()))
			}

			first, last := points[0], points[len(points)-1]
			if first.Participants != 0 || last.Participants != 20 {
				t.Errorf("participant range = [%d, %d], want [0, 20]", first.Participants, last.Participants)
			}
			if last.Lines <= first.Lines {
				t.Errorf("lines did not grow: %d -> %d", first.Lines, last.Lines)
			}

			for _, p := range points {
				if p.Lines < cfg.MinLines || p.Lines > cfg.MaxLines {
					t.Errorf("%s has %d lines, outside [%d, %d]", p.File, p.Lines, cfg.MinLines, cfg.MaxLines)
				}
			}
		})
	}
}

func TestCollectIgnoresNoise(t *testing.T) {
	dir := t.TempDir()
	cfg := Config{MinLines: 3, MaxLines: 30, Seed: 9, Noise: 9}

	summary, err := NewGenerator(cfg).Generate(dir)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if summary.NoiseFiles != 9 {
		t.Errorf("noise files = %d, want 9", summary.NoiseFiles)
	}

	set, err := results.Collect(context.Background(), testLogger(), dir, results.Options{Strict: true})
	if err != nil {
		t.Fatalf("Collect failed: %v", err)
	}

	if set.Total() != summary.ResultFiles {
		t.Errorf("collected %d points, want %d", set.Total(), summary.ResultFiles)
	}

	lines := 0
	for _, s := range set.Series {
		for _, p := range s.Points {
			lines += p.Lines
		}
	}

	if lines != summary.TotalLines {
		t.Errorf("counted %d lines, generator wrote %d", lines, summary.TotalLines)
	}
}

// Collecting the same directory twice yields byte-identical JSON.
func TestCollectIdempotent(t *testing.T) {
	dir := t.TempDir()
	if _, err := NewGenerator(Config{MinLines: 1, MaxLines: 50, Seed: 3, Noise: 3}).Generate(dir); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	var outputs [2]bytes.Buffer

	for i := range outputs {
		set, err := results.Collect(context.Background(), testLogger(), dir, results.Options{})
		if err != nil {
			t.Fatalf("Collect failed: %v", err)
		}

		set.Sort()

		if err := report.GenerateJSON(&outputs[i], set); err != nil {
			t.Fatalf("GenerateJSON failed: %v", err)
		}
	}

	if !bytes.Equal(outputs[0].Bytes(), outputs[1].Bytes()) {
		t.Error("collecting the same directory twice gave different results")
	}
}
