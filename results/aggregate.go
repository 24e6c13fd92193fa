package results

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// Options controls how a results directory is read.
type Options struct {
	// Strict rejects qualifying names that do not follow
	// long_simple_<label>_<variant>[...].txt exactly.
	Strict bool
	// RejectDuplicates makes two files with the same variant and
	// participant count an error instead of two points.
	RejectDuplicates bool
}

// Collect scans dir and builds one point per result file. The returned
// series are in directory order; call Set.Sort before plotting.
func Collect(
	ctx context.Context,
	logger *slog.Logger,
	dir string,
	opts Options,
) (*Set, error) {
	names, err := Scan(dir)
	if err != nil {
		return nil, err
	}

	set := NewSet(dir)
	skipped := 0

	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		entry, ok, err := Classify(name, opts.Strict)
		if err != nil {
			return nil, fmt.Errorf("classify: %w", err)
		}

		if !ok {
			skipped++

			continue
		}

		lines, err := countFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}

		set.Add(entry.Variant, Point{
			Participants: entry.Participants(),
			Lines:        lines,
			File:         name,
		})

		logger.DebugContext(ctx, "result file",
			slog.String("file", name),
			slog.String("variant", entry.Variant.Tag()),
			slog.Int("participants", entry.Participants()),
			slog.Int("lines", lines),
		)
	}

	logger.InfoContext(ctx, "results collected",
		slog.String("dir", dir),
		slog.Int("files", set.Total()),
		slog.Int("skipped", skipped),
	)

	return set, nil
}

func countFile(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open result %s: %w", path, err)
	}

	n, err := CountLines(f)
	if closeErr := f.Close(); err == nil && closeErr != nil {
		err = closeErr
	}

	if err != nil {
		return 0, fmt.Errorf("count lines in %s: %w", path, err)
	}

	return n, nil
}

// CountLines returns the number of lines in r. "\n", "\r" and "\r\n"
// each end a line, and a final line without a terminator still counts.
func CountLines(r io.Reader) (int, error) {
	buf := make([]byte, 32*1024)
	prev := byte('\n')
	n := 0

	for {
		k, err := r.Read(buf)
		for _, b := range buf[:k] {
			switch {
			case b == '\r':
				n++
			case b == '\n' && prev != '\r':
				n++
			}

			prev = b
		}

		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return 0, err
		}
	}

	if prev != '\n' && prev != '\r' {
		n++
	}

	return n, nil
}
