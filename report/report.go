// Package report formats collected line-count series into comparison
// tables.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/weiihann/linegraph/results"
)

// Generate writes a markdown comparison table for the given set.
func Generate(w io.Writer, set *results.Set) error {
	if set == nil || set.Total() == 0 {
		return fmt.Errorf("no results to report")
	}

	fmt.Fprintln(w, "## Line Counts")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Results: `%s` (%d files)\n", set.Dir, set.Total())
	fmt.Fprintln(w)

	// Comparison table: one row per participant count.
	header := []string{"Participants"}
	sep := []string{"--------------"}

	for _, s := range set.Series {
		header = append(header, s.Variant.DisplayName())
		sep = append(sep, strings.Repeat("-", len(s.Variant.DisplayName())+2))
	}

	header = append(header, "Ratio")
	sep = append(sep, "-------")

	fmt.Fprintln(w, "| "+strings.Join(header, " | ")+" |")
	fmt.Fprintln(w, "|"+strings.Join(sep, "|")+"|")

	for _, n := range participantCounts(set) {
		row := []string{strconv.Itoa(n)}

		var cells []int
		for _, s := range set.Series {
			lines := linesAt(s, n)
			row = append(row, formatLines(lines))
			cells = append(cells, lines...)
		}

		row = append(row, formatRatio(cells))
		fmt.Fprintln(w, "| "+strings.Join(row, " | ")+" |")
	}

	fmt.Fprintln(w)

	// Detail rows.
	fmt.Fprintln(w, "| Variant | Participants | Lines | File |")
	fmt.Fprintln(w, "|---------|--------------|-------|------|")

	for _, s := range set.Series {
		for _, p := range s.Points {
			fmt.Fprintf(w, "| %s | %d | %d | %s |\n",
				s.Variant.DisplayName(),
				p.Participants,
				p.Lines,
				p.File,
			)
		}
	}

	return nil
}

// GenerateJSON writes the set as JSON to w.
func GenerateJSON(w io.Writer, set *results.Set) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(set)
}

func participantCounts(set *results.Set) []int {
	seen := make(map[int]struct{})
	for _, s := range set.Series {
		for _, p := range s.Points {
			seen[p.Participants] = struct{}{}
		}
	}

	counts := make([]int, 0, len(seen))
	for n := range seen {
		counts = append(counts, n)
	}

	sort.Ints(counts)

	return counts
}

func linesAt(s results.Series, participants int) []int {
	var out []int
	for _, p := range s.Points {
		if p.Participants == participants {
			out = append(out, p.Lines)
		}
	}

	return out
}

func formatLines(lines []int) string {
	if len(lines) == 0 {
		return "-"
	}

	parts := make([]string, len(lines))
	for i, n := range lines {
		parts[i] = strconv.Itoa(n)
	}

	return strings.Join(parts, "/")
}

// formatRatio reports the largest line count relative to the smallest.
func formatRatio(lines []int) string {
	smallest, largest := math.MaxInt, 0
	for _, n := range lines {
		smallest = min(smallest, n)
		largest = max(largest, n)
	}

	if len(lines) < 2 || smallest <= 0 {
		return "-"
	}

	return fmt.Sprintf("%.2fx", float64(largest)/float64(smallest))
}
