package results

import (
	"fmt"
	"sort"
)

// Point is one result file: x is the participant count, y the number
// of lines in the file.
type Point struct {
	Participants int    `json:"participants"`
	Lines        int    `json:"lines"`
	File         string `json:"file"`
}

// Series holds the points of one variant.
type Series struct {
	Variant Variant `json:"variant"`
	Points  []Point `json:"points"`
}

// Sort orders the points by participant count. Points with the same
// count keep file name order.
func (s *Series) Sort() {
	sort.SliceStable(s.Points, func(i, j int) bool {
		a, b := s.Points[i], s.Points[j]
		if a.Participants != b.Participants {
			return a.Participants < b.Participants
		}

		return a.File < b.File
	})
}

// XY returns the participant counts and line counts as parallel slices.
func (s *Series) XY() (xs, ys []int) {
	xs = make([]int, len(s.Points))
	ys = make([]int, len(s.Points))

	for i, p := range s.Points {
		xs[i] = p.Participants
		ys[i] = p.Lines
	}

	return xs, ys
}

func (s *Series) duplicate() (int, bool) {
	seen := make(map[int]struct{}, len(s.Points))
	for _, p := range s.Points {
		if _, ok := seen[p.Participants]; ok {
			return p.Participants, true
		}

		seen[p.Participants] = struct{}{}
	}

	return 0, false
}

// Set groups the series of every variant found in one results directory.
type Set struct {
	Dir    string   `json:"dir"`
	Series []Series `json:"series"`
}

// NewSet returns a Set with an empty series for each variant.
func NewSet(dir string) *Set {
	set := &Set{Dir: dir, Series: make([]Series, 0, numVariants)}
	for _, v := range Variants() {
		set.Series = append(set.Series, Series{Variant: v})
	}

	return set
}

// Get returns the series of variant v.
func (s *Set) Get(v Variant) *Series {
	return &s.Series[v]
}

// Add appends a point to the series of variant v.
func (s *Set) Add(v Variant, p Point) {
	series := s.Get(v)
	series.Points = append(series.Points, p)
}

// Sort sorts every series independently.
func (s *Set) Sort() {
	for i := range s.Series {
		s.Series[i].Sort()
	}
}

// Validate fails with ErrEmptySeries if any variant has no points, and
// with ErrDuplicateCount if rejectDuplicates is set and a variant has
// two points for the same participant count.
func (s *Set) Validate(rejectDuplicates bool) error {
	for i := range s.Series {
		series := &s.Series[i]
		if len(series.Points) == 0 {
			return fmt.Errorf("%w %s in %s",
				ErrEmptySeries, series.Variant.DisplayName(), s.Dir)
		}

		if !rejectDuplicates {
			continue
		}

		if n, dup := series.duplicate(); dup {
			return fmt.Errorf("%w: %s has more than one file for %d participants",
				ErrDuplicateCount, series.Variant.DisplayName(), n)
		}
	}

	return nil
}

// Total returns the number of points across all series.
func (s *Set) Total() int {
	var n int
	for _, series := range s.Series {
		n += len(series.Points)
	}

	return n
}
