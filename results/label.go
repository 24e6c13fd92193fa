// Package results loads line-count result files written by the benchmark
// harness and groups them into per-variant series keyed by participant
// count.
package results

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownLabel is returned for a participant word outside the
	// fixed label table.
	ErrUnknownLabel = errors.New("unknown participant label")

	// ErrMalformedName is returned when a result file name cannot be
	// parsed into a label and a variant.
	ErrMalformedName = errors.New("malformed result file name")

	// ErrEmptySeries is returned when a variant has no result files.
	ErrEmptySeries = errors.New("no results for variant")

	// ErrDuplicateCount is returned when duplicates are rejected and a
	// variant has two files for the same participant count.
	ErrDuplicateCount = errors.New("duplicate participant count")
)

// Label is the participant-count word embedded in a result file name.
type Label uint8

const (
	LabelEmpty Label = iota
	LabelThree
	LabelFour
	LabelFive
	LabelSix
	LabelSeven
	LabelEight
	LabelNine
	LabelTen
	LabelEleven
	LabelTwenty

	numLabels
)

var labelTable = [numLabels]struct {
	word  string
	count int
}{
	LabelEmpty:  {"empty", 0},
	LabelThree:  {"three", 3},
	LabelFour:   {"four", 4},
	LabelFive:   {"five", 5},
	LabelSix:    {"six", 6},
	LabelSeven:  {"seven", 7},
	LabelEight:  {"eight", 8},
	LabelNine:   {"nine", 9},
	LabelTen:    {"ten", 10},
	LabelEleven: {"eleven", 11},
	LabelTwenty: {"twenty", 20},
}

// Labels returns every known label in ascending participant order.
func Labels() []Label {
	out := make([]Label, 0, numLabels)
	for l := Label(0); l < numLabels; l++ {
		out = append(out, l)
	}

	return out
}

// ParseLabel resolves a participant word. Anything outside the table
// is an ErrUnknownLabel.
func ParseLabel(word string) (Label, error) {
	for l, e := range labelTable {
		if e.word == word {
			return Label(l), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownLabel, word)
}

// Count returns the number of participants the label stands for.
func (l Label) Count() int {
	if l >= numLabels {
		return -1
	}

	return labelTable[l].count
}

func (l Label) String() string {
	if l >= numLabels {
		return fmt.Sprintf("Label(%d)", uint8(l))
	}

	return labelTable[l].word
}
