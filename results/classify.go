package results

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	fileSuffix = ".txt"
	namePrefix = "long_simple_"
)

var strictName = regexp.MustCompile(
	`^long_simple_([a-z]+)_(mpst|binary|crossbeam)[^/]*\.txt$`,
)

// Entry is a result file name broken into its parts.
type Entry struct {
	Name    string
	Label   Label
	Variant Variant
}

// Participants is the participant count encoded in the name.
func (e Entry) Participants() int { return e.Label.Count() }

// Qualifies reports whether name looks like a result file at all.
// Names that do not qualify are skipped silently.
func Qualifies(name string) bool {
	return strings.Contains(name, fileSuffix) &&
		strings.Contains(name, namePrefix)
}

// Classify parses a directory entry name. ok is false when the name is
// not a result file or matches no known variant. An error is returned
// for a qualifying name with an unknown participant label, and, in
// strict mode, for any qualifying name not of the form
// long_simple_<label>_<variant>[...].txt. In strict mode the label and
// variant are the ones in those positions.
func Classify(name string, strict bool) (entry Entry, ok bool, err error) {
	if !Qualifies(name) {
		return Entry{}, false, nil
	}

	if strict {
		return classifyStrict(name)
	}

	word, err := labelWord(name)
	if err != nil {
		return Entry{}, false, err
	}

	variant, found := matchVariant(name)
	if !found {
		return Entry{}, false, nil
	}

	label, err := ParseLabel(word)
	if err != nil {
		return Entry{}, false, fmt.Errorf("%s: %w", name, err)
	}

	return Entry{Name: name, Label: label, Variant: variant}, true, nil
}

func classifyStrict(name string) (Entry, bool, error) {
	m := strictName.FindStringSubmatch(name)
	if m == nil {
		return Entry{}, false, fmt.Errorf("%w: %q", ErrMalformedName, name)
	}

	label, err := ParseLabel(m[1])
	if err != nil {
		return Entry{}, false, fmt.Errorf("%s: %w", name, err)
	}

	variant, err := ParseVariant(m[2])
	if err != nil {
		return Entry{}, false, fmt.Errorf("%w: %q", ErrMalformedName, name)
	}

	return Entry{Name: name, Label: label, Variant: variant}, true, nil
}

// labelWord returns the text between the first "long_simple_" and the
// following "_", looking only at the part of name before ".txt".
func labelWord(name string) (string, error) {
	base := name[:strings.Index(name, fileSuffix)]

	i := strings.Index(base, namePrefix)
	if i < 0 {
		return "", fmt.Errorf("%w: %q", ErrMalformedName, name)
	}

	rest := base[i+len(namePrefix):]
	if j := strings.Index(rest, namePrefix); j >= 0 {
		rest = rest[:j]
	}

	if j := strings.IndexByte(rest, '_'); j >= 0 {
		rest = rest[:j]
	}

	return rest, nil
}

// matchVariant checks the variant tags in priority order; the first
// tag contained in name wins.
func matchVariant(name string) (Variant, bool) {
	for _, v := range Variants() {
		if strings.Contains(name, v.Tag()) {
			return v, true
		}
	}

	return 0, false
}

// ExampleName returns the benchmark example name for a label and
// variant, e.g. long_simple_three_mpst.
func ExampleName(l Label, v Variant) string {
	return namePrefix + l.String() + "_" + v.Tag()
}

// FileName returns the result file name for a label and variant.
func FileName(l Label, v Variant) string {
	return ExampleName(l, v) + fileSuffix
}
