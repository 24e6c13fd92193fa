package results

import (
	"errors"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name        string
		wantOK      bool
		wantLabel   Label
		wantVariant Variant
	}{
		{"long_simple_three_mpst.txt", true, LabelThree, MPST},
		{"long_simple_twenty_binary.txt", true, LabelTwenty, Binary},
		{"long_simple_eleven_crossbeam_run2.txt", true, LabelEleven, Crossbeam},
		{"long_simple_empty_mpst.txt", true, LabelEmpty, MPST},
		{"prefix_long_simple_four_binary.txt", true, LabelFour, Binary},
		// mpst takes priority over binary.
		{"long_simple_five_binary_mpst.txt", true, LabelFive, MPST},
		{"long_simple_three_tokio.txt", false, 0, 0},
		{"long_simple_three_mpst.log", false, 0, 0},
		{"short_three_mpst.txt", false, 0, 0},
		{"graphAverageLine.pdf", false, 0, 0},
	}

	for _, tt := range tests {
		entry, ok, err := Classify(tt.name, false)
		if err != nil {
			t.Fatalf("Classify(%q) failed: %v", tt.name, err)
		}

		if ok != tt.wantOK {
			t.Errorf("Classify(%q) ok = %v, want %v", tt.name, ok, tt.wantOK)

			continue
		}

		if !ok {
			continue
		}

		if entry.Label != tt.wantLabel {
			t.Errorf("Classify(%q) label = %s, want %s", tt.name, entry.Label, tt.wantLabel)
		}
		if entry.Variant != tt.wantVariant {
			t.Errorf("Classify(%q) variant = %s, want %s", tt.name, entry.Variant, tt.wantVariant)
		}
		if entry.Name != tt.name {
			t.Errorf("Classify(%q) name = %q", tt.name, entry.Name)
		}
	}
}

func TestClassifyUnknownLabel(t *testing.T) {
	_, _, err := Classify("long_simple_twelve_mpst.txt", false)
	if !errors.Is(err, ErrUnknownLabel) {
		t.Fatalf("error = %v, want ErrUnknownLabel", err)
	}

	if !strings.Contains(err.Error(), "twelve") {
		t.Errorf("error %q does not name the label", err)
	}
}

func TestClassifyUnknownLabelWithoutVariantIsSkipped(t *testing.T) {
	_, ok, err := Classify("long_simple_twelve_tokio.txt", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("expected name without a variant to be skipped")
	}
}

func TestClassifyPrefixAfterSuffix(t *testing.T) {
	_, _, err := Classify("x.txt.long_simple_three_mpst", false)
	if !errors.Is(err, ErrMalformedName) {
		t.Fatalf("error = %v, want ErrMalformedName", err)
	}
}

func TestClassifyStrict(t *testing.T) {
	good := []string{
		"long_simple_three_mpst.txt",
		"long_simple_ten_crossbeam_2.txt",
	}
	for _, name := range good {
		if _, ok, err := Classify(name, true); err != nil || !ok {
			t.Errorf("Classify(%q, strict) = ok %v, err %v", name, ok, err)
		}
	}

	bad := []string{
		"prefix_long_simple_four_binary.txt",
		"long_simple_three_tokio.txt",
		"long_simple_three_mpst.txt.bak",
	}
	for _, name := range bad {
		_, _, err := Classify(name, true)
		if !errors.Is(err, ErrMalformedName) {
			t.Errorf("Classify(%q, strict) error = %v, want ErrMalformedName", name, err)
		}
	}

	// Non-qualifying names are still skipped in strict mode.
	if _, ok, err := Classify("README.md", true); ok || err != nil {
		t.Errorf("Classify(README.md, strict) = ok %v, err %v", ok, err)
	}
}

func TestClassifySkipsNonQualifying_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("names without .txt or long_simple_ are skipped", prop.ForAll(
		func(name string) bool {
			if Qualifies(name) {
				return true
			}

			_, ok, err := Classify(name, false)

			return !ok && err == nil
		},
		gen.AnyString(),
	))

	properties.Property("well-formed names resolve to their label and variant", prop.ForAll(
		func(li, vi int, suffix string) bool {
			l := Labels()[li]
			v := Variants()[vi]
			name := "long_simple_" + l.String() + "_" + v.Tag() + suffix + ".txt"

			entry, ok, err := Classify(name, true)
			if err != nil || !ok {
				t.Logf("Classify(%q): ok=%v err=%v", name, ok, err)

				return false
			}

			return entry.Label == l && entry.Variant == v &&
				entry.Participants() == l.Count()
		},
		gen.IntRange(0, len(Labels())-1),
		gen.IntRange(0, len(Variants())-1),
		gen.RegexMatch(`^(_run[0-9]{1,3})?$`),
	))

	properties.TestingRun(t)
}

func TestClassifyStrictUsesVariantPosition(t *testing.T) {
	name := "long_simple_three_binary_mpst.txt"

	entry, ok, err := Classify(name, true)
	if err != nil || !ok {
		t.Fatalf("Classify(%q, strict) = ok %v, err %v", name, ok, err)
	}
	if entry.Variant != Binary {
		t.Errorf("strict variant = %s, want binary", entry.Variant)
	}
	if entry.Label != LabelThree {
		t.Errorf("strict label = %s, want three", entry.Label)
	}

	// Lenient mode keeps the priority order.
	entry, _, err = Classify(name, false)
	if err != nil {
		t.Fatalf("Classify(%q) failed: %v", name, err)
	}
	if entry.Variant != MPST {
		t.Errorf("lenient variant = %s, want mpst", entry.Variant)
	}
}

func TestClassifyStrictUnknownLabel(t *testing.T) {
	_, _, err := Classify("long_simple_twelve_crossbeam.txt", true)
	if !errors.Is(err, ErrUnknownLabel) {
		t.Fatalf("error = %v, want ErrUnknownLabel", err)
	}
}
