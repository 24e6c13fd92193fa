package results

import "fmt"

// Variant is one of the compared implementations.
type Variant uint8

const (
	MPST Variant = iota
	Binary
	Crossbeam

	numVariants
)

var variantNames = [numVariants]struct {
	tag     string
	display string
}{
	MPST:      {"mpst", "MPST"},
	Binary:    {"binary", "Binary"},
	Crossbeam: {"crossbeam", "Crossbeam"},
}

// Variants returns all variants in matching priority order.
func Variants() []Variant {
	return []Variant{MPST, Binary, Crossbeam}
}

// ParseVariant resolves a tag such as "mpst".
func ParseVariant(tag string) (Variant, error) {
	for v, n := range variantNames {
		if n.tag == tag {
			return Variant(v), nil
		}
	}

	return 0, fmt.Errorf("unknown variant %q", tag)
}

// Tag is the lowercase token that marks the variant in file names.
func (v Variant) Tag() string {
	if v >= numVariants {
		return fmt.Sprintf("variant%d", uint8(v))
	}

	return variantNames[v].tag
}

// DisplayName is the legend text for the variant.
func (v Variant) DisplayName() string {
	if v >= numVariants {
		return v.Tag()
	}

	return variantNames[v].display
}

func (v Variant) String() string { return v.Tag() }

// MarshalText encodes the variant as its tag.
func (v Variant) MarshalText() ([]byte, error) {
	if v >= numVariants {
		return nil, fmt.Errorf("unknown variant %d", uint8(v))
	}

	return []byte(v.Tag()), nil
}

// UnmarshalText decodes a variant tag.
func (v *Variant) UnmarshalText(b []byte) error {
	parsed, err := ParseVariant(string(b))
	if err != nil {
		return err
	}

	*v = parsed

	return nil
}
