package expand

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/weiihann/linegraph/results"
)

// CommandConfig holds the resolved command and extra arguments needed
// to run cargo expand.
type CommandConfig struct {
	Binary    string
	ExtraArgs []string
}

// WrapCommand returns the exec configuration for cargo expand. A
// non-empty toolchain is passed as +<toolchain>, since cargo expand
// needs a nightly compiler.
func WrapCommand(cargo, toolchain string) CommandConfig {
	if cargo == "" {
		cargo = "cargo"
	}

	args := make([]string, 0, 2)
	if toolchain != "" {
		args = append(args, "+"+toolchain)
	}

	return CommandConfig{
		Binary:    cargo,
		ExtraArgs: append(args, "expand"),
	}
}

// Examples returns the names of every example for the given labels and
// variants.
func Examples(labels []results.Label, variants []results.Variant) []string {
	names := make([]string, 0, len(labels)*len(variants))
	for _, v := range variants {
		for _, l := range labels {
			names = append(names, results.ExampleName(l, v))
		}
	}

	return names
}

// Discover walks <projectDir>/examples and returns the sorted names of
// the example sources that would produce result files.
func Discover(projectDir string) ([]string, error) {
	root := filepath.Join(projectDir, "examples")

	var names []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(path) != ".rs" {
			return nil
		}

		example := strings.TrimSuffix(d.Name(), ".rs")
		if _, ok, err := results.Classify(example+".txt", true); err != nil || !ok {
			return nil
		}

		names = append(names, example)

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("discover examples in %s: %w", root, err)
	}

	sort.Strings(names)

	return names, nil
}
