package results

import (
	"fmt"
	"os"
)

// Scan lists the entry names directly under dir, sorted by name.
func Scan(dir string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("stat results dir: %w", err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("results dir %s is not a directory", dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read results dir %s: %w", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}

	return names, nil
}
