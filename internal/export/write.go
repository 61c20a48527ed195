package export

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"
)

// Output file names under the destination directory.
const (
	AllContactsFile      = "contacts.csv"
	FrequentContactsFile = "frequent-contacts.csv"
	VCardFile            = "contacts.vcf"
)

// Files groups the rendered output texts of one run.
type Files struct {
	AllCSV      string
	FrequentCSV string
	VCard       string
}

// WriteFiles writes the three output files under dir, creating the
// directory if needed, and returns the written paths in a fixed order.
// Existing files are overwritten, so rerunning a conversion leaves
// byte-identical output.
func WriteFiles(dir string, files Files) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	outputs := []struct {
		name string
		text string
	}{
		{AllContactsFile, files.AllCSV},
		{FrequentContactsFile, files.FrequentCSV},
		{VCardFile, files.VCard},
	}

	paths := make([]string, len(outputs))
	var g errgroup.Group
	for i, out := range outputs {
		i, out := i, out
		g.Go(func() error {
			path := filepath.Join(dir, out.name)
			if err := os.WriteFile(path, []byte(out.text), 0644); err != nil {
				return fmt.Errorf("write %s: %w", out.name, err)
			}
			paths[i] = path
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}
