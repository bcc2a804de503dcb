package store

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/askarov/stdmap/internal/sim"
)

// DefaultCSVName is the flat-export filename for a batch:
// "K-<val>-len-<steps>.csv".
func DefaultCSVName(b *sim.Batch) string {
	return fmt.Sprintf("K-%g-len-%d.csv", b.K, b.Steps)
}

// dedupe appends " (n)" before the extension until the name is free.
func dedupe(dir, name string) string {
	path := filepath.Join(dir, name)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return path
	}
	ext := filepath.Ext(name)
	base := name[:len(name)-len(ext)]
	for n := 1; ; n++ {
		candidate := filepath.Join(dir, fmt.Sprintf("%s (%d)%s", base, n, ext))
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			return candidate
		}
	}
}

// ExportCSV writes one batch as a flat CSV: a "K = <val>" header comment
// followed by I,theta columns, trajectories concatenated in order. An
// empty name selects the default; a taken name gets a " (n)" suffix.
// Returns the path actually written.
func ExportCSV(b *sim.Batch, dir, name string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	if name == "" {
		name = DefaultCSVName(b)
	}
	path := dedupe(dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "# K = %g\n", b.K); err != nil {
		return "", err
	}

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"I", "theta"}); err != nil {
		return "", err
	}
	for _, tr := range b.Trajectories {
		for n := range tr.I {
			row := []string{
				strconv.FormatFloat(tr.I[n], 'f', 9, 64),
				strconv.FormatFloat(tr.Theta[n], 'f', 9, 64),
			}
			if err := w.Write(row); err != nil {
				return "", err
			}
		}
	}

	return path, nil
}
