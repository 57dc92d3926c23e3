package roster

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LoadCSV reads a roster file with a header row naming the columns
// field1, field2, field3 and image (any order, case-insensitive).
// Relative image paths are resolved against the file's directory.
// The first invalid row aborts the load.
func LoadCSV(path string) ([]Recipient, error) {
	fp, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fp.Close()

	r := csv.NewReader(fp)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) < 1 {
		return nil, fmt.Errorf("csv %s has no header", path)
	}
	cols := map[string]int{}
	for i, h := range rows[0] {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, want := range []string{"field1", "image"} {
		if _, ok := cols[want]; !ok {
			return nil, fmt.Errorf("csv %s: missing %q column", path, want)
		}
	}

	get := func(row []string, name string) string {
		if idx, ok := cols[name]; ok && idx < len(row) {
			return strings.TrimSpace(row[idx])
		}
		return ""
	}

	baseDir := filepath.Dir(path)
	out := []Recipient{}
	for n, row := range rows[1:] {
		if isBlank(row) {
			continue
		}
		img := get(row, "image")
		if img != "" && !filepath.IsAbs(img) {
			img = filepath.Join(baseDir, img)
		}
		rec, err := NewRecipient(get(row, "field1"), get(row, "field2"), get(row, "field3"), img)
		if err != nil {
			// +2: header line and 1-based numbering
			return nil, fmt.Errorf("csv %s line %d: %w", path, n+2, err)
		}
		out = append(out, rec)
	}
	return out, nil
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
