package controller

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/youruser/idcardgen/internal/manifest"
)

// Failure names a recipient whose card could not be rendered.
type Failure struct {
	Identifier string `json:"id"`
	Field1     string `json:"field1"`
	Error      string `json:"error"`
}

// Summary is the single report of one generation run.
type Summary struct {
	OutputDir string          `json:"output_dir"`
	Total     int             `json:"total"`
	Rendered  int             `json:"rendered"`
	Failures  []Failure       `json:"failures,omitempty"`
	Rows      []manifest.Row  `json:"rows,omitempty"`
	Manifest  manifest.Result `json:"manifest"`
}

// Message renders the summary as operator-facing text.
func (s *Summary) Message() string {
	lines := []string{
		fmt.Sprintf("Generated %d of %d ID cards in '%s' folder.", s.Rendered, s.Total, s.OutputDir),
	}

	m := s.Manifest
	name := filepath.Base(m.Path)
	switch {
	case m.Format == manifest.FormatXLSX:
		lines = append(lines, fmt.Sprintf("Excel database saved as '%s'.", name))
	case m.Format == manifest.FormatCSV && m.Tier == 2:
		lines = append(lines, fmt.Sprintf("Excel file could not be created (%s). Data has been saved as CSV instead at '%s'.", m.Reason, name))
	case m.Format == manifest.FormatCSV:
		lines = append(lines, fmt.Sprintf("Excel file could not be created due to an error: %s. Data has been saved as CSV instead at '%s'.", m.Reason, name))
	case len(m.Errors) > 0:
		lines = append(lines, "Cards were rendered, but the database file could not be created due to errors:")
		lines = append(lines, m.Errors...)
	default:
		lines = append(lines, "No database file was created because no cards were rendered.")
	}

	for _, f := range s.Failures {
		lines = append(lines, fmt.Sprintf("Error processing %s: %s", f.Field1, f.Error))
	}
	return strings.Join(lines, "\n")
}
