package controller

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/youruser/idcardgen/internal/manifest"
)

func TestSummaryMessage(t *testing.T) {
	base := Summary{OutputDir: "Generated_IDs_x", Total: 3, Rendered: 2}

	cases := []struct {
		name string
		res  manifest.Result
		want string
	}{
		{"xlsx", manifest.Result{Format: manifest.FormatXLSX, Path: "d/recipients_database.xlsx", Tier: 1}, "Excel database saved as 'recipients_database.xlsx'."},
		{"csv", manifest.Result{Format: manifest.FormatCSV, Path: "d/recipients_database.csv", Tier: 2, Reason: "spreadsheet backend not installed"}, "(spreadsheet backend not installed)"},
		{"minimal", manifest.Result{Format: manifest.FormatCSV, Path: "d/recipients_database.csv", Tier: 3, Reason: "boom"}, "due to an error: boom"},
		{"none", manifest.Result{Format: manifest.FormatNone, Errors: []string{"e1", "e2"}}, "could not be created due to errors:\ne1\ne2"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := base
			s.Manifest = tc.res
			msg := s.Message()
			require.Contains(t, msg, "Generated 2 of 3 ID cards in 'Generated_IDs_x' folder.")
			require.Contains(t, msg, tc.want)
		})
	}
}
