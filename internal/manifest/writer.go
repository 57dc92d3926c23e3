package manifest

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/youruser/idcardgen/internal/util"
)

// ErrBackendUnavailable reports that the spreadsheet backend is not built in.
var ErrBackendUnavailable = errors.New("spreadsheet backend unavailable")

type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatCSV  Format = "csv"
	FormatNone Format = "none"
)

// Result describes which manifest, if any, was produced and why.
type Result struct {
	Format Format `json:"format"`
	Path   string `json:"path,omitempty"`
	// Tier is 1 for the spreadsheet, 2 for the structured CSV, 3 for the
	// minimal CSV and 0 when nothing was written.
	Tier   int      `json:"tier"`
	Reason string   `json:"reason,omitempty"`
	Errors []string `json:"errors,omitempty"`
}

// Encoder serializes rows into one file format.
type Encoder interface {
	Encode(w io.Writer, rows []Row) error
}

type EncoderFunc func(w io.Writer, rows []Row) error

func (f EncoderFunc) Encode(w io.Writer, rows []Row) error {
	return f(w, rows)
}

// Writer writes the manifest for one run, degrading from spreadsheet to
// structured CSV to minimal CSV.
type Writer struct {
	// Spreadsheet is nil when the spreadsheet backend is disabled.
	Spreadsheet Encoder
	Delimited   Encoder
	Minimal     Encoder
	logger      *slog.Logger
}

// NewWriter builds a writer. spreadsheet is the capability flag resolved at
// startup; it is ignored when the backend is not compiled in.
func NewWriter(spreadsheet bool, logger *slog.Logger) *Writer {
	if logger == nil {
		logger = slog.Default()
	}
	w := &Writer{
		Delimited: CSVEncoder{},
		Minimal:   MinimalCSVEncoder{},
		logger:    logger.With(slog.String("component", "manifest")),
	}
	if spreadsheet && SpreadsheetAvailable() {
		w.Spreadsheet = newSpreadsheetEncoder()
	}
	return w
}

func (w *Writer) SpreadsheetEnabled() bool {
	return w.Spreadsheet != nil
}

// Write serializes rows into dir. With no rows nothing is attempted.
func (w *Writer) Write(dir string, rows []Row) Result {
	if len(rows) == 0 {
		return Result{Format: FormatNone, Reason: "no cards were rendered"}
	}
	xlsxPath := filepath.Join(dir, BaseName+".xlsx")
	csvPath := filepath.Join(dir, BaseName+".csv")

	var primaryErr error
	reason := ""
	if w.Spreadsheet == nil {
		reason = "spreadsheet backend not installed"
	} else {
		err := writeFile(xlsxPath, w.Spreadsheet, rows)
		switch {
		case err == nil:
			w.logger.Info("manifest written", slog.String("format", string(FormatXLSX)), slog.String("path", xlsxPath))
			return Result{Format: FormatXLSX, Path: xlsxPath, Tier: 1}
		case errors.Is(err, ErrBackendUnavailable):
			reason = err.Error()
		default:
			primaryErr = err
		}
	}

	if primaryErr == nil {
		err := writeFile(csvPath, w.Delimited, rows)
		if err == nil {
			w.logger.Info("manifest written",
				slog.String("format", string(FormatCSV)),
				slog.String("path", csvPath),
				slog.String("reason", reason))
			return Result{Format: FormatCSV, Path: csvPath, Tier: 2, Reason: reason}
		}
		primaryErr = err
	}

	err := writeFile(csvPath, w.Minimal, rows)
	if err == nil {
		w.logger.Warn("manifest written by minimal writer",
			slog.String("path", csvPath),
			slog.String("error", primaryErr.Error()))
		return Result{Format: FormatCSV, Path: csvPath, Tier: 3, Reason: primaryErr.Error()}
	}

	w.logger.Error("no manifest written",
		slog.String("error", primaryErr.Error()),
		slog.String("fallback_error", err.Error()))
	return Result{
		Format: FormatNone,
		Reason: "every manifest writer failed",
		Errors: []string{primaryErr.Error(), err.Error()},
	}
}

func writeFile(path string, enc Encoder, rows []Row) error {
	if err := util.WriteFileAtomic(path, func(out io.Writer) error {
		return enc.Encode(out, rows)
	}); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}
