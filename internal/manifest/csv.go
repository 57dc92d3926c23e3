package manifest

import (
	"bufio"
	"encoding/csv"
	"io"
	"strings"
)

// CSVEncoder writes a header and one record per row with encoding/csv.
type CSVEncoder struct{}

func (CSVEncoder) Encode(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write(r.Values()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// MinimalCSVEncoder is the last-resort writer. The header comes from the
// first row's keys.
type MinimalCSVEncoder struct{}

func (MinimalCSVEncoder) Encode(w io.Writer, rows []Row) error {
	if len(rows) == 0 {
		return nil
	}
	bw := bufio.NewWriter(w)
	first := rows[0].Fields()
	keys := make([]string, len(first))
	for i, f := range first {
		keys[i] = quoteField(f.Key)
	}
	bw.WriteString(strings.Join(keys, ",") + "\r\n")
	for _, r := range rows {
		fields := r.Fields()
		vals := make([]string, len(fields))
		for i, f := range fields {
			vals[i] = quoteField(f.Value)
		}
		bw.WriteString(strings.Join(vals, ",") + "\r\n")
	}
	return bw.Flush()
}

func quoteField(s string) string {
	if !strings.ContainsAny(s, ",\"\r\n") {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
