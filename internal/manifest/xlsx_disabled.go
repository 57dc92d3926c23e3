//go:build noxlsx

package manifest

import "io"

func SpreadsheetAvailable() bool {
	return false
}

func newSpreadsheetEncoder() Encoder {
	return EncoderFunc(func(io.Writer, []Row) error {
		return ErrBackendUnavailable
	})
}
