package util

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// RunDirLayout is the timestamp format used in run directory names.
const RunDirLayout = "20060102_150405"

func EnsureDir(path string) error {
	return os.MkdirAll(path, 0o755)
}

// CreateRunDir creates root/<prefix><timestamp>. When that directory already
// exists a numeric suffix is added, so two runs never share a directory.
func CreateRunDir(root, prefix string, now time.Time) (string, error) {
	if err := EnsureDir(root); err != nil {
		return "", err
	}
	base := filepath.Join(root, prefix+now.Format(RunDirLayout))
	dir := base
	for n := 2; n < 1000; n++ {
		err := os.Mkdir(dir, 0o755)
		if err == nil {
			return dir, nil
		}
		if !errors.Is(err, os.ErrExist) {
			return "", err
		}
		dir = fmt.Sprintf("%s_%d", base, n)
	}
	return "", fmt.Errorf("no free run directory for %s", base)
}

// WriteFileAtomic streams write into a temp file next to path and renames it
// into place; on failure the temp file is removed and path is untouched.
func WriteFileAtomic(path string, write func(w io.Writer) error) error {
	randBytes := make([]byte, 8)
	if _, err := rand.Read(randBytes); err != nil {
		return fmt.Errorf("temp file name: %w", err)
	}
	tempPath := path + "." + hex.EncodeToString(randBytes) + ".tmp"
	f, err := os.OpenFile(tempPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}

	success := false
	defer func() {
		if !success {
			os.Remove(tempPath)
		}
	}()

	if err := write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	if err := os.Rename(tempPath, path); err != nil {
		return err
	}
	success = true
	return nil
}
