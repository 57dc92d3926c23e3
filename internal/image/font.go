package imagepkg

import (
	"fmt"
	"path/filepath"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// DefaultFontPath is tried first; it usually resolves through fontDirs.
const DefaultFontPath = "arial.ttf"

// DefaultFontSize is in points at 72 DPI, so it equals pixels.
const DefaultFontSize = 20

var fontDirs = []string{
	"/usr/share/fonts/truetype/msttcorefonts",
	"/usr/share/fonts/truetype/dejavu",
	"/usr/share/fonts/TTF",
	"/Library/Fonts",
	"/System/Library/Fonts/Supplemental",
	`C:\Windows\Fonts`,
}

// LoadFace loads the preferred TrueType font. When it cannot be found or
// parsed the embedded Go Regular face is returned and fallback is true.
func LoadFace(path string, size float64) (face font.Face, fallback bool, err error) {
	if size <= 0 {
		size = DefaultFontSize
	}
	for _, candidate := range fontCandidates(path) {
		if f, lerr := gg.LoadFontFace(candidate, size); lerr == nil {
			return f, false, nil
		}
	}
	face, err = fallbackFace(size)
	if err != nil {
		return nil, true, err
	}
	return face, true, nil
}

func fontCandidates(path string) []string {
	if path == "" {
		return nil
	}
	out := []string{path}
	if filepath.IsAbs(path) || filepath.Base(path) != path {
		return out
	}
	for _, dir := range fontDirs {
		out = append(out, filepath.Join(dir, path))
	}
	return out
}

func fallbackFace(size float64) (font.Face, error) {
	fnt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse goregular: %w", err)
	}
	face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("goregular face (size=%.1f): %w", size, err)
	}
	return face, nil
}
