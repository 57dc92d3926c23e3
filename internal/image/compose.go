package imagepkg

import (
	"fmt"
	"image"
	"image/color"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Layout holds the card geometry in pixels.
type Layout struct {
	Width       int
	Height      int
	ProfileSize int
	ProfileTop  int
	QRSize      int
	QRTop       int
	FieldsTop   int
	LinePitch   int
	BoxPadding  int
	BorderWidth float64
	Labels      [3]string
}

// DefaultLayout is a 400x600 portrait card.
func DefaultLayout() Layout {
	return Layout{
		Width:       400,
		Height:      600,
		ProfileSize: 200,
		ProfileTop:  50,
		QRSize:      DefaultQRSize,
		QRTop:       450,
		FieldsTop:   300,
		LinePitch:   60,
		BoxPadding:  10,
		BorderWidth: 2,
		Labels:      [3]string{"Field 1:", "Field 2:", "Field 3:"},
	}
}

// TextBox records where one field line was drawn.
type TextBox struct {
	Text string
	// Top is the vertical cursor the line was drawn at.
	Top int
	// Box is the padded rectangle behind the text.
	Box image.Rectangle
}

// Card is a rendered card and the positions of its field boxes.
type Card struct {
	Image image.Image
	Boxes []TextBox
}

// Compositor renders cards onto a shared layout and font.
type Compositor struct {
	layout Layout
	face   font.Face
}

func NewCompositor(layout Layout, face font.Face) *Compositor {
	return &Compositor{layout: layout, face: face}
}

func (c *Compositor) Layout() Layout {
	return c.layout
}

// Render loads the template and profile image from disk and composes a card.
func (c *Compositor) Render(templatePath, profilePath string, qr image.Image, fields [3]string) (*Card, error) {
	bg, err := imaging.Open(templatePath)
	if err != nil {
		return nil, fmt.Errorf("open template: %w", err)
	}
	profile, err := imaging.Open(profilePath)
	if err != nil {
		return nil, fmt.Errorf("open profile image: %w", err)
	}
	return c.Compose(bg, profile, qr, fields), nil
}

// Compose draws the background, profile image, QR code and non-empty fields.
// Only non-empty fields advance the vertical cursor, so blank fields leave no gap.
func (c *Compositor) Compose(background, profile, qr image.Image, fields [3]string) *Card {
	l := c.layout
	canvas := imaging.Resize(background, l.Width, l.Height, imaging.Lanczos)

	p := imaging.Resize(profile, l.ProfileSize, l.ProfileSize, imaging.Lanczos)
	canvas = imaging.Overlay(canvas, p, image.Pt((l.Width-l.ProfileSize)/2, l.ProfileTop), 1.0)

	if qr != nil {
		b := qr.Bounds()
		if b.Dx() != l.QRSize || b.Dy() != l.QRSize {
			qr = imaging.Resize(qr, l.QRSize, l.QRSize, imaging.NearestNeighbor)
		}
		canvas = imaging.Paste(canvas, qr, image.Pt((l.Width-l.QRSize)/2, l.QRTop))
	}

	dc := gg.NewContextForImage(canvas)
	dc.SetFontFace(c.face)

	var boxes []TextBox
	y := l.FieldsTop
	for i, value := range fields {
		if value == "" {
			continue
		}
		text := strings.TrimSpace(l.Labels[i] + " " + value)
		boxes = append(boxes, c.drawField(dc, text, y))
		y += l.LinePitch
	}

	return &Card{Image: dc.Image(), Boxes: boxes}
}

// drawField draws text horizontally centered with its ink top at y,
// on a white bordered box padded on every side.
func (c *Compositor) drawField(dc *gg.Context, text string, y int) TextBox {
	l := c.layout
	bounds, _ := font.BoundString(c.face, text)
	w := (bounds.Max.X - bounds.Min.X).Ceil()
	h := (bounds.Max.Y - bounds.Min.Y).Ceil()
	x := (l.Width - w) / 2

	box := image.Rect(x-l.BoxPadding, y-l.BoxPadding, x+w+l.BoxPadding, y+h+l.BoxPadding)
	dc.DrawRectangle(float64(box.Min.X), float64(box.Min.Y), float64(box.Dx()), float64(box.Dy()))
	dc.SetColor(color.White)
	dc.FillPreserve()
	dc.SetColor(color.Black)
	dc.SetLineWidth(l.BorderWidth)
	dc.Stroke()

	dc.DrawString(text, float64(x)-fixedToFloat(bounds.Min.X), float64(y)-fixedToFloat(bounds.Min.Y))
	return TextBox{Text: text, Top: y, Box: box}
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

// CardFileName derives the output file name from field1. Spaces and path
// separators become underscores; equal names overwrite each other.
func CardFileName(field1 string) string {
	r := strings.NewReplacer(" ", "_", "/", "_", `\`, "_")
	return r.Replace(field1) + ".png"
}

// Save writes the card as PNG.
func Save(card *Card, dir, name string) (string, error) {
	path := filepath.Join(dir, name)
	if err := imaging.Save(card.Image, path); err != nil {
		return "", fmt.Errorf("save card: %w", err)
	}
	return path, nil
}
