package imagepkg

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	qrcode "github.com/skip2/go-qrcode"
)

// DefaultQRSize is the side length in pixels of card QR codes.
const DefaultQRSize = 100

// qrLevel recovers about 7% of damaged data.
const qrLevel = qrcode.Low

// EncodeQR returns a square QR image of size x size pixels for payload.
func EncodeQR(payload string, size int) (image.Image, error) {
	if size <= 0 {
		size = DefaultQRSize
	}
	q, err := qrcode.New(payload, qrLevel)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}
	return q.Image(size), nil
}

// EncodeQRPNG returns PNG bytes of a QR code for the given payload.
func EncodeQRPNG(payload string, size int) ([]byte, error) {
	if size <= 0 {
		size = DefaultQRSize
	}
	pngBytes, err := qrcode.Encode(payload, qrLevel, size)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}
	// validate png decode
	if _, err := png.Decode(bytes.NewReader(pngBytes)); err != nil {
		return nil, err
	}
	return pngBytes, nil
}
