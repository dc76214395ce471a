package qrcode

import (
	"bytes"
	"fmt"
	"image/png"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/qr"
)

// Generator renders a QR payload into image bytes. Kept narrow so services
// depend on the rendering capability, not on the barcode library.
type Generator interface {
	Render(payload string) ([]byte, error)
}

type PNGGenerator struct {
	size int
}

func NewPNGGenerator() *PNGGenerator {
	return &PNGGenerator{size: 256}
}

// Render encodes payload as a QR code and returns it as a PNG.
func (g *PNGGenerator) Render(payload string) ([]byte, error) {
	code, err := qr.Encode(payload, qr.M, qr.Auto)
	if err != nil {
		return nil, fmt.Errorf("encode qr payload: %w", err)
	}

	code, err = barcode.Scale(code, g.size, g.size)
	if err != nil {
		return nil, fmt.Errorf("scale qr image: %w", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, code); err != nil {
		return nil, fmt.Errorf("encode qr png: %w", err)
	}
	return buf.Bytes(), nil
}
