package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderProducesPNG(t *testing.T) {
	gen := NewPNGGenerator()

	data, err := gen.Render("QR-EMP-A1B2C3D4")
	require.NoError(t, err)
	require.NotEmpty(t, data)

	// PNG magic bytes.
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, data[:4])

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	bounds := img.Bounds()
	assert.Equal(t, 256, bounds.Dx())
	assert.Equal(t, 256, bounds.Dy())
}

func TestRenderDeterministic(t *testing.T) {
	gen := NewPNGGenerator()

	first, err := gen.Render("QR-EMP-A1B2C3D4")
	require.NoError(t, err)
	second, err := gen.Render("QR-EMP-A1B2C3D4")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	other, err := gen.Render("QR-EMP-FFFFFFFF")
	require.NoError(t, err)
	assert.NotEqual(t, first, other)
}
