package imageio

import (
	"image"
	"image/color"
	"testing"

	"github.com/etca-codec/etca/pixel"
	"github.com/stretchr/testify/require"
)

func TestRoundTripRGBA(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 6, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 6; x++ {
			src.SetRGBA(x, y, color.RGBA{R: uint8(x * 10), G: uint8(y * 20), B: uint8(x + y), A: 0xFF})
		}
	}

	buf := ToPixelBuffer(src)
	require.Equal(t, 6, buf.W)
	require.Equal(t, 4, buf.H)
	require.Equal(t, pixel.Color{R: 30, G: 40, B: 5}, buf.Get(3, 2))

	back := FromPixelBuffer(buf)
	r, g, b, _ := back.At(3, 2).RGBA()
	require.Equal(t, uint32(30), r>>8)
	require.Equal(t, uint32(40), g>>8)
	require.Equal(t, uint32(5), b>>8)
}

func TestToPixelBufferNRGBA(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	src.SetNRGBA(1, 1, color.NRGBA{R: 200, G: 100, B: 50, A: 0xFF})

	buf := ToPixelBuffer(src)
	require.Equal(t, pixel.Color{R: 200, G: 100, B: 50}, buf.Get(1, 1))
}

func TestToPixelBufferFallsBackToAt(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 3, 3))
	src.SetGray(1, 1, color.Gray{Y: 128})

	buf := ToPixelBuffer(src)
	c := buf.Get(1, 1)
	require.Equal(t, c.R, c.G)
	require.Equal(t, c.G, c.B)
}
