// Package imageio bridges a standard library image.Image to and from the
// C1 pixel buffer: direct Pix-slice access for the concrete types the
// stdlib actually produces, with img.At as the fallback for everything
// else. It does no format sniffing or multi-format decode — that stays
// out of scope per spec §1.
package imageio

import (
	"image"
	"image/color"

	"github.com/etca-codec/etca/pixel"
)

// ToPixelBuffer copies img into a new pixel.Buffer.
func ToPixelBuffer(img image.Image) *pixel.Buffer {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	buf := pixel.New(w, h)

	switch src := img.(type) {
	case *image.RGBA:
		copyFromRGBA(buf, src, bounds)
	case *image.NRGBA:
		copyFromNRGBA(buf, src, bounds)
	default:
		copyFromAt(buf, img, bounds)
	}

	return buf
}

func copyFromRGBA(dst *pixel.Buffer, src *image.RGBA, bounds image.Rectangle) {
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		rowOff := src.PixOffset(bounds.Min.X, y)
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			i := rowOff + (x-bounds.Min.X)*4
			dst.Set(x-bounds.Min.X, y-bounds.Min.Y, pixel.Color{R: src.Pix[i], G: src.Pix[i+1], B: src.Pix[i+2]})
		}
	}
}

func copyFromNRGBA(dst *pixel.Buffer, src *image.NRGBA, bounds image.Rectangle) {
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		rowOff := src.PixOffset(bounds.Min.X, y)
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			i := rowOff + (x-bounds.Min.X)*4
			dst.Set(x-bounds.Min.X, y-bounds.Min.Y, pixel.Color{R: src.Pix[i], G: src.Pix[i+1], B: src.Pix[i+2]})
		}
	}
}

func copyFromAt(dst *pixel.Buffer, src image.Image, bounds image.Rectangle) {
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := src.At(x, y).RGBA()
			dst.Set(x-bounds.Min.X, y-bounds.Min.Y, pixel.Color{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)})
		}
	}
}

// FromPixelBuffer builds a fresh *image.RGBA from buf.
func FromPixelBuffer(buf *pixel.Buffer) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, buf.W, buf.H))
	for y := 0; y < buf.H; y++ {
		for x := 0; x < buf.W; x++ {
			c := buf.Get(x, y)
			img.SetRGBA(x, y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF})
		}
	}
	return img
}
