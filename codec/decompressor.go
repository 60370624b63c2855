package codec

import (
	"github.com/etca-codec/etca/entropy"
	"github.com/etca-codec/etca/pixel"
	"github.com/etca-codec/etca/tiletree"
)

// Decompressor is C10.
type Decompressor struct {
	cfg       Config
	lastStats Stats
}

// NewDecompressor returns a Decompressor using cfg.
func NewDecompressor(cfg Config) *Decompressor {
	return &Decompressor{cfg: cfg}
}

// Decompress runs spec §4.8's decompression pipeline: entropy-decode (or,
// for the legacy lenient branch, pass the bytes through untouched),
// deserialize the tree, rasterize every leaf, and optionally smooth.
func (d *Decompressor) Decompress(img CompressedImage) *pixel.Buffer {
	serialized := img.Bytes
	chosen := entropy.TagNone

	if len(img.Bytes) > 0 {
		if c := entropy.ByTag(entropy.Tag(img.Bytes[0])); c != nil {
			serialized = c.Decode(img.Bytes)
			chosen = c.Tag()
		}
	}

	tree := tiletree.Deserialize(serialized, img.W, img.H)

	out := pixel.New(img.W, img.H)
	root := tiletree.Rectangle{W: uint32(img.W), H: uint32(img.H)}
	for _, leaf := range tree.Leaves() {
		addr, _ := tree.Address(leaf.ID)
		rect := tiletree.RectangleForAddress(root, addr)
		fillRect(out, rect, leaf.Color)
	}

	if d.cfg.ApplyInterpolation {
		out = smooth3x3(out)
	}

	d.lastStats = statsFrom(len(serialized), img.Bytes, chosen)

	return out
}

// Stats returns the statistics populated by the most recent Decompress
// call.
func (d *Decompressor) Stats() Stats {
	return d.lastStats
}

func fillRect(buf *pixel.Buffer, r tiletree.Rectangle, c pixel.Color) {
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			buf.Set(int(x), int(y), c)
		}
	}
}

// smooth3x3 applies the 3x3 smoothing pass of spec §4.8 step 5: center
// weight 0.5, each present neighbor weight 0.5/8, renormalized by the sum
// of weights actually present at edges and corners.
func smooth3x3(src *pixel.Buffer) *pixel.Buffer {
	out := pixel.New(src.W, src.H)
	const centerWeight = 0.5
	const neighborWeight = 0.5 / 8

	for y := 0; y < src.H; y++ {
		for x := 0; x < src.W; x++ {
			var sumR, sumG, sumB, sumW float64

			center := src.Get(x, y)
			sumR += float64(center.R) * centerWeight
			sumG += float64(center.G) * centerWeight
			sumB += float64(center.B) * centerWeight
			sumW += centerWeight

			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nx, ny := x+dx, y+dy
					if nx < 0 || ny < 0 || nx >= src.W || ny >= src.H {
						continue
					}
					p := src.Get(nx, ny)
					sumR += float64(p.R) * neighborWeight
					sumG += float64(p.G) * neighborWeight
					sumB += float64(p.B) * neighborWeight
					sumW += neighborWeight
				}
			}

			out.Set(x, y, pixel.Color{
				R: uint8(sumR / sumW),
				G: uint8(sumG / sumW),
				B: uint8(sumB / sumW),
			})
		}
	}

	return out
}
