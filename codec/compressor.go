package codec

import (
	"github.com/etca-codec/etca/entropy"
	"github.com/etca-codec/etca/pixel"
	"github.com/etca-codec/etca/tiletree"
)

// CompressedImage is the output of a Compressor call: a self-contained
// entropy-encoded payload plus the dimensions needed to deserialize it,
// per spec §4.8.
type CompressedImage struct {
	W, H  int
	Bytes []byte
}

// Compressor is C9. It is stateless between calls except for the last
// call's Stats, exposed read-only through a scratch-free, single-call
// shape.
type Compressor struct {
	cfg       Config
	lastStats Stats
}

// NewCompressor returns a Compressor using cfg.
func NewCompressor(cfg Config) *Compressor {
	return &Compressor{cfg: cfg}
}

// Compress builds the tile tree from pixels, serializes it, and
// adaptive-encodes the result (spec §4.8's compression pipeline).
func (c *Compressor) Compress(pixels *pixel.Buffer) (CompressedImage, error) {
	tree := tiletree.New(pixels.W, pixels.H)
	tree.Build(pixels, c.cfg.VarianceThreshold, c.cfg.MaxDepth)

	serialized, err := tiletree.Serialize(tree)
	if err != nil {
		return CompressedImage{}, err
	}

	enc := &entropy.AdaptiveEncoder{}
	encoded := enc.Encode(serialized, c.cfg.PreferSpeed)

	c.lastStats = statsFrom(len(serialized), encoded, enc.Stats.Chosen)

	return CompressedImage{W: pixels.W, H: pixels.H, Bytes: encoded}, nil
}

// Stats returns the statistics populated by the most recent Compress
// call.
func (c *Compressor) Stats() Stats {
	return c.lastStats
}
