package codec

import "github.com/etca-codec/etca/entropy"

// Stats is C13: the per-call bookkeeping a Compressor/Decompressor
// exposes read-only after its most recent call, mirroring the original
// implementation's CompressionStats.
type Stats struct {
	OriginalSize   int
	CompressedSize int
	Ratio          float64
	Codec          entropy.Tag
}

func statsFrom(originalSize int, encoded []byte, chosen entropy.Tag) Stats {
	s := Stats{
		OriginalSize:   originalSize,
		CompressedSize: len(encoded),
		Codec:          chosen,
	}
	if s.CompressedSize != 0 {
		s.Ratio = float64(s.OriginalSize) / float64(s.CompressedSize)
	}
	return s
}
