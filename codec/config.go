// Package codec provides the C9/C10 Compressor/Decompressor façades: the
// single-call entry points that chain the tile tree builder, serializer,
// and adaptive entropy selector into one compress/decompress operation.
package codec

// Config selects how the tree is built and, on decode, whether the
// reconstruction gets a smoothing pass. Default and Lossless return the
// two named presets; every field is exported and can also be set on its
// own.
type Config struct {
	VarianceThreshold  float64
	MaxDepth           int
	PreferSpeed        bool
	ApplyInterpolation bool
}

// Default returns the lossy preset of spec §6.2: variance_threshold 10.0
// in natural [0,255] units (normalized to threshold/255 below), max_depth
// 12.
func Default() Config {
	return Config{
		VarianceThreshold: 10.0 / 255,
		MaxDepth:          12,
	}
}

// Lossless returns the preset of spec §6.2. It is not mathematically
// lossless for arbitrary images (spec §9) — the name is historical, not
// a guarantee.
func Lossless() Config {
	return Config{
		VarianceThreshold:  0.001,
		MaxDepth:           24,
		ApplyInterpolation: false,
	}
}
