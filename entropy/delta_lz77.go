package entropy

// deltaLZ77Codec runs a byte-wise delta filter ahead of the LZ77 coder,
// per spec §4.6. It is grounded on the original AdvancedCodec's
// delta_encode/delta_decode pairing with its own LZ77-equivalent
// (original_source/SRC/include/entropy_coding.h), adapted to close over
// this package's lz77Codec instead of a Huffman-backed deflate stage.
type deltaLZ77Codec struct{}

func (deltaLZ77Codec) Tag() Tag { return TagDeltaLZ }

func (deltaLZ77Codec) Encode(input []byte) []byte {
	delta := deltaEncode(input)
	encoded := lz77Codec{}.Encode(delta)
	encoded[0] = byte(TagDeltaLZ)
	return encoded
}

func (deltaLZ77Codec) Decode(input []byte) []byte {
	if len(input) == 0 {
		return nil
	}
	relabeled := append([]byte{byte(TagLZ77)}, input[1:]...)
	delta := lz77Codec{}.Decode(relabeled)
	return deltaDecode(delta)
}

func deltaEncode(input []byte) []byte {
	if len(input) == 0 {
		return nil
	}
	out := make([]byte, len(input))
	out[0] = input[0]
	for i := 1; i < len(input); i++ {
		out[i] = input[i] - input[i-1]
	}
	return out
}

func deltaDecode(delta []byte) []byte {
	if len(delta) == 0 {
		return nil
	}
	out := make([]byte, len(delta))
	out[0] = delta[0]
	for i := 1; i < len(delta); i++ {
		out[i] = out[i-1] + delta[i]
	}
	return out
}
