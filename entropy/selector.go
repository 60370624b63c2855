package entropy

// EncodeStats records which codec the adaptive selector picked and how
// the candidates compared.
type EncodeStats struct {
	Chosen       Tag
	InputLen     int
	OutputLen    int
	CandidateLen map[Tag]int
}

// AdaptiveEncoder implements C8: it always tries RLE, optionally also
// tries LZ77 and DELTA+LZ77, and keeps whichever candidate is smallest,
// breaking ties toward the lowest tag number (spec §4.7).
type AdaptiveEncoder struct {
	Stats EncodeStats
}

// Encode picks the smallest of the candidate encodings. RLE always runs;
// when preferSpeed is unset, LZ77 and DELTA+LZ77 also run and compete.
// NONE is never a run candidate — it exists only as a decode target for
// streams this selector did not produce (spec §4.7 lists exactly RLE,
// LZ77, DELTA+LZ77 as the candidates it runs and compares).
func (a *AdaptiveEncoder) Encode(input []byte, preferSpeed bool) []byte {
	candidates := []Codec{rleCodec{}}
	if !preferSpeed {
		candidates = append(candidates, lz77Codec{}, deltaLZ77Codec{})
	}

	best := candidates[0].Encode(input)
	bestTag := candidates[0].Tag()

	lens := map[Tag]int{bestTag: len(best)}
	for _, c := range candidates[1:] {
		out := c.Encode(input)
		lens[c.Tag()] = len(out)
		if len(out) < len(best) {
			best = out
			bestTag = c.Tag()
		}
	}

	a.Stats = EncodeStats{
		Chosen:       bestTag,
		InputLen:     len(input),
		OutputLen:    len(best),
		CandidateLen: lens,
	}
	return best
}

// Decode dispatches on the leading tag byte. An input with an unrecognized
// tag (or no tag at all) is treated as an implicit NONE stream per spec
// §4.7 — strip the leading byte, if any, and return the remainder.
func Decode(input []byte) []byte {
	if len(input) == 0 {
		return nil
	}
	if c := ByTag(Tag(input[0])); c != nil {
		return c.Decode(input)
	}
	return append([]byte(nil), input[1:]...)
}
