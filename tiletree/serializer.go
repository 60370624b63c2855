package tiletree

import (
	"encoding/binary"
	"fmt"

	"github.com/etca-codec/etca/pixel"
)

const noParentIndex = 0xFFFF

// headerSize is the fixed prefix of the wire format: W, H, N, max_depth.
const headerSize = 4 + 4 + 4 + 2

// Serialize encodes t into the compact dense-index byte format of
// spec §4.5. Tile i in the stream is the i-th tile of t.AllTiles().
func Serialize(t *Tree) ([]byte, error) {
	all := t.AllTiles()
	if len(all) > 65536 {
		return nil, fmt.Errorf("tiletree: tile count %d exceeds 65536", len(all))
	}
	maxDepth := t.MaxDepth()
	if maxDepth > 255 {
		return nil, fmt.Errorf("tiletree: max depth %d exceeds 255", maxDepth)
	}

	index := make(map[uint32]int, len(all))
	for i, tl := range all {
		index[tl.ID] = i
	}

	out := make([]byte, headerSize)
	binary.BigEndian.PutUint32(out[0:4], uint32(t.W))
	binary.BigEndian.PutUint32(out[4:8], uint32(t.H))
	binary.BigEndian.PutUint32(out[8:12], uint32(len(all)))
	binary.BigEndian.PutUint16(out[12:14], uint16(maxDepth))

	for i, tl := range all {
		var rec [9]byte
		binary.BigEndian.PutUint16(rec[0:2], uint16(i))
		rec[2] = byte(tl.Depth)

		parentIdx := uint16(noParentIndex)
		if tl.ParentID != 0 {
			parentIdx = uint16(index[tl.ParentID])
		}
		binary.BigEndian.PutUint16(rec[3:5], parentIdx)

		rec[5] = tl.Color.R
		rec[6] = tl.Color.G
		rec[7] = tl.Color.B
		rec[8] = byte(len(tl.Children))
		out = append(out, rec[:]...)

		for _, childID := range tl.Children {
			var cb [2]byte
			binary.BigEndian.PutUint16(cb[:], uint16(index[childID]))
			out = append(out, cb[:]...)
		}
	}

	return out, nil
}

// Deserialize decodes data produced by Serialize. If the encoded
// dimensions disagree with expectedW/expectedH, it returns an empty tree
// and no error — per spec §7, a dimension mismatch at this layer
// surfaces as a blank reconstruction, not a hard failure. If a tile
// record is cut short or references a non-existent tile, decoding stops
// and whatever was assembled so far is returned.
func Deserialize(data []byte, expectedW, expectedH int) *Tree {
	t := New(expectedW, expectedH)

	if len(data) < headerSize {
		return t
	}
	w := binary.BigEndian.Uint32(data[0:4])
	h := binary.BigEndian.Uint32(data[4:8])
	n := binary.BigEndian.Uint32(data[8:12])

	if int(w) != expectedW || int(h) != expectedH {
		return t
	}

	pos := data[headerSize:]

	for i := uint32(0); i < n; i++ {
		if len(pos) < 9 {
			break
		}
		selfIndex := binary.BigEndian.Uint16(pos[0:2])
		depth := pos[2]
		parentIndexRaw := binary.BigEndian.Uint16(pos[3:5])
		r, g, b := pos[5], pos[6], pos[7]
		childCount := pos[8]
		pos = pos[9:]

		if int(selfIndex) != int(i) {
			break
		}
		if childCount != 0 && childCount != 4 {
			break
		}
		if len(pos) < int(childCount)*2 {
			break
		}

		children := make([]uint32, 0, childCount)
		childTileIndices := make([]int, 0, childCount)
		for c := 0; c < int(childCount); c++ {
			childIdx := binary.BigEndian.Uint16(pos[c*2 : c*2+2])
			childTileIndices = append(childTileIndices, int(childIdx))
		}
		pos = pos[int(childCount)*2:]

		id := uint32(i) + 1
		var parentID uint32
		if parentIndexRaw != noParentIndex {
			parentIndex := int(parentIndexRaw)
			if parentIndex >= int(i) {
				// A child must be encoded after its parent — this can
				// only happen for corrupt input.
				break
			}
			parentID = uint32(parentIndex) + 1
		}

		ok := true
		for _, childIdx := range childTileIndices {
			if childIdx >= int(n) {
				// Forward/out-of-range child reference: stop at the
				// anomaly, keep what we have.
				ok = false
				break
			}
			children = append(children, uint32(childIdx)+1)
		}
		if !ok {
			break
		}

		t.InsertDeserialized(id, int(depth), parentID, pixel.Color{R: r, G: g, B: b}, children)
	}

	reconstructAddresses(t)
	return t
}

// reconstructAddresses walks every tile's parent chain, collecting the
// position of each ancestor among its own parent's children, then
// reverses the collected path — spec §4.5 step 3.
func reconstructAddresses(t *Tree) {
	for id, tile := range t.tiles {
		var segments []uint32
		cur := tile
		for cur.ParentID != 0 {
			parent := t.tiles[cur.ParentID]
			if parent == nil {
				break
			}
			pos := indexOf(parent.Children, cur.ID)
			if pos < 0 {
				break
			}
			segments = append(segments, uint32(pos))
			cur = parent
		}
		addr := make(Address, len(segments))
		for i, s := range segments {
			addr[len(segments)-1-i] = s
		}
		t.addresses[id] = addr
	}
}

func indexOf(s []uint32, v uint32) int {
	for i, x := range s {
		if x == v {
			return i
		}
	}
	return -1
}
