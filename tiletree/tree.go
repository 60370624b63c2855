package tiletree

import (
	"github.com/etca-codec/etca/pixel"
)

// Tree owns every tile of a built or deserialized partition, keyed by id,
// plus each tile's address. The id allocator is scoped to the Tree
// instance rather than a package-level counter, so two Trees built
// concurrently never alias ids.
type Tree struct {
	W, H int

	tiles     map[uint32]*Tile
	addresses map[uint32]Address
	order     []uint32 // enumeration order; defines the dense tile-index used by the serializer
	nextID    uint32
	rootID    uint32
}

// New returns an empty tree for an image of the given dimensions.
func New(w, h int) *Tree {
	return &Tree{
		W:         w,
		H:         h,
		tiles:     make(map[uint32]*Tile),
		addresses: make(map[uint32]Address),
	}
}

func (t *Tree) allocID() uint32 {
	t.nextID++
	return t.nextID
}

// Dimensions returns the image width and height the tree was built for.
func (t *Tree) Dimensions() (w, h int) {
	return t.W, t.H
}

// Tile returns the tile with the given id, or nil if none exists.
func (t *Tree) Tile(id uint32) *Tile {
	return t.tiles[id]
}

// Address returns the address of the tile with the given id.
func (t *Tree) Address(id uint32) (Address, bool) {
	a, ok := t.addresses[id]
	return a, ok
}

// SetAddress records the address of the tile with the given id.
func (t *Tree) SetAddress(id uint32, addr Address) {
	t.addresses[id] = addr
}

// AllTiles returns every tile in the tree's enumeration order — the order
// established when tiles were created (build) or inserted (deserialize).
// spec §9 leaves the exact order implementation-defined as long as it is
// internally consistent across one encode, which depth-first creation
// order satisfies for free.
func (t *Tree) AllTiles() []*Tile {
	out := make([]*Tile, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, t.tiles[id])
	}
	return out
}

// Leaves returns every leaf tile, in enumeration order.
func (t *Tree) Leaves() []*Tile {
	all := t.AllTiles()
	out := make([]*Tile, 0, len(all))
	for _, tl := range all {
		if tl.IsLeaf() {
			out = append(out, tl)
		}
	}
	return out
}

// MaxDepth returns the deepest tile's depth, or 0 for an empty tree.
func (t *Tree) MaxDepth() int {
	max := 0
	for _, tl := range t.tiles {
		if tl.Depth > max {
			max = tl.Depth
		}
	}
	return max
}

// TileByAddress walks from the root following addr and returns the tile
// found there, or nil if addr does not correspond to any tile.
func (t *Tree) TileByAddress(addr Address) *Tile {
	cur := t.tiles[t.rootID]
	if cur == nil {
		return nil
	}
	for _, idx := range addr {
		if int(idx) >= len(cur.Children) {
			return nil
		}
		cur = t.tiles[cur.Children[idx]]
		if cur == nil {
			return nil
		}
	}
	return cur
}

// Build constructs the tree for pixels, whose dimensions must equal the
// tree's (W, H). It is deterministic: the same pixels, threshold and
// maxDepth always produce the same tree.
func (t *Tree) Build(pixels *pixel.Buffer, varianceThreshold float64, maxDepth int) {
	t.tiles = make(map[uint32]*Tile)
	t.addresses = make(map[uint32]Address)
	t.order = nil
	t.nextID = 0

	t.rootID = t.buildNode(pixels, 0, 0, Address{}, varianceThreshold, maxDepth)
}

// buildNode creates one tile from view (the pixel sub-buffer for this
// node's rectangle), recursing through C3 when the node subdivides, per
// spec §4.4's depth-first algorithm.
func (t *Tree) buildNode(view *pixel.Buffer, depth int, parentID uint32, addr Address, threshold float64, maxDepth int) uint32 {
	id := t.allocID()
	tile := &Tile{
		ID:       id,
		Depth:    depth,
		ParentID: parentID,
		Color:    view.Mean(),
	}
	t.tiles[id] = tile
	t.addresses[id] = addr
	t.order = append(t.order, id)

	if depth >= maxDepth || !ShouldSubdivide(view, threshold) {
		return id
	}

	rect := Rectangle{W: uint32(view.W), H: uint32(view.H)}
	tile.Children = make([]uint32, 4)
	for i := 0; i < 4; i++ {
		childRect := Partition(rect, i)
		childView := view.Extract(int(childRect.X), int(childRect.Y), int(childRect.W), int(childRect.H))
		childAddr := addr.Child(uint32(i))
		tile.Children[i] = t.buildNode(childView, depth+1, id, childAddr, threshold, maxDepth)
	}

	return id
}

// InsertDeserialized bulk-inserts a tile during decode, preserving the
// caller's enumeration order (the serializer's dense tile-index order).
func (t *Tree) InsertDeserialized(id uint32, depth int, parentID uint32, color pixel.Color, children []uint32) {
	if t.tiles == nil {
		t.tiles = make(map[uint32]*Tile)
	}
	if t.addresses == nil {
		t.addresses = make(map[uint32]Address)
	}
	t.tiles[id] = &Tile{
		ID:       id,
		Depth:    depth,
		ParentID: parentID,
		Color:    color,
		Children: children,
	}
	t.order = append(t.order, id)
	if parentID == 0 {
		t.rootID = id
	}
	if id > t.nextID {
		t.nextID = id
	}
}

// RootID returns the id of the root tile, or 0 if the tree is empty.
func (t *Tree) RootID() uint32 {
	return t.rootID
}
