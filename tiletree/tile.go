package tiletree

import "github.com/etca-codec/etca/pixel"

// Tile is a node of the partition tree. IDs are dense non-zero integers
// assigned at creation; the root is always id 1.
type Tile struct {
	ID       uint32
	Depth    int
	ParentID uint32 // 0 iff this is the root
	Color    pixel.Color
	Children []uint32 // len 0 (leaf) or 4 (internal), in child-index order
}

// IsLeaf reports whether t has no children.
func (t *Tile) IsLeaf() bool {
	return len(t.Children) == 0
}
