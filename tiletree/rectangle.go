package tiletree

// Rectangle is a half-open region [X, X+W) x [Y, Y+H) over the image
// plane.
type Rectangle struct {
	X, Y, W, H uint32
}

// Partition maps a parent rectangle and a child index in {0,1,2,3} to the
// child's rectangle, per spec §4.3. The split is dyadic: any odd leftover
// pixel goes to the top/left half, and the four children exhaust the
// parent with no overlap.
//
//	0 | 1
//	--+--
//	2 | 3
func Partition(parent Rectangle, childIndex int) Rectangle {
	lw := ceilHalf(parent.W)
	rw := parent.W - lw
	th := ceilHalf(parent.H)
	bh := parent.H - th

	switch childIndex {
	case 0:
		return Rectangle{X: parent.X, Y: parent.Y, W: lw, H: th}
	case 1:
		return Rectangle{X: parent.X + lw, Y: parent.Y, W: rw, H: th}
	case 2:
		return Rectangle{X: parent.X, Y: parent.Y + th, W: lw, H: bh}
	case 3:
		return Rectangle{X: parent.X + lw, Y: parent.Y + th, W: rw, H: bh}
	default:
		panic("tiletree: child index out of range")
	}
}

func ceilHalf(v uint32) uint32 {
	return (v + 1) / 2
}

// RectangleForAddress walks root through Partition along addr's segments
// and returns the resulting rectangle. Used both by the builder (which
// already has rectangles from recursion) and by the decoder, which must
// recover a leaf's rectangle from its address alone (spec §4.8 step 3).
func RectangleForAddress(root Rectangle, addr Address) Rectangle {
	r := root
	for _, idx := range addr {
		r = Partition(r, int(idx))
	}
	return r
}
