package tiletree

import (
	"testing"

	"github.com/etca-codec/etca/pixel"
	"github.com/stretchr/testify/require"
)

func TestBuildUniformBufferIsSingleLeaf(t *testing.T) {
	buf := pixel.New(4, 4)
	buf.Fill(pixel.Color{R: 128, G: 128, B: 128})

	tree := New(4, 4)
	tree.Build(buf, 0.1, 4)

	leaves := tree.Leaves()
	require.Len(t, leaves, 1)
	require.Equal(t, pixel.Color{R: 128, G: 128, B: 128}, leaves[0].Color)
	require.Equal(t, 1, len(tree.AllTiles()))
	require.Equal(t, uint32(1), leaves[0].ID)
}

func TestBuildCheckerboardSubdividesToFourLeaves(t *testing.T) {
	buf := pixel.New(2, 2)
	buf.Set(0, 0, pixel.Color{R: 0, G: 0, B: 0})
	buf.Set(1, 0, pixel.Color{R: 255, G: 255, B: 255})
	buf.Set(0, 1, pixel.Color{R: 255, G: 255, B: 255})
	buf.Set(1, 1, pixel.Color{R: 0, G: 0, B: 0})

	tree := New(2, 2)
	tree.Build(buf, 0.1, 2)

	leaves := tree.Leaves()
	require.Len(t, leaves, 4)
	for _, l := range leaves {
		addr, ok := tree.Address(l.ID)
		require.True(t, ok)
		require.Len(t, addr, 1)
	}
}

func TestBuildZeroVarianceNeverSubdivides(t *testing.T) {
	buf := pixel.New(5, 5)
	buf.Fill(pixel.Color{R: 50, G: 100, B: 150})

	tree := New(5, 5)
	tree.Build(buf, 0, 3)

	require.Len(t, tree.Leaves(), 1)
}

func TestBuildPartitionIsExhaustiveAndDisjoint(t *testing.T) {
	buf := pixel.New(7, 5)
	for y := 0; y < 5; y++ {
		for x := 0; x < 7; x++ {
			buf.Set(x, y, pixel.Color{R: uint8((x * 37) ^ (y * 53))})
		}
	}

	tree := New(7, 5)
	tree.Build(buf, 0.01, 5)

	covered := make([][]bool, 5)
	for i := range covered {
		covered[i] = make([]bool, 7)
	}

	root := Rectangle{W: 7, H: 5}
	for _, leaf := range tree.Leaves() {
		addr, _ := tree.Address(leaf.ID)
		rect := RectangleForAddress(root, addr)
		for y := rect.Y; y < rect.Y+rect.H; y++ {
			for x := rect.X; x < rect.X+rect.W; x++ {
				require.False(t, covered[y][x], "pixel (%d,%d) covered by more than one leaf", x, y)
				covered[y][x] = true
			}
		}
	}

	for y := 0; y < 5; y++ {
		for x := 0; x < 7; x++ {
			require.True(t, covered[y][x], "pixel (%d,%d) not covered by any leaf", x, y)
		}
	}
}

func TestBuildEveryInternalTileHasFourChildren(t *testing.T) {
	buf := pixel.New(8, 8)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			buf.Set(x, y, pixel.Color{R: uint8(x * 31), G: uint8(y * 29)})
		}
	}

	tree := New(8, 8)
	tree.Build(buf, 0.01, 3)

	for _, tl := range tree.AllTiles() {
		if tl.IsLeaf() {
			require.Len(t, tl.Children, 0)
		} else {
			require.Len(t, tl.Children, 4)
		}
	}
}

func TestMonotoneThresholdNeverIncreasesLeaves(t *testing.T) {
	buf := pixel.New(8, 8)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			buf.Set(x, y, pixel.Color{R: uint8((x * 97) ^ (y * 61))})
		}
	}

	low := New(8, 8)
	low.Build(buf, 0.05, 4)
	high := New(8, 8)
	high.Build(buf, 0.3, 4)

	require.LessOrEqual(t, len(high.Leaves()), len(low.Leaves()))
}

func TestMonotoneDepthNeverDecreasesLeaves(t *testing.T) {
	buf := pixel.New(8, 8)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			buf.Set(x, y, pixel.Color{R: uint8((x * 97) ^ (y * 61))})
		}
	}

	shallow := New(8, 8)
	shallow.Build(buf, 0.01, 1)
	deep := New(8, 8)
	deep.Build(buf, 0.01, 4)

	require.GreaterOrEqual(t, len(deep.Leaves()), len(shallow.Leaves()))
}

func TestLeafColorMatchesMeanAtBuildTime(t *testing.T) {
	buf := pixel.New(2, 1)
	buf.Set(0, 0, pixel.Color{R: 10})
	buf.Set(1, 0, pixel.Color{R: 20})

	tree := New(2, 1)
	tree.Build(buf, 1.0, 0) // threshold 1.0 never triggers subdivision
	leaves := tree.Leaves()
	require.Len(t, leaves, 1)
	require.Equal(t, uint8(15), leaves[0].Color.R)
}
