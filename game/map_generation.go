package game

import (
	"fmt"

	"github.com/memmaker/voxelroute/engine/util"
	"github.com/memmaker/voxelroute/engine/voxel"
	"github.com/ojrac/opensimplex-go"
)

// GenerateHills builds a rolling height field of cubes. Where a column is exactly one block lower
// than a neighbor column, a ramp rising towards that neighbor is put on top of it.
func GenerateHills(seed int64, width, depth, height int32) *voxel.Grid {
	noise := opensimplex.NewNormalized(seed)
	m := voxel.NewGrid(width, depth, height)
	maxHeight := height - 1
	heights := make([]int32, width*depth)
	for x := int32(0); x < width; x++ {
		for y := int32(0); y < depth; y++ {
			blockHeight := 1 + int32(noise.Eval2(float64(x)/16.0, float64(y)/16.0)*float64(maxHeight))
			if blockHeight > maxHeight {
				blockHeight = maxHeight
			}
			heights[y*width+x] = blockHeight
			for z := int32(0); z < blockHeight; z++ {
				m.SetCube(voxel.Int3{X: x, Y: y, Z: z})
			}
		}
	}
	columnHeight := func(x, y int32) int32 {
		if x < 0 || y < 0 || x >= width || y >= depth {
			return -1
		}
		return heights[y*width+x]
	}
	ramps := 0
	for x := int32(0); x < width; x++ {
		for y := int32(0); y < depth; y++ {
			h := columnHeight(x, y)
			for _, candidate := range rampCandidates {
				if columnHeight(x+candidate.dx, y+candidate.dy) == h+1 {
					m.SetSlant(voxel.Int3{X: x, Y: y, Z: h}, candidate.orientation)
					ramps++
					break
				}
			}
		}
	}
	util.LogGameInfo(fmt.Sprintf("[Generator] Generated %d x %d x %d hills with %d ramps (seed %d)", width, depth, height, ramps, seed))
	return m
}

var rampCandidates = []struct {
	dx, dy      int32
	orientation byte
}{
	{1, 0, voxel.SlantRisingXP},
	{0, 1, voxel.SlantRisingYP},
	{-1, 0, voxel.SlantRisingXN},
	{0, -1, voxel.SlantRisingYN},
}
