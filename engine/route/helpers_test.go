package route

import "github.com/memmaker/voxelroute/engine/voxel"

// platform returns a grid whose bottom layer is made of cubes.
func platform(xSize, ySize, zSize int32) *voxel.Grid {
	grid := voxel.NewGrid(xSize, ySize, zSize)
	grid.FillLayer(0, voxel.CUBE, 0)
	return grid
}

func v(x, y, z int32) voxel.Int3 {
	return voxel.Int3{X: x, Y: y, Z: z}
}

func partition(grid *voxel.Grid) *MapSections {
	sections := NewMapSections()
	sections.Recompute(grid)
	return sections
}
