package game

import (
	"github.com/memmaker/voxelroute/engine/route"
	"github.com/memmaker/voxelroute/engine/voxel"
)

func v(x, y, z int32) voxel.Int3 {
	return voxel.Int3{X: x, Y: y, Z: z}
}

func platform(xSize, ySize int32) *voxel.Grid {
	grid := voxel.NewGrid(xSize, ySize, 1)
	grid.FillLayer(0, voxel.CUBE, 0)
	return grid
}

func partition(grid *voxel.Grid) *route.MapSections {
	sections := route.NewMapSections()
	sections.Recompute(grid)
	return sections
}
