package game

import (
	"github.com/memmaker/voxelroute/engine/route"
	"github.com/memmaker/voxelroute/engine/util"
	"github.com/memmaker/voxelroute/engine/voxel"
)

// VoxelPather exposes the section graph as a weighted graph for path.Dijkstra.
type VoxelPather struct {
	sections *route.MapSections
}

func (v *VoxelPather) GetNeighbors(node voxel.Int3) []voxel.Int3 {
	return v.sections.GetNeighbors(node)
}

func (v *VoxelPather) GetCost(currentNode, neighbor voxel.Int3) float64 {
	return util.EucledianDistance3D(currentNode.ToBlockCenterVec3D(), neighbor.ToBlockCenterVec3D())
}

func NewPather(sections *route.MapSections) *VoxelPather {
	return &VoxelPather{sections: sections}
}
