package game

import (
	"slices"

	"github.com/memmaker/voxelroute/engine/path"
	"github.com/memmaker/voxelroute/engine/route"
	"github.com/memmaker/voxelroute/engine/voxel"
)

// MoveRange is the set of voxels a unit can reach from its position with a limited budget.
type MoveRange struct {
	start           voxel.Int3
	previousNodeMap map[voxel.Int3]voxel.Int3
	distanceMap     map[voxel.Int3]float64
	validTargets    []voxel.Int3
}

// MovementRange runs Dijkstra over the section graph. Step costs are the distances between
// block centers, so a diagonal climb costs more than a flat step.
func MovementRange(sections *route.MapSections, start voxel.Int3, maxCost float64) *MoveRange {
	m := &MoveRange{
		start:           start,
		previousNodeMap: make(map[voxel.Int3]voxel.Int3),
		distanceMap:     make(map[voxel.Int3]float64),
	}
	if sections.Route(start) == nil {
		return m
	}
	dist, prevNodeMap := path.Dijkstra[voxel.Int3](start, maxCost, NewPather(sections))
	for node, distance := range dist {
		if node == start {
			continue
		}
		m.validTargets = append(m.validTargets, node)
		m.distanceMap[node] = distance
	}
	for node, prevNode := range prevNodeMap {
		m.previousNodeMap[node] = prevNode
	}
	slices.SortFunc(m.validTargets, func(a, b voxel.Int3) int {
		switch {
		case a.Less(b):
			return -1
		case b.Less(a):
			return 1
		}
		return 0
	})
	return m
}

func (m *MoveRange) Start() voxel.Int3 {
	return m.start
}

func (m *MoveRange) IsValidTarget(target voxel.Int3) bool {
	_, ok := m.distanceMap[target]
	return ok
}

// GetValidTargets lists the reachable voxels without the start, ordered by z, y, x.
func (m *MoveRange) GetValidTargets() []voxel.Int3 {
	return m.validTargets
}

func (m *MoveRange) GetCost(target voxel.Int3) float64 {
	return m.distanceMap[target]
}

// PathTo returns the cheapest path from the start to target, both inclusive, or nil if target is out of range.
func (m *MoveRange) PathTo(target voxel.Int3) []voxel.Int3 {
	if target != m.start && !m.IsValidTarget(target) {
		return nil
	}
	return path.PathFromPredecessors(m.previousNodeMap, m.start, target)
}
