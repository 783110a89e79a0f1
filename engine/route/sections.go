package route

import (
	"fmt"
	"time"

	"github.com/memmaker/voxelroute/engine/util"
	"github.com/memmaker/voxelroute/engine/voxel"
)

// VoxelRoute is the routing record of a single traversable voxel.
type VoxelRoute struct {
	ID        voxel.Int3
	Neighbors []voxel.Int3
	Section   int
}

// MapSections partitions the traversable voxels of a grid into connected sections.
// Two voxels with different section ids can never reach each other, which lets the router
// reject a request without searching.
type MapSections struct {
	routes       map[voxel.Int3]*VoxelRoute
	sectionCount int
	dirty        bool
}

// NewMapSections returns an empty partition that is marked dirty.
func NewMapSections() *MapSections {
	return &MapSections{
		routes: make(map[voxel.Int3]*VoxelRoute),
		dirty:  true,
	}
}

// MarkDirty flags the partition as stale, the grid it was built from has changed.
func (m *MapSections) MarkDirty() {
	m.dirty = true
}

func (m *MapSections) IsDirty() bool {
	return m.dirty
}

// RecomputeIfDirty rebuilds the partition only if it has been marked dirty.
// It reports whether a rebuild happened.
func (m *MapSections) RecomputeIfDirty(grid *voxel.Grid) bool {
	if !m.dirty {
		return false
	}
	m.Recompute(grid)
	return true
}

// Recompute throws away all records and partitions the whole grid again.
// Cells are visited z first, then y, then x; every unvisited accessible cell seeds a
// breadth-first traversal that claims one section.
func (m *MapSections) Recompute(grid *voxel.Grid) {
	startTime := time.Now()
	m.routes = make(map[voxel.Int3]*VoxelRoute)
	m.sectionCount = 0
	xSize, ySize, zSize := grid.Size()
	for z := int32(0); z < zSize; z++ {
		for y := int32(0); y < ySize; y++ {
			for x := int32(0); x < xSize; x++ {
				pos := voxel.Int3{X: x, Y: y, Z: z}
				if grid.IsAir(pos) {
					continue
				}
				if _, known := m.routes[pos]; known {
					continue
				}
				if !IsMinimallyAccessible(grid, pos) {
					continue
				}
				m.claimSection(grid, pos, m.sectionCount)
				m.sectionCount++
			}
		}
	}
	m.dirty = false
	util.LogRouteInfo(fmt.Sprintf("[MapSections] Partitioned %d voxels into %d sections in %s", len(m.routes), m.sectionCount, time.Since(startTime)))
}

func (m *MapSections) claimSection(grid *voxel.Grid, seed voxel.Int3, section int) {
	queued := map[voxel.Int3]bool{seed: true}
	frontier := []voxel.Int3{seed}
	for len(frontier) > 0 {
		current := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]
		if _, known := m.routes[current]; known {
			continue
		}
		neighbors := FindNeighbors(grid, current)
		m.routes[current] = &VoxelRoute{
			ID:        current,
			Neighbors: neighbors,
			Section:   section,
		}
		for _, neighbor := range neighbors {
			if _, known := m.routes[neighbor]; known || queued[neighbor] {
				continue
			}
			queued[neighbor] = true
			frontier = append(frontier, neighbor)
		}
	}
}

// Route returns the record of a voxel, or nil if the voxel is not traversable.
func (m *MapSections) Route(id voxel.Int3) *VoxelRoute {
	return m.routes[id]
}

// SectionOf returns the section id of a voxel and whether the voxel is traversable at all.
func (m *MapSections) SectionOf(id voxel.Int3) (int, bool) {
	route, ok := m.routes[id]
	if !ok {
		return -1, false
	}
	return route.Section, true
}

func (m *MapSections) SectionCount() int {
	return m.sectionCount
}

// Len is the number of traversable voxels.
func (m *MapSections) Len() int {
	return len(m.routes)
}

// GetNeighbors returns the precomputed neighbors of a voxel.
func (m *MapSections) GetNeighbors(node voxel.Int3) []voxel.Int3 {
	if route, ok := m.routes[node]; ok {
		return route.Neighbors
	}
	return nil
}
