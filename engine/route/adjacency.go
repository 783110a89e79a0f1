package route

import "github.com/memmaker/voxelroute/engine/voxel"

// neighborRule is one candidate step: the offset from the source and the slant orientation
// the target must have to be entered that way.
type neighborRule struct {
	offset      voxel.Int3
	orientation byte
}

// Steps from a flat block (cube, or slant with orientation >= 4) onto a neighbor on the same level.
// A slant neighbor has to face down towards the source.
var flatSameLevelRules = []neighborRule{
	{offset: voxel.Int3{X: -1}, orientation: voxel.SlantRisingXN},
	{offset: voxel.Int3{X: 1}, orientation: voxel.SlantRisingXP},
	{offset: voxel.Int3{Y: -1}, orientation: voxel.SlantRisingYN},
	{offset: voxel.Int3{Y: 1}, orientation: voxel.SlantRisingYP},
}

// Steps from a flat block up onto a slant one level higher.
var flatClimbRules = []neighborRule{
	{offset: voxel.Int3{X: -1, Z: 1}, orientation: voxel.SlantRisingXP},
	{offset: voxel.Int3{X: 1, Z: 1}, orientation: voxel.SlantRisingXN},
	{offset: voxel.Int3{Y: -1, Z: 1}, orientation: voxel.SlantRisingYP},
	{offset: voxel.Int3{Y: 1, Z: 1}, orientation: voxel.SlantRisingYN},
}

// Sideways steps across a ramp, indexed by ramp orientation.
var rampAcrossOffsets = [4][2]voxel.Int3{
	voxel.SlantRisingXP: {{Y: -1}, {Y: 1}},
	voxel.SlantRisingYP: {{X: -1}, {X: 1}},
	voxel.SlantRisingXN: {{Y: -1}, {Y: 1}},
	voxel.SlantRisingYN: {{X: -1}, {X: 1}},
}

// Steps off the low end of a ramp, indexed by ramp orientation: same level and one level down.
var rampDownhillOffsets = [4][2]voxel.Int3{
	voxel.SlantRisingXP: {{X: -1}, {X: -1, Z: -1}},
	voxel.SlantRisingYP: {{Y: -1}, {Y: -1, Z: -1}},
	voxel.SlantRisingXN: {{X: 1}, {X: 1, Z: -1}},
	voxel.SlantRisingYN: {{Y: 1}, {Y: 1, Z: -1}},
}

// IsMinimallyAccessible reports whether a unit could stand on pos: the cell is inside the grid
// and the cell above it is either air or outside of the grid.
func IsMinimallyAccessible(grid *voxel.Grid, pos voxel.Int3) bool {
	if !grid.ContainsGrid(pos) {
		return false
	}
	above := pos.Above()
	return !grid.ContainsGrid(above) || grid.BlockAt(above) == voxel.AIR
}

// IsRamp reports whether the block at pos is a slant with one of the four ramp orientations.
func IsRamp(grid *voxel.Grid, pos voxel.Int3) bool {
	return grid.BlockAt(pos) == voxel.SLANT && grid.OrientationAt(pos) < voxel.SlantFlatThreshold
}

// FindNeighbors returns every cell that can be reached from pos in a single step.
// Air, covered and out of bounds cells have no neighbors and are never returned as neighbors.
func FindNeighbors(grid *voxel.Grid, pos voxel.Int3) []voxel.Int3 {
	if !IsMinimallyAccessible(grid, pos) {
		return nil
	}
	switch grid.BlockAt(pos) {
	case voxel.CUBE:
		return flatNeighbors(grid, pos)
	case voxel.SLANT:
		orientation := grid.OrientationAt(pos)
		if orientation >= voxel.SlantFlatThreshold {
			return flatNeighbors(grid, pos)
		}
		return rampNeighbors(grid, pos, orientation)
	}
	return nil
}

func flatNeighbors(grid *voxel.Grid, pos voxel.Int3) []voxel.Int3 {
	neighbors := make([]voxel.Int3, 0, 4)
	for _, rule := range flatSameLevelRules {
		candidate := pos.Add(rule.offset)
		if !IsMinimallyAccessible(grid, candidate) {
			continue
		}
		if grid.BlockAt(candidate) == voxel.CUBE || isSlantWithOrientation(grid, candidate, rule.orientation) {
			neighbors = append(neighbors, candidate)
		}
	}
	for _, rule := range flatClimbRules {
		candidate := pos.Add(rule.offset)
		if IsMinimallyAccessible(grid, candidate) && isSlantWithOrientation(grid, candidate, rule.orientation) {
			neighbors = append(neighbors, candidate)
		}
	}
	return neighbors
}

func rampNeighbors(grid *voxel.Grid, pos voxel.Int3, orientation byte) []voxel.Int3 {
	neighbors := make([]voxel.Int3, 0, 4)
	for _, offset := range rampAcrossOffsets[orientation] {
		candidate := pos.Add(offset)
		if IsMinimallyAccessible(grid, candidate) && isSlantWithOrientation(grid, candidate, orientation) {
			neighbors = append(neighbors, candidate)
		}
	}
	for _, offset := range rampDownhillOffsets[orientation] {
		candidate := pos.Add(offset)
		if !IsMinimallyAccessible(grid, candidate) {
			continue
		}
		if grid.BlockAt(candidate) == voxel.CUBE || isSlantWithOrientation(grid, candidate, orientation) {
			neighbors = append(neighbors, candidate)
		}
	}
	return neighbors
}

func isSlantWithOrientation(grid *voxel.Grid, pos voxel.Int3, orientation byte) bool {
	return grid.BlockAt(pos) == voxel.SLANT && grid.OrientationAt(pos) == orientation
}
