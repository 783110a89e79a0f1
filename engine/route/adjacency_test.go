package route

import (
	"testing"

	"github.com/memmaker/voxelroute/engine/voxel"
	"github.com/stretchr/testify/assert"
)

func TestFlatNeighbors(t *testing.T) {
	grid := platform(3, 3, 1)
	assert.ElementsMatch(t, []voxel.Int3{v(0, 1, 0), v(2, 1, 0), v(1, 0, 0), v(1, 2, 0)}, FindNeighbors(grid, v(1, 1, 0)))
	assert.ElementsMatch(t, []voxel.Int3{v(1, 0, 0), v(0, 1, 0)}, FindNeighbors(grid, v(0, 0, 0)))
}

func TestMinimallyAccessible(t *testing.T) {
	grid := voxel.NewGrid(1, 1, 2)
	grid.SetCube(v(0, 0, 0))
	grid.SetCube(v(0, 0, 1))

	assert.False(t, IsMinimallyAccessible(grid, v(0, 0, 0)), "covered cube")
	assert.True(t, IsMinimallyAccessible(grid, v(0, 0, 1)), "top layer is open to the sky")
	assert.False(t, IsMinimallyAccessible(grid, v(0, 0, 2)))
	assert.False(t, IsMinimallyAccessible(grid, v(-1, 0, 0)))
	assert.Empty(t, FindNeighbors(grid, v(0, 0, 0)))
}

func TestAirAndOutOfBoundsAreNeverNeighbors(t *testing.T) {
	grid := voxel.NewGrid(3, 1, 1)
	grid.SetCube(v(0, 0, 0))
	grid.SetCube(v(2, 0, 0))

	assert.Empty(t, FindNeighbors(grid, v(0, 0, 0)))
	assert.Empty(t, FindNeighbors(grid, v(1, 0, 0)), "air has no neighbors")
	assert.Empty(t, FindNeighbors(grid, v(5, 0, 0)))
}

func TestSlantOnSameLevelIsTwoWay(t *testing.T) {
	grid := voxel.NewGrid(2, 1, 2)
	grid.SetCube(v(0, 0, 0))
	grid.SetSlant(v(1, 0, 0), voxel.SlantRisingXP)

	assert.Equal(t, []voxel.Int3{v(1, 0, 0)}, FindNeighbors(grid, v(0, 0, 0)))
	assert.Equal(t, []voxel.Int3{v(0, 0, 0)}, FindNeighbors(grid, v(1, 0, 0)))
}

func TestSlantDescentIsOneWay(t *testing.T) {
	grid := voxel.NewGrid(2, 1, 2)
	grid.SetCube(v(0, 0, 0))
	grid.SetSlant(v(1, 0, 1), voxel.SlantRisingXP)

	assert.Equal(t, []voxel.Int3{v(0, 0, 0)}, FindNeighbors(grid, v(1, 0, 1)), "step down off the low end of the ramp")
	assert.Empty(t, FindNeighbors(grid, v(0, 0, 0)), "climbing the same ramp needs orientation 2")
}

func TestClimbOntoSlantIsOneWay(t *testing.T) {
	grid := voxel.NewGrid(2, 1, 2)
	grid.SetCube(v(1, 0, 0))
	grid.SetSlant(v(0, 0, 1), voxel.SlantRisingXP)

	assert.Equal(t, []voxel.Int3{v(0, 0, 1)}, FindNeighbors(grid, v(1, 0, 0)))
	assert.Empty(t, FindNeighbors(grid, v(0, 0, 1)))
}

func TestClimbRulesPerDirection(t *testing.T) {
	cases := []struct {
		slantPos    voxel.Int3
		orientation byte
	}{
		{v(0, 1, 1), voxel.SlantRisingXP},
		{v(2, 1, 1), voxel.SlantRisingXN},
		{v(1, 0, 1), voxel.SlantRisingYP},
		{v(1, 2, 1), voxel.SlantRisingYN},
	}
	for _, c := range cases {
		grid := voxel.NewGrid(3, 3, 2)
		grid.SetCube(v(1, 1, 0))
		grid.SetSlant(c.slantPos, c.orientation)
		assert.Equal(t, []voxel.Int3{c.slantPos}, FindNeighbors(grid, v(1, 1, 0)), "orientation %d", c.orientation)

		for wrong := byte(0); wrong <= voxel.MaxOrientation; wrong++ {
			if wrong == c.orientation {
				continue
			}
			grid.SetSlant(c.slantPos, wrong)
			assert.Empty(t, FindNeighbors(grid, v(1, 1, 0)), "orientation %d at %s", wrong, c.slantPos)
		}
	}
}

func TestSameLevelSlantMustFaceTheSource(t *testing.T) {
	cases := []struct {
		slantPos    voxel.Int3
		orientation byte
	}{
		{v(0, 1, 0), voxel.SlantRisingXN},
		{v(2, 1, 0), voxel.SlantRisingXP},
		{v(1, 0, 0), voxel.SlantRisingYN},
		{v(1, 2, 0), voxel.SlantRisingYP},
	}
	for _, c := range cases {
		grid := voxel.NewGrid(3, 3, 1)
		grid.SetCube(v(1, 1, 0))
		grid.SetSlant(c.slantPos, c.orientation)
		assert.Equal(t, []voxel.Int3{c.slantPos}, FindNeighbors(grid, v(1, 1, 0)))
		assert.Equal(t, []voxel.Int3{v(1, 1, 0)}, FindNeighbors(grid, c.slantPos), "ramp leads back down to the cube")
	}
}

func TestWalkAcrossRamp(t *testing.T) {
	grid := voxel.NewGrid(1, 3, 1)
	for y := int32(0); y < 3; y++ {
		grid.SetSlant(v(0, y, 0), voxel.SlantRisingXP)
	}
	assert.Equal(t, []voxel.Int3{v(0, 0, 0), v(0, 2, 0)}, FindNeighbors(grid, v(0, 1, 0)))

	grid.SetSlant(v(0, 2, 0), voxel.SlantRisingXN)
	assert.Equal(t, []voxel.Int3{v(0, 0, 0)}, FindNeighbors(grid, v(0, 1, 0)), "different orientation breaks the crossing")
}

func TestFlatSlantActsAsCubeSource(t *testing.T) {
	grid := voxel.NewGrid(2, 1, 1)
	grid.SetSlant(v(0, 0, 0), 5)
	grid.SetCube(v(1, 0, 0))

	assert.Equal(t, []voxel.Int3{v(1, 0, 0)}, FindNeighbors(grid, v(0, 0, 0)))
	assert.Empty(t, FindNeighbors(grid, v(1, 0, 0)), "a flat slant is not entered like a cube")
}

func TestRampDownhillOntoLowerCube(t *testing.T) {
	grid := voxel.NewGrid(3, 1, 2)
	grid.SetCube(v(0, 0, 0))
	grid.SetSlant(v(1, 0, 1), voxel.SlantRisingXP)
	grid.SetCube(v(0, 0, 1))

	// the cube on the same level wins, the lower one is covered
	assert.Equal(t, []voxel.Int3{v(0, 0, 1)}, FindNeighbors(grid, v(1, 0, 1)))
}
