package route

import (
	"testing"

	"github.com/memmaker/voxelroute/engine/voxel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rampWorld is a low and a high plateau connected by a ramp, plus a separate island.
//
//	z=1:  . . # # .
//	z=0:  # # 0 . #
func rampWorld() *voxel.Grid {
	grid := voxel.NewGrid(5, 2, 3)
	for y := int32(0); y < 2; y++ {
		grid.SetCube(v(0, y, 0))
		grid.SetCube(v(1, y, 0))
		grid.SetSlant(v(2, y, 0), voxel.SlantRisingXP)
		grid.SetCube(v(2, y, 1))
		grid.SetCube(v(3, y, 1))
		grid.SetCube(v(4, y, 0))
	}
	return grid
}

func TestPartitionFlatPlatform(t *testing.T) {
	sections := partition(platform(3, 3, 1))
	assert.Equal(t, 1, sections.SectionCount())
	assert.Equal(t, 9, sections.Len())
	for x := int32(0); x < 3; x++ {
		for y := int32(0); y < 3; y++ {
			section, ok := sections.SectionOf(v(x, y, 0))
			assert.True(t, ok)
			assert.Equal(t, 0, section)
		}
	}
}

func TestPartitionSeparatesIslands(t *testing.T) {
	grid := voxel.NewGrid(5, 1, 1)
	grid.SetCube(v(0, 0, 0))
	grid.SetCube(v(1, 0, 0))
	grid.SetCube(v(3, 0, 0))
	grid.SetCube(v(4, 0, 0))
	sections := partition(grid)

	assert.Equal(t, 2, sections.SectionCount())
	assert.Equal(t, 4, sections.Len())
	left, _ := sections.SectionOf(v(0, 0, 0))
	right, _ := sections.SectionOf(v(4, 0, 0))
	assert.NotEqual(t, left, right)

	_, ok := sections.SectionOf(v(2, 0, 0))
	assert.False(t, ok, "air gets no record")
	assert.Nil(t, sections.Route(v(2, 0, 0)))
}

func TestPartitionSkipsCoveredVoxels(t *testing.T) {
	sections := partition(rampWorld())

	assert.Nil(t, sections.Route(v(2, 0, 0)), "ramp is covered by the upper plateau")
	assert.NotNil(t, sections.Route(v(2, 0, 1)))
	assert.Equal(t, 10, sections.Len())
}

func TestPartitionRecordsAdjacency(t *testing.T) {
	grid := rampWorld()
	sections := partition(grid)
	for z := int32(0); z < 3; z++ {
		for y := int32(0); y < 2; y++ {
			for x := int32(0); x < 5; x++ {
				pos := v(x, y, z)
				route := sections.Route(pos)
				accessible := !grid.IsAir(pos) && IsMinimallyAccessible(grid, pos)
				if !accessible {
					assert.Nil(t, route, pos.ToString())
					continue
				}
				require.NotNil(t, route, pos.ToString())
				assert.Equal(t, pos, route.ID)
				assert.Equal(t, FindNeighbors(grid, pos), route.Neighbors)
			}
		}
	}
}

func TestRecomputeIsIdempotent(t *testing.T) {
	grid := rampWorld()
	grid.SetSlant(v(1, 1, 0), 6)
	first := partition(grid)
	second := partition(grid)

	assert.Equal(t, first.SectionCount(), second.SectionCount())
	assert.Equal(t, first.routes, second.routes)

	first.Recompute(grid)
	assert.Equal(t, second.routes, first.routes)
}

func TestDirtyFlag(t *testing.T) {
	grid := platform(2, 2, 1)
	sections := NewMapSections()
	assert.True(t, sections.IsDirty())

	assert.True(t, sections.RecomputeIfDirty(grid))
	assert.False(t, sections.IsDirty())
	assert.False(t, sections.RecomputeIfDirty(grid))

	grid.SetBlock(v(0, 0, 0), voxel.AIR, 0, 0)
	sections.MarkDirty()
	assert.True(t, sections.RecomputeIfDirty(grid))
	assert.Equal(t, 3, sections.Len())
}

func BenchmarkRecompute(b *testing.B) {
	grid := platform(64, 64, 8)
	sections := NewMapSections()
	for i := 0; i < b.N; i++ {
		sections.Recompute(grid)
	}
}
