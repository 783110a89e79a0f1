package voxel

import (
	"fmt"

	"github.com/pkg/errors"
)

// Grid is a dense snapshot of the block data of a map.
// Cells are stored at index z*xSize*ySize + y*xSize + x. Z points up.
// A Grid is handed to the routing code as a whole and must not be changed while a computation is running.
type Grid struct {
	xSize        int32
	ySize        int32
	zSize        int32
	types        []BlockType
	orientations []byte
	properties   []byte
}

// NewGrid creates a grid of the given size filled with air.
func NewGrid(xSize, ySize, zSize int32) *Grid {
	if xSize <= 0 || ySize <= 0 || zSize <= 0 {
		panic(fmt.Sprintf("invalid grid size %d x %d x %d", xSize, ySize, zSize))
	}
	volume := int(xSize) * int(ySize) * int(zSize)
	return &Grid{
		xSize:        xSize,
		ySize:        ySize,
		zSize:        zSize,
		types:        make([]BlockType, volume),
		orientations: make([]byte, volume),
		properties:   make([]byte, volume),
	}
}

// NewGridFromArrays wraps existing block arrays. The slices are used as they are, not copied.
func NewGridFromArrays(xSize, ySize, zSize int32, types []BlockType, orientations, properties []byte) (*Grid, error) {
	if xSize <= 0 || ySize <= 0 || zSize <= 0 {
		return nil, errors.Errorf("invalid grid size %d x %d x %d", xSize, ySize, zSize)
	}
	volume := int(xSize) * int(ySize) * int(zSize)
	if len(types) != volume || len(orientations) != volume || len(properties) != volume {
		return nil, errors.Errorf("grid arrays do not match volume %d (types %d, orientations %d, properties %d)", volume, len(types), len(orientations), len(properties))
	}
	for i, t := range types {
		if t > SLANT {
			return nil, errors.Errorf("unknown block type %d at index %d", t, i)
		}
	}
	for i, o := range orientations {
		if o > MaxOrientation {
			return nil, errors.Errorf("orientation %d at index %d is above %d", o, i, MaxOrientation)
		}
	}
	return &Grid{
		xSize:        xSize,
		ySize:        ySize,
		zSize:        zSize,
		types:        types,
		orientations: orientations,
		properties:   properties,
	}, nil
}

func (g *Grid) Size() (int32, int32, int32) {
	return g.xSize, g.ySize, g.zSize
}

func (g *Grid) Volume() int {
	return len(g.types)
}

func (g *Grid) Contains(x, y, z int32) bool {
	return x >= 0 && x < g.xSize && y >= 0 && y < g.ySize && z >= 0 && z < g.zSize
}

func (g *Grid) ContainsGrid(pos Int3) bool {
	return g.Contains(pos.X, pos.Y, pos.Z)
}

// Index returns the array index of a cell. The cell must be inside the grid.
func (g *Grid) Index(pos Int3) int {
	return int(pos.Z)*int(g.xSize)*int(g.ySize) + int(pos.Y)*int(g.xSize) + int(pos.X)
}

// PositionOf is the inverse of Index.
func (g *Grid) PositionOf(index int) Int3 {
	layer := int(g.xSize) * int(g.ySize)
	z := index / layer
	rest := index % layer
	return Int3{X: int32(rest % int(g.xSize)), Y: int32(rest / int(g.xSize)), Z: int32(z)}
}

// BlockAt returns the block type of a cell. Cells outside of the grid are air.
func (g *Grid) BlockAt(pos Int3) BlockType {
	if !g.ContainsGrid(pos) {
		return AIR
	}
	return g.types[g.Index(pos)]
}

// OrientationAt returns the orientation code of a cell, or 0 outside of the grid.
func (g *Grid) OrientationAt(pos Int3) byte {
	if !g.ContainsGrid(pos) {
		return 0
	}
	return g.orientations[g.Index(pos)]
}

func (g *Grid) PropertyAt(pos Int3) byte {
	if !g.ContainsGrid(pos) {
		return 0
	}
	return g.properties[g.Index(pos)]
}

func (g *Grid) IsAir(pos Int3) bool {
	return g.BlockAt(pos) == AIR
}

// SetBlock changes a single cell. Cells outside of the grid are ignored.
func (g *Grid) SetBlock(pos Int3, blockType BlockType, orientation byte, property byte) {
	if !g.ContainsGrid(pos) {
		return
	}
	index := g.Index(pos)
	g.types[index] = blockType
	g.orientations[index] = orientation
	g.properties[index] = property
}

func (g *Grid) SetCube(pos Int3) {
	g.SetBlock(pos, CUBE, 0, 0)
}

func (g *Grid) SetSlant(pos Int3, orientation byte) {
	g.SetBlock(pos, SLANT, orientation, 0)
}

// FillLayer sets every cell of layer z to the same block.
func (g *Grid) FillLayer(z int32, blockType BlockType, orientation byte) {
	for y := int32(0); y < g.ySize; y++ {
		for x := int32(0); x < g.xSize; x++ {
			g.SetBlock(Int3{x, y, z}, blockType, orientation, 0)
		}
	}
}

// Clone returns a deep copy, so map editors can prepare the next snapshot without touching the current one.
func (g *Grid) Clone() *Grid {
	clone := &Grid{
		xSize:        g.xSize,
		ySize:        g.ySize,
		zSize:        g.zSize,
		types:        make([]BlockType, len(g.types)),
		orientations: make([]byte, len(g.orientations)),
		properties:   make([]byte, len(g.properties)),
	}
	copy(clone.types, g.types)
	copy(clone.orientations, g.orientations)
	copy(clone.properties, g.properties)
	return clone
}
