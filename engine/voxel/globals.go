package voxel

import "math"

// BlockType is the kind of block occupying a grid cell.
type BlockType byte

const (
	AIR BlockType = iota
	CUBE
	SLANT
)

func (t BlockType) String() string {
	switch t {
	case AIR:
		return "air"
	case CUBE:
		return "cube"
	case SLANT:
		return "slant"
	}
	return "unknown"
}

// Slant orientations 0-3 are ramps rising towards +X, +Y, -X and -Y.
// Orientations 4-7 describe flat slant blocks.
const (
	SlantRisingXP byte = 0
	SlantRisingYP byte = 1
	SlantRisingXN byte = 2
	SlantRisingYN byte = 3

	MaxOrientation byte = 7
	// SlantFlatThreshold is the first orientation code that is walked like a flat block.
	SlantFlatThreshold byte = 4
)

func floor(f float64) float64 {
	return math.Floor(f)
}
