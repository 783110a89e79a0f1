package voxel

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// Int3 identifies a single grid cell. It is a plain value and is used directly as a map key.
type Int3 struct {
	X, Y, Z int32
}

func (i Int3) Add(other Int3) Int3 {
	return Int3{i.X + other.X, i.Y + other.Y, i.Z + other.Z}
}

func (i Int3) Sub(other Int3) Int3 {
	return Int3{i.X - other.X, i.Y - other.Y, i.Z - other.Z}
}

func (i Int3) Mul(factor int32) Int3 {
	i.X *= factor
	i.Y *= factor
	i.Z *= factor
	return i
}

// Above returns the cell directly on top of this one.
func (i Int3) Above() Int3 {
	return Int3{i.X, i.Y, i.Z + 1}
}

// Less orders cells lexicographically by Z, then Y, then X.
// This is the same order in which the grid stores its cells.
func (i Int3) Less(other Int3) bool {
	if i.Z != other.Z {
		return i.Z < other.Z
	}
	if i.Y != other.Y {
		return i.Y < other.Y
	}
	return i.X < other.X
}

func (i Int3) ToVec3() mgl32.Vec3 {
	return mgl32.Vec3{float32(i.X), float32(i.Y), float32(i.Z)}
}

func (i Int3) ToVec3D() mgl64.Vec3 {
	return mgl64.Vec3{float64(i.X), float64(i.Y), float64(i.Z)}
}

// ToBlockCenterVec3D is the center of the top face of the block.
func (i Int3) ToBlockCenterVec3D() mgl64.Vec3 {
	return mgl64.Vec3{float64(i.X) + 0.5, float64(i.Y) + 0.5, float64(i.Z) + 1}
}

func (i Int3) ToString() string {
	return fmt.Sprintf("(%d, %d, %d)", i.X, i.Y, i.Z)
}

func (i Int3) String() string {
	return i.ToString()
}

// FloorVec3D returns the cell that contains the given point in voxel coordinates.
func FloorVec3D(pos mgl64.Vec3) Int3 {
	return Int3{int32(floor(pos.X())), int32(floor(pos.Y())), int32(floor(pos.Z()))}
}

func ManhattanDistance3(a, b Int3) int32 {
	return Abs(a.X-b.X) + Abs(a.Y-b.Y) + Abs(a.Z-b.Z)
}

func Abs(i int32) int32 {
	if i < 0 {
		return -i
	}
	return i
}
