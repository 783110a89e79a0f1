package game

import "github.com/go-gl/mathgl/mgl32"

// pathLength is the length of a polyline.
func pathLength(points []mgl32.Vec3) float32 {
	var length float32
	for i := 1; i < len(points); i++ {
		length += points[i].Sub(points[i-1]).Len()
	}
	return length
}
