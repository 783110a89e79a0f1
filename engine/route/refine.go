package route

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/memmaker/voxelroute/engine/util"
	"github.com/memmaker/voxelroute/engine/voxel"
)

// RefinedRoute is the smoothed form of a voxel path.
type RefinedRoute struct {
	// Voxels are the cells the smoothed curve passes through, without consecutive duplicates.
	Voxels []voxel.Int3
	// Visual is the smoothed curve in world space, ready to be drawn as a line strip.
	Visual []mgl32.Vec3
	// Iterations is the number of relaxation steps that were run.
	Iterations int
	// Capped is set when the relaxation stopped at the iteration cap.
	Capped bool
	// Diverged is set when the relaxation blew up and the unrelaxed string was used instead.
	Diverged bool
}

// Refiner turns blocky voxel paths into smooth travel curves. The path is cut into a
// dense string of points, every string segment becomes a spring that is slightly shorter
// than the segment, and a damped mass-spring simulation pulls the string straight while
// the endpoints stay pinned.
type Refiner struct {
	settings Settings

	// SurfaceHeight, if set, is applied to every interior point of the relaxed string
	// before cells and display points are derived. Nothing makes the curve follow slant
	// surfaces yet, units walking over ramps keep the height of the straightened string.
	SurfaceHeight func(grid *voxel.Grid, point mgl64.Vec3) mgl64.Vec3
}

func NewRefiner(settings Settings) *Refiner {
	return &Refiner{settings: settings}
}

func (r *Refiner) Settings() Settings {
	return r.settings
}

// RefineRoute smooths givenPath. Paths with fewer than three voxels are passed through unchanged.
func (r *Refiner) RefineRoute(grid *voxel.Grid, givenPath []voxel.Int3) RefinedRoute {
	if len(givenPath) == 0 {
		return RefinedRoute{}
	}
	if len(givenPath) < 3 {
		refined := RefinedRoute{
			Voxels: make([]voxel.Int3, len(givenPath)),
			Visual: make([]mgl32.Vec3, len(givenPath)),
		}
		copy(refined.Voxels, givenPath)
		for i, pos := range givenPath {
			refined.Visual[i] = r.ToVisual(pos.ToVec3D())
		}
		return refined
	}

	points := r.subdivide(givenPath)
	restLengths := r.restingLengths(points)
	iterations, outcome := r.relax(points, restLengths)
	switch outcome {
	case relaxCapped:
		util.LogRouteWarning(fmt.Sprintf("[Refiner] WARN - Relaxation of %d points hit the cap of %d iterations, using the partially relaxed path", len(points), r.settings.MaxIterations))
	case relaxDiverged:
		util.LogRouteWarning(fmt.Sprintf("[Refiner] WARN - Relaxation of %d points diverged after %d iterations, using the unrelaxed path", len(points), iterations))
		points = r.subdivide(givenPath)
	}
	if r.SurfaceHeight != nil {
		for i := 1; i < len(points)-1; i++ {
			points[i] = r.SurfaceHeight(grid, points[i])
		}
	}

	return RefinedRoute{
		Voxels:     collapseToCells(points),
		Visual:     r.toVisualPath(points),
		Iterations: iterations,
		Capped:     outcome == relaxCapped,
		Diverged:   outcome == relaxDiverged,
	}
}

// ToVisual maps a point in voxel coordinates into world space.
func (r *Refiner) ToVisual(point mgl64.Vec3) mgl32.Vec3 {
	spacing := r.settings.VoxelSpacing
	offset := mgl64.Vec3{0.5 * spacing, 0.5 * spacing, r.settings.DisplayOffsetZ * spacing}
	return util.ToVec3F(point.Mul(spacing).Add(offset))
}

func (r *Refiner) toVisualPath(points []mgl64.Vec3) []mgl32.Vec3 {
	visual := make([]mgl32.Vec3, len(points))
	for i, point := range points {
		visual[i] = r.ToVisual(point)
	}
	return visual
}

// subdivide replaces every step of the path by evenly spaced points, the last one on the next voxel.
func (r *Refiner) subdivide(givenPath []voxel.Int3) []mgl64.Vec3 {
	parts := r.settings.Subdivisions
	points := make([]mgl64.Vec3, 0, 1+(len(givenPath)-1)*parts)
	points = append(points, givenPath[0].ToVec3D())
	for i := 1; i < len(givenPath); i++ {
		from := givenPath[i-1].ToVec3D()
		to := givenPath[i].ToVec3D()
		for part := 1; part <= parts; part++ {
			factor := float64(part) / float64(parts)
			points = append(points, from.Add(to.Sub(from).Mul(factor)))
		}
	}
	return points
}

func (r *Refiner) restingLengths(points []mgl64.Vec3) []float64 {
	lengths := make([]float64, len(points)-1)
	for i := range lengths {
		lengths[i] = points[i+1].Sub(points[i]).Len() / (1 + r.settings.Stretchiness)
	}
	return lengths
}

type relaxOutcome int

const (
	relaxConverged relaxOutcome = iota
	relaxCapped
	relaxDiverged
)

// relax runs the spring simulation in place. Segment i connects point i and point i+1.
// It stops once the mean segment length exceeds the mean resting length by more than
// the stretchiness, at the iteration cap, or as soon as a point leaves the envelope
// of the initial string.
func (r *Refiner) relax(points []mgl64.Vec3, restLengths []float64) (int, relaxOutcome) {
	s := r.settings
	threshold := mean(restLengths) * (1 + s.Stretchiness)
	lower, upper := envelope(points)
	velocities := make([]mgl64.Vec3, len(points))
	for iteration := 1; ; iteration++ {
		for i := 1; i < len(points)-1; i++ {
			before := points[i-1].Sub(points[i])
			after := points[i+1].Sub(points[i])
			pull := util.NormalizeOrZero(before).Mul(restLengths[i-1] - before.Len()).
				Add(util.NormalizeOrZero(after).Mul(restLengths[i] - after.Len()))
			acceleration := pull.Mul(-s.SpringConstant / s.PointMass)
			velocities[i] = velocities[i].Add(acceleration.Mul(s.TimeStep)).Mul(s.Damping)
		}
		for i := 1; i < len(points)-1; i++ {
			points[i] = points[i].Add(velocities[i].Mul(s.TimeStep))
			if !insideEnvelope(points[i], lower, upper) {
				return iteration, relaxDiverged
			}
		}
		if meanSegmentLength(points) > threshold {
			return iteration, relaxConverged
		}
		if iteration >= s.MaxIterations {
			return iteration, relaxCapped
		}
	}
}

// envelope is the bounding box of the string grown by the string's length on every side.
// A stable relaxation stays far inside of it.
func envelope(points []mgl64.Vec3) (mgl64.Vec3, mgl64.Vec3) {
	lower, upper := points[0], points[0]
	for _, point := range points[1:] {
		for axis := 0; axis < 3; axis++ {
			lower[axis] = math.Min(lower[axis], point[axis])
			upper[axis] = math.Max(upper[axis], point[axis])
		}
	}
	margin := meanSegmentLength(points) * float64(len(points)-1)
	grow := mgl64.Vec3{margin, margin, margin}
	return lower.Sub(grow), upper.Add(grow)
}

// insideEnvelope is false for NaN and infinite coordinates as well.
func insideEnvelope(point, lower, upper mgl64.Vec3) bool {
	for axis := 0; axis < 3; axis++ {
		if !(point[axis] >= lower[axis] && point[axis] <= upper[axis]) {
			return false
		}
	}
	return true
}

// collapseToCells maps every point to the cell containing it and drops consecutive repeats.
// String points use voxel corners as integer coordinates, so floor assigns a point just short
// of the next voxel's coordinate to the cell before it. A curve that cuts across a cell near
// its upper corner is therefore reported in the lower neighbor.
func collapseToCells(points []mgl64.Vec3) []voxel.Int3 {
	cells := make([]voxel.Int3, 0, len(points))
	for _, point := range points {
		cell := voxel.FloorVec3D(point)
		if len(cells) > 0 && cells[len(cells)-1] == cell {
			continue
		}
		cells = append(cells, cell)
	}
	return cells
}

func meanSegmentLength(points []mgl64.Vec3) float64 {
	if len(points) < 2 {
		return 0
	}
	total := 0.0
	for i := 1; i < len(points); i++ {
		total += points[i].Sub(points[i-1]).Len()
	}
	return total / float64(len(points)-1)
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	total := 0.0
	for _, v := range values {
		total += v
	}
	return total / float64(len(values))
}
