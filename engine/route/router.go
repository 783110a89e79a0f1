package route

import (
	"fmt"

	"github.com/memmaker/voxelroute/engine/path"
	"github.com/memmaker/voxelroute/engine/util"
	"github.com/memmaker/voxelroute/engine/voxel"
	"golang.org/x/sync/errgroup"
)

// Router finds step-minimal paths between traversable voxels.
// It only reads the section map, several routes may be computed at the same time
// as long as nobody recomputes the sections meanwhile.
type Router struct {
	sections *MapSections
}

func NewRouter(sections *MapSections) *Router {
	return &Router{sections: sections}
}

func (r *Router) Sections() *MapSections {
	return r.sections
}

// ComputeRoute returns the path from start to destination, both inclusive, with the fewest steps.
// It fails without searching if one of the endpoints is not traversable or if they lie in different sections.
func (r *Router) ComputeRoute(start, destination voxel.Int3) ([]voxel.Int3, bool) {
	startSection, ok := r.sections.SectionOf(start)
	if !ok {
		util.LogRouteInfo(fmt.Sprintf("[Router] No route: start %s is not traversable", start.ToString()))
		return nil, false
	}
	destinationSection, ok := r.sections.SectionOf(destination)
	if !ok {
		util.LogRouteInfo(fmt.Sprintf("[Router] No route: destination %s is not traversable", destination.ToString()))
		return nil, false
	}
	if startSection != destinationSection {
		util.LogRouteInfo(fmt.Sprintf("[Router] No route: %s is in section %d, %s in section %d", start.ToString(), startSection, destination.ToString(), destinationSection))
		return nil, false
	}
	route := path.BreadthFirst[voxel.Int3](start, destination, r.sections)
	if route == nil {
		// only possible across one-way steps
		util.LogRouteInfo(fmt.Sprintf("[Router] No route: search from %s did not reach %s", start.ToString(), destination.ToString()))
		return nil, false
	}
	util.LogRouteDebug(fmt.Sprintf("[Router] Route %s -> %s with %d steps", start.ToString(), destination.ToString(), len(route)-1))
	return route, true
}

type RouteRequest struct {
	Start       voxel.Int3
	Destination voxel.Int3
}

type RouteResult struct {
	Request RouteRequest
	Path    []voxel.Int3
	Found   bool
}

// ComputeRoutes answers a batch of requests using up to parallelism goroutines.
// The results are in request order.
func (r *Router) ComputeRoutes(requests []RouteRequest, parallelism int) []RouteResult {
	results := make([]RouteResult, len(requests))
	var group errgroup.Group
	if parallelism > 0 {
		group.SetLimit(parallelism)
	}
	for i, request := range requests {
		i, request := i, request
		group.Go(func() error {
			foundPath, found := r.ComputeRoute(request.Start, request.Destination)
			results[i] = RouteResult{Request: request, Path: foundPath, Found: found}
			return nil
		})
	}
	_ = group.Wait()
	return results
}
