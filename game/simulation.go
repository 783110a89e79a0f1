package game

import (
	"fmt"
	"time"

	"github.com/memmaker/voxelroute/engine/route"
	"github.com/memmaker/voxelroute/engine/util"
	"github.com/memmaker/voxelroute/engine/voxel"
)

// Selection is a click on a destination voxel for one of the units.
type Selection struct {
	UnitID      uint64
	Destination voxel.Int3
}

// RouteUpdate is what the simulation publishes after handling a Selection.
type RouteUpdate struct {
	UnitID  uint64
	Result  route.RouteResult
	Refined route.RefinedRoute
	// Length of the visual path in world units.
	Length float32
	// InReach is set when the unit's movement budget covers the cheapest path to the destination.
	InReach bool
}

// Simulation owns the grid, its sections, the router and the refiner. All routing work happens
// inside Tick, other goroutines talk to it only through the checked buffers.
type Simulation struct {
	grid     *voxel.Grid
	sections *route.MapSections
	router   *route.Router
	refiner  *route.Refiner
	roster   *UnitRoster
	catalog  *Catalog
	timer    *util.Timer

	gridChanged *util.CheckedBuffer[*voxel.Grid]
	selection   *util.CheckedBuffer[Selection]
	routes      *util.CheckedBuffer[RouteUpdate]
}

// NewSimulation accepts a nil grid, nothing is partitioned until a grid arrives through SetGrid.
func NewSimulation(grid *voxel.Grid, settings route.Settings, roster *UnitRoster, catalog *Catalog) *Simulation {
	sections := route.NewMapSections()
	return &Simulation{
		grid:        grid,
		sections:    sections,
		router:      route.NewRouter(sections),
		refiner:     route.NewRefiner(settings),
		roster:      roster,
		catalog:     catalog,
		timer:       util.NewTimer(),
		gridChanged: util.NewCheckedBuffer[*voxel.Grid](),
		selection:   util.NewCheckedBuffer[Selection](),
		routes:      util.NewCheckedBuffer[RouteUpdate](),
	}
}

// SetGrid hands a new grid to the simulation. The caller must not modify it afterwards.
func (s *Simulation) SetGrid(grid *voxel.Grid) {
	s.gridChanged.Set(grid)
}

// Select asks for a route of the unit to destination. A newer selection replaces one
// that has not been handled yet.
func (s *Simulation) Select(unitID uint64, destination voxel.Int3) {
	s.selection.Set(Selection{UnitID: unitID, Destination: destination})
}

// TakeRoute returns the latest published route, each route is returned only once.
func (s *Simulation) TakeRoute() (RouteUpdate, bool) {
	return s.routes.Take()
}

// Sections may only be used from the goroutine that calls Tick.
func (s *Simulation) Sections() *route.MapSections {
	return s.sections
}

func (s *Simulation) Refiner() *route.Refiner {
	return s.refiner
}

// Tick applies a pending grid change, repartitions if needed and answers a pending selection.
func (s *Simulation) Tick() {
	if grid, ok := s.gridChanged.Take(); ok && grid != nil {
		s.grid = grid
		s.sections.MarkDirty()
	}
	if s.grid != nil && s.sections.IsDirty() {
		stopTimer := s.timer.Start("partition")
		s.sections.Recompute(s.grid)
		stopTimer()
	}

	selected, ok := s.selection.Take()
	if !ok {
		return
	}
	unit, ok := s.roster.Unit(selected.UnitID)
	if !ok {
		util.LogGameError(fmt.Sprintf("[Simulation] Selection for unknown unit %d", selected.UnitID))
		return
	}
	request := route.RouteRequest{Start: unit.GetBlockPosition(), Destination: selected.Destination}
	stopTimer := s.timer.Start("route")
	foundPath, found := s.router.ComputeRoute(request.Start, request.Destination)
	stopTimer()
	update := RouteUpdate{
		UnitID: unit.GameID(),
		Result: route.RouteResult{Request: request, Path: foundPath, Found: found},
	}
	if found {
		stopTimer = s.timer.Start("refine")
		update.Refined = s.refiner.RefineRoute(s.grid, foundPath)
		stopTimer()
		update.Length = pathLength(update.Refined.Visual)

		stopTimer = s.timer.Start("reach")
		reach := MovementRange(s.sections, request.Start, float64(unit.MovesLeft(s.catalog)))
		stopTimer()
		update.InReach = request.Destination == request.Start || reach.IsValidTarget(request.Destination)
	}
	s.routes.Set(update)
	util.LogGameDebug("[Simulation] Timings\n" + s.timer.String())
}

// Timer holds the run times of the partition, route, refine and reach stages. Like Sections it
// belongs to the goroutine that calls Tick.
func (s *Simulation) Timer() *util.Timer {
	return s.timer
}

// Run calls Tick every interval until stop is closed.
func (s *Simulation) Run(stop <-chan struct{}, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	util.LogGameInfo(fmt.Sprintf("[Simulation] Running with a tick of %s", interval))
	for {
		select {
		case <-stop:
			util.LogGameInfo("[Simulation] Stopped")
			return
		case <-ticker.C:
			s.Tick()
		}
	}
}
