package game

import (
	"fmt"

	"github.com/memmaker/voxelroute/engine/util"
	"github.com/memmaker/voxelroute/engine/voxel"
)

// MapEditor edits a private copy of a grid. Commit hands a snapshot of the copy to the simulation,
// the grid the simulation routes on is never changed in place.
type MapEditor struct {
	working    *voxel.Grid
	simulation *Simulation
	edits      int
}

func NewMapEditor(grid *voxel.Grid, simulation *Simulation) *MapEditor {
	return &MapEditor{working: grid.Clone(), simulation: simulation}
}

func (e *MapEditor) PlaceCube(pos voxel.Int3) {
	e.place(pos, voxel.CUBE, 0)
}

func (e *MapEditor) PlaceSlant(pos voxel.Int3, orientation byte) {
	e.place(pos, voxel.SLANT, orientation)
}

func (e *MapEditor) RemoveBlock(pos voxel.Int3) {
	e.place(pos, voxel.AIR, 0)
}

func (e *MapEditor) place(pos voxel.Int3, blockType voxel.BlockType, orientation byte) {
	if !e.working.ContainsGrid(pos) {
		util.LogGameInfo(fmt.Sprintf("[MapEditor] Ignored edit outside of the grid at %s", pos.ToString()))
		return
	}
	e.working.SetBlock(pos, blockType, orientation, e.working.PropertyAt(pos))
	e.edits++
}

// PendingEdits is the number of edits since the last commit or load.
func (e *MapEditor) PendingEdits() int {
	return e.edits
}

// Commit sends a snapshot of the edited grid to the simulation.
func (e *MapEditor) Commit() {
	util.LogGameInfo(fmt.Sprintf("[MapEditor] Committing %d edits", e.edits))
	e.simulation.SetGrid(e.working.Clone())
	e.edits = 0
}

// Snapshot returns a copy of the working grid.
func (e *MapEditor) Snapshot() *voxel.Grid {
	return e.working.Clone()
}

func (e *MapEditor) SaveToDisk(filename string) error {
	return voxel.SaveGridToFile(filename, e.working)
}

// LoadFromDisk replaces the working copy, the simulation only sees it after Commit.
func (e *MapEditor) LoadFromDisk(filename string) error {
	grid, err := voxel.LoadGridFromFile(filename)
	if err != nil {
		return err
	}
	e.working = grid
	e.edits = 0
	return nil
}
