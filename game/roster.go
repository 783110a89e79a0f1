package game

import (
	"slices"
	"sync"

	"github.com/memmaker/voxelroute/engine/voxel"
	"github.com/pkg/errors"
)

// UnitRoster keeps the unit lists of all players. Many goroutines may read it at once,
// writers get exclusive access.
type UnitRoster struct {
	lock     sync.RWMutex
	byPlayer map[uint64][]UnitInstance
}

func NewUnitRoster() *UnitRoster {
	return &UnitRoster{byPlayer: make(map[uint64][]UnitInstance)}
}

func (r *UnitRoster) AddUnit(unit UnitInstance) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	if _, _, found := r.find(unit.GameUnitID); found {
		return errors.Errorf("unit %d is already on the roster", unit.GameUnitID)
	}
	r.byPlayer[unit.ControlledBy()] = append(r.byPlayer[unit.ControlledBy()], unit)
	return nil
}

func (r *UnitRoster) RemoveUnit(gameUnitID uint64) bool {
	r.lock.Lock()
	defer r.lock.Unlock()
	player, index, found := r.find(gameUnitID)
	if !found {
		return false
	}
	r.byPlayer[player] = slices.Delete(r.byPlayer[player], index, index+1)
	if len(r.byPlayer[player]) == 0 {
		delete(r.byPlayer, player)
	}
	return true
}

// MoveUnit sets the block position of a unit.
func (r *UnitRoster) MoveUnit(gameUnitID uint64, position voxel.Int3) bool {
	r.lock.Lock()
	defer r.lock.Unlock()
	player, index, found := r.find(gameUnitID)
	if !found {
		return false
	}
	r.byPlayer[player][index].Position = position
	return true
}

func (r *UnitRoster) Unit(gameUnitID uint64) (UnitInstance, bool) {
	r.lock.RLock()
	defer r.lock.RUnlock()
	player, index, found := r.find(gameUnitID)
	if !found {
		return UnitInstance{}, false
	}
	return r.byPlayer[player][index], true
}

// UnitsOf returns a copy of the player's units in the order they were added.
func (r *UnitRoster) UnitsOf(player uint64) []UnitInstance {
	r.lock.RLock()
	defer r.lock.RUnlock()
	return slices.Clone(r.byPlayer[player])
}

func (r *UnitRoster) Players() []uint64 {
	r.lock.RLock()
	defer r.lock.RUnlock()
	players := make([]uint64, 0, len(r.byPlayer))
	for player := range r.byPlayer {
		players = append(players, player)
	}
	slices.Sort(players)
	return players
}

// caller holds the lock
func (r *UnitRoster) find(gameUnitID uint64) (uint64, int, bool) {
	for player, units := range r.byPlayer {
		for index, unit := range units {
			if unit.GameUnitID == gameUnitID {
				return player, index, true
			}
		}
	}
	return 0, 0, false
}
