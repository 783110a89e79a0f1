package game

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitRosterKeepsUnitsPerPlayer(t *testing.T) {
	roster := NewUnitRoster()
	require.NoError(t, roster.AddUnit(NewUnitInstance(1, 7, "scout", 0, v(0, 0, 0))))
	require.NoError(t, roster.AddUnit(NewUnitInstance(2, 7, "tank", 1, v(1, 0, 0))))
	require.NoError(t, roster.AddUnit(NewUnitInstance(3, 2, "scout", 0, v(2, 0, 0))))
	assert.Error(t, roster.AddUnit(NewUnitInstance(2, 2, "copy", 0, v(0, 0, 0))))

	assert.Equal(t, []uint64{2, 7}, roster.Players())
	units := roster.UnitsOf(7)
	require.Len(t, units, 2)
	assert.Equal(t, "scout", units[0].GetName())
	assert.Equal(t, "tank", units[1].GetName())

	units[0].Position = v(9, 9, 9)
	unit, ok := roster.Unit(1)
	require.True(t, ok)
	assert.Equal(t, v(0, 0, 0), unit.GetBlockPosition(), "UnitsOf returns copies")

	assert.True(t, roster.MoveUnit(1, v(3, 3, 0)))
	unit, _ = roster.Unit(1)
	assert.Equal(t, v(3, 3, 0), unit.GetBlockPosition())
	assert.False(t, roster.MoveUnit(99, v(0, 0, 0)))

	assert.True(t, roster.RemoveUnit(3))
	assert.False(t, roster.RemoveUnit(3))
	assert.Equal(t, []uint64{7}, roster.Players())
	assert.Empty(t, roster.UnitsOf(2))
}

func TestUnitRosterConcurrentAccess(t *testing.T) {
	roster := NewUnitRoster()
	var wg sync.WaitGroup
	for writer := 0; writer < 4; writer++ {
		wg.Add(1)
		go func(player uint64) {
			defer wg.Done()
			for i := uint64(0); i < 50; i++ {
				id := player*1000 + i
				assert.NoError(t, roster.AddUnit(NewUnitInstance(id, player, "unit", 0, v(0, 0, 0))))
				roster.MoveUnit(id, v(int32(i), 0, 0))
			}
		}(uint64(writer))
	}
	for reader := 0; reader < 4; reader++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				for _, player := range roster.Players() {
					for _, unit := range roster.UnitsOf(player) {
						assert.Equal(t, player, unit.ControlledBy())
					}
				}
			}
		}()
	}
	wg.Wait()
	total := 0
	for _, player := range roster.Players() {
		total += len(roster.UnitsOf(player))
	}
	assert.Equal(t, 200, total)
}

func TestCatalogLookup(t *testing.T) {
	definitions := []UnitDefinition{{Name: "scout", CoreStats: UnitCoreStats{Health: 3, Speed: 8}}}
	catalog := NewCatalog(definitions...)
	definitions[0].Name = "changed"

	def, ok := catalog.Definition(0)
	require.True(t, ok)
	assert.Equal(t, "scout", def.Name)
	_, ok = catalog.Definition(1)
	assert.False(t, ok)
	_, ok = catalog.Definition(-1)
	assert.False(t, ok)

	assert.Equal(t, 8, NewUnitInstance(1, 1, "a", 0, v(0, 0, 0)).MovesLeft(catalog))
	assert.Equal(t, 0, NewUnitInstance(1, 1, "a", 4, v(0, 0, 0)).MovesLeft(catalog))
}
