package game

import (
	"fmt"
	"os"

	"github.com/memmaker/voxelroute/engine/util"
	"github.com/memmaker/voxelroute/engine/voxel"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type UnitCoreStats struct {
	Health int `yaml:"health"`
	// Speed is the movement budget per turn, in world units along block centers.
	Speed int `yaml:"speed"`
}

type UnitDefinition struct {
	Name      string        `yaml:"name"`
	CoreStats UnitCoreStats `yaml:"stats"`
}

// Catalog holds the unit definitions of a game. It is never changed after construction,
// units refer to their definition by index.
type Catalog struct {
	definitions []UnitDefinition
}

func NewCatalog(definitions ...UnitDefinition) *Catalog {
	copied := make([]UnitDefinition, len(definitions))
	copy(copied, definitions)
	return &Catalog{definitions: copied}
}

// LoadCatalog reads a YAML list of unit definitions.
func LoadCatalog(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	var file struct {
		Units []UnitDefinition `yaml:"units"`
	}
	if err = yaml.Unmarshal(raw, &file); err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	for i, def := range file.Units {
		if def.CoreStats.Speed < 0 {
			return nil, errors.Errorf("%s: unit %d (%s) has negative speed", path, i, def.Name)
		}
	}
	util.LogGameInfo(fmt.Sprintf("[Catalog] Loaded %d unit definitions from %s", len(file.Units), path))
	return NewCatalog(file.Units...), nil
}

func (c *Catalog) Len() int {
	return len(c.definitions)
}

func (c *Catalog) Definition(index int) (UnitDefinition, bool) {
	if index < 0 || index >= len(c.definitions) {
		return UnitDefinition{}, false
	}
	return c.definitions[index], true
}

type UnitInstance struct {
	GameUnitID      uint64 // ID of the unit in the current game instance
	controlledBy    uint64 // ID of the player controlling this unit
	Name            string
	Position        voxel.Int3
	DefinitionIndex int // index into the Catalog
}

func NewUnitInstance(gameUnitID, controlledBy uint64, name string, definitionIndex int, position voxel.Int3) UnitInstance {
	return UnitInstance{
		GameUnitID:      gameUnitID,
		controlledBy:    controlledBy,
		Name:            name,
		Position:        position,
		DefinitionIndex: definitionIndex,
	}
}

func (u UnitInstance) ControlledBy() uint64 {
	return u.controlledBy
}

func (u UnitInstance) GameID() uint64 {
	return u.GameUnitID
}

func (u UnitInstance) GetName() string {
	return u.Name
}

func (u UnitInstance) GetBlockPosition() voxel.Int3 {
	return u.Position
}

// MovesLeft is the movement budget taken from the unit's definition, or zero if the index is unknown.
func (u UnitInstance) MovesLeft(catalog *Catalog) int {
	def, ok := catalog.Definition(u.DefinitionIndex)
	if !ok {
		return 0
	}
	return def.CoreStats.Speed
}
