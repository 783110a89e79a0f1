package voxel

import (
	"io"

	"github.com/Tnze/go-mc/nbt"
	"github.com/pkg/errors"
)

/*
	TAG_Compound({
	    "size": TAG_Int_Array([x, y, z]),
	    "types": TAG_Byte_Array(),
	    "orientations": TAG_Byte_Array(),
	    "properties": TAG_Byte_Array()
	})
*/
type gridNBT struct {
	Size         []int32 `nbt:"size"`
	Types        []byte  `nbt:"types"`
	Orientations []byte  `nbt:"orientations"`
	Properties   []byte  `nbt:"properties"`
}

// ReadGridNBT decodes an uncompressed NBT grid compound.
func ReadGridNBT(r io.Reader) (*Grid, error) {
	decoder := nbt.NewDecoder(r)
	var value gridNBT
	if _, err := decoder.Decode(&value); err != nil {
		return nil, errors.Wrap(err, "decoding grid nbt")
	}
	if len(value.Size) != 3 {
		return nil, errors.Errorf("grid nbt: size has %d entries, expected 3", len(value.Size))
	}
	if err := checkGridSize([3]int32{value.Size[0], value.Size[1], value.Size[2]}); err != nil {
		return nil, errors.Wrap(err, "grid nbt")
	}
	types := make([]BlockType, len(value.Types))
	for i, t := range value.Types {
		types[i] = BlockType(t)
	}
	g, err := NewGridFromArrays(value.Size[0], value.Size[1], value.Size[2], types, value.Orientations, value.Properties)
	return g, errors.Wrap(err, "grid nbt")
}

// WriteGridNBT encodes the grid as an uncompressed NBT compound.
func WriteGridNBT(w io.Writer, g *Grid) error {
	value := gridNBT{
		Size:         []int32{g.xSize, g.ySize, g.zSize},
		Types:        make([]byte, len(g.types)),
		Orientations: g.orientations,
		Properties:   g.properties,
	}
	for i, t := range g.types {
		value.Types[i] = byte(t)
	}
	data, err := nbt.Marshal(value)
	if err != nil {
		return errors.Wrap(err, "encoding grid nbt")
	}
	_, err = w.Write(data)
	return errors.Wrap(err, "writing grid nbt")
}
