package voxel

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/memmaker/voxelroute/engine/util"
	"github.com/pkg/errors"
)

// limits for snapshots read from disk
const (
	maxAxisSize = 4096
	maxVolume   = 1 << 24
)

func checkGridSize(sizes [3]int32) error {
	for _, size := range sizes {
		if size <= 0 || size > maxAxisSize {
			return errors.Errorf("invalid grid size %d x %d x %d", sizes[0], sizes[1], sizes[2])
		}
	}
	if volume := int64(sizes[0]) * int64(sizes[1]) * int64(sizes[2]); volume > maxVolume {
		return errors.Errorf("grid of %d x %d x %d has %d cells, at most %d are supported", sizes[0], sizes[1], sizes[2], volume, maxVolume)
	}
	return nil
}

// SaveGrid writes a gzip compressed snapshot of the grid.
// Layout: xSize, ySize, zSize as little endian int32, followed by the type, orientation and property arrays.
func SaveGrid(w io.Writer, g *Grid) error {
	gzipWriter := gzip.NewWriter(w)
	for _, size := range []int32{g.xSize, g.ySize, g.zSize} {
		if err := binary.Write(gzipWriter, binary.LittleEndian, size); err != nil {
			return errors.Wrap(err, "writing grid size")
		}
	}
	types := make([]byte, len(g.types))
	for i, t := range g.types {
		types[i] = byte(t)
	}
	for _, data := range [][]byte{types, g.orientations, g.properties} {
		if _, err := gzipWriter.Write(data); err != nil {
			return errors.Wrap(err, "writing grid data")
		}
	}
	return errors.Wrap(gzipWriter.Close(), "closing grid stream")
}

// LoadGrid reads a snapshot written by SaveGrid.
func LoadGrid(r io.Reader) (*Grid, error) {
	gzipReader, err := gzip.NewReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "opening grid stream")
	}
	defer gzipReader.Close()

	var sizes [3]int32
	for i := range sizes {
		if err = binary.Read(gzipReader, binary.LittleEndian, &sizes[i]); err != nil {
			return nil, errors.Wrap(err, "reading grid size")
		}
	}
	if err = checkGridSize(sizes); err != nil {
		return nil, err
	}
	volume := int(sizes[0]) * int(sizes[1]) * int(sizes[2])
	data := make([][]byte, 3)
	for i := range data {
		data[i] = make([]byte, volume)
		if _, err = io.ReadFull(gzipReader, data[i]); err != nil {
			return nil, errors.Wrapf(err, "reading grid array %d", i)
		}
	}
	types := make([]BlockType, volume)
	for i, t := range data[0] {
		types[i] = BlockType(t)
	}
	return NewGridFromArrays(sizes[0], sizes[1], sizes[2], types, data[1], data[2])
}

func SaveGridToFile(filename string, g *Grid) error {
	outfile, err := os.Create(filename)
	if err != nil {
		return errors.Wrapf(err, "creating %s", filename)
	}
	if strings.HasSuffix(filename, ".nbt") {
		err = WriteGridNBT(outfile, g)
	} else {
		err = SaveGrid(outfile, g)
	}
	if err != nil {
		outfile.Close()
		util.LogIOError(fmt.Sprintf("[Grid] ERR - Failed to write %s: %s", filename, err.Error()))
		return errors.Wrapf(err, "saving %s", filename)
	}
	util.LogVoxelInfo(fmt.Sprintf("[Grid] Saved %d x %d x %d grid to %s", g.xSize, g.ySize, g.zSize, filename))
	return outfile.Close()
}

func LoadGridFromFile(filename string) (*Grid, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", filename)
	}
	defer file.Close()
	var g *Grid
	if strings.HasSuffix(filename, ".nbt") {
		g, err = ReadGridNBT(file)
	} else {
		g, err = LoadGrid(file)
	}
	if err != nil {
		util.LogVoxelError(fmt.Sprintf("[Grid] ERR - Failed to load %s: %s", filename, err.Error()))
		return nil, errors.Wrapf(err, "loading %s", filename)
	}
	util.LogVoxelInfo(fmt.Sprintf("[Grid] Loaded %d x %d x %d grid from %s", g.xSize, g.ySize, g.zSize, filename))
	return g, nil
}

// PrintLayer writes one horizontal layer of the grid as text.
// '#' is a cube, a digit is a slant with that orientation and '.' is air.
// Rows wider than maxWidth are cut off, maxWidth <= 0 disables that.
func PrintLayer(w io.Writer, g *Grid, z int32, maxWidth int) error {
	width := int(g.xSize)
	if maxWidth > 0 && width > maxWidth {
		width = maxWidth
	}
	var line strings.Builder
	for y := g.ySize - 1; y >= 0; y-- {
		line.Reset()
		for x := int32(0); x < int32(width); x++ {
			pos := Int3{x, y, z}
			switch g.BlockAt(pos) {
			case CUBE:
				line.WriteByte('#')
			case SLANT:
				line.WriteByte('0' + g.OrientationAt(pos))
			default:
				line.WriteByte('.')
			}
		}
		line.WriteByte('\n')
		if _, err := io.WriteString(w, line.String()); err != nil {
			return err
		}
	}
	return nil
}
