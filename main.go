package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/faiface/mainthread"
	"github.com/memmaker/voxelroute/engine/util"
	"github.com/memmaker/voxelroute/engine/voxel"
)

func main() {
	var (
		mapFile    = flag.String("map", "", "grid to load (.bin or .nbt), a generated hill map is used when empty")
		seed       = flag.Int64("seed", 1337, "seed of the generated hill map")
		tuningFile = flag.String("tuning", "", "path to a refiner tuning YAML file (optional)")
		unitsFile  = flag.String("units", "", "path to a unit catalog YAML file (optional)")
		from       = flag.String("from", "", "start voxel as x,y,z")
		to         = flag.String("to", "", "destination voxel as x,y,z")
		layer      = flag.Int("layer", -1, "print this z layer of the grid")
		saveFile   = flag.String("save", "", "write the grid to this file (.bin or .nbt)")
		batchFile  = flag.String("batch", "", "route every \"x,y,z x,y,z\" line of this file")
		verbose    = flag.Bool("v", false, "debug logging")
	)
	var dig []voxel.Int3
	flag.Func("dig", "remove the block at x,y,z before routing (repeatable)", func(text string) error {
		pos, err := parseInt3(text)
		if err != nil {
			return err
		}
		dig = append(dig, pos)
		return nil
	})
	flag.Parse()
	if *verbose {
		util.GLOBAL_LOG_LEVEL = util.LogLevelDebug
		util.GLOBAL_LOG_CATEGORIES |= util.LogIO
	}
	options := appOptions{
		mapFile:    *mapFile,
		seed:       *seed,
		tuningFile: *tuningFile,
		unitsFile:  *unitsFile,
		from:       *from,
		to:         *to,
		layer:      *layer,
		saveFile:   *saveFile,
		batchFile:  *batchFile,
		dig:        dig,
	}
	exitCode := 0
	mainthread.Run(func() {
		if err := runApp(options); err != nil {
			fmt.Fprintf(os.Stderr, "voxelroute: %v\n", err)
			exitCode = 1
		}
	})
	os.Exit(exitCode)
}
