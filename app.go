package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/faiface/mainthread"
	"github.com/memmaker/voxelroute/engine/route"
	"github.com/memmaker/voxelroute/engine/util"
	"github.com/memmaker/voxelroute/engine/voxel"
	"github.com/memmaker/voxelroute/game"
	"github.com/pkg/errors"
	"golang.org/x/term"
)

type appOptions struct {
	mapFile    string
	seed       int64
	tuningFile string
	unitsFile  string
	from       string
	to         string
	layer      int
	saveFile   string
	batchFile  string
	dig        []voxel.Int3
}

const routeTimeout = 10 * time.Second

// runApp runs on its own goroutine, everything that writes to the terminal is sent to the main thread.
func runApp(options appOptions) error {
	grid, err := loadOrGenerate(options)
	if err != nil {
		return err
	}
	xSize, ySize, zSize := grid.Size()
	util.LogSystemInfo(fmt.Sprintf("[App] Using a %d x %d x %d grid", xSize, ySize, zSize))

	settings := route.DefaultSettings()
	if options.tuningFile != "" {
		if settings, err = route.LoadSettings(options.tuningFile); err != nil {
			return err
		}
	}
	catalog := game.NewCatalog(game.UnitDefinition{Name: "Walker", CoreStats: game.UnitCoreStats{Health: 10, Speed: 20}})
	if options.unitsFile != "" {
		if catalog, err = game.LoadCatalog(options.unitsFile); err != nil {
			return err
		}
	}
	roster := game.NewUnitRoster()
	simulation := game.NewSimulation(grid, settings, roster, catalog)

	if len(options.dig) > 0 {
		editor := game.NewMapEditor(grid, simulation)
		for _, pos := range options.dig {
			editor.RemoveBlock(pos)
		}
		editor.Commit()
		grid = editor.Snapshot()
	}
	if options.saveFile != "" {
		if err = voxel.SaveGridToFile(options.saveFile, grid); err != nil {
			return err
		}
	}
	if options.layer >= 0 {
		if err = printLayer(grid, int32(options.layer)); err != nil {
			return err
		}
	}
	if options.batchFile != "" {
		if err = runBatch(grid, options.batchFile); err != nil {
			return err
		}
	}
	if options.from == "" && options.to == "" {
		return nil
	}
	start, err := parseInt3(options.from)
	if err != nil {
		return errors.Wrap(err, "-from")
	}
	destination, err := parseInt3(options.to)
	if err != nil {
		return errors.Wrap(err, "-to")
	}
	if err = roster.AddUnit(game.NewUnitInstance(1, 1, "Walker #1", 0, start)); err != nil {
		return err
	}

	stop := make(chan struct{})
	defer close(stop)
	go simulation.Run(stop, 10*time.Millisecond)
	simulation.Select(1, destination)

	deadline := time.Now().Add(routeTimeout)
	for time.Now().Before(deadline) {
		if update, ok := simulation.TakeRoute(); ok {
			mainthread.Call(func() {
				printRoute(update)
			})
			return nil
		}
		time.Sleep(5 * time.Millisecond)
	}
	return errors.Errorf("no route update within %s", routeTimeout)
}

func loadOrGenerate(options appOptions) (*voxel.Grid, error) {
	if options.mapFile == "" {
		return game.GenerateHills(options.seed, 32, 32, 8), nil
	}
	return voxel.LoadGridFromFile(options.mapFile)
}

// runBatch answers every request of a batch file on its own section map.
func runBatch(grid *voxel.Grid, filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return errors.Wrapf(err, "opening %s", filename)
	}
	defer file.Close()
	requests, err := parseRequests(file)
	if err != nil {
		return errors.Wrapf(err, "%s", filename)
	}
	sections := route.NewMapSections()
	sections.Recompute(grid)
	results := route.NewRouter(sections).ComputeRoutes(requests, runtime.NumCPU())
	mainthread.Call(func() {
		for _, result := range results {
			if result.Found {
				fmt.Printf("%s -> %s: %d steps\n", result.Request.Start, result.Request.Destination, len(result.Path)-1)
			} else {
				fmt.Printf("%s -> %s: no route\n", result.Request.Start, result.Request.Destination)
			}
		}
	})
	return nil
}

// parseRequests reads one "x,y,z x,y,z" request per line. Empty lines and lines starting with # are skipped.
func parseRequests(r io.Reader) ([]route.RouteRequest, error) {
	var requests []route.RouteRequest
	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, errors.Errorf("line %d: expected start and destination, got %q", lineNumber, line)
		}
		start, err := parseInt3(fields[0])
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		destination, err := parseInt3(fields[1])
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		requests = append(requests, route.RouteRequest{Start: start, Destination: destination})
	}
	return requests, errors.Wrap(scanner.Err(), "reading requests")
}

func printLayer(grid *voxel.Grid, z int32) error {
	width := 0
	if fd := int(os.Stdout.Fd()); term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil {
			width = w
		}
	}
	var err error
	mainthread.Call(func() {
		err = voxel.PrintLayer(os.Stdout, grid, z, width)
	})
	return err
}

func printRoute(update game.RouteUpdate) {
	request := update.Result.Request
	if !update.Result.Found {
		fmt.Printf("no route from %s to %s\n", request.Start, request.Destination)
		return
	}
	fmt.Printf("route from %s to %s: %d steps\n", request.Start, request.Destination, len(update.Result.Path)-1)
	for _, step := range update.Result.Path {
		fmt.Printf("  %s\n", step)
	}
	refined := update.Refined
	fmt.Printf("refined in %d iterations (capped: %v, diverged: %v), %d voxels, length %.2f, in reach: %v\n",
		refined.Iterations, refined.Capped, refined.Diverged, len(refined.Voxels), update.Length, update.InReach)
	for _, point := range refined.Visual {
		fmt.Printf("  %.3f %.3f %.3f\n", point.X(), point.Y(), point.Z())
	}
}

func parseInt3(text string) (voxel.Int3, error) {
	var result voxel.Int3
	parts := strings.Split(text, ",")
	if len(parts) != 3 {
		return result, errors.Errorf("expected x,y,z, got %q", text)
	}
	_, err := fmt.Sscanf(strings.Join(parts, " "), "%d %d %d", &result.X, &result.Y, &result.Z)
	if err != nil {
		return result, errors.Wrapf(err, "parsing %q", text)
	}
	return result, nil
}
