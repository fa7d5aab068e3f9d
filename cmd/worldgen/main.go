package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/Garsondee/World-Forge/internal/world"
)

func main() {
	var name string
	var width int
	var height int
	var formatName string
	var remapPath string
	var terrainPath string
	var objectPath string
	var outPath string
	var watch bool

	flag.StringVar(&name, "name", "", "world name (default title and file stem)")
	flag.IntVar(&width, "width", -1, "world width in tiles (0-255)")
	flag.IntVar(&height, "height", -1, "world height in tiles (0-255)")
	flag.StringVar(&formatName, "format", "v2", "file layout: v1 (padded) or v2 (sectioned)")
	flag.StringVar(&remapPath, "remap", "", "remap document path (.yaml, .yml or .json)")
	flag.StringVar(&terrainPath, "terrain", "", "terrain grid path (default <name>_map.csv)")
	flag.StringVar(&objectPath, "objects", "", "building grid path (default <name>_bldg.csv)")
	flag.StringVar(&outPath, "out", "", "output path (default <name>.alw)")
	flag.BoolVar(&watch, "watch", false, "stay running and rebuild when an input changes")
	flag.Parse()

	if name == "" {
		fmt.Fprintln(os.Stderr, "error: -name is required")
		os.Exit(1)
	}
	if width < 0 || height < 0 {
		fmt.Fprintln(os.Stderr, "error: -width and -height are required")
		os.Exit(1)
	}
	format, err := world.ParseFormat(formatName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	cfg := world.BuildConfig{
		Name:        name,
		Width:       width,
		Height:      height,
		Format:      format,
		RemapPath:   remapPath,
		TerrainPath: terrainPath,
		ObjectPath:  objectPath,
		OutPath:     outPath,
	}

	stats, err := world.Build(cfg)
	if err != nil {
		if !watch {
			log.Fatalf("worldgen: %v", err)
		}
		// A failed first build keeps watch mode alive; the next save retries.
		log.Printf("build: %v", err)
	} else {
		fmt.Println(summaryLine(stats))
	}

	if watch {
		watchAndRebuild(cfg)
	}
}

func summaryLine(s world.BuildStats) string {
	line := fmt.Sprintf("wrote %s: %s layout, %d bytes, %d terrain bytes, %d objects",
		s.OutPath, s.Format, s.Bytes, s.Tiles, s.Placements)
	if s.Remapped {
		line += " (remapped)"
	}
	return line
}

func watchAndRebuild(cfg world.BuildConfig) {
	w, err := world.WatchInputs(cfg.Inputs()...)
	if err != nil {
		log.Fatalf("worldgen: watch: %v", err)
	}
	defer w.Close()

	log.Printf("watching %s", strings.Join(cfg.Inputs(), ", "))
	for {
		select {
		case path, ok := <-w.Events:
			if !ok {
				return
			}
			stats, err := world.Build(cfg)
			if err != nil {
				log.Printf("rebuild after %s: %v", path, err)
				continue
			}
			log.Printf("%s (after %s)", summaryLine(stats), path)
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			log.Printf("watch: %v", err)
		}
	}
}
