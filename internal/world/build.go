package world

import "fmt"

// BuildConfig names the inputs and output of one worldgen run. Name is
// the world name: it supplies the default title and, when the explicit
// paths are empty, the conventional file names <Name>_map.csv,
// <Name>_bldg.csv and <Name>.alw.
type BuildConfig struct {
	Name   string
	Width  int
	Height int
	Format Format

	RemapPath   string // optional; empty means identity lookups and defaults
	TerrainPath string // overrides <Name>_map.csv
	ObjectPath  string // overrides <Name>_bldg.csv
	OutPath     string // overrides <Name>.alw
}

// TerrainFile returns the terrain grid path after applying the name
// convention.
func (c BuildConfig) TerrainFile() string {
	if c.TerrainPath != "" {
		return c.TerrainPath
	}
	return c.Name + "_map.csv"
}

// ObjectFile returns the building grid path after applying the name
// convention.
func (c BuildConfig) ObjectFile() string {
	if c.ObjectPath != "" {
		return c.ObjectPath
	}
	return c.Name + "_bldg.csv"
}

// OutFile returns the output path after applying the name convention.
func (c BuildConfig) OutFile() string {
	if c.OutPath != "" {
		return c.OutPath
	}
	return c.Name + ".alw"
}

// Inputs returns the files a build reads, for watch mode.
func (c BuildConfig) Inputs() []string {
	paths := []string{c.TerrainFile(), c.ObjectFile()}
	if c.RemapPath != "" {
		paths = append(paths, c.RemapPath)
	}
	return paths
}

// BuildStats summarizes one completed build for command output.
type BuildStats struct {
	OutPath    string
	Format     Format
	Bytes      int    // total encoded size
	Tiles      int    // terrain bytes written
	Placements int    // object records written
	Remapped   bool   // a remap document was applied
}

// Build runs the pipeline once: load both grids, load the optional remap
// document, resolve, encode to the output path. Any failure aborts the
// whole run; a partial output file is invalid.
func Build(cfg BuildConfig) (BuildStats, error) {
	if cfg.Name == "" && (cfg.TerrainPath == "" || cfg.ObjectPath == "" || cfg.OutPath == "") {
		return BuildStats{}, fmt.Errorf("world: build needs a name or explicit paths")
	}
	// Dimensions are header fields; reject them before any file is opened.
	if _, err := fitByte("width", cfg.Width); err != nil {
		return BuildStats{}, err
	}
	if _, err := fitByte("height", cfg.Height); err != nil {
		return BuildStats{}, err
	}

	terrain, err := LoadGrid(cfg.TerrainFile())
	if err != nil {
		return BuildStats{}, err
	}
	objects, err := LoadGrid(cfg.ObjectFile())
	if err != nil {
		return BuildStats{}, err
	}

	var remap *RemapTable
	if cfg.RemapPath != "" {
		if remap, err = LoadRemap(cfg.RemapPath); err != nil {
			return BuildStats{}, err
		}
	}

	enc := &Encoder{
		Name:   cfg.Name,
		Width:  cfg.Width,
		Height: cfg.Height,
		Format: cfg.Format,
		Remap:  remap,
	}
	wld, err := enc.resolve(terrain, objects)
	if err != nil {
		return BuildStats{}, err
	}

	out := cfg.OutFile()
	if err := writeWorldFile(out, wld); err != nil {
		return BuildStats{}, err
	}
	return BuildStats{
		OutPath:    out,
		Format:     cfg.Format,
		Bytes:      wld.Size(),
		Tiles:      len(wld.Terrain),
		Placements: len(wld.Placements),
		Remapped:   remap != nil,
	}, nil
}
