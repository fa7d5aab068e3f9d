package world

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// EmptyCell is the object-grid sentinel for "no object here".
const EmptyCell = -1

// Grid holds rows of integers parsed from a comma-separated source. Rows
// may be ragged; the codec treats row lengths as the caller's problem.
type Grid [][]int

// ReadGrid parses comma-separated integer rows. Cells tolerate
// surrounding whitespace and blank lines are skipped.
func ReadGrid(r io.Reader) (Grid, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	var g Grid
	for row := 0; ; row++ {
		record, err := cr.Read()
		if err == io.EOF {
			return g, nil
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		cells := make([]int, len(record))
		for col, field := range record {
			v, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil {
				return nil, fmt.Errorf("row %d, col %d: %q is not an integer", row, col, field)
			}
			cells[col] = v
		}
		g = append(g, cells)
	}
}

// LoadGrid reads one grid file.
func LoadGrid(path string) (Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("world: grid: %w", err)
	}
	defer f.Close()
	g, err := ReadGrid(f)
	if err != nil {
		return nil, fmt.Errorf("world: grid %s: %w", path, err)
	}
	return g, nil
}
