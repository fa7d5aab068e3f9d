package world

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// Encoder writes level files. Width and height go into the header exactly
// as declared here, never as measured from the grids: the engine trusts
// the header and splits the terrain stream by it, so a mismatch is the
// caller's to own.
type Encoder struct {
	Name   string // world name; default title
	Width  int
	Height int
	Format Format
	Remap  *RemapTable // nil means identity lookups and default strings
}

// Encode resolves both grids through the remap table and writes one
// complete stream. Emission is single-pass and append-only: an error at
// any step aborts the operation and any partial output is invalid.
func (e *Encoder) Encode(w io.Writer, terrain, objects Grid) error {
	wld, err := e.resolve(terrain, objects)
	if err != nil {
		return err
	}
	return wld.Encode(w)
}

// EncodeFile encodes into path, creating or truncating it. A file left
// behind after an error is invalid and the caller should discard it.
func (e *Encoder) EncodeFile(path string, terrain, objects Grid) error {
	wld, err := e.resolve(terrain, objects)
	if err != nil {
		return err
	}
	return writeWorldFile(path, wld)
}

// resolve runs every grid cell and named value through the remap table,
// producing the world value Encode serializes. All fixed-width range
// checks happen here, so a defect is reported before the first byte is
// written.
func (e *Encoder) resolve(terrain, objects Grid) (*World, error) {
	if terrain == nil {
		return nil, fmt.Errorf("world: missing terrain grid")
	}
	if objects == nil {
		return nil, fmt.Errorf("world: missing object grid")
	}
	if _, err := fitByte("width", e.Width); err != nil {
		return nil, err
	}
	if _, err := fitByte("height", e.Height); err != nil {
		return nil, err
	}

	wld := &World{
		Width:   e.Width,
		Height:  e.Height,
		Format:  e.Format,
		Title:   e.Remap.Title(e.Name),
		Intro:   e.Remap.Intro(),
		Victory: e.Remap.Victory(),
		Defeat:  e.Remap.Defeat(),
	}

	// Permission lists are authored as final ids already; they take the
	// wire-width checks but not the remap.
	var err error
	if wld.Blocked, err = byteList("blocked tile", e.Remap.BlockedTiles()); err != nil {
		return nil, err
	}
	if wld.Heal, err = byteList("heal tile", e.Remap.HealTiles()); err != nil {
		return nil, err
	}
	if wld.Damage, err = byteList("damage tile", e.Remap.DamageTiles()); err != nil {
		return nil, err
	}

	wld.Terrain = make([]byte, 0, e.Width*e.Height)
	for _, row := range terrain {
		for _, raw := range row {
			b, err := fitByte("tile id", e.Remap.Tile(raw))
			if err != nil {
				return nil, err
			}
			wld.Terrain = append(wld.Terrain, b)
		}
	}

	// Coordinates are checked only when a record is actually emitted: an
	// all-empty row beyond 255 has always been legal.
	for ty, row := range objects {
		for tx, raw := range row {
			if raw == EmptyCell {
				continue
			}
			id, kind := e.Remap.Object(raw)
			kindByte, err := fitByte("object type", kind)
			if err != nil {
				return nil, err
			}
			idByte, err := fitByte("object id", id)
			if err != nil {
				return nil, err
			}
			xByte, err := fitByte("object x", tx)
			if err != nil {
				return nil, err
			}
			yByte, err := fitByte("object y", ty)
			if err != nil {
				return nil, err
			}
			wld.Placements = append(wld.Placements, Placement{
				Kind: ObjectKind(kindByte),
				ID:   idByte,
				X:    xByte,
				Y:    yByte,
			})
		}
	}
	return wld, nil
}

// byteList converts a permission list to wire bytes, enforcing the
// one-byte entry range and the one-byte length prefix.
func byteList(field string, vals []int) ([]byte, error) {
	if len(vals) == 0 {
		return nil, nil
	}
	if len(vals) > maxByte {
		return nil, &FieldError{Field: field + " list length", Value: len(vals), Max: maxByte}
	}
	out := make([]byte, len(vals))
	for i, v := range vals {
		b, err := fitByte(field, v)
		if err != nil {
			return nil, err
		}
		out[i] = b
	}
	return out, nil
}

// Encode serializes the world in its recorded format. Sections are
// written in fixed order with no delimiters; readers recover terrain row
// boundaries from the header dimensions alone.
func (w *World) Encode(out io.Writer) error {
	width, err := fitByte("width", w.Width)
	if err != nil {
		return err
	}
	height, err := fitByte("height", w.Height)
	if err != nil {
		return err
	}

	sw := &sectionWriter{w: out}
	sw.bytes(magicBytes[:])
	sw.bytes([]byte{width, height})

	switch w.Format {
	case FormatV1:
		sw.bytes(w.Terrain)
		sw.bytes(make([]byte, padLen))
	case FormatV2:
		if w.hasPermissions() {
			sw.bytes(permMark[:])
			sw.list("blocked tile", w.Blocked)
			sw.list("heal tile", w.Heal)
			sw.list("damage tile", w.Damage)
		} else {
			sw.bytes(permAbsent[:])
		}
		sw.bytes(w.Terrain)
		sw.str("title", w.Title)
		sw.str("intro", w.Intro)
		sw.str("victory", w.Victory)
		sw.str("defeat", w.Defeat)
	default:
		return fmt.Errorf("world: unknown format %d", uint8(w.Format))
	}

	for _, p := range w.Placements {
		sw.bytes(recordMark[:])
		sw.bytes([]byte{byte(p.Kind), p.ID, p.X, p.Y})
	}
	return sw.err
}

// sectionWriter carries the first failure across section writes so
// emission reads linearly instead of nesting an error check per call.
type sectionWriter struct {
	w   io.Writer
	err error
}

// bytes writes raw bytes.
func (s *sectionWriter) bytes(b []byte) {
	if s.err != nil {
		return
	}
	if _, err := s.w.Write(b); err != nil {
		s.err = fmt.Errorf("world: write: %w", err)
	}
}

// list writes a one-byte length prefix followed by the entries.
func (s *sectionWriter) list(field string, b []byte) {
	if s.err != nil {
		return
	}
	if len(b) > maxByte {
		s.err = &FieldError{Field: field + " list length", Value: len(b), Max: maxByte}
		return
	}
	s.bytes([]byte{byte(len(b))})
	s.bytes(b)
}

// str writes a two-byte big-endian length prefix followed by the bytes.
func (s *sectionWriter) str(field, v string) {
	if s.err != nil {
		return
	}
	if len(v) > maxString {
		s.err = &FieldError{Field: field + " length", Value: len(v), Max: maxString}
		return
	}
	var lenBuf [2]byte
	binary.BigEndian.PutUint16(lenBuf[:], uint16(len(v))) // #nosec G115 -- length checked against maxString above
	s.bytes(lenBuf[:])
	s.bytes([]byte(v))
}

// writeWorldFile owns the output handle for exactly one encode: create,
// buffered encode, flush, close, with every failure surfaced. On error
// the partial file is left for the caller to discard.
func writeWorldFile(path string, wld *World) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("world: create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("world: close %s: %w", path, cerr)
		}
	}()
	bw := bufio.NewWriter(f)
	if err = wld.Encode(bw); err != nil {
		return err
	}
	if err = bw.Flush(); err != nil {
		return fmt.Errorf("world: flush %s: %w", path, err)
	}
	return nil
}
