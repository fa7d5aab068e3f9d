package world

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// Decode parses one level stream in the given format. The format must be
// supplied by the caller: files carry no version byte, and the two
// layouts are byte-incompatible from offset 6 on.
func Decode(r io.Reader, format Format) (*World, error) {
	switch format {
	case FormatV1, FormatV2:
	default:
		return nil, fmt.Errorf("world: unknown format %d", uint8(format))
	}

	var header [6]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if !bytes.Equal(header[:4], magicBytes[:]) {
		return nil, fmt.Errorf("bad magic % x (want % x)", header[:4], magicBytes[:])
	}
	wld := &World{
		Width:  int(header[4]),
		Height: int(header[5]),
		Format: format,
	}

	if format == FormatV2 {
		var mark [2]byte
		if _, err := io.ReadFull(r, mark[:]); err != nil {
			return nil, fmt.Errorf("read permission marker: %w", err)
		}
		switch {
		case bytes.Equal(mark[:], permMark[:]):
			wld.PermBlock = true
			var err error
			if wld.Blocked, err = readList(r, "blocked"); err != nil {
				return nil, err
			}
			if wld.Heal, err = readList(r, "heal"); err != nil {
				return nil, err
			}
			if wld.Damage, err = readList(r, "damage"); err != nil {
				return nil, err
			}
		case bytes.Equal(mark[:], permAbsent[:]):
			// no permission block
		default:
			return nil, fmt.Errorf("bad permission marker % x", mark[:])
		}
	}

	wld.Terrain = make([]byte, wld.Width*wld.Height)
	if _, err := io.ReadFull(r, wld.Terrain); err != nil {
		return nil, fmt.Errorf("read terrain (%dx%d): %w", wld.Width, wld.Height, err)
	}

	if format == FormatV1 {
		var pad [padLen]byte
		if _, err := io.ReadFull(r, pad[:]); err != nil {
			return nil, fmt.Errorf("read pad: %w", err)
		}
	} else {
		var err error
		if wld.Title, err = readString(r, "title"); err != nil {
			return nil, err
		}
		if wld.Intro, err = readString(r, "intro"); err != nil {
			return nil, err
		}
		if wld.Victory, err = readString(r, "victory"); err != nil {
			return nil, err
		}
		if wld.Defeat, err = readString(r, "defeat"); err != nil {
			return nil, err
		}
	}

	for {
		var mark [2]byte
		if _, err := io.ReadFull(r, mark[:]); err != nil {
			if err == io.EOF {
				return wld, nil
			}
			return nil, fmt.Errorf("read record marker: %w", err)
		}
		if !bytes.Equal(mark[:], recordMark[:]) {
			return nil, fmt.Errorf("bad record marker % x", mark[:])
		}
		var rec [4]byte
		if _, err := io.ReadFull(r, rec[:]); err != nil {
			return nil, fmt.Errorf("read record: %w", err)
		}
		kind := ObjectKind(rec[0])
		if kind >= objectKindCount {
			return nil, fmt.Errorf("unknown object type %d in record %d", rec[0], len(wld.Placements))
		}
		wld.Placements = append(wld.Placements, Placement{Kind: kind, ID: rec[1], X: rec[2], Y: rec[3]})
	}
}

// readList reads a one-byte length prefix and that many bytes.
func readList(r io.Reader, name string) ([]byte, error) {
	var n [1]byte
	if _, err := io.ReadFull(r, n[:]); err != nil {
		return nil, fmt.Errorf("read %s list length: %w", name, err)
	}
	if n[0] == 0 {
		return nil, nil
	}
	list := make([]byte, n[0])
	if _, err := io.ReadFull(r, list); err != nil {
		return nil, fmt.Errorf("read %s list: %w", name, err)
	}
	return list, nil
}

// readString reads a two-byte big-endian length prefix and that many
// bytes of text.
func readString(r io.Reader, name string) (string, error) {
	var lenBuf [2]byte
	if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
		return "", fmt.Errorf("read %s length: %w", name, err)
	}
	n := binary.BigEndian.Uint16(lenBuf[:])
	if n == 0 {
		return "", nil
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", fmt.Errorf("read %s: %w", name, err)
	}
	return string(buf), nil
}

// DecodeFile reads and parses one level file.
func DecodeFile(path string, format Format) (*World, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("world: open %s: %w", path, err)
	}
	defer f.Close()
	wld, err := Decode(bufio.NewReader(f), format)
	if err != nil {
		return nil, fmt.Errorf("world: decode %s: %w", path, err)
	}
	return wld, nil
}
