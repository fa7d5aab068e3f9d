package world

import (
	"bytes"
	"encoding/binary"
	"testing"
)

// --- Shared fixtures and helpers ---

// fullFixture returns an encoder and grids that touch every feature:
// remapped tiles, all three object kinds, an unmapped building code,
// permission lists and all four strings.
func fullFixture(format Format) (*Encoder, Grid, Grid) {
	doc := &RemapDoc{
		Tiles: map[int]int{7: 3},
		Objects: map[int]ObjectMapping{
			10: {ID: 5, Kind: 0},
			11: {ID: 0, Kind: 1},
			12: {ID: 2, Kind: 2},
		},
		Blocked: []int{1, 2},
		Heal:    []int{4},
		Damage:  []int{3},
		Title:   strPtr("Harbor Assault"),
		Intro:   strPtr("Take the docks."),
		Victory: strPtr("Docks secured"),
		Defeat:  strPtr("Docks lost"),
	}
	enc := &Encoder{
		Name:   "harbor",
		Width:  4,
		Height: 3,
		Format: format,
		Remap:  doc.Table(),
	}
	terrain := Grid{
		{7, 0, 0, 1},
		{0, 2, 3, 0},
		{0, 0, 4, 7},
	}
	objects := Grid{
		{EmptyCell, 10, EmptyCell, EmptyCell},
		{EmptyCell, EmptyCell, 11, EmptyCell},
		{12, EmptyCell, EmptyCell, 9},
	}
	return enc, terrain, objects
}

func strPtr(s string) *string {
	return &s
}

// mustEncode encodes through the full resolve-and-write path and fails
// the test on any error.
func mustEncode(t *testing.T, enc *Encoder, terrain, objects Grid) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := enc.Encode(&buf, terrain, objects); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return buf.Bytes()
}

// mustResolve runs the remap stage alone and fails the test on any error.
func mustResolve(t *testing.T, enc *Encoder, terrain, objects Grid) *World {
	t.Helper()
	wld, err := enc.resolve(terrain, objects)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	return wld
}

// checkRoundTrip encodes the world, decodes the bytes in the same format
// and verifies the decoded value re-encodes to identical bytes. Returns
// the decoded world for further assertions.
func checkRoundTrip(t *testing.T, wld *World) *World {
	t.Helper()
	var first bytes.Buffer
	if err := wld.Encode(&first); err != nil {
		t.Fatalf("encode: %v", err)
	}
	decoded, err := Decode(bytes.NewReader(first.Bytes()), wld.Format)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	var second bytes.Buffer
	if err := decoded.Encode(&second); err != nil {
		t.Fatalf("re-encode: %v", err)
	}
	if !bytes.Equal(first.Bytes(), second.Bytes()) {
		t.Fatalf("round trip changed bytes:\n first=% x\nsecond=% x", first.Bytes(), second.Bytes())
	}
	return decoded
}

// appendString appends a two-byte big-endian length prefix and the text,
// mirroring the wire layout of a string field.
func appendString(b []byte, s string) []byte {
	var lenBuf [2]byte
	binary.BigEndian.PutUint16(lenBuf[:], uint16(len(s)))
	b = append(b, lenBuf[:]...)
	return append(b, s...)
}
