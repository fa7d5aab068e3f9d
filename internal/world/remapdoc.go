package world

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ObjectMapping is the document form of one object remapping. The wire
// field is called "type" to match the record byte it ends up in.
type ObjectMapping struct {
	ID   int `json:"id" yaml:"id" jsonschema:"title=Final object id,description=Id byte written into the record; a texture id for statics and a unit type for enemies.,minimum=0"`
	Kind int `json:"type" yaml:"type" jsonschema:"title=Object type,description=Record type byte: 0 static scenery; 1 player unit; 2 enemy unit.,minimum=0,maximum=2"`
}

// RemapDoc is the on-disk remap document. The struct is exported so the
// schema generator can reflect over the same contract map authors write
// against. Absent string fields fall to their defaults; fields present but
// empty stay empty.
type RemapDoc struct {
	Tiles   map[int]int           `json:"tiles,omitempty" yaml:"tiles" jsonschema:"title=Tile remappings,description=Raw terrain id to final terrain id; unlisted ids pass through unchanged."`
	Objects map[int]ObjectMapping `json:"objects,omitempty" yaml:"objects" jsonschema:"title=Object remappings,description=Raw building code to final placement; unlisted codes degrade to static objects."`
	Blocked []int                 `json:"blocked,omitempty" yaml:"blocked" jsonschema:"title=Blocked tiles,description=Final tile ids movement refuses."`
	Heal    []int                 `json:"heal,omitempty" yaml:"heal" jsonschema:"title=Heal tiles,description=Final tile ids that restore health."`
	Damage  []int                 `json:"damage,omitempty" yaml:"damage" jsonschema:"title=Damage tiles,description=Final tile ids that drain health."`
	Title   *string               `json:"title,omitempty" yaml:"title" jsonschema:"title=World title,description=Defaults to the world name."`
	Intro   *string               `json:"intro,omitempty" yaml:"intro" jsonschema:"title=Intro text,description=Defaults to empty."`
	Victory *string               `json:"victory,omitempty" yaml:"victory" jsonschema:"title=Victory message,description=Defaults to: You won."`
	Defeat  *string               `json:"defeat,omitempty" yaml:"defeat" jsonschema:"title=Defeat message,description=Defaults to: You lost."`
}

// LoadRemap reads a remap document and builds the lookup table. The
// document format follows the extension: .json, .yaml or .yml.
func LoadRemap(path string) (*RemapTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("world: remap %s: %w", path, err)
	}
	doc, err := ParseRemap(path, data)
	if err != nil {
		return nil, fmt.Errorf("world: remap %s: %w", path, err)
	}
	return doc.Table(), nil
}

// ParseRemap decodes document bytes using the format named by the path's
// extension. Unknown document fields are rejected: a typo'd key would
// otherwise silently change the encoded world. An empty document is valid
// and yields a table of pure defaults.
func ParseRemap(path string, data []byte) (*RemapDoc, error) {
	var doc RemapDoc
	if len(bytes.TrimSpace(data)) == 0 {
		return &doc, nil
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, err
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported extension %q (want .json, .yaml or .yml)", ext)
	}
	if err := doc.validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// validate applies the structural checks a document must pass regardless
// of wire widths; range enforcement against the fixed-width fields stays
// in the encoder, which also covers tables built in code.
func (d *RemapDoc) validate() error {
	for code, ref := range d.Objects {
		if ref.ID < 0 {
			return fmt.Errorf("object %d: id must not be negative (got %d)", code, ref.ID)
		}
		if ref.Kind < 0 || ref.Kind >= int(objectKindCount) {
			return fmt.Errorf("object %d: unknown type %d", code, ref.Kind)
		}
	}
	return nil
}

// Table builds the read-only lookup table the encoder consumes. Maps and
// lists are copied so later document edits cannot alias into a table
// already handed out.
func (d *RemapDoc) Table() *RemapTable {
	if d == nil {
		return nil
	}
	t := &RemapTable{
		title:   d.Title,
		intro:   d.Intro,
		victory: d.Victory,
		defeat:  d.Defeat,
	}
	if len(d.Tiles) > 0 {
		t.tiles = make(map[int]int, len(d.Tiles))
		for k, v := range d.Tiles {
			t.tiles[k] = v
		}
	}
	if len(d.Objects) > 0 {
		t.objects = make(map[int]ObjectRef, len(d.Objects))
		for k, v := range d.Objects {
			t.objects[k] = ObjectRef{ID: v.ID, Kind: v.Kind}
		}
	}
	t.blocked = append([]int(nil), d.Blocked...)
	t.heal = append([]int(nil), d.Heal...)
	t.damage = append([]int(nil), d.Damage...)
	return t
}
