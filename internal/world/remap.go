package world

// Defaults for the named auxiliary values when the remap table does not
// configure them. Victory and defeat mirror the strings the engine has
// shipped with since the first map pack; the title default is the world
// name and lives in Title.
const (
	defaultIntro   = ""
	defaultVictory = "You won"
	defaultDefeat  = "You lost"
)

// ObjectRef is the final (id, kind) pair an object code remaps to.
type ObjectRef struct {
	ID   int
	Kind int
}

// RemapTable translates editor-local tile and object identifiers into the
// ids the engine expects and supplies the named auxiliary values
// (permission lists and mission strings). A nil *RemapTable is valid and
// means "no table": every lookup is identity and every named value takes
// its default. The table is read-only once built and safe to share across
// encode calls.
type RemapTable struct {
	tiles   map[int]int
	objects map[int]ObjectRef
	blocked []int
	heal    []int
	damage  []int
	title   *string
	intro   *string
	victory *string
	defeat  *string
}

// Tile maps a raw terrain id to its final id, returning the raw id
// unchanged when no mapping exists.
func (t *RemapTable) Tile(id int) int {
	if t == nil {
		return id
	}
	if mapped, ok := t.tiles[id]; ok {
		return mapped
	}
	return id
}

// Object maps a raw building code to its final (id, kind) pair. An
// unmapped code falls back to (code, 0): the placement degrades to a
// static object whose texture id is the raw cell value. The zero kind is
// long-standing engine behavior, kept as is.
func (t *RemapTable) Object(code int) (id, kind int) {
	if t == nil {
		return code, 0
	}
	if ref, ok := t.objects[code]; ok {
		return ref.ID, ref.Kind
	}
	return code, 0
}

// BlockedTiles returns the configured blocked-tile list, nil when absent.
func (t *RemapTable) BlockedTiles() []int {
	if t == nil {
		return nil
	}
	return t.blocked
}

// HealTiles returns the configured heal list, nil when absent.
func (t *RemapTable) HealTiles() []int {
	if t == nil {
		return nil
	}
	return t.heal
}

// DamageTiles returns the configured damage list, nil when absent.
func (t *RemapTable) DamageTiles() []int {
	if t == nil {
		return nil
	}
	return t.damage
}

// Title returns the configured world title. Its default is the world name
// passed by the caller, not a constant, so an unconfigured title follows
// whatever the world is called.
func (t *RemapTable) Title(worldName string) string {
	if t == nil || t.title == nil {
		return worldName
	}
	return *t.title
}

// Intro returns the configured intro text, empty by default.
func (t *RemapTable) Intro() string {
	if t == nil || t.intro == nil {
		return defaultIntro
	}
	return *t.intro
}

// Victory returns the configured victory message.
func (t *RemapTable) Victory() string {
	if t == nil || t.victory == nil {
		return defaultVictory
	}
	return *t.victory
}

// Defeat returns the configured defeat message.
func (t *RemapTable) Defeat() string {
	if t == nil || t.defeat == nil {
		return defaultDefeat
	}
	return *t.defeat
}
