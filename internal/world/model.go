package world

// TileRule classifies how the engine treats a terrain tile id.
type TileRule uint8

const (
	RuleAllowed TileRule = iota // free to enter
	RuleBlocked                 // movement prohibited
	RuleHeal                    // standing here restores health
	RuleDamage                  // standing here drains health
)

// String returns the rule name used in reports.
func (r TileRule) String() string {
	switch r {
	case RuleAllowed:
		return "allowed"
	case RuleBlocked:
		return "blocked"
	case RuleHeal:
		return "heal"
	case RuleDamage:
		return "damage"
	default:
		return "unknown"
	}
}

// ObjectKind identifies what an object record places in the world.
type ObjectKind uint8

const (
	KindStatic      ObjectKind = iota // scenery; the id byte selects a texture
	KindPlayer                        // player-controlled unit spawn
	KindEnemy                         // enemy unit; the id byte selects a unit type
	objectKindCount                   // sentinel
)

// String returns the kind name used in reports.
func (k ObjectKind) String() string {
	switch k {
	case KindStatic:
		return "static"
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}

// kindIDMeaning returns what the record's id byte selects for a kind.
func kindIDMeaning(k ObjectKind) string {
	switch k {
	case KindStatic:
		return "texture"
	case KindEnemy:
		return "unit type"
	default:
		return "id"
	}
}

// Placement is one decoded object record.
type Placement struct {
	Kind ObjectKind
	ID   byte
	X    byte
	Y    byte
}

// World is the fully resolved form of one level file: what the encoder
// serializes and what the decoder returns. Terrain is row-major with one
// byte per cell; readers recover row boundaries from Width alone.
type World struct {
	Width  int
	Height int
	Format Format

	Terrain []byte // remapped tile ids, row-major

	Blocked []byte // tile ids movement refuses
	Heal    []byte // tile ids that restore health
	Damage  []byte // tile ids that drain health

	// PermBlock preserves a decoded permission marker whose lists were
	// all empty, so re-encoding reproduces the stream byte-for-byte.
	// Encoder-built worlds leave it false and stay canonical.
	PermBlock bool

	Title   string
	Intro   string
	Victory string
	Defeat  string

	Placements []Placement // in file order
}

// inBounds reports whether (x, y) is inside the declared dimensions.
func (w *World) inBounds(x, y int) bool {
	return x >= 0 && x < w.Width && y >= 0 && y < w.Height
}

// At returns the terrain tile id at column x, row y. Out-of-bounds reads
// and reads past a short terrain buffer return 0.
func (w *World) At(x, y int) byte {
	if !w.inBounds(x, y) {
		return 0
	}
	i := y*w.Width + x
	if i >= len(w.Terrain) {
		return 0
	}
	return w.Terrain[i]
}

// Rule returns how the engine treats a tile id. An id on several lists
// resolves damage over heal over blocked, matching the loader's insertion
// order; an id on no list is allowed.
func (w *World) Rule(id byte) TileRule {
	for _, t := range w.Damage {
		if t == id {
			return RuleDamage
		}
	}
	for _, t := range w.Heal {
		if t == id {
			return RuleHeal
		}
	}
	for _, t := range w.Blocked {
		if t == id {
			return RuleBlocked
		}
	}
	return RuleAllowed
}

// RuleAt returns the movement rule for the tile at (x, y).
func (w *World) RuleAt(x, y int) TileRule {
	return w.Rule(w.At(x, y))
}

// hasPermissions reports whether the v2 layout writes the permission
// block: any non-empty list, or a marked-but-empty block kept by
// PermBlock.
func (w *World) hasPermissions() bool {
	return w.PermBlock || len(w.Blocked) > 0 || len(w.Heal) > 0 || len(w.Damage) > 0
}

// Size returns the exact encoded byte size of the world in its format.
func (w *World) Size() int {
	n := len(magicBytes) + 2 + len(w.Terrain) + recordLen*len(w.Placements)
	switch w.Format {
	case FormatV1:
		n += padLen
	case FormatV2:
		if w.hasPermissions() {
			n += len(permMark) + 3 + len(w.Blocked) + len(w.Heal) + len(w.Damage)
		} else {
			n += len(permAbsent)
		}
		n += 4*2 + len(w.Title) + len(w.Intro) + len(w.Victory) + len(w.Defeat)
	}
	return n
}
