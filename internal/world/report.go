package world

import (
	"fmt"
	"sort"
	"strings"
)

// Report renders a human-readable summary of the world, section by
// section, in the order the bytes sit on disk.
func (w *World) Report() string {
	var b strings.Builder
	fmt.Fprintf(&b, "--- world report ---\n")
	fmt.Fprintf(&b, "format=%s size=%dx%d terrain_bytes=%d encoded_bytes=%d\n",
		w.Format, w.Width, w.Height, len(w.Terrain), w.Size())

	if w.Format == FormatV2 {
		b.WriteString("\n== permissions ==\n")
		if !w.hasPermissions() {
			b.WriteString("(none: every tile allowed)\n")
		} else {
			writeRuleLine(&b, "blocked", w.Blocked)
			writeRuleLine(&b, "heal", w.Heal)
			writeRuleLine(&b, "damage", w.Damage)
		}

		b.WriteString("\n== strings ==\n")
		fmt.Fprintf(&b, "title=%q\n", w.Title)
		fmt.Fprintf(&b, "intro=%q\n", w.Intro)
		fmt.Fprintf(&b, "victory=%q\n", w.Victory)
		fmt.Fprintf(&b, "defeat=%q\n", w.Defeat)
	}

	b.WriteString("\n== placements ==\n")
	if len(w.Placements) == 0 {
		b.WriteString("(none)\n")
	} else {
		counts := make(map[ObjectKind]int)
		for _, p := range w.Placements {
			counts[p.Kind]++
		}
		fmt.Fprintf(&b, "total=%d static=%d player=%d enemy=%d\n",
			len(w.Placements), counts[KindStatic], counts[KindPlayer], counts[KindEnemy])
		// Grouped by kind, file order within each kind.
		for kind := KindStatic; kind < objectKindCount; kind++ {
			for _, p := range w.Placements {
				if p.Kind != kind {
					continue
				}
				fmt.Fprintf(&b, "  - %s %s=%d at (%d,%d)\n", p.Kind, kindIDMeaning(p.Kind), p.ID, p.X, p.Y)
			}
		}
	}

	b.WriteString("\n== terrain histogram ==\n")
	if len(w.Terrain) == 0 {
		b.WriteString("(no terrain)\n")
	} else {
		hist := make(map[byte]int)
		for _, id := range w.Terrain {
			hist[id]++
		}
		ids := make([]int, 0, len(hist))
		for id := range hist {
			ids = append(ids, int(id))
		}
		sort.Ints(ids)
		for _, id := range ids {
			fmt.Fprintf(&b, "tile %3d: %d cells (%s)\n", id, hist[byte(id)], w.Rule(byte(id)))
		}
	}

	return b.String()
}

// writeRuleLine prints one permission list as a comma-joined id list.
func writeRuleLine(b *strings.Builder, name string, ids []byte) {
	if len(ids) == 0 {
		fmt.Fprintf(b, "%s: (empty)\n", name)
		return
	}
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprintf("%d", id)
	}
	fmt.Fprintf(b, "%s: %s\n", name, strings.Join(parts, ", "))
}
