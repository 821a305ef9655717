package platform

import (
	"sort"

	"github.com/dshills/imbridge/internal/gui"
	"github.com/dshills/imbridge/internal/host"
)

// KeyMapping pairs a physical host key with the logical GUI key it drives.
type KeyMapping struct {
	Physical host.KeyCode
	Logical  gui.Key
}

// KeyMap is an ordered, immutable physical-to-logical key table.
// The zero value is an empty map.
type KeyMap struct {
	entries []KeyMapping
}

// NewKeyMap builds a KeyMap from entries in order. Entries with an
// invalid key on either side are dropped. A later entry for the same
// physical key replaces the earlier one in place.
func NewKeyMap(entries ...KeyMapping) KeyMap {
	out := make([]KeyMapping, 0, len(entries))
	index := make(map[host.KeyCode]int, len(entries))
	for _, e := range entries {
		if !e.Physical.Valid() || !e.Logical.Valid() {
			continue
		}
		if i, ok := index[e.Physical]; ok {
			out[i] = e
			continue
		}
		index[e.Physical] = len(out)
		out = append(out, e)
	}
	return KeyMap{entries: out}
}

// DefaultKeyMap returns the text-editing, navigation and control keys
// the GUI needs from any keyboard.
func DefaultKeyMap() KeyMap {
	return NewKeyMap(
		// Text edit shortcuts: select all, copy, paste, cut, redo, undo.
		KeyMapping{host.KeyA, gui.KeyA},
		KeyMapping{host.KeyC, gui.KeyC},
		KeyMapping{host.KeyV, gui.KeyV},
		KeyMapping{host.KeyX, gui.KeyX},
		KeyMapping{host.KeyY, gui.KeyY},
		KeyMapping{host.KeyZ, gui.KeyZ},

		KeyMapping{host.KeyTab, gui.KeyTab},

		KeyMapping{host.KeyLeftArrow, gui.KeyLeftArrow},
		KeyMapping{host.KeyRightArrow, gui.KeyRightArrow},
		KeyMapping{host.KeyUpArrow, gui.KeyUpArrow},
		KeyMapping{host.KeyDownArrow, gui.KeyDownArrow},

		KeyMapping{host.KeyPageUp, gui.KeyPageUp},
		KeyMapping{host.KeyPageDown, gui.KeyPageDown},

		KeyMapping{host.KeyHome, gui.KeyHome},
		KeyMapping{host.KeyEnd, gui.KeyEnd},
		KeyMapping{host.KeyInsert, gui.KeyInsert},
		KeyMapping{host.KeyDelete, gui.KeyDelete},
		KeyMapping{host.KeyBackspace, gui.KeyBackspace},

		KeyMapping{host.KeySpace, gui.KeySpace},
		KeyMapping{host.KeyEscape, gui.KeyEscape},
		KeyMapping{host.KeyReturn, gui.KeyEnter},
		KeyMapping{host.KeyKeypadEnter, gui.KeyKeypadEnter},
	)
}

// With returns a new KeyMap with extra appended, sorted by physical key
// so the result does not depend on map iteration order. m is unchanged.
func (m KeyMap) With(extra map[host.KeyCode]gui.Key) KeyMap {
	if len(extra) == 0 {
		return m
	}
	added := make([]KeyMapping, 0, len(extra))
	for phys, logical := range extra {
		added = append(added, KeyMapping{Physical: phys, Logical: logical})
	}
	sort.Slice(added, func(i, j int) bool {
		return added[i].Physical < added[j].Physical
	})

	all := make([]KeyMapping, 0, len(m.entries)+len(added))
	all = append(all, m.entries...)
	all = append(all, added...)
	return NewKeyMap(all...)
}

// Len returns the number of entries.
func (m KeyMap) Len() int {
	return len(m.entries)
}

// Lookup returns the logical key mapped to phys.
func (m KeyMap) Lookup(phys host.KeyCode) (gui.Key, bool) {
	for _, e := range m.entries {
		if e.Physical == phys {
			return e.Logical, true
		}
	}
	return gui.KeyNone, false
}

// Entries returns a copy of the entries in order.
func (m KeyMap) Entries() []KeyMapping {
	out := make([]KeyMapping, len(m.entries))
	copy(out, m.entries)
	return out
}

// Each calls fn for every entry in order.
func (m KeyMap) Each(fn func(KeyMapping)) {
	for _, e := range m.entries {
		fn(e)
	}
}

// LogicalKeys returns the distinct logical keys in first-seen order.
func (m KeyMap) LogicalKeys() []gui.Key {
	var seen [gui.KeyCount]bool
	var out []gui.Key
	for _, e := range m.entries {
		if !seen[e.Logical] {
			seen[e.Logical] = true
			out = append(out, e.Logical)
		}
	}
	return out
}
