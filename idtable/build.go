package idtable

import (
	"strconv"

	"github.com/macmv/bamboo/registry"
	"golang.org/x/exp/slices"
)

// nameRegistry is the shape both the old and new authoritative registries
// take: state/type names keyed to a dense id, the same id space Registry
// itself hands out via insertion order.
type nameRegistry = registry.Registry[string, uint32]

// RenameFunc resolves a latest-version name to the (name, meta) pair an
// old registry indexes its pre-flattening state under. Pass
// idtable.Rename for blocks; an identity function (return name, 0) for
// domains with no renaming, such as entities.
type RenameFunc func(newName string) (oldName string, meta uint8)

// BuildTable walks every id in newReg, resolving its old counterpart
// through rename, and records both directions. When multiple new ids
// resolve to the same old id — the common case after un-flattening, since
// several latest-version states can collapse onto one legacy (id, meta)
// combination — the smallest new id wins, because ids are walked in
// ascending order and only the first hit for a given old id is kept.
func BuildTable(oldReg, newReg *nameRegistry, rename RenameFunc) *Table {
	toOld := make([]uint32, newReg.Len())
	toNew := make([]uint32, oldReg.Len())
	seen := make([]bool, oldReg.Len())

	for i := 0; i < newReg.Len(); i++ {
		name, _, _ := newReg.GetIndex(i)
		oldName, meta := rename(name)
		oldID, _, ok := oldReg.Get(oldKey(oldName, meta))
		if !ok {
			continue
		}
		toOld[i] = uint32(oldID)
		if !seen[oldID] {
			toNew[oldID] = uint32(i)
			seen[oldID] = true
		}
	}
	return &Table{ToOld: toOld, ToNew: toNew}
}

// BuildItemTable is BuildTable's item-shaped counterpart: an old id fans
// out across a damage axis, so ToNew is indexed first by old id and then
// by damage.
func BuildItemTable(oldReg, newReg *nameRegistry, rename RenameFunc) *ItemTable {
	toOld := make([]ItemOld, newReg.Len())
	toNew := make([][]uint32, oldReg.Len())
	seen := make([][]bool, oldReg.Len())

	for i := 0; i < newReg.Len(); i++ {
		name, _, _ := newReg.GetIndex(i)
		oldName, meta := rename(name)
		oldID, _, ok := oldReg.Get(oldKey(oldName, 0))
		if !ok {
			continue
		}
		toOld[i] = ItemOld{ID: uint32(oldID), Damage: uint32(meta)}

		for len(toNew[oldID]) <= int(meta) {
			toNew[oldID] = append(toNew[oldID], 0)
			seen[oldID] = append(seen[oldID], false)
		}
		if !seen[oldID][meta] {
			toNew[oldID][meta] = uint32(i)
			seen[oldID][meta] = true
		}
	}
	return &ItemTable{ToOld: toOld, ToNew: toNew}
}

// BuildOptionalTable builds a particle- or enchantment-shaped table: names
// match directly between registries, with no rename step, and an old
// version simply lacking a name yields no mapping rather than 0.
func BuildOptionalTable(oldReg, newReg *nameRegistry) *OptionalTable {
	t := NewOptionalTable(oldReg.Len(), newReg.Len())
	for i := 0; i < newReg.Len(); i++ {
		name, _, _ := newReg.GetIndex(i)
		if oldID, _, ok := oldReg.Get(name); ok {
			t.SetOld(uint32(i), uint32(oldID))
		}
	}
	for i := 0; i < oldReg.Len(); i++ {
		name, _, _ := oldReg.GetIndex(i)
		if newID, _, ok := newReg.Get(name); ok {
			t.SetNew(uint32(i), uint32(newID))
		}
	}
	return t
}

// BuildEntityTable builds the base id mapping for entity types. Per-type
// metadata tables are populated separately with EntityMetadata.SetField,
// since that shape is effectively generated packet-field data rather than
// something derivable from the name registries alone.
func BuildEntityTable(oldReg, newReg *nameRegistry) *EntityTable {
	base := BuildTable(oldReg, newReg, func(name string) (string, uint8) { return name, 0 })
	return &EntityTable{Table: *base, Metadata: make([]*EntityMetadata, newReg.Len())}
}

// CollidingOldIDs reports which old ids more than one new id resolved to
// during a BuildTable or BuildItemTable call, sorted ascending. Every
// listed id kept only its smallest-new-id mapping; the rest were
// discarded by the "smallest new id wins" rule. Useful as an offline
// sanity check when the full rename table is regenerated and a rename
// rule turns out to be ambiguous.
func CollidingOldIDs(toOld []uint32) []uint32 {
	counts := make(map[uint32]int, len(toOld))
	for _, oldID := range toOld {
		counts[oldID]++
	}
	var ids []uint32
	for oldID, n := range counts {
		if oldID != 0 && n > 1 {
			ids = append(ids, oldID)
		}
	}
	slices.Sort(ids)
	return ids
}

func oldKey(name string, meta uint8) string {
	if meta == 0 {
		return name
	}
	return name + ":" + strconv.Itoa(int(meta))
}
