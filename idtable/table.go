// Package idtable builds and serves the per-(domain, old-version) id
// translation arrays that let a single latest-version world model be
// served to clients running any supported wire protocol revision.
package idtable

// Table is a pair of dense lookup arrays translating ids between a single
// old version and the latest version, for domains with a single flat id
// space and no secondary axis like item damage: blocks, and entity types
// through EntityTable. Particles and enchantments use OptionalTable.
type Table struct {
	// ToOld is indexed by a new (latest-version) id and holds the
	// corresponding old id, or 0 if the new id has no old counterpart.
	ToOld []uint32
	// ToNew is indexed by an old id and holds the smallest new id that
	// maps onto it.
	ToNew []uint32
}

// NewFromOld returns the latest-version id for oldID. Unknown ids and 0
// (air) both yield 0.
func (t *Table) NewFromOld(oldID uint32) uint32 {
	if oldID == 0 || int(oldID) >= len(t.ToNew) {
		return 0
	}
	return t.ToNew[oldID]
}

// OldFromNew returns the old-version id for newID. Unknown ids and 0 (air)
// both yield 0.
func (t *Table) OldFromNew(newID uint32) uint32 {
	if newID == 0 || int(newID) >= len(t.ToOld) {
		return 0
	}
	return t.ToOld[newID]
}

// ItemOld is an old-version item identity: older protocol revisions encode
// item variants as an (id, damage) pair rather than a single flattened id.
type ItemOld struct {
	ID, Damage uint32
}

// ItemTable translates item ids, which carry a damage value on old
// versions.
type ItemTable struct {
	// ToOld is indexed by new id.
	ToOld []ItemOld
	// ToNew is indexed by old id, then by damage.
	ToNew [][]uint32
}

// NewFromOld returns the latest-version item id for (oldID, damage).
func (t *ItemTable) NewFromOld(oldID, damage uint32) uint32 {
	if oldID == 0 || int(oldID) >= len(t.ToNew) {
		return 0
	}
	variants := t.ToNew[oldID]
	if int(damage) >= len(variants) {
		return 0
	}
	return variants[damage]
}

// OldFromNew returns the (old id, damage) pair for a latest-version item
// id.
func (t *ItemTable) OldFromNew(newID uint32) ItemOld {
	if newID == 0 || int(newID) >= len(t.ToOld) {
		return ItemOld{}
	}
	return t.ToOld[newID]
}

// OptionalTable translates ids for domains where an old client may simply
// lack the concept (a newer particle or enchantment): a missing mapping
// means "drop the packet" rather than "fall back to 0".
type OptionalTable struct {
	toOld   []uint32
	hasOld  []bool
	toNew   []uint32
	hasNew  []bool
}

// NewOptionalTable builds an OptionalTable of the given sizes; callers
// populate it with SetOld and SetNew before use.
func NewOptionalTable(oldLen, newLen int) *OptionalTable {
	return &OptionalTable{
		toOld:  make([]uint32, newLen),
		hasOld: make([]bool, newLen),
		toNew:  make([]uint32, oldLen),
		hasNew: make([]bool, oldLen),
	}
}

// SetOld records that newID maps to oldID.
func (t *OptionalTable) SetOld(newID, oldID uint32) {
	t.toOld[newID] = oldID
	t.hasOld[newID] = true
}

// SetNew records that oldID maps to newID.
func (t *OptionalTable) SetNew(oldID, newID uint32) {
	t.toNew[oldID] = newID
	t.hasNew[oldID] = true
}

// NewFromOld returns the latest-version id for oldID, and false if the old
// version has nothing that maps to a new id here.
func (t *OptionalTable) NewFromOld(oldID uint32) (uint32, bool) {
	if int(oldID) >= len(t.toNew) || !t.hasNew[oldID] {
		return 0, false
	}
	return t.toNew[oldID], true
}

// OldFromNew returns the old-version id for newID, and false if that
// client version has nothing that maps to this new id.
func (t *OptionalTable) OldFromNew(newID uint32) (uint32, bool) {
	if int(newID) >= len(t.toOld) || !t.hasOld[newID] {
		return 0, false
	}
	return t.toOld[newID], true
}
