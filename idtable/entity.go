package idtable

// MetadataType tags the wire shape of a single entity metadata field, so
// that a field can be reserialized for an old client even when that
// client's encoding differs from the latest version's (a 1.8 client reads
// an Int where 1.18 would send a VarInt, for instance).
type MetadataType uint8

const (
	MetaByte MetadataType = iota
	MetaVarInt
	MetaLong
	MetaShort
	MetaInt
	MetaFloat
	MetaString
	MetaChat
	MetaOptChat
	MetaItem
	MetaBool
	MetaRotation
	MetaPosition
	MetaOptPosition
	MetaDirection
	MetaOptUUID
	MetaBlockID
	MetaNBT
	MetaParticle
	MetaVillagerData
	MetaOptVarInt
	MetaPose
)

// EntityMetadata translates metadata field indices for a single
// (new entity type, old version) pair.
type EntityMetadata struct {
	// ToOld is indexed by new field index; it holds the corresponding old
	// field index.
	ToOld []uint8
	// NewTypes is indexed by new field index.
	NewTypes []MetadataType
	// OldTypes is indexed by old field index. hasOldType reports whether a
	// slot is populated, since not every old field index need be in use.
	OldTypes   []MetadataType
	hasOldType []bool
}

// NewEntityMetadata allocates an EntityMetadata able to hold newFieldCount
// new-version fields and oldFieldCount old-version fields.
func NewEntityMetadata(newFieldCount, oldFieldCount int) *EntityMetadata {
	return &EntityMetadata{
		ToOld:      make([]uint8, newFieldCount),
		NewTypes:   make([]MetadataType, newFieldCount),
		OldTypes:   make([]MetadataType, oldFieldCount),
		hasOldType: make([]bool, oldFieldCount),
	}
}

// SetField records that new field newIdx (of type newType) corresponds to
// old field oldIdx (of type oldType).
func (m *EntityMetadata) SetField(newIdx uint8, newType MetadataType, oldIdx uint8, oldType MetadataType) {
	m.ToOld[newIdx] = oldIdx
	m.NewTypes[newIdx] = newType
	m.OldTypes[oldIdx] = oldType
	m.hasOldType[oldIdx] = true
}

// EntityTable translates entity type ids and, per type, their metadata
// field indices.
type EntityTable struct {
	Table
	// Metadata is indexed by new (latest-version) entity type id.
	Metadata []*EntityMetadata
}

// MetadataToOld returns the old field index for field fieldIdx on entity
// type ty (a latest-version type id).
func (t *EntityTable) MetadataToOld(ty uint32, fieldIdx uint8) uint8 {
	if int(ty) >= len(t.Metadata) || t.Metadata[ty] == nil {
		return 0
	}
	m := t.Metadata[ty]
	if int(fieldIdx) >= len(m.ToOld) {
		return 0
	}
	return m.ToOld[fieldIdx]
}

// MetadataTypes returns the old field index plus the new and old wire type
// tags for field fieldIdx on entity type ty, so the caller knows both how
// to read the canonical value and how to reserialize it for the old
// client. ok is false if ty or fieldIdx is out of range, or if no old
// field claims that slot.
func (t *EntityTable) MetadataTypes(ty uint32, fieldIdx uint8) (oldIdx uint8, newType, oldType MetadataType, ok bool) {
	if int(ty) >= len(t.Metadata) || t.Metadata[ty] == nil {
		return 0, 0, 0, false
	}
	m := t.Metadata[ty]
	if int(fieldIdx) >= len(m.NewTypes) {
		return 0, 0, 0, false
	}
	oldIdx = m.ToOld[fieldIdx]
	newType = m.NewTypes[fieldIdx]
	if int(oldIdx) >= len(m.OldTypes) || !m.hasOldType[oldIdx] {
		return oldIdx, newType, 0, false
	}
	return oldIdx, newType, m.OldTypes[oldIdx], true
}
