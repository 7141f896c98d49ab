// Package convert implements TypeConverter, the runtime-facing half of the
// translation layer: given a set of IdTables built offline, it answers the
// block/item/entity/particle/enchantment id conversions every
// version-aware wire operation needs.
package convert

import (
	"github.com/macmv/bamboo/idtable"
	"github.com/macmv/bamboo/version"
)

// stickID and debugStickDamage identify the pre-1.13 item (id, damage)
// pair that the debug-stick quirk below recognizes and re-tags.
const (
	stickID         = 280
	debugStickDamage = 1
)

// DebugStickName is the display name applied to a debug stick so a later
// CheckDebugStick call can tell it apart from a plain stick: after the
// quirk both share the same id and damage, and only the name differs.
const DebugStickName = "§rDebug Stick"

// PerVersion holds the id tables built for one old version.
type PerVersion struct {
	Blocks       *idtable.Table
	Items        *idtable.ItemTable
	Entities     *idtable.EntityTable
	Particles    *idtable.OptionalTable
	Enchantments *idtable.OptionalTable
}

// TypeConverter answers every id conversion the wire layer needs, for
// every old version it was built with. It holds no mutable state past
// construction, so a single instance is shared across every connection.
type TypeConverter struct {
	versions map[version.ProtocolVersion]*PerVersion
}

// New creates a TypeConverter with no versions registered. Callers add one
// PerVersion per supported old version with AddVersion.
func New() *TypeConverter {
	return &TypeConverter{versions: map[version.ProtocolVersion]*PerVersion{}}
}

// AddVersion registers the id tables for ver. Panics if ver was already
// registered.
func (c *TypeConverter) AddVersion(ver version.ProtocolVersion, tables *PerVersion) {
	if _, ok := c.versions[ver]; ok {
		panic("convert: version already registered")
	}
	c.versions[ver] = tables
}

func (c *TypeConverter) forVersion(ver version.ProtocolVersion) *PerVersion {
	pv, ok := c.versions[ver]
	if !ok {
		panic("convert: unknown version")
	}
	return pv
}

// BlockToNew converts a block id from ver into the latest version. Air
// (id 0) always maps to air, and the latest version passes through
// unchanged.
func (c *TypeConverter) BlockToNew(id uint32, ver version.ProtocolVersion) uint32 {
	if id == 0 {
		return 0
	}
	if ver == version.Latest {
		return id
	}
	return c.forVersion(ver).Blocks.NewFromOld(id)
}

// BlockToOld converts a latest-version block id into the equivalent id for
// ver.
func (c *TypeConverter) BlockToOld(id uint32, ver version.ProtocolVersion) uint32 {
	if ver == version.Latest {
		return id
	}
	return c.forVersion(ver).Blocks.OldFromNew(id)
}

// ItemToNew converts an old (id, damage) item pair from ver into a
// latest-version item id.
func (c *TypeConverter) ItemToNew(id, damage uint32, ver version.ProtocolVersion) uint32 {
	if id == 0 {
		return 0
	}
	if ver == version.Latest {
		return id
	}
	return c.forVersion(ver).Items.NewFromOld(id, damage)
}

// ItemToOld converts a latest-version item id into the (id, damage) pair
// ver expects.
func (c *TypeConverter) ItemToOld(id uint32, ver version.ProtocolVersion) (oldID, damage uint32) {
	if ver == version.Latest {
		return id, 0
	}
	out := c.forVersion(ver).Items.OldFromNew(id)
	return out.ID, out.Damage
}

// EntityToNew converts an entity type id from ver into the latest version.
func (c *TypeConverter) EntityToNew(id uint32, ver version.ProtocolVersion) uint32 {
	if id == 0 {
		return 0
	}
	if ver == version.Latest {
		return id
	}
	return c.forVersion(ver).Entities.NewFromOld(id)
}

// EntityToOld converts a latest-version entity type id into the
// equivalent id for ver.
func (c *TypeConverter) EntityToOld(id uint32, ver version.ProtocolVersion) uint32 {
	if ver == version.Latest {
		return id
	}
	return c.forVersion(ver).Entities.OldFromNew(id)
}

// EntityMetadataToOld converts a latest-version metadata field index for
// entity type ty into the field index ver expects.
func (c *TypeConverter) EntityMetadataToOld(ty uint32, id uint8, ver version.ProtocolVersion) uint8 {
	if ver == version.Latest {
		return id
	}
	return c.forVersion(ver).Entities.MetadataToOld(ty, id)
}

// EntityMetadataTypes returns the old field index plus the new and old
// wire type tags for metadata field id on entity type ty, so the encoder
// knows both how to read the canonical value and how to reserialize it.
func (c *TypeConverter) EntityMetadataTypes(ty uint32, id uint8, ver version.ProtocolVersion) (oldIdx uint8, newType, oldType idtable.MetadataType, ok bool) {
	return c.forVersion(ver).Entities.MetadataTypes(ty, id)
}

// ParticleToNew converts a particle id from ver into the latest version.
// ok is false if ver's client has no equivalent particle, meaning the
// packet carrying it should not be sent.
func (c *TypeConverter) ParticleToNew(id uint32, ver version.ProtocolVersion) (uint32, bool) {
	if ver == version.Latest {
		return id, true
	}
	return c.forVersion(ver).Particles.NewFromOld(id)
}

// ParticleToOld converts a latest-version particle id into ver's id.
func (c *TypeConverter) ParticleToOld(id uint32, ver version.ProtocolVersion) (uint32, bool) {
	if ver == version.Latest {
		return id, true
	}
	return c.forVersion(ver).Particles.OldFromNew(id)
}

// EnchantmentToNew converts an enchantment id from ver into the latest
// version.
func (c *TypeConverter) EnchantmentToNew(id uint32, ver version.ProtocolVersion) (uint32, bool) {
	if ver == version.Latest {
		return id, true
	}
	return c.forVersion(ver).Enchantments.NewFromOld(id)
}

// EnchantmentToOld converts a latest-version enchantment id into ver's id.
func (c *TypeConverter) EnchantmentToOld(id uint32, ver version.ProtocolVersion) (uint32, bool) {
	if ver == version.Latest {
		return id, true
	}
	return c.forVersion(ver).Enchantments.OldFromNew(id)
}
