package convert

import "github.com/macmv/bamboo/version"

// Item is the subset of an item stack the translation layer needs to
// convert between versions. Display name and enchantments are tracked
// only insofar as the debug-stick quirk below needs them; the full NBT
// payload passes through WireBuffer/TcpPacket untouched.
type Item struct {
	ID    uint32
	Damage uint32
	Count  uint8

	DisplayName  string
	Enchantments map[uint32]uint8
}

// Item converts item's id and damage from the latest version down to ver,
// in place, and applies the debug-stick quirk: on 1.12 and earlier, an
// item that resolves to plain stick with damage 1 is a debug stick, and
// those clients have no other way to distinguish it from an ordinary
// stick. Re-tagging it with a display name and a fake enchantment glow
// lets CheckDebugStick recognize it again once it comes back from the
// client.
func (c *TypeConverter) Item(item *Item, ver version.ProtocolVersion) {
	oldID, damage := c.ItemToOld(item.ID, ver)
	item.ID, item.Damage = oldID, damage

	if maj, ok := ver.Major(); ok && maj <= 12 && item.ID == stickID && item.Damage == debugStickDamage {
		item.Damage = 0
		item.DisplayName = DebugStickName
		if item.Enchantments == nil {
			item.Enchantments = map[uint32]uint8{}
		}
		item.Enchantments[0] = 1
	}
}

// CheckDebugStick inverts the Item quirk: if item resolves to plain stick
// and still carries the debug-stick display name, its id is rewritten to
// the latest-version id for stick:1 rather than stick:0, undoing the
// damage rewrite Item applied on the way out.
func (c *TypeConverter) CheckDebugStick(item *Item, ver version.ProtocolVersion) {
	oldID, _ := c.ItemToOld(item.ID, ver)
	if oldID != stickID {
		return
	}
	if item.DisplayName != DebugStickName {
		return
	}
	item.ID = c.ItemToNew(stickID, debugStickDamage, ver)
}
