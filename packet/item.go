package packet

import (
	"github.com/macmv/bamboo/convert"
	"github.com/macmv/bamboo/version"
)

// WriteItem writes item for this packet's version, converting its id and
// damage down from the latest version through conv and applying the
// debug-stick re-tag quirk on old clients.
//
// Pre-1.13: i16 id, u8 count, i16 damage, nbt tag (a bare 0x00 byte
// meaning "no NBT", or a display-name compound when the debug-stick
// quirk fired). 1.13+: bool present, varint id, u8 count, nbt tag.
func (p *TcpPacket) WriteItem(item *convert.Item, conv *convert.TypeConverter) {
	if item == nil || item.ID == 0 {
		if p.ver.AtLeast(version.V1_13) {
			p.buf.WriteBool(false)
		} else {
			p.buf.WriteI16(-1)
		}
		return
	}

	out := *item
	conv.Item(&out, p.ver)

	if p.ver.AtLeast(version.V1_13) {
		p.buf.WriteBool(true)
		p.buf.WriteVarInt(int32(out.ID))
		p.buf.WriteU8(out.Count)
		p.buf.WriteNBT([]byte{0})
		return
	}

	p.buf.WriteI16(int16(out.ID))
	p.buf.WriteU8(out.Count)
	p.buf.WriteI16(int16(out.Damage))
	p.buf.WriteOldItemNBT(out.DisplayName, len(out.Enchantments) > 0)
}

// ReadItem reads an item stack for this packet's version, converting its
// id and damage up to the latest version through conv and inverting the
// debug-stick re-tag quirk if it applies.
func (p *TcpPacket) ReadItem(conv *convert.TypeConverter) (*convert.Item, error) {
	if p.ver.AtLeast(version.V1_13) {
		present, err := p.buf.ReadBool()
		if err != nil {
			return nil, err
		}
		if !present {
			return &convert.Item{}, nil
		}
		rawID, err := p.buf.ReadVarInt()
		if err != nil {
			return nil, err
		}
		count, err := p.buf.ReadU8()
		if err != nil {
			return nil, err
		}
		if _, err := p.buf.ReadNBT(); err != nil {
			return nil, err
		}
		item := &convert.Item{ID: conv.ItemToNew(uint32(rawID), 0, p.ver), Count: count}
		conv.CheckDebugStick(item, p.ver)
		return item, nil
	}

	rawID, err := p.buf.ReadI16()
	if err != nil {
		return nil, err
	}
	if rawID < 0 {
		return &convert.Item{}, nil
	}
	count, err := p.buf.ReadU8()
	if err != nil {
		return nil, err
	}
	damage, err := p.buf.ReadI16()
	if err != nil {
		return nil, err
	}
	// A single 0x00 byte here means "no NBT", a historical quirk distinct
	// from the modern empty-compound encoding; anything else may carry the
	// display name the debug-stick quirk re-tagged the item with.
	displayName, _, err := p.buf.ReadOldItemDisplayNBT()
	if err != nil {
		return nil, err
	}

	item := &convert.Item{
		ID:          conv.ItemToNew(uint32(rawID), uint32(damage), p.ver),
		Damage:      0,
		Count:       count,
		DisplayName: displayName,
	}
	conv.CheckDebugStick(item, p.ver)
	return item, nil
}
