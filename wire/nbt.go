package wire

// NBT tag type ids, as written on the wire. The translation layer never
// interprets NBT payloads semantically — it only needs to know how many
// bytes a tag occupies so it can copy it between a read buffer and a
// write buffer untouched.
const (
	tagEnd uint8 = iota
	tagByte
	tagShort
	tagInt
	tagLong
	tagFloat
	tagDouble
	tagByteArray
	tagString
	tagList
	tagCompound
	tagIntArray
	tagLongArray
)

// ReadNBT reads one named, root-level NBT compound (or TAG_End, meaning
// "no NBT" in the modern encoding) and returns its raw bytes, including
// the leading type byte, unparsed.
func (b *WireBuffer) ReadNBT() ([]byte, error) {
	start := b.pos
	tag, err := b.ReadU8()
	if err != nil {
		return nil, err
	}
	if tag == tagEnd {
		return b.data[start:b.pos], nil
	}
	if err := b.skipNBTName(); err != nil {
		return nil, err
	}
	if err := b.skipNBTPayload(tag); err != nil {
		return nil, err
	}
	return b.data[start:b.pos], nil
}

// WriteNBT writes raw pre-encoded NBT bytes (as returned by ReadNBT)
// verbatim.
func (b *WireBuffer) WriteNBT(raw []byte) { b.writeBytes(raw) }

// ReadOldItemNBT reads the pre-1.13 item NBT convention, where a single
// 0x00 byte means "no NBT" and anything else is a full named compound
// starting with its own type byte.
func (b *WireBuffer) ReadOldItemNBT() ([]byte, error) {
	tag, err := b.ReadU8()
	if err != nil {
		return nil, err
	}
	if tag == tagEnd {
		return []byte{tagEnd}, nil
	}
	start := b.pos - 1
	if err := b.skipNBTName(); err != nil {
		return nil, err
	}
	if err := b.skipNBTPayload(tag); err != nil {
		return nil, err
	}
	return b.data[start:b.pos], nil
}

func (b *WireBuffer) skipNBTName() error {
	_, err := b.readNBTString()
	return err
}

// readNBTString reads a u16-length-prefixed string, the wire shape NBT
// uses both for a tag's name and for a TAG_String's payload.
func (b *WireBuffer) readNBTString() (string, error) {
	n, err := b.ReadU16()
	if err != nil {
		return "", err
	}
	data, err := b.readBytes(int(n))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (b *WireBuffer) writeNBTString(s string) {
	b.WriteU16(uint16(len(s)))
	b.writeBytes([]byte(s))
}

// WriteOldItemNBT writes the pre-1.13 item NBT convention for an item
// that carries a display name and, optionally, a fake enchantment glow:
// a single 0x00 byte means "no NBT" (ReadOldItemNBT's counterpart), and a
// non-empty displayName writes a root compound holding a "display"
// compound with a "Name" string, plus an "ench" list standing in for a
// genuine enchantment when enchanted is set.
func (b *WireBuffer) WriteOldItemNBT(displayName string, enchanted bool) {
	if displayName == "" {
		b.WriteU8(tagEnd)
		return
	}

	b.WriteU8(tagCompound)
	b.writeNBTString("")

	b.WriteU8(tagCompound)
	b.writeNBTString("display")
	b.WriteU8(tagString)
	b.writeNBTString("Name")
	b.writeNBTString(displayName)
	b.WriteU8(tagEnd)

	if enchanted {
		b.WriteU8(tagList)
		b.writeNBTString("ench")
		b.WriteU8(tagCompound)
		b.WriteI32(1)
		b.WriteU8(tagShort)
		b.writeNBTString("id")
		b.WriteI16(0)
		b.WriteU8(tagShort)
		b.writeNBTString("lvl")
		b.WriteI16(1)
		b.WriteU8(tagEnd)
	}

	b.WriteU8(tagEnd)
}

// ReadOldItemDisplayNBT reads the pre-1.13 item NBT convention written by
// WriteOldItemNBT and extracts the display name and whether an "ench"
// list is present, skipping every other field unread.
func (b *WireBuffer) ReadOldItemDisplayNBT() (displayName string, enchanted bool, err error) {
	tag, err := b.ReadU8()
	if err != nil {
		return "", false, err
	}
	if tag == tagEnd {
		return "", false, nil
	}
	if err := b.skipNBTName(); err != nil {
		return "", false, err
	}
	return b.readItemDisplayBody()
}

// readItemDisplayBody walks a compound's children looking for a "display"
// compound (recursing once to find its "Name" string) and an "ench" list,
// skipping every other field.
func (b *WireBuffer) readItemDisplayBody() (displayName string, enchanted bool, err error) {
	for {
		childTag, err := b.ReadU8()
		if err != nil {
			return "", false, err
		}
		if childTag == tagEnd {
			return displayName, enchanted, nil
		}
		name, err := b.readNBTString()
		if err != nil {
			return "", false, err
		}
		switch {
		case childTag == tagCompound && name == "display":
			dn, _, err := b.readItemDisplayBody()
			if err != nil {
				return "", false, err
			}
			displayName = dn
		case childTag == tagString && name == "Name":
			s, err := b.readNBTString()
			if err != nil {
				return "", false, err
			}
			displayName = s
		case childTag == tagList && name == "ench":
			elemTag, err := b.ReadU8()
			if err != nil {
				return "", false, err
			}
			n, err := b.ReadI32()
			if err != nil {
				return "", false, err
			}
			enchanted = n > 0
			for i := int32(0); i < n; i++ {
				if err := b.skipNBTPayload(elemTag); err != nil {
					return "", false, err
				}
			}
		default:
			if err := b.skipNBTPayload(childTag); err != nil {
				return "", false, err
			}
		}
	}
}

func (b *WireBuffer) skipNBTPayload(tag uint8) error {
	switch tag {
	case tagEnd:
		return nil
	case tagByte:
		_, err := b.readBytes(1)
		return err
	case tagShort:
		_, err := b.readBytes(2)
		return err
	case tagInt, tagFloat:
		_, err := b.readBytes(4)
		return err
	case tagLong, tagDouble:
		_, err := b.readBytes(8)
		return err
	case tagByteArray:
		n, err := b.ReadI32()
		if err != nil {
			return err
		}
		_, err = b.readBytes(int(n))
		return err
	case tagString:
		return b.skipNBTName()
	case tagList:
		elemTag, err := b.ReadU8()
		if err != nil {
			return err
		}
		n, err := b.ReadI32()
		if err != nil {
			return err
		}
		for i := int32(0); i < n; i++ {
			if err := b.skipNBTPayload(elemTag); err != nil {
				return err
			}
		}
		return nil
	case tagCompound:
		for {
			childTag, err := b.ReadU8()
			if err != nil {
				return err
			}
			if childTag == tagEnd {
				return nil
			}
			if err := b.skipNBTName(); err != nil {
				return err
			}
			if err := b.skipNBTPayload(childTag); err != nil {
				return err
			}
		}
	case tagIntArray:
		n, err := b.ReadI32()
		if err != nil {
			return err
		}
		_, err = b.readBytes(int(n) * 4)
		return err
	case tagLongArray:
		n, err := b.ReadI32()
		if err != nil {
			return err
		}
		_, err = b.readBytes(int(n) * 8)
		return err
	default:
		return &BufferError{Kind: ErrNBT, Pos: b.pos, Mode: ModeReading, Err: errUnknownTag(tag)}
	}
}

type errUnknownTag uint8

func (e errUnknownTag) Error() string { return "unknown nbt tag type" }
