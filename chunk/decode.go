package chunk

import "github.com/macmv/bamboo/wire"

// ReadSectionNew decodes one section from the 1.13+ paletted wire form.
// A decoded bpe of 9 or more means direct mode, with no palette on the
// wire; such a section keeps the decoded bpe. maxBpe is stored on the
// section as the bpe for a later switch to direct mode.
func ReadSectionNew(b *wire.WireBuffer, maxBpe uint8) (*Section, error) {
	bpe, err := b.ReadU8()
	if err != nil {
		return nil, err
	}

	var palette []uint32
	direct := bpe >= 9
	if !direct {
		n, err := b.ReadVarInt()
		if err != nil {
			return nil, err
		}
		palette = make([]uint32, n)
		for i := range palette {
			v, err := b.ReadVarInt()
			if err != nil {
				return nil, err
			}
			palette[i] = uint32(v)
		}
	}

	dataLen, err := b.ReadVarInt()
	if err != nil {
		return nil, err
	}
	words := make([]uint64, dataLen)
	for i := range words {
		v, err := b.ReadU64()
		if err != nil {
			return nil, err
		}
		words[i] = v
	}

	data := NewBitArrayFromData(bpe, words)
	s := NewSection(maxBpe)
	if direct {
		s.palette = nil
		s.reversePalette = nil
		s.data = data
		s.blockAmounts = []uint32{0}
		for i := 0; i < arrayLen; i++ {
			if data.Get(i) == 0 {
				s.blockAmounts[0]++
			}
		}
		return s, nil
	}
	s.SetFrom(palette, data)
	return s, nil
}

// ReadSectionOld decodes one section from the pre-1.13 split-word wire
// form, with the same bpe/palette framing as the new format otherwise.
func ReadSectionOld(b *wire.WireBuffer, maxBpe uint8) (*Section, error) {
	bpe, err := b.ReadU8()
	if err != nil {
		return nil, err
	}

	var palette []uint32
	direct := bpe >= 9
	if !direct {
		n, err := b.ReadVarInt()
		if err != nil {
			return nil, err
		}
		palette = make([]uint32, n)
		for i := range palette {
			v, err := b.ReadVarInt()
			if err != nil {
				return nil, err
			}
			palette[i] = uint32(v)
		}
	}

	dataLen, err := b.ReadVarInt()
	if err != nil {
		return nil, err
	}
	words := make([]uint64, dataLen)
	for i := range words {
		v, err := b.ReadU64()
		if err != nil {
			return nil, err
		}
		words[i] = v
	}

	oldData := NewOldBitArrayFromData(bpe, words)
	data := oldData.ToNewFormat()

	s := NewSection(maxBpe)
	if direct {
		s.palette = nil
		s.reversePalette = nil
		s.data = data
		s.blockAmounts = []uint32{0}
		for i := 0; i < arrayLen; i++ {
			if data.Get(i) == 0 {
				s.blockAmounts[0]++
			}
		}
		return s, nil
	}
	s.SetFrom(palette, data)
	return s, nil
}

// ReadChunkNew decodes every section of a chunk with minY/height/maxBpe
// using the 1.13+ wire form, replacing c's sections in place.
func (c *Chunk) ReadChunkNew(b *wire.WireBuffer) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.sections {
		s, err := ReadSectionNew(b, c.maxBpe)
		if err != nil {
			return err
		}
		c.sections[i] = s
	}
	return nil
}

// ReadChunkOld decodes every section of a chunk using the pre-1.13 wire
// form, replacing c's sections in place.
func (c *Chunk) ReadChunkOld(b *wire.WireBuffer) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.sections {
		s, err := ReadSectionOld(b, c.maxBpe)
		if err != nil {
			return err
		}
		c.sections[i] = s
	}
	return nil
}
