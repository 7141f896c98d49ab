package chunk

import "github.com/macmv/bamboo/wire"

// WriteNew serializes the section in the paletted 1.13+ wire form: a
// bits-per-block byte, the palette (only when not in direct mode), and
// the packed data array, each varint-length-prefixed.
func (s *Section) WriteNew(b *wire.WireBuffer) {
	b.WriteU8(s.data.Bpe())
	if !s.Direct() {
		b.WriteVarInt(int32(len(s.palette)))
		for _, id := range s.palette {
			b.WriteVarInt(int32(id))
		}
	}
	words := s.LongArray()
	b.WriteVarInt(int32(len(words)))
	for _, w := range words {
		b.WriteU64(w)
	}
}

// WriteOld serializes the section using the pre-1.13 split-word long
// array layout, with the same bpe/palette/data framing otherwise.
func (s *Section) WriteOld(b *wire.WireBuffer) {
	b.WriteU8(s.data.Bpe())
	if !s.Direct() {
		b.WriteVarInt(int32(len(s.palette)))
		for _, id := range s.palette {
			b.WriteVarInt(int32(id))
		}
	}
	words := s.OldLongArray()
	b.WriteVarInt(int32(len(words)))
	for _, w := range words {
		b.WriteU64(w)
	}
}

// WriteNew serializes every section in the chunk, bottom to top, using
// the 1.13+ wire form.
func (c *Chunk) WriteNew(b *wire.WireBuffer) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, s := range c.sections {
		s.WriteNew(b)
	}
}

// WriteOld serializes every section in the chunk, bottom to top, using
// the pre-1.13 wire form.
func (c *Chunk) WriteOld(b *wire.WireBuffer) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, s := range c.sections {
		s.WriteOld(b)
	}
}
