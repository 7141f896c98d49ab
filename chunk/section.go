package chunk

import (
	"github.com/brentp/intintmap"

	"github.com/macmv/bamboo/pos"
)

// Section is one 16x16x16 block volume. It starts in palette mode, storing
// compact palette indices in data and an explicit palette of global state
// ids; once the palette would grow past what a single byte of bpe can
// address it switches irreversibly to direct mode, where data holds global
// ids directly and palette/reversePalette are empty.
//
// Section carries no lock of its own — Chunk owns the lock that serializes
// access to every Section it holds, per the one-lock-per-chunk concurrency
// model.
type Section struct {
	data *BitArray

	// palette holds global state ids in strictly ascending order; palette[0]
	// is always air (id 0) while palette mode is active.
	palette []uint32
	// blockAmounts[i] is the number of cells currently holding palette index
	// i. In direct mode it holds a single entry: the air count.
	blockAmounts []uint32
	// reversePalette maps a global id to its palette index. Rebuilt in full
	// whenever the palette is mutated, rather than patched entry-by-entry —
	// palette mode never holds more than 256 entries, so this stays cheap
	// and sidesteps needing an in-place iteration over the map.
	reversePalette *intintmap.Map

	// maxBpe is the bpe used once direct mode is entered.
	maxBpe uint8
}

// NewSection creates a Section that starts out entirely air, in palette
// mode at bpe 4. maxBpe is the bits-per-entry used if the section later
// switches to direct mode.
func NewSection(maxBpe uint8) *Section {
	s := &Section{
		data:         NewBitArray(4),
		palette:      []uint32{0},
		blockAmounts: []uint32{arrayLen},
		maxBpe:       maxBpe,
	}
	s.rebuildReversePalette()
	return s
}

func (s *Section) rebuildReversePalette() {
	m := intintmap.New(len(s.palette)+1, 0.75)
	for i, g := range s.palette {
		m.Put(int64(g), int64(i))
	}
	s.reversePalette = m
}

// Data returns the section's internal BitArray.
func (s *Section) Data() *BitArray { return s.data }

// Palette returns the section's palette. Empty when in direct mode.
func (s *Section) Palette() []uint32 { return s.palette }

// Direct reports whether the section has switched to direct (unpaletted)
// mode.
func (s *Section) Direct() bool { return len(s.palette) == 0 }

// NonAirBlocks returns the number of non-air cells in the section. Because
// block amounts are tracked incrementally, this is an O(1) lookup.
func (s *Section) NonAirBlocks() uint32 { return arrayLen - s.blockAmounts[0] }

func index(p pos.SectionRelPos) int {
	return int(p.Y())<<8 | int(p.Z())<<4 | int(p.X())
}

func (s *Section) getPaletteIdx(p pos.SectionRelPos) uint32 { return s.data.Get(index(p)) }
func (s *Section) setPaletteIdx(p pos.SectionRelPos, id uint32) { s.data.Set(index(p), id) }

// GetBlock returns the global state id at p.
func (s *Section) GetBlock(p pos.SectionRelPos) uint32 {
	id := s.getPaletteIdx(p)
	if s.Direct() {
		return id
	}
	return s.palette[id]
}

// SetBlock writes ty (a global state id) at p, growing the palette or bpe
// as needed.
func (s *Section) SetBlock(p pos.SectionRelPos, ty uint32) {
	prev := s.getPaletteIdx(p)

	if s.Direct() {
		if ty == 0 && prev != 0 {
			s.blockAmounts[0]++
		}
		if prev == 0 && ty != 0 {
			s.blockAmounts[0]--
		}
		s.setPaletteIdx(p, ty)
		return
	}

	pv, ok := s.reversePalette.Get(int64(ty))
	var paletteID uint32
	if ok {
		paletteID = uint32(pv)
		if prev == paletteID {
			// Same block already placed here; no-op.
			return
		}
		s.setPaletteIdx(p, paletteID)
	} else {
		newID := s.insert(ty)
		if s.Direct() {
			// insert() retired the palette: every cell was rewritten from
			// its old palette index to the global id it represented, but p
			// itself still needs ty written into it directly.
			s.setPaletteIdx(p, ty)
			if ty == 0 && prev != 0 {
				s.blockAmounts[0]++
			}
			if prev == 0 && ty != 0 {
				s.blockAmounts[0]--
			}
			return
		}
		if newID <= prev {
			prev++
		}
		s.setPaletteIdx(p, newID)
		paletteID = newID
	}

	s.blockAmounts[paletteID]++
	s.blockAmounts[prev]--
	if s.blockAmounts[prev] == 0 && prev != 0 {
		s.remove(prev)
	}
}

// insert adds ty to the palette, growing bpe or switching to direct mode if
// needed. ty must not already be present in the palette. Returns the new
// palette index, or 0 if the section switched to direct mode (in which case
// the caller must not use the return value as a palette index).
func (s *Section) insert(ty uint32) uint32 {
	// Transition when the next insert would exceed 2^bpe-1 entries, i.e.
	// once the palette is already at that size. This governs both the
	// plain bpe bump below bpe 8 and the one-way switch to direct mode at
	// bpe 8 and above.
	if len(s.palette) >= (1<<s.data.Bpe())-1 {
		if s.data.Bpe() >= 8 {
			s.switchToDirect()
			return 0
		}
		s.data.IncreaseBpe(1)
	}

	newID := uint32(len(s.palette))
	for i, g := range s.palette {
		if g > ty {
			newID = uint32(i)
			break
		}
	}
	s.palette = append(s.palette, 0)
	copy(s.palette[newID+1:], s.palette[newID:])
	s.palette[newID] = ty

	s.blockAmounts = append(s.blockAmounts, 0)
	copy(s.blockAmounts[newID+1:], s.blockAmounts[newID:])
	s.blockAmounts[newID] = 0

	s.rebuildReversePalette()
	// Move every cell's index at or above the new slot up by one. newID is
	// never 0 here: palette[0] is always air, so any ty reaching insert is
	// nonzero and sorts after it.
	s.data.ShiftAllAbove(newID-1, 1)
	return newID
}

// switchToDirect retires the palette: every cell is rewritten from its
// palette index to the global id it pointed at, and bpe grows to maxBpe.
// The caller (insert, via SetBlock) is responsible for writing the block
// that triggered the switch into the now-direct array.
func (s *Section) switchToDirect() {
	s.data.IncreaseBpe(s.maxBpe - s.data.Bpe())
	for i := 0; i < arrayLen; i++ {
		v := s.data.Get(i)
		s.data.Set(i, s.palette[v])
	}
	s.palette = nil
	s.reversePalette = nil
	s.blockAmounts = s.blockAmounts[:1]
}

// remove deletes the palette entry at id, which must not be 0 (air is never
// pruned while palette mode is active).
func (s *Section) remove(id uint32) {
	s.palette = append(s.palette[:id], s.palette[id+1:]...)
	s.blockAmounts = append(s.blockAmounts[:id], s.blockAmounts[id+1:]...)
	s.rebuildReversePalette()
	s.data.ShiftAllAbove(id, -1)
}

// Duplicate returns a deep copy of the section.
func (s *Section) Duplicate() *Section {
	dup := &Section{
		data:         s.data.Clone(),
		palette:      append([]uint32(nil), s.palette...),
		blockAmounts: append([]uint32(nil), s.blockAmounts...),
		maxBpe:       s.maxBpe,
	}
	if !dup.Direct() {
		dup.rebuildReversePalette()
	}
	return dup
}

// LongArray returns the section's data in the new, non-split wire format.
func (s *Section) LongArray() []uint64 { return s.data.Words() }

// OldLongArray returns the section's data re-packed into the old,
// split-across-words wire format that WriteOld emits.
func (s *Section) OldLongArray() []uint64 { return s.data.ToOldFormat().Words() }

// SetFrom adopts an externally produced palette+data pair (e.g. decoded
// from the wire or supplied by a data-generation tool). If palette is not
// strictly ascending with air at index 0, it is re-sorted and every cell is
// rewritten through the resulting remap.
func (s *Section) SetFrom(palette []uint32, data *BitArray) {
	sorted := len(palette) > 0 && palette[0] == 0
	for i := 1; sorted && i < len(palette); i++ {
		if palette[i-1] > palette[i] {
			sorted = false
		}
	}

	if sorted {
		s.palette = palette
		s.data = data
		s.rebuildReversePalette()
		s.blockAmounts = make([]uint32, len(s.palette))
		for i := 0; i < arrayLen; i++ {
			s.blockAmounts[s.data.Get(i)]++
		}
		return
	}

	sortedPalette := append([]uint32(nil), palette...)
	sortUint32(sortedPalette)
	if len(sortedPalette) == 0 || sortedPalette[0] != 0 {
		sortedPalette = append([]uint32{0}, sortedPalette...)
	}

	s.palette = sortedPalette
	s.rebuildReversePalette()

	remap := make([]uint32, len(palette))
	for i, g := range palette {
		idx, _ := s.reversePalette.Get(int64(g))
		remap[i] = uint32(idx)
	}

	s.data = data
	s.blockAmounts = make([]uint32, len(s.palette))
	for i := 0; i < arrayLen; i++ {
		unsorted := s.data.Get(i)
		sortedIdx := remap[unsorted]
		s.data.Set(i, sortedIdx)
		s.blockAmounts[sortedIdx]++
	}
}

func sortUint32(s []uint32) {
	// Small, fixed-size (<=256 before direct mode forces a different path)
	// palette arrays: insertion sort keeps this allocation-free and avoids
	// pulling in sort.Slice's interface overhead on a hot re-sort path.
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}
