package chunk

import "github.com/macmv/bamboo/pos"

// Fill bulk-replaces every cell in the rectangular sub-volume bounded by
// min and max (inclusive on both ends) with ty.
func (s *Section) Fill(min, max pos.SectionRelPos, ty uint32) {
	min, max = pos.MinMax(min, max)

	if min == pos.NewSectionRelPos(0, 0, 0) && max == pos.NewSectionRelPos(15, 15, 15) {
		if ty == 0 {
			*s = *NewSection(s.maxBpe)
		} else {
			data := NewBitArray(4)
			for i := 0; i < arrayLen; i++ {
				data.Set(i, 1)
			}
			*s = Section{
				data:         data,
				palette:      []uint32{0, ty},
				blockAmounts: []uint32{0, arrayLen},
				maxBpe:       s.maxBpe,
			}
			s.rebuildReversePalette()
		}
		return
	}

	if s.Direct() {
		for y := min.Y(); y <= max.Y(); y++ {
			for z := min.Z(); z <= max.Z(); z++ {
				for x := min.X(); x <= max.X(); x++ {
					p := pos.NewSectionRelPos(x, y, z)
					prev := s.getPaletteIdx(p)
					if prev == 0 && ty != 0 {
						s.blockAmounts[0]--
					}
					if prev != 0 && ty == 0 {
						s.blockAmounts[0]++
					}
					s.setPaletteIdx(p, ty)
				}
			}
		}
		return
	}

	for y := min.Y(); y <= max.Y(); y++ {
		for z := min.Z(); z <= max.Z(); z++ {
			for x := min.X(); x <= max.X(); x++ {
				id := s.getPaletteIdx(pos.NewSectionRelPos(x, y, z))
				s.blockAmounts[id]--
			}
		}
	}

	var toRemove []uint32
	for id, amt := range s.blockAmounts {
		if amt == 0 && id != 0 {
			toRemove = append(toRemove, uint32(id))
		}
	}
	for i := len(toRemove) - 1; i >= 0; i-- {
		s.remove(toRemove[i])
	}

	var paletteID uint32
	if pv, ok := s.reversePalette.Get(int64(ty)); ok {
		paletteID = uint32(pv)
	} else {
		paletteID = s.insert(ty)
		if s.Direct() {
			// insert retired the palette mid-call: every cell, including the
			// ones in this fill region, was rewritten from its palette index
			// to the global id it represented. blockAmounts[0] already
			// accounts for the region's former occupants (decremented
			// above), so all that's left is to write ty directly.
			for y := min.Y(); y <= max.Y(); y++ {
				for z := min.Z(); z <= max.Z(); z++ {
					for x := min.X(); x <= max.X(); x++ {
						s.setPaletteIdx(pos.NewSectionRelPos(x, y, z), ty)
					}
				}
			}
			return
		}
	}

	volume := uint32(int(max.X())-int(min.X())+1) * uint32(int(max.Y())-int(min.Y())+1) * uint32(int(max.Z())-int(min.Z())+1)
	s.blockAmounts[paletteID] += volume

	for y := min.Y(); y <= max.Y(); y++ {
		for z := min.Z(); z <= max.Z(); z++ {
			for x := min.X(); x <= max.X(); x++ {
				s.setPaletteIdx(pos.NewSectionRelPos(x, y, z), paletteID)
			}
		}
	}
}
