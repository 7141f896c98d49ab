package chunk

import (
	"testing"

	"github.com/macmv/bamboo/pos"
)

func TestFillWholeSectionAir(t *testing.T) {
	s := NewSection(9)
	s.SetBlock(rel(0, 0, 0), 5)
	s.Fill(rel(0, 0, 0), rel(15, 15, 15), 0)

	if got := s.NonAirBlocks(); got != 0 {
		t.Fatalf("NonAirBlocks = %d, want 0", got)
	}
	if got := len(s.Palette()); got != 1 {
		t.Fatalf("Palette length = %d, want 1", got)
	}
}

func TestFillWholeSectionNonAir(t *testing.T) {
	s := NewSection(9)
	s.Fill(rel(0, 0, 0), rel(15, 15, 15), 7)

	if got := s.NonAirBlocks(); got != arrayLen {
		t.Fatalf("NonAirBlocks = %d, want %d", got, arrayLen)
	}
	for i := 0; i < arrayLen; i++ {
		x := uint8(i & 0xf)
		y := uint8((i >> 4) & 0xf)
		z := uint8((i >> 8) & 0xf)
		if got := s.GetBlock(rel(x, y, z)); got != 7 {
			t.Fatalf("GetBlock = %d, want 7", got)
		}
	}
}

func TestFillPartialVolume(t *testing.T) {
	s := NewSection(9)
	s.SetBlock(rel(0, 0, 0), 3)
	s.Fill(rel(0, 0, 0), rel(1, 1, 1), 9)

	for x := uint8(0); x <= 1; x++ {
		for y := uint8(0); y <= 1; y++ {
			for z := uint8(0); z <= 1; z++ {
				if got := s.GetBlock(rel(x, y, z)); got != 9 {
					t.Fatalf("GetBlock(%d,%d,%d) = %d, want 9", x, y, z, got)
				}
			}
		}
	}
	// original block at the corner was overwritten, so 3 must be pruned.
	for _, g := range s.Palette() {
		if g == 3 {
			t.Fatalf("stale palette entry 3 survived: %v", s.Palette())
		}
	}
	if got := s.NonAirBlocks(); got != 8 {
		t.Fatalf("NonAirBlocks = %d, want 8", got)
	}
}

func TestFillAcceptsUnorderedMinMax(t *testing.T) {
	s := NewSection(9)
	s.Fill(rel(1, 1, 1), rel(0, 0, 0), 4)
	if got := s.NonAirBlocks(); got != 8 {
		t.Fatalf("NonAirBlocks = %d, want 8", got)
	}
}

func TestFillInDirectMode(t *testing.T) {
	s := NewSection(9)
	for i := 0; i < arrayLen; i++ {
		x := uint8(i & 0xf)
		y := uint8((i >> 4) & 0xf)
		z := uint8((i >> 8) & 0xf)
		s.SetBlock(rel(x, y, z), uint32(i)+1)
	}
	if !s.Direct() {
		t.Fatalf("section should be in direct mode")
	}
	s.Fill(rel(0, 0, 0), rel(0, 0, 1), 0)
	if got := s.GetBlock(rel(0, 0, 0)); got != 0 {
		t.Fatalf("GetBlock(0,0,0) = %d, want 0", got)
	}
	if got := s.GetBlock(rel(0, 0, 1)); got != 0 {
		t.Fatalf("GetBlock(0,0,1) = %d, want 0", got)
	}
}

func TestFillTriggersDirectModeTransition(t *testing.T) {
	s := NewSection(9)
	// Grow the palette to its bpe-8 cap (255 entries: air plus 254 distinct
	// types) without ever reaching direct mode through SetBlock.
	for i := 1; len(s.Palette()) < 255; i++ {
		s.SetBlock(rel(uint8(i%16), uint8((i/16)%16), uint8((i/256)%16)), uint32(i))
	}
	if s.Direct() {
		t.Fatalf("section switched to direct mode before the palette was full")
	}
	if got := s.NonAirBlocks(); got != 254 {
		t.Fatalf("NonAirBlocks = %d, want 254", got)
	}

	// rel(0,0,0) and rel(0,0,1) are both still air, so the fill frees no
	// palette entry, and filling them with a brand new type overflows the
	// full palette mid-Fill.
	s.Fill(rel(0, 0, 0), rel(0, 0, 1), 300)

	if !s.Direct() {
		t.Fatalf("section should have switched to direct mode")
	}
	if got := s.GetBlock(rel(0, 0, 0)); got != 300 {
		t.Fatalf("GetBlock(0,0,0) = %d, want 300", got)
	}
	if got := s.GetBlock(rel(0, 0, 1)); got != 300 {
		t.Fatalf("GetBlock(0,0,1) = %d, want 300", got)
	}
	// a cell outside the fill region must survive the transition untouched.
	if got := s.GetBlock(rel(2, 0, 0)); got != 2 {
		t.Fatalf("GetBlock(2,0,0) = %d, want 2 (untouched by the fill)", got)
	}
	if got := s.NonAirBlocks(); got != 256 {
		t.Fatalf("NonAirBlocks = %d, want 256", got)
	}
}

func TestChunkFillCrossSectionRejected(t *testing.T) {
	c := NewChunk(0, 32, 9, nil)
	err := c.Fill(pos.New(0, 0, 0), pos.New(1, 17, 1), 5)
	if err == nil {
		t.Fatalf("expected an error for a fill spanning two sections")
	}
}
