package chunk

import (
	"testing"

	"github.com/macmv/bamboo/pos"
	"github.com/macmv/bamboo/wire"
)

func TestSectionWriteReadNewRoundTrip(t *testing.T) {
	s := NewSection(8)
	s.SetBlock(rel(0, 0, 0), 5)
	s.SetBlock(rel(1, 2, 3), 9)
	s.SetBlock(rel(15, 15, 15), 5)

	b := wire.New(nil)
	s.WriteNew(b)
	b2 := wire.NewAt(b.Bytes(), 0)

	got, err := ReadSectionNew(b2, 8)
	if err != nil {
		t.Fatalf("ReadSectionNew() err = %v", err)
	}
	if got.GetBlock(rel(0, 0, 0)) != 5 {
		t.Fatalf("GetBlock(0,0,0) = %d, want 5", got.GetBlock(rel(0, 0, 0)))
	}
	if got.GetBlock(rel(1, 2, 3)) != 9 {
		t.Fatalf("GetBlock(1,2,3) = %d, want 9", got.GetBlock(rel(1, 2, 3)))
	}
	if got.GetBlock(rel(15, 15, 15)) != 5 {
		t.Fatalf("GetBlock(15,15,15) = %d, want 5", got.GetBlock(rel(15, 15, 15)))
	}
	if got.GetBlock(rel(5, 5, 5)) != 0 {
		t.Fatalf("GetBlock(5,5,5) = %d, want 0 (still air)", got.GetBlock(rel(5, 5, 5)))
	}
}

func TestSectionWriteReadOldRoundTrip(t *testing.T) {
	s := NewSection(8)
	for i := uint32(1); i < 20; i++ {
		s.SetBlock(rel(uint8(i%16), uint8((i/16)%16), uint8(i%16)), i)
	}

	b := wire.New(nil)
	s.WriteOld(b)
	b2 := wire.NewAt(b.Bytes(), 0)

	got, err := ReadSectionOld(b2, 8)
	if err != nil {
		t.Fatalf("ReadSectionOld() err = %v", err)
	}
	for i := uint32(1); i < 20; i++ {
		p := rel(uint8(i%16), uint8((i/16)%16), uint8(i%16))
		if got.GetBlock(p) != s.GetBlock(p) {
			t.Fatalf("GetBlock(%v) after old round trip = %d, want %d", p, got.GetBlock(p), s.GetBlock(p))
		}
	}
}

func TestSectionWriteReadDirectModeRoundTrip(t *testing.T) {
	s := NewSection(13)
	for i := uint32(1); i < 300; i++ {
		s.SetBlock(rel(uint8(i%16), uint8((i/16)%16), uint8((i/256)%16)), i)
	}
	if !s.Direct() {
		t.Fatal("expected section to have switched to direct mode")
	}

	b := wire.New(nil)
	s.WriteNew(b)
	b2 := wire.NewAt(b.Bytes(), 0)

	got, err := ReadSectionNew(b2, 13)
	if err != nil {
		t.Fatalf("ReadSectionNew() err = %v", err)
	}
	if !got.Direct() {
		t.Fatal("decoded section should also be in direct mode")
	}
	for i := uint32(1); i < 300; i++ {
		p := rel(uint8(i%16), uint8((i/16)%16), uint8((i/256)%16))
		if got.GetBlock(p) != i {
			t.Fatalf("GetBlock(%v) = %d, want %d", p, got.GetBlock(p), i)
		}
	}
}

func TestChunkWriteReadNewRoundTrip(t *testing.T) {
	c := NewChunk(-64, 384, 8, nil)
	if err := c.SetBlock(pos.New(0, -60, 0), 5); err != nil {
		t.Fatalf("SetBlock() err = %v", err)
	}
	if err := c.SetBlock(pos.New(3, 100, -2), 9); err != nil {
		t.Fatalf("SetBlock() err = %v", err)
	}

	b := wire.New(nil)
	c.WriteNew(b)

	decoded := NewChunk(-64, 384, 8, nil)
	b2 := wire.NewAt(b.Bytes(), 0)
	if err := decoded.ReadChunkNew(b2); err != nil {
		t.Fatalf("ReadChunkNew() err = %v", err)
	}

	got, err := decoded.GetBlock(pos.New(0, -60, 0))
	if err != nil || got != 5 {
		t.Fatalf("GetBlock(0,-60,0) = %d, %v, want 5, nil", got, err)
	}
	got, err = decoded.GetBlock(pos.New(3, 100, -2))
	if err != nil || got != 9 {
		t.Fatalf("GetBlock(3,100,-2) = %d, %v, want 9, nil", got, err)
	}
}
