package chunk

import "testing"

func TestBitArrayGetSet(t *testing.T) {
	b := NewBitArray(5)
	b.Set(0, 31)
	b.Set(1, 4)
	b.Set(4094, 17)
	b.Set(4095, 0)

	if got := b.Get(0); got != 31 {
		t.Fatalf("Get(0) = %d, want 31", got)
	}
	if got := b.Get(1); got != 4 {
		t.Fatalf("Get(1) = %d, want 4", got)
	}
	if got := b.Get(4094); got != 17 {
		t.Fatalf("Get(4094) = %d, want 17", got)
	}
	if got := b.Get(4095); got != 0 {
		t.Fatalf("Get(4095) = %d, want 0", got)
	}
}

func TestBitArrayNeverSplitsAWord(t *testing.T) {
	// bpe 5: 64/5 = 12 entries per word, 60 bits used and 4 wasted.
	b := NewBitArray(5)
	if got := len(b.Words()); got != 342 {
		t.Fatalf("word count = %d, want 342", got)
	}
}

func TestBitArrayIncreaseBpe(t *testing.T) {
	b := NewBitArray(4)
	for i := 0; i < arrayLen; i++ {
		b.Set(i, uint32(i%15))
	}
	b.IncreaseBpe(2)
	if b.Bpe() != 6 {
		t.Fatalf("Bpe() = %d, want 6", b.Bpe())
	}
	for i := 0; i < arrayLen; i++ {
		if got := b.Get(i); got != uint32(i%15) {
			t.Fatalf("Get(%d) = %d, want %d", i, got, i%15)
		}
	}
}

func TestBitArrayShiftAllAbove(t *testing.T) {
	b := NewBitArray(4)
	b.Set(0, 1)
	b.Set(1, 5)
	b.Set(2, 10)
	b.ShiftAllAbove(4, 1)
	if got := b.Get(0); got != 1 {
		t.Fatalf("Get(0) = %d, want 1 (unaffected)", got)
	}
	if got := b.Get(1); got != 6 {
		t.Fatalf("Get(1) = %d, want 6", got)
	}
	if got := b.Get(2); got != 11 {
		t.Fatalf("Get(2) = %d, want 11", got)
	}
}

func TestBitArrayClone(t *testing.T) {
	b := NewBitArray(4)
	b.Set(10, 7)
	dup := b.Clone()
	dup.Set(10, 3)
	if got := b.Get(10); got != 7 {
		t.Fatalf("original mutated through clone: Get(10) = %d", got)
	}
	if got := dup.Get(10); got != 3 {
		t.Fatalf("Get(10) = %d, want 3", got)
	}
}

func TestBitArrayToOldFormatMatchesAtBpe4(t *testing.T) {
	b := NewBitArray(4)
	for i := 0; i < arrayLen; i++ {
		b.Set(i, uint32(i%16))
	}
	old := b.ToOldFormat()
	for i := 0; i < arrayLen; i++ {
		if got := old.Get(i); got != uint32(i%16) {
			t.Fatalf("old.Get(%d) = %d, want %d", i, got, i%16)
		}
	}
}

func TestBitArrayToOldFormatStraddlesWords(t *testing.T) {
	b := NewBitArray(5)
	for i := 0; i < arrayLen; i++ {
		b.Set(i, uint32(i%31))
	}
	old := b.ToOldFormat()
	for i := 0; i < arrayLen; i++ {
		if got := old.Get(i); got != uint32(i%31) {
			t.Fatalf("old.Get(%d) = %d, want %d", i, got, i%31)
		}
	}
}
