package pos

import "testing"

func TestPosRoundTripNew(t *testing.T) {
	p := New(-15555, -120, -105661)
	got := FromU64(p.ToU64())
	if got != p {
		t.Fatalf("new-format round trip: got %v, want %v", got, p)
	}
}

func TestPosRoundTripOld(t *testing.T) {
	p := New(-15555, -120, -105661)
	got := FromOldU64(p.ToOldU64())
	if got != p {
		t.Fatalf("old-format round trip: got %v, want %v", got, p)
	}
}

func TestPosRoundTripRanges(t *testing.T) {
	for x := int32(-30); x < 30; x += 7 {
		for y := int32(-20); y < 20; y += 5 {
			for z := int32(-30); z < 30; z += 11 {
				p := New(x, y, z)
				if got := FromU64(p.ToU64()); got != p {
					t.Fatalf("new-format round trip for %v: got %v", p, got)
				}
				if got := FromOldU64(p.ToOldU64()); got != p {
					t.Fatalf("old-format round trip for %v: got %v", p, got)
				}
			}
		}
	}
}

func TestDirFromByte(t *testing.T) {
	cases := map[uint8]Pos{
		0: {0, -1, 0},
		1: {0, 1, 0},
		2: {0, 0, -1},
		3: {0, 0, 1},
		4: {-1, 0, 0},
		5: {1, 0, 0},
		6: {0, 0, 0},
		99: {0, 0, 0},
	}
	for in, want := range cases {
		if got := DirFromByte(in); got != want {
			t.Errorf("DirFromByte(%d) = %v, want %v", in, got, want)
		}
	}
}

func TestChunkRel(t *testing.T) {
	p := New(-5, 20, -20)
	if got := p.ChunkRelX(); got != 11 {
		t.Errorf("ChunkRelX() = %d, want 11", got)
	}
	if got := p.ChunkX(); got != -1 {
		t.Errorf("ChunkX() = %d, want -1", got)
	}
	if got := p.ChunkRelZ(); got != 12 {
		t.Errorf("ChunkRelZ() = %d, want 12", got)
	}
	if got := p.ChunkZ(); got != -2 {
		t.Errorf("ChunkZ() = %d, want -2", got)
	}
}

func TestSectionRelPosPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for out-of-range component")
		}
	}()
	NewSectionRelPos(16, 0, 0)
}

func TestMinMax(t *testing.T) {
	a := NewSectionRelPos(1, 5, 6)
	b := NewSectionRelPos(3, 3, 3)
	min, max := MinMax(a, b)
	if min != NewSectionRelPos(1, 3, 3) {
		t.Errorf("min = %v, want (1,3,3)", min)
	}
	if max != NewSectionRelPos(3, 5, 6) {
		t.Errorf("max = %v, want (3,5,6)", max)
	}
}
