// Package pos implements the block position types shared by the chunk,
// wire, and packet layers: an absolute block Pos, and the chunk- and
// section-relative positions used to index into a Section's BitArray.
package pos

import "fmt"

// Pos is an absolute block position in the world.
type Pos struct {
	X, Y, Z int32
}

// New creates a new absolute block position.
func New(x, y, z int32) Pos {
	return Pos{X: x, Y: y, Z: z}
}

func (p Pos) String() string {
	return fmt.Sprintf("Pos(%d %d %d)", p.X, p.Y, p.Z)
}

// Add returns p+o.
func (p Pos) Add(o Pos) Pos {
	return Pos{p.X + o.X, p.Y + o.Y, p.Z + o.Z}
}

// Sub returns p-o.
func (p Pos) Sub(o Pos) Pos {
	return Pos{p.X - o.X, p.Y - o.Y, p.Z - o.Z}
}

// DirFromByte decodes the legacy single-byte face direction used by
// pre-1.14 block-placement packets into a unit offset. Values outside
// 0..6 decode to the zero offset.
func DirFromByte(v uint8) Pos {
	switch v {
	case 0:
		return Pos{0, -1, 0}
	case 1:
		return Pos{0, 1, 0}
	case 2:
		return Pos{0, 0, -1}
	case 3:
		return Pos{0, 0, 1}
	case 4:
		return Pos{-1, 0, 0}
	case 5:
		return Pos{1, 0, 0}
	default:
		return Pos{0, 0, 0}
	}
}

// FromU64 decodes a block position packed the way 1.14+ clients expect:
// (x:26, z:26, y:12) as (x<<38)|(z<<12)|y, each field sign-extended.
func FromU64(v uint64) Pos {
	x := int32(int64(v) >> 38)
	y := int32((int64(v) << 52) >> 52)
	z := int32((int64(v) << 26) >> 38)
	return New(x, y, z)
}

// FromOldU64 decodes a block position packed the way pre-1.14 clients
// expect: (x:26, y:12, z:26) as (x<<38)|(y<<26)|z, each field sign-extended.
func FromOldU64(v uint64) Pos {
	x := int32(int64(v) >> 38)
	y := int32((int64(v) << 26) >> 52)
	z := int32((int64(v) << 38) >> 38)
	return New(x, y, z)
}

// ToU64 packs p the way 1.14+ clients expect.
func (p Pos) ToU64() uint64 {
	x, y, z := uint64(uint32(p.X)), uint64(uint32(p.Y)), uint64(uint32(p.Z))
	return ((x & 0x3ffffff) << 38) | ((z & 0x3ffffff) << 12) | (y & 0xfff)
}

// ToOldU64 packs p the way pre-1.14 clients expect.
func (p Pos) ToOldU64() uint64 {
	x, y, z := uint64(uint32(p.X)), uint64(uint32(p.Y)), uint64(uint32(p.Z))
	return ((x & 0x3ffffff) << 38) | ((y & 0xfff) << 26) | (z & 0x3ffffff)
}

// ChunkX returns the chunk X of p, floor-divided by 16.
func (p Pos) ChunkX() int32 { return floorDiv16(p.X) }

// ChunkZ returns the chunk Z of p, floor-divided by 16.
func (p Pos) ChunkZ() int32 { return floorDiv16(p.Z) }

// ChunkRelX returns the X coordinate within 0..16.
func (p Pos) ChunkRelX() int32 { return floorMod16(p.X) }

// ChunkRelY returns the Y coordinate within 0..16.
func (p Pos) ChunkRelY() int32 { return floorMod16(p.Y) }

// ChunkRelZ returns the Z coordinate within 0..16.
func (p Pos) ChunkRelZ() int32 { return floorMod16(p.Z) }

// ChunkRel returns p with X and Z reduced to the 0,0 chunk column. Y is
// unchanged.
func (p Pos) ChunkRel() Pos {
	return Pos{X: p.ChunkRelX(), Y: p.Y, Z: p.ChunkRelZ()}
}

func floorDiv16(v int32) int32 {
	if v < 0 {
		return (v+1)/16 - 1
	}
	return v / 16
}

func floorMod16(v int32) int32 {
	return (v%16 + 16) % 16
}

// SectionRelPos is a position relative to a 16x16x16 section. X, Y and Z
// are always within 0..16.
type SectionRelPos struct {
	x, y, z uint8
}

// NewSectionRelPos creates a section-relative position. Panics if x, y or z
// is 16 or greater.
func NewSectionRelPos(x, y, z uint8) SectionRelPos {
	if x >= 16 || y >= 16 || z >= 16 {
		panic(fmt.Sprintf("pos: x, y and z must be within 0..16, got (%d %d %d)", x, y, z))
	}
	return SectionRelPos{x, y, z}
}

func (p SectionRelPos) X() uint8 { return p.x }
func (p SectionRelPos) Y() uint8 { return p.y }
func (p SectionRelPos) Z() uint8 { return p.z }

func (p SectionRelPos) String() string {
	return fmt.Sprintf("SectionRelPos(%d %d %d)", p.x, p.y, p.z)
}

// AsPos returns p as an absolute position in the 0,0,0 section.
func (p SectionRelPos) AsPos() Pos {
	return New(int32(p.x), int32(p.y), int32(p.z))
}

// MinMax returns (a, b) reordered component-wise so that a holds the
// minimum and b the maximum of each axis.
func MinMax(a, b SectionRelPos) (SectionRelPos, SectionRelPos) {
	min := SectionRelPos{minU8(a.x, b.x), minU8(a.y, b.y), minU8(a.z, b.z)}
	max := SectionRelPos{maxU8(a.x, b.x), maxU8(a.y, b.y), maxU8(a.z, b.z)}
	return min, max
}

func minU8(a, b uint8) uint8 {
	if a < b {
		return a
	}
	return b
}

func maxU8(a, b uint8) uint8 {
	if a > b {
		return a
	}
	return b
}
