package chunk

import (
	"fmt"
	"sync"

	"github.com/macmv/bamboo/pos"
)

// PosError reports that a block position fell outside a chunk's valid
// range, or outside 0..16 once reduced to a section-relative position.
type PosError struct {
	Pos pos.Pos
	Msg string
}

func (e *PosError) Error() string {
	return fmt.Sprintf("invalid position: %v %s", e.Pos, e.Msg)
}

// TileEntity is an opaque handle to a tile entity owned by the surrounding
// game logic (a chest's inventory, a sign's text, ...). The chunk only
// tracks which positions have one; it never interprets the contents.
type TileEntity any

// TileEntityFactory is consulted by Chunk whenever a block changes, to
// decide whether the new block kind needs a tile entity and to construct
// it. The core has no block-kind knowledge of its own — this indirection
// keeps Chunk decoupled from the block package, the same way dragonfly's
// chunk package takes a package-level StateToRuntimeID function instead of
// importing its block registry directly.
type TileEntityFactory func(p pos.Pos, globalID uint32) (TileEntity, bool)

// Chunk is a vertical stack of Sections, addressed by an absolute Y range
// starting at minY. A single RWMutex serializes every mutation and read
// against the chunk's sections and tile entities, matching the
// one-lock-per-chunk concurrency model: multiple chunks may be mutated
// concurrently, but operations within a chunk observe strict program
// order.
type Chunk struct {
	mu sync.RWMutex

	minY   int32
	height int32
	maxBpe uint8

	sections []*Section

	tileEntities map[pos.Pos]TileEntity
	factory      TileEntityFactory
}

// NewChunk creates an all-air chunk spanning height blocks starting at
// minY. height must be a multiple of 16. factory may be nil if the caller
// never places blocks that need tile entities.
func NewChunk(minY, height int32, maxBpe uint8, factory TileEntityFactory) *Chunk {
	if height%16 != 0 {
		panic(fmt.Sprintf("chunk: height %d is not a multiple of 16", height))
	}
	n := int(height / 16)
	sections := make([]*Section, n)
	for i := range sections {
		sections[i] = NewSection(maxBpe)
	}
	return &Chunk{
		minY:         minY,
		height:       height,
		maxBpe:       maxBpe,
		sections:     sections,
		tileEntities: map[pos.Pos]TileEntity{},
		factory:      factory,
	}
}

// MinY returns the lowest valid absolute Y in the chunk.
func (c *Chunk) MinY() int32 { return c.minY }

// Height returns the chunk's vertical extent in blocks.
func (c *Chunk) Height() int32 { return c.height }

// NumSections returns the number of vertical sections.
func (c *Chunk) NumSections() int { return len(c.sections) }

// Section returns the section at the given section index (0 at minY).
func (c *Chunk) Section(i int) *Section {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.sections[i]
}

// resolve maps an absolute position to a (section index, section-relative
// position) pair, or an error if the position is outside the chunk.
func (c *Chunk) resolve(p pos.Pos) (int, pos.SectionRelPos, error) {
	relY := p.Y - c.minY
	if relY < 0 || relY >= c.height {
		return 0, pos.SectionRelPos{}, &PosError{Pos: p, Msg: "is outside the chunk's Y range"}
	}
	secIdx := int(relY / 16)
	rel := pos.NewSectionRelPos(uint8(p.ChunkRelX()), uint8(relY%16), uint8(p.ChunkRelZ()))
	return secIdx, rel, nil
}

// GetBlock returns the global state id at p.
func (c *Chunk) GetBlock(p pos.Pos) (uint32, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	secIdx, rel, err := c.resolve(p)
	if err != nil {
		return 0, err
	}
	return c.sections[secIdx].GetBlock(rel), nil
}

// SetBlock writes ty at p, creating or destroying a tile entity as needed.
func (c *Chunk) SetBlock(p pos.Pos, ty uint32) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	secIdx, rel, err := c.resolve(p)
	if err != nil {
		return err
	}
	c.sections[secIdx].SetBlock(rel, ty)
	c.updateTileEntity(p, ty)
	return nil
}

func (c *Chunk) updateTileEntity(p pos.Pos, ty uint32) {
	if c.factory == nil {
		return
	}
	delete(c.tileEntities, p)
	if te, ok := c.factory(p, ty); ok {
		c.tileEntities[p] = te
	}
}

// TileEntity returns the tile entity at p, if any.
func (c *Chunk) TileEntity(p pos.Pos) (TileEntity, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	te, ok := c.tileEntities[p]
	return te, ok
}

// Fill bulk-replaces every block in the rectangular volume bounded by min
// and max (inclusive) with ty. min and max must resolve to the same
// section; callers that need to fill across section boundaries must split
// the call themselves.
func (c *Chunk) Fill(min, max pos.Pos, ty uint32) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	minSec, minRel, err := c.resolve(min)
	if err != nil {
		return err
	}
	maxSec, maxRel, err := c.resolve(max)
	if err != nil {
		return err
	}
	if minSec != maxSec {
		return &PosError{Pos: max, Msg: "fill range spans more than one section"}
	}
	c.sections[minSec].Fill(minRel, maxRel, ty)
	for y := min.Y; y <= max.Y; y++ {
		for z := min.Z; z <= max.Z; z++ {
			for x := min.X; x <= max.X; x++ {
				c.updateTileEntity(pos.New(x, y, z), ty)
			}
		}
	}
	return nil
}
