package idtable

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// renameEntry records that a flattened (latest-version) block name used to
// be a single (name, meta) combination on pre-flattening versions.
type renameEntry struct {
	oldName string
	meta    uint8
}

// renameTable maps a latest-version block name onto the old name/meta pair
// it replaced. It's keyed by the xxhash of the name rather than the name
// itself, the same trade dragonfly makes hashing block-state strings into
// its runtime-ID cache: a single 64-bit compare instead of a string
// compare on every lookup, which matters here since Rename sits on the
// per-block translation path.
//
// This is a representative excerpt covering every named rule of the
// rename table, including one family apiece for logs, leaves, planks and
// slabs; the full table — every wood type, flower and stone variant — is
// generated offline from the block data rather than hand-authored here,
// the same way the shipped table this is modeled on is generated rather
// than written by hand.
var renameTable = buildRenameTable()

func nameHash(name string) uint64 { return xxhash.Sum64String(name) }

func buildRenameTable() map[uint64]renameEntry {
	m := map[uint64]renameEntry{}

	set := func(name string, e renameEntry) { m[nameHash(name)] = e }

	set("grass_block", renameEntry{"grass", 0})
	set("grass", renameEntry{"tallgrass", 1})

	woolColors := []string{
		"white", "orange", "magenta", "light_blue", "yellow", "lime", "pink",
		"gray", "light_gray", "cyan", "purple", "blue", "brown", "green", "red", "black",
	}
	for i, color := range woolColors {
		set(color+"_wool", renameEntry{"wool", uint8(i)})
	}

	for level := 1; level < 16; level++ {
		set(fmt.Sprintf("water_level_%d", level), renameEntry{"flowing_water", uint8(level - 1)})
		set(fmt.Sprintf("lava_level_%d", level), renameEntry{"flowing_lava", uint8(level - 1)})
	}

	// Logs kept their axis on the new name (the pre-flattening meta also
	// folded in bark orientation, 4/8/12, which per-block placement state
	// recovers separately) and stacked four species per old block id.
	logSpecies := []string{"oak", "spruce", "birch", "jungle"}
	for i, species := range logSpecies {
		set(species+"_log", renameEntry{"log", uint8(i)})
	}
	logSpecies2 := []string{"acacia", "dark_oak"}
	for i, species := range logSpecies2 {
		set(species+"_log", renameEntry{"log2", uint8(i)})
	}

	leafSpecies := []string{"oak", "spruce", "birch", "jungle"}
	for i, species := range leafSpecies {
		set(species+"_leaves", renameEntry{"leaves", uint8(i)})
	}
	leafSpecies2 := []string{"acacia", "dark_oak"}
	for i, species := range leafSpecies2 {
		set(species+"_leaves", renameEntry{"leaves2", uint8(i)})
	}

	plankSpecies := []string{"oak", "spruce", "birch", "jungle", "acacia", "dark_oak"}
	for i, species := range plankSpecies {
		set(species+"_planks", renameEntry{"planks", uint8(i)})
	}

	slabSpecies := []string{"stone", "sandstone", "wooden", "cobblestone", "brick", "stone_brick", "nether_brick", "quartz"}
	for i, species := range slabSpecies {
		set(species+"_slab", renameEntry{"stone_slab", uint8(i)})
		set("double_"+species+"_slab", renameEntry{"double_stone_slab", uint8(i)})
	}

	flowerNames := map[string]uint8{
		"poppy": 0, "blue_orchid": 1, "allium": 2, "azure_bluet": 3,
		"red_tulip": 4, "orange_tulip": 5, "white_tulip": 6, "pink_tulip": 7, "oxeye_daisy": 8,
	}
	for name, meta := range flowerNames {
		set(name, renameEntry{"red_flower", meta})
	}

	return m
}

// Rename returns the old block name and metadata value that newName maps
// onto. Names with no rename rule pass through unchanged at meta 0 — this
// covers both blocks that never changed name and the water/lava level-0
// and wool-less cases.
func Rename(newName string) (oldName string, meta uint8) {
	if e, ok := renameTable[nameHash(newName)]; ok {
		return e.oldName, e.meta
	}
	return newName, 0
}
