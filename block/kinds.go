package block

// DefaultKinds returns a representative set of block Kinds covering the
// boolean and enum Prop shapes: boolean connection flags (fences),
// bounded enums with a shape axis (stairs), and a plain directional enum
// (a thin, single-axis block like a torch or lever). None of them has a
// PropInt property. A full server
// ships a generated table covering every block in the game; this is the
// fixed subset exercised directly by tests and by callers that don't
// need the rest.
func DefaultKinds() []*Kind {
	return []*Kind{
		StairKind("oak_stairs", 0),
		FenceKind("oak_fence", 1000),
		ThinKind("lever", 2000),
	}
}

// StairKind describes a stair block: the direction it faces, whether it's
// upside down, the corner shape formed with its neighbors, and whether
// it's sitting in water.
func StairKind(name string, base uint32) *Kind {
	return &Kind{
		Name:      name,
		BaseState: base,
		Props: []Prop{
			{Name: "facing", Kind: PropEnum, Variants: []string{"north", "south", "west", "east"}},
			{Name: "half", Kind: PropEnum, Variants: []string{"top", "bottom"}},
			{Name: "shape", Kind: PropEnum, Variants: []string{"straight", "inner_left", "inner_right", "outer_left", "outer_right"}},
			{Name: "waterlogged", Kind: PropBool},
		},
	}
}

// FenceKind describes a fence block: a boolean connection flag for each
// horizontal neighbor, plus waterlogged.
func FenceKind(name string, base uint32) *Kind {
	return &Kind{
		Name:      name,
		BaseState: base,
		Props: []Prop{
			{Name: "north", Kind: PropBool},
			{Name: "south", Kind: PropBool},
			{Name: "east", Kind: PropBool},
			{Name: "west", Kind: PropBool},
			{Name: "waterlogged", Kind: PropBool},
		},
	}
}

// ThinKind describes a single-axis directional block attached to one
// face, such as a lever or button: the face it's mounted on and the
// direction it points along that face.
func ThinKind(name string, base uint32) *Kind {
	return &Kind{
		Name:      name,
		BaseState: base,
		Props: []Prop{
			{Name: "face", Kind: PropEnum, Variants: []string{"floor", "wall", "ceiling"}},
			{Name: "facing", Kind: PropEnum, Variants: []string{"north", "south", "west", "east"}},
			{Name: "powered", Kind: PropBool},
		},
	}
}
