// Package block implements BlockTypeResolver: the static description of
// each block Kind's property space, and the arithmetic that maps a state
// id plus a (property, value) edit to the state id of the resulting
// state.
package block

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/segmentio/fasthash/fnv1a"
)

// PropKind discriminates the domain of a Prop.
type PropKind uint8

const (
	PropBool PropKind = iota
	PropEnum
	PropInt
)

// Prop describes one axis of variation on a Kind.
type Prop struct {
	Name string
	Kind PropKind

	// Variants holds the valid values for a PropEnum.
	Variants []string
	// Min and Max bound a PropInt, inclusive.
	Min, Max int32
}

// Len returns the number of distinct values the property can take.
func (p Prop) Len() int {
	switch p.Kind {
	case PropBool:
		return 2
	case PropEnum:
		return len(p.Variants)
	case PropInt:
		return int(p.Max-p.Min) + 1
	default:
		return 0
	}
}

// Value is a single property value, tagged with the Prop.Kind it must be
// used against.
type Value struct {
	Kind PropKind
	Bool bool
	Enum string
	Int  int32
}

// BoolValue, EnumValue and IntValue construct a Value of the matching
// kind.
func BoolValue(v bool) Value   { return Value{Kind: PropBool, Bool: v} }
func EnumValue(v string) Value { return Value{Kind: PropEnum, Enum: v} }
func IntValue(v int32) Value   { return Value{Kind: PropInt, Int: v} }

// digit returns the property's zero-based digit index for v, i.e. the
// value's position within the property's domain. Boolean encoding is
// inverted on the wire: the state-id digit 0 represents true, 1 false.
func (p Prop) digit(v Value) (int, error) {
	if v.Kind != p.Kind {
		return 0, &PropertyValueMismatchError{Prop: p.Name}
	}
	switch p.Kind {
	case PropBool:
		if v.Bool {
			return 0, nil
		}
		return 1, nil
	case PropEnum:
		for i, variant := range p.Variants {
			if variant == v.Enum {
				return i, nil
			}
		}
		return 0, &InvalidPropertyError{Prop: p.Name, Reason: fmt.Sprintf("unknown variant %q", v.Enum)}
	case PropInt:
		bounds := mgl64.Vec2{float64(p.Min), float64(p.Max)}
		f := float64(v.Int)
		if f < bounds[0] || f > bounds[1] {
			return 0, &InvalidPropertyError{Prop: p.Name, Reason: fmt.Sprintf("value %d outside [%d, %d]", v.Int, p.Min, p.Max)}
		}
		return int(v.Int - p.Min), nil
	default:
		return 0, &InvalidPropertyError{Prop: p.Name, Reason: "property has no recognized kind"}
	}
}

// valueFromDigit is the inverse of digit: given a digit index into the
// property's domain, it reconstructs the Value it represents.
func (p Prop) valueFromDigit(d int) Value {
	switch p.Kind {
	case PropBool:
		return BoolValue(d == 0)
	case PropEnum:
		return EnumValue(p.Variants[d])
	case PropInt:
		return IntValue(p.Min + int32(d))
	default:
		return Value{}
	}
}

// Kind is a block type: a name, the state id of its default (first)
// state, and the ordered list of properties whose combination spans its
// full state range. States are allocated sequentially in declared
// property order with the last property varying fastest, so NumStates
// consecutive ids starting at BaseState belong to this Kind.
type Kind struct {
	Name      string
	BaseState uint32
	Props     []Prop
}

// NumStates returns the number of distinct states this Kind spans. A
// Kind with no properties has exactly one state.
func (k Kind) NumStates() int {
	n := 1
	for _, p := range k.Props {
		n *= p.Len()
	}
	return n
}

// multipliers returns, for each property index, the number of states
// spanned by varying every property after it — the place value of that
// property's digit in the mixed-radix state offset.
func (k Kind) multipliers() []int {
	mults := make([]int, len(k.Props))
	acc := 1
	for i := len(k.Props) - 1; i >= 0; i-- {
		mults[i] = acc
		acc *= k.Props[i].Len()
	}
	return mults
}

// InvalidPropertyError reports an unknown property name or an out-of-domain
// value.
type InvalidPropertyError struct {
	Prop   string
	Reason string
}

func (e *InvalidPropertyError) Error() string {
	return fmt.Sprintf("invalid property %q: %s", e.Prop, e.Reason)
}

// PropertyValueMismatchError reports that a Value's Kind doesn't match the
// property it was given for.
type PropertyValueMismatchError struct {
	Prop string
}

func (e *PropertyValueMismatchError) Error() string {
	return fmt.Sprintf("value kind does not match property %q", e.Prop)
}

// BlockTypeResolver holds every known Kind, indexed by the fnv1a hash of
// its name — a single 64-bit compare per lookup instead of a string
// compare, the same interning trick dragonfly applies to block-state
// strings on its runtime-ID lookup path — and answers property-edit
// queries against a current state id.
type BlockTypeResolver struct {
	kinds map[uint64]*Kind
}

// NewResolver creates a resolver over the given kinds, indexed by name.
// Panics if two kinds share a name (or, astronomically unlikely, hash to
// the same value).
func NewResolver(kinds []*Kind) *BlockTypeResolver {
	r := &BlockTypeResolver{kinds: make(map[uint64]*Kind, len(kinds))}
	for _, k := range kinds {
		h := fnv1a.HashString64(k.Name)
		if _, ok := r.kinds[h]; ok {
			panic(fmt.Sprintf("block: duplicate kind %q", k.Name))
		}
		r.kinds[h] = k
	}
	return r
}

// Kind looks up a registered Kind by name.
func (r *BlockTypeResolver) Kind(name string) (*Kind, bool) {
	k, ok := r.kinds[fnv1a.HashString64(name)]
	return k, ok
}

// Decode splits a state id belonging to kind into its per-property
// values, in declared order.
func (k *Kind) Decode(state uint32) []Value {
	offset := int(state - k.BaseState)
	mults := k.multipliers()
	values := make([]Value, len(k.Props))
	for i, p := range k.Props {
		d := (offset / mults[i]) % p.Len()
		values[i] = p.valueFromDigit(d)
	}
	return values
}

// SetProp computes the state id obtained by changing property name to
// value on the state currently identified by state, which must belong to
// kind.
func (k *Kind) SetProp(state uint32, name string, value Value) (uint32, error) {
	idx := -1
	for i, p := range k.Props {
		if p.Name == name {
			idx = i
			break
		}
	}
	if idx == -1 {
		return 0, &InvalidPropertyError{Prop: name, Reason: "no such property on this kind"}
	}

	newDigit, err := k.Props[idx].digit(value)
	if err != nil {
		return 0, err
	}

	offset := int(state - k.BaseState)
	mults := k.multipliers()
	oldDigit := (offset / mults[idx]) % k.Props[idx].Len()
	offset += (newDigit - oldDigit) * mults[idx]
	return k.BaseState + uint32(offset), nil
}

// SetProp looks up kind by name and delegates to Kind.SetProp.
func (r *BlockTypeResolver) SetProp(kindName string, state uint32, propName string, value Value) (uint32, error) {
	k, ok := r.Kind(kindName)
	if !ok {
		return 0, &InvalidPropertyError{Prop: kindName, Reason: "no such block kind"}
	}
	return k.SetProp(state, propName, value)
}
