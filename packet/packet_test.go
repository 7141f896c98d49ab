package packet

import (
	"testing"

	"github.com/macmv/bamboo/convert"
	"github.com/macmv/bamboo/idtable"
	"github.com/macmv/bamboo/pos"
	"github.com/macmv/bamboo/version"
)

func testConverter() *convert.TypeConverter {
	c := convert.New()
	blocks := &idtable.Table{ToOld: []uint32{0, 1, 2}, ToNew: []uint32{0, 1, 2}}

	const stickID = 280
	toNew := make([][]uint32, stickID+1)
	toNew[0] = []uint32{0}
	toNew[stickID] = []uint32{1, 2}
	items := &idtable.ItemTable{
		ToOld: []idtable.ItemOld{{ID: 0}, {ID: stickID}, {ID: stickID, Damage: 1}},
		ToNew: toNew,
	}
	entities := &idtable.EntityTable{}
	particles := idtable.NewOptionalTable(1, 1)
	enchantments := idtable.NewOptionalTable(1, 1)

	c.AddVersion(version.V1_12, &convert.PerVersion{
		Blocks: blocks, Items: items, Entities: entities,
		Particles: particles, Enchantments: enchantments,
	})
	return c
}

func TestOutboundPacketWritesLeadingID(t *testing.T) {
	p := NewOutbound(5, version.Latest)
	if p.ID() != 5 {
		t.Fatalf("ID() = %d, want 5", p.ID())
	}

	in, err := NewInbound(p.Buf().Bytes(), version.Latest)
	if err != nil {
		t.Fatalf("NewInbound() err = %v", err)
	}
	if in.ID() != 5 {
		t.Fatalf("inbound ID() = %d, want 5", in.ID())
	}
}

func TestWriteReadPosNewVersion(t *testing.T) {
	p := NewOutbound(0, version.V1_18)
	want := pos.New(100, 64, -200)
	p.WritePos(want)

	in, _ := NewInbound(p.Buf().Bytes(), version.V1_18)
	got, err := in.ReadPos()
	if err != nil || got != want {
		t.Fatalf("ReadPos() = %v, %v, want %v, nil", got, err, want)
	}
}

func TestWriteReadPosOldVersion(t *testing.T) {
	p := NewOutbound(0, version.V1_12)
	want := pos.New(5, 70, 5)
	p.WritePos(want)

	in, _ := NewInbound(p.Buf().Bytes(), version.V1_12)
	got, err := in.ReadPos()
	if err != nil || got != want {
		t.Fatalf("ReadPos() = %v, %v, want %v, nil", got, err, want)
	}
}

func TestWriteReadItemNewVersionRoundTrip(t *testing.T) {
	conv := testConverter()
	p := NewOutbound(0, version.Latest)
	p.WriteItem(&convert.Item{ID: 2, Count: 3}, conv)

	in, _ := NewInbound(p.Buf().Bytes(), version.Latest)
	got, err := in.ReadItem(conv)
	if err != nil {
		t.Fatalf("ReadItem() err = %v", err)
	}
	if got.ID != 2 || got.Count != 3 {
		t.Fatalf("ReadItem() = %+v, want ID=2 Count=3", got)
	}
}

func TestWriteReadItemAbsentNewVersion(t *testing.T) {
	conv := testConverter()
	p := NewOutbound(0, version.Latest)
	p.WriteItem(nil, conv)

	in, _ := NewInbound(p.Buf().Bytes(), version.Latest)
	got, err := in.ReadItem(conv)
	if err != nil || got.ID != 0 {
		t.Fatalf("ReadItem() = %+v, %v, want zero item, nil", got, err)
	}
}

func TestWriteReadItemOldVersionDebugStickRoundTrip(t *testing.T) {
	conv := testConverter()
	p := NewOutbound(0, version.V1_12)
	// new id 2 -> old (stick, damage 1): the debug stick.
	p.WriteItem(&convert.Item{ID: 2, Count: 1}, conv)

	in, _ := NewInbound(p.Buf().Bytes(), version.V1_12)
	got, err := in.ReadItem(conv)
	if err != nil {
		t.Fatalf("ReadItem() err = %v", err)
	}
	if got.ID != 2 {
		t.Fatalf("ReadItem() ID = %d, want 2 (debug stick recognized through the round trip)", got.ID)
	}
}

func TestWriteReadItemOldVersionPlainStick(t *testing.T) {
	conv := testConverter()
	p := NewOutbound(0, version.V1_12)
	// new id 1 -> old (stick, damage 0): a plain stick, no quirk applies.
	p.WriteItem(&convert.Item{ID: 1, Count: 1}, conv)

	in, _ := NewInbound(p.Buf().Bytes(), version.V1_12)
	got, err := in.ReadItem(conv)
	if err != nil {
		t.Fatalf("ReadItem() err = %v", err)
	}
	if got.ID != 1 {
		t.Fatalf("ReadItem() ID = %d, want 1 (plain stick, unchanged)", got.ID)
	}
}
