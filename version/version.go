// Package version defines the ordering token that every version-aware
// component in the translation layer is keyed on: IdTable, TypeConverter,
// and TcpPacket all dispatch old-vs-new wire behavior by comparing
// ProtocolVersion values.
package version

// ProtocolVersion identifies one supported Minecraft Java-edition wire
// protocol revision, ordered so that V1 < V2 whenever V1 shipped before
// V2. The zero value is not a valid version; use one of the V1_* constants
// or Latest.
type ProtocolVersion uint32

const (
	V1_8 ProtocolVersion = iota + 1
	V1_9
	V1_10
	V1_11
	V1_12
	V1_13
	V1_13_1
	V1_13_2
	V1_14
	V1_14_1
	V1_14_2
	V1_14_3
	V1_14_4
	V1_15
	V1_15_1
	V1_15_2
	V1_16
	V1_16_1
	V1_16_2
	V1_16_3
	V1_16_4
	V1_16_5
	V1_17
	V1_17_1
	V1_18
	V1_18_1
	V1_18_2
)

// Latest is the canonical version upstream game logic always uses. Every
// other version is an "old version" that the translation layer converts
// to and from.
const Latest = V1_18_2

var names = map[ProtocolVersion]string{
	V1_8: "1.8", V1_9: "1.9", V1_10: "1.10", V1_11: "1.11", V1_12: "1.12",
	V1_13: "1.13", V1_13_1: "1.13.1", V1_13_2: "1.13.2",
	V1_14: "1.14", V1_14_1: "1.14.1", V1_14_2: "1.14.2", V1_14_3: "1.14.3", V1_14_4: "1.14.4",
	V1_15: "1.15", V1_15_1: "1.15.1", V1_15_2: "1.15.2",
	V1_16: "1.16", V1_16_1: "1.16.1", V1_16_2: "1.16.2", V1_16_3: "1.16.3", V1_16_4: "1.16.4", V1_16_5: "1.16.5",
	V1_17: "1.17", V1_17_1: "1.17.1",
	V1_18: "1.18", V1_18_1: "1.18.1", V1_18_2: "1.18.2",
}

// majors maps every ProtocolVersion onto its Minecraft minor-release
// number (the "14" in 1.14.4), which is what rename tables and
// per-release wire-format switches are keyed on.
var majors = map[ProtocolVersion]uint8{
	V1_8: 8, V1_9: 9, V1_10: 10, V1_11: 11, V1_12: 12,
	V1_13: 13, V1_13_1: 13, V1_13_2: 13,
	V1_14: 14, V1_14_1: 14, V1_14_2: 14, V1_14_3: 14, V1_14_4: 14,
	V1_15: 15, V1_15_1: 15, V1_15_2: 15,
	V1_16: 16, V1_16_1: 16, V1_16_2: 16, V1_16_3: 16, V1_16_4: 16, V1_16_5: 16,
	V1_17: 17, V1_17_1: 17,
	V1_18: 18, V1_18_1: 18, V1_18_2: 18,
}

// String returns the familiar dotted form, e.g. "1.14.4".
func (v ProtocolVersion) String() string {
	if s, ok := names[v]; ok {
		return s
	}
	return "unknown"
}

// Major returns the Minecraft minor-release number, e.g. 14 for 1.14.4.
// ok is false for the zero value.
func (v ProtocolVersion) Major() (maj uint8, ok bool) {
	maj, ok = majors[v]
	return
}

// Before reports whether v shipped strictly before o.
func (v ProtocolVersion) Before(o ProtocolVersion) bool { return v < o }

// AtLeast reports whether v shipped at or after o.
func (v ProtocolVersion) AtLeast(o ProtocolVersion) bool { return v >= o }
