// Package packet implements TcpPacket, the per-connection wrapper that
// ties a WireBuffer to a client's ProtocolVersion and exposes the
// version-dispatching encodings the rest of the protocol needs: block
// positions and item stacks, both of which differ in shape across the
// 1.13 and 1.14 boundaries.
package packet

import (
	"github.com/macmv/bamboo/pos"
	"github.com/macmv/bamboo/version"
	"github.com/macmv/bamboo/wire"
)

// TcpPacket wraps a WireBuffer with the protocol version of the
// connection it belongs to. Outbound packets get their id varint written
// at construction; inbound packets have it read during parsing, before
// the buffer is handed off to the rest of the packet's decoder.
type TcpPacket struct {
	buf *wire.WireBuffer
	ver version.ProtocolVersion
	id  int32
}

// NewOutbound starts an outbound packet, writing its id as the first
// varint on the wire.
func NewOutbound(id int32, ver version.ProtocolVersion) *TcpPacket {
	p := &TcpPacket{buf: wire.New(nil), ver: ver, id: id}
	p.buf.WriteVarInt(id)
	return p
}

// NewInbound wraps raw packet bytes (id plus body) for an inbound
// packet, reading off the id immediately.
func NewInbound(data []byte, ver version.ProtocolVersion) (*TcpPacket, error) {
	buf := wire.New(data)
	id, err := buf.ReadVarInt()
	if err != nil {
		return nil, err
	}
	return &TcpPacket{buf: buf, ver: ver, id: id}, nil
}

// ID returns the packet's id.
func (p *TcpPacket) ID() int32 { return p.id }

// Version returns the protocol version this packet is encoded for.
func (p *TcpPacket) Version() version.ProtocolVersion { return p.ver }

// Buf exposes the underlying WireBuffer for primitives TcpPacket doesn't
// wrap itself (fixed-width ints, strings, varints, and so on).
func (p *TcpPacket) Buf() *wire.WireBuffer { return p.buf }

// ReadAll returns every remaining unread byte.
func (p *TcpPacket) ReadAll() []byte { return p.buf.ReadAll() }

// Remaining returns the number of unread bytes.
func (p *TcpPacket) Remaining() int { return p.buf.Remaining() }

// Index returns the current cursor position.
func (p *TcpPacket) Index() int { return p.buf.Index() }

// WritePos writes a block position, dispatching to the old or new
// packed encoding based on the packet's version.
func (p *TcpPacket) WritePos(v pos.Pos) {
	if p.ver.AtLeast(version.V1_14) {
		p.buf.WriteU64(v.ToU64())
	} else {
		p.buf.WriteU64(v.ToOldU64())
	}
}

// ReadPos reads a block position, dispatching the same way WritePos
// writes it.
func (p *TcpPacket) ReadPos() (pos.Pos, error) {
	v, err := p.buf.ReadU64()
	if err != nil {
		return pos.Pos{}, err
	}
	if p.ver.AtLeast(version.V1_14) {
		return pos.FromU64(v), nil
	}
	return pos.FromOldU64(v), nil
}
