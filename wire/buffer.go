// Package wire implements WireBuffer, the cursor over a growable byte
// buffer that every Minecraft Java-edition wire-format encoding in this
// module is built on: fixed-width big-endian integers, the protocol's
// varint, length-prefixed strings and arrays, and UUIDs.
package wire

import (
	"encoding/binary"
	"io"
	"math"
	"unicode/utf8"

	"github.com/google/uuid"
)

// WireBuffer is a cursor over a byte slice that can be both read from and
// written to: reads advance the cursor and fail on underrun, writes
// advance the cursor and grow the backing slice as needed, overwriting
// in place if the cursor isn't at the end.
type WireBuffer struct {
	data []byte
	pos  int
}

// New wraps data in a WireBuffer positioned at the start.
func New(data []byte) *WireBuffer { return &WireBuffer{data: data} }

// NewAt wraps data in a WireBuffer positioned at index.
func NewAt(data []byte, index int) *WireBuffer { return &WireBuffer{data: data, pos: index} }

// Len returns the total number of bytes backing the buffer.
func (b *WireBuffer) Len() int { return len(b.data) }

// Index returns the current cursor position.
func (b *WireBuffer) Index() int { return b.pos }

// Remaining returns the number of unread bytes.
func (b *WireBuffer) Remaining() int { return len(b.data) - b.pos }

// Bytes returns the buffer's full backing slice, regardless of cursor
// position.
func (b *WireBuffer) Bytes() []byte { return b.data }

// Skip advances the cursor by n bytes without reading or writing.
func (b *WireBuffer) Skip(n int) { b.pos += n }

func (b *WireBuffer) errAt(kind ErrorKind, mode Mode) *BufferError {
	return &BufferError{Kind: kind, Pos: b.pos, Mode: mode}
}

func (b *WireBuffer) ioErr(err error) *BufferError {
	return &BufferError{Kind: ErrIO, Pos: b.pos, Mode: ModeReading, Err: err}
}

// readBytes reads exactly n bytes, advancing the cursor, or fails with an
// IO error on underrun.
func (b *WireBuffer) readBytes(n int) ([]byte, error) {
	if b.pos+n > len(b.data) {
		return nil, b.ioErr(io.ErrUnexpectedEOF)
	}
	out := b.data[b.pos : b.pos+n]
	b.pos += n
	return out, nil
}

// writeBytes copies v into the buffer at the cursor, growing the backing
// slice if the cursor runs past its current length, and overwriting in
// place otherwise.
func (b *WireBuffer) writeBytes(v []byte) {
	end := b.pos + len(v)
	if end > len(b.data) {
		grown := make([]byte, end)
		copy(grown, b.data)
		b.data = grown
	}
	copy(b.data[b.pos:end], v)
	b.pos = end
}

// ReadBuf reads exactly len bytes as a raw slice.
func (b *WireBuffer) ReadBuf(n int) ([]byte, error) {
	v, err := b.readBytes(n)
	if err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, v)
	return out, nil
}

// WriteBuf writes v's bytes verbatim.
func (b *WireBuffer) WriteBuf(v []byte) { b.writeBytes(v) }

// ReadAll reads every remaining byte without failing, returning an empty
// slice if the cursor is already at the end.
func (b *WireBuffer) ReadAll() []byte {
	out := make([]byte, len(b.data)-b.pos)
	copy(out, b.data[b.pos:])
	b.pos = len(b.data)
	return out
}

// Expect reads len(expected) bytes and errors unless they match exactly.
func (b *WireBuffer) Expect(expected []byte) error {
	got, err := b.ReadBuf(len(expected))
	if err != nil {
		return err
	}
	for i := range expected {
		if expected[i] != got[i] {
			return &BufferError{Kind: ErrExpected, Pos: b.pos, Mode: ModeReading, Expected: expected, Got: got}
		}
	}
	return nil
}

func (b *WireBuffer) ReadBool() (bool, error) {
	v, err := b.ReadU8()
	return v != 0, err
}

func (b *WireBuffer) WriteBool(v bool) {
	if v {
		b.WriteU8(1)
	} else {
		b.WriteU8(0)
	}
}

func (b *WireBuffer) ReadU8() (uint8, error) {
	v, err := b.readBytes(1)
	if err != nil {
		return 0, err
	}
	return v[0], nil
}
func (b *WireBuffer) WriteU8(v uint8) { b.writeBytes([]byte{v}) }

func (b *WireBuffer) ReadI8() (int8, error) {
	v, err := b.ReadU8()
	return int8(v), err
}
func (b *WireBuffer) WriteI8(v int8) { b.WriteU8(uint8(v)) }

func (b *WireBuffer) ReadU16() (uint16, error) {
	v, err := b.readBytes(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(v), nil
}
func (b *WireBuffer) WriteU16(v uint16) {
	var buf [2]byte
	binary.BigEndian.PutUint16(buf[:], v)
	b.writeBytes(buf[:])
}

func (b *WireBuffer) ReadI16() (int16, error) {
	v, err := b.ReadU16()
	return int16(v), err
}
func (b *WireBuffer) WriteI16(v int16) { b.WriteU16(uint16(v)) }

func (b *WireBuffer) ReadU32() (uint32, error) {
	v, err := b.readBytes(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(v), nil
}
func (b *WireBuffer) WriteU32(v uint32) {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], v)
	b.writeBytes(buf[:])
}

func (b *WireBuffer) ReadI32() (int32, error) {
	v, err := b.ReadU32()
	return int32(v), err
}
func (b *WireBuffer) WriteI32(v int32) { b.WriteU32(uint32(v)) }

func (b *WireBuffer) ReadU64() (uint64, error) {
	v, err := b.readBytes(8)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(v), nil
}
func (b *WireBuffer) WriteU64(v uint64) {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], v)
	b.writeBytes(buf[:])
}

func (b *WireBuffer) ReadI64() (int64, error) {
	v, err := b.ReadU64()
	return int64(v), err
}
func (b *WireBuffer) WriteI64(v int64) { b.WriteU64(uint64(v)) }

func (b *WireBuffer) ReadF32() (float32, error) {
	v, err := b.ReadU32()
	return math.Float32frombits(v), err
}
func (b *WireBuffer) WriteF32(v float32) { b.WriteU32(math.Float32bits(v)) }

func (b *WireBuffer) ReadF64() (float64, error) {
	v, err := b.ReadU64()
	return math.Float64frombits(v), err
}
func (b *WireBuffer) WriteF64(v float64) { b.WriteU64(math.Float64bits(v)) }

// WriteFixedInt writes the classic pre-modern fixed-point encoding: the
// value times 32, truncated to an i32.
func (b *WireBuffer) WriteFixedInt(v float64) { b.WriteI32(int32(v * 32.0)) }

// ReadVarInt reads a signed 32-bit varint: little-endian groups of 7 bits
// with the MSB as a continuation flag, up to 5 bytes. A 5th byte still
// carrying the continuation bit is an error.
func (b *WireBuffer) ReadVarInt() (int32, error) {
	var res uint32
	for i := 0; i < 5; i++ {
		v, err := b.ReadU8()
		if err != nil {
			return 0, err
		}
		if i == 4 && v&0x80 != 0 {
			return 0, b.errAt(ErrVarInt, ModeReading)
		}
		res |= uint32(v&0x7f) << (7 * i)
		if v&0x80 == 0 {
			break
		}
	}
	return int32(res), nil
}

// WriteVarInt writes v using the same encoding ReadVarInt expects.
func (b *WireBuffer) WriteVarInt(v int32) {
	val := uint32(v)
	for i := 0; i < 5; i++ {
		bt := uint8(val) & 0x7f
		val >>= 7
		if val != 0 {
			bt |= 0x80
		}
		b.WriteU8(bt)
		if val == 0 {
			break
		}
	}
}

// ReadStr reads a varint-prefixed UTF-8 string. The raw byte length may
// not exceed maxLen*4, and the decoded string may not exceed maxLen
// characters — a UTF-8 character can take up to 4 bytes, so the raw-length check
// catches an oversized string before it's even decoded.
func (b *WireBuffer) ReadStr(maxLen uint64) (string, error) {
	rawLen, err := b.ReadVarInt()
	if err != nil {
		return "", err
	}
	if rawLen < 0 {
		return "", &BufferError{Kind: ErrNegativeLen, Pos: b.pos, Mode: ModeReading, Len: uint64(int64(rawLen))}
	}
	length := uint64(rawLen)
	if length > maxLen*4 {
		return "", &BufferError{Kind: ErrStringTooLong, Pos: b.pos, Mode: ModeReading, Len: length, Max: maxLen}
	}
	raw, err := b.readBytes(int(length))
	if err != nil {
		return "", err
	}
	if !utf8.Valid(raw) {
		return "", &BufferError{Kind: ErrUTF8, Pos: b.pos, Mode: ModeReading}
	}
	if n := uint64(utf8.RuneCount(raw)); n > maxLen {
		return "", &BufferError{Kind: ErrStringTooLong, Pos: b.pos, Mode: ModeReading, Len: n, Max: maxLen}
	}
	return string(raw), nil
}

// WriteStr writes a varint-prefixed UTF-8 string.
func (b *WireBuffer) WriteStr(v string) {
	b.WriteVarInt(int32(len(v)))
	b.writeBytes([]byte(v))
}

// ReadI32Arr reads a varint-prefixed array of i32s.
func (b *WireBuffer) ReadI32Arr() ([]int32, error) {
	n, err := b.ReadVarInt()
	if err != nil {
		return nil, err
	}
	out := make([]int32, 0, n)
	for i := int32(0); i < n; i++ {
		v, err := b.ReadI32()
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// WriteI32Arr writes a varint-prefixed array of i32s.
func (b *WireBuffer) WriteI32Arr(v []int32) {
	b.WriteVarInt(int32(len(v)))
	for _, x := range v {
		b.WriteI32(x)
	}
}

// ReadUUID reads a 16-byte big-endian UUID.
func (b *WireBuffer) ReadUUID() (uuid.UUID, error) {
	raw, err := b.readBytes(16)
	if err != nil {
		return uuid.UUID{}, err
	}
	var out uuid.UUID
	copy(out[:], raw)
	return out, nil
}

// WriteUUID writes v as 16 big-endian bytes.
func (b *WireBuffer) WriteUUID(v uuid.UUID) { b.writeBytes(v[:]) }

// ReadVarIntArr reads a varint-prefixed array of varints.
func (b *WireBuffer) ReadVarIntArr() ([]int32, error) {
	return ReadList(b, (*WireBuffer).ReadVarInt)
}

// WriteVarIntArr writes a varint-prefixed array of varints.
func (b *WireBuffer) WriteVarIntArr(v []int32) {
	WriteList(b, v, (*WireBuffer).WriteVarInt)
}

// ReadList reads a varint-prefixed, homogeneous list using val to decode
// each element.
func ReadList[U any](b *WireBuffer, val func(*WireBuffer) (U, error)) ([]U, error) {
	n, err := b.ReadVarInt()
	if err != nil {
		return nil, err
	}
	out := make([]U, 0, n)
	for i := int32(0); i < n; i++ {
		v, err := val(b)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// ReadListMax is ReadList with an upper bound on the element count.
func ReadListMax[U any](b *WireBuffer, val func(*WireBuffer) (U, error), max int) ([]U, error) {
	n, err := b.ReadVarInt()
	if err != nil {
		return nil, err
	}
	if int(n) > max {
		return nil, &BufferError{Kind: ErrArrayTooLong, Pos: b.pos, Mode: ModeReading, Len: uint64(n), Max: uint64(max)}
	}
	out := make([]U, 0, n)
	for i := int32(0); i < n; i++ {
		v, err := val(b)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// WriteList writes a varint-prefixed, homogeneous list using write to
// encode each element.
func WriteList[U any](b *WireBuffer, list []U, write func(*WireBuffer, U)) {
	b.WriteVarInt(int32(len(list)))
	for _, v := range list {
		write(b, v)
	}
}

// ReadOption reads a bool; if true, val decodes the following value.
func ReadOption[U any](b *WireBuffer, val func(*WireBuffer) (U, error)) (U, bool, error) {
	var zero U
	present, err := b.ReadBool()
	if err != nil || !present {
		return zero, false, err
	}
	v, err := val(b)
	return v, err == nil, err
}

// WriteOption writes false if v is absent, otherwise true followed by the
// value written through write.
func WriteOption[U any](b *WireBuffer, v *U, write func(*WireBuffer, U)) {
	b.WriteBool(v != nil)
	if v != nil {
		write(b, *v)
	}
}
