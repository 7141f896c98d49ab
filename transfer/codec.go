// Package transfer implements TransferCodec: the self-describing, tagged
// message format used on the channel between the proxy and the logic
// server. Every value on the wire starts with a header byte naming its
// kind, so a reader built against an older schema can skip fields it
// doesn't recognize instead of losing framing.
package transfer

import (
	"fmt"

	"github.com/macmv/bamboo/wire"
)

// HeaderID names the kind of value that follows a header byte.
type HeaderID uint8

const (
	HeaderVarInt HeaderID = iota
	HeaderFloat
	HeaderDouble
	HeaderBytes
	HeaderStruct
	HeaderEnum
	HeaderList
)

// UnknownVariantError reports an Enum discriminant with no known handler.
// The caller recovers by dropping the message; the reader itself still
// consumes the enum's body so framing is never lost.
type UnknownVariantError struct {
	Discriminant int64
}

func (e *UnknownVariantError) Error() string {
	return fmt.Sprintf("transfer: unknown enum discriminant %d", e.Discriminant)
}

// FieldMissingError reports that a required struct field wasn't present
// in the message — the writer encoded fewer fields than the reader
// expects, which only happens when reading a message from an older
// schema.
type FieldMissingError struct {
	Index int
}

func (e *FieldMissingError) Error() string {
	return fmt.Sprintf("transfer: required field %d missing from struct", e.Index)
}

// zigzag64 maps a signed integer to an unsigned one so that small-magnitude
// values of either sign stay small on the wire; unzigzag64 inverts it.
func zigzag64(n int64) uint64  { return uint64((n << 1) ^ (n >> 63)) }
func unzigzag64(n uint64) int64 { return int64(n>>1) ^ -int64(n&1) }

// Writer serializes TransferCodec values onto a WireBuffer.
type Writer struct{ b *wire.WireBuffer }

// NewWriter wraps b for TransferCodec encoding.
func NewWriter(b *wire.WireBuffer) *Writer { return &Writer{b: b} }

// writeHeader writes a header byte naming id, with magnitude packed into
// the trailing 5 bits: magnitudes under 16 fit directly; larger ones set
// the continuation bit and carry the rest as an unsigned LEB128-style
// varint of 7-bit groups.
func (w *Writer) writeHeader(id HeaderID, magnitude uint64) {
	if magnitude < 16 {
		w.b.WriteU8(uint8(id)<<5 | uint8(magnitude))
		return
	}
	w.b.WriteU8(uint8(id)<<5 | 0x10 | uint8(magnitude&0xF))
	rest := magnitude >> 4
	for {
		bt := uint8(rest) & 0x7f
		rest >>= 7
		if rest != 0 {
			bt |= 0x80
		}
		w.b.WriteU8(bt)
		if rest == 0 {
			break
		}
	}
}

// WriteVarInt writes a zig-zag encoded signed integer.
func (w *Writer) WriteVarInt(n int64) { w.writeHeader(HeaderVarInt, zigzag64(n)) }

// WriteFloat writes a 4-byte float.
func (w *Writer) WriteFloat(v float32) {
	w.writeHeader(HeaderFloat, 0)
	w.b.WriteF32(v)
}

// WriteDouble writes an 8-byte float.
func (w *Writer) WriteDouble(v float64) {
	w.writeHeader(HeaderDouble, 0)
	w.b.WriteF64(v)
}

// WriteBytes writes a length-prefixed byte string.
func (w *Writer) WriteBytes(v []byte) {
	w.writeHeader(HeaderBytes, uint64(len(v)))
	w.b.WriteBuf(v)
}

// WriteStruct writes a struct value with a fixed field count. body must
// write exactly n values through w; the count is fixed at encode time so
// equal logical values always serialize identically, regardless of which
// fields a given build happens to know about.
func (w *Writer) WriteStruct(n int, body func(w *Writer)) {
	w.writeHeader(HeaderStruct, uint64(n))
	body(w)
}

// WriteEnum writes an enum discriminant followed by its struct body.
func (w *Writer) WriteEnum(discriminant int64, n int, body func(w *Writer)) {
	w.writeHeader(HeaderEnum, uint64(discriminant))
	w.WriteStruct(n, body)
}

// WriteList writes n homogeneous elements, each written by body.
func (w *Writer) WriteList(n int, body func(w *Writer, i int)) {
	w.writeHeader(HeaderList, uint64(n))
	for i := 0; i < n; i++ {
		body(w, i)
	}
}

// Reader deserializes TransferCodec values from a WireBuffer.
type Reader struct{ b *wire.WireBuffer }

// NewReader wraps b for TransferCodec decoding.
func NewReader(b *wire.WireBuffer) *Reader { return &Reader{b: b} }

func (r *Reader) readHeader() (HeaderID, uint64, error) {
	first, err := r.b.ReadU8()
	if err != nil {
		return 0, 0, err
	}
	id := HeaderID(first >> 5)
	magnitude := uint64(first & 0xF)
	if first&0x10 == 0 {
		return id, magnitude, nil
	}
	var rest uint64
	for i := 0; ; i++ {
		bt, err := r.b.ReadU8()
		if err != nil {
			return 0, 0, err
		}
		rest |= uint64(bt&0x7f) << (7 * i)
		if bt&0x80 == 0 {
			break
		}
	}
	return id, magnitude | (rest << 4), nil
}

func expect(got, want HeaderID) error {
	if got != want {
		return fmt.Errorf("transfer: expected header %d, got %d", want, got)
	}
	return nil
}

// ReadVarInt reads a zig-zag encoded signed integer.
func (r *Reader) ReadVarInt() (int64, error) {
	id, mag, err := r.readHeader()
	if err != nil {
		return 0, err
	}
	if err := expect(id, HeaderVarInt); err != nil {
		return 0, err
	}
	return unzigzag64(mag), nil
}

// ReadFloat reads a 4-byte float.
func (r *Reader) ReadFloat() (float32, error) {
	id, _, err := r.readHeader()
	if err != nil {
		return 0, err
	}
	if err := expect(id, HeaderFloat); err != nil {
		return 0, err
	}
	return r.b.ReadF32()
}

// ReadDouble reads an 8-byte float.
func (r *Reader) ReadDouble() (float64, error) {
	id, _, err := r.readHeader()
	if err != nil {
		return 0, err
	}
	if err := expect(id, HeaderDouble); err != nil {
		return 0, err
	}
	return r.b.ReadF64()
}

// ReadBytes reads a length-prefixed byte string.
func (r *Reader) ReadBytes() ([]byte, error) {
	id, mag, err := r.readHeader()
	if err != nil {
		return nil, err
	}
	if err := expect(id, HeaderBytes); err != nil {
		return nil, err
	}
	return r.b.ReadBuf(int(mag))
}

// StructReader exposes a struct's fields for sequential, index-tracked
// reads. After the callback passed to ReadStruct returns, any fields it
// didn't consume are skipped automatically — this is what lets an older
// reader tolerate a message written by a newer schema.
type StructReader struct {
	r     *Reader
	count int
	idx   int
}

// Len returns the number of fields the writer encoded, which may exceed
// the number a given reader knows how to interpret.
func (sr *StructReader) Len() int { return sr.count }

func (sr *StructReader) next() bool {
	if sr.idx >= sr.count {
		return false
	}
	sr.idx++
	return true
}

// VarInt reads the next field as a required signed integer.
func (sr *StructReader) VarInt() (int64, error) {
	if !sr.next() {
		return 0, &FieldMissingError{Index: sr.idx}
	}
	return sr.r.ReadVarInt()
}

// OptionalVarInt reads the next field as a signed integer if present,
// returning ok=false without error if the writer encoded fewer fields.
func (sr *StructReader) OptionalVarInt() (v int64, ok bool, err error) {
	if !sr.next() {
		return 0, false, nil
	}
	v, err = sr.r.ReadVarInt()
	return v, err == nil, err
}

// Float reads the next field as a required float.
func (sr *StructReader) Float() (float32, error) {
	if !sr.next() {
		return 0, &FieldMissingError{Index: sr.idx}
	}
	return sr.r.ReadFloat()
}

// Double reads the next field as a required double.
func (sr *StructReader) Double() (float64, error) {
	if !sr.next() {
		return 0, &FieldMissingError{Index: sr.idx}
	}
	return sr.r.ReadDouble()
}

// Bytes reads the next field as a required byte string.
func (sr *StructReader) Bytes() ([]byte, error) {
	if !sr.next() {
		return nil, &FieldMissingError{Index: sr.idx}
	}
	return sr.r.ReadBytes()
}

// Struct reads the next field as a required nested struct.
func (sr *StructReader) Struct(cb func(*StructReader) error) error {
	if !sr.next() {
		return &FieldMissingError{Index: sr.idx}
	}
	return sr.r.ReadStruct(cb)
}

// List reads the next field as a required list, invoking cb once per
// element.
func (sr *StructReader) List(cb func(r *Reader, i int) error) (int, error) {
	if !sr.next() {
		return 0, &FieldMissingError{Index: sr.idx}
	}
	return sr.r.ReadList(cb)
}

// ReadStruct reads a struct header, hands a StructReader to cb, then
// skips any fields cb left unread.
func (r *Reader) ReadStruct(cb func(*StructReader) error) error {
	id, mag, err := r.readHeader()
	if err != nil {
		return err
	}
	if err := expect(id, HeaderStruct); err != nil {
		return err
	}
	sr := &StructReader{r: r, count: int(mag)}
	cbErr := cb(sr)
	for sr.idx < sr.count {
		sr.idx++
		if err := r.skipValue(); err != nil {
			return err
		}
	}
	return cbErr
}

// ReadEnum reads a discriminant followed by its struct body. handler is
// called with the discriminant and a StructReader over the body; an
// unrecognized discriminant should have handler return
// *UnknownVariantError, which ReadEnum still returns after the body has
// been fully consumed so framing stays intact for the caller's next read.
func (r *Reader) ReadEnum(handler func(discriminant int64, sr *StructReader) error) error {
	id, mag, err := r.readHeader()
	if err != nil {
		return err
	}
	if err := expect(id, HeaderEnum); err != nil {
		return err
	}
	discriminant := int64(mag)
	return r.ReadStruct(func(sr *StructReader) error {
		return handler(discriminant, sr)
	})
}

// ReadList reads a list header and invokes cb once per element, in
// order. Returns the element count.
func (r *Reader) ReadList(cb func(r *Reader, i int) error) (int, error) {
	id, mag, err := r.readHeader()
	if err != nil {
		return 0, err
	}
	if err := expect(id, HeaderList); err != nil {
		return 0, err
	}
	n := int(mag)
	for i := 0; i < n; i++ {
		if err := cb(r, i); err != nil {
			return n, err
		}
	}
	return n, nil
}

// skipValue reads one complete, arbitrarily nested value without
// interpreting it, used to discard struct fields and enum bodies a
// reader doesn't recognize.
func (r *Reader) skipValue() error {
	id, mag, err := r.readHeader()
	if err != nil {
		return err
	}
	switch id {
	case HeaderVarInt:
		return nil
	case HeaderFloat:
		_, err := r.b.ReadF32()
		return err
	case HeaderDouble:
		_, err := r.b.ReadF64()
		return err
	case HeaderBytes:
		_, err := r.b.ReadBuf(int(mag))
		return err
	case HeaderStruct:
		for i := uint64(0); i < mag; i++ {
			if err := r.skipValue(); err != nil {
				return err
			}
		}
		return nil
	case HeaderEnum:
		return r.skipValue() // the enum's body is itself a single Struct value.
	case HeaderList:
		for i := uint64(0); i < mag; i++ {
			if err := r.skipValue(); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("transfer: unknown header id %d", id)
	}
}
