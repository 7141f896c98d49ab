package transfer

import (
	"errors"
	"testing"

	"github.com/macmv/bamboo/wire"
)

func TestVarIntRoundTripSmallAndLarge(t *testing.T) {
	for _, v := range []int64{0, 1, -1, 15, -15, 16, -16, 1000, -1000, 1 << 40, -(1 << 40)} {
		b := wire.New(nil)
		NewWriter(b).WriteVarInt(v)
		b2 := wire.NewAt(b.Bytes(), 0)
		got, err := NewReader(b2).ReadVarInt()
		if err != nil || got != v {
			t.Fatalf("round trip of %d = %d, %v", v, got, err)
		}
	}
}

func TestSmallMagnitudeFitsInSingleByte(t *testing.T) {
	b := wire.New(nil)
	NewWriter(b).WriteVarInt(0) // zigzag(0) = 0, magnitude 0 < 16.
	if b.Len() != 1 {
		t.Fatalf("Len() = %d, want 1 for a single-byte header", b.Len())
	}
}

func TestFloatAndDoubleRoundTrip(t *testing.T) {
	b := wire.New(nil)
	w := NewWriter(b)
	w.WriteFloat(1.5)
	w.WriteDouble(-2.25)
	b2 := wire.NewAt(b.Bytes(), 0)
	r := NewReader(b2)
	f, err := r.ReadFloat()
	if err != nil || f != 1.5 {
		t.Fatalf("ReadFloat() = %v, %v, want 1.5, nil", f, err)
	}
	d, err := r.ReadDouble()
	if err != nil || d != -2.25 {
		t.Fatalf("ReadDouble() = %v, %v, want -2.25, nil", d, err)
	}
}

func TestBytesRoundTrip(t *testing.T) {
	b := wire.New(nil)
	NewWriter(b).WriteBytes([]byte("hello"))
	b2 := wire.NewAt(b.Bytes(), 0)
	got, err := NewReader(b2).ReadBytes()
	if err != nil || string(got) != "hello" {
		t.Fatalf("ReadBytes() = %q, %v, want %q, nil", got, err, "hello")
	}
}

func TestStructRoundTrip(t *testing.T) {
	b := wire.New(nil)
	NewWriter(b).WriteStruct(2, func(w *Writer) {
		w.WriteVarInt(7)
		w.WriteBytes([]byte("x"))
	})
	b2 := wire.NewAt(b.Bytes(), 0)
	var a int64
	var bs []byte
	err := NewReader(b2).ReadStruct(func(sr *StructReader) error {
		var err error
		a, err = sr.VarInt()
		if err != nil {
			return err
		}
		bs, err = sr.Bytes()
		return err
	})
	if err != nil || a != 7 || string(bs) != "x" {
		t.Fatalf("ReadStruct() = %d, %q, %v, want 7, x, nil", a, bs, err)
	}
}

func TestStructSkipsUnreadTrailingFields(t *testing.T) {
	b := wire.New(nil)
	NewWriter(b).WriteStruct(3, func(w *Writer) {
		w.WriteVarInt(1)
		w.WriteVarInt(2)
		w.WriteVarInt(3)
	})
	b.WriteU8(0xAB) // sentinel after the struct.
	b2 := wire.NewAt(b.Bytes(), 0)

	var first int64
	err := NewReader(b2).ReadStruct(func(sr *StructReader) error {
		var err error
		first, err = sr.VarInt() // deliberately ignore fields 2 and 3.
		return err
	})
	if err != nil || first != 1 {
		t.Fatalf("ReadStruct() first = %d, err = %v, want 1, nil", first, err)
	}
	marker, err := b2.ReadU8()
	if err != nil || marker != 0xAB {
		t.Fatalf("sentinel after struct = %x, %v, want ab, nil (unread fields must be skipped)", marker, err)
	}
}

func TestMissingRequiredFieldErrors(t *testing.T) {
	b := wire.New(nil)
	NewWriter(b).WriteStruct(0, func(w *Writer) {})
	b2 := wire.NewAt(b.Bytes(), 0)
	err := NewReader(b2).ReadStruct(func(sr *StructReader) error {
		_, err := sr.VarInt()
		return err
	})
	var fm *FieldMissingError
	if !errors.As(err, &fm) {
		t.Fatalf("err = %v, want *FieldMissingError", err)
	}
}

func TestOptionalFieldMissingIsNotAnError(t *testing.T) {
	b := wire.New(nil)
	NewWriter(b).WriteStruct(0, func(w *Writer) {})
	b2 := wire.NewAt(b.Bytes(), 0)
	err := NewReader(b2).ReadStruct(func(sr *StructReader) error {
		_, ok, err := sr.OptionalVarInt()
		if ok {
			t.Fatal("expected ok=false for a missing optional field")
		}
		return err
	})
	if err != nil {
		t.Fatalf("ReadStruct() err = %v, want nil", err)
	}
}

func TestEnumRoundTripKnownVariant(t *testing.T) {
	b := wire.New(nil)
	NewWriter(b).WriteEnum(2, 1, func(w *Writer) {
		w.WriteVarInt(99)
	})
	b2 := wire.NewAt(b.Bytes(), 0)

	var got int64
	err := NewReader(b2).ReadEnum(func(discriminant int64, sr *StructReader) error {
		if discriminant != 2 {
			return &UnknownVariantError{Discriminant: discriminant}
		}
		var err error
		got, err = sr.VarInt()
		return err
	})
	if err != nil || got != 99 {
		t.Fatalf("ReadEnum() = %d, %v, want 99, nil", got, err)
	}
}

func TestEnumUnknownVariantStillConsumesBody(t *testing.T) {
	b := wire.New(nil)
	NewWriter(b).WriteEnum(5, 1, func(w *Writer) {
		w.WriteVarInt(1)
	})
	b.WriteU8(0xCD)
	b2 := wire.NewAt(b.Bytes(), 0)

	err := NewReader(b2).ReadEnum(func(discriminant int64, sr *StructReader) error {
		return &UnknownVariantError{Discriminant: discriminant}
	})
	var uv *UnknownVariantError
	if !errors.As(err, &uv) || uv.Discriminant != 5 {
		t.Fatalf("err = %v, want *UnknownVariantError{5}", err)
	}
	marker, rerr := b2.ReadU8()
	if rerr != nil || marker != 0xCD {
		t.Fatalf("sentinel after enum = %x, %v, want cd, nil", marker, rerr)
	}
}

func TestListRoundTrip(t *testing.T) {
	b := wire.New(nil)
	NewWriter(b).WriteList(3, func(w *Writer, i int) {
		w.WriteVarInt(int64(i * 10))
	})
	b2 := wire.NewAt(b.Bytes(), 0)

	var got []int64
	n, err := NewReader(b2).ReadList(func(r *Reader, i int) error {
		v, err := r.ReadVarInt()
		got = append(got, v)
		return err
	})
	if err != nil || n != 3 {
		t.Fatalf("ReadList() n = %d, err = %v, want 3, nil", n, err)
	}
	if len(got) != 3 || got[0] != 0 || got[1] != 10 || got[2] != 20 {
		t.Fatalf("ReadList() values = %v, want [0 10 20]", got)
	}
}

func TestNestedStructInsideListSkipsCleanly(t *testing.T) {
	b := wire.New(nil)
	NewWriter(b).WriteList(2, func(w *Writer, i int) {
		w.WriteStruct(2, func(w *Writer) {
			w.WriteVarInt(int64(i))
			w.WriteBytes([]byte{byte(i)})
		})
	})
	b2 := wire.NewAt(b.Bytes(), 0)

	var firsts []int64
	_, err := NewReader(b2).ReadList(func(r *Reader, i int) error {
		return r.ReadStruct(func(sr *StructReader) error {
			v, err := sr.VarInt() // leaves the Bytes field unread/skipped.
			firsts = append(firsts, v)
			return err
		})
	})
	if err != nil {
		t.Fatalf("ReadList() err = %v", err)
	}
	if len(firsts) != 2 || firsts[0] != 0 || firsts[1] != 1 {
		t.Fatalf("firsts = %v, want [0 1]", firsts)
	}
}
