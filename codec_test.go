package reio

import (
	"bytes"
	"encoding/binary"
	"math"
	"testing"

	"github.com/reiolib/reio/bytebuf"
)

func TestEncoderWriteUint32(t *testing.T) {
	cases := []uint32{0, 10, 100, 200, 1000, 10000, 10000000, 1000000000, 4294967295}

	for _, val := range cases {
		var out bytes.Buffer
		e := NewEncoder(&out, binary.LittleEndian)

		if err := e.WriteUint32(val); err != nil {
			t.Error(err)
			return
		}

		expected := []byte{
			byte(val & 0xFF),
			byte((val >> 8) & 0xFF),
			byte((val >> 16) & 0xFF),
			byte(val >> 24),
		}

		if !bytes.Equal(out.Bytes(), expected) {
			t.Errorf("value %v: expected %v, got %v", val, expected, out.Bytes())
		}
	}
}

func TestEncoderWriteUint64BigEndian(t *testing.T) {
	cases := []uint64{0, 10, 4294967295, 10000000000000, 18446744073709551615}

	for _, val := range cases {
		var out bytes.Buffer
		e := NewEncoder(&out, binary.BigEndian)

		if err := e.WriteUint64(val); err != nil {
			t.Error(err)
			return
		}

		expected := []byte{
			byte(val >> 56),
			byte((val >> 48) & 0xFF),
			byte((val >> 40) & 0xFF),
			byte((val >> 32) & 0xFF),
			byte((val >> 24) & 0xFF),
			byte((val >> 16) & 0xFF),
			byte((val >> 8) & 0xFF),
			byte(val & 0xFF),
		}

		if !bytes.Equal(out.Bytes(), expected) {
			t.Errorf("value %v: expected %v, got %v", val, expected, out.Bytes())
		}
	}
}

func TestCodecRoundTrip(t *testing.T) {
	for _, order := range []binary.ByteOrder{binary.LittleEndian, binary.BigEndian} {
		out, err := NewMemoryOutputStream(bytebuf.DefaultAllocator())
		if err != nil {
			t.Fatal(err)
		}

		e := NewEncoder(out, order)
		e.MustWriteUint8(0x12)
		e.MustWriteUint16(0x1234)
		e.MustWriteUint32(0xDEADBEEF)
		e.MustWriteUint64(0x0123456789ABCDEF)
		e.MustWriteFloat32(3.5)
		e.MustWriteFloat64(-math.Pi)
		e.MustWriteString("reio")

		in, err := NewMemoryInputStreamBuffer(out.Take())
		if err != nil {
			t.Fatal(err)
		}
		d := NewDecoder(in, order)

		if v, err := d.ReadUint8(); err != nil || v != 0x12 {
			t.Errorf("%v: uint8 round trip gave %v (%v)", order, v, err)
		}
		if v, err := d.ReadUint16(); err != nil || v != 0x1234 {
			t.Errorf("%v: uint16 round trip gave %v (%v)", order, v, err)
		}
		if v, err := d.ReadUint32(); err != nil || v != 0xDEADBEEF {
			t.Errorf("%v: uint32 round trip gave %v (%v)", order, v, err)
		}
		if v, err := d.ReadUint64(); err != nil || v != 0x0123456789ABCDEF {
			t.Errorf("%v: uint64 round trip gave %v (%v)", order, v, err)
		}
		if v, err := d.ReadFloat32(); err != nil || v != 3.5 {
			t.Errorf("%v: float32 round trip gave %v (%v)", order, v, err)
		}
		if v, err := d.ReadFloat64(); err != nil || v != -math.Pi {
			t.Errorf("%v: float64 round trip gave %v (%v)", order, v, err)
		}

		tail := make([]byte, 4)
		if err := ReadFull(in, tail); err != nil || string(tail) != "reio" {
			t.Errorf("%v: string round trip gave %q (%v)", order, tail, err)
		}
	}
}

func TestCodecSignedRoundTrip(t *testing.T) {
	var out bytes.Buffer
	e := NewEncoder(&out, binary.BigEndian)

	if err := e.WriteInt8(-1); err != nil {
		t.Fatal(err)
	}
	if err := e.WriteInt16(-12345); err != nil {
		t.Fatal(err)
	}
	if err := e.WriteInt32(-123456789); err != nil {
		t.Fatal(err)
	}
	if err := e.WriteInt64(-9223372036854775808); err != nil {
		t.Fatal(err)
	}

	d := NewDecoder(&out, binary.BigEndian)
	if v, err := d.ReadInt8(); err != nil || v != -1 {
		t.Errorf("int8 round trip gave %v (%v)", v, err)
	}
	if v, err := d.ReadInt16(); err != nil || v != -12345 {
		t.Errorf("int16 round trip gave %v (%v)", v, err)
	}
	if v, err := d.ReadInt32(); err != nil || v != -123456789 {
		t.Errorf("int32 round trip gave %v (%v)", v, err)
	}
	if v, err := d.ReadInt64(); err != nil || v != -9223372036854775808 {
		t.Errorf("int64 round trip gave %v (%v)", v, err)
	}
}

func TestDecoderShortRead(t *testing.T) {
	d := NewDecoder(bytes.NewReader([]byte{1, 2}), binary.LittleEndian)

	if _, err := d.ReadUint32(); err == nil {
		t.Error("expected an error reading an uint32 from 2 bytes")
	}
}

func TestCodecNativeOrderDefault(t *testing.T) {
	var out bytes.Buffer

	e := NewEncoder(&out, nil)
	if err := e.WriteUint16(0xBEEF); err != nil {
		t.Fatal(err)
	}

	d := NewDecoder(&out, nil)
	v, err := d.ReadUint16()
	if err != nil {
		t.Error(err)
		return
	}
	if v != 0xBEEF {
		t.Errorf("native order round trip gave %v", v)
	}
}
