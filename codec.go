package reio

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/pkg/errors"
)

// Decoder reads fixed-size numeric values from an io.Reader, reversing
// byte order when the requested order differs from the encoded one. It
// is a pure transform over raw byte reads; the underlying stream does
// all the positioning.
type Decoder struct {
	in      io.Reader
	order   binary.ByteOrder
	scratch [8]byte
}

// NewDecoder creates a Decoder reading values encoded with the given
// byte order. A nil order means native order.
func NewDecoder(in io.Reader, order binary.ByteOrder) *Decoder {
	if order == nil {
		order = binary.NativeEndian
	}
	return &Decoder{in: in, order: order}
}

func (d *Decoder) read(n int) ([]byte, error) {
	buf := d.scratch[:n]
	if _, err := io.ReadFull(d.in, buf); err != nil {
		return nil, errors.Wrap(err, "failed to read enough bytes for a numeric value")
	}
	return buf, nil
}

// ReadUint8 reads a single unsigned byte.
func (d *Decoder) ReadUint8() (uint8, error) {
	buf, err := d.read(1)
	if err != nil {
		return 0, err
	}
	return buf[0], nil
}

// ReadInt8 reads a single signed byte.
func (d *Decoder) ReadInt8() (int8, error) {
	v, err := d.ReadUint8()
	return int8(v), err
}

// ReadUint16 reads an uint16.
func (d *Decoder) ReadUint16() (uint16, error) {
	buf, err := d.read(2)
	if err != nil {
		return 0, err
	}
	return d.order.Uint16(buf), nil
}

// ReadInt16 reads an int16.
func (d *Decoder) ReadInt16() (int16, error) {
	v, err := d.ReadUint16()
	return int16(v), err
}

// ReadUint32 reads an uint32.
func (d *Decoder) ReadUint32() (uint32, error) {
	buf, err := d.read(4)
	if err != nil {
		return 0, err
	}
	return d.order.Uint32(buf), nil
}

// ReadInt32 reads an int32.
func (d *Decoder) ReadInt32() (int32, error) {
	v, err := d.ReadUint32()
	return int32(v), err
}

// ReadUint64 reads an uint64.
func (d *Decoder) ReadUint64() (uint64, error) {
	buf, err := d.read(8)
	if err != nil {
		return 0, err
	}
	return d.order.Uint64(buf), nil
}

// ReadInt64 reads an int64.
func (d *Decoder) ReadInt64() (int64, error) {
	v, err := d.ReadUint64()
	return int64(v), err
}

// ReadFloat32 reads a float32.
func (d *Decoder) ReadFloat32() (float32, error) {
	v, err := d.ReadUint32()
	return math.Float32frombits(v), err
}

// ReadFloat64 reads a float64.
func (d *Decoder) ReadFloat64() (float64, error) {
	v, err := d.ReadUint64()
	return math.Float64frombits(v), err
}

// Encoder writes fixed-size numeric values to an io.Writer, reversing
// byte order when the requested order differs from native.
type Encoder struct {
	out     io.Writer
	order   binary.ByteOrder
	scratch [8]byte
}

// NewEncoder creates an Encoder writing values in the given byte order.
// A nil order means native order.
func NewEncoder(out io.Writer, order binary.ByteOrder) *Encoder {
	if order == nil {
		order = binary.NativeEndian
	}
	return &Encoder{out: out, order: order}
}

func (e *Encoder) write(buf []byte) error {
	n, err := e.out.Write(buf)
	if err != nil {
		return errors.Wrap(err, "failed to write enough bytes for a numeric value")
	}
	if n != len(buf) {
		return errors.Errorf("failed to write enough bytes for a numeric value (%d of %d)", n, len(buf))
	}
	return nil
}

// WriteUint8 writes a single unsigned byte.
func (e *Encoder) WriteUint8(v uint8) error {
	e.scratch[0] = v
	return e.write(e.scratch[:1])
}

// MustWriteUint8 panics if WriteUint8 fails.
func (e *Encoder) MustWriteUint8(v uint8) {
	if err := e.WriteUint8(v); err != nil {
		panic(err)
	}
}

// WriteInt8 writes a single signed byte.
func (e *Encoder) WriteInt8(v int8) error { return e.WriteUint8(uint8(v)) }

// WriteUint16 writes an uint16.
func (e *Encoder) WriteUint16(v uint16) error {
	e.order.PutUint16(e.scratch[:2], v)
	return e.write(e.scratch[:2])
}

// MustWriteUint16 panics if WriteUint16 fails.
func (e *Encoder) MustWriteUint16(v uint16) {
	if err := e.WriteUint16(v); err != nil {
		panic(err)
	}
}

// WriteInt16 writes an int16.
func (e *Encoder) WriteInt16(v int16) error { return e.WriteUint16(uint16(v)) }

// WriteUint32 writes an uint32.
func (e *Encoder) WriteUint32(v uint32) error {
	e.order.PutUint32(e.scratch[:4], v)
	return e.write(e.scratch[:4])
}

// MustWriteUint32 panics if WriteUint32 fails.
func (e *Encoder) MustWriteUint32(v uint32) {
	if err := e.WriteUint32(v); err != nil {
		panic(err)
	}
}

// WriteInt32 writes an int32.
func (e *Encoder) WriteInt32(v int32) error { return e.WriteUint32(uint32(v)) }

// WriteUint64 writes an uint64.
func (e *Encoder) WriteUint64(v uint64) error {
	e.order.PutUint64(e.scratch[:8], v)
	return e.write(e.scratch[:8])
}

// MustWriteUint64 panics if WriteUint64 fails.
func (e *Encoder) MustWriteUint64(v uint64) {
	if err := e.WriteUint64(v); err != nil {
		panic(err)
	}
}

// WriteInt64 writes an int64.
func (e *Encoder) WriteInt64(v int64) error { return e.WriteUint64(uint64(v)) }

// WriteFloat32 writes a float32.
func (e *Encoder) WriteFloat32(v float32) error { return e.WriteUint32(math.Float32bits(v)) }

// MustWriteFloat32 panics if WriteFloat32 fails.
func (e *Encoder) MustWriteFloat32(v float32) {
	if err := e.WriteFloat32(v); err != nil {
		panic(err)
	}
}

// WriteFloat64 writes a float64.
func (e *Encoder) WriteFloat64(v float64) error { return e.WriteUint64(math.Float64bits(v)) }

// MustWriteFloat64 panics if WriteFloat64 fails.
func (e *Encoder) MustWriteFloat64(v float64) {
	if err := e.WriteFloat64(v); err != nil {
		panic(err)
	}
}

// WriteString writes the raw bytes of a string.
func (e *Encoder) WriteString(v string) error {
	n, err := io.WriteString(e.out, v)
	if err != nil {
		return errors.Wrap(err, "failed to write the string")
	}
	if n != len(v) {
		return errors.Errorf("failed to write the whole string (%d of %d)", n, len(v))
	}
	return nil
}

// MustWriteString panics if WriteString fails.
func (e *Encoder) MustWriteString(v string) {
	if err := e.WriteString(v); err != nil {
		panic(err)
	}
}
