package reio

import (
	"io"

	"github.com/pkg/errors"

	"github.com/reiolib/reio/bytebuf"
)

// Stream is the common contract of positioned byte streams: a cursor, a
// total length, and whence-style seeking. Seek follows io.Seeker, with
// bounds checked per origin: from the start the offset has to land
// inside the stream, relative moves have to stay within [0, length],
// and from the end only offsets in (-length, 0] are valid.
type Stream interface {
	io.Seeker
	Position() int64
	Length() int64
}

// InputStream is a Stream that supplies bytes. Read returns the number
// of bytes actually transferred; running out of data is reported through
// the count (and io.EOF), not as a hard failure.
type InputStream interface {
	Stream
	io.Reader
	io.ByteReader
}

// OutputStream is a Stream that consumes bytes. Fixed-capacity
// implementations truncate instead of failing and report the shortfall
// through the count and io.ErrShortWrite.
type OutputStream interface {
	Stream
	io.Writer
	io.ByteWriter
}

// ReadFull reads exactly len(p) bytes from in and hard-fails on anything
// less. It is the explicit opt-in escalation over the soft partial-read
// contract of InputStream.
func ReadFull(in InputStream, p []byte) error {
	if _, err := io.ReadFull(in, p); err != nil {
		return errors.Wrap(err, "failed to read required number of bytes")
	}
	return nil
}

// WriteFull writes exactly len(p) bytes to out and hard-fails on
// anything less. It is the explicit opt-in escalation over the soft
// partial-write contract of OutputStream.
func WriteFull(out OutputStream, p []byte) error {
	n, err := out.Write(p)
	if err != nil && !errors.Is(err, io.ErrShortWrite) {
		return err
	}
	if n != len(p) {
		return errors.Wrapf(bytebuf.ErrCapacity,
			"failed to write required number of bytes (%d of %d)", n, len(p))
	}
	return nil
}

// calcPosition applies the per-origin seek bounds shared by the
// memory-backed streams.
func calcPosition(length, position, offset int64, whence int) (int64, error) {
	switch whence {
	case io.SeekStart:
		if offset < 0 {
			return 0, errors.Wrap(bytebuf.ErrOutOfRange,
				"can't seek negative offset from the beginning of the stream")
		}
		if offset >= length {
			return 0, errors.Wrap(bytebuf.ErrOutOfRange,
				"can't seek offset from the beginning beyond the stream's end")
		}
		return offset, nil

	case io.SeekCurrent:
		newPosition := position + offset
		if newPosition < 0 {
			return 0, errors.Wrap(bytebuf.ErrOutOfRange,
				"can't seek offset below the stream's start")
		}
		if newPosition > length {
			return 0, errors.Wrap(bytebuf.ErrOutOfRange,
				"can't seek offset beyond the stream's end")
		}
		return newPosition, nil

	case io.SeekEnd:
		if offset > 0 {
			return 0, errors.Wrap(bytebuf.ErrOutOfRange,
				"can't seek positive offset from the end of the stream")
		}
		if offset <= -length {
			return 0, errors.Wrap(bytebuf.ErrOutOfRange,
				"can't seek offset from the end beyond the stream's start")
		}
		return length + offset, nil
	}

	return 0, errors.Wrapf(bytebuf.ErrInvalidArgument, "unknown seek origin %d", whence)
}
