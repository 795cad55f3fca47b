package reio

import (
	"io"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/reiolib/reio/bytebuf"
)

// MemoryInputStream reads from a fixed byte sequence held in an owned
// buffer. Reads past the available data return what is left; reads at
// the end return io.EOF.
type MemoryInputStream struct {
	buffer   *bytebuf.Buffer
	position int64
}

// NewMemoryInputStream copies src into a freshly allocated buffer and
// reads from that, so the stream does not alias the caller's memory.
func NewMemoryInputStream(src bytebuf.View, alloc bytebuf.Allocator) (*MemoryInputStream, error) {
	if src.Len() == 0 {
		return nil, errors.Wrap(bytebuf.ErrInvalidArgument,
			"can't initialize a memory input stream with an empty view")
	}

	buffer, err := bytebuf.NewBufferFrom(src, alloc)
	if err != nil {
		return nil, err
	}
	buffer.SetGrowth(bytebuf.GrowthNone)

	return &MemoryInputStream{buffer: buffer}, nil
}

// NewMemoryInputStreamBuffer takes ownership of src's contents and reads
// from them; src is left in its inert taken-from state.
func NewMemoryInputStreamBuffer(src *bytebuf.Buffer) (*MemoryInputStream, error) {
	if src == nil {
		return nil, errors.Wrap(bytebuf.ErrInvalidArgument,
			"can't initialize a memory input stream with a nil buffer")
	}
	return &MemoryInputStream{buffer: src.Take()}, nil
}

// View returns a View over the stream's backing bytes.
func (s *MemoryInputStream) View() bytebuf.View { return s.buffer.View() }

// Capacity returns the allocation size of the backing buffer.
func (s *MemoryInputStream) Capacity() int64 { return int64(s.buffer.Cap()) }

// Growth returns the growth policy of the backing buffer.
func (s *MemoryInputStream) Growth() bytebuf.GrowthPolicy { return s.buffer.Growth() }

// Position returns the read cursor.
func (s *MemoryInputStream) Position() int64 { return s.position }

// Length returns the number of readable bytes.
func (s *MemoryInputStream) Length() int64 { return int64(s.buffer.Len()) }

// Seek moves the read cursor per the Stream seek contract.
func (s *MemoryInputStream) Seek(offset int64, whence int) (int64, error) {
	newPosition, err := calcPosition(s.Length(), s.position, offset, whence)
	if err != nil {
		return s.position, err
	}
	s.position = newPosition
	return newPosition, nil
}

// Read copies up to len(p) bytes from the cursor onwards and advances
// the cursor by the number of bytes actually read.
func (s *MemoryInputStream) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	remaining := s.Length() - s.position
	if remaining <= 0 {
		return 0, io.EOF
	}

	n := len(p)
	if int64(n) > remaining {
		n = int(remaining)
	}

	copy(p, s.buffer.Data()[s.position:s.position+int64(n)])
	s.position += int64(n)
	return n, nil
}

// ReadByte reads a single byte from the cursor.
func (s *MemoryInputStream) ReadByte() (byte, error) {
	var one [1]byte
	if _, err := s.Read(one[:]); err != nil {
		return 0, err
	}
	return one[0], nil
}

// Close releases the backing allocation. The stream must not be used
// afterwards.
func (s *MemoryInputStream) Close() error {
	s.buffer.Release()
	s.position = 0
	return nil
}

// MemoryOutputStream writes into an owned buffer at a seekable cursor.
// Streams with a growing policy extend the buffer as needed; streams
// fixed with bytebuf.GrowthNone pre-compute the writable length and
// partial-write instead of tripping the buffer's growth failure.
type MemoryOutputStream struct {
	buffer   *bytebuf.Buffer
	position int64
}

// NewMemoryOutputStream creates an empty stream with no preallocation
// and the configured default growth policy.
func NewMemoryOutputStream(alloc bytebuf.Allocator) (*MemoryOutputStream, error) {
	buffer, err := bytebuf.NewBuffer(alloc)
	if err != nil {
		return nil, err
	}
	buffer.SetGrowth(DefaultGrowth())

	return &MemoryOutputStream{buffer: buffer}, nil
}

// NewMemoryOutputStreamCapacity creates a stream preallocating capacity
// bytes with the configured default growth policy.
func NewMemoryOutputStreamCapacity(capacity int, alloc bytebuf.Allocator) (*MemoryOutputStream, error) {
	return NewMemoryOutputStreamGrowth(capacity, DefaultGrowth(), alloc)
}

// NewMemoryOutputStreamGrowth creates a stream preallocating capacity
// bytes with an explicit growth policy. Passing bytebuf.GrowthNone makes
// a fixed-size stream with partial-write-on-overflow behavior.
func NewMemoryOutputStreamGrowth(capacity int, growth bytebuf.GrowthPolicy, alloc bytebuf.Allocator) (*MemoryOutputStream, error) {
	if capacity == 0 {
		return nil, errors.Wrap(bytebuf.ErrInvalidArgument,
			"don't use the preallocating constructor for zero capacity")
	}

	buffer, err := bytebuf.NewBufferCapacity(capacity, alloc)
	if err != nil {
		return nil, err
	}
	buffer.SetGrowth(growth)

	return &MemoryOutputStream{buffer: buffer}, nil
}

// View returns a View over the bytes written so far.
func (s *MemoryOutputStream) View() bytebuf.View { return s.buffer.View() }

// Capacity returns the allocation size of the backing buffer.
func (s *MemoryOutputStream) Capacity() int64 { return int64(s.buffer.Cap()) }

// Growth returns the growth policy of the backing buffer.
func (s *MemoryOutputStream) Growth() bytebuf.GrowthPolicy { return s.buffer.Growth() }

// Position returns the write cursor.
func (s *MemoryOutputStream) Position() int64 { return s.position }

// Length returns the number of bytes written so far.
func (s *MemoryOutputStream) Length() int64 { return int64(s.buffer.Len()) }

// Seek moves the write cursor per the Stream seek contract.
func (s *MemoryOutputStream) Seek(offset int64, whence int) (int64, error) {
	newPosition, err := calcPosition(s.Length(), s.position, offset, whence)
	if err != nil {
		return s.position, err
	}
	s.position = newPosition
	return newPosition, nil
}

// Write copies p into the buffer at the cursor and advances the cursor
// by the number of bytes written. On a fixed stream the write is capped
// at the remaining capacity and the shortfall is reported with
// io.ErrShortWrite; growing streams always write everything.
func (s *MemoryOutputStream) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	if s.buffer.Growth() == bytebuf.GrowthNone {
		n := len(p)
		if remaining := int64(s.buffer.Cap()) - s.position; int64(n) > remaining {
			n = int(remaining)
		}

		if n > 0 {
			if _, err := s.buffer.Overwrite(p[:n], int(s.position)); err != nil {
				return 0, err
			}
			s.position += int64(n)
		}

		if n < len(p) {
			if logging {
				logger.Debug("fixed-capacity stream truncated a write",
					zap.Int("requested", len(p)), zap.Int("written", n))
			}
			return n, io.ErrShortWrite
		}
		return n, nil
	}

	oldCapacity := s.buffer.Cap()
	if _, err := s.buffer.Overwrite(p, int(s.position)); err != nil {
		return 0, err
	}
	s.position += int64(len(p))

	if logging && s.buffer.Cap() != oldCapacity {
		logger.Debug("memory output stream grew its buffer",
			zap.Int("capacity", s.buffer.Cap()), zap.Int("previous", oldCapacity))
	}
	return len(p), nil
}

// WriteByte writes a single byte at the cursor.
func (s *MemoryOutputStream) WriteByte(c byte) error {
	one := [1]byte{c}
	if _, err := s.Write(one[:]); err != nil {
		return err
	}
	return nil
}

// Take transfers ownership of the written bytes out of the stream. The
// stream is left over an inert buffer and must not be written again.
func (s *MemoryOutputStream) Take() *bytebuf.Buffer {
	s.position = 0
	return s.buffer.Take()
}

// Close releases the backing allocation. The stream must not be used
// afterwards.
func (s *MemoryOutputStream) Close() error {
	s.buffer.Release()
	s.position = 0
	return nil
}
