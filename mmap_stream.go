package reio

import (
	"io"
	"os"
	"path"

	"github.com/edsrzf/mmap-go"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/reiolib/reio/bytebuf"
)

// MemoryMappedStream is a fixed-size output stream backed by a file
// mapped into memory. Writes land directly in the mapping, so anything
// observing the file (another process, a later reader) sees them without
// an explicit copy-out; Flush forces them to stable storage.
//
// The mapping never grows. Writes at the end are truncated to the
// remaining capacity, the same partial-write contract as a fixed
// MemoryOutputStream.
type MemoryMappedStream struct {
	mapping  mmap.MMap
	view     bytebuf.View
	handle   *os.File
	loc      string // location of the memory mapped file
	size     int    // size in bytes
	position int64
}

// NewMemoryMappedStream creates a file of size bytes at loc, replacing
// any existing file, and maps it for writing.
func NewMemoryMappedStream(loc string, size int) (*MemoryMappedStream, error) {
	if size <= 0 {
		return nil, errors.Wrap(bytebuf.ErrInvalidArgument,
			"memory mapped stream needs a positive size")
	}

	if _, err := os.Stat(loc); err == nil {
		if err = os.Remove(loc); err != nil {
			return nil, err
		}
	}

	// ensure destination directory exists
	if err := os.MkdirAll(path.Dir(loc), 0700); err != nil {
		return nil, err
	}

	handle, err := os.OpenFile(loc, os.O_CREATE|os.O_RDWR|os.O_EXCL, 0644)
	if err != nil {
		return nil, err
	}

	n, err := handle.Write(make([]byte, size))
	if err != nil {
		handle.Close()
		return nil, err
	}
	if n < size {
		handle.Close()
		return nil, errors.Errorf("could not initialize %d bytes", size)
	}

	mapping, err := mmap.Map(handle, mmap.RDWR, 0)
	if err != nil {
		handle.Close()
		return nil, errors.Wrap(err, "failed to map the file into memory")
	}

	if logging {
		logger.Debug("created a memory mapped stream",
			zap.String("location", loc), zap.Int("size", size))
	}

	return &MemoryMappedStream{
		mapping: mapping,
		view:    bytebuf.NewView(mapping),
		handle:  handle,
		loc:     loc,
		size:    size,
	}, nil
}

// View returns a View over the whole mapping.
func (s *MemoryMappedStream) View() bytebuf.View { return s.view }

// Location returns the path of the mapped file.
func (s *MemoryMappedStream) Location() string { return s.loc }

// Position returns the write cursor.
func (s *MemoryMappedStream) Position() int64 { return s.position }

// Length returns the size of the mapping.
func (s *MemoryMappedStream) Length() int64 { return int64(s.size) }

// Seek moves the write cursor per the Stream seek contract.
func (s *MemoryMappedStream) Seek(offset int64, whence int) (int64, error) {
	newPosition, err := calcPosition(s.Length(), s.position, offset, whence)
	if err != nil {
		return s.position, err
	}
	s.position = newPosition
	return newPosition, nil
}

// Write copies p into the mapping at the cursor, truncating at the end
// of the mapping. A truncated write reports io.ErrShortWrite alongside
// the count.
func (s *MemoryMappedStream) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	n := len(p)
	if remaining := int64(s.size) - s.position; int64(n) > remaining {
		n = int(remaining)
	}

	if n > 0 {
		if _, err := s.view.Overwrite(p[:n], int(s.position)); err != nil {
			return 0, err
		}
		s.position += int64(n)
	}

	if n < len(p) {
		return n, io.ErrShortWrite
	}
	return n, nil
}

// WriteByte writes a single byte at the cursor.
func (s *MemoryMappedStream) WriteByte(c byte) error {
	one := [1]byte{c}
	if _, err := s.Write(one[:]); err != nil {
		return err
	}
	return nil
}

// Flush commits outstanding changes in the mapping to the file.
func (s *MemoryMappedStream) Flush() error {
	return errors.Wrap(s.mapping.Flush(), "failed to flush the mapping")
}

// Unmap deletes the memory mapping, closes the file handle, and
// optionally removes the backing file.
func (s *MemoryMappedStream) Unmap(removefile bool) error {
	if err := s.mapping.Unmap(); err != nil {
		return errors.Wrap(err, "failed to unmap the stream")
	}

	if err := s.handle.Close(); err != nil {
		return err
	}

	if removefile {
		if err := os.Remove(s.loc); err != nil {
			return err
		}
	}

	if logging {
		logger.Debug("unmapped a memory mapped stream",
			zap.String("location", s.loc), zap.Bool("removed", removefile))
	}
	return nil
}

// Close unmaps the stream, keeping the backing file.
func (s *MemoryMappedStream) Close() error { return s.Unmap(false) }
