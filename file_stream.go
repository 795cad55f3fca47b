package reio

import (
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/reiolib/reio/bytebuf"
)

// FileInputStream reads from an owned file handle. Seeking delegates to
// the operating system, so the bounds rules of the memory streams do not
// apply here.
type FileInputStream struct {
	handle   *os.File
	position int64
}

// NewFileInputStream opens path for reading and owns the handle; Close
// releases it.
func NewFileInputStream(path string) (*FileInputStream, error) {
	handle, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open a file for the input stream")
	}
	return &FileInputStream{handle: handle}, nil
}

// NewFileInputStreamHandle adopts an externally-opened handle. The
// handle is closed by the stream.
func NewFileInputStreamHandle(handle *os.File) (*FileInputStream, error) {
	if handle == nil {
		return nil, errors.Wrap(bytebuf.ErrInvalidArgument,
			"can't initialize a file stream with a nil handle")
	}

	position, err := handle.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get current stream position")
	}

	return &FileInputStream{handle: handle, position: position}, nil
}

// Position returns the read cursor.
func (s *FileInputStream) Position() int64 { return s.position }

// Length returns the file size, or -1 when it can't be determined.
func (s *FileInputStream) Length() int64 {
	fi, err := s.handle.Stat()
	if err != nil {
		return -1
	}
	return fi.Size()
}

// Seek moves the read cursor through the file handle.
func (s *FileInputStream) Seek(offset int64, whence int) (int64, error) {
	newPosition, err := s.handle.Seek(offset, whence)
	if err != nil {
		return s.position, errors.Wrap(err, "failed to seek the file")
	}
	s.position = newPosition
	return newPosition, nil
}

// Read transfers up to len(p) bytes from the file.
func (s *FileInputStream) Read(p []byte) (int, error) {
	n, err := s.handle.Read(p)
	s.position += int64(n)
	return n, err
}

// ReadByte reads a single byte from the file.
func (s *FileInputStream) ReadByte() (byte, error) {
	var one [1]byte
	if _, err := io.ReadFull(s.handle, one[:]); err != nil {
		return 0, err
	}
	s.position++
	return one[0], nil
}

// Close releases the file handle.
func (s *FileInputStream) Close() error { return s.handle.Close() }

// FileOutputStream writes to an owned file handle.
type FileOutputStream struct {
	handle   *os.File
	position int64
}

// NewFileOutputStream creates (or truncates) path for writing and owns
// the handle; Close releases it.
func NewFileOutputStream(path string) (*FileOutputStream, error) {
	handle, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open a file for the output stream")
	}
	return &FileOutputStream{handle: handle}, nil
}

// NewFileOutputStreamHandle adopts an externally-opened handle. The
// handle is closed by the stream.
func NewFileOutputStreamHandle(handle *os.File) (*FileOutputStream, error) {
	if handle == nil {
		return nil, errors.Wrap(bytebuf.ErrInvalidArgument,
			"can't initialize a file stream with a nil handle")
	}

	position, err := handle.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get current stream position")
	}

	return &FileOutputStream{handle: handle, position: position}, nil
}

// Position returns the write cursor.
func (s *FileOutputStream) Position() int64 { return s.position }

// Length returns the file size, or -1 when it can't be determined.
func (s *FileOutputStream) Length() int64 {
	fi, err := s.handle.Stat()
	if err != nil {
		return -1
	}
	return fi.Size()
}

// Seek moves the write cursor through the file handle.
func (s *FileOutputStream) Seek(offset int64, whence int) (int64, error) {
	newPosition, err := s.handle.Seek(offset, whence)
	if err != nil {
		return s.position, errors.Wrap(err, "failed to seek the file")
	}
	s.position = newPosition
	return newPosition, nil
}

// Write transfers len(p) bytes to the file.
func (s *FileOutputStream) Write(p []byte) (int, error) {
	n, err := s.handle.Write(p)
	s.position += int64(n)
	return n, err
}

// WriteByte writes a single byte to the file.
func (s *FileOutputStream) WriteByte(c byte) error {
	one := [1]byte{c}
	if _, err := s.Write(one[:]); err != nil {
		return err
	}
	return nil
}

// Sync flushes the file to stable storage.
func (s *FileOutputStream) Sync() error { return s.handle.Sync() }

// Close releases the file handle.
func (s *FileOutputStream) Close() error { return s.handle.Close() }
